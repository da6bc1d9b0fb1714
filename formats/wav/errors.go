// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile = errors.New("not a WAV file")
	ErrNotPCM     = errors.New("WAV data is not integer PCM")
	ErrNoPCMData  = errors.New("WAV data chunk not found")
)
