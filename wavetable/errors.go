// SPDX-License-Identifier: EPL-2.0

package wavetable

import "errors"

var (
	// ErrUnknownRoot indicates the document root is neither SynthWaveTable nor SynthWaveform
	ErrUnknownRoot = errors.New("unknown wave table root element")

	// ErrMissingElement indicates a required WaveTable, wave, Buffer or Samples element is absent
	ErrMissingElement = errors.New("missing wave table element")

	// ErrEmptySamples indicates a Samples element without any value, or a cycle without samples
	ErrEmptySamples = errors.New("empty samples")

	// ErrInvalidSample indicates a sample value that is not a finite number
	ErrInvalidSample = errors.New("invalid sample value")

	// ErrTrailingData indicates content after the document element
	ErrTrailingData = errors.New("data after the wave table document")

	// ErrNoCycles indicates a table without any cycle
	ErrNoCycles = errors.New("no wave cycles")
)
