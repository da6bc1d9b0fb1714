// SPDX-License-Identifier: EPL-2.0

package fathomwt

import (
	"fmt"

	"github.com/ik5/fathomwt/audio"
	"github.com/ik5/fathomwt/utils"
)

// Validate checks that src can be cut into cycles of cycleLength frames.
// Every check runs, so the returned *ConversionError lists all failures at
// once: a mono channel layout, a 16 or 32 bit sample width, and a frame
// count that is either at most cycleLength or a multiple of it.
func Validate(src audio.Source, cycleLength int) error {
	if cycleLength < 1 {
		return fmt.Errorf("%w: cycle length %d must be positive", ErrInvalidConfig, cycleLength)
	}

	var messages []string

	if src.Channels() != 1 {
		messages = append(messages, MsgNotMono)
	}

	if w := utils.SampleWidth(src.BitDepth()); w != 2 && w != 4 {
		messages = append(messages, MsgBitDepth)
	}

	if n := src.NumFrames(); n > cycleLength && n%cycleLength != 0 {
		messages = append(messages, MsgFrameCount)
	}

	if len(messages) == 0 {
		return nil
	}

	return newError(KindValidation, "", nil, messages...)
}
