// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/riff"
)

// extensibleFmt is the fmt chunk of a WAVE_FORMAT_EXTENSIBLE file. The first
// word of the sub-format GUID carries the real format tag.
type extensibleFmt struct {
	AudioFormat    uint16
	NumChannels    uint16
	SampleRate     uint32
	AvgBytesPerSec uint32
	BlockAlign     uint16
	BitsPerSample  uint16
	ExtensionSize  uint16
	ValidBits      uint16
	ChannelMask    uint32
	SubFormat      uint32
	SubFormatRest  [12]byte
}

var errShortExtension = errors.New("fmt chunk too short for the extensible layout")

// subFormat returns the format tag held in the sub-format GUID of an
// extensible fmt chunk. rs is parsed from the start and left where it was.
func subFormat(rs io.ReadSeeker) (tag uint32, err error) {
	pos, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, fmt.Errorf("reading position: %w", err)
	}

	defer func() {
		if _, seekErr := rs.Seek(pos, io.SeekStart); seekErr != nil && err == nil {
			err = fmt.Errorf("restoring position: %w", seekErr)
		}
	}()

	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return 0, fmt.Errorf("rewinding: %w", err)
	}

	parser := riff.New(rs)
	if err := parser.ParseHeaders(); err != nil {
		return 0, fmt.Errorf("reading RIFF header: %w", err)
	}

	for {
		chunk, err := parser.NextChunk()
		if err != nil {
			return 0, fmt.Errorf("looking for fmt chunk: %w", err)
		}

		if chunk.ID != riff.FmtID {
			chunk.Drain()
			continue
		}

		var header extensibleFmt
		if chunk.Size < binary.Size(header) {
			return 0, errShortExtension
		}

		if err := chunk.ReadLE(&header); err != nil {
			return 0, fmt.Errorf("reading fmt chunk: %w", err)
		}

		return header.SubFormat, nil
	}
}
