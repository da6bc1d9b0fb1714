// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/ik5/fathomwt/audio"
	"github.com/ik5/fathomwt/utils"
)

const (
	formatPCM        = 1
	formatExtensible = 0xFFFE
)

// pcmReader is an interface for wav.Decoder to allow testing
type pcmReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// source wraps go-audio wav.Decoder to implement audio.Source
type source struct {
	dec        pcmReader
	format     *goaudio.Format
	sampleRate int
	channels   int
	bitDepth   int
	numFrames  int
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) BitDepth() int   { return s.bitDepth }
func (s *source) NumFrames() int  { return s.numFrames }
func (s *source) Close() error    { return nil }

func (s *source) ReadFrames(dst []int) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if len(dst)%s.channels != 0 {
		return 0, audio.ErrInvalidDstSize
	}

	// go-audio decodes straight into dst; samples keep their stored value
	buf := &goaudio.IntBuffer{
		Data:           dst,
		Format:         s.format,
		SourceBitDepth: s.bitDepth,
	}

	n, err := s.dec.PCMBuffer(buf)
	if err != nil && !errors.Is(err, io.EOF) {
		return n, fmt.Errorf("reading wav samples: %w", err)
	}

	if n == 0 {
		return 0, io.EOF
	}

	return n, nil
}

type Decoder struct{}

// Decode parses the RIFF headers and positions the reader at the start of
// the PCM data. Only integer PCM is accepted; the channel count and bit depth
// are reported as-is so callers can decide what they support.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := audio.AsReadSeeker(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		if err := dec.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNotWavFile, err)
		}
		return nil, ErrNotWavFile
	}

	if dec.WavAudioFormat != formatPCM && dec.WavAudioFormat != formatExtensible {
		return nil, fmt.Errorf("%w: format tag %d", ErrNotPCM, dec.WavAudioFormat)
	}

	if dec.WavAudioFormat == formatExtensible {
		tag, err := subFormat(rs)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNotPCM, err)
		}

		if tag != formatPCM {
			return nil, fmt.Errorf("%w: sub-format tag %d", ErrNotPCM, tag)
		}
	}

	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoPCMData, err)
	}

	channels := int(dec.NumChans)
	bitDepth := int(dec.BitDepth)
	blockAlign := channels * utils.SampleWidth(bitDepth)
	if blockAlign <= 0 {
		return nil, ErrNotWavFile
	}

	return &source{
		dec: dec,
		format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  int(dec.SampleRate),
		},
		sampleRate: int(dec.SampleRate),
		channels:   channels,
		bitDepth:   bitDepth,
		numFrames:  dec.PCMSize / blockAlign,
	}, nil
}
