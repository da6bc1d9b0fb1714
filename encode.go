// SPDX-License-Identifier: EPL-2.0

package fathomwt

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/fathomwt/audio"
	"github.com/ik5/fathomwt/utils"
	"github.com/ik5/fathomwt/wavetable"
)

// cycleLayout is how a stream of frames is cut into cycles.
type cycleLayout struct {
	count  int
	length int
}

// layoutFor returns one cycle holding the whole stream when it is not
// longer than cycleLength, otherwise frames/cycleLength cycles of
// cycleLength frames.
func layoutFor(frames, cycleLength int) cycleLayout {
	if frames > 0 && frames <= cycleLength {
		return cycleLayout{count: 1, length: frames}
	}

	return cycleLayout{count: frames / cycleLength, length: cycleLength}
}

// Encode validates src and reads it into a wave table named name, one cycle
// per cycleLength frames. Samples are normalized by the full scale of the
// stream's container width.
func Encode(src audio.Source, name string, cycleLength int) (*wavetable.WaveTable, error) {
	if err := Validate(src, cycleLength); err != nil {
		return nil, err
	}

	layout := layoutFor(src.NumFrames(), cycleLength)
	if layout.count == 0 {
		return nil, newError(KindRead, "", nil, MsgNoSamples)
	}

	bitDepth := utils.SampleWidth(src.BitDepth()) * 8
	frames := make([]int, layout.length)

	table := &wavetable.WaveTable{
		Name:   name,
		Cycles: make([]wavetable.Cycle, layout.count),
	}

	for i := range layout.count {
		if _, err := audio.ReadFull(src, frames); err != nil {
			return nil, newError(KindRead, "", err, MsgReadFailed)
		}

		cycle := make(wavetable.Cycle, layout.length)
		for j, s := range frames {
			cycle[j] = utils.Normalize(s, bitDepth)
		}

		table.Cycles[i] = cycle
	}

	return table, nil
}

// EncodeFile converts rec.Source into a wave table document at rec.Target.
// The target is written only when the whole conversion succeeded.
func EncodeFile(rec Record, cfg Config) error {
	src, err := openSource(rec.Source, cfg.registry())
	if err != nil {
		return err
	}
	defer src.Close()

	table, err := Encode(src, rec.PatchName, cfg.CycleLength)
	if err != nil {
		return withSource(err, rec.Source)
	}

	cfg.Logger.Info().
		Str("source", rec.Source).
		Str("target", rec.Target).
		Int("cycles", len(table.Cycles)).
		Bool("single", cfg.Single).
		Msg("writing wave table")

	write := func(f *os.File) error {
		if cfg.Single {
			return wavetable.WriteWaveform(f, table.Name, table.Cycles[0])
		}

		return wavetable.WriteTable(f, table)
	}

	if err := writeFileAtomic(rec.Target, write); err != nil {
		return newError(KindWrite, rec.Source, err, MsgWriteFailed)
	}

	return nil
}

// fileSource closes the underlying file together with the decoded stream.
type fileSource struct {
	audio.Source
	file *os.File
}

func (s *fileSource) Close() error {
	return errors.Join(s.Source.Close(), s.file.Close())
}

// openSource opens path with the decoder registered for its extension,
// falling back to the decoder registered for "wav".
func openSource(path string, reg *audio.Registry) (audio.Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, openError(path, err)
	}

	dec, err := decoderFor(path, reg)
	if err != nil {
		_ = f.Close()
		return nil, newError(KindOpen, path, err, MsgUnreadable)
	}

	src, err := dec.Decode(f)
	if err != nil {
		_ = f.Close()
		return nil, newError(KindOpen, path, err, MsgUnreadable)
	}

	return &fileSource{Source: src, file: f}, nil
}

// fallbackFormat decodes files whose extension has no registered decoder.
const fallbackFormat = "wav"

func decoderFor(path string, reg *audio.Registry) (audio.Decoder, error) {
	if d, ok := reg.Get(extension(path)); ok {
		return d, nil
	}

	return reg.Lookup(fallbackFormat)
}

func extension(path string) string {
	return strings.TrimPrefix(filepath.Ext(path), ".")
}
