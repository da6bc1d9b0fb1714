// SPDX-License-Identifier: EPL-2.0

package fathomwt

import (
	"io"
	"os"

	"github.com/ik5/fathomwt/formats/wav"
	"github.com/ik5/fathomwt/utils"
	"github.com/ik5/fathomwt/wavetable"
)

// WAVSuffix is appended to a wave table path to name its decoded WAV file.
const WAVSuffix = ".wav"

// Decode parses a wave table document and returns its samples as 32-bit
// PCM, every wave concatenated in document order.
func Decode(r io.Reader) ([]int32, error) {
	samples, err := wavetable.Read(r)
	if err != nil {
		return nil, newError(KindParse, "", err, MsgParseFailed)
	}

	pcm := make([]int32, len(samples))
	for i, v := range samples {
		pcm[i] = utils.Denormalize32(v)
	}

	return pcm, nil
}

// DecodeFile converts the wave table at path into a mono 32-bit WAV file
// named path + ".wav" and returns that name.
func DecodeFile(path string, cfg Config) (string, error) {
	target := path + WAVSuffix

	return target, DecodeFileTo(path, target, cfg)
}

// DecodeFileTo converts the wave table at src into a mono 32-bit WAV file
// at dst.
func DecodeFileTo(src, dst string, cfg Config) error {
	f, err := os.Open(src)
	if err != nil {
		return openError(src, err)
	}
	defer f.Close()

	pcm, err := Decode(f)
	if err != nil {
		return withSource(err, src)
	}

	cfg.Logger.Info().
		Str("source", src).
		Str("target", dst).
		Int("samples", len(pcm)).
		Msg("writing wav")

	write := func(out *os.File) error {
		return wav.WriteWAV32(out, OutputSampleRate, pcm)
	}

	if err := writeFileAtomic(dst, write); err != nil {
		return newError(KindWrite, src, err, MsgWriteFailed)
	}

	return nil
}
