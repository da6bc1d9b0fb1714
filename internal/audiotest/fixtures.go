// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"os"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// WAVFormatPCM and WAVFormatFloat are the fmt chunk format tags.
const (
	WAVFormatPCM   = 1
	WAVFormatFloat = 3
)

// WAVFormatExtensible is the fmt chunk tag of the extensible layout, whose
// real format sits in the sub-format GUID.
const WAVFormatExtensible = 0xFFFE

// extensibleGUIDTail follows the format tag in every KSDATAFORMAT sub-format
// GUID.
var extensibleGUIDTail = [12]byte{
	0x00, 0x00, 0x10, 0x00, 0x80, 0x00, 0x00, 0xAA, 0x00, 0x38, 0x9B, 0x71,
}

// ExtensibleWAV returns a mono WAV file in the extensible layout whose
// sub-format GUID carries subFormat (WAVFormatPCM or WAVFormatFloat). Each
// value of data is stored little-endian in bitDepth/8 bytes, so float
// samples are passed as their bit patterns.
func ExtensibleWAV(sampleRate, bitDepth int, subFormat uint32, data []int) []byte {
	width := bitDepth / 8
	dataSize := uint32(len(data) * width)

	fmtChunk := struct {
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
		SubFormatTail  [12]byte
	}{
		AudioFormat:    WAVFormatExtensible,
		NumChannels:    1,
		SampleRate:     uint32(sampleRate),
		AvgBytesPerSec: uint32(sampleRate * width),
		BlockAlign:     uint16(width),
		BitsPerSample:  uint16(bitDepth),
		ExtensionSize:  22,
		ValidBits:      uint16(bitDepth),
		ChannelMask:    4,
		SubFormat:      subFormat,
		SubFormatTail:  extensibleGUIDTail,
	}

	fmtSize := uint32(binary.Size(fmtChunk))

	buf := new(bytes.Buffer)

	buf.WriteString("RIFF")
	_ = binary.Write(buf, binary.LittleEndian, 4+8+fmtSize+8+dataSize)
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	_ = binary.Write(buf, binary.LittleEndian, fmtSize)
	_ = binary.Write(buf, binary.LittleEndian, fmtChunk)

	buf.WriteString("data")
	_ = binary.Write(buf, binary.LittleEndian, dataSize)

	sample := make([]byte, 4)
	for _, v := range data {
		binary.LittleEndian.PutUint32(sample, uint32(v))
		buf.Write(sample[:width])
	}

	return buf.Bytes()
}

// WriteWAVExtensible writes ExtensibleWAV to path.
func WriteWAVExtensible(path string, sampleRate, bitDepth int, subFormat uint32, data []int) error {
	if err := os.WriteFile(path, ExtensibleWAV(sampleRate, bitDepth, subFormat, data), 0o644); err != nil {
		return fmt.Errorf("writing fixture: %w", err)
	}

	return nil
}

// WriteWAV writes interleaved integer samples into a PCM WAV file at path.
// 8-bit data must already be unsigned (0..255), as WAV stores it.
func WriteWAV(path string, sampleRate, bitDepth, channels int, data []int) error {
	return WriteWAVFormat(path, sampleRate, bitDepth, channels, WAVFormatPCM, data)
}

// WriteWAVFormat is WriteWAV with an explicit fmt chunk format tag, used to
// produce files the converter must refuse.
func WriteWAVFormat(path string, sampleRate, bitDepth, channels, audioFormat int, data []int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating fixture: %w", err)
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	enc := wav.NewEncoder(f, sampleRate, bitDepth, channels, audioFormat)

	if err := enc.Write(intBuffer(sampleRate, bitDepth, channels, data)); err != nil {
		return fmt.Errorf("writing fixture samples: %w", err)
	}

	return enc.Close()
}

// WriteAIFF writes interleaved integer samples into an AIFF file at path.
func WriteAIFF(path string, sampleRate, bitDepth, channels int, data []int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating fixture: %w", err)
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	enc := aiff.NewEncoder(f, sampleRate, bitDepth, channels)

	if err := enc.Write(intBuffer(sampleRate, bitDepth, channels, data)); err != nil {
		return fmt.Errorf("writing fixture samples: %w", err)
	}

	return enc.Close()
}

func intBuffer(sampleRate, bitDepth, channels int, data []int) *goaudio.IntBuffer {
	return &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  sampleRate,
		},
		Data:           data,
		SourceBitDepth: bitDepth,
	}
}

// Ramp returns n samples cycling through [-span, span) in unit steps.
func Ramp(n, span int) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = i%(2*span) - span
	}

	return data
}
