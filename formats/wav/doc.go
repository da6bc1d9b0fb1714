// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// It uses the github.com/go-audio/wav library for RIFF parsing and writing.
//
// # Supported Formats
//
// Decoding accepts integer PCM (format tag 1, or WAVE_FORMAT_EXTENSIBLE) at
// any bit depth, channel count and sample rate. IEEE float and compressed
// encodings are rejected with ErrNotPCM. Whether a given depth or channel
// count is usable is left to the caller: the decoder only reports it.
//
// Encoding always produces mono 32-bit integer PCM.
//
// # Decoding WAV Files
//
//	file, _ := os.Open("saw.wav")
//	defer file.Close()
//
//	src, err := wav.Decoder{}.Decode(file)
//	if err != nil {
//	    // ErrNotWavFile, ErrNotPCM or ErrNoPCMData
//	}
//
//	frames := make([]int, src.NumFrames()*src.Channels())
//	_, err = audio.ReadFull(src, frames)
//
// Samples come back unscaled: 16-bit files yield values in
// [-32768, 32767], 32-bit files the full int32 range.
//
// # Writing WAV Files
//
//	out, _ := os.Create("table.xml.wav")
//	err := wav.WriteWAV32(out, 44100, samples)
//
// The writer needs an io.WriteSeeker because go-audio patches the RIFF and
// data chunk sizes once all samples are written.
package wav
