// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// This package uses github.com/go-audio/aiff to decode AIFF files.
// Samples are stored big-endian; the decoder hands them back as plain
// integers in the file's own range, the same way the wav package does.
//
// # Decoding AIFF Files
//
//	f, _ := os.Open("saw.aiff")
//	defer f.Close()
//
//	src, err := aiff.Decoder{}.Decode(f)
//	if err != nil {
//	    // ErrNotAiffFile or ErrUnsupportedAiffLayout
//	}
//
//	frames := make([]int, src.NumFrames()*src.Channels())
//	_, err = audio.ReadFull(src, frames)
//
// Channel count and bit depth are reported as found. Rejecting stereo or
// 24-bit material is the caller's job.
package aiff
