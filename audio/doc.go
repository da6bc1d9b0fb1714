// SPDX-License-Identifier: EPL-2.0

// Package audio provides the integer PCM source abstraction shared by the
// container decoders.
//
// # Source Interface
//
// The Source interface describes an opened PCM stream:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    BitDepth() int
//	    NumFrames() int
//	    ReadFrames(dst []int) (int, error)
//	    Close() error
//	}
//
// Samples are delivered exactly as stored in the container: a 16-bit file
// yields values in [-32768, 32767], a 32-bit file yields the full int32
// range. Scaling to floats is the caller's business (see package utils).
//
// Metadata (channels, bit depth, frame count) is available right after
// decoding, before any sample is read, so a caller can reject a stream
// without touching its data.
//
// # Format Registry
//
// The registry maps file extensions to decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	registry.Register("aiff", aiff.Decoder{})
//	decoder, _ := registry.Get("WAV")
//
// Keys are case-insensitive. Formats returns the sorted key list.
//
// # Reading
//
// ReadFrames returns io.EOF when no more data is available. ReadFull keeps
// reading until the destination is full and reports a short stream as
// io.ErrUnexpectedEOF:
//
//	cycle := make([]int, 2048)
//	if _, err := audio.ReadFull(src, cycle); err != nil {
//	    return err // truncated or unreadable data
//	}
package audio
