// SPDX-License-Identifier: EPL-2.0

// Package fathomwt converts between mono integer PCM audio and the XML wave
// table format of the Fathom synthesizer.
//
// # Supported Formats
//
// Sources are decoded through an audio.Registry keyed by file extension:
//   - WAV (integer PCM) via formats/wav
//   - AIFF via formats/aiff
//
// A source converts when it is mono, its samples are 16 or 32 bit wide and
// its frame count is at most the cycle length or a multiple of it.
//
// # PCM to Wave Table
//
// EncodeFile reads a source, cuts it into cycles of Config.CycleLength
// frames and writes the wave table document:
//
//	cfg := fathomwt.DefaultConfig()
//	rec := fathomwt.NewRecord("Perfect_Saw.wav", "", cfg)
//	// rec.Target is "Perfect Saw._._._.0.Wave Table.xml"
//	err := fathomwt.EncodeFile(rec, cfg)
//
// Encode does the same on an already opened audio.Source and returns the
// wavetable.WaveTable instead of writing it.
//
// A source no longer than one cycle becomes a single cycle of its own
// length. Samples are divided by the full-scale value of their width, 32767
// for 16 bit and 2147483647 for 32 bit.
//
// # Wave Table to PCM
//
// DecodeFile writes every cycle of a table, concatenated, into a mono
// 32-bit 44100 Hz WAV file named after the table with ".wav" appended:
//
//	out, err := fathomwt.DecodeFile("Perfect Saw._._._.0.Wave Table.xml", cfg)
//
// Output is always 32 bit, so a 16-bit source does not come back bit exact
// but within one 16-bit step.
//
// # Batches
//
// Collect walks a directory and plans one Record per decodable file.
// RunBatch converts them, never stopping on a failure, and WriteReport
// prints what failed:
//
//	records, err := fathomwt.Collect("waves", "out", cfg)
//	outcomes := fathomwt.RunBatch(records, cfg)
//	_ = fathomwt.WriteReport(os.Stderr, outcomes, cfg.CycleLength)
//
// # Errors
//
// Every conversion failure is a *ConversionError. Its Messages list every
// problem found, and errors.Is matches it against ErrOpen, ErrValidation,
// ErrRead, ErrParse or ErrWrite by kind.
//
// Targets are written through a temporary file renamed into place, so a
// failed conversion never leaves a partial file behind.
package fathomwt
