// SPDX-License-Identifier: EPL-2.0

package fathomwt

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/ik5/fathomwt/audio"
	"github.com/ik5/fathomwt/formats/aiff"
	"github.com/ik5/fathomwt/formats/wav"
	"github.com/rs/zerolog"
)

const (
	// DefaultCycleLength is the number of frames of one wave table cycle.
	DefaultCycleLength = 2048

	// OutputSampleRate is the sample rate of every decoded WAV file.
	OutputSampleRate = 44100

	DefaultCategory = "_"
	DefaultAuthor   = "_"
	DefaultComment  = "_"
	DefaultRating   = "0"
	DefaultType     = "Wave Table"

	maxRating = 10
)

// Config drives encoding and decoding. The zero value is not usable;
// start from DefaultConfig.
type Config struct {
	// CycleLength is the frame count of one cycle.
	CycleLength int

	// Metadata fields of the target file name.
	Category string
	Author   string
	Comment  string
	Rating   string
	Type     string

	// TargetDir receives converted files. Empty means next to the source.
	TargetDir string

	// Workers is the number of conversions RunBatch runs at once.
	Workers int

	// Single writes a SynthWaveform document holding the first cycle
	// instead of a full table.
	Single bool

	// Registry picks a decoder by file extension. Nil uses DefaultRegistry.
	Registry *audio.Registry

	Logger zerolog.Logger
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		CycleLength: DefaultCycleLength,
		Category:    DefaultCategory,
		Author:      DefaultAuthor,
		Comment:     DefaultComment,
		Rating:      DefaultRating,
		Type:        DefaultType,
		Workers:     1,
		Logger:      zerolog.Nop(),
	}
}

// Validate checks that c can drive a conversion.
func (c Config) Validate() error {
	if c.CycleLength < 1 {
		return fmt.Errorf("%w: cycle length %d must be positive", ErrInvalidConfig, c.CycleLength)
	}

	if c.Workers < 1 {
		return fmt.Errorf("%w: workers %d must be positive", ErrInvalidConfig, c.Workers)
	}

	rating, err := strconv.Atoi(c.Rating)
	if err != nil || rating < 0 || rating > maxRating {
		return fmt.Errorf("%w: rating %q must be an integer in [0, %d]", ErrInvalidConfig, c.Rating, maxRating)
	}

	fields := []struct {
		name  string
		value string
	}{
		{"category", c.Category},
		{"author", c.Author},
		{"comment", c.Comment},
		{"type", c.Type},
	}

	for _, f := range fields {
		// the value ends up inside a file name
		if strings.ContainsAny(f.value, `/\`) {
			return fmt.Errorf("%w: %s %q contains a path separator", ErrInvalidConfig, f.name, f.value)
		}
	}

	return nil
}

func (c Config) registry() *audio.Registry {
	if c.Registry != nil {
		return c.Registry
	}

	return DefaultRegistry()
}

// DefaultRegistry returns the shared registry of the built-in decoders:
// "wav", "aiff" and "aif".
var DefaultRegistry = sync.OnceValue(func() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})

	return reg
})
