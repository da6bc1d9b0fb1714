// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"bytes"
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"
)

// Source is an opened integer PCM stream.
type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// BitDepth of a single sample as declared by the container.
	BitDepth() int
	// NumFrames is the total number of frames declared by the container.
	NumFrames() int
	// ReadFrames fills dst with interleaved signed integer samples exactly as
	// stored (no scaling). Returns the number of ints written, not frames.
	// When n == 0 with err == io.EOF, the stream is finished.
	ReadFrames(dst []int) (n int, err error)

	// Close releases any resources.
	Close() error
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Registry for decoders by format key (e.g., "wav", "aiff").
// Keys are matched case-insensitively.
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[strings.ToLower(format)] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[strings.ToLower(format)]
	return d, ok
}

// Lookup is Get with an error: it wraps ErrUnsupportedFormat when no decoder
// is registered for format.
func (r *Registry) Lookup(format string) (Decoder, error) {
	d, ok := r.Get(format)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	return d, nil
}

// Formats returns the registered format keys in sorted order.
func (r *Registry) Formats() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	formats := make([]string, 0, len(r.codecs))
	for k := range r.codecs {
		formats = append(formats, k)
	}
	slices.Sort(formats)

	return formats
}

// AsReadSeeker returns r itself when it can seek, otherwise it buffers the
// whole input in memory. The go-audio decoders need to seek.
func AsReadSeeker(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("buffering audio data: %w", err)
	}

	return bytes.NewReader(data), nil
}

// ReadFull reads from src until dst is full. It returns io.ErrUnexpectedEOF
// when the stream ends before dst is filled, mirroring io.ReadFull.
func ReadFull(src Source, dst []int) (int, error) {
	total := 0
	for total < len(dst) {
		n, err := src.ReadFrames(dst[total:])
		total += n

		if err == io.EOF {
			break
		}

		if err != nil {
			return total, fmt.Errorf("%w", err)
		}

		if n == 0 {
			break
		}
	}

	if total < len(dst) {
		return total, io.ErrUnexpectedEOF
	}

	return total, nil
}
