// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"errors"
	"io"
	"math"
)

// ErrMockRead is returned by a MockSource once its failure point is reached.
var ErrMockRead = errors.New("mock read failure")

// MockSource is a test helper that generates integer PCM for testing.
// It implements the audio.Source interface (without importing it to avoid cycles).
type MockSource struct {
	sampleRate  int
	channels    int
	bitDepth    int
	totalFrames int // Total frames to generate
	generated   int // Frames generated so far
	failAfter   int // Frames after which reads fail, 0 disables
	closed      bool
	waveform    func(frame int, channel int) int
}

// NewMockSource creates a new mock PCM source.
// totalFrames is the total number of frames to generate.
// waveform is a function that generates sample values given frame index and channel.
func NewMockSource(sampleRate, channels, bitDepth, totalFrames int, waveform func(frame int, channel int) int) *MockSource {
	return &MockSource{
		sampleRate:  sampleRate,
		channels:    channels,
		bitDepth:    bitDepth,
		totalFrames: totalFrames,
		waveform:    waveform,
	}
}

// NewSilentSource creates a mock source that generates silence (all zeros).
func NewSilentSource(sampleRate, channels, bitDepth, totalFrames int) *MockSource {
	return NewMockSource(sampleRate, channels, bitDepth, totalFrames, func(frame int, channel int) int {
		return 0
	})
}

// NewRampSource creates a mono source whose sample value equals its frame index.
func NewRampSource(sampleRate, bitDepth, totalFrames int) *MockSource {
	return NewMockSource(sampleRate, 1, bitDepth, totalFrames, func(frame int, channel int) int {
		return frame
	})
}

// NewSineSource creates a mono full-scale sine source.
func NewSineSource(sampleRate, bitDepth, totalFrames int, frequency float64) *MockSource {
	peak := float64(int64(1)<<(bitDepth-1) - 1)

	return NewMockSource(sampleRate, 1, bitDepth, totalFrames, func(frame int, channel int) int {
		t := float64(frame) / float64(sampleRate)
		return int(math.Round(peak * math.Sin(2*math.Pi*frequency*t)))
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BitDepth() int   { return m.bitDepth }
func (m *MockSource) NumFrames() int  { return m.totalFrames }

func (m *MockSource) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *MockSource) Closed() bool { return m.closed }

// FailAfter makes reads fail with ErrMockRead once frames frames were handed out.
func (m *MockSource) FailAfter(frames int) {
	m.failAfter = frames
}

// Reset resets the generated frame counter to allow re-reading
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadFrames(dst []int) (int, error) {
	if m.failAfter > 0 && m.generated >= m.failAfter {
		return 0, ErrMockRead
	}

	if m.generated >= m.totalFrames {
		return 0, io.EOF
	}

	// Calculate how many frames we can write
	framesToWrite := min(len(dst)/m.channels, m.totalFrames-m.generated)
	if m.failAfter > 0 {
		framesToWrite = min(framesToWrite, m.failAfter-m.generated)
	}

	for frame := range framesToWrite {
		for ch := range m.channels {
			dst[frame*m.channels+ch] = m.waveform(m.generated+frame, ch)
		}
	}

	m.generated += framesToWrite

	return framesToWrite * m.channels, nil
}
