package audio

import (
	"errors"
	"io"
)

// mockSource is a test helper that generates integer PCM for testing.
type mockSource struct {
	sampleRate  int
	channels    int
	bitDepth    int
	totalFrames int // Total frames to generate
	generated   int // Frames generated so far
	waveform    func(frame int, channel int) int
	failAfter   int // Fail with errMockRead once this many frames were generated, when > 0
}

var errMockRead = errors.New("mock read failure")

// newMockSource creates a new mock PCM source.
func newMockSource(sampleRate, channels, bitDepth, totalFrames int, waveform func(frame int, channel int) int) *mockSource {
	return &mockSource{
		sampleRate:  sampleRate,
		channels:    channels,
		bitDepth:    bitDepth,
		totalFrames: totalFrames,
		waveform:    waveform,
	}
}

// newRampSource creates a mono source whose sample value equals its frame index.
func newRampSource(totalFrames int) *mockSource {
	return newMockSource(44100, 1, 16, totalFrames, func(frame int, channel int) int {
		return frame
	})
}

func (m *mockSource) SampleRate() int { return m.sampleRate }
func (m *mockSource) Channels() int   { return m.channels }
func (m *mockSource) BitDepth() int   { return m.bitDepth }
func (m *mockSource) NumFrames() int  { return m.totalFrames }
func (m *mockSource) Close() error    { return nil }

func (m *mockSource) ReadFrames(dst []int) (int, error) {
	if m.failAfter > 0 && m.generated >= m.failAfter {
		return 0, errMockRead
	}

	if m.generated >= m.totalFrames {
		return 0, io.EOF
	}

	// Hand out at most 3 frames per call to exercise callers that loop
	framesToWrite := min(len(dst)/m.channels, m.totalFrames-m.generated, 3)

	for frame := range framesToWrite {
		for ch := range m.channels {
			dst[frame*m.channels+ch] = m.waveform(m.generated+frame, ch)
		}
	}

	m.generated += framesToWrite

	return framesToWrite * m.channels, nil
}
