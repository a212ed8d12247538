// SPDX-License-Identifier: EPL-2.0

package audiotest

import "math"

// MockSource is a test helper that generates interleaved int16 audio.
// It implements the audio.SoundSource interface (without importing it
// to avoid cycles).
type MockSource struct {
	sampleRate  int
	channels    int
	totalFrames int // Total frames to generate
	pos         int // Frames generated so far
	waveform    func(frame int, channel int) int16
}

// NewMockSource creates a new mock audio source.
// totalFrames is the total number of frames to generate.
// waveform generates sample values given frame index and channel.
func NewMockSource(sampleRate, channels, totalFrames int, waveform func(frame int, channel int) int16) *MockSource {
	return &MockSource{
		sampleRate:  sampleRate,
		channels:    channels,
		totalFrames: totalFrames,
		pos:         0,
		waveform:    waveform,
	}
}

// NewSilentSource creates a mock source that generates silence (all zeros).
func NewSilentSource(sampleRate, channels, totalFrames int) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(frame int, channel int) int16 {
		return 0
	})
}

// NewSineSource creates a mock source that generates a sine wave at the
// given frequency and peak amplitude.
func NewSineSource(sampleRate, channels, totalFrames int, frequency float64, amplitude int16) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(frame int, channel int) int16 {
		t := float64(frame) / float64(sampleRate)
		return int16(float64(amplitude) * math.Sin(2*math.Pi*frequency*t))
	})
}

// NewConstantSource creates a mock source with a constant sample value.
func NewConstantSource(sampleRate, channels, totalFrames int, value int16) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(frame int, channel int) int16 {
		return value
	})
}

// NewRampSource creates a mock source whose sample value equals its
// frame index, which makes read positions visible in tests.
func NewRampSource(sampleRate, channels, totalFrames int) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(frame int, channel int) int16 {
		return int16(frame)
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }

// Reset rewinds the source to its first frame.
func (m *MockSource) Reset() { m.pos = 0 }

func (m *MockSource) WriteSamples(buf []int16) int {
	frames := len(buf) / m.channels
	if remaining := m.totalFrames - m.pos; frames > remaining {
		frames = remaining
	}

	for f := range frames {
		for ch := range m.channels {
			buf[f*m.channels+ch] = m.waveform(m.pos+f, ch)
		}
	}

	m.pos += frames
	return frames * m.channels
}
