package audio

import "math"

// mockSource is a test helper that generates interleaved int16 audio.
// It implements the SoundSource interface and can generate various
// waveforms.
type mockSource struct {
	sampleRate  int
	channels    int
	totalFrames int // Total frames to generate
	pos         int // Frames generated so far
	resets      int // Reset calls observed
	waveform    func(frame int, channel int) int16
}

// newMockSource creates a new mock audio source.
// totalFrames is the total number of frames to generate.
// waveform generates sample values given frame index and channel.
func newMockSource(sampleRate, channels, totalFrames int, waveform func(frame int, channel int) int16) *mockSource {
	return &mockSource{
		sampleRate:  sampleRate,
		channels:    channels,
		totalFrames: totalFrames,
		waveform:    waveform,
	}
}

// newSilentSource creates a mock source that generates silence (all zeros).
func newSilentSource(sampleRate, channels, totalFrames int) *mockSource {
	return newMockSource(sampleRate, channels, totalFrames, func(frame int, channel int) int16 {
		return 0
	})
}

// newSineSource creates a mock source that generates a sine wave.
func newSineSource(sampleRate, channels, totalFrames int, frequency float64, amplitude int16) *mockSource {
	return newMockSource(sampleRate, channels, totalFrames, func(frame int, channel int) int16 {
		t := float64(frame) / float64(sampleRate)
		return int16(float64(amplitude) * math.Sin(2*math.Pi*frequency*t))
	})
}

// newConstantSource creates a mock source with constant value.
func newConstantSource(sampleRate, channels, totalFrames int, value int16) *mockSource {
	return newMockSource(sampleRate, channels, totalFrames, func(frame int, channel int) int16 {
		return value
	})
}

// newRampSource creates a mock source whose sample value equals its
// frame index, making read positions visible in tests.
func newRampSource(sampleRate, channels, totalFrames int) *mockSource {
	return newMockSource(sampleRate, channels, totalFrames, func(frame int, channel int) int16 {
		return int16(frame)
	})
}

func (m *mockSource) SampleRate() int { return m.sampleRate }
func (m *mockSource) Channels() int   { return m.channels }

func (m *mockSource) Reset() {
	m.pos = 0
	m.resets++
}

func (m *mockSource) WriteSamples(buf []int16) int {
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
