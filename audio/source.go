// SPDX-License-Identifier: EPL-2.0

package audio

import "sync/atomic"

// SoundID identifies a sound inside a Mixer. IDs are unique for the
// lifetime of the process and are never reused, so a stale handle can
// never address a newer sound by accident.
type SoundID uint64

var soundIDCounter atomic.Uint64

func nextSoundID() SoundID {
	return SoundID(soundIDCounter.Add(1))
}

// Effect is a per-sample transform applied to a sound's output before
// volume scaling and mixing. The argument is the raw int16 sample value
// widened to float32, not a normalized [-1, 1] value.
type Effect func(float32) float32

// identityEffect is stored for sounds added with a nil effect, keeping
// the mixing loop branch-free.
func identityEffect(x float32) float32 { return x }

// SoundSource is a stream of interleaved int16 samples.
//
// WriteSamples fills buf and returns the number of samples written. A
// return value smaller than len(buf) means the source has reached its
// end for this pass. len(buf) and the returned count are always
// multiples of Channels(); implementations never split a frame across
// calls. After Reset the source reproduces the same samples from the
// start.
type SoundSource interface {
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Reset rewinds the source to its start. Idempotent.
	Reset()
	// WriteSamples fills buf with interleaved samples and returns how
	// many were written.
	WriteSamples(buf []int16) int
}

// MemSource is a SoundSource backed by an in-memory interleaved sample
// slice. The formats decoders produce it, and it is the cheapest way to
// feed generated audio to a Mixer.
type MemSource struct {
	data       []int16
	channels   int
	sampleRate int
	pos        int
}

// NewMemSource wraps data as a source. len(data) must be a multiple of
// channels, otherwise ErrDataNotFrameAligned is returned. The slice is
// not copied; the caller must not mutate it afterwards.
func NewMemSource(data []int16, channels, sampleRate int) (*MemSource, error) {
	if channels <= 0 || len(data)%channels != 0 {
		return nil, ErrDataNotFrameAligned
	}

	return &MemSource{
		data:       data,
		channels:   channels,
		sampleRate: sampleRate,
	}, nil
}

func (s *MemSource) Channels() int   { return s.channels }
func (s *MemSource) SampleRate() int { return s.sampleRate }

// Len returns the total number of samples the source holds.
func (s *MemSource) Len() int { return len(s.data) }

// Reset rewinds the source to its first sample.
func (s *MemSource) Reset() { s.pos = 0 }

func (s *MemSource) WriteSamples(buf []int16) int {
	n := copy(buf, s.data[s.pos:])
	s.pos += n
	return n
}
