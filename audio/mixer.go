// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"sync"

	"github.com/ik5/audmix/utils"
)

// soundEntry is the mixer's private record for one added sound.
type soundEntry struct {
	id      SoundID
	src     SoundSource // replaceable: SetConfig may re-wrap it in place
	volume  float32
	looping bool
	remove  bool // handle closed; drop once a non-looping pass ends
	effect  Effect
}

// Mixer combines any number of sounds into a single interleaved int16
// stream. It implements SoundSource itself, so mixers can be nested or
// handed straight to an output device.
//
// sounds is partitioned: indices [0, playing) hold the sounds currently
// producing audio, [playing, len) the paused and stopped ones. Moves
// between the partitions are swap-based, so order inside a partition is
// unspecified.
//
// One mutex guards the whole bundle (entries, partition boundary and
// config). Every exported method holds it for its full duration; the
// render thread's WriteSamples and handle calls simply serialize.
type Mixer struct {
	mu         sync.Mutex
	sounds     []*soundEntry
	playing    int
	channels   int
	sampleRate int
	scratch    []int16
}

// NewMixer returns an empty mixer producing interleaved samples with
// the given channel count at the given sample rate.
func NewMixer(channels, sampleRate int) *Mixer {
	return &Mixer{
		channels:   channels,
		sampleRate: sampleRate,
	}
}

// AddSound registers src with the mixer and returns its id. The sound
// starts idle with volume 1 and looping off. A nil effect plays the
// samples unchanged.
//
// Every operation keyed by a SoundID is a silent no-op when the id is
// not present anymore; a handle may legitimately outlive its sound.
func (m *Mixer) AddSound(src SoundSource, effect Effect) SoundID {
	if effect == nil {
		effect = identityEffect
	}

	entry := &soundEntry{
		id:     nextSoundID(),
		src:    src,
		volume: 1.0,
		effect: effect,
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.sounds = append(m.sounds, entry)
	return entry.id
}

// Play moves the sound into the playing partition. Does nothing if the
// sound is already playing or the id is unknown. The read position is
// untouched, so a paused sound resumes where it left off.
func (m *Mixer) Play(id SoundID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := m.playing; i < len(m.sounds); i++ {
		if m.sounds[i].id == id {
			m.sounds[i], m.sounds[m.playing] = m.sounds[m.playing], m.sounds[i]
			m.playing++
			return
		}
	}
}

// Pause moves the sound out of the playing partition, keeping its read
// position. Does nothing if the sound is not playing.
func (m *Mixer) Pause(id SoundID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := 0; i < m.playing; i++ {
		if m.sounds[i].id == id {
			m.playing--
			m.sounds[i], m.sounds[m.playing] = m.sounds[m.playing], m.sounds[i]
			return
		}
	}
}

// Stop rewinds the sound to its start and, if it was playing, pauses
// it. The rewind happens whether or not the sound was playing.
func (m *Mixer) Stop(id SoundID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, entry := range m.sounds {
		if entry.id == id {
			entry.src.Reset()
			if i < m.playing {
				m.playing--
				m.sounds[i], m.sounds[m.playing] = m.sounds[m.playing], m.sounds[i]
			}
			return
		}
	}
}

// ResetSound rewinds the sound to its start without changing whether it
// is playing.
func (m *Mixer) ResetSound(id SoundID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, entry := range m.sounds {
		if entry.id == id {
			entry.src.Reset()
			return
		}
	}
}

// SetVolume changes the sound's volume. 1.0 plays the samples at their
// recorded level.
func (m *Mixer) SetVolume(id SoundID, volume float32) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, entry := range m.sounds {
		if entry.id == id {
			entry.volume = volume
			return
		}
	}
}

// SetLoop controls whether the sound restarts from its beginning every
// time it reaches its end.
func (m *Mixer) SetLoop(id SoundID, looping bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, entry := range m.sounds {
		if entry.id == id {
			entry.looping = looping
			return
		}
	}
}

// SetEffect replaces the sound's per-sample transform. A nil effect
// plays the samples unchanged.
func (m *Mixer) SetEffect(id SoundID, effect Effect) {
	if effect == nil {
		effect = identityEffect
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, entry := range m.sounds {
		if entry.id == id {
			entry.effect = effect
			return
		}
	}
}

// DropSound marks the sound for removal. The sound is not cut off: it
// keeps playing (or stays idle) until the mixing loop sees it finish a
// non-looping pass, and only then is it removed for good. Sound.Close
// calls this.
func (m *Mixer) DropSound(id SoundID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, entry := range m.sounds {
		if entry.id == id {
			entry.remove = true
			return
		}
	}
}

// SetConfig changes the mixer's channel count and sample rate. Sounds
// already added keep playing: any sound whose source does not match the
// new config is wrapped in the needed converters in place (channel
// count first, then sample rate, each only when it differs), keeping
// its read position, its order and its id.
func (m *Mixer) SetConfig(channels, sampleRate int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.channels == channels && m.sampleRate == sampleRate {
		return
	}

	for _, entry := range m.sounds {
		if entry.src.Channels() != channels {
			entry.src = NewChannelConverter(entry.src, channels)
		}
		if entry.src.SampleRate() != sampleRate {
			entry.src = NewSampleRateConverter(entry.src, sampleRate)
		}
	}

	m.channels = channels
	m.sampleRate = sampleRate
}

func (m *Mixer) Channels() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.channels
}

func (m *Mixer) SampleRate() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.sampleRate
}

// Reset is part of SoundSource and does nothing: rewinding a whole
// mixer has no meaning. Use ResetSound for individual sounds.
func (m *Mixer) Reset() {}

// WriteSamples mixes every playing sound into buf and always reports
// the buffer fully written: a mixer with nothing to play produces
// silence, and it never signals exhaustion.
func (m *Mixer) WriteSamples(buf []int16) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	// The output always starts silent; sounds accumulate into it. This
	// also holds when the mixer is nested inside another mixer and buf
	// arrives with stale content.
	for i := range buf {
		buf[i] = 0
	}

	if m.playing == 0 {
		return len(buf)
	}

	// Scratch is grown but never shrunk, so steady-state mixing does
	// not allocate.
	if len(m.scratch) < len(buf) {
		m.scratch = make([]int16, len(buf))
	}
	scratch := m.scratch[:len(buf)]

	s := 0
	for s < m.playing {
		entry := m.sounds[s]

		// Fill scratch from the sound. A finished sound is rewound
		// right away so a later Play starts from the top; a looping
		// sound keeps filling from its start, so the loop boundary
		// carries no silence.
		n := 0
		for {
			n += entry.src.WriteSamples(scratch[n:])
			if n < len(buf) {
				entry.src.Reset()
				if entry.looping {
					continue
				}
			}
			break
		}

		// Only scratch[:n] is mixed; a stale tail from the previous
		// sound never leaks into the output.
		if d := entry.volume - 1.0; -1.0/32767 < d && d < 1.0/32767 {
			for i := 0; i < n; i++ {
				buf[i] = utils.SaturatingAddInt16(buf[i], utils.ClampInt16(entry.effect(float32(scratch[i]))))
			}
		} else {
			for i := 0; i < n; i++ {
				buf[i] = utils.SaturatingAddInt16(buf[i], utils.ClampInt16(entry.effect(float32(scratch[i]))*entry.volume))
			}
		}

		if n < len(buf) {
			// Finished a non-looping pass: demote to the idle
			// partition, then drop it for real if its handle is gone.
			// The swapped-in sound lands at s and is mixed on the next
			// iteration, so every sound that was playing when the
			// callback began is mixed exactly once.
			m.playing--
			m.sounds[s], m.sounds[m.playing] = m.sounds[m.playing], m.sounds[s]
			if entry.remove {
				last := len(m.sounds) - 1
				m.sounds[m.playing] = m.sounds[last]
				m.sounds[last] = nil
				m.sounds = m.sounds[:last]
			}
		} else {
			s++
		}
	}

	return len(buf)
}
