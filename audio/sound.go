// SPDX-License-Identifier: EPL-2.0

package audio

import "sync"

// Sound is a handle to one sound inside a Mixer. All durable state
// lives in the mixer's entry; the handle only forwards keyed
// operations under the mixer's lock.
//
// Closing the handle does not cut the sound off. It marks the sound
// for removal, and the mixer drops it once a non-looping pass ends, so
// a sound started and then abandoned still plays to completion.
type Sound struct {
	mixer     *Mixer
	id        SoundID
	closeOnce sync.Once
}

// NewSound adds src to mixer and returns a handle to it. The sound
// starts idle; call Play to start it.
func NewSound(mixer *Mixer, src SoundSource, effect Effect) *Sound {
	return &Sound{
		mixer: mixer,
		id:    mixer.AddSound(src, effect),
	}
}

// ID of the underlying sound.
func (s *Sound) ID() SoundID { return s.id }

// Play starts the sound, or resumes it after Pause or Stop. Playing an
// already playing sound does nothing.
func (s *Sound) Play() { s.mixer.Play(s.id) }

// Pause halts the sound, keeping its position. A later Play resumes
// from where it was. Pausing a sound that is not playing does nothing.
func (s *Sound) Pause() { s.mixer.Pause(s.id) }

// Stop halts the sound and rewinds it to its start. The rewind happens
// even when the sound is not playing.
func (s *Sound) Stop() { s.mixer.Stop(s.id) }

// Reset rewinds the sound to its start without pausing it.
func (s *Sound) Reset() { s.mixer.ResetSound(s.id) }

// SetVolume changes the sound's volume. 1.0 is the recorded level.
func (s *Sound) SetVolume(volume float32) { s.mixer.SetVolume(s.id, volume) }

// SetLoop controls whether the sound repeats every time it reaches its
// end.
func (s *Sound) SetLoop(looping bool) { s.mixer.SetLoop(s.id, looping) }

// SetEffect replaces the sound's per-sample transform. A nil effect
// plays the samples unchanged.
func (s *Sound) SetEffect(effect Effect) { s.mixer.SetEffect(s.id, effect) }

// Close releases the handle. The sound keeps playing until it ends and
// only then is removed from the mixer. Close is safe to call more than
// once; only the first call has any effect.
func (s *Sound) Close() {
	s.closeOnce.Do(func() {
		s.mixer.DropSound(s.id)
	})
}
