// SPDX-License-Identifier: EPL-2.0

// Package audio provides the real-time mixing core: sound sources,
// the mixer and its per-sound handles.
//
// # SoundSource Interface
//
// The SoundSource interface is the foundation of the package:
//
//	type SoundSource interface {
//	    Channels() int
//	    SampleRate() int
//	    Reset()
//	    WriteSamples(buf []int16) int
//	}
//
// Samples are interleaved int16 PCM. WriteSamples returning less than
// len(buf) signals the end of the stream; Reset rewinds a source so
// the same samples can be produced again. Decoders, the converters and
// the Mixer itself all implement this interface, so they can be
// composed freely.
//
// # Mixing
//
// A Mixer combines any number of sounds into one stream:
//
//	mixer := audio.NewMixer(2, 44100)
//	sound := audio.NewSound(mixer, src, nil)
//	sound.SetVolume(0.8)
//	sound.Play()
//
//	buf := make([]int16, 4096)
//	mixer.WriteSamples(buf) // mixed output of every playing sound
//
// Playing sounds are summed with saturating addition: simultaneous
// sounds that sum past the int16 range clip at the boundary instead of
// wrapping into digital noise.
//
// # Handles
//
// Sound is a cheap handle that forwards lifecycle calls (Play, Pause,
// Stop, Reset, SetVolume, SetLoop, SetEffect) to the shared mixer. All
// mixer state lives behind a single lock, so handles can be driven
// from any goroutine while another drains the mixer. Closing a handle
// never cuts a sound off; the mixer removes the sound once it finishes
// on its own.
//
// # Format Conversion
//
// ChannelConverter and SampleRateConverter wrap a source to present a
// different channel count or sample rate. Mixer.SetConfig uses them to
// re-wrap every sound in place when the output format changes, and
// they can be stacked manually as well:
//
//	src = audio.NewChannelConverter(src, 2)
//	src = audio.NewSampleRateConverter(src, 48000)
//
// # Format Registry
//
// The registry allows dynamic decoder registration:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, _ := registry.Get("wav")
//
// This is useful for applications that need to support multiple
// formats.
//
// # Sample Format
//
// Audio samples are raw int16 PCM values in [-32768, 32767]. Effects
// receive the sample widened to float32 and may return any value; the
// result is clamped back to the int16 range before mixing.
package audio
