// SPDX-License-Identifier: EPL-2.0

// Package beepcompat bridges the mixer to the faiface/beep streamer
// ecosystem.
//
// FromStreamer turns any beep.StreamSeeker (beep's decoders, effects,
// generators) into an audio.SoundSource that can be added to a Mixer:
//
//	streamer, format, _ := beepwav.Decode(f)
//	src := beepcompat.FromStreamer(streamer, format)
//	sound := audio.NewSound(mixer, src, nil)
//
// ToStreamer goes the other way, presenting a SoundSource (a single
// clip or a whole Mixer) as a beep.Streamer:
//
//	streamer, err := beepcompat.ToStreamer(mixer)
//
// Both directions convert between beep's [2]float64 frames and the
// mixer's interleaved int16 samples.
package beepcompat
