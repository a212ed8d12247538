// SPDX-License-Identifier: EPL-2.0

// Package audmix is a real-time audio mixing engine.
//
// The heavy lifting lives in the audio subpackage: a Mixer combines
// any number of int16 PCM sources into one interleaved stream, with
// per-sound volume, looping, effects and Sound handles. This package
// adds the two ways of getting that stream out:
//
//   - AudioEngine plays a mixer through the default audio device
//     (ebitengine/oto).
//   - RenderWAV16 renders a source offline into a WAV file.
//
// # Playing sounds
//
//	engine, err := audmix.New(audmix.Config{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer engine.Close()
//
//	f, _ := os.Open("clip.wav")
//	src, _ := (wav.Decoder{}).Decode(f)
//
//	sound := engine.NewSound(src, nil)
//	defer sound.Close()
//	sound.Play()
//
// NewSound adapts any decoded clip to the device format, so sources of
// any sample rate and channel count mix together.
//
// # Offline rendering
//
//	mixer := audio.NewMixer(2, 44100)
//	// ... add and play sounds ...
//	out, _ := os.Create("out.wav")
//	audmix.RenderWAV16(out, mixer, 44100*10*2)
//
// # File formats
//
// Decoders for WAV, MP3, Ogg Vorbis and AIFF live under formats/; the
// beepcompat package bridges to the faiface/beep streamer ecosystem.
package audmix
