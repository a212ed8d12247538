// SPDX-License-Identifier: EPL-2.0

package audmix

import (
	"fmt"
	"io"

	"github.com/ik5/audmix/audio"
	"github.com/ik5/audmix/formats/wav"
)

// RenderWAV16 pulls the given number of samples from src and writes
// them to w as a 16-bit PCM WAV file. samples must be a multiple of
// the source's channel count. If the source runs out before the
// requested length, the remainder is rendered as silence; a Mixer
// never runs out, so rendering a mixer always produces the full
// length.
//
// This is the offline counterpart of playing src through an
// AudioEngine:
//
//	mixer := audio.NewMixer(2, 44100)
//	// ... add and play sounds ...
//	f, _ := os.Create("out.wav")
//	err := audmix.RenderWAV16(f, mixer, 44100*10*2) // ten seconds
func RenderWAV16(w io.Writer, src audio.SoundSource, samples int) error {
	channels := src.Channels()
	if channels <= 0 || samples < 0 || samples%channels != 0 {
		return fmt.Errorf("render length: %w", audio.ErrDataNotFrameAligned)
	}

	pcm := make([]int16, samples)

	n := 0
	for n < samples {
		wrote := src.WriteSamples(pcm[n:])
		if wrote == 0 {
			break
		}
		n += wrote
	}
	// pcm[n:] stays zero: silence padding for an exhausted source.

	if err := wav.WriteWAV16(w, src.SampleRate(), channels, pcm); err != nil {
		return fmt.Errorf("writing rendered audio: %w", err)
	}

	return nil
}
