// SPDX-License-Identifier: EPL-2.0

package beepcompat

import (
	"errors"
	"fmt"

	"github.com/faiface/beep"

	"github.com/ik5/audmix/audio"
	"github.com/ik5/audmix/utils"
)

// ErrChannelCount is returned by ToStreamer for sources whose channel
// layout cannot be presented as beep's stereo frames.
var ErrChannelCount = errors.New("only mono and stereo sources can stream")

// FromStreamer adapts a beep.StreamSeeker to an audio.SoundSource so
// anything from the beep ecosystem can be added to a Mixer. The source
// is always stereo, matching beep's [2]float64 frames; format supplies
// the sample rate. Reset seeks the streamer back to its start.
func FromStreamer(streamer beep.StreamSeeker, format beep.Format) audio.SoundSource {
	return &streamerSource{
		streamer:   streamer,
		sampleRate: int(format.SampleRate),
	}
}

type streamerSource struct {
	streamer   beep.StreamSeeker
	sampleRate int
	frames     [][2]float64
}

func (s *streamerSource) Channels() int   { return 2 }
func (s *streamerSource) SampleRate() int { return s.sampleRate }

func (s *streamerSource) Reset() {
	// SoundSource rewinds unconditionally; a streamer that cannot seek
	// back keeps its position and simply replays nothing.
	_ = s.streamer.Seek(0)
}

func (s *streamerSource) WriteSamples(buf []int16) int {
	frames := len(buf) / 2
	if len(s.frames) < frames {
		s.frames = make([][2]float64, frames)
	}
	fr := s.frames[:frames]

	n, _ := s.streamer.Stream(fr)
	for i := range n {
		buf[2*i] = utils.Float32ToInt16(float32(fr[i][0]))
		buf[2*i+1] = utils.Float32ToInt16(float32(fr[i][1]))
	}

	return n * 2
}

// ToStreamer adapts an audio.SoundSource to a beep.Streamer. Mono
// sources are presented on both output channels; stereo sources stream
// as-is; any other layout is rejected with ErrChannelCount (convert
// with audio.NewChannelConverter first).
func ToStreamer(src audio.SoundSource) (beep.Streamer, error) {
	switch src.Channels() {
	case 1:
		return &sourceStreamer{src: src, mono: true}, nil
	case 2:
		return &sourceStreamer{src: src}, nil
	default:
		return nil, fmt.Errorf("%d channels: %w", src.Channels(), ErrChannelCount)
	}
}

type sourceStreamer struct {
	src  audio.SoundSource
	mono bool
	buf  []int16
}

func (s *sourceStreamer) Stream(samples [][2]float64) (int, bool) {
	per := 2
	if s.mono {
		per = 1
	}

	need := len(samples) * per
	if len(s.buf) < need {
		s.buf = make([]int16, need)
	}
	buf := s.buf[:need]

	n := s.src.WriteSamples(buf)
	frames := n / per
	for i := range frames {
		if s.mono {
			v := float64(utils.Int16ToFloat32(buf[i]))
			samples[i][0], samples[i][1] = v, v
		} else {
			samples[i][0] = float64(utils.Int16ToFloat32(buf[2*i]))
			samples[i][1] = float64(utils.Int16ToFloat32(buf[2*i+1]))
		}
	}

	return frames, frames > 0
}

func (s *sourceStreamer) Err() error { return nil }
