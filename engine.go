// SPDX-License-Identifier: EPL-2.0

package audmix

import (
	"encoding/binary"
	"fmt"
	"log/slog"
	"time"

	oto "github.com/ebitengine/oto/v3"

	"github.com/ik5/audmix/audio"
)

// Default output device format.
const (
	DefaultSampleRate = 44100
	DefaultChannels   = 2
)

// Config describes the output device format.
type Config struct {
	// SampleRate in Hz. Defaults to DefaultSampleRate.
	SampleRate int

	// Channels is the interleaved channel count. Defaults to
	// DefaultChannels.
	Channels int

	// BufferSize is the device buffer length. Zero lets the driver
	// pick. Larger buffers tolerate scheduling hiccups at the price of
	// latency.
	BufferSize time.Duration
}

func (c Config) withDefaults() Config {
	if c.SampleRate <= 0 {
		c.SampleRate = DefaultSampleRate
	}
	if c.Channels <= 0 {
		c.Channels = DefaultChannels
	}

	return c
}

// AudioEngine owns the output device and the mixer feeding it. The
// device pulls samples from the mixer continuously; sounds registered
// with NewSound become audible the moment their handle plays them.
type AudioEngine struct {
	mixer  *audio.Mixer
	ctx    *oto.Context
	player *oto.Player
	config Config
}

// New opens the default audio device with the given config and starts
// a player reading from a fresh mixer. Only one engine may exist per
// process; the underlying driver context is process-wide.
func New(config Config) (*AudioEngine, error) {
	config = config.withDefaults()

	mixer := audio.NewMixer(config.Channels, config.SampleRate)

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   config.SampleRate,
		ChannelCount: config.Channels,
		Format:       oto.FormatSignedInt16LE,
		BufferSize:   config.BufferSize,
	})
	if err != nil {
		return nil, fmt.Errorf("opening audio device: %w", err)
	}
	<-ready

	player := ctx.NewPlayer(&sourceReader{src: mixer})
	player.Play()

	slog.Info("audio engine started",
		"sample_rate", config.SampleRate,
		"channels", config.Channels,
		"buffer", config.BufferSize,
	)

	return &AudioEngine{
		mixer:  mixer,
		ctx:    ctx,
		player: player,
		config: config,
	}, nil
}

// NewSound registers src with the engine's mixer and returns a handle
// for it. Sources whose format differs from the device config are
// wrapped in the needed converters first, so any decoded clip can be
// handed over as-is.
func (e *AudioEngine) NewSound(src audio.SoundSource, effect audio.Effect) *audio.Sound {
	src = matchFormat(src, e.config.Channels, e.config.SampleRate)
	return audio.NewSound(e.mixer, src, effect)
}

// Mixer exposes the engine's mixer for direct control.
func (e *AudioEngine) Mixer() *audio.Mixer { return e.mixer }

// Suspend pauses the audio device without losing any sound state.
func (e *AudioEngine) Suspend() error { return e.ctx.Suspend() }

// Resume continues playback after Suspend.
func (e *AudioEngine) Resume() error { return e.ctx.Resume() }

// Close stops playback and releases the player.
func (e *AudioEngine) Close() error {
	slog.Info("audio engine closing")
	return e.player.Close()
}

// matchFormat wraps src with converters until it matches the target
// format. Channels are converted first so the rate converter works on
// the final channel layout.
func matchFormat(src audio.SoundSource, channels, sampleRate int) audio.SoundSource {
	if src.Channels() != channels {
		src = audio.NewChannelConverter(src, channels)
	}
	if src.SampleRate() != sampleRate {
		src = audio.NewSampleRateConverter(src, sampleRate)
	}

	return src
}

// sourceReader adapts a SoundSource to the io.Reader the output device
// expects: interleaved int16 frames as little-endian bytes. Reads are
// truncated to whole frames.
type sourceReader struct {
	src audio.SoundSource
	buf []int16
}

func (r *sourceReader) Read(p []byte) (int, error) {
	frame := r.src.Channels() * 2
	samples := len(p) / frame * frame / 2
	if samples == 0 {
		return 0, nil
	}

	if len(r.buf) < samples {
		r.buf = make([]int16, samples)
	}
	buf := r.buf[:samples]

	n := r.src.WriteSamples(buf)
	for i, s := range buf[:n] {
		binary.LittleEndian.PutUint16(p[2*i:2*i+2], uint16(s))
	}

	return n * 2, nil
}
