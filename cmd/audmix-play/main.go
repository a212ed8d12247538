// SPDX-License-Identifier: EPL-2.0

// Command audmix-play mixes audio files and plays them on the default
// output device, or renders the mix offline to a WAV file.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	arg "github.com/alexflint/go-arg"

	"github.com/ik5/audmix"
	"github.com/ik5/audmix/audio"
	"github.com/ik5/audmix/formats/aiff"
	"github.com/ik5/audmix/formats/mp3"
	"github.com/ik5/audmix/formats/vorbis"
	"github.com/ik5/audmix/formats/wav"
)

type args struct {
	Files    []string      `arg:"positional,required" help:"audio files to mix (wav, mp3, ogg, aiff)"`
	Loop     bool          `arg:"--loop" help:"loop every file until interrupted"`
	Volume   float64       `arg:"--volume" default:"1.0" help:"playback volume, 1.0 plays unchanged"`
	Duration time.Duration `arg:"--duration" help:"stop after this long (default: length of the longest file)"`
	Render   string        `arg:"--render" help:"render to this WAV file instead of playing"`
	Config   string        `arg:"--config" default:"audmix.toml" help:"config file path"`
}

func (args) Description() string {
	return "audmix-play mixes audio files and plays them on the default output device"
}

var errUnknownFormat = errors.New("unknown audio format")

func main() {
	var a args
	arg.MustParse(&a)

	cfg := loadConfig(a.Config)

	logFile, err := configureLogger(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(a, cfg); err != nil {
		slog.Error("audmix-play failed", "err", err)
		os.Exit(1)
	}
}

// newRegistry maps file extensions to decoders.
func newRegistry() *audio.Registry {
	reg := audio.NewRegistry()

	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})

	return reg
}

func decodeFile(reg *audio.Registry, path string) (audio.SoundSource, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")

	dec, ok := reg.Get(ext)
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, errUnknownFormat)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	return src, nil
}

func run(a args, cfg config) error {
	reg := newRegistry()

	sources := make([]audio.SoundSource, 0, len(a.Files))

	// Longest clip length decides how long to keep going when no
	// explicit duration was given.
	var longest time.Duration
	for _, path := range a.Files {
		src, err := decodeFile(reg, path)
		if err != nil {
			return err
		}

		if m, ok := src.(interface{ Len() int }); ok {
			frames := m.Len() / src.Channels()
			d := time.Duration(frames) * time.Second / time.Duration(src.SampleRate())
			if d > longest {
				longest = d
			}
		}

		slog.Info("loaded",
			"file", path,
			"sample_rate", src.SampleRate(),
			"channels", src.Channels(),
		)

		sources = append(sources, src)
	}

	if a.Render != "" {
		return renderOffline(a, cfg, sources, longest)
	}

	return play(a, cfg, sources, longest)
}

func play(a args, cfg config, sources []audio.SoundSource, longest time.Duration) error {
	engine, err := audmix.New(audmix.Config{
		SampleRate: cfg.SampleRate,
		Channels:   cfg.Channels,
		BufferSize: cfg.Buffer,
	})
	if err != nil {
		return err
	}
	defer engine.Close()

	for _, src := range sources {
		sound := engine.NewSound(src, nil)
		defer sound.Close()

		sound.SetVolume(float32(a.Volume))
		sound.SetLoop(a.Loop)
		sound.Play()
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	timeout := a.Duration
	if timeout <= 0 {
		timeout = longest
	}

	if a.Loop && a.Duration <= 0 || timeout <= 0 {
		// No natural end: keep playing until interrupted.
		<-interrupt
		slog.Info("interrupted")
		return nil
	}

	select {
	case <-interrupt:
		slog.Info("interrupted")
	case <-time.After(timeout):
	}

	return nil
}

func renderOffline(a args, cfg config, sources []audio.SoundSource, longest time.Duration) error {
	mixer := audio.NewMixer(cfg.Channels, cfg.SampleRate)

	for _, src := range sources {
		if src.Channels() != cfg.Channels {
			src = audio.NewChannelConverter(src, cfg.Channels)
		}
		if src.SampleRate() != cfg.SampleRate {
			src = audio.NewSampleRateConverter(src, cfg.SampleRate)
		}

		sound := audio.NewSound(mixer, src, nil)
		defer sound.Close()

		sound.SetVolume(float32(a.Volume))
		sound.SetLoop(a.Loop)
		sound.Play()
	}

	d := a.Duration
	if d <= 0 {
		d = longest
	}
	if d <= 0 {
		return errors.New("--duration is required when rendering looping input")
	}

	frames := int(int64(d) * int64(cfg.SampleRate) / int64(time.Second))
	samples := frames * cfg.Channels

	f, err := os.Create(a.Render)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	defer f.Close()

	if err := audmix.RenderWAV16(f, mixer, samples); err != nil {
		return err
	}

	slog.Info("rendered",
		"file", a.Render,
		"duration", d,
		"sample_rate", cfg.SampleRate,
		"channels", cfg.Channels,
	)

	return nil
}
