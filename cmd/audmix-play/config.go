// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/viper"
)

type config struct {
	SampleRate int
	Channels   int
	Buffer     time.Duration
	LogLevel   string
	LogFile    string
}

func setViperDefaults() {
	viper.SetDefault("samplerate", 44100)
	viper.SetDefault("channels", 2)
	viper.SetDefault("buffer", "50ms")
	viper.SetDefault("loglevel", "info")
	viper.SetDefault("logfile", "")
}

// loadConfig reads the config file at path, falling back to the
// defaults when the file does not exist.
func loadConfig(path string) config {
	setViperDefaults()

	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || os.IsNotExist(err) {
			slog.Debug("no config file found", "path", path)
		} else {
			slog.Error("error during config read", "err", err)
			os.Exit(1)
		}
	}

	return config{
		SampleRate: viper.GetInt("samplerate"),
		Channels:   viper.GetInt("channels"),
		Buffer:     viper.GetDuration("buffer"),
		LogLevel:   viper.GetString("loglevel"),
		LogFile:    viper.GetString("logfile"),
	}
}

// configureLogger sets the default slog logger: text to stdout, or
// JSON to logFile when one is given. Returns the opened log file, if
// any, so the caller can close it on shutdown.
func configureLogger(logLevel, logFile string) (*os.File, error) {
	var options slog.HandlerOptions

	switch logLevel {
	case "none":
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		return nil, nil
	case "error":
		options.Level = slog.LevelError
	case "warn":
		options.Level = slog.LevelWarn
	case "info":
		options.Level = slog.LevelInfo
	case "debug":
		options.Level = slog.LevelDebug
	default:
		return nil, fmt.Errorf("unexpected log level %q", logLevel)
	}

	if logFile == "" {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &options)))
		return nil, nil
	}

	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(f, &options)))

	return f, nil
}
