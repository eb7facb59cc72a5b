// Package logging builds the zap loggers used across gostringdist: the
// diagnostic sink in the core package and the CLI's structured output.
// It is a trimmed-down sibling of the usual service logging setup — console
// and rotating-file sinks, a configurable level, no middleware.
package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config describes the sinks and level of a logger.
type Config struct {
	// Level is one of "debug", "info", "warn", "error". Empty means
	// "info".
	Level string

	// Console enables a human-readable stderr sink.
	Console bool

	// File, when non-empty, enables a JSON file sink with rotation.
	File string

	// Rotation limits for the file sink. Zero values fall back to
	// 100 MB, 3 backups, 28 days.
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// New creates a logger from config. At least one sink must be enabled.
func New(config *Config) (*zap.Logger, error) {
	if config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	level, err := parseLevel(config.Level)
	if err != nil {
		return nil, err
	}
	atomicLevel := zap.NewAtomicLevelAt(level)

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "severity",
		NameKey:        "logger",
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	var cores []zapcore.Core
	if config.Console {
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderConfig),
			zapcore.Lock(os.Stderr),
			atomicLevel,
		))
	}
	if config.File != "" {
		sink := &lumberjack.Logger{
			Filename:   config.File,
			MaxSize:    orDefault(config.MaxSizeMB, 100),
			MaxBackups: orDefault(config.MaxBackups, 3),
			MaxAge:     orDefault(config.MaxAgeDays, 28),
			Compress:   true,
		}
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderConfig),
			zapcore.AddSync(sink),
			atomicLevel,
		))
	}
	if len(cores) == 0 {
		return nil, fmt.Errorf("no sinks enabled")
	}

	return zap.New(zapcore.NewTee(cores...)), nil
}

func parseLevel(s string) (zapcore.Level, error) {
	switch s {
	case "", "info":
		return zapcore.InfoLevel, nil
	case "debug":
		return zapcore.DebugLevel, nil
	case "warn":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", s)
	}
}

func orDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}
