// Package logging builds the zap logger used by the CLI and TUI.
// Output goes to a size-rotated file because the terminal belongs to the UI.
package logging

import (
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Options struct {
	Level      string // debug, info, warn, error (default info)
	Format     string // json or console (default json)
	File       string // empty writes to stderr
	MaxSizeMB  int
	MaxBackups int
}

// ParseLevel maps a level name to a zap level, defaulting to info.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// New returns a logger and a function that flushes and closes its sink.
func New(opts Options) (*zap.Logger, func(), error) {
	var sink io.Writer = os.Stderr
	closeSink := func() {}
	if opts.File != "" {
		lj := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
		}
		sink = lj
		closeSink = func() { _ = lj.Close() }
	}
	return NewWithWriter(opts, sink), closeSink, nil
}

// NewWithWriter builds the logger on an arbitrary writer.
func NewWithWriter(opts Options, w io.Writer) *zap.Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "timestamp"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	if strings.EqualFold(opts.Format, "console") {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	} else {
		enc = zapcore.NewJSONEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(w), zap.NewAtomicLevelAt(ParseLevel(opts.Level)))
	return zap.New(core).With(zap.String("service", "lifescore"))
}
