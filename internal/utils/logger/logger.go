package logger

import (
	"io"
	"os"
	"strings"

	"golang.org/x/exp/slog"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/lakhweratechnologies3/apptodopro/internal/app/server/config"
)

type options struct {
	out   io.Writer
	file  string
	level *slog.Level
}

type Option func(*options)

// WithFile дублирует логи в файл с ротацией.
func WithFile(path string) Option {
	return func(o *options) {
		o.file = path
	}
}

// WithLevel переопределяет уровень окружения. Неизвестный уровень игнорируется.
func WithLevel(level string) Option {
	return func(o *options) {
		if lvl, ok := parseLevel(level); ok {
			o.level = &lvl
		}
	}
}

// WithOutput заменяет stdout, используется в тестах.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.out = w
	}
}

func New(env string, opts ...Option) *slog.Logger {
	o := &options{out: os.Stdout}
	for _, opt := range opts {
		opt(o)
	}

	level := slog.LevelInfo
	if env == config.EnvLocal || env == config.EnvDev {
		level = slog.LevelDebug
	}
	if o.level != nil {
		level = *o.level
	}

	out := o.out
	if o.file != "" {
		out = io.MultiWriter(out, &lumberjack.Logger{
			Filename:   o.file,
			MaxSize:    50,
			MaxBackups: 5,
			MaxAge:     30,
			Compress:   true,
		})
	}

	var log *slog.Logger
	switch env {
	case config.EnvLocal:
		log = slog.New(NewPrettyHandler(out, &slog.HandlerOptions{Level: level}))
	default:
		log = slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level}))
	}
	return log
}

func setupPrettySlog() *slog.Logger {
	return slog.New(NewPrettyHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return 0, false
}
