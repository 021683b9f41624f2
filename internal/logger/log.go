package logger

import (
	"io"
	"log/slog"
	"os"
)

type Logger interface {
	Info(msg string)
	Error(msg string, err error)
	Debug(msg string)
}

type GameLogger struct {
	logger *slog.Logger
}

func New(loggerName string) Logger {
	return NewWithWriter(loggerName, os.Stdout, slog.LevelDebug)
}

// NewWithWriter builds a text logger tagged with loggerName that drops
// records below level.
func NewWithWriter(loggerName string, w io.Writer, level slog.Level) Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
	})
	attrs := []slog.Attr{slog.String("logger", loggerName)}
	h := handler.WithAttrs(attrs)
	return GameLogger{slog.New(h)}
}

func (gl GameLogger) Info(msg string) {
	gl.logger.Info(msg)
}

func (gl GameLogger) Error(msg string, err error) {
	if err != nil {
		e := slog.String("error", err.Error())
		gl.logger.Error(msg, e)
		return
	}
	gl.logger.Error(msg)
}

func (gl GameLogger) Debug(msg string) {
	gl.logger.Debug(msg)
}
