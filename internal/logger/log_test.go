package logger

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerTagsRecords(t *testing.T) {
	buf := &bytes.Buffer{}
	l := NewWithWriter("feed", buf, slog.LevelInfo)

	l.Error("decode failed", errors.New("unexpected end of JSON input"))

	out := buf.String()
	assert.Contains(t, out, "logger=feed")
	assert.Contains(t, out, `msg="decode failed"`)
	assert.Contains(t, out, `error="unexpected end of JSON input"`)
}

func TestLoggerErrorWithoutCause(t *testing.T) {
	buf := &bytes.Buffer{}
	l := NewWithWriter("feed", buf, slog.LevelInfo)

	l.Error("bad payload", nil)

	assert.Contains(t, buf.String(), `msg="bad payload"`)
	assert.NotContains(t, buf.String(), "error=")
}

func TestLoggerDropsBelowLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	l := NewWithWriter("feed", buf, slog.LevelInfo)

	l.Debug("noise")
	assert.Empty(t, buf.String())

	l.Info("kept")
	assert.Contains(t, buf.String(), "msg=kept")
}
