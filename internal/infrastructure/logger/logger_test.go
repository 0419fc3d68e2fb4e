package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestSlogLogger_LevelsAndFatal(t *testing.T) {
	var buf bytes.Buffer
	l := NewSlogLoggerTo(&buf, "info")
	code := -1
	l.exit = func(c int) { code = c }

	l.Debugf("hidden %d", 1)
	assert.Zero(t, buf.Len())

	l.Infof("remark %s added", "like")
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "INFO", rec["level"])
	assert.Equal(t, "remark like added", rec["msg"])
	assert.Equal(t, "remarks", rec["service"])

	buf.Reset()
	l.Fatalf("boom")
	assert.Equal(t, 1, code)
	assert.Contains(t, buf.String(), `"fatal":true`)
}
