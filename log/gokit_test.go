package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGKLoggerLevels(t *testing.T) {
	var buf bytes.Buffer

	logger := NewGKLoggerWriter(&buf, false).With("id", "abc")
	logger.Debug("Hidden event")
	logger.Info("Link resolved", "name", "movie.mp4")
	logger.Error("Resolution failed")

	out := buf.String()
	require.NotContains(t, out, "Hidden event")
	require.Contains(t, out, `level=info`)
	require.Contains(t, out, `event="Link resolved"`)
	require.Contains(t, out, `id=abc`)
	require.Contains(t, out, `name=movie.mp4`)
	require.Contains(t, out, `level=error`)
}

func TestGKLoggerDebug(t *testing.T) {
	var buf bytes.Buffer

	NewGKLoggerWriter(&buf, true).Debug("Detected warning page")
	require.Contains(t, buf.String(), "level=debug")
}

func TestNothing(t *testing.T) {
	logger := Nothing()
	require.Equal(t, logger, logger.With("key", "value"))
	logger.Info("ignored")
}
