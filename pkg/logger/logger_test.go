package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger_Sink(t *testing.T) {
	t.Parallel()
	sink := filepath.Join(t.TempDir(), "library.log")
	var out bytes.Buffer

	log := newLogger(Log{LogLevel: zapcore.InfoLevel, Sink: sink}, "library", zapcore.AddSync(&out))
	log.Info("checkout")
	require.NoError(t, log.Sync())

	require.Contains(t, out.String(), `"msg":"checkout"`)
	data, err := os.ReadFile(sink)
	require.NoError(t, err)
	require.Contains(t, string(data), `"logger":"library"`)
}

func TestNewLogger_BadSinkIsReported(t *testing.T) {
	t.Parallel()
	sink := filepath.Join(t.TempDir(), "missing", "library.log")
	var out bytes.Buffer

	log := newLogger(Log{LogLevel: zapcore.InfoLevel, Sink: sink}, "library", zapcore.AddSync(&out))
	log.Info("still logging")

	require.Contains(t, out.String(), "open log sink")
	require.Contains(t, out.String(), sink)
	require.Contains(t, out.String(), `"msg":"still logging"`)
}
