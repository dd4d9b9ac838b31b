package logger

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		"INFO":    zerolog.InfoLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"off":     zerolog.Disabled,
		"bogus":   zerolog.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, parseLogLevel(in), in)
	}
}

func TestInit_JSONIncludesComponent(t *testing.T) {
	var buf bytes.Buffer
	Init("debug", "json", &buf)
	defer Init("info", "json", &bytes.Buffer{})

	l := Component("session")
	l.Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "session", entry["component"])
	assert.Equal(t, "hello", entry["message"])
}

func TestInitFile_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "ems.log")

	closer, err := InitFile("info", "json", path)
	require.NoError(t, err)
	defer closer.Close()

	assert.FileExists(t, path)
}
