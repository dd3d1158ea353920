package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZerologAdapterWritesComponentAndFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, DebugLevel)

	log.Info("Editor", "file opened", map[string]interface{}{"path": "notes.txt"})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "Editor", entry["component"])
	assert.Equal(t, "file opened", entry["message"])
	assert.Equal(t, "notes.txt", entry["path"])
}

func TestZerologAdapterRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, WarnLevel)

	log.Debug("Canvas", "shape drawn", nil)
	log.Info("Canvas", "tool changed", nil)
	assert.Zero(t, buf.Len())

	log.Error("Canvas", errors.New("boom"), nil)
	assert.Contains(t, buf.String(), `"error":"boom"`)
}

func TestParseLevel(t *testing.T) {
	cases := map[string]LogLevel{
		"debug":   DebugLevel,
		" INFO ":  InfoLevel,
		"warning": WarnLevel,
		"warn":    WarnLevel,
		"error":   ErrorLevel,
		"bogus":   InfoLevel,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), in)
	}
	assert.Equal(t, "warn", WarnLevel.String())
}
