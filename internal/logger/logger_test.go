package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, DebugLevel, ParseLevel("debug"))
	assert.Equal(t, WarnLevel, ParseLevel(" WARNING "))
	assert.Equal(t, ErrorLevel, ParseLevel("error"))
	assert.Equal(t, InfoLevel, ParseLevel("verbose"))
}

func TestLevelFromEnvironment(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("DEBUG", "")
	assert.Equal(t, WarnLevel, LevelFromEnvironment(WarnLevel))

	t.Setenv("DEBUG", "1")
	assert.Equal(t, DebugLevel, LevelFromEnvironment(WarnLevel))

	t.Setenv("LOG_LEVEL", "error")
	assert.Equal(t, ErrorLevel, LevelFromEnvironment(WarnLevel))
}

func TestJSONLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewJSONLogger(&buf, InfoLevel)

	log.Debug("Pipeline", "hidden", nil)
	assert.Zero(t, buf.Len())

	log.Error("Pipeline", errors.New("boom"), map[string]interface{}{"path": "a.png"})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Pipeline", entry["component"])
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, "a.png", entry["path"])
	assert.Equal(t, "error", entry["level"])
}
