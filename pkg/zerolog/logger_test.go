package zerolog

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologLoggerWithWriter("test_service", &buf)
	logger.SetLevel("INFO")

	logger.Info("account created", "id", "valid_id", 42, "ignored", "error", errors.New("boom"), "dangling")

	entry := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "account created", entry["message"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "test_service", entry["service"])
	assert.Equal(t, "valid_id", entry["id"])
	assert.Equal(t, "boom", entry["error"])
	assert.NotContains(t, entry, "dangling")
}

func TestLogger_SetLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologLoggerWithWriter("test_service", &buf)

	logger.SetLevel("warn")
	logger.Debug("hidden")
	logger.Info("hidden")
	assert.Empty(t, buf.String())

	logger.Warn("shown")
	assert.Contains(t, buf.String(), "shown")

	logger.SetLevel("debug")
}

func TestLogger_WithContext(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologLoggerWithWriter("test_service", &buf)
	logger.SetLevel("debug")

	logger.WithContext(map[string]interface{}{"request_id": "abc"}).Error("failed")

	entry := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "abc", entry["request_id"])
	assert.Equal(t, "error", entry["level"])
}
