package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithComponentAddsFields(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: "debug", Output: &buf, Service: "test-site"})
	t.Cleanup(func() { Configure(Config{}) })

	logger := WithComponent("wizard")
	logger.Info().Str("step", "quiz").Msg("transition")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "test-site", entry["service"])
	assert.Equal(t, "wizard", entry["component"])
	assert.Equal(t, "quiz", entry["step"])
	assert.Equal(t, "transition", entry["message"])
}

func TestConfigureIgnoresUnknownLevel(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: "chatty", Output: &buf})
	t.Cleanup(func() { Configure(Config{}) })

	logger := Base()
	logger.Debug().Msg("hidden")
	logger.Info().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
