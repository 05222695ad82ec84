package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesJSONWithBaseAttributes(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, Options{App: "hris-workforce-stats", Version: "v1.0.0", Env: "test", Level: "info"})
	require.NoError(t, err)

	log.Info("generated")

	out := buf.String()
	assert.Contains(t, out, `"app":"hris-workforce-stats"`)
	assert.Contains(t, out, `"version":"v1.0.0"`)
	assert.Contains(t, out, `"env":"test"`)
	assert.Contains(t, out, "generated")
}

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, Options{Level: "warn"})
	require.NoError(t, err)

	log.Info("hidden")
	log.Debug("hidden")
	assert.Empty(t, buf.String())

	log.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(&bytes.Buffer{}, Options{Level: "loud"})
	assert.Error(t, err)
}

func TestWithRunID(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, Options{Level: "info"})
	require.NoError(t, err)

	tagged, runID := WithRunID(log)
	require.Len(t, runID, 36)
	assert.Equal(t, "7", runID[14:15])

	tagged.Info("run")
	assert.True(t, strings.Contains(buf.String(), runID))
}
