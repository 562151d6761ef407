package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_WritesRotatingFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	t.Cleanup(func() { Logger = nil })

	require.NoError(t, Init(Config{Dir: dir}))
	Info("calendar loaded", "month", "2024-06")

	data, err := os.ReadFile(filepath.Join(dir, "syllabus.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "calendar loaded")
	assert.Contains(t, string(data), "month=2024-06")
}

func TestInit_NoDirNoDebugIsSilent(t *testing.T) {
	t.Cleanup(func() { Logger = nil })

	require.NoError(t, Init(Config{}))
	require.NotNil(t, Logger)
	assert.NotPanics(t, func() { Error("dropped") })
}

func TestHelpers_NilLoggerIsSafe(t *testing.T) {
	Logger = nil
	assert.NotPanics(t, func() {
		Debug("a")
		Info("b")
		Warn("c")
		Error("d")
	})
}

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	Logger = New(&buf, log.WarnLevel)
	t.Cleanup(func() { Logger = nil })

	Info("hidden")
	Warn("shown", "key", "value")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "syllabus")
}
