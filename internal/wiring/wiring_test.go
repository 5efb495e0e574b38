package wiring

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "diceroller.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestInitializeApp(t *testing.T) {
	path := writeTestConfig(t, "engine:\n  kind: math\niteration_cap: 1000\nlogging:\n  level: info\n  format: json\n")

	app, err := InitializeApp(path)
	require.NoError(t, err)
	assert.NotNil(t, app.Logger)
	assert.NotNil(t, app.Roller)
	assert.Equal(t, "math", app.Config.Engine.Kind)

	d, err := app.Roller.Roll("2d6")
	require.NoError(t, err)
	total, err := d.Total()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, total, float64(2))
	assert.LessOrEqual(t, total, float64(12))
}

func TestInitializeApp_UnknownEngine(t *testing.T) {
	path := writeTestConfig(t, "engine:\n  kind: quantum\niteration_cap: 1000\nlogging:\n  level: info\n  format: json\n")

	_, err := InitializeApp(path)
	assert.Error(t, err)
}

func TestInitializeApp_InvalidConfigPath(t *testing.T) {
	_, err := InitializeApp("/nonexistent/diceroller.yaml")
	assert.Error(t, err)
}
