package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromMissingFilesGivesDefaults(t *testing.T) {
	cfg, err := loadFrom([]string{"/nonexistent/config.toml"})
	require.NoError(t, err)

	assert.Equal(t, 700*time.Millisecond, cfg.LongPress())
	assert.Equal(t, []string{"Library", "Search", "Queue", "Settings"}, cfg.Tabs())

	_, set := cfg.ThemeOverride()
	assert.False(t, set)
}

func TestLoadFromReadsValues(t *testing.T) {
	path := writeConfig(t, `
long_press_ms = 500

[theme]
highlight = "#ff00ff"

[demo]
tabs = ["One", "Two"]
`)

	cfg, err := loadFrom([]string{path})
	require.NoError(t, err)

	assert.Equal(t, 500*time.Millisecond, cfg.LongPress())
	assert.Equal(t, []string{"One", "Two"}, cfg.Tabs())

	th, set := cfg.ThemeOverride()
	assert.True(t, set)
	assert.Equal(t, lipgloss.Color("#ff00ff"), th.Highlight)
}

func TestLoadFromLastFileWins(t *testing.T) {
	base := writeConfig(t, `long_press_ms = 500`)
	over := writeConfig(t, `long_press_ms = 900`)

	cfg, err := loadFrom([]string{base, over})
	require.NoError(t, err)

	assert.Equal(t, 900*time.Millisecond, cfg.LongPress())
}

func TestLoadFromBadToml(t *testing.T) {
	path := writeConfig(t, `long_press_ms = [broken`)

	_, err := loadFrom([]string{path})
	assert.Error(t, err)
}

func TestThemeOverrideKeepsAmbientForEmptyFields(t *testing.T) {
	cfg := &Config{Theme: ThemeConfig{Secondary: "#123456"}}

	th, set := cfg.ThemeOverride()
	assert.True(t, set)
	assert.Equal(t, lipgloss.Color("#123456"), th.Secondary)
	assert.Equal(t, lipgloss.Color("#a78bfa"), th.Highlight, "untouched fields keep the ambient value")
}

func TestLongPressZeroMeansDefault(t *testing.T) {
	cfg := &Config{LongPressMS: 0}
	assert.Equal(t, 700*time.Millisecond, cfg.LongPress())

	cfg.LongPressMS = -5
	assert.Equal(t, 700*time.Millisecond, cfg.LongPress())
}
