// Package config loads the demo application's configuration: theme color
// overrides, the long-press duration and the demo tab labels.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/lipgloss"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/segmented/internal/ui/styles"
)

const (
	appName          = "segmented"
	defaultLongPress = 700 * time.Millisecond
)

type Config struct {
	// Hold duration before a press records the secondary selection, in
	// milliseconds. Zero means the default.
	LongPressMS int `koanf:"long_press_ms"`

	Theme ThemeConfig `koanf:"theme"`
	Demo  DemoConfig  `koanf:"demo"`
}

// ThemeConfig overrides individual theme colors. Empty fields keep the
// ambient default.
type ThemeConfig struct {
	Highlight     string `koanf:"highlight"`
	HighlightSoft string `koanf:"highlight_soft"`
	Background    string `koanf:"background"`
	Hover         string `koanf:"hover"`
	Secondary     string `koanf:"secondary"`
}

// DemoConfig configures the demo application.
type DemoConfig struct {
	Tabs []string `koanf:"tabs"`
}

func Load() (*Config, error) {
	return loadFrom(configPaths())
}

// loadFrom layers config files in order, last wins.
func loadFrom(paths []string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func configPaths() []string {
	return []string{
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		"config.toml",
	}
}

// LongPress returns the configured hold duration with the default applied.
func (c *Config) LongPress() time.Duration {
	if c.LongPressMS <= 0 {
		return defaultLongPress
	}
	return time.Duration(c.LongPressMS) * time.Millisecond
}

// ThemeOverride returns the ambient theme with configured colors applied,
// and whether any color was configured at all.
func (c *Config) ThemeOverride() (styles.Theme, bool) {
	t := *styles.T()
	set := false

	apply := func(dst *lipgloss.Color, v string) {
		if v != "" {
			*dst = lipgloss.Color(v)
			set = true
		}
	}
	apply(&t.Highlight, c.Theme.Highlight)
	apply(&t.HighlightSoft, c.Theme.HighlightSoft)
	apply(&t.Background, c.Theme.Background)
	apply(&t.Hover, c.Theme.Hover)
	apply(&t.Secondary, c.Theme.Secondary)

	return t, set
}

// Tabs returns the demo tab labels with defaults applied.
func (c *Config) Tabs() []string {
	if len(c.Demo.Tabs) == 0 {
		return []string{"Library", "Search", "Queue", "Settings"}
	}
	return c.Demo.Tabs
}
