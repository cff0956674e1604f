package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "thermo.env")
	writeFile(t, path, `
# picker settings
THERMO_WINDOW_TITLE="Thermostat"
THERMO_WINDOW_WIDTH=300
THERMO_SOUND=true
THERMO_LOG_LEVEL=debug
THERMO_FONT_DIRS=/opt/fonts:/usr/local/share/fonts
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Thermostat", cfg.WindowTitle)
	assert.Equal(t, 300, cfg.WindowWidth)
	assert.Equal(t, DefaultWindowHeight, cfg.WindowHeight)
	assert.True(t, cfg.Sound)
	assert.False(t, cfg.Debug)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []string{"/opt/fonts", "/usr/local/share/fonts"}, cfg.FontDirs)
}

func TestEnvironmentWinsOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "thermo.env")
	writeFile(t, path, "THERMO_WINDOW_WIDTH=300\nTHERMO_DEBUG=false\n")
	t.Setenv("THERMO_WINDOW_WIDTH", "640")
	t.Setenv("THERMO_DEBUG", "1")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 640, cfg.WindowWidth)
	assert.True(t, cfg.Debug)
}

func TestMalformedValuesFallBack(t *testing.T) {
	t.Setenv("THERMO_WINDOW_HEIGHT", "tall")
	t.Setenv("THERMO_SOUND", "loud")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultWindowHeight, cfg.WindowHeight)
	assert.Equal(t, DefaultSound, cfg.Sound)
}

func TestMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.env"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		valid  bool
	}{
		{"defaults", func(*Config) {}, true},
		{"zero width", func(c *Config) { c.WindowWidth = 0 }, false},
		{"negative height", func(c *Config) { c.WindowHeight = -1 }, false},
		{"trace", func(c *Config) { c.LogLevel = "trace" }, true},
		{"off", func(c *Config) { c.LogLevel = "off" }, true},
		{"unknown level", func(c *Config) { c.LogLevel = "loud" }, false},
		{"empty level", func(c *Config) { c.LogLevel = "" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalid)
			}
		})
	}
}

func TestWatchReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "thermo.env")
	writeFile(t, path, "THERMO_SOUND=false\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloads := make(chan *Config, 16)
	require.NoError(t, Watch(ctx, path, func(cfg *Config, err error) {
		if err == nil {
			reloads <- cfg
		}
	}))

	writeFile(t, path, "THERMO_SOUND=true\n")

	deadline := time.After(5 * time.Second)
	for {
		select {
		case cfg := <-reloads:
			if cfg.Sound {
				return
			}
		case <-deadline:
			t.Fatal("no reload after the file changed")
		}
	}
}

func TestWatchMissingDirectory(t *testing.T) {
	err := Watch(context.Background(), filepath.Join(t.TempDir(), "gone", "thermo.env"), func(*Config, error) {})
	assert.Error(t, err)
}
