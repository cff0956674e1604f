package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/joho/godotenv"
)

const (
	DefaultWindowTitle  = "thermo"
	DefaultWindowWidth  = 480
	DefaultWindowHeight = 640
	DefaultLogLevel     = "info"
	DefaultSound        = false
	DefaultDebug        = false

	EnvPrefix = "THERMO_"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	WindowTitle  string
	WindowWidth  int
	WindowHeight int
	LogLevel     string
	Sound        bool
	Debug        bool

	// extra font directories, searched before the system ones
	FontDirs []string
}

func Default() *Config {
	return &Config{
		WindowTitle:  DefaultWindowTitle,
		WindowWidth:  DefaultWindowWidth,
		WindowHeight: DefaultWindowHeight,
		LogLevel:     DefaultLogLevel,
		Sound:        DefaultSound,
		Debug:        DefaultDebug,
	}
}

// Load reads the optional dotenv file, then the environment. Environment
// variables win over the file, the file wins over the defaults. An empty
// filename skips the file.
func Load(filename string) (*Config, error) {
	var file map[string]string
	if filename != "" {
		var err error
		file, err = godotenv.Read(filename)
		if err != nil {
			return nil, fmt.Errorf("reading config %s: %w", filename, err)
		}
	}

	var src = source{file: file}
	var cfg = &Config{
		WindowTitle:  src.get("WINDOW_TITLE", DefaultWindowTitle),
		WindowWidth:  src.getInt("WINDOW_WIDTH", DefaultWindowWidth),
		WindowHeight: src.getInt("WINDOW_HEIGHT", DefaultWindowHeight),
		LogLevel:     src.get("LOG_LEVEL", DefaultLogLevel),
		Sound:        src.getBool("SOUND", DefaultSound),
		Debug:        src.getBool("DEBUG", DefaultDebug),
		FontDirs:     splitList(src.get("FONT_DIRS", "")),
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.WindowWidth, c.WindowHeight)
	}
	if hclog.LevelFromString(c.LogLevel) == hclog.NoLevel {
		return fmt.Errorf("%w: log level %q", ErrInvalid, c.LogLevel)
	}
	return nil
}

type source struct {
	file map[string]string
}

func (s source) lookup(key string) (string, bool) {
	key = EnvPrefix + key
	if value, ok := os.LookupEnv(key); ok {
		return value, true
	}
	value, ok := s.file[key]
	return value, ok
}

func (s source) get(key, fallback string) string {
	if value, ok := s.lookup(key); ok {
		return value
	}
	return fallback
}

func (s source) getBool(key string, fallback bool) bool {
	if value, ok := s.lookup(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func (s source) getInt(key string, fallback int) int {
	if value, ok := s.lookup(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func splitList(value string) []string {
	var out []string
	for _, item := range filepath.SplitList(value) {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
