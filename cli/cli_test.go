package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.hasen.dev/thermo/config"
	"go.hasen.dev/thermo/gradient"
	"go.hasen.dev/thermo/thermostat"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestSwatchPlain(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeSwatches(&buf, gradient.Temperatures, false))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	// header + -10..50 in steps of 5
	require.Len(t, lines, 14)
	assert.True(t, strings.HasPrefix(lines[0], "TEMP  LABEL"))
	assert.NotContains(t, buf.String(), "\033[")

	cold := lines[1]
	assert.True(t, strings.HasPrefix(cold, " -10  "+thermostat.TooCold))
	assert.Contains(t, cold, "light")
	assert.Contains(t, cold, "rgb(0,0,255)")
	assert.Contains(t, cold, "rgba(0,0,255,0.2)")
	assert.True(t, strings.HasSuffix(cold, "#0000ff"))

	twenty := lines[7]
	assert.True(t, strings.HasPrefix(twenty, "  20  20 "))
	assert.Contains(t, twenty, "rgb(121,240.5,105.5)")
	assert.Contains(t, twenty, "rgba(121,240.5,105.5,0.2)")

	assert.Contains(t, lines[8], "dark")
	assert.True(t, strings.HasPrefix(lines[13], "  50  "+thermostat.TooHot))
}

func TestSwatchColumnsAlign(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeSwatches(&buf, gradient.Temperatures, false))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")

	// the tone column starts at the same display column on every row,
	// emoji labels included
	col := func(line string) int {
		i := strings.Index(line, "light")
		if i < 0 {
			i = strings.Index(line, "dark")
		}
		return len([]rune(line[:i]))
	}
	want := col(lines[2])
	for _, l := range []string{lines[1], lines[13]} {
		// one rune per emoji but two cells: one rune less than plain labels
		assert.Equal(t, want-1, col(l), l)
	}
}

func TestSwatchColored(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeSwatches(&buf, gradient.Temperatures, true))
	out := buf.String()

	assert.Contains(t, out, "\033[48;2;0;0;255m      \033[0m")
	assert.Contains(t, out, "\033[48;2;255;0;0m      \033[0m")
	// dark tone label at 25
	assert.Contains(t, out, "\033[38;2;0;0;0m25")
	// light tone label at 15
	assert.Contains(t, out, "\033[38;2;255;255;255m15")
}

func TestUseColor(t *testing.T) {
	var buf bytes.Buffer
	on, err := useColor(colorAlways, &buf)
	require.NoError(t, err)
	assert.True(t, on)

	on, err = useColor(colorNever, &buf)
	require.NoError(t, err)
	assert.False(t, on)

	on, err = useColor(colorAuto, &buf)
	require.NoError(t, err)
	assert.False(t, on, "a buffer is not a terminal")

	_, err = useColor("rainbow", &buf)
	assert.Error(t, err)
}

func TestSwatchCommand(t *testing.T) {
	out, err := execute(t, "swatch", "--color", "never")
	require.NoError(t, err)
	assert.Contains(t, out, "rgb(238,255,0)")

	_, err = execute(t, "swatch", "--color", "sometimes")
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "thermo version dev"))
}

func TestInvalidLogLevelRejected(t *testing.T) {
	_, err := execute(t, "--log-level", "loud", "version")
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestConfigFileAndFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "thermo.env")
	require.NoError(t, os.WriteFile(path, []byte("THERMO_SOUND=true\nTHERMO_DEBUG=true\n"), 0o644))

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("log-level", config.DefaultLogLevel, "")
	flags.Bool("sound", false, "")
	flags.Bool("debug", false, "")
	require.NoError(t, flags.Parse([]string{"--sound=false"}))

	a := &app{configFile: path, flags: flags, log: hclog.NewNullLogger()}
	cfg, err := a.loadConfig()
	require.NoError(t, err)
	assert.False(t, cfg.Sound, "flag wins over file")
	assert.True(t, cfg.Debug)

	_, err = execute(t, "--config", filepath.Join(t.TempDir(), "missing.env"), "version")
	assert.Error(t, err)
}

func TestReload(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("log-level", config.DefaultLogLevel, "")
	flags.Bool("sound", false, "")
	flags.Bool("debug", false, "")
	require.NoError(t, flags.Parse([]string{"--debug"}))

	a := &app{flags: flags, log: hclog.NewNullLogger()}
	a.cfg.Store(config.Default())

	var notified int
	reload := a.onReload(func() { notified++ })

	next := config.Default()
	next.Sound = true
	reload(next, nil)
	assert.Same(t, next, a.cfg.Load())
	assert.True(t, a.cfg.Load().Sound)
	assert.True(t, a.cfg.Load().Debug, "--debug still applies")
	assert.Equal(t, 1, notified)

	bad := config.Default()
	bad.WindowWidth = 0
	reload(bad, nil)
	assert.Same(t, next, a.cfg.Load())

	reload(nil, os.ErrNotExist)
	assert.Same(t, next, a.cfg.Load())
	assert.Equal(t, 1, notified)
}

func TestLogObserver(t *testing.T) {
	var buf bytes.Buffer
	log := hclog.New(&hclog.LoggerOptions{Output: &buf, Level: hclog.Debug})
	m := thermostat.New()
	m.Subscribe(logObserver(log))
	m.Increment()
	assert.Contains(t, buf.String(), "temperature changed: temperature=20")
	assert.Contains(t, buf.String(), "tone=light")
}
