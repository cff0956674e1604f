// Package cli wires the picker front ends into the thermo command.
package cli

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"go.hasen.dev/thermo/config"
	"go.hasen.dev/thermo/logging"
	"go.hasen.dev/thermo/thermostat"
)

// state shared by all subcommands, filled in by the root's pre-run
type app struct {
	configFile string
	logFile    string
	flags      *pflag.FlagSet

	// swapped by the config watcher, read by the front ends
	cfg atomic.Pointer[config.Config]

	log     hclog.Logger
	logSink io.Closer
}

func NewRootCmd() *cobra.Command {
	var a = &app{log: hclog.NewNullLogger()}

	var root = &cobra.Command{
		Use:   "thermo",
		Short: "Pick a temperature and see its color",
		Long: `thermo shows a temperature picker: -10 to 50 degrees in steps of 5, each
temperature painted with its color on a blue, teal, yellow, red scale.

Without a subcommand it opens the graphical picker.`,
		Version:      Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logSink != nil {
				a.logSink.Close()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGUI(cmd)
		},
	}

	var flags = root.PersistentFlags()
	flags.StringVarP(&a.configFile, "config", "c", "", "dotenv config file (THERMO_* keys); reloaded on change")
	flags.String("log-level", config.DefaultLogLevel, "log level (trace, debug, info, warn, error, off)")
	flags.StringVar(&a.logFile, "log-file", "", "append logs to this file instead of stderr")
	flags.Bool("sound", config.DefaultSound, "play a tone on every change")
	flags.Bool("debug", config.DefaultDebug, "show the debug panel")
	a.flags = flags

	root.SetVersionTemplate(versionString() + "\n")

	root.AddCommand(a.newGUICmd())
	root.AddCommand(a.newTUICmd())
	root.AddCommand(newSwatchCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	a.cfg.Store(cfg)

	var out io.Writer = cmd.ErrOrStderr()
	if a.logFile != "" {
		f, err := os.OpenFile(a.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		out = f
		a.logSink = f
	}
	a.log = logging.New(cfg.LogLevel, out)
	a.log.Debug("config loaded", "file", a.configFile, "sound", cfg.Sound, "debug", cfg.Debug)
	return nil
}

// loadConfig reads the file and environment, then lets explicitly set flags
// win.
func (a *app) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(a.configFile)
	if err != nil {
		return nil, err
	}
	if err := a.applyFlags(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (a *app) applyFlags(cfg *config.Config) error {
	var err error
	if a.flags.Changed("log-level") {
		cfg.LogLevel, err = a.flags.GetString("log-level")
		if err != nil {
			return err
		}
	}
	if a.flags.Changed("sound") {
		cfg.Sound, err = a.flags.GetBool("sound")
		if err != nil {
			return err
		}
	}
	if a.flags.Changed("debug") {
		cfg.Debug, err = a.flags.GetBool("debug")
		if err != nil {
			return err
		}
	}
	return nil
}

// onReload is handed to config.Watch; invalid files keep the old config.
func (a *app) onReload(notify func()) func(*config.Config, error) {
	return func(cfg *config.Config, err error) {
		if err == nil {
			err = a.applyFlags(cfg)
		}
		if err == nil {
			err = cfg.Validate()
		}
		if err != nil {
			a.log.Warn("config not reloaded", "error", err)
			return
		}
		a.cfg.Store(cfg)
		a.log.Info("config reloaded", "sound", cfg.Sound, "debug", cfg.Debug)
		if notify != nil {
			notify()
		}
	}
}

// logObserver traces every model transition at debug level
func logObserver(log hclog.Logger) thermostat.Observer {
	return func(s thermostat.Snapshot) {
		log.Debug("temperature changed",
			"temperature", s.Temperature,
			"background", s.Background,
			"softer", s.Softer,
			"label", s.Label,
			"tone", s.Tone.String(),
		)
	}
}
