package cli

import (
	"context"

	"github.com/spf13/cobra"

	"go.hasen.dev/thermo/chime"
	"go.hasen.dev/thermo/config"
	"go.hasen.dev/thermo/giobackend"
	"go.hasen.dev/thermo/slay"
	"go.hasen.dev/thermo/thermostat"
	"go.hasen.dev/thermo/view"
)

func (a *app) newGUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Open the graphical picker (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGUI(cmd)
		},
	}
}

func (a *app) runGUI(cmd *cobra.Command) error {
	var cfg = a.cfg.Load()
	var log = a.log.Named("gui")
	slay.SetLogger(a.log.Named("slay"))

	if a.configFile != "" {
		if err := config.Watch(contextOrBackground(cmd.Context()), a.configFile, a.onReload(giobackend.Invalidate)); err != nil {
			log.Warn("config reload disabled", "error", err)
		}
	}

	var player = chime.New(log)
	var opts = view.Options{Sound: cfg.Sound, Debug: cfg.Debug}
	opts.OnCreate = func(m *thermostat.Model) {
		m.Subscribe(logObserver(log))
		m.Subscribe(player.Observer(func() bool { return opts.Sound }))
	}

	// reloads land between frames; the frame goroutine is the only one
	// touching opts
	var applied = cfg
	var frame = func() {
		if next := a.cfg.Load(); next != applied {
			opts.Sound, opts.Debug = next.Sound, next.Debug
			applied = next
		}
		view.TemperatureControl(&opts)
	}

	giobackend.SetupWindow(cfg.WindowTitle, cfg.WindowWidth, cfg.WindowHeight)
	log.Info("opening window", "title", cfg.WindowTitle, "width", cfg.WindowWidth, "height", cfg.WindowHeight)
	giobackend.Run(frame, giobackend.Options{
		FontDirs: cfg.FontDirs,
		OnClose: func(err error) {
			player.Close()
			if a.logSink != nil {
				a.logSink.Close()
			}
		},
	})
	return nil
}

func contextOrBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
