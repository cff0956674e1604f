package cli

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"go.hasen.dev/thermo/chime"
	"go.hasen.dev/thermo/config"
	"go.hasen.dev/thermo/termview"
	"go.hasen.dev/thermo/thermostat"
)

func (a *app) newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the picker in the terminal",
		Long: `Run the picker in the terminal. Change the temperature with -/+, the
arrow keys, or by clicking the buttons; quit with q, Esc or Ctrl-C.

Logs would garble the screen, so they are dropped unless --log-file is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTUI(cmd)
		},
	}
}

func (a *app) runTUI(cmd *cobra.Command) error {
	if a.logFile == "" {
		a.log = hclog.NewNullLogger()
	}
	var log = a.log.Named("tui")

	ctx, stop := signal.NotifyContext(contextOrBackground(cmd.Context()), os.Interrupt)
	defer stop()

	if a.configFile != "" {
		if err := config.Watch(ctx, a.configFile, a.onReload(nil)); err != nil {
			log.Warn("config reload disabled", "error", err)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer screen.Fini()

	var player = chime.New(log)
	defer player.Close()

	var model = thermostat.New()
	model.Subscribe(logObserver(log))
	model.Subscribe(player.Observer(func() bool { return a.cfg.Load().Sound }))

	var v = termview.New(screen, model, log)
	defer v.Close()

	log.Info("tui started", "temperature", model.Temperature())
	return v.Run(ctx)
}
