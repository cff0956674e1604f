package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"go.hasen.dev/thermo/gradient"
	"go.hasen.dev/thermo/thermostat"
)

const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"

	swatchWidth = 6
)

type colorMode string

const (
	colorAuto   colorMode = "auto"
	colorAlways colorMode = "always"
	colorNever  colorMode = "never"
)

func newSwatchCmd() *cobra.Command {
	var mode string
	var cmd = &cobra.Command{
		Use:   "swatch",
		Short: "Print every selectable temperature with its colors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			color, err := useColor(colorMode(mode), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return writeSwatches(cmd.OutOrStdout(), gradient.Temperatures, color)
		},
	}
	cmd.Flags().StringVar(&mode, "color", string(colorAuto), "colored swatches: auto, always or never")
	return cmd
}

// useColor resolves auto to "stdout is a terminal and NO_COLOR is unset"
func useColor(mode colorMode, w io.Writer) (bool, error) {
	switch mode {
	case colorAlways:
		return true, nil
	case colorNever:
		return false, nil
	case colorAuto:
		if _, ok := os.LookupEnv("NO_COLOR"); ok {
			return false, nil
		}
		f, ok := w.(*os.File)
		return ok && term.IsTerminal(int(f.Fd())), nil
	default:
		return false, fmt.Errorf("unknown --color %q (want auto, always or never)", mode)
	}
}

// writeSwatches prints one row per reachable temperature, coldest first
func writeSwatches(w io.Writer, table gradient.Table, color bool) error {
	var header = []string{"TEMP", pad("LABEL", 12), pad("TONE", 6), pad("RGB", 24), pad("RGBA", 30), "HEX"}
	if color {
		header = append([]string{strings.Repeat(" ", swatchWidth)}, header...)
	}
	if _, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(header, "  "), " ")); err != nil {
		return err
	}

	for t := thermostat.MinTemperature; t <= thermostat.MaxTemperature; t += thermostat.StepSize {
		var s = thermostat.Derive(table, t)
		var label = pad(s.Label, 12)
		var cols []string
		if color {
			cols = append(cols, block(s.Color, swatchWidth))
			label = tinted(s, label)
		}
		cols = append(cols,
			fmt.Sprintf("%4d", s.Temperature),
			label,
			pad(s.Tone.String(), 6),
			pad(s.Background, 24),
			pad(s.Softer, 30),
			s.Color.Hex(),
		)
		if _, err := fmt.Fprintln(w, strings.Join(cols, "  ")); err != nil {
			return err
		}
	}
	return nil
}

// pad to display width; emoji take two cells
func pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

func bg(c gradient.Color) string {
	var n = c.NRGBA(1)
	return fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, n.R, n.G, n.B, ansiSuffix)
}

func block(c gradient.Color, width int) string {
	return bg(c) + strings.Repeat(" ", width) + ansiReset
}

// label in its tone on its own background, as the picker shows it
func tinted(s thermostat.Snapshot, text string) string {
	var fg = "255;255;255"
	if s.Tone == thermostat.ToneDark {
		fg = "0;0;0"
	}
	return bg(s.Color) + ansiFgPrefix + fg + ansiSuffix + text + ansiReset
}
