package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// set at build time with -ldflags "-X go.hasen.dev/thermo/cli.Version=..."
var (
	Version = "dev"
	Commit  = "unknown"
)

func versionString() string {
	if Commit != "unknown" && len(Commit) >= 8 {
		return fmt.Sprintf("thermo version %s (commit: %s, %s, %s/%s)", Version, Commit[:8], runtime.Version(), runtime.GOOS, runtime.GOARCH)
	}
	return fmt.Sprintf("thermo version %s (%s, %s/%s)", Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), versionString())
		},
	}
}
