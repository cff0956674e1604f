package main

import (
	"os"

	"go.hasen.dev/thermo/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
