package logging

import (
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
)

const Name = "thermo"

// New builds the root logger. Unknown levels fall back to info.
func New(level string, w io.Writer) hclog.Logger {
	if w == nil {
		w = os.Stderr
	}
	var lvl = hclog.LevelFromString(level)
	if lvl == hclog.NoLevel {
		lvl = hclog.Info
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   Name,
		Output: w,
		Level:  lvl,
	})
}
