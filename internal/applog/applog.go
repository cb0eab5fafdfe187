// Package applog configures the package-level logger used across the
// evaluator and CLI. Verbosity is controlled by the IQPAMP_LOG environment
// variable, mirroring the env-driven verbosity convention of the Rust
// prototype this spec was distilled from.
package applog

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the shared application logger.
var Log = logrus.New()

func init() {
	Log.SetOutput(os.Stderr)
	Log.SetLevel(levelFromEnv())
}

func levelFromEnv() logrus.Level {
	level, err := logrus.ParseLevel(os.Getenv("IQPAMP_LOG"))
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}
