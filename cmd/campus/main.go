// Command campus runs the aggregation walkthrough.
//
// It builds a campus from a roster (the embedded tutorial roster by default),
// prints every university's faculty and lectures, closes the first
// university, and shows that its former faculty still teach.
//
// Usage:
//
//	campus [-roster path.{toml,yaml}] [-log-level info]
//
// Environment:
//
//	CAMPUS_ROSTER     roster file, overridden by -roster
//	CAMPUS_LOG_LEVEL  trace|debug|info|warn|error|off
//	CAMPUS_ENV        environment tag attached to log lines
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sghaida/campus/config"
	"github.com/sghaida/campus/internal/app"
	"github.com/sghaida/campus/internal/logging"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	// -------------------------------------------------------------------------
	// Step 1: settings (env first, flags override)
	// -------------------------------------------------------------------------
	settings := config.LoadFromEnv()

	fs := flag.NewFlagSet("campus", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&settings.RosterPath, "roster", settings.RosterPath, "roster file (.toml, .yaml, .yml); empty uses the built-in roster")
	fs.StringVar(&settings.LogLevel, "log-level", settings.LogLevel, "log level: trace, debug, info, warn, error, off")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	// -------------------------------------------------------------------------
	// Step 2: logging
	// -------------------------------------------------------------------------
	logCfg := logging.DefaultConfig(logging.ProfileRuntime)
	logging.ApplyEnvOverrides(&logCfg)
	if lvl, ok := logging.ParseLevel(settings.LogLevel); ok {
		logCfg.Level = lvl
	}
	logCfg.Out = stderr
	log := logging.New("campus", logCfg).With().Str("env", settings.Env).Logger()

	// -------------------------------------------------------------------------
	// Step 3: roster -> wired campus
	// -------------------------------------------------------------------------
	roster, err := settings.Roster()
	if err != nil {
		fmt.Fprintln(stderr, "load roster failed:", err)
		return 1
	}
	c, err := app.Build(roster, log)
	if err != nil {
		fmt.Fprintln(stderr, "build campus failed:", err)
		return 1
	}

	// -------------------------------------------------------------------------
	// Step 4: walkthrough
	// -------------------------------------------------------------------------
	if err := c.Demo(stdout); err != nil {
		fmt.Fprintln(stderr, "demo failed:", err)
		return 1
	}
	return 0
}
