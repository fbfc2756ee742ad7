// Package main is the entry point for the hint-mode demo.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/lodestar-tui/lodestar/internal/app"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts, ok := parseFlags()
	if !ok {
		return 0
	}

	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer application.Shutdown()

	if err := application.Run(); err != nil {
		if errors.Is(err, app.ErrQuit) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags() (app.Options, bool) {
	var opts app.Options
	var showVersion bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.BoolVar(&opts.Debug, "debug", false, "Write diagnostics to a log file")
	flag.BoolVar(&opts.Debug, "d", false, "Write diagnostics to a log file (shorthand)")
	flag.StringVar(&opts.LogPath, "log", "", "Debug log path (implies -debug default name when empty)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "lodestar-demo - keyboard hint navigation demo\n\n")
		fmt.Fprintf(os.Stderr, "Usage: lodestar-demo [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("lodestar-demo %s (%s)\n", version, commit)
		return app.Options{}, false
	}

	return opts, true
}
