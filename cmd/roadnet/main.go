// SPDX-License-Identifier: MIT

// Command roadnet is an interactive editor and route planner for a road map stored
// as two text files.
//
// Usage:
//
//	roadnet [-config roadnet.yaml] [-data-dir DIR] [-ext txt] [-log-level info] [-log-format text]
//
// The map is loaded on start, edited through a numbered menu on stdin/stdout and
// saved on quit.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/roadnet/core"
	"github.com/katalvlaran/roadnet/internal/config"
	"github.com/katalvlaran/roadnet/internal/menu"
	"github.com/katalvlaran/roadnet/textstore"
)

// ExitError carries a process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func main() {
	if err := run(os.Stdin, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run parses flags, loads the map, runs the menu and saves on exit.
// Logs go to logW so that they never interleave with the menu on out.
func run(in io.Reader, out, logW io.Writer, args []string) error {
	cfg, shouldExit, err := parseFlags(args, out)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := newLogger(cfg, logW)
	logger.Debug("configuration resolved", "config", *cfg)

	store := textstore.New(cfg.DataDir,
		textstore.WithExtension(cfg.Extension),
		textstore.WithLogger(logger),
	)
	g := core.NewGraph()
	rep, err := store.Load(g)
	if err != nil {
		// A missing or damaged file starts the session with whatever could be read.
		logger.Warn("map loaded with errors", "error", err)
	}
	fmt.Fprintf(out, "Loaded %d settlements and %d roads.\n", rep.Settlements, rep.Roads)

	return menu.New(in, out, g, store, menu.WithLogger(logger)).Run()
}

// parseFlags processes command-line arguments over an optional YAML file. It returns
// the validated config, whether the program should exit cleanly, or an *ExitError.
func parseFlags(args []string, output io.Writer) (*config.Config, bool, error) {
	flagSet := flag.NewFlagSet("roadnet", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, `
roadnet - edit a road map and plan the shortest route between settlements.

Usage:
  roadnet [options]

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to a YAML config file.")
	dataDirFlag := flagSet.String("data-dir", "", "Directory holding the settlements and roads files. (default \".\")")
	extFlag := flagSet.String("ext", "", "Extension of the map files. (default \"txt\")")
	logLevelFlag := flagSet.String("log-level", "", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'. (default \"info\")")
	logFormatFlag := flagSet.String("log-format", "", "Log output format. Options: 'text' or 'json'. (default \"text\")")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	var fileCfg config.Config
	if *configFlag != "" {
		c, err := config.Load(*configFlag)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		fileCfg = c
	}

	cfg, err := config.New(config.Merge(fileCfg, config.Config{
		DataDir:   *dataDirFlag,
		Extension: *extFlag,
		LogLevel:  *logLevelFlag,
		LogFormat: *logFormatFlag,
	}))
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return cfg, false, nil
}
