package main

import (
	"flag"
	"fmt"
	"io"
)

type options struct {
	configDir  string
	board      string
	record     string
	replay     string
	seed       int64
	logLevel   string
	mute       bool
	listBoards bool
}

func parseFlags(args []string, out io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("bubblepop", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.StringVar(&opts.configDir, "config", "", "Read configs from this directory instead of the embedded ones")
	fs.StringVar(&opts.board, "board", "classic", "Board to play")
	fs.StringVar(&opts.record, "record", "", "Record input to file (e.g., -record replay.json)")
	fs.StringVar(&opts.replay, "replay", "", "Replay a recorded round")
	fs.Int64Var(&opts.seed, "seed", 0, "Seed of the first round, 0 for a random one")
	fs.StringVar(&opts.logLevel, "log-level", "", "Override the configured log level (debug, info, warn, error, off)")
	fs.BoolVar(&opts.mute, "mute", false, "Disable sound")
	fs.BoolVar(&opts.listBoards, "list-boards", false, "Print the available boards and exit")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if opts.record != "" && opts.replay != "" {
		return options{}, fmt.Errorf("-record and -replay cannot be used together")
	}
	return opts, nil
}
