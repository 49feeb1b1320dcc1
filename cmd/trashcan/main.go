package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/babarot/trashcan"
	"github.com/babarot/trashcan/internal/config"
	"github.com/babarot/trashcan/internal/trashlog"
	"github.com/dustin/go-humanize"
	"github.com/jessevdk/go-flags"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

const appName = "trashcan"

// RmOption mirrors the subset of GNU rm's flags needed for trashcan
// to be a drop-in `rm` replacement; none of them change behaviour
// except -f, which silences per-file errors, and -v, which prints a
// line for each moved item. -i, -r and -d are accepted and ignored,
// since the core has no interactive surface (spec Non-goal: no prompts).
type RmOption struct {
	Interactive bool `short:"i" description:"(dummy) prompt before every removal"`
	Recursive   bool `short:"r" long:"recursive" description:"(dummy) remove directories and their contents recursively"`
	Force       bool `short:"f" long:"force" description:"ignore nonexistent files, never fail the run"`
	Directory   bool `short:"d" long:"dir" description:"(dummy) remove empty directories"`
	Verbose     bool `short:"v" long:"verbose" description:"explain what is being done"`
}

type Option struct {
	Version  bool     `long:"version" description:"Show version"`
	ViewLogs bool     `long:"logs" description:"Tail the trashcan log file"`
	Config   string   `long:"config" description:"Path to config file" default:""`
	Debug    bool     `long:"debug" description:"Log to stderr as well as the log file"`
	RmOption RmOption `group:"Dummy Options (compatible with rm)"`
}

var (
	Version  = "unset"
	Revision = "unset"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		os.Exit(1)
	}
}

func run() error {
	var opt Option
	parser := flags.NewParser(&opt, flags.Default)
	parser.Name = appName
	parser.Usage = "[OPTIONS] FILE..."
	args, err := parser.Parse()
	if err != nil {
		if flags.WroteHelp(err) {
			return nil
		}
		return err
	}

	switch {
	case opt.Version:
		fmt.Fprintf(os.Stdout, "%s %s (%s)\n", appName, Version, Revision)
		return nil
	case opt.ViewLogs:
		return trashlog.Follow(os.Stdout)
	}

	cfg, err := config.Load(opt.Config)
	if err != nil {
		return err
	}
	if err := trashlog.Setup(opt.Debug || cfg.Debug); err != nil {
		slog.Warn("log setup degraded", "error", err)
	}
	trashcan.Configure(cfg.HomeTrashDir, cfg.ForceHomeTrash, cfg.NameMax)

	args = lo.Filter(args, func(a string, _ int) bool { return a != "" })
	if len(args) == 0 {
		return fmt.Errorf("too few arguments")
	}

	return put(args, opt.RmOption)
}

// put calls SoftDelete once per argument, concurrently, the way the
// teacher's CLI.Put fans multiple deletions out across goroutines with
// errgroup.
func put(args []string, rm RmOption) error {
	var eg errgroup.Group

	for _, arg := range args {
		arg := arg
		eg.Go(func() error {
			var size int64
			if info, err := os.Stat(arg); err == nil {
				size = info.Size()
			}

			status := trashcan.SoftDelete(arg)
			slog.Debug("soft delete", "path", arg, "status", int(status), "message", trashcan.Message(status))

			if status != trashcan.Ok {
				if rm.Force {
					return nil
				}
				return fmt.Errorf("%s: %s", arg, trashcan.Message(status))
			}
			if rm.Verbose {
				fmt.Fprintf(os.Stdout, "%s: moved %q (%s) to trash\n", appName, arg, humanize.Bytes(uint64(size)))
			}
			return nil
		})
	}

	return eg.Wait()
}
