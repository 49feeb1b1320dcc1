// Package trashlog wires up the structured logging the CLI wraps
// around the trash core. The core itself never logs: spec §7 requires
// the caller get a plain status code and nothing else, so every log
// line here is about the CLI's handling of that code, not the core's
// internals.
package trashlog

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/nxadm/tail"
	"github.com/rs/xid"
	slogmulti "github.com/samber/slog-multi"
)

// RunID is a per-process identifier shared by every log line emitted
// during one CLI invocation, making it possible to correlate the
// records produced by a single `trashcan FILE...` run.
var RunID = sync.OnceValue(func() string {
	return xid.New().String()
})

// filePath is resolved once at Setup time and reused by Follow.
var filePath string

// Setup installs the default slog logger: a JSON file handler under
// the XDG cache directory, fanned out (via slog-multi) alongside a
// colourised stderr handler that is only active when debug is true.
// Mirrors the teacher's main.go init(), generalised so the CLI
// controls when logging turns on instead of an env var baked into
// init().
func Setup(debug bool) error {
	fp, err := logFilePath()
	if err != nil {
		fp = "trashcan.log"
	}
	filePath = fp

	var fw io.Writer = io.Discard
	if f, ferr := os.OpenFile(fp, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); ferr == nil {
		fw = f
	} else {
		err = ferr
	}

	cw := io.Writer(io.Discard)
	if debug {
		cw = os.Stderr
	}

	fileHandler := newWrapHandler(
		slog.NewJSONHandler(fw, &slog.HandlerOptions{Level: slog.LevelDebug}),
		func() []slog.Attr {
			return []slog.Attr{slog.String("run_id", RunID())}
		},
	)

	logger := slog.New(slogmulti.Fanout(
		fileHandler,
		tint.NewHandler(cw, &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: time.Kitchen,
		}),
	))
	slog.SetDefault(logger)
	return err
}

func logFilePath() (string, error) {
	if fp, ok := os.LookupEnv("LOGS_DIRECTORY"); ok {
		return fp, nil
	}
	return xdg.CacheFile("trashcan/log")
}

// Follow tails the log file to w, following it live when stdout is a
// terminal the way `tail -f` would.
func Follow(w io.Writer) error {
	if filePath == "" {
		var err error
		filePath, err = logFilePath()
		if err != nil {
			return fmt.Errorf("resolve log path: %w", err)
		}
	}

	shouldFollow := isatty.IsTerminal(os.Stdout.Fd())
	t, err := tail.TailFile(filePath, tail.Config{Follow: shouldFollow, ReOpen: shouldFollow})
	if err != nil {
		return err
	}
	for line := range t.Lines {
		fmt.Fprintln(w, line.Text)
	}
	return nil
}
