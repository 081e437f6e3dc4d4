package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/jmylchreest/tokentheme/internal/watch"
)

var (
	okStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	warnStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// printSummary reports a written file with its size and a detail line.
func printSummary(w io.Writer, verb, path string, size int, detail string) {
	fmt.Fprintf(w, "%s %s %s\n",
		okStyle.Render(verb),
		path,
		dimStyle.Render(fmt.Sprintf("(%s, %s)", humanize.Bytes(uint64(size)), detail)))
}

// printStale reports an output file that does not match what would be written.
func printStale(w io.Writer, path string) {
	fmt.Fprintf(w, "%s %s\n", warnStyle.Render("Out of date"), path)
}

// watchAndRun re-runs run whenever one of the files inputs returns changes,
// until interrupted. inputs is consulted again after every run so files
// discovered by a run are watched too. Failed runs are logged; the watch
// continues.
func watchAndRun(ctx context.Context, inputs func() []string, run func() error) error {
	paths := inputs()
	w, err := watch.New(paths, logger)
	if err != nil {
		return fmt.Errorf("failed to watch inputs: %w", err)
	}
	defer w.Close()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintln(os.Stderr, dimStyle.Render(fmt.Sprintf("Watching %d file(s), press Ctrl+C to stop", len(paths))))

	err = w.Run(ctx, func(path string) {
		logger.Info("input changed, rebuilding", "file", path)
		if err := run(); err != nil {
			logger.Error("rebuild failed", "error", err)
		}
		for _, p := range inputs() {
			if err := w.Add(p); err != nil {
				logger.Warn("failed to watch input", "file", p, "error", err)
			}
		}
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
