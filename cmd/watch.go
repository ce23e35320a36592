package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/tategaki/kanjiorder/internal/ansi"
	"github.com/tategaki/kanjiorder/internal/config"
	"github.com/tategaki/kanjiorder/internal/plan"
	"github.com/tategaki/kanjiorder/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Recompute the learning order whenever the corpus changes",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		var p plan.Planner
		if err := rebuildAndReport(&p, cfg); err != nil {
			// Keep watching: the corpus may be fixed by the next edit.
			fmt.Fprintf(os.Stderr, "%s %v\n", mark(cfg.Color, false), err)
		}

		files := []string{cfg.CorpusPath}
		if cfg.EdictPath != "" {
			files = append(files, cfg.EdictPath)
		}
		w, err := watch.New(time.Duration(cfg.DebounceMS)*time.Millisecond, files...)
		if err != nil {
			return err
		}
		if err := w.Start(); err != nil {
			return err
		}
		defer w.Stop()

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

		fmt.Fprintf(os.Stderr, "watching %s\n", ansi.Paint(cfg.Color, ansi.Dim, cfg.CorpusPath))
		for {
			select {
			case change := <-w.Changes:
				fmt.Fprintf(os.Stderr, "change in %s\n", change.File)
				if err := rebuildAndReport(&p, cfg); err != nil {
					fmt.Fprintf(os.Stderr, "%s %v (keeping previous order)\n", mark(cfg.Color, false), err)
				}
			case <-sig:
				return nil
			}
		}
	},
}

// rebuildAndReport reloads the corpus, swaps the snapshot on success, and
// prints a one-line summary.
func rebuildAndReport(p *plan.Planner, cfg config.Config) error {
	entries, err := loadEntries(cfg)
	if err != nil {
		return err
	}
	snap, err := p.Rebuild(entries)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "%s ordered %d characters (%d edges) at %s\n",
		mark(cfg.Color, true), snap.Order.Len(), snap.Graph.EdgeCount(),
		snap.BuiltAt.Format(time.TimeOnly))
	return nil
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
