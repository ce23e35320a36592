package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tategaki/kanjiorder/internal/ansi"
	"github.com/tategaki/kanjiorder/internal/config"
	"github.com/tategaki/kanjiorder/internal/corpus"
	"github.com/tategaki/kanjiorder/internal/dag"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the corpus for structural defects",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		entries, err := loadEntries(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s corpus file: %v\n", mark(cfg.Color, false), err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "%s corpus file parsed (%d entries)\n", mark(cfg.Color, true), len(entries))

		c, err := corpus.Load(entries)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s corpus integrity: %v\n", mark(cfg.Color, false), err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "%s ids unique, no dangling or self references\n", mark(cfg.Color, true))

		g, err := dag.Build(c)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s dependency graph: %v\n", mark(cfg.Color, false), err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "%s dependency graph built (%d edges)\n", mark(cfg.Color, true), g.EdgeCount())

		if _, err := g.Order(); err != nil {
			var ce *dag.CycleError
			if errors.As(err, &ce) {
				fmt.Fprintf(os.Stderr, "%s cyclic dependencies: %v\n", mark(cfg.Color, false), ce.Unresolved)
			} else {
				fmt.Fprintf(os.Stderr, "%s ordering: %v\n", mark(cfg.Color, false), err)
			}
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "%s learning order computable for all %d characters\n", mark(cfg.Color, true), g.Len())
		return nil
	},
}

// mark renders the ✓/✗ status prefix.
func mark(color, ok bool) string {
	if ok {
		return ansi.Paint(color, ansi.Green, "✓")
	}
	return ansi.Paint(color, ansi.Red, "✗")
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
