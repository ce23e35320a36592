package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/tategaki/kanjiorder/internal/config"
	"github.com/tategaki/kanjiorder/internal/dag"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Rank the most enabling components",
	Long: "Stats ranks characters by how much of the corpus they unlock: the number of\n" +
		"characters transitively built from them, and a PageRank-style structural score\n" +
		"that is independent of dictionary frequency.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		snap, err := buildSnapshot(cfg)
		if err != nil {
			return err
		}

		top, _ := cmd.Flags().GetInt("top")
		ids := snap.Corpus.IDs()
		scores := snap.Graph.PageRank(dag.DefaultPageRankOptions())

		unlocks := make(map[string]int, len(ids))
		for _, id := range ids {
			n, err := snap.Graph.UnlockCount(id)
			if err != nil {
				return err
			}
			unlocks[id] = n
		}

		sort.Slice(ids, func(i, j int) bool {
			if unlocks[ids[i]] != unlocks[ids[j]] {
				return unlocks[ids[i]] > unlocks[ids[j]]
			}
			if scores[ids[i]] != scores[ids[j]] {
				return scores[ids[i]] > scores[ids[j]]
			}
			return ids[i] < ids[j]
		})

		if top > 0 && top < len(ids) {
			ids = ids[:top]
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%-6s %-8s %-10s %s\n", "char", "unlocks", "pagerank", "groups")
		groupOf := groupIndex(snap.Graph)
		for _, id := range ids {
			fmt.Fprintf(cmd.OutOrStdout(), "%-6s %-8d %-10.4f %d\n",
				id, unlocks[id], scores[id], groupOf[id])
		}
		return nil
	},
}

// groupIndex maps every character to its dependency-group number.
func groupIndex(g *dag.Graph) map[string]int {
	out := make(map[string]int, g.Len())
	for i, members := range g.Groups() {
		for _, id := range members {
			out[id] = i + 1
		}
	}
	return out
}

func init() {
	statsCmd.Flags().Int("top", 20, "show only the top N characters (0 = all)")
	rootCmd.AddCommand(statsCmd)
}
