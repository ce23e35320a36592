package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tategaki/kanjiorder/internal/config"
)

var reachCmd = &cobra.Command{
	Use:   "reach <character>",
	Short: "Show everything needed to learn a character, in order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		snap, err := buildSnapshot(cfg)
		if err != nil {
			return err
		}
		id := args[0]

		if unlocks, _ := cmd.Flags().GetBool("unlocks"); unlocks {
			ids, err := snap.Graph.Unlocks(id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s unlocks %d characters: %s\n",
				id, len(ids), strings.Join(ids, " "))
			return nil
		}

		prefix, err := snap.Order.RangeUpTo(id)
		if err != nil {
			return err
		}
		pos, err := snap.Order.IndexOf(id)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s is position %d of %d\n", id, pos+1, snap.Order.Len())
		for i, cid := range prefix {
			fmt.Fprintf(cmd.OutOrStdout(), "%4d. %s\n", i+1, cid)
		}
		return nil
	},
}

func init() {
	reachCmd.Flags().Bool("unlocks", false, "show the characters this one transitively unlocks instead")
	rootCmd.AddCommand(reachCmd)
}
