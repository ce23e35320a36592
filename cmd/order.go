package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tategaki/kanjiorder/internal/config"
	"github.com/tategaki/kanjiorder/internal/order"
)

var orderCmd = &cobra.Command{
	Use:   "order",
	Short: "Print the computed learning order",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		snap, err := buildSnapshot(cfg)
		if err != nil {
			return err
		}

		details, _ := cmd.Flags().GetBool("details")
		groups, _ := cmd.Flags().GetBool("groups")
		limit, _ := cmd.Flags().GetInt("limit")
		radicalsOnly, _ := cmd.Flags().GetBool("radicals")

		if radicalsOnly {
			for i, ch := range snap.Order.Radicals() {
				fmt.Fprintf(cmd.OutOrStdout(), "%4d. %s\n", i+1, ch.ID)
			}
			return nil
		}

		var r order.Renderer
		switch {
		case groups:
			r = order.GroupRenderer{Color: cfg.Color}
		case details:
			r = order.DetailRenderer{Color: cfg.Color, Limit: limit}
		default:
			r = order.ListRenderer{Color: cfg.Color, Limit: limit}
		}
		fmt.Fprint(cmd.OutOrStdout(), r.Render(snap.Graph, snap.Order))
		return nil
	},
}

func init() {
	orderCmd.Flags().Bool("details", false, "include readings, meanings, and notes")
	orderCmd.Flags().Bool("groups", false, "split the order into independent dependency groups")
	orderCmd.Flags().Bool("radicals", false, "print only characters flagged as radicals")
	orderCmd.Flags().Int("limit", 0, "print at most this many characters (0 = all)")
	rootCmd.AddCommand(orderCmd)
}
