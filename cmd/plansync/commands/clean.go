package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/plansync/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Clear all cached plan data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			purge, _ := cmd.Flags().GetBool("purge")
			return c.app.Clean(cmd.Context(), app.CleanOptions{Purge: purge})
		},
	}

	cmd.Flags().BoolP("purge", "p", false, "Also remove the backing store directory")

	return cmd
}
