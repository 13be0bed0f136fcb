package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/plansync/internal/app"
)

func (c *CLI) newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the sync state and cache diagnostics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			watch, _ := cmd.Flags().GetBool("watch")
			return c.app.Status(cmd.Context(), app.StatusOptions{Watch: watch})
		},
	}

	cmd.Flags().BoolP("watch", "w", false, "Keep running and re-render when the store changes")

	return cmd
}
