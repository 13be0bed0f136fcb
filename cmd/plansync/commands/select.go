package commands

import (
	"strconv"

	"github.com/spf13/cobra"
	"go.trai.ch/plansync/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newSelectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "select <week>",
		Short: "Switch to another training week",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			week, err := strconv.Atoi(args[0])
			if err != nil {
				return zerr.With(domain.ErrInvalidWeek, "week", args[0])
			}
			return c.app.Select(cmd.Context(), week)
		},
	}
}
