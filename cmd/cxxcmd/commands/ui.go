package commands

import "github.com/spf13/cobra"

func (c *CLI) newUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ui [sources...]",
		Short: "Open the interactive form",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.UI(cmd.Context(), selection(cmd, args))
		},
	}
}
