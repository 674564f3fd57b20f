package commands

import "github.com/spf13/cobra"

func (c *CLI) newRenderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render [sources...]",
		Short: "Print the compiler command without running it",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Render(cmd.Context(), selection(cmd, args))
		},
	}
}
