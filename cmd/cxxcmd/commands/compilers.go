package commands

import "github.com/spf13/cobra"

func (c *CLI) newCompilersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compilers",
		Short: "List the discovered compilers and their versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Compilers(cmd.Context(), selection(cmd, args))
		},
	}
}
