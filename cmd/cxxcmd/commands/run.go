package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/cxxcmd/internal/app"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [sources...]",
		Short: "Run the compiler command and print its output",
		Long: "Run renders the command, executes it through sh -c with stderr merged into\n" +
			"stdout, and exits with the compiler's exit status.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			watch, _ := cmd.Flags().GetBool("watch")
			timings, _ := cmd.Flags().GetBool("timings")

			return c.app.Run(cmd.Context(), selection(cmd, args), app.RunOptions{
				Watch:   watch,
				Timings: timings,
			})
		},
	}
	cmd.Flags().BoolP("watch", "w", false, "Run again whenever a source file changes")
	cmd.Flags().Bool("timings", false, "Print discovery and execution timings")
	return cmd
}
