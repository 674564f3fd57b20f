// Package commands implements the CLI commands for cxxcmd.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/cxxcmd/internal/app"
	"go.trai.ch/cxxcmd/internal/build"
)

// CLI represents the command line interface for cxxcmd.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Default(ctx context.Context, sel app.Selection, mode string) error
	UI(ctx context.Context, sel app.Selection) error
	Render(ctx context.Context, sel app.Selection) error
	Run(ctx context.Context, sel app.Selection, opts app.RunOptions) error
	Compilers(ctx context.Context, sel app.Selection) error
	SetJSONLogs(enable bool)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:   "cxxcmd [sources...]",
		Short: "Assemble, inspect and run C++ compiler commands",
		Long: "cxxcmd builds a compiler command line from a compiler, a language standard,\n" +
			"an optimization level, a debug flag, an executable name and a list of sources.\n" +
			"Without a subcommand it opens the interactive form on a terminal and prints\n" +
			"the rendered command otherwise.",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			jsonLogs, _ := cmd.Flags().GetBool("json")
			c.app.SetJSONLogs(jsonLogs)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, _ := cmd.Flags().GetString("mode")
			return c.app.Default(cmd.Context(), selection(cmd, args), mode)
		},
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.Flags().String("mode", "auto", "Presentation: auto, ui, or linear")
	addSelectionFlags(rootCmd)

	c.rootCmd = rootCmd

	rootCmd.AddCommand(c.newUICmd())
	rootCmd.AddCommand(c.newRenderCmd())
	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newCompilersCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
