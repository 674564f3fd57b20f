package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/cxxcmd/internal/app"
)

// addSelectionFlags registers the flags shared by every command that builds a configuration.
func addSelectionFlags(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.String("config", "", "Profile to read initial selections from (default .cxxcmd.yaml if present)")
	pf.StringSlice("names", nil, "Compiler executable names to discover (default g++)")
	pf.String("compiler", "", "Compiler path to use instead of the discovered ones")
	pf.String("std", "", "Language standard: c++14, c++11, c++98, c++17, or c++20")
	pf.StringP("opt", "O", "", "Optimization level: 0, 1, 2, or 3")
	pf.BoolP("debug", "g", false, "Emit debug information")
	pf.StringP("output", "o", "", "Executable name; empty omits the -o clause")
	pf.Bool("tty", false, "Run the compiler on a pseudo-terminal to keep colored diagnostics")
	pf.Bool("json", false, "Write log records as JSON")
}

// selection collects the selection flags. Flags left unset fall through to the profile.
func selection(cmd *cobra.Command, args []string) app.Selection {
	flags := cmd.Flags()

	sel := app.Selection{Sources: args}
	sel.ConfigPath, _ = flags.GetString("config")
	sel.Names, _ = flags.GetStringSlice("names")
	sel.Compiler, _ = flags.GetString("compiler")
	sel.Standard, _ = flags.GetString("std")
	sel.Optimization, _ = flags.GetString("opt")
	sel.TTY, _ = flags.GetBool("tty")

	if flags.Changed("debug") {
		debug, _ := flags.GetBool("debug")
		sel.Debug = &debug
	}
	if flags.Changed("output") {
		output, _ := flags.GetString("output")
		sel.Output = &output
	}

	return sel
}
