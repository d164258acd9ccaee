package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "afrim",
	Short:        "afrim",
	SilenceUsage: true,
	Long:         `Input method REPL: drives the afrim core over a single TOML configuration file.`,
	Args:         cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runREPL(args[0])
	},
}

// Execute runs the root command, returning the exit code spec §6's CLI
// surface specifies: 0 on clean shutdown, non-zero on config load
// failure (and on any other fatal startup error).
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "afrim:", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(Execute())
}
