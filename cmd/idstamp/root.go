// Package main provides the entry point for the idstamp CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for idstamp.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "idstamp",
		Short: "Assign unique id attributes to HTML elements",
		Long: `idstamp assigns unique id attributes to HTML elements across a directory
of files. Elements that already carry an id keep it; every other eligible
element receives a generated value that is guaranteed unique within the run.

Generated values are random UUIDs by default and can carry a configured
prefix and suffix. Which tags are stamped is controlled with include and
exclude lists; exclusion always wins.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewStampCmd())
	cmd.AddCommand(NewCheckCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
