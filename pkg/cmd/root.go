package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	UseDescription   = "rigby"
	ShortDescription = "Rigby - a Python formatter focused on blank-line management"
	LongDescription  = `rigby is a command-line tool that normalizes vertical whitespace and import
ordering in Python source files.

It removes blank lines inside function and class bodies (docstring spacing
can be preserved), inserts an exact number of blank lines after every
function and class body, and sorts imports into configurable groups:
1. future
2. standard_library
3. third_party
4. local

Paths passed to the run subcommand may be files or directories. Directories
are walked recursively for Python source files, honoring the exclude
patterns from configuration.`
)

var (
	showVersion bool
	versionStr  string
)

var rootCmd = &cobra.Command{
	Use:          UseDescription,
	Short:        ShortDescription,
	Long:         LongDescription,
	RunE:         runRoot,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&showVersion, "version", false, "Show version information")
}

func runRoot(cmd *cobra.Command, args []string) error {
	if showVersion {
		fmt.Printf("rigby version %s\n", versionStr)
		return nil
	}
	return cmd.Help()
}

func Execute(version string) error {
	versionStr = version
	return rootCmd.Execute()
}
