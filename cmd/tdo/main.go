// Package main is the entry point for the tdo CLI.
package main

import (
	"fmt"
	"os"

	"github.com/jdsmith/tdo/internal/cli"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(err))
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tdo",
	Short: "tdo - a tiny local todo list",
	Long: `tdo keeps a single todo list on your machine. Items get a short
numeric ID when added and can be completed, edited, and removed by
that ID. State lives in a small set of JSON files in the data
directory and survives between runs.`,
	Version: Version,
	// Show help when no subcommand is provided
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var (
	flagDir       string
	flagNamespace string
	flagVerbose   bool
	flagNoColor   bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDir, "dir", "", "data directory (default $TDO_DIR or ~/.tdo)")
	rootCmd.PersistentFlags().StringVar(&flagNamespace, "namespace", "", "storage key namespace")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable color output")

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if flagNoColor {
			cli.SetColorEnabled(false)
		}
	}

	rootCmd.SetVersionTemplate("tdo version {{.Version}}\n")
}
