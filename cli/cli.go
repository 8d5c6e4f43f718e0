// Package cli provides the command-line interface for batch logo stamping.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information
var (
	Version   = "dev"
	BuildTime = "unknown"
)

// osExit is a variable for os.Exit to allow testing
var osExit = os.Exit

var rootCmd = &cobra.Command{
	Use:   "cornerbrand",
	Short: "cornerbrand - stamp a corner logo onto images and PDFs",
	Long: "cornerbrand stamps a logo into a chosen corner of image files and onto\n" +
		"every page of PDF files. Outputs are written next to their inputs (or\n" +
		"under one base directory) with collision-free names, and every run\n" +
		"leaves a JSON report beside its outputs.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. This is the main entry point for the CLI.
func Execute() {
	rootCmd.Version = Version
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		osExit(1)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("cornerbrand version %s\n", Version)
		fmt.Printf("Build time: %s\n", BuildTime)
	},
}

func init() {
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})
	rootCmd.AddCommand(versionCmd)
}
