package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "gofra",
	Short: "3D Frame Analysis and Steel Design Tool",
	Long: `gofra - Go Frame Analysis

A CLI tool for linear and nonlinear static analysis of 3D frame
structures and AISC 360 steel design checking.

This tool helps structural engineers perform:
  - Linear static analysis of 3D frames (beams, columns, braces)
  - Nonlinear analysis with P-Delta effects and load stepping
  - Support reaction and member force recovery
  - AISC 360 design checks (tension, compression, flexure, combined, shear)

Models are described in JSON files; run 'gofra analyze --help' for the
expected layout.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show progress messages")
}
