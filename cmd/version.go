package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const Version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gofra",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gofra v%s\n", Version)
		fmt.Println("3D Frame Analysis and Steel Design Tool")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
