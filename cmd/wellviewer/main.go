package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "wellviewer",
	Short: "3D viewer for well trajectories and lithology samples",
	Long: `wellviewer turns CSV files with the columns pozo,litologia,x,y,z into 3D
scenes: one well path per well and one translucent mesh per lithology.

Run "wellviewer serve" for the web dashboard, or "wellviewer build" to get the
scene of a single file on the command line.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(serveCmd, buildCmd, previewCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
