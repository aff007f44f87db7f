package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"go-well-viewer/internal/pkg/logger"
	"go-well-viewer/internal/scene"
	"go-well-viewer/pkg/utils"
)

var (
	buildOutputDir string
	buildSummary   bool
)

var buildCmd = &cobra.Command{
	Use:   "build <file.csv>",
	Short: "Build the 3D scene of a CSV file",
	Long: `Run the scene builder on a CSV file and print the scene as JSON.

With --output the scene is written to <dir>/<name>.json instead, and
--summary adds <dir>/<name>_summary.csv with per-well and per-lithology
statistics. Malformed input exits with a non-zero status.`,
	Args: cobra.ExactArgs(1),
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVarP(&buildOutputDir, "output", "o", "", "directory to write the scene into")
	buildCmd.Flags().BoolVar(&buildSummary, "summary", false, "also write a summary CSV (requires --output)")
}

func runBuild(cmd *cobra.Command, args []string) error {
	if err := logger.Init(logger.Config{Level: "warn", Format: "console"}); err != nil {
		return err
	}
	defer logger.Sync()

	path := args[0]
	payload, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	res := scene.Build(payload, filepath.Base(path))
	if !res.OK() {
		return res.Err
	}

	if buildOutputDir == "" {
		if buildSummary {
			return fmt.Errorf("--summary requires --output")
		}
		return scene.WriteSceneJSON(cmd.OutOrStdout(), res.Scene)
	}

	om := utils.NewOutputManager(buildOutputDir)
	scenePath, err := om.GetOutputFilePath(path, ".json")
	if err != nil {
		return err
	}
	if err := writeFile(scenePath, func(w io.Writer) error { return scene.WriteSceneJSON(w, res.Scene) }); err != nil {
		return err
	}
	reportOutput(cmd, om, scenePath)

	if buildSummary {
		summaryPath, err := om.GetOutputFilePath(path, "_summary.csv")
		if err != nil {
			return err
		}
		if err := writeFile(summaryPath, func(w io.Writer) error { return scene.WriteSummaryCSV(w, res.Summary) }); err != nil {
			return err
		}
		reportOutput(cmd, om, summaryPath)
	}
	return nil
}

// writeFile creates path and streams content into it
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func reportOutput(cmd *cobra.Command, om *utils.OutputManager, path string) {
	size, err := om.GetFileSize(path)
	if err != nil {
		logger.Warn("failed to stat output", zap.String("path", path), zap.Error(err))
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%s, %d bytes)\n", path, om.GetFileType(path), size)
}
