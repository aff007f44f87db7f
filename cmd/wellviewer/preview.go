package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"go-well-viewer/internal/preview"
	"go-well-viewer/internal/scene"
	"go-well-viewer/pkg/utils"
)

var previewOutputDir string

var previewCmd = &cobra.Command{
	Use:   "preview <file.csv>",
	Short: "Render a PNG plan view of the wells in a CSV file",
	Args:  cobra.ExactArgs(1),
	RunE:  runPreview,
}

func init() {
	previewCmd.Flags().StringVarP(&previewOutputDir, "output", "o", ".", "directory to write the PNG into")
}

func runPreview(cmd *cobra.Command, args []string) error {
	path := args[0]
	payload, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	ds, err := scene.ParseDataset(bytes.NewReader(payload))
	if err != nil {
		return err
	}

	om := utils.NewOutputManager(previewOutputDir)
	pngPath, err := om.GetOutputFilePath(path, ".png")
	if err != nil {
		return err
	}

	title := filepath.Base(path)
	if err := writeFile(pngPath, func(w io.Writer) error { return preview.RenderPlanView(w, ds, title) }); err != nil {
		return err
	}
	reportOutput(cmd, om, pngPath)
	return nil
}
