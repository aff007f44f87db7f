package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-well-viewer/internal/model"
)

const wellsCSV = `pozo,litologia,x,y,z
pozo_1,lit_1,0,0,0
pozo_1,lit_1,1,1,-100
pozo_2,lit_2,5,5,-50
`

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wells.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buildOutputDir, buildSummary, previewOutputDir = "", false, "."

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestBuildCommandPrintsScene(t *testing.T) {
	out, err := execute(t, "build", writeCSV(t, wellsCSV))
	require.NoError(t, err)

	var s model.Scene
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	assert.Len(t, s.Data, 4)
	assert.Equal(t, "Trayectorias y litologias 3D - wells.csv", s.Layout.Title.Text)
}

func TestBuildCommandWritesFiles(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "out")
	out, err := execute(t, "build", writeCSV(t, wellsCSV), "-o", outDir, "--summary")
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(outDir, "wells.json"))
	assert.FileExists(t, filepath.Join(outDir, "wells_summary.csv"))
	assert.Contains(t, out, "wells.json (json,")
}

func TestBuildCommandMalformed(t *testing.T) {
	_, err := execute(t, "build", writeCSV(t, "pozo,litologia,x,y\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required column")
}

func TestPreviewCommand(t *testing.T) {
	outDir := t.TempDir()
	_, err := execute(t, "preview", writeCSV(t, wellsCSV), "-o", outDir)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(outDir, "wells.png"))
}
