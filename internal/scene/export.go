package scene

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"go-well-viewer/internal/model"
)

// WriteSceneJSON writes the scene in the renderer's figure format
func WriteSceneJSON(w io.Writer, s model.Scene) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("failed to encode scene: %w", err)
	}
	return nil
}

// WriteSummaryCSV writes one row per group of the summary
func WriteSummaryCSV(w io.Writer, summary model.Summary) error {
	writer := csv.NewWriter(w)

	header := []string{"group_key", "group_value", "record_count", "measured_length",
		"min_x", "max_x", "min_y", "max_y", "min_z", "max_z"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, well := range summary.Wells {
		row := append([]string{model.ColumnWell, well.WellID, strconv.Itoa(well.Points), formatFloat(well.MeasuredLength)},
			boundsRow(well.Bounds)...)
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	for _, lit := range summary.Lithologies {
		row := append([]string{model.ColumnLithology, lit.LithologyID, strconv.Itoa(lit.Points), ""},
			boundsRow(lit.Bounds)...)
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func boundsRow(b model.Bounds) []string {
	return []string{
		formatFloat(b.MinX), formatFloat(b.MaxX),
		formatFloat(b.MinY), formatFloat(b.MaxY),
		formatFloat(b.MinZ), formatFloat(b.MaxZ),
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
