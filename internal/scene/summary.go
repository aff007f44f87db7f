package scene

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"go-well-viewer/internal/model"
)

// Summarize computes per-well and per-lithology statistics of a dataset
func Summarize(ds model.Dataset) model.Summary {
	summary := model.Summary{
		Records:     len(ds),
		Wells:       []model.WellSummary{},
		Lithologies: []model.LithologySummary{},
	}
	if len(ds) == 0 {
		return summary
	}

	for _, g := range GroupBy(ds, ByWell) {
		summary.Wells = append(summary.Wells, model.WellSummary{
			WellID:         g.Key,
			Points:         len(g.Records),
			MeasuredLength: MeasuredLength(g.Records),
			Bounds:         BoundsOf(g.Records),
		})
	}
	for _, g := range GroupBy(ds, ByLithology) {
		summary.Lithologies = append(summary.Lithologies, model.LithologySummary{
			LithologyID: g.Key,
			Points:      len(g.Records),
			Bounds:      BoundsOf(g.Records),
		})
	}

	bounds := BoundsOf(ds)
	summary.Bounds = &bounds
	return summary
}

// MeasuredLength sums the 3D segment lengths of a path in row order
func MeasuredLength(records model.Dataset) float64 {
	var length float64
	for i := 1; i < len(records); i++ {
		length += r3.Norm(r3.Sub(records[i].Point(), records[i-1].Point()))
	}
	return length
}

// BoundsOf returns the bounding box of the records; zero value when empty
func BoundsOf(records model.Dataset) model.Bounds {
	if len(records) == 0 {
		return model.Bounds{}
	}

	b := model.Bounds{
		MinX: math.Inf(1), MaxX: math.Inf(-1),
		MinY: math.Inf(1), MaxY: math.Inf(-1),
		MinZ: math.Inf(1), MaxZ: math.Inf(-1),
	}
	for _, rec := range records {
		b.MinX, b.MaxX = math.Min(b.MinX, rec.X), math.Max(b.MaxX, rec.X)
		b.MinY, b.MaxY = math.Min(b.MinY, rec.Y), math.Max(b.MaxY, rec.Y)
		b.MinZ, b.MaxZ = math.Min(b.MinZ, rec.Z), math.Max(b.MaxZ, rec.Z)
	}
	return b
}
