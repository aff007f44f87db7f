package model

import "time"

// Bounds is the axis-aligned bounding box of a group of points
type Bounds struct {
	MinX float64 `json:"min_x"`
	MaxX float64 `json:"max_x"`
	MinY float64 `json:"min_y"`
	MaxY float64 `json:"max_y"`
	MinZ float64 `json:"min_z"`
	MaxZ float64 `json:"max_z"`
}

// WellSummary describes one well path
type WellSummary struct {
	WellID         string  `json:"well_id"`
	Points         int     `json:"points"`
	MeasuredLength float64 `json:"measured_length"` // sum of 3D segment lengths in row order
	Bounds         Bounds  `json:"bounds"`
}

// LithologySummary describes one lithology group
type LithologySummary struct {
	LithologyID string `json:"lithology_id"`
	Points      int    `json:"points"`
	Bounds      Bounds `json:"bounds"`
}

// Summary holds dataset statistics returned next to a scene
type Summary struct {
	Records     int                `json:"records"`
	Wells       []WellSummary      `json:"wells"`
	Lithologies []LithologySummary `json:"lithologies"`
	Bounds      *Bounds            `json:"bounds,omitempty"`
}

// Build statuses recorded in the history
const (
	BuildStatusOK        = "ok"
	BuildStatusMalformed = "malformed"
)

// BuildRecord is one entry of the build history (metadata only, never row data)
type BuildRecord struct {
	ID          string    `json:"id"`
	Filename    string    `json:"filename"`
	Status      string    `json:"status"`
	Records     int       `json:"records"`
	Wells       int       `json:"wells"`
	Lithologies int       `json:"lithologies"`
	Error       string    `json:"error,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
