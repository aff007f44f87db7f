package model

import "gonum.org/v1/gonum/spatial/r3"

// Column names expected in the uploaded CSV header
const (
	ColumnWell      = "pozo"
	ColumnLithology = "litologia"
	ColumnX         = "x"
	ColumnY         = "y"
	ColumnZ         = "z"
)

// RequiredColumns lists the header columns a dataset must carry
var RequiredColumns = []string{ColumnWell, ColumnLithology, ColumnX, ColumnY, ColumnZ}

// Record represents a single row of the uploaded table
type Record struct {
	WellID      string  `json:"well_id"`
	LithologyID string  `json:"lithology_id"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Z           float64 `json:"z"` // depth, usually negative below datum
}

// Point returns the record position as a 3D vector
func (r Record) Point() r3.Vec {
	return r3.Vec{X: r.X, Y: r.Y, Z: r.Z}
}

// Dataset is an ordered sequence of records sharing one schema
type Dataset []Record

// Coordinates splits the dataset into its x, y and z columns
func (ds Dataset) Coordinates() (xs, ys, zs []float64) {
	xs = make([]float64, len(ds))
	ys = make([]float64, len(ds))
	zs = make([]float64, len(ds))
	for i, rec := range ds {
		xs[i], ys[i], zs[i] = rec.X, rec.Y, rec.Z
	}
	return xs, ys, zs
}
