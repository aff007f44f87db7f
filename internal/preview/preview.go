// Package preview renders a static plan view (x against y) of well paths.
package preview

import (
	"errors"
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"go-well-viewer/internal/model"
	"go-well-viewer/internal/scene"
)

// Default image size
const (
	DefaultWidth  = 8 * vg.Inch
	DefaultHeight = 6 * vg.Inch
)

// ErrNoWells is returned when a dataset holds no records to draw
var ErrNoWells = errors.New("dataset has no well paths to draw")

// PlanView builds the plot of every well path projected on the x-y plane,
// wells drawn and listed in first-seen order.
func PlanView(ds model.Dataset, title string) (*plot.Plot, error) {
	wells := scene.GroupBy(ds, scene.ByWell)
	if len(wells) == 0 {
		return nil, ErrNoWells
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())

	for i, g := range wells {
		xys := make(plotter.XYs, len(g.Records))
		for j, rec := range g.Records {
			xys[j].X = rec.X
			xys[j].Y = rec.Y
		}

		line, points, err := plotter.NewLinePoints(xys)
		if err != nil {
			return nil, fmt.Errorf("well %s: %w", g.Key, err)
		}
		color := plotutil.Color(i)
		line.Color = color
		line.Width = vg.Points(2)
		points.Color = color
		points.Radius = vg.Points(3)

		p.Add(line, points)
		p.Legend.Add("Pozo "+g.Key, line, points)
	}
	return p, nil
}

// RenderPlanView writes the plan view of the dataset as PNG
func RenderPlanView(w io.Writer, ds model.Dataset, title string) error {
	p, err := PlanView(ds, title)
	if err != nil {
		return err
	}

	wt, err := p.WriterTo(DefaultWidth, DefaultHeight, "png")
	if err != nil {
		return fmt.Errorf("failed to render plan view: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write plan view: %w", err)
	}
	return nil
}
