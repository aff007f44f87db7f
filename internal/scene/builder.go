package scene

import (
	"bytes"

	"go.uber.org/zap"

	"go-well-viewer/internal/model"
	"go-well-viewer/internal/pkg/logger"
)

// Presentation constants of the rendered scene
const (
	WellLineWidth    = 6
	WellMarkerSize   = 8
	LithologyOpacity = 0.5
	DepthAxisTitle   = "Profundidad"
	TitlePrefix      = "Trayectorias y litologias 3D - "
	BackgroundColor  = "#f9f9f9"
)

// Result is the outcome of one build: a scene, or an empty scene plus the reason
type Result struct {
	Scene   model.Scene
	Summary model.Summary
	Err     *MalformedInputError
}

// OK reports whether the payload was turned into a scene
func (r Result) OK() bool {
	return r.Err == nil
}

// Build turns an uploaded CSV payload into a renderable scene.
// It never fails: a malformed payload yields an empty scene and the reason in Result.Err.
// The filename only labels the scene title.
func Build(payload []byte, filename string) Result {
	ds, err := ParseDataset(bytes.NewReader(payload))
	if err != nil {
		return Failure(filename, err)
	}

	return Result{
		Scene:   Assemble(ds, filename),
		Summary: Summarize(ds),
	}
}

// Failure logs err and returns the empty-scene result of a rejected upload.
// It is also used by callers that fail before a payload reaches Build, such as
// an undecodable data URL.
func Failure(filename string, err error) Result {
	m := asMalformed(err)
	logger.Warn("scene build failed",
		zap.String("filename", filename),
		zap.String("reason", m.Error()),
	)
	return Result{Scene: model.EmptyScene(), Err: m}
}

// Assemble builds the scene of a parsed dataset: one well path per distinct
// well id, then one lithology volume per distinct lithology id.
func Assemble(ds model.Dataset, filename string) model.Scene {
	wells := GroupBy(ds, ByWell)
	lithologies := GroupBy(ds, ByLithology)

	traces := make([]model.Trace, 0, len(wells)+len(lithologies))
	for _, g := range wells {
		traces = append(traces, WellPathTrace(g.Key, g.Records))
	}
	for _, g := range lithologies {
		traces = append(traces, LithologyVolumeTrace(g.Key, g.Records))
	}

	return model.Scene{
		Data:   traces,
		Layout: SceneLayout(filename),
	}
}

// WellPathTrace draws the records of one well as a polyline with markers, in row order
func WellPathTrace(wellID string, records model.Dataset) model.Trace {
	xs, ys, zs := records.Coordinates()
	return model.Trace{
		Type:   model.TraceScatter3D,
		Name:   "Pozo " + wellID,
		Mode:   "lines+markers",
		X:      xs,
		Y:      ys,
		Z:      zs,
		Line:   &model.LineStyle{Width: WellLineWidth},
		Marker: &model.MarkerStyle{Size: WellMarkerSize},
	}
}

// LithologyVolumeTrace draws the records of one lithology as a translucent mesh.
// No triangulation is sent: the renderer triangulates the ordered points itself.
func LithologyVolumeTrace(lithologyID string, records model.Dataset) model.Trace {
	xs, ys, zs := records.Coordinates()
	showLegend := true
	return model.Trace{
		Type:       model.TraceMesh3D,
		Name:       "litologia " + lithologyID,
		X:          xs,
		Y:          ys,
		Z:          zs,
		Opacity:    LithologyOpacity,
		ShowLegend: &showLegend,
	}
}

// SceneLayout returns the layout of a built scene. The depth axis autoscales to the data.
func SceneLayout(filename string) model.Layout {
	return model.Layout{
		Title: &model.Title{Text: TitlePrefix + filename},
		Scene: &model.SceneAxes{
			ZAxis: &model.Axis{
				Title:     &model.Title{Text: DepthAxisTitle},
				AutoRange: true,
			},
		},
		PlotBGColor: BackgroundColor,
	}
}
