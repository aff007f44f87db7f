package model

// Trace types understood by the browser renderer
const (
	TraceScatter3D = "scatter3d"
	TraceMesh3D    = "mesh3d"
)

// LineStyle defines the stroke of a well path
type LineStyle struct {
	Width float64 `json:"width"`
}

// MarkerStyle defines the point markers of a well path
type MarkerStyle struct {
	Size float64 `json:"size"`
}

// Trace is one renderable element of a scene (well path or lithology mesh)
type Trace struct {
	Type       string       `json:"type"`
	Name       string       `json:"name"`
	Mode       string       `json:"mode,omitempty"`
	X          []float64    `json:"x"`
	Y          []float64    `json:"y"`
	Z          []float64    `json:"z"`
	Line       *LineStyle   `json:"line,omitempty"`
	Marker     *MarkerStyle `json:"marker,omitempty"`
	Opacity    float64      `json:"opacity,omitempty"`
	ShowLegend *bool        `json:"showlegend,omitempty"`
}

// Len returns the number of points carried by the trace
func (t Trace) Len() int {
	return len(t.X)
}

// Title is a text label of the layout or of an axis
type Title struct {
	Text string `json:"text"`
}

// Axis describes one scene axis
type Axis struct {
	Title     *Title `json:"title,omitempty"`
	AutoRange bool   `json:"autorange"`
}

// SceneAxes holds the per-axis settings of the 3D viewport
type SceneAxes struct {
	ZAxis *Axis `json:"zaxis,omitempty"`
}

// Layout holds scene-wide metadata
type Layout struct {
	Title       *Title     `json:"title,omitempty"`
	Scene       *SceneAxes `json:"scene,omitempty"`
	PlotBGColor string     `json:"plot_bgcolor,omitempty"`
}

// Scene is the renderable output of a build: traces plus layout
type Scene struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// EmptyScene returns a scene with no traces and a blank layout
func EmptyScene() Scene {
	return Scene{Data: []Trace{}}
}

// CountByType returns how many traces of the given type the scene holds
func (s Scene) CountByType(traceType string) int {
	n := 0
	for _, t := range s.Data {
		if t.Type == traceType {
			n++
		}
	}
	return n
}
