package render

import "github.com/planetpulse/globaltwin/internal/layer"

// WidgetKind selects the visual treatment of a widget.
type WidgetKind string

const (
	KindMap     WidgetKind = "map"
	KindMetrics WidgetKind = "metrics"
	KindBar     WidgetKind = "bar"
	KindPie     WidgetKind = "pie"
	KindLine    WidgetKind = "line"
)

// Marker is one point on a map widget.
type Marker struct {
	Label     string  `json:"label"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Size      float64 `json:"size"`
}

// Metric is one labeled value on a metrics widget.
type Metric struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// BarPoint is one bar on a bar chart widget.
type BarPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Slice is one segment of a proportion chart widget.
type Slice struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// SeriesPoint is one sample on a line chart widget.
type SeriesPoint struct {
	Time  string  `json:"time"`
	Value float64 `json:"value"`
}

// Widget is a renderer's visual output, shaped for direct JSON delivery to
// the frontend. Exactly one of the series fields is populated, matching
// Kind.
type Widget struct {
	Layer   layer.Layer   `json:"layer"`
	Title   string        `json:"title"`
	Kind    WidgetKind    `json:"kind"`
	Markers []Marker      `json:"markers,omitempty"`
	Metrics []Metric      `json:"metrics,omitempty"`
	Bars    []BarPoint    `json:"bars,omitempty"`
	Slices  []Slice       `json:"slices,omitempty"`
	Series  []SeriesPoint `json:"series,omitempty"`
}
