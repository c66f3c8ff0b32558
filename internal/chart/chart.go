package chart

import "math"

// Config is a declarative chart artifact: everything the page needs to
// draw one widget, with no business logic attached.
type Config struct {
	Type       string   `json:"type"`
	Title      string   `json:"title"`
	XAxis      string   `json:"x_axis,omitempty"`
	YAxis      string   `json:"y_axis,omitempty"`
	Stacked    bool     `json:"stacked,omitempty"`
	ShowLegend bool     `json:"show_legend"`
	Series     []Series `json:"series"`
	Colors     []string `json:"colors,omitempty"`
}

// Series is one named run of points. Dashed marks forecast overlays.
type Series struct {
	Name   string  `json:"name"`
	Color  string  `json:"color,omitempty"`
	Dashed bool    `json:"dashed,omitempty"`
	Data   []Point `json:"data"`
}

type Point struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// MapConfig is the choropleth artifact: parallel location/value/hover
// slices plus a continuous color scale name.
type MapConfig struct {
	Title     string    `json:"title"`
	Locations []string  `json:"locations"`
	Values    []float64 `json:"values"`
	Hover     []string  `json:"hover"`
	Scale     string    `json:"scale"`
	Legend    string    `json:"legend"`
}

// palette mirrors the dashboard's two-tone sex coloring plus fallbacks
// for multi-series stacks.
var palette = []string{
	"#1f77b4", "#aec7e8", "#ff7f0e", "#ffbb78", "#2ca02c",
	"#98df8a", "#d62728", "#ff9896", "#9467bd", "#c5b0d5",
	"#8c564b", "#c49c94", "#e377c2", "#f7b6d2", "#7f7f7f",
	"#c7c7c7", "#bcbd22", "#dbdb8d", "#17becf", "#9edae5",
}

func colorAt(i int) string {
	return palette[i%len(palette)]
}

func assignColors(count int) []string {
	colors := make([]string, count)
	for i := range colors {
		colors[i] = colorAt(i)
	}
	return colors
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
