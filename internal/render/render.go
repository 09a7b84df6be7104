// Package render turns fetch payloads into widgets and digest sentences.
// Renderers are pure: they never touch the network and never modify their
// input.
package render

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/planetpulse/globaltwin/internal/fetch"
	"github.com/planetpulse/globaltwin/internal/layer"
)

// enPrinter formats large counts with thousands separators.
var enPrinter = message.NewPrinter(language.English)

// maxSeriesPoints bounds the hourly temperature line to two days.
const maxSeriesPoints = 48

// Weather renders the hourly temperature forecast as a line chart.
func Weather(r fetch.WeatherReport) (Widget, string) {
	n := len(r.TemperaturesC)
	if n > len(r.Times) {
		n = len(r.Times)
	}
	if n > maxSeriesPoints {
		n = maxSeriesPoints
	}

	series := make([]SeriesPoint, 0, n)
	min, max := r.TemperaturesC[0], r.TemperaturesC[0]
	for i, t := range r.TemperaturesC {
		if t < min {
			min = t
		}
		if t > max {
			max = t
		}
		if i < n {
			series = append(series, SeriesPoint{Time: r.Times[i], Value: t})
		}
	}

	w := Widget{
		Layer:  layer.Weather,
		Title:  fmt.Sprintf("Hourly Temperature in %s", r.City),
		Kind:   KindLine,
		Series: series,
	}
	sentence := fmt.Sprintf("Hourly forecast for %s ranges from %.1f°C to %.1f°C.", r.City, min, max)
	return w, sentence
}

// Earthquakes renders the daily feed as a map with magnitude-sized markers.
func Earthquakes(events []fetch.QuakeEvent) (Widget, string) {
	w := Widget{
		Layer:   layer.Earthquakes,
		Title:   "Earthquakes (Past 24 Hours)",
		Kind:    KindMap,
		Markers: make([]Marker, 0, len(events)),
	}

	var strongest fetch.QuakeEvent
	for _, e := range events {
		w.Markers = append(w.Markers, Marker{
			Label:     fmt.Sprintf("M%.1f %s", e.Magnitude, e.Place),
			Latitude:  e.Latitude,
			Longitude: e.Longitude,
			Size:      e.Magnitude * 50000,
		})
		if e.Magnitude > strongest.Magnitude {
			strongest = e
		}
	}

	if len(events) == 0 {
		return w, "No earthquakes recorded in the past 24 hours."
	}
	sentence := enPrinter.Sprintf("Recorded %d earthquakes in the past 24 hours, strongest M%.1f near %s.",
		len(events), strongest.Magnitude, strongest.Place)
	return w, sentence
}

// Covid renders global aggregate counts as a metric pair.
func Covid(s fetch.CovidStats) (Widget, string) {
	w := Widget{
		Layer: layer.Covid,
		Title: "Global COVID-19 Snapshot",
		Kind:  KindMetrics,
		Metrics: []Metric{
			{Label: "Cases", Value: enPrinter.Sprintf("%d", s.Cases)},
			{Label: "Deaths", Value: enPrinter.Sprintf("%d", s.Deaths)},
		},
	}
	sentence := enPrinter.Sprintf("Global COVID-19 cases %d, deaths %d.", s.Cases, s.Deaths)
	return w, sentence
}

// AirQuality renders pollutant readings as a bar chart per parameter.
func AirQuality(r fetch.AirQualityReport) (Widget, string) {
	w := Widget{
		Layer: layer.AirQuality,
		Title: fmt.Sprintf("Air Quality in %s", r.City),
		Kind:  KindBar,
		Bars:  make([]BarPoint, 0, len(r.Measurements)),
	}
	params := make([]string, 0, len(r.Measurements))
	for _, m := range r.Measurements {
		w.Bars = append(w.Bars, BarPoint{Label: m.Parameter, Value: m.Value})
		params = append(params, m.Parameter)
	}
	sentence := fmt.Sprintf("Air quality in %s shows levels of pollutants: %s.", r.City, strings.Join(params, ", "))
	return w, sentence
}

// Disasters renders current reports as a bar chart grouped by status.
func Disasters(reports []fetch.DisasterReport) (Widget, string) {
	byStatus := make(map[string]int)
	order := make([]string, 0, 4)
	for _, r := range reports {
		status := r.Status
		if status == "" {
			status = "unknown"
		}
		if _, seen := byStatus[status]; !seen {
			order = append(order, status)
		}
		byStatus[status]++
	}

	w := Widget{
		Layer: layer.Disasters,
		Title: "Disaster Reports",
		Kind:  KindBar,
		Bars:  make([]BarPoint, 0, len(order)),
	}
	dominant := ""
	for _, status := range order {
		w.Bars = append(w.Bars, BarPoint{Label: status, Value: float64(byStatus[status])})
		if dominant == "" || byStatus[status] > byStatus[dominant] {
			dominant = status
		}
	}

	if len(reports) == 0 {
		return w, "No disaster reports tracked worldwide."
	}
	sentence := enPrinter.Sprintf("Tracking %d disaster reports worldwide, most with status %s.",
		len(reports), dominant)
	return w, sentence
}

// News renders the top headlines as a proportion chart over titles.
func News(articles []fetch.Article) (Widget, string) {
	w := Widget{
		Layer:  layer.News,
		Title:  "Trending News Topics (Sample)",
		Kind:   KindPie,
		Slices: make([]Slice, 0, len(articles)),
	}
	for _, a := range articles {
		w.Slices = append(w.Slices, Slice{Label: a.Title, Value: 1})
	}
	return w, "News headlines show climate and geopolitical issues trending."
}
