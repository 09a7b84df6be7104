package layer

import (
	"fmt"
	"strings"
)

// Layer identifies one independently fetchable and renderable data domain.
type Layer string

const (
	Weather     Layer = "weather"
	Earthquakes Layer = "earthquakes"
	AirQuality  Layer = "air_quality"
	Covid       Layer = "covid19"
	Disasters   Layer = "disasters"
	News        Layer = "news"
)

// Canonical is the fixed evaluation order for a dashboard cycle. Layers are
// always fetched, rendered and digested in this order, regardless of the
// order the user selected them in.
var Canonical = []Layer{Weather, Earthquakes, AirQuality, Covid, Disasters, News}

var titles = map[Layer]string{
	Weather:     "Weather",
	Earthquakes: "Earthquakes",
	AirQuality:  "Air Quality",
	Covid:       "COVID-19",
	Disasters:   "Disasters",
	News:        "News",
}

// Title returns the human-facing name of the layer.
func (l Layer) Title() string {
	if t, ok := titles[l]; ok {
		return t
	}
	return string(l)
}

// Valid reports whether l belongs to the fixed layer set.
func Valid(l Layer) bool {
	_, ok := titles[l]
	return ok
}

// Selection is the set of layers enabled for one dashboard cycle.
type Selection map[Layer]bool

// Has reports whether l is enabled.
func (s Selection) Has(l Layer) bool {
	return s[l]
}

// ParseSelection builds a Selection from raw layer identifiers. Every
// identifier must belong to the fixed layer set; duplicates collapse.
func ParseSelection(ids []string) (Selection, error) {
	sel := make(Selection, len(ids))
	for _, id := range ids {
		l := Layer(strings.TrimSpace(id))
		if !Valid(l) {
			return nil, fmt.Errorf("unknown layer %q", id)
		}
		sel[l] = true
	}
	return sel, nil
}

// DefaultSelection is the layer set used when the user picked nothing.
func DefaultSelection() Selection {
	return Selection{Weather: true, Earthquakes: true, Covid: true}
}
