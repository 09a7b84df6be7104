package fetch

import (
	"context"
	"time"

	"github.com/sony/gobreaker"
)

// QuakeEvent is one seismic event from the USGS daily feed.
type QuakeEvent struct {
	Place     string    `json:"place"`
	Magnitude float64   `json:"magnitude"`
	Time      time.Time `json:"time"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
}

// QuakeFetcher pulls the past-24-hours global earthquake feed.
type QuakeFetcher struct {
	baseURL string
	client  *Client
	circuit *gobreaker.CircuitBreaker
}

func NewQuakeFetcher(client *Client) *QuakeFetcher {
	return &QuakeFetcher{
		baseURL: "https://earthquake.usgs.gov/earthquakes/feed/v1.0/summary/all_day.geojson",
		client:  client,
		circuit: newBreaker("quakes"),
	}
}

func (f *QuakeFetcher) Fetch(ctx context.Context) ([]QuakeEvent, error) {
	var payload struct {
		Features []struct {
			Properties struct {
				Place string   `json:"place"`
				Mag   *float64 `json:"mag"`
				Time  int64    `json:"time"` // epoch millis
			} `json:"properties"`
			Geometry struct {
				Coordinates []float64 `json:"coordinates"` // [lon, lat, depth]
			} `json:"geometry"`
		} `json:"features"`
	}
	if err := f.client.getJSON(ctx, f.circuit, "quakes", f.baseURL, nil, &payload); err != nil {
		return nil, err
	}

	events := make([]QuakeEvent, 0, len(payload.Features))
	for _, feat := range payload.Features {
		if feat.Properties.Mag == nil || len(feat.Geometry.Coordinates) < 2 {
			continue
		}
		events = append(events, QuakeEvent{
			Place:     feat.Properties.Place,
			Magnitude: *feat.Properties.Mag,
			Time:      time.UnixMilli(feat.Properties.Time).UTC(),
			Longitude: feat.Geometry.Coordinates[0],
			Latitude:  feat.Geometry.Coordinates[1],
		})
	}
	return events, nil
}
