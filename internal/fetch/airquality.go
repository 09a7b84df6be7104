package fetch

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sony/gobreaker"
)

// Measurement is one pollutant reading from an air quality station.
type Measurement struct {
	Parameter string  `json:"parameter"`
	Value     float64 `json:"value"`
	Unit      string  `json:"unit"`
}

// AirQualityReport holds the latest measurements of the first station
// matching the requested city.
type AirQualityReport struct {
	City         string        `json:"city"`
	Station      string        `json:"station"`
	Measurements []Measurement `json:"measurements"`
}

// AirQualityFetcher pulls latest station readings by city from OpenAQ.
// A city with zero station results is a no-match failure, never an empty
// success.
type AirQualityFetcher struct {
	baseURL string
	apiKey  string
	client  *Client
	circuit *gobreaker.CircuitBreaker
}

func NewAirQualityFetcher(client *Client, apiKey string) *AirQualityFetcher {
	return &AirQualityFetcher{
		baseURL: "https://api.openaq.org/v2/latest",
		apiKey:  apiKey,
		client:  client,
		circuit: newBreaker("airquality"),
	}
}

func (f *AirQualityFetcher) Fetch(ctx context.Context, city string) (AirQualityReport, error) {
	v := url.Values{}
	v.Set("city", city)

	var header http.Header
	if f.apiKey != "" {
		header = http.Header{"X-API-Key": []string{f.apiKey}}
	}

	var payload struct {
		Results []struct {
			Location     string `json:"location"`
			Measurements []struct {
				Parameter string  `json:"parameter"`
				Value     float64 `json:"value"`
				Unit      string  `json:"unit"`
			} `json:"measurements"`
		} `json:"results"`
	}
	if err := f.client.getJSON(ctx, f.circuit, "airquality", f.baseURL+"?"+v.Encode(), header, &payload); err != nil {
		return AirQualityReport{}, err
	}
	if len(payload.Results) == 0 {
		return AirQualityReport{}, &Error{
			Kind: KindNoMatch,
			Op:   "airquality",
			Err:  fmt.Errorf("no air quality stations for %q", city),
		}
	}

	station := payload.Results[0]
	report := AirQualityReport{
		City:         city,
		Station:      station.Location,
		Measurements: make([]Measurement, 0, len(station.Measurements)),
	}
	for _, m := range station.Measurements {
		report.Measurements = append(report.Measurements, Measurement{
			Parameter: m.Parameter,
			Value:     m.Value,
			Unit:      m.Unit,
		})
	}
	return report, nil
}
