package fetch

import (
	"context"
	"fmt"
	"net/url"

	"github.com/sony/gobreaker"
)

// WeatherReport is the normalized output of the two-step weather lookup.
type WeatherReport struct {
	City          string    `json:"city"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	Times         []string  `json:"times"`
	TemperaturesC []float64 `json:"temperaturesC"`
}

// WeatherFetcher resolves a free-text place name to coordinates via the
// Open-Meteo geocoding API, then pulls the hourly temperature forecast for
// those coordinates. If geocoding yields no match, the whole fetch fails.
type WeatherFetcher struct {
	geocodeURL  string
	forecastURL string
	client      *Client
	circuit     *gobreaker.CircuitBreaker
}

func NewWeatherFetcher(client *Client) *WeatherFetcher {
	return &WeatherFetcher{
		geocodeURL:  "https://geocoding-api.open-meteo.com/v1/search",
		forecastURL: "https://api.open-meteo.com/v1/forecast",
		client:      client,
		circuit:     newBreaker("weather"),
	}
}

func (f *WeatherFetcher) Fetch(ctx context.Context, city string) (WeatherReport, error) {
	gv := url.Values{}
	gv.Set("name", city)

	var geo struct {
		Results []struct {
			Name      string  `json:"name"`
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
		} `json:"results"`
	}
	if err := f.client.getJSON(ctx, f.circuit, "geocode", f.geocodeURL+"?"+gv.Encode(), nil, &geo); err != nil {
		return WeatherReport{}, err
	}
	if len(geo.Results) == 0 {
		return WeatherReport{}, &Error{
			Kind: KindNoMatch,
			Op:   "geocode",
			Err:  fmt.Errorf("no geocoding results for %q", city),
		}
	}
	top := geo.Results[0]

	fv := url.Values{}
	fv.Set("latitude", fmt.Sprintf("%f", top.Latitude))
	fv.Set("longitude", fmt.Sprintf("%f", top.Longitude))
	fv.Set("hourly", "temperature_2m")

	var payload struct {
		Hourly struct {
			Time          []string  `json:"time"`
			Temperature2M []float64 `json:"temperature_2m"`
		} `json:"hourly"`
	}
	if err := f.client.getJSON(ctx, f.circuit, "forecast", f.forecastURL+"?"+fv.Encode(), nil, &payload); err != nil {
		return WeatherReport{}, err
	}
	if len(payload.Hourly.Temperature2M) == 0 {
		return WeatherReport{}, &Error{
			Kind: KindUpstream,
			Op:   "forecast",
			Err:  fmt.Errorf("hourly temperature series missing"),
		}
	}

	return WeatherReport{
		City:          city,
		Latitude:      top.Latitude,
		Longitude:     top.Longitude,
		Times:         payload.Hourly.Time,
		TemperaturesC: payload.Hourly.Temperature2M,
	}, nil
}
