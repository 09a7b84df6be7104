package fetch

import (
	"context"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
)

// CovidStats is the global aggregate snapshot from disease.sh.
type CovidStats struct {
	Cases     int64     `json:"cases"`
	Deaths    int64     `json:"deaths"`
	Recovered int64     `json:"recovered"`
	Active    int64     `json:"active"`
	Updated   time.Time `json:"updated"`
}

// CovidFetcher pulls worldwide COVID-19 aggregate statistics.
type CovidFetcher struct {
	baseURL string
	client  *Client
	circuit *gobreaker.CircuitBreaker
}

func NewCovidFetcher(client *Client) *CovidFetcher {
	return &CovidFetcher{
		baseURL: "https://disease.sh/v3/covid-19/all",
		client:  client,
		circuit: newBreaker("covid"),
	}
}

func (f *CovidFetcher) Fetch(ctx context.Context) (CovidStats, error) {
	var payload struct {
		Updated   int64  `json:"updated"` // epoch millis
		Cases     *int64 `json:"cases"`
		Deaths    *int64 `json:"deaths"`
		Recovered int64  `json:"recovered"`
		Active    int64  `json:"active"`
	}
	if err := f.client.getJSON(ctx, f.circuit, "covid", f.baseURL, nil, &payload); err != nil {
		return CovidStats{}, err
	}
	if payload.Cases == nil || payload.Deaths == nil {
		return CovidStats{}, &Error{
			Kind: KindUpstream,
			Op:   "covid",
			Err:  fmt.Errorf("cases or deaths missing from response"),
		}
	}
	return CovidStats{
		Cases:     *payload.Cases,
		Deaths:    *payload.Deaths,
		Recovered: payload.Recovered,
		Active:    payload.Active,
		Updated:   time.UnixMilli(payload.Updated).UTC(),
	}, nil
}
