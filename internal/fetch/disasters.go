package fetch

import (
	"context"
	"net/url"

	"github.com/sony/gobreaker"
)

// DisasterReport is one structured disaster record from ReliefWeb.
type DisasterReport struct {
	Name    string `json:"name"`
	Status  string `json:"status"`
	Country string `json:"country"`
}

// DisasterFetcher pulls current disaster reports from ReliefWeb.
type DisasterFetcher struct {
	baseURL string
	appName string
	client  *Client
	circuit *gobreaker.CircuitBreaker
}

func NewDisasterFetcher(client *Client) *DisasterFetcher {
	return &DisasterFetcher{
		baseURL: "https://api.reliefweb.int/v1/disasters",
		appName: "globaltwin",
		client:  client,
		circuit: newBreaker("disasters"),
	}
}

func (f *DisasterFetcher) Fetch(ctx context.Context) ([]DisasterReport, error) {
	v := url.Values{}
	v.Set("appname", f.appName)
	v.Set("profile", "full")

	var payload struct {
		Data []struct {
			Fields struct {
				Name    string `json:"name"`
				Status  string `json:"status"`
				Country []struct {
					Name string `json:"name"`
				} `json:"country"`
			} `json:"fields"`
		} `json:"data"`
	}
	if err := f.client.getJSON(ctx, f.circuit, "disasters", f.baseURL+"?"+v.Encode(), nil, &payload); err != nil {
		return nil, err
	}

	reports := make([]DisasterReport, 0, len(payload.Data))
	for _, d := range payload.Data {
		r := DisasterReport{
			Name:   d.Fields.Name,
			Status: d.Fields.Status,
		}
		if len(d.Fields.Country) > 0 {
			r.Country = d.Fields.Country[0].Name
		}
		reports = append(reports, r)
	}
	return reports, nil
}
