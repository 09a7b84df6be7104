// Package dashboard runs one full refresh cycle: fetch the selected
// layers in canonical order, render them, build the digest blob, and fan
// it out into the six agent panels.
package dashboard

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/planetpulse/globaltwin/internal/digest"
	"github.com/planetpulse/globaltwin/internal/fetch"
	"github.com/planetpulse/globaltwin/internal/layer"
	"github.com/planetpulse/globaltwin/internal/render"
	"github.com/planetpulse/globaltwin/internal/summary"
)

// Per-layer source interfaces so tests can stub upstreams.
type (
	WeatherSource interface {
		Fetch(ctx context.Context, city string) (fetch.WeatherReport, error)
	}
	QuakeSource interface {
		Fetch(ctx context.Context) ([]fetch.QuakeEvent, error)
	}
	AirQualitySource interface {
		Fetch(ctx context.Context, city string) (fetch.AirQualityReport, error)
	}
	CovidSource interface {
		Fetch(ctx context.Context) (fetch.CovidStats, error)
	}
	DisasterSource interface {
		Fetch(ctx context.Context) ([]fetch.DisasterReport, error)
	}
	NewsSource interface {
		Fetch(ctx context.Context) ([]fetch.Article, error)
	}
)

// Sources bundles the six layer fetchers.
type Sources struct {
	Weather    WeatherSource
	Quakes     QuakeSource
	AirQuality AirQualitySource
	Covid      CovidSource
	Disasters  DisasterSource
	News       NewsSource
}

// SkippedLayer records a layer that produced no widget this cycle.
type SkippedLayer struct {
	Layer  layer.Layer `json:"layer"`
	Reason string      `json:"reason"`
}

// Dashboard is the complete result of one refresh cycle. Nothing in it
// outlives the response; the next request rebuilds everything from
// scratch.
type Dashboard struct {
	CycleID     string          `json:"cycleId"`
	City        string          `json:"city"`
	GeneratedAt time.Time       `json:"generatedAt"`
	Widgets     []render.Widget `json:"widgets"`
	Digest      string          `json:"digest"`
	Panels      []summary.Panel `json:"panels"`
	Skipped     []SkippedLayer  `json:"skipped,omitempty"`
}

// Request is the user input driving one cycle.
type Request struct {
	City   string
	Layers layer.Selection
}

// Service drives refresh cycles. It holds no state between cycles.
type Service struct {
	sources    Sources
	summarizer *summary.Facade
}

func NewService(sources Sources, summarizer *summary.Facade) *Service {
	return &Service{
		sources:    sources,
		summarizer: summarizer,
	}
}

// Run executes one strictly sequential cycle. A failed layer is skipped
// silently (recorded in Skipped, no widget, no digest sentence); a failed
// summarization aborts the cycle and propagates.
func (s *Service) Run(ctx context.Context, req Request) (*Dashboard, error) {
	d := &Dashboard{
		CycleID:     uuid.NewString(),
		City:        req.City,
		GeneratedAt: time.Now().UTC(),
	}

	var entries []string
	for _, l := range layer.Canonical {
		if !req.Layers.Has(l) {
			continue
		}

		w, sentence, err := s.runLayer(ctx, l, req.City)
		if err != nil {
			log.Printf("layer %s skipped: %v", l, err)
			d.Skipped = append(d.Skipped, SkippedLayer{Layer: l, Reason: err.Error()})
			continue
		}

		d.Widgets = append(d.Widgets, w)
		entries = append(entries, sentence)
	}

	d.Digest = digest.Join(entries)

	panels, err := s.summarizer.Panels(ctx, d.Digest)
	if err != nil {
		return nil, err
	}
	d.Panels = panels

	return d, nil
}

func (s *Service) runLayer(ctx context.Context, l layer.Layer, city string) (render.Widget, string, error) {
	switch l {
	case layer.Weather:
		if s.sources.Weather == nil {
			return render.Widget{}, "", fmt.Errorf("weather fetcher not configured")
		}
		r, err := s.sources.Weather.Fetch(ctx, city)
		if err != nil {
			return render.Widget{}, "", err
		}
		w, sentence := render.Weather(r)
		return w, sentence, nil

	case layer.Earthquakes:
		if s.sources.Quakes == nil {
			return render.Widget{}, "", fmt.Errorf("earthquake fetcher not configured")
		}
		events, err := s.sources.Quakes.Fetch(ctx)
		if err != nil {
			return render.Widget{}, "", err
		}
		w, sentence := render.Earthquakes(events)
		return w, sentence, nil

	case layer.AirQuality:
		if s.sources.AirQuality == nil {
			return render.Widget{}, "", fmt.Errorf("air quality fetcher not configured")
		}
		r, err := s.sources.AirQuality.Fetch(ctx, city)
		if err != nil {
			return render.Widget{}, "", err
		}
		w, sentence := render.AirQuality(r)
		return w, sentence, nil

	case layer.Covid:
		if s.sources.Covid == nil {
			return render.Widget{}, "", fmt.Errorf("covid fetcher not configured")
		}
		stats, err := s.sources.Covid.Fetch(ctx)
		if err != nil {
			return render.Widget{}, "", err
		}
		w, sentence := render.Covid(stats)
		return w, sentence, nil

	case layer.Disasters:
		if s.sources.Disasters == nil {
			return render.Widget{}, "", fmt.Errorf("disaster fetcher not configured")
		}
		reports, err := s.sources.Disasters.Fetch(ctx)
		if err != nil {
			return render.Widget{}, "", err
		}
		w, sentence := render.Disasters(reports)
		return w, sentence, nil

	case layer.News:
		if s.sources.News == nil {
			return render.Widget{}, "", fmt.Errorf("news fetcher not configured")
		}
		articles, err := s.sources.News.Fetch(ctx)
		if err != nil {
			return render.Widget{}, "", err
		}
		w, sentence := render.News(articles)
		return w, sentence, nil
	}
	return render.Widget{}, "", fmt.Errorf("unknown layer %q", l)
}
