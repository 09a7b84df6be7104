package dashboard

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/planetpulse/globaltwin/internal/digest"
	"github.com/planetpulse/globaltwin/internal/fetch"
	"github.com/planetpulse/globaltwin/internal/layer"
	"github.com/planetpulse/globaltwin/internal/summary"
)

type stubWeather struct {
	calls  int
	report fetch.WeatherReport
	err    error
}

func (s *stubWeather) Fetch(_ context.Context, _ string) (fetch.WeatherReport, error) {
	s.calls++
	return s.report, s.err
}

type stubQuakes struct {
	calls  int
	events []fetch.QuakeEvent
	err    error
}

func (s *stubQuakes) Fetch(_ context.Context) ([]fetch.QuakeEvent, error) {
	s.calls++
	return s.events, s.err
}

type stubAirQuality struct {
	calls  int
	report fetch.AirQualityReport
	err    error
}

func (s *stubAirQuality) Fetch(_ context.Context, _ string) (fetch.AirQualityReport, error) {
	s.calls++
	return s.report, s.err
}

type stubCovid struct {
	calls int
	stats fetch.CovidStats
	err   error
}

func (s *stubCovid) Fetch(_ context.Context) (fetch.CovidStats, error) {
	s.calls++
	return s.stats, s.err
}

type stubDisasters struct {
	calls   int
	reports []fetch.DisasterReport
	err     error
}

func (s *stubDisasters) Fetch(_ context.Context) ([]fetch.DisasterReport, error) {
	s.calls++
	return s.reports, s.err
}

type stubNews struct {
	calls    int
	articles []fetch.Article
	err      error
}

func (s *stubNews) Fetch(_ context.Context) ([]fetch.Article, error) {
	s.calls++
	return s.articles, s.err
}

type stubSummarizer struct {
	out    string
	err    error
	inputs []string
}

func (s *stubSummarizer) Summarize(_ context.Context, text string) (string, error) {
	s.inputs = append(s.inputs, text)
	if s.err != nil {
		return "", s.err
	}
	return s.out, nil
}

func testService(sources Sources, client summary.Client) *Service {
	return NewService(sources, summary.NewFacade(client))
}

func allStubs() (Sources, *stubWeather, *stubQuakes, *stubAirQuality, *stubCovid, *stubDisasters, *stubNews) {
	w := &stubWeather{report: fetch.WeatherReport{
		City: "Paris", Times: []string{"t0"}, TemperaturesC: []float64{18.0},
	}}
	q := &stubQuakes{events: []fetch.QuakeEvent{{Place: "somewhere", Magnitude: 4.0}}}
	a := &stubAirQuality{report: fetch.AirQualityReport{
		City: "Paris", Measurements: []fetch.Measurement{{Parameter: "pm25", Value: 12}},
	}}
	c := &stubCovid{stats: fetch.CovidStats{Cases: 1000, Deaths: 10}}
	d := &stubDisasters{reports: []fetch.DisasterReport{{Name: "Flood", Status: "ongoing"}}}
	n := &stubNews{articles: []fetch.Article{{Title: "Headline"}}}

	return Sources{
		Weather: w, Quakes: q, AirQuality: a, Covid: c, Disasters: d, News: n,
	}, w, q, a, c, d, n
}

func TestRunInvokesOnlySelectedFetchers(t *testing.T) {
	sources, w, q, a, c, d, n := allStubs()
	svc := testService(sources, &stubSummarizer{out: "summary"})

	got, err := svc.Run(context.Background(), Request{
		City:   "Paris",
		Layers: layer.Selection{layer.Covid: true},
	})
	require.NoError(t, err)

	require.Equal(t, 1, c.calls)
	require.Zero(t, w.calls)
	require.Zero(t, q.calls)
	require.Zero(t, a.calls)
	require.Zero(t, d.calls)
	require.Zero(t, n.calls)

	require.Len(t, got.Widgets, 1)
	require.Equal(t, "Global COVID-19 cases 1,000, deaths 10.", got.Digest)
}

func TestRunDigestsInCanonicalOrder(t *testing.T) {
	sources, _, _, _, _, _, _ := allStubs()
	svc := testService(sources, &stubSummarizer{out: "summary"})

	// Selection order deliberately differs from canonical order.
	sel, err := layer.ParseSelection([]string{"news", "covid19", "weather"})
	require.NoError(t, err)

	got, err := svc.Run(context.Background(), Request{City: "Paris", Layers: sel})
	require.NoError(t, err)
	require.Len(t, got.Widgets, 3)

	weatherAt := strings.Index(got.Digest, "Hourly forecast")
	covidAt := strings.Index(got.Digest, "Global COVID-19")
	newsAt := strings.Index(got.Digest, "News headlines")
	require.GreaterOrEqual(t, weatherAt, 0)
	require.Greater(t, covidAt, weatherAt)
	require.Greater(t, newsAt, covidAt)

	require.Equal(t, layer.Weather, got.Widgets[0].Layer)
	require.Equal(t, layer.Covid, got.Widgets[1].Layer)
	require.Equal(t, layer.News, got.Widgets[2].Layer)
}

func TestRunSkipsFailedLayerSilently(t *testing.T) {
	sources, w, _, _, _, _, _ := allStubs()
	w.err = &fetch.Error{Kind: fetch.KindNoMatch, Op: "geocode", Err: errors.New(`no geocoding results for "Atlantis"`)}
	svc := testService(sources, &stubSummarizer{out: "summary"})

	got, err := svc.Run(context.Background(), Request{
		City:   "Atlantis",
		Layers: layer.Selection{layer.Weather: true, layer.Covid: true},
	})
	require.NoError(t, err)

	// Failed weather: no widget, no digest contribution.
	require.Len(t, got.Widgets, 1)
	require.Equal(t, layer.Covid, got.Widgets[0].Layer)
	require.Equal(t, "Global COVID-19 cases 1,000, deaths 10.", got.Digest)

	require.Len(t, got.Skipped, 1)
	require.Equal(t, layer.Weather, got.Skipped[0].Layer)
	require.Contains(t, got.Skipped[0].Reason, "Atlantis")
}

func TestRunEmptySelectionUsesPlaceholder(t *testing.T) {
	sources, _, _, _, _, _, _ := allStubs()
	stub := &stubSummarizer{out: "nothing to report"}
	svc := testService(sources, stub)

	got, err := svc.Run(context.Background(), Request{City: "Paris", Layers: layer.Selection{}})
	require.NoError(t, err)

	require.Empty(t, got.Widgets)
	require.Equal(t, digest.Placeholder, got.Digest)
	require.Len(t, got.Panels, len(summary.AgentLabels))
	require.Equal(t, digest.Placeholder, stub.inputs[0])
}

func TestRunPropagatesSummarizationFailure(t *testing.T) {
	sources, _, _, _, _, _, _ := allStubs()
	svc := testService(sources, &stubSummarizer{err: errors.New("endpoint down")})

	got, err := svc.Run(context.Background(), Request{
		City:   "Paris",
		Layers: layer.Selection{layer.Covid: true},
	})
	require.Error(t, err)
	require.Nil(t, got)
	require.ErrorContains(t, err, "endpoint down")
}

func TestRunAssignsFreshCycleID(t *testing.T) {
	sources, _, _, _, _, _, _ := allStubs()
	svc := testService(sources, &stubSummarizer{out: "summary"})

	first, err := svc.Run(context.Background(), Request{City: "Paris", Layers: layer.Selection{layer.Covid: true}})
	require.NoError(t, err)
	second, err := svc.Run(context.Background(), Request{City: "Paris", Layers: layer.Selection{layer.Covid: true}})
	require.NoError(t, err)

	require.NotEmpty(t, first.CycleID)
	require.NotEqual(t, first.CycleID, second.CycleID)
}
