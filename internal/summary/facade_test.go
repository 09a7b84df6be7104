package summary

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

// stubClient records inputs and returns a canned summary.
type stubClient struct {
	out    string
	err    error
	inputs []string
}

func (s *stubClient) Summarize(_ context.Context, text string) (string, error) {
	s.inputs = append(s.inputs, text)
	if s.err != nil {
		return "", s.err
	}
	return s.out, nil
}

func TestPanelsProduceSixIdenticalSummaries(t *testing.T) {
	stub := &stubClient{out: "seismic hotspots and rising case counts"}
	facade := NewFacade(stub)

	panels, err := facade.Panels(context.Background(), "Earthquake activity shows seismic hotspots.")
	require.NoError(t, err)
	require.Len(t, panels, len(AgentLabels))
	require.Len(t, stub.inputs, len(AgentLabels))

	// Stripping each panel's label prefix must leave identical text.
	for i, p := range panels {
		require.Equal(t, AgentLabels[i], p.Label)
		require.True(t, strings.HasPrefix(p.Summary, p.Label+": "))
		require.Equal(t, stub.out, strings.TrimPrefix(p.Summary, p.Label+": "))
	}

	// All six invocations see the same input.
	for _, in := range stub.inputs {
		require.Equal(t, stub.inputs[0], in)
	}
}

func TestPanelsTruncateInput(t *testing.T) {
	stub := &stubClient{out: "short"}
	facade := NewFacade(stub)

	blob := strings.Repeat("°", 2*MaxInputChars)
	_, err := facade.Panels(context.Background(), blob)
	require.NoError(t, err)

	in := stub.inputs[0]
	require.Equal(t, MaxInputChars, utf8.RuneCountInString(in))
	require.True(t, utf8.ValidString(in))
	require.True(t, strings.HasPrefix(blob, in))
}

func TestPanelsPropagateFailure(t *testing.T) {
	stub := &stubClient{err: errors.New("model loading")}
	facade := NewFacade(stub)

	panels, err := facade.Panels(context.Background(), "anything")
	require.Error(t, err)
	require.Nil(t, panels)
	require.ErrorContains(t, err, "model loading")
}
