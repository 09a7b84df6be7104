package summary

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHFClientSummarize(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		var req struct {
			Inputs string `json:"inputs"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "long digest text", req.Inputs)

		fmt.Fprint(w, `[{"summary_text":"condensed"}]`)
	}))
	defer srv.Close()

	c := NewHFClient(srv.Client(), srv.URL, "test-token")
	got, err := c.Summarize(context.Background(), "long digest text")
	require.NoError(t, err)
	require.Equal(t, "condensed", got)
}

func TestHFClientUpstreamStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":"model overloaded"}`, http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewHFClient(srv.Client(), srv.URL, "")
	_, err := c.Summarize(context.Background(), "text")
	require.Error(t, err)
	require.ErrorContains(t, err, "503")
}

func TestHFClientMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `[]`)
	}))
	defer srv.Close()

	c := NewHFClient(srv.Client(), srv.URL, "")
	_, err := c.Summarize(context.Background(), "text")
	require.Error(t, err)
	require.ErrorContains(t, err, "no summary text")
}
