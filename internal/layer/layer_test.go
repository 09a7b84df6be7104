package layer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSelection(t *testing.T) {
	sel, err := ParseSelection([]string{"weather", "covid19", "weather"})
	require.NoError(t, err)
	require.Len(t, sel, 2)
	require.True(t, sel.Has(Weather))
	require.True(t, sel.Has(Covid))
	require.False(t, sel.Has(News))
}

func TestParseSelectionRejectsUnknown(t *testing.T) {
	_, err := ParseSelection([]string{"weather", "volcanoes"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "volcanoes")
}

func TestCanonicalCoversFixedSet(t *testing.T) {
	require.Len(t, Canonical, 6)
	seen := map[Layer]bool{}
	for _, l := range Canonical {
		require.True(t, Valid(l), "canonical layer %q not in fixed set", l)
		require.False(t, seen[l], "duplicate canonical layer %q", l)
		seen[l] = true
	}
}

func TestTitles(t *testing.T) {
	require.Equal(t, "Air Quality", AirQuality.Title())
	require.Equal(t, "COVID-19", Covid.Title())
}
