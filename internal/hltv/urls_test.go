package hltv

import (
	"testing"

	"hltv-scraper/internal/chrono"

	"github.com/stretchr/testify/require"
)

func TestUrls(t *testing.T) {
	site := NewSite("https://www.hltv.org/")

	require.Equal(t, "https://www.hltv.org/team/4608/natus-vincere", site.TeamUrl(4608, "natus-vincere"))
	require.Equal(t, "https://www.hltv.org/stats/players/7998/s1mple", site.PlayerStatsUrl(7998, "s1mple", nil))
	require.Equal(
		t,
		"https://www.hltv.org/stats/players/individual/7998/s1mple",
		site.PlayerIndividualUrl(7998, "s1mple", nil),
	)

	dates, err := chrono.ParseDateRange("2024-01-01", "2024-06-30")
	require.NoError(t, err)
	require.Equal(
		t,
		"https://www.hltv.org/stats/players/7998/s1mple?startDate=2024-01-01&endDate=2024-06-30",
		site.PlayerStatsUrl(7998, "s1mple", &dates),
	)
	require.Equal(
		t,
		"https://www.hltv.org/stats/players/individual/7998/s1mple?startDate=2024-01-01&endDate=2024-06-30",
		site.PlayerIndividualUrl(7998, "s1mple", &dates),
	)

	require.Equal(t, DefaultBaseUrl, NewSite("").BaseUrl)
}

func TestNormalizeSlug(t *testing.T) {
	testCases := []struct {
		name     string
		expected string
	}{
		{name: "s1mple", expected: "s1mple"},
		{name: "ZywOo", expected: "zywoo"},
		{name: "dev1ce ", expected: "dev1ce"},
		{name: "Boombl4!", expected: "boombl4"},
		{name: "k1to_", expected: "k1to_"},
		{name: "Natus Vincere", expected: "natusvincere"},
	}
	for _, test := range testCases {
		require.Equal(t, test.expected, NormalizeSlug(test.name))
	}
}
