package hltv

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"hltv-scraper/internal/coerce"
	"hltv-scraper/internal/extract"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func s1mpleSummary() Summary {
	teamId := 4608
	return Summary{
		Id:           7998,
		Image:        "https://img-cdn.hltv.org/playerbodyshot/s1mple.png",
		Nickname:     "s1mple",
		Name:         "Oleksandr Kostyliev",
		Team:         "Natus Vincere",
		TeamId:       &teamId,
		Rating:       coerce.NewFloat(1.25),
		Dpr:          coerce.NewFloat(0.62),
		Kast:         coerce.NewFloat(74.1),
		Impact:       coerce.NewFloat(1.38),
		Adr:          coerce.NewFloat(87.2),
		Kpr:          coerce.NewFloat(0.86),
		Rounds:       coerce.NewInt(32650),
		Headshots:    coerce.NewFloat(41.2),
		KdRatio:      coerce.NewFloat(1.30),
		AssistsRound: coerce.NewFloat(0.11),
		Maps:         coerce.NewInt(1245),
		RatingTop5:   coerce.NewFloat(1.12),
		RatingTop10:  coerce.NewFloat(1.18),
		RatingTop20:  coerce.NewFloat(1.21),
		RatingTop30:  coerce.NewFloat(1.23),
		RatingTop50:  coerce.NewFloat(1.24),
		Role:         RoleRifler,
	}
}

func s1mpleIndividual() Individual {
	return Individual{
		Kills:                           coerce.NewInt(28934),
		Deaths:                          coerce.NewInt(22341),
		RoundsWithKills:                 coerce.NewFloat(17234),
		TotalOpeningKills:               coerce.NewInt(3511),
		TotalOpeningDeaths:              coerce.NewInt(2240),
		OpeningKillRatio:                coerce.NewFloat(1.57),
		OpeningKillRating:               coerce.NewFloat(1.22),
		TeamWinPercentageAfterFirstKill: coerce.NewFloat(78.3),
		FirstKillInWonRounds:            coerce.NewFloat(21.4),
		ZeroKillRounds:                  coerce.NewInt(12010),
		OneKillRounds:                   coerce.NewInt(9870),
		TwoKillRounds:                   coerce.NewInt(5432),
		ThreeKillRounds:                 coerce.NewInt(2011),
		FourKillRounds:                  coerce.NewInt(512),
		FiveKillRounds:                  coerce.NewInt(71),
		RifleKills:                      coerce.NewInt(12000),
		SniperKills:                     coerce.NewInt(14000),
		SmgKills:                        coerce.NewInt(1200),
		PistolKills:                     coerce.NewInt(1734),
	}
}

func TestSummary(t *testing.T) {
	summary, err := newTestExtractor().Summary(context.Background(), 7998, loadFixture(t, "player_stats.html"))
	require.NoError(t, err)
	if diff := cmp.Diff(s1mpleSummary(), summary); diff != "" {
		t.Fatal("summary mismatch (-expected +got):\n", diff)
	}
}

func TestSummaryWithoutTeam(t *testing.T) {
	doc := loadFixture(
		t, "player_stats.html",
		`<a href="/stats/teams/4608/natus-vincere">Natus Vincere</a>`, "No team",
	)
	summary, err := newTestExtractor().Summary(context.Background(), 7998, doc)
	require.NoError(t, err)
	require.Nil(t, summary.TeamId)
	require.Equal(t, "No team", summary.Team)

	out, err := json.Marshal(summary)
	require.NoError(t, err)
	require.Contains(t, string(out), `"team_id":null`)
}

func TestSummaryImage(t *testing.T) {
	testCases := []struct {
		src      string
		expected string
	}{
		{
			src:      "/img/static/player/player_silhouette.png",
			expected: "https://www.hltv.org/img/static/player/player_silhouette.png",
		},
		// only the silhouette is rewritten
		{
			src:      "/img/static/player/someone_else.png",
			expected: "/img/static/player/someone_else.png",
		},
	}

	for _, test := range testCases {
		doc := loadFixture(
			t, "player_stats.html",
			"https://img-cdn.hltv.org/playerbodyshot/s1mple.png", test.src,
		)
		summary, err := newTestExtractor().Summary(context.Background(), 7998, doc)
		require.NoError(t, err)
		require.Equal(t, test.expected, summary.Image)
	}
}

func TestSummaryUnparsedStat(t *testing.T) {
	doc := loadFixture(t, "player_stats.html", "<span>1.30</span>", "<span>-</span>")
	summary, err := newTestExtractor().Summary(context.Background(), 7998, doc)
	require.NoError(t, err)
	require.Equal(t, coerce.Float{}, summary.KdRatio)
	require.False(t, summary.KdRatio.Parsed)
}

func TestSummaryMissingFields(t *testing.T) {
	testCases := []struct {
		replacements []string
		field        string
	}{
		{replacements: []string{"playerSummaryStatBox", "playerSummary"}, field: "summary"},
		{replacements: []string{`<img class="summaryBodyshotBackground" src="/img/static/player/summary_bg.png">`, ""}, field: "image"},
		{replacements: []string{"summaryRealname", "summaryAge"}, field: "name"},
		{replacements: []string{"/stats/teams/4608/natus-vincere", "/stats/teams/navi"}, field: "team_id"},
		{replacements: []string{`<span class="rating-value"> 1.24 </span>`, ""}, field: "ratingtop50"},
		{replacements: []string{`<div class="stats-row"><span>Maps played</span><span> 1245 </span></div>`, ""}, field: "maps"},
	}

	for _, test := range testCases {
		t.Run(test.field, func(t *testing.T) {
			doc := loadFixture(t, "player_stats.html", test.replacements...)
			_, err := newTestExtractor().Summary(context.Background(), 7998, doc)

			var failure extract.ExtractionFailure
			require.True(t, errors.As(err, &failure), "expected extraction failure, got %v", err)
			require.Equal(t, test.field, failure.Field)
			require.Equal(t, 7998, failure.Id)
		})
	}
}

func TestIndividual(t *testing.T) {
	individual, err := newTestExtractor().Individual(context.Background(), 7998, loadFixture(t, "player_individual.html"))
	require.NoError(t, err)
	if diff := cmp.Diff(s1mpleIndividual(), individual); diff != "" {
		t.Fatal("individual mismatch (-expected +got):\n", diff)
	}
}

func TestIndividualMissingBox(t *testing.T) {
	doc := loadFixture(t, "player_individual.html", `class="standard-box weapon-kills"`, `class="weapon-kills"`)
	_, err := newTestExtractor().Individual(context.Background(), 7998, doc)

	var failure extract.ExtractionFailure
	require.True(t, errors.As(err, &failure))
	require.Equal(t, extract.ExtractionFailure{Entity: "player individual", Id: 7998, Field: "rifleKills"}, failure)
}

// Rows are read by position only, a missing row shifts the next one into its place
// instead of failing.
func TestIndividualOrdinalShift(t *testing.T) {
	doc := loadFixture(
		t, "player_individual.html",
		`<div class="stats-row"><span>Pistol kills</span><span>1734</span></div>`, "",
		`<span>Grenade</span><span>0</span>`, `<span>Grenade</span><span>15</span>`,
	)
	individual, err := newTestExtractor().Individual(context.Background(), 7998, doc)
	require.NoError(t, err)
	require.Equal(t, coerce.NewInt(15), individual.PistolKills)
}
