package hltv

import (
	"context"

	"hltv-scraper/internal/coerce"
	"hltv-scraper/internal/extract"

	"github.com/PuerkitoBio/goquery"
)

const report_individual_extract = "individual.extract"

const (
	boxOverall = iota
	boxOpening
	boxRounds
	boxWeapons
)

// boxStat is span `span` among all the stats-row spans of stat box `box`. Every row is a
// label span followed by a value span, so values sit at odd positions.
func boxStat(name string, box, span int) extract.Field {
	return extract.Text(
		name,
		extract.At(".stats-rows .standard-box", box),
		extract.At(".stats-row span", span),
	).With(extract.TrimSpace, extract.Strip("%"))
}

type individualInt struct {
	field extract.Field
	dest  func(i *Individual) *coerce.Int
}

type individualFloat struct {
	field extract.Field
	dest  func(i *Individual) *coerce.Float
}

var individualInts = []individualInt{
	{boxStat("kills", boxOverall, 1), func(i *Individual) *coerce.Int { return &i.Kills }},
	{boxStat("deaths", boxOverall, 3), func(i *Individual) *coerce.Int { return &i.Deaths }},

	{boxStat("totalOpeningKills", boxOpening, 1), func(i *Individual) *coerce.Int { return &i.TotalOpeningKills }},
	{boxStat("totalOpeningDeaths", boxOpening, 3), func(i *Individual) *coerce.Int { return &i.TotalOpeningDeaths }},

	{boxStat("zeroKillRounds", boxRounds, 1), func(i *Individual) *coerce.Int { return &i.ZeroKillRounds }},
	{boxStat("oneKillRounds", boxRounds, 3), func(i *Individual) *coerce.Int { return &i.OneKillRounds }},
	{boxStat("twoKillRounds", boxRounds, 5), func(i *Individual) *coerce.Int { return &i.TwoKillRounds }},
	{boxStat("threeKillRounds", boxRounds, 7), func(i *Individual) *coerce.Int { return &i.ThreeKillRounds }},
	{boxStat("fourKillRounds", boxRounds, 9), func(i *Individual) *coerce.Int { return &i.FourKillRounds }},
	{boxStat("fiveKillRounds", boxRounds, 11), func(i *Individual) *coerce.Int { return &i.FiveKillRounds }},

	{boxStat("rifleKills", boxWeapons, 1), func(i *Individual) *coerce.Int { return &i.RifleKills }},
	{boxStat("sniperKills", boxWeapons, 3), func(i *Individual) *coerce.Int { return &i.SniperKills }},
	{boxStat("smgKills", boxWeapons, 5), func(i *Individual) *coerce.Int { return &i.SmgKills }},
	{boxStat("pistolKills", boxWeapons, 7), func(i *Individual) *coerce.Int { return &i.PistolKills }},
}

var individualFloats = []individualFloat{
	{boxStat("roundsWithKills", boxOverall, 9), func(i *Individual) *coerce.Float { return &i.RoundsWithKills }},
	{boxStat("openingKillRatio", boxOpening, 5), func(i *Individual) *coerce.Float { return &i.OpeningKillRatio }},
	{boxStat("openingKillRating", boxOpening, 7), func(i *Individual) *coerce.Float { return &i.OpeningKillRating }},
	{boxStat("teamWinPercentageAfterFirstKill", boxOpening, 9), func(i *Individual) *coerce.Float { return &i.TeamWinPercentageAfterFirstKill }},
	{boxStat("firstKillInWonRounds", boxOpening, 11), func(i *Individual) *coerce.Float { return &i.FirstKillInWonRounds }},
}

// Individual extracts the individual stats page of a player.
func (e Extractor) Individual(ctx context.Context, id int, doc *goquery.Document) (individual Individual, err error) {
	_, span := startSpan(ctx, "Extractor.Individual", id)
	defer func() { endSpan(span, err) }()

	r := extract.NewReader("player individual", id, doc.Selection, e.tel)

	var out Individual
	for _, stat := range individualInts {
		*stat.dest(&out) = r.Int(stat.field)
	}
	for _, stat := range individualFloats {
		*stat.dest(&out) = r.Float(stat.field)
	}

	err = r.Err()
	if err != nil {
		e.tel.ReportDebug(report_individual_extract, id, err)
		return Individual{}, err
	}
	return out, nil
}
