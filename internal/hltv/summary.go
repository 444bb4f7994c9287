package hltv

import (
	"context"

	"hltv-scraper/internal/coerce"
	"hltv-scraper/internal/extract"

	"github.com/PuerkitoBio/goquery"
)

const report_summary_extract = "summary.extract"

var (
	summaryBox = extract.First(".playerSummaryStatBox")

	// the first img is the flag/background, the second is the bodyshot
	summaryImage = extract.Attr("image", "src", extract.First(".summaryBodyshotContainer"), extract.At("img", 1))

	summaryBreakdown = extract.First(".summaryBreakdownContainer")
	summaryNickname  = extract.Text("nickname", extract.First(".summaryNickname")).With(extract.TrimSpace)
	summaryRealname  = extract.Text("name", extract.First(".summaryRealname")).With(extract.Clean)
	summaryTeamName  = extract.Text("team", extract.First(".SummaryTeamname")).With(extract.TrimSpace)
	// "/stats/teams/<id>/<slug>"
	summaryTeamId = extract.Attr("team_id", "href", extract.First(".SummaryTeamname a")).With(extract.PathSegment(3))
)

// breakdownStat is the value at column `col` of breakdown row `row` of the summary box.
func breakdownStat(name string, row, col int) extract.Field {
	return extract.Text(
		name,
		extract.At(".summaryStatBreakdownRow", row),
		extract.At(".summaryStatBreakdown", col),
		extract.First(".summaryStatBreakdownDataValue"),
	).With(extract.TrimSpace, extract.Strip("%"))
}

// additionalStat is the value (second span) of stats row `row` in column `col` of the
// additional stats block.
func additionalStat(name string, col, row int) extract.Field {
	return extract.Text(
		name,
		extract.At(".statistics .columns .col", col),
		extract.At(".stats-row", row),
		extract.At("span", 1),
	).With(extract.TrimSpace, extract.Strip("%"))
}

// ratingStat is the rating against the top `index`th bracket of the ratings breakdown.
func ratingStat(name string, index int) extract.Field {
	return extract.Text(name, extract.At(".rating-breakdown .rating-value", index)).With(extract.TrimSpace)
}

type summaryFloat struct {
	field extract.Field
	dest  func(s *Summary) *coerce.Float
}

type summaryInt struct {
	field extract.Field
	dest  func(s *Summary) *coerce.Int
}

// read relative to the breakdown container
var breakdownStats = []summaryFloat{
	{breakdownStat("rating", 0, 0), func(s *Summary) *coerce.Float { return &s.Rating }},
	{breakdownStat("dpr", 0, 1), func(s *Summary) *coerce.Float { return &s.Dpr }},
	{breakdownStat("kast", 0, 2), func(s *Summary) *coerce.Float { return &s.Kast }},
	{breakdownStat("impact", 1, 0), func(s *Summary) *coerce.Float { return &s.Impact }},
	{breakdownStat("adr", 1, 1), func(s *Summary) *coerce.Float { return &s.Adr }},
	{breakdownStat("kpr", 1, 2), func(s *Summary) *coerce.Float { return &s.Kpr }},
}

// read relative to the whole page
var pageFloatStats = []summaryFloat{
	{additionalStat("headshots", 0, 1), func(s *Summary) *coerce.Float { return &s.Headshots }},
	{additionalStat("kdratio", 0, 3), func(s *Summary) *coerce.Float { return &s.KdRatio }},
	{additionalStat("assistsround", 1, 2), func(s *Summary) *coerce.Float { return &s.AssistsRound }},
	{ratingStat("ratingtop5", 0), func(s *Summary) *coerce.Float { return &s.RatingTop5 }},
	{ratingStat("ratingtop10", 1), func(s *Summary) *coerce.Float { return &s.RatingTop10 }},
	{ratingStat("ratingtop20", 2), func(s *Summary) *coerce.Float { return &s.RatingTop20 }},
	{ratingStat("ratingtop30", 3), func(s *Summary) *coerce.Float { return &s.RatingTop30 }},
	{ratingStat("ratingtop50", 4), func(s *Summary) *coerce.Float { return &s.RatingTop50 }},
}

var pageIntStats = []summaryInt{
	{additionalStat("maps", 0, 6), func(s *Summary) *coerce.Int { return &s.Maps }},
	{additionalStat("rounds", 1, 0), func(s *Summary) *coerce.Int { return &s.Rounds }},
}

// Summary extracts the player stats overview page. The role is left as a placeholder
// until the individual stats are merged in.
func (e Extractor) Summary(ctx context.Context, id int, doc *goquery.Document) (summary Summary, err error) {
	_, span := startSpan(ctx, "Extractor.Summary", id)
	defer func() { endSpan(span, err) }()

	r := extract.NewReader("player summary", id, doc.Selection, e.tel)

	box := r.Sub("summary", summaryBox)
	image := box.Required(summaryImage)
	if image == SilhouettePath {
		image = e.site.BaseUrl + SilhouettePath
	}

	breakdown := box.Sub("breakdown", summaryBreakdown)
	out := Summary{
		Id:       id,
		Image:    image,
		Nickname: breakdown.Required(summaryNickname),
		Name:     breakdown.Required(summaryRealname),
		Team:     breakdown.Required(summaryTeamName),
		Role:     RoleRifler,
	}

	rawTeamId, hasTeam := breakdown.Optional(summaryTeamId)
	if hasTeam {
		teamId := coerce.ParseInt(rawTeamId)
		if !teamId.Parsed {
			breakdown.Fail(summaryTeamId.Name)
		}
		out.TeamId = &teamId.Value
	}

	for _, stat := range breakdownStats {
		*stat.dest(&out) = breakdown.Float(stat.field)
	}
	for _, stat := range pageFloatStats {
		*stat.dest(&out) = r.Float(stat.field)
	}
	for _, stat := range pageIntStats {
		*stat.dest(&out) = r.Int(stat.field)
	}

	err = r.Err()
	if err != nil {
		e.tel.ReportDebug(report_summary_extract, id, err)
		return Summary{}, err
	}
	return out, nil
}
