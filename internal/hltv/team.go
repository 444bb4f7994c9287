package hltv

import (
	"context"

	"hltv-scraper/internal/coerce"
	"hltv-scraper/internal/extract"
	"hltv-scraper/pkg/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

const report_team_extract = "team.extract"

const statusStarter = "Starter"

var (
	teamProfile = extract.First(".teamProfile")
	teamName    = extract.Text("name", extract.First(".profile-team-name")).With(extract.TrimSpace)
	teamLogo    = extract.Attr("logo", "src", extract.First(".teamlogo"))
	// the ranking is in the first child of the stats container, rendered as "#12"
	teamRanking = extract.Text(
		"ranking",
		extract.At(".profile-team-stats-container > *", 0),
		extract.First(".right"),
	).With(extract.Remove("#"))

	coachWrapper = extract.First(".teamCoach-wrapper")
	// coaches have either a bodyshot or a squareshot, tried in that order
	coachImageShapes = []extract.Step{
		extract.First(".playerBox-bodyshot"),
		extract.First(".playerBox-squareshot"),
	}

	rosterBody   = extract.First(".playersBox-wrapper > table > tbody")
	rosterLink   = extract.Attr("player link", "href", extract.First(".playersBox-first-cell"), extract.First("a"))
	rosterNick   = extract.Text("nickname", extract.First(".playersBox-playernick > div")).With(extract.TrimSpace)
	rosterStatus = extract.Text("status", extract.First(".player-status")).With(extract.TrimSpace, extract.Capitalize)
)

// Team extracts a team profile page. A missing profile usually means the id or slug is wrong.
func (e Extractor) Team(ctx context.Context, id int, doc *goquery.Document) (team Team, err error) {
	_, span := startSpan(ctx, "Extractor.Team", id)
	defer func() { endSpan(span, err) }()

	r := extract.NewReader("team", id, doc.Selection, e.tel)

	profile := r.Sub("profile", teamProfile)
	name := profile.Required(teamName)
	logo := profile.Required(teamLogo)
	ranking := profile.Int(teamRanking)

	coach := e.coach(r)
	players, bench := routeRoster(r)

	err = r.Err()
	if err != nil {
		e.tel.ReportDebug(report_team_extract, id, err)
		return Team{}, err
	}

	return Team{
		Id:      id,
		Name:    name,
		Logo:    logo,
		Ranking: ranking,
		Coach:   coach,
		Players: players,
		Bench:   bench,
	}, nil
}

// coach is optional, a team without a coach section or without a coach picture has an
// empty coach.
func (e Extractor) coach(r extract.Reader) Coach {
	wrapper, ok := r.OptionalSub(coachWrapper)
	if !ok {
		return Coach{}
	}
	for _, shape := range coachImageShapes {
		img, ok := wrapper.OptionalSub(shape)
		if !ok {
			continue
		}
		name, _ := img.Optional(extract.Attr("coach name", "title"))
		src, _ := img.Optional(extract.Attr("coach image", "src"))
		if src != "" {
			src = htmlutil.Absolute(e.site.BaseUrl, src)
		}
		return Coach{Name: name, Image: src}
	}
	return Coach{}
}

// routeRoster splits the roster rows into starters and everyone else, every row lands in
// exactly one of the two in page order.
func routeRoster(r extract.Reader) (players []RosterEntry, bench []RosterEntry) {
	players = []RosterEntry{}
	bench = []RosterEntry{}

	for _, row := range r.Sub("roster", rosterBody).Each("tr") {
		href := row.Required(rosterLink)
		nickname := row.Required(rosterNick)
		status := row.Required(rosterStatus)
		if row.Err() != nil {
			return nil, nil
		}

		// "/player/<id>/<slug>"
		segments, ok := htmlutil.LastSegments(href, 2)
		if !ok {
			row.Fail("player link")
			return nil, nil
		}

		entry := RosterEntry{
			Nickname:       nickname,
			PlayerId:       coerce.ParseInt(segments[0]),
			PlayerLinkName: segments[1],
			Status:         status,
		}
		if status == statusStarter {
			players = append(players, entry)
			continue
		}
		bench = append(bench, entry)
	}

	return players, bench
}
