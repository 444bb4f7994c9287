package pipeline

import (
	"context"
	"fmt"

	"hltv-scraper/internal/chrono"
	"hltv-scraper/internal/hltv"
)

const report_player_run = "player.run"

// PlayerRef identifies a player's stats pages.
type PlayerRef struct {
	Id   int
	Slug string
}

// NewPlayerRef normalizes `name` into the slug used in urls and file names.
func NewPlayerRef(id int, name string) PlayerRef {
	return PlayerRef{Id: id, Slug: hltv.NormalizeSlug(name)}
}

// CollectPlayer fetches both stat pages of a player and merges them. `dates` may be nil.
func (p Pipeline) CollectPlayer(ctx context.Context, ref PlayerRef, dates *chrono.DateRange) (hltv.Player, error) {
	doc, err := p.fetch(ctx, p.site.PlayerStatsUrl(ref.Id, ref.Slug, dates))
	if err != nil {
		return hltv.Player{}, err
	}
	summary, err := p.extractor.Summary(ctx, ref.Id, doc)
	if err != nil {
		return hltv.Player{}, err
	}

	doc, err = p.fetch(ctx, p.site.PlayerIndividualUrl(ref.Id, ref.Slug, dates))
	if err != nil {
		return hltv.Player{}, err
	}
	individual, err := p.extractor.Individual(ctx, ref.Id, doc)
	if err != nil {
		return hltv.Player{}, err
	}

	p.checkSlug("player", ref.Slug, summary.Nickname)
	return hltv.Merge(summary, individual), nil
}

// Player collects a player and saves it, nothing is saved if any step fails.
func (p Pipeline) Player(ctx context.Context, ref PlayerRef, dates *chrono.DateRange) (hltv.Player, error) {
	player, err := p.CollectPlayer(ctx, ref, dates)
	if err != nil {
		p.tel.ReportWarning(report_player_run, ref.Slug, ref.Id, string(StageOf(err)), err)
		return hltv.Player{}, fmt.Errorf("player %s (%d): %w", ref.Slug, ref.Id, err)
	}

	err = p.sink.SavePlayer(ctx, ref.Slug, player)
	if err != nil {
		p.tel.ReportBroken(report_player_run, fmt.Errorf("save: %w", err))
		return hltv.Player{}, fmt.Errorf("player %s (%d): save: %w", ref.Slug, ref.Id, err)
	}
	p.tel.ReportDebug(report_player_run, ref.Slug, ref.Id, string(player.Role))

	return player, nil
}
