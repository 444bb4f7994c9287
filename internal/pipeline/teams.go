package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"hltv-scraper/internal/hltv"
)

const (
	report_teams_team = "teams.team"
	report_teams_run  = "teams.run"
)

// Failure is a team that was left out of the batch.
type Failure struct {
	Ref   TeamRef
	Stage Stage
	Err   error
}

// Team fetches and extracts a single team.
func (p Pipeline) Team(ctx context.Context, ref TeamRef) (hltv.Team, error) {
	doc, err := p.fetch(ctx, p.site.TeamUrl(ref.Id, ref.Slug))
	if err != nil {
		return hltv.Team{}, err
	}
	team, err := p.extractor.Team(ctx, ref.Id, doc)
	if err != nil {
		return hltv.Team{}, err
	}
	p.checkSlug("team", ref.Slug, team.Name)
	return team, nil
}

// CollectTeams runs Team for every ref in order. Teams that fail are reported and left
// out, the batch only ever holds complete teams.
func (p Pipeline) CollectTeams(ctx context.Context, refs []TeamRef) (hltv.TeamBatch, []Failure) {
	batch := hltv.TeamBatch{Teams: []hltv.Team{}}
	var failures []Failure

	for _, ref := range refs {
		team, err := p.Team(ctx, ref)
		if err != nil {
			stage := StageOf(err)
			p.tel.ReportWarning(report_teams_team, ref.Slug, ref.Id, string(stage), err)
			slog.Warn(fmt.Sprintf("An error occurred: %s", err.Error()), "team", ref.Slug)
			failures = append(failures, Failure{Ref: ref, Stage: stage, Err: err})
			continue
		}
		batch.Teams = append(batch.Teams, team)
		slog.Info(fmt.Sprintf("%s saved", ref.Slug))
	}

	p.tel.ReportCount(report_teams_run, int64(len(batch.Teams)))
	return batch, failures
}

// Teams collects every team and saves the batch, even when some teams failed.
func (p Pipeline) Teams(ctx context.Context, refs []TeamRef) (hltv.TeamBatch, []Failure, error) {
	batch, failures := p.CollectTeams(ctx, refs)

	err := p.sink.SaveTeams(ctx, batch)
	if err != nil {
		p.tel.ReportBroken(report_teams_run, fmt.Errorf("save: %w", err))
		return batch, failures, err
	}
	slog.Info("Scrap job finished", "teams", len(batch.Teams), "failed", len(failures))

	return batch, failures, nil
}
