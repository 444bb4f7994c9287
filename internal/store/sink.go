// Package store persists team batches and player records.
package store

import (
	"context"

	"hltv-scraper/internal/hltv"
)

type Sink interface {
	SaveTeams(ctx context.Context, batch hltv.TeamBatch) error
	SavePlayer(ctx context.Context, slug string, player hltv.Player) error
}

// Staged is a prepared write that is not visible until Commit.
type Staged interface {
	Commit() error
	Discard()
}

// Stager is a Sink that can prepare a write and publish it later.
type Stager interface {
	Sink
	StageTeams(ctx context.Context, batch hltv.TeamBatch) (Staged, error)
	StagePlayer(ctx context.Context, slug string, player hltv.Player) (Staged, error)
}

// Multi saves to every sink and stops at the first error.
//
// Stagers are prepared first and only committed once every other sink has saved, so a
// failing sink leaves no file behind.
type Multi []Sink

func (m Multi) save(stage func(Stager) (Staged, error), save func(Sink) error) error {
	var staged []Staged
	discard := func() {
		for _, s := range staged {
			s.Discard()
		}
	}

	for _, sink := range m {
		stager, ok := sink.(Stager)
		if !ok {
			continue
		}
		s, err := stage(stager)
		if err != nil {
			discard()
			return err
		}
		staged = append(staged, s)
	}

	for _, sink := range m {
		if _, ok := sink.(Stager); ok {
			continue
		}
		err := save(sink)
		if err != nil {
			discard()
			return err
		}
	}

	for i, s := range staged {
		err := s.Commit()
		if err != nil {
			for _, rest := range staged[i+1:] {
				rest.Discard()
			}
			return err
		}
	}
	return nil
}

func (m Multi) SaveTeams(ctx context.Context, batch hltv.TeamBatch) error {
	return m.save(
		func(s Stager) (Staged, error) { return s.StageTeams(ctx, batch) },
		func(s Sink) error { return s.SaveTeams(ctx, batch) },
	)
}

func (m Multi) SavePlayer(ctx context.Context, slug string, player hltv.Player) error {
	return m.save(
		func(s Stager) (Staged, error) { return s.StagePlayer(ctx, slug, player) },
		func(s Sink) error { return s.SavePlayer(ctx, slug, player) },
	)
}
