// Package pipeline drives pages through fetch, extract, merge and save.
//
// The team pipeline is fail-soft, a team that cannot be fetched or extracted is left out
// of the batch and the rest carry on. The player pipeline is fail-fast, any error aborts
// the run before anything is saved.
package pipeline

import (
	"context"
	"errors"

	"hltv-scraper/internal/extract"
	"hltv-scraper/internal/hltv"
	"hltv-scraper/internal/telemetry"

	"github.com/PuerkitoBio/goquery"
	"github.com/antzucaro/matchr"
)

const (
	report_pipeline_slug_mismatch = "pipeline.slug-mismatch"
)

// below this similarity the extracted name probably does not belong to the requested slug
const slugSimilarityThreshold = 0.7

// Sink is where finished records go.
type Sink interface {
	SaveTeams(ctx context.Context, batch hltv.TeamBatch) error
	SavePlayer(ctx context.Context, slug string, player hltv.Player) error
}

type Pipeline struct {
	fetcher   hltv.Fetcher
	site      hltv.Site
	extractor hltv.Extractor
	sink      Sink
	tel       telemetry.API
}

func New(fetcher hltv.Fetcher, site hltv.Site, sink Sink, tel telemetry.API) Pipeline {
	tel = telemetry.NewScopedAPI("pipeline", tel)
	return Pipeline{
		fetcher:   fetcher,
		site:      site,
		extractor: hltv.NewExtractor(site, tel),
		sink:      sink,
		tel:       tel,
	}
}

// Stage names which step of the pipeline an error came from.
type Stage string

const (
	StageFetch   Stage = "fetch"
	StageExtract Stage = "extract"
	StageSave    Stage = "save"
)

// StageOf classifies an error returned by the pipeline.
func StageOf(err error) Stage {
	var fetchFailure hltv.FetchFailure
	if errors.As(err, &fetchFailure) {
		return StageFetch
	}
	var extractionFailure extract.ExtractionFailure
	if errors.As(err, &extractionFailure) {
		return StageExtract
	}
	return StageSave
}

// fetch gets and parses a page, every error is returned as a FetchFailure.
func (p Pipeline) fetch(ctx context.Context, url string) (*goquery.Document, error) {
	body, err := p.fetcher.Fetch(ctx, url, hltv.BrowserHeaders())
	if err != nil {
		var failure hltv.FetchFailure
		if errors.As(err, &failure) {
			return nil, failure
		}
		return nil, hltv.FetchFailure{Url: url, Err: err}
	}
	doc, err := hltv.ParseDocument(body)
	if err != nil {
		return nil, hltv.FetchFailure{Url: url, Err: err}
	}
	return doc, nil
}

func (p Pipeline) checkSlug(kind, slug, name string) {
	similarity := matchr.JaroWinkler(hltv.NormalizeSlug(slug), hltv.NormalizeSlug(name), false)
	if similarity < slugSimilarityThreshold {
		p.tel.ReportWarning(report_pipeline_slug_mismatch, kind, slug, name, similarity)
	}
}
