package hltv

import (
	"bytes"
	"context"

	"hltv-scraper/internal/telemetry"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("hltv-scraper/hltv")

// Extractor turns fetched pages into records.
type Extractor struct {
	site Site
	tel  telemetry.API
}

func NewExtractor(site Site, tel telemetry.API) Extractor {
	return Extractor{
		site: site,
		tel:  telemetry.NewScopedAPI("hltv_extract", tel),
	}
}

// ParseDocument parses raw markup into a document tree.
func ParseDocument(body []byte) (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(bytes.NewReader(body))
}

func startSpan(ctx context.Context, name string, id int) (context.Context, trace.Span) {
	return tracer.Start(ctx, name, trace.WithAttributes(attribute.Int("id", id)))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
