package extract

import (
	"hltv-scraper/internal/coerce"
	"hltv-scraper/internal/telemetry"

	"github.com/PuerkitoBio/goquery"
)

const report_reader_coerce = "reader.coerce"

type readerState struct {
	err error
}

// Reader reads the fields of one entity and enforces which of them must exist.
//
// The first required field that cannot be resolved is remembered as an ExtractionFailure,
// every read after that is a no-op returning the zero value. Callers must check Err before
// using anything they read, no partial entity should ever leave the extractor.
type Reader struct {
	entity string
	id     int
	root   *goquery.Selection
	tel    telemetry.API
	state  *readerState
}

func NewReader(entity string, id int, root *goquery.Selection, tel telemetry.API) Reader {
	return Reader{
		entity: entity,
		id:     id,
		root:   root,
		tel:    tel,
		state:  &readerState{},
	}
}

// Err returns the first ExtractionFailure hit by this reader or any reader derived from it.
func (r Reader) Err() error {
	return r.state.err
}

// Fail records an ExtractionFailure for `field` unless one was already recorded.
func (r Reader) Fail(field string) {
	if r.state.err != nil {
		return
	}
	r.state.err = ExtractionFailure{Entity: r.entity, Id: r.id, Field: field}
}

// Required resolves a field that must exist.
func (r Reader) Required(f Field) string {
	if r.state.err != nil {
		return ""
	}
	value, ok := Resolve(r.root, f)
	if !ok {
		r.Fail(f.Name)
		return ""
	}
	return value
}

// Optional resolves a field that may legitimately be absent.
func (r Reader) Optional(f Field) (string, bool) {
	if r.state.err != nil {
		return "", false
	}
	return Resolve(r.root, f)
}

// Int resolves a required field and parses it as an integer.
func (r Reader) Int(f Field) coerce.Int {
	if r.state.err != nil {
		return coerce.Int{}
	}
	raw := r.Required(f)
	n := coerce.ParseInt(raw)
	if !n.Parsed && r.state.err == nil {
		r.tel.ReportWarning(report_reader_coerce, r.entity, r.id, f.Name, raw)
	}
	return n
}

// Float resolves a required field and parses it as a float.
func (r Reader) Float(f Field) coerce.Float {
	if r.state.err != nil {
		return coerce.Float{}
	}
	raw := r.Required(f)
	n := coerce.ParseFloat(raw)
	if !n.Parsed && r.state.err == nil {
		r.tel.ReportWarning(report_reader_coerce, r.entity, r.id, f.Name, raw)
	}
	return n
}

// Sub returns a reader rooted at the node at `path`, which must exist. It shares the
// failure state of its parent.
func (r Reader) Sub(name string, path ...Step) Reader {
	sub := r
	if r.state.err != nil {
		sub.root = &goquery.Selection{}
		return sub
	}
	node, ok := Select(r.root, path...)
	if !ok {
		r.Fail(name)
		sub.root = &goquery.Selection{}
		return sub
	}
	sub.root = node
	return sub
}

// OptionalSub is Sub for a node that may not exist.
func (r Reader) OptionalSub(path ...Step) (Reader, bool) {
	sub := r
	if r.state.err != nil {
		return sub, false
	}
	node, ok := Select(r.root, path...)
	if !ok {
		return sub, false
	}
	sub.root = node
	return sub, true
}

// Each returns a reader for every node matching selector, sharing the failure state.
func (r Reader) Each(selector string) []Reader {
	if r.state.err != nil {
		return nil
	}
	var out []Reader
	r.root.Find(selector).Each(func(_ int, s *goquery.Selection) {
		sub := r
		sub.root = s
		out = append(out, sub)
	})
	return out
}
