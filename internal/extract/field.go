// Package extract resolves declared fields out of a parsed html document.
//
// A Field is a path of selector steps, each one narrowing the selection to a single
// node by its position among the matches of the step's selector. The position is
// never checked against what the node contains, so a page that shifts its layout
// will quietly resolve the wrong node instead of failing. Keep field tables close to
// a saved copy of the page they describe.
package extract

import (
	"strings"
	"unicode/utf8"

	"hltv-scraper/pkg/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

// Step narrows a selection to the match at Index among the nodes matched by Selector
// (relative to the current selection).
type Step struct {
	Selector string
	Index    int
}

// At is the step for the node at `index` among the matches of `selector`.
func At(selector string, index int) Step {
	return Step{Selector: selector, Index: index}
}

// First is At(selector, 0).
func First(selector string) Step {
	return Step{Selector: selector}
}

type Transform func(string) string

// Field declares how to get a single raw value.
type Field struct {
	Name string
	Path []Step
	// Attr is the attribute to read, if empty the text content of the node is read instead.
	Attr       string
	Transforms []Transform
}

// Text declares a field read from the text content of the node at `path`.
func Text(name string, path ...Step) Field {
	return Field{Name: name, Path: path}
}

// Attr declares a field read from attribute `attr` of the node at `path`.
func Attr(name, attr string, path ...Step) Field {
	return Field{Name: name, Path: path, Attr: attr}
}

// With returns a copy of the field with transforms appended, they are applied in order.
func (f Field) With(transforms ...Transform) Field {
	out := f
	out.Transforms = append(append([]Transform{}, f.Transforms...), transforms...)
	return out
}

// Select walks `path` from `root`, it returns false if any step has too few matches.
func Select(root *goquery.Selection, path ...Step) (*goquery.Selection, bool) {
	current := root
	for _, step := range path {
		matches := current.Find(step.Selector)
		if step.Index < 0 || step.Index >= matches.Length() {
			return nil, false
		}
		current = matches.Eq(step.Index)
	}
	return current, true
}

// Resolve gets the raw value of a field. It returns false when the node or attribute
// does not exist, it does not decide whether that is a problem.
func Resolve(root *goquery.Selection, f Field) (string, bool) {
	node, ok := Select(root, f.Path...)
	if !ok || node.Length() == 0 {
		return "", false
	}

	var value string
	if f.Attr == "" {
		value = htmlutil.GetText(node.Get(0))
	} else {
		value, ok = node.Attr(f.Attr)
		if !ok {
			return "", false
		}
	}

	for _, t := range f.Transforms {
		value = t(value)
	}
	return value, true
}

// Clean drops non-printable characters and collapses inner whitespace.
func Clean(s string) string {
	return htmlutil.CleanText(s)
}

// TrimSpace strips leading and trailing whitespace.
func TrimSpace(s string) string {
	return strings.TrimSpace(s)
}

// Strip removes any of `chars` from both ends of the value.
func Strip(chars string) Transform {
	return func(s string) string {
		return strings.Trim(s, chars)
	}
}

// Remove deletes every occurrence of any of `chars`.
func Remove(chars string) Transform {
	return func(s string) string {
		return strings.Map(func(r rune) rune {
			if strings.ContainsRune(chars, r) {
				return -1
			}
			return r
		}, s)
	}
}

// Capitalize uppercases the first character and lowercases the rest.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	first, size := utf8.DecodeRuneInString(s)
	return strings.ToUpper(string(first)) + strings.ToLower(s[size:])
}

// PathSegment picks piece `index` of the value split on "/". A leading "/" produces an
// empty first piece, so "/stats/teams/4608/natus-vincere" has "4608" at index 3.
// An index out of range gives an empty string.
func PathSegment(index int) Transform {
	return func(s string) string {
		parts := strings.Split(s, "/")
		if index < 0 || index >= len(parts) {
			return ""
		}
		return parts[index]
	}
}
