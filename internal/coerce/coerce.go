// Package coerce turns text scraped from a page into numbers.
//
// Parsing never fails loudly: text that is not a number becomes the zero value.
// The Int and Float types remember whether the text actually parsed so callers
// can tell a real zero apart from a missing one, but they serialize to a plain
// number either way.
package coerce

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

type numeric interface {
	~int | ~float64
}

// Number is a value read from text along with whether the text parsed.
type Number[T numeric] struct {
	Value  T
	Parsed bool
}

type Int = Number[int]
type Float = Number[float64]

// ParseInt reads an integer token, surrounding whitespace is ignored.
func ParseInt(text string) Int {
	v, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return Int{}
	}
	return Int{Value: v, Parsed: true}
}

// ParseFloat reads a float token, surrounding whitespace is ignored.
// NaN and infinities count as unparsed, json cannot encode them.
func ParseFloat(text string) Float {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return Float{}
	}
	return Float{Value: v, Parsed: true}
}

// ToInt is ParseInt with the parse state dropped.
func ToInt(text string) int {
	return ParseInt(text).Value
}

// ToFloat is ParseFloat with the parse state dropped.
func ToFloat(text string) float64 {
	return ParseFloat(text).Value
}

// NewInt wraps a known integer.
func NewInt(v int) Int {
	return Int{Value: v, Parsed: true}
}

// NewFloat wraps a known float.
func NewFloat(v float64) Float {
	return Float{Value: v, Parsed: true}
}

// MarshalJSON writes the bare value, an unparsed number is written as 0.
func (n Number[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.Value)
}

func (n *Number[T]) UnmarshalJSON(data []byte) error {
	var v T
	err := json.Unmarshal(data, &v)
	if err != nil {
		return err
	}
	n.Value = v
	n.Parsed = true
	return nil
}
