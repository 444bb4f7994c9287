package htmlutil

import (
	"bytes"
	"net/url"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/net/html"
)

// GetText concatenates every text node under `node`, in document order.
func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer)
	return buffer.String()
}

func getTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer)
		child = child.NextSibling
	}
}

var innerWhitespace = regexp.MustCompile(`\s\s+`)

func removeNonPrintable(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, s)
}

// CleanText drops non-printable characters, trims the ends and collapses inner whitespace.
func CleanText(s string) string {
	s = removeNonPrintable(s)
	s = strings.Trim(s, " \t\n")
	s = innerWhitespace.ReplaceAllString(s, " ")
	return s
}

// LastSegments returns the last `n` pieces of `href` split on "/".
// "/player/7998/s1mple" with n = 2 gives ["7998", "s1mple"].
func LastSegments(href string, n int) ([]string, bool) {
	parts := strings.Split(href, "/")
	if n <= 0 || len(parts) < n {
		return nil, false
	}
	return parts[len(parts)-n:], true
}

// Absolute resolves `ref` against `base` when `ref` does not start with "http".
func Absolute(base, ref string) string {
	if strings.HasPrefix(ref, "http") {
		return ref
	}
	baseUrl, err := url.Parse(base)
	if err != nil {
		return base + ref
	}
	refUrl, err := url.Parse(ref)
	if err != nil {
		return base + ref
	}
	return baseUrl.ResolveReference(refUrl).String()
}
