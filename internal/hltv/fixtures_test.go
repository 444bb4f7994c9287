package hltv

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func readFixture(t testing.TB, name string) string {
	t.Helper()
	contents, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatal(err)
	}
	return string(contents)
}

// loadFixture parses a saved page, applying each (old, new) replacement pair first.
func loadFixture(t testing.TB, name string, replacements ...string) *goquery.Document {
	t.Helper()
	if len(replacements)%2 != 0 {
		t.Fatal("replacements must come in pairs")
	}
	html := readFixture(t, name)
	for i := 0; i < len(replacements); i += 2 {
		if !strings.Contains(html, replacements[i]) {
			t.Fatalf("fixture %s does not contain %q", name, replacements[i])
		}
		html = strings.ReplaceAll(html, replacements[i], replacements[i+1])
	}
	doc, err := ParseDocument([]byte(html))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}
