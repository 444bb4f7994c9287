package pipeline

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// TeamRef identifies a team page.
type TeamRef struct {
	Slug string
	Id   int
}

// ParseTeamList reads one `slug,identifier` pair per line, blank lines are skipped.
func ParseTeamList(r io.Reader) ([]TeamRef, error) {
	var refs []TeamRef

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Split(line, ",")
		if len(parts) != 2 {
			return nil, fmt.Errorf("team list line %d: expected `slug,identifier`, got %q", lineNo, line)
		}
		slug := strings.TrimSpace(parts[0])
		id, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, fmt.Errorf("team list line %d: identifier: %w", lineNo, err)
		}

		refs = append(refs, TeamRef{Slug: slug, Id: id})
	}
	err := scanner.Err()
	if err != nil {
		return nil, err
	}

	return refs, nil
}
