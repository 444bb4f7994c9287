package hltv

import (
	"fmt"
	"regexp"
	"strings"

	"hltv-scraper/internal/chrono"
)

const DefaultBaseUrl = "https://www.hltv.org"

// SilhouettePath is the image the site serves for players without a photo.
const SilhouettePath = "/img/static/player/player_silhouette.png"

// Site builds the urls of the pages that get scraped.
type Site struct {
	BaseUrl string
}

func NewSite(baseUrl string) Site {
	if baseUrl == "" {
		baseUrl = DefaultBaseUrl
	}
	return Site{BaseUrl: strings.TrimSuffix(baseUrl, "/")}
}

func (s Site) TeamUrl(id int, slug string) string {
	return fmt.Sprintf("%s/team/%d/%s", s.BaseUrl, id, slug)
}

func (s Site) PlayerStatsUrl(id int, slug string, dates *chrono.DateRange) string {
	return withDates(fmt.Sprintf("%s/stats/players/%d/%s", s.BaseUrl, id, slug), dates)
}

func (s Site) PlayerIndividualUrl(id int, slug string, dates *chrono.DateRange) string {
	return withDates(fmt.Sprintf("%s/stats/players/individual/%d/%s", s.BaseUrl, id, slug), dates)
}

func withDates(link string, dates *chrono.DateRange) string {
	if dates == nil {
		return link
	}
	return fmt.Sprintf(
		"%s?startDate=%s&endDate=%s",
		link,
		dates.Start.Format(chrono.DateLayout),
		dates.End.Format(chrono.DateLayout),
	)
}

var nonWord = regexp.MustCompile(`[^\p{L}\p{N}_]+`)

// NormalizeSlug lowercases a name and drops everything that is not a letter, digit or underscore.
func NormalizeSlug(name string) string {
	return nonWord.ReplaceAllString(strings.ToLower(name), "")
}
