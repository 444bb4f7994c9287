package hltv

import "hltv-scraper/internal/coerce"

type Coach struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

type RosterEntry struct {
	Nickname       string     `json:"nickname"`
	PlayerId       coerce.Int `json:"playerId"`
	PlayerLinkName string     `json:"playerLinkName"`
	Status         string     `json:"status"`
}

// Team is a team profile with its roster split by status, Players holds the starters.
type Team struct {
	Id      int           `json:"id"`
	Name    string        `json:"name"`
	Logo    string        `json:"logo"`
	Ranking coerce.Int    `json:"ranking"`
	Coach   Coach         `json:"coach"`
	Players []RosterEntry `json:"players"`
	Bench   []RosterEntry `json:"bench"`
}

type Role string

const (
	RoleRifler Role = "Rifler"
	RoleAWPer  Role = "AWPer"
)

// Summary is what the player stats overview page has on a player.
type Summary struct {
	Id       int    `json:"id"`
	Image    string `json:"image"`
	Nickname string `json:"nickname"`
	Name     string `json:"name"`
	Team     string `json:"team"`
	// TeamId is nil when the player has no current team.
	TeamId *int `json:"team_id"`

	Rating       coerce.Float `json:"rating"`
	Dpr          coerce.Float `json:"dpr"`
	Kast         coerce.Float `json:"kast"`
	Impact       coerce.Float `json:"impact"`
	Adr          coerce.Float `json:"adr"`
	Kpr          coerce.Float `json:"kpr"`
	Rounds       coerce.Int   `json:"rounds"`
	Headshots    coerce.Float `json:"headshots"`
	KdRatio      coerce.Float `json:"kdratio"`
	AssistsRound coerce.Float `json:"assistsround"`
	Maps         coerce.Int   `json:"maps"`

	RatingTop5  coerce.Float `json:"ratingtop5"`
	RatingTop10 coerce.Float `json:"ratingtop10"`
	RatingTop20 coerce.Float `json:"ratingtop20"`
	RatingTop30 coerce.Float `json:"ratingtop30"`
	RatingTop50 coerce.Float `json:"ratingtop50"`

	Role Role `json:"function"`
}

// Individual is what the individual stats page has on a player.
type Individual struct {
	Kills           coerce.Int   `json:"kills"`
	Deaths          coerce.Int   `json:"deaths"`
	RoundsWithKills coerce.Float `json:"roundsWithKills"`

	TotalOpeningKills               coerce.Int   `json:"totalOpeningKills"`
	TotalOpeningDeaths              coerce.Int   `json:"totalOpeningDeaths"`
	OpeningKillRatio                coerce.Float `json:"openingKillRatio"`
	OpeningKillRating               coerce.Float `json:"openingKillRating"`
	TeamWinPercentageAfterFirstKill coerce.Float `json:"teamWinPercentageAfterFirstKill"`
	FirstKillInWonRounds            coerce.Float `json:"firstKillInWonRounds"`

	ZeroKillRounds  coerce.Int `json:"zeroKillRounds"`
	OneKillRounds   coerce.Int `json:"oneKillRounds"`
	TwoKillRounds   coerce.Int `json:"twoKillRounds"`
	ThreeKillRounds coerce.Int `json:"threeKillRounds"`
	FourKillRounds  coerce.Int `json:"fourKillRounds"`
	FiveKillRounds  coerce.Int `json:"fiveKillRounds"`

	RifleKills  coerce.Int `json:"rifleKills"`
	SniperKills coerce.Int `json:"sniperKills"`
	SmgKills    coerce.Int `json:"smgKills"`
	PistolKills coerce.Int `json:"pistolKills"`
}

// Player is a Summary and an Individual merged into one record, it serializes as a single
// flat object. The two halves must never share a json key, encoding/json drops ambiguous
// fields of embedded structs.
type Player struct {
	Summary
	Individual
}

// TeamBatch is every team of a run that was extracted successfully, in input order.
type TeamBatch struct {
	Teams []Team `json:"teams"`
}
