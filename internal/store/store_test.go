package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"hltv-scraper/internal/chrono"
	"hltv-scraper/internal/coerce"
	"hltv-scraper/internal/hltv"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func testTeam(id int, name string) hltv.Team {
	return hltv.Team{
		Id:      id,
		Name:    name,
		Logo:    "https://img-cdn.hltv.org/teamlogo/" + name + ".svg",
		Ranking: coerce.NewInt(id % 30),
		Coach:   hltv.Coach{Name: "coach", Image: "https://www.hltv.org/img/coach.png"},
		Players: []hltv.RosterEntry{
			{Nickname: "one", PlayerId: coerce.NewInt(1), PlayerLinkName: "one", Status: "Starter"},
		},
		Bench: []hltv.RosterEntry{},
	}
}

func testPlayer() hltv.Player {
	teamId := 4608
	return hltv.Player{
		Summary: hltv.Summary{
			Id:       7998,
			Nickname: "s1mple",
			Team:     "Natus Vincere",
			TeamId:   &teamId,
			Rating:   coerce.NewFloat(1.25),
			Rounds:   coerce.NewInt(32650),
			Role:     hltv.RoleAWPer,
		},
		Individual: hltv.Individual{
			Kills:       coerce.NewInt(28934),
			RifleKills:  coerce.NewInt(12000),
			SniperKills: coerce.NewInt(14000),
		},
	}
}

func TestJsonTeams(t *testing.T) {
	dir := t.TempDir()
	files := NewJsonFiles(dir, "")

	batch := hltv.TeamBatch{Teams: []hltv.Team{testTeam(1001, "teama"), testTeam(1003, "teamc")}}
	require.NoError(t, files.SaveTeams(context.Background(), batch))

	contents, err := os.ReadFile(filepath.Join(dir, "teams.json"))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(contents), "{\n    \"teams\": [\n        {"), string(contents))

	doc, err := ReadDocument(filepath.Join(dir, "teams.json"))
	require.NoError(t, err)
	require.Nil(t, doc.Player)
	if diff := cmp.Diff(batch, *doc.Teams); diff != "" {
		t.Fatal("teams mismatch (-expected +got):\n", diff)
	}
}

func TestJsonEmptyTeams(t *testing.T) {
	dir := t.TempDir()
	files := NewJsonFiles(dir, "out.json")
	require.NoError(t, files.SaveTeams(context.Background(), hltv.TeamBatch{}))

	contents, err := os.ReadFile(filepath.Join(dir, "out.json"))
	require.NoError(t, err)
	require.JSONEq(t, `{"teams": []}`, string(contents))
}

func TestJsonPlayer(t *testing.T) {
	dir := t.TempDir()
	files := NewJsonFiles(filepath.Join(dir, "players"), "")
	player := testPlayer()

	require.NoError(t, files.SavePlayer(context.Background(), "s1mple", player))
	require.Equal(t, filepath.Join(dir, "players", "s1mple.json"), files.PlayerFile("s1mple"))

	contents, err := os.ReadFile(files.PlayerFile("s1mple"))
	require.NoError(t, err)

	var flat map[string]any
	require.NoError(t, json.Unmarshal(contents, &flat))
	require.Equal(t, "s1mple", flat["nickname"])
	require.Equal(t, "AWPer", flat["function"])
	require.EqualValues(t, 4608, flat["team_id"])
	require.EqualValues(t, 14000, flat["sniperKills"])

	doc, err := ReadDocument(files.PlayerFile("s1mple"))
	require.NoError(t, err)
	require.Nil(t, doc.Teams)
	// unparsed numbers come back as parsed zeros, so compare the serialized form
	reencoded, err := json.Marshal(doc.Player)
	require.NoError(t, err)
	original, err := json.Marshal(player)
	require.NoError(t, err)
	require.JSONEq(t, string(original), string(reencoded))
}

func TestReadDocumentUnknown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "other.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"hello": "world"}`), 0644))
	_, err := ReadDocument(path)
	require.Error(t, err)

	_, err = ReadDocument(filepath.Join(t.TempDir(), "missing.json"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func setupArchive(t testing.TB, now time.Time) Archive {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	archive, err := NewArchive(context.Background(), db, chrono.FixedTime{T: now})
	if err != nil {
		t.Fatal(err)
	}
	return archive
}

func TestArchiveAppends(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	archive := setupArchive(t, now)

	batch := hltv.TeamBatch{Teams: []hltv.Team{testTeam(1001, "teama"), testTeam(1003, "teamc")}}
	require.NoError(t, archive.SaveTeams(ctx, batch))
	require.NoError(t, archive.SaveTeams(ctx, batch))

	snapshots, err := archive.TeamSnapshots(ctx, 1001)
	require.NoError(t, err)
	require.Len(t, snapshots, 2)
	for _, s := range snapshots {
		require.Equal(t, now.Unix(), s.Time)
		require.Equal(t, 1001, s.Id)

		var team hltv.Team
		require.NoError(t, json.Unmarshal([]byte(s.Record), &team))
		require.Equal(t, batch.Teams[0], team)
	}

	require.NoError(t, archive.SavePlayer(ctx, "s1mple", testPlayer()))
	snapshots, err = archive.PlayerSnapshots(ctx, 7998)
	require.NoError(t, err)
	require.Len(t, snapshots, 1)

	snapshots, err = archive.PlayerSnapshots(ctx, 1)
	require.NoError(t, err)
	require.Empty(t, snapshots)
}

func TestArchiveReopen(t *testing.T) {
	ctx := context.Background()
	config := ArchiveConfig{File: filepath.Join(t.TempDir(), "archive", "hltv.db")}
	require.True(t, config.Enabled())
	require.False(t, ArchiveConfig{}.Enabled())

	for i := 0; i < 2; i++ {
		db, err := config.OpenDB()
		require.NoError(t, err)
		archive, err := NewArchive(ctx, db, chrono.FixedTime{T: time.Unix(int64(i), 0)})
		require.NoError(t, err)
		require.NoError(t, archive.SavePlayer(ctx, "s1mple", testPlayer()))
		require.NoError(t, archive.Close())
	}

	db, err := config.OpenDB()
	require.NoError(t, err)
	archive, err := NewArchive(ctx, db, chrono.NewStandardTime())
	require.NoError(t, err)
	defer archive.Close()

	snapshots, err := archive.PlayerSnapshots(ctx, 7998)
	require.NoError(t, err)
	require.Len(t, snapshots, 2)
	require.Equal(t, int64(0), snapshots[0].Time)
	require.Equal(t, int64(1), snapshots[1].Time)
}

type failingSink struct{ err error }

func (s failingSink) SaveTeams(ctx context.Context, batch hltv.TeamBatch) error { return s.err }
func (s failingSink) SavePlayer(ctx context.Context, slug string, player hltv.Player) error {
	return s.err
}

func requireOnlyFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	found := []string{}
	for _, e := range entries {
		found = append(found, e.Name())
	}
	require.ElementsMatch(t, names, found)
}

func TestMultiFailingSinkLeavesNoFile(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	files := NewJsonFiles(dir, "")
	failure := errors.New("archive offline")

	err := Multi{files, failingSink{err: failure}}.SavePlayer(ctx, "s1mple", testPlayer())
	require.ErrorIs(t, err, failure)
	requireOnlyFiles(t, dir)

	err = Multi{failingSink{err: failure}, files}.SavePlayer(ctx, "s1mple", testPlayer())
	require.ErrorIs(t, err, failure)
	requireOnlyFiles(t, dir)
}

func TestMultiFailingSinkKeepsPreviousTeams(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	files := NewJsonFiles(dir, "")

	previous := hltv.TeamBatch{Teams: []hltv.Team{testTeam(1001, "teama")}}
	require.NoError(t, files.SaveTeams(ctx, previous))

	failure := errors.New("archive offline")
	err := Multi{files, failingSink{err: failure}}.SaveTeams(ctx, hltv.TeamBatch{})
	require.ErrorIs(t, err, failure)
	requireOnlyFiles(t, dir, "teams.json")

	doc, err := ReadDocument(filepath.Join(dir, "teams.json"))
	require.NoError(t, err)
	require.Equal(t, previous, *doc.Teams)
}

func TestMultiWritesEverySink(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	files := NewJsonFiles(dir, "")
	archive := setupArchive(t, time.Unix(100, 0))

	require.NoError(t, Multi{files, archive}.SavePlayer(ctx, "s1mple", testPlayer()))
	requireOnlyFiles(t, dir, "s1mple.json")
	snapshots, err := archive.PlayerSnapshots(ctx, 7998)
	require.NoError(t, err)
	require.Len(t, snapshots, 1)

	batch := hltv.TeamBatch{Teams: []hltv.Team{testTeam(1001, "teama")}}
	require.NoError(t, Multi{files, archive}.SaveTeams(ctx, batch))
	requireOnlyFiles(t, dir, "s1mple.json", "teams.json")
	snapshots, err = archive.TeamSnapshots(ctx, 1001)
	require.NoError(t, err)
	require.Len(t, snapshots, 1)
}
