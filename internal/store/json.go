package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"hltv-scraper/internal/hltv"
)

const indent = "    "

// JsonFiles writes records as indented json files under a directory.
type JsonFiles struct {
	Dir       string
	TeamsFile string
}

func NewJsonFiles(dir, teamsFile string) JsonFiles {
	if teamsFile == "" {
		teamsFile = "teams.json"
	}
	return JsonFiles{Dir: dir, TeamsFile: teamsFile}
}

// PlayerFile is the file a player with the given slug is written to.
func (s JsonFiles) PlayerFile(slug string) string {
	return filepath.Join(s.Dir, fmt.Sprintf("%s.json", slug))
}

func (s JsonFiles) teamsPath() string {
	return filepath.Join(s.Dir, s.TeamsFile)
}

// stagedFile is a json file written next to its destination, it only replaces the
// destination on Commit.
type stagedFile struct {
	tmp     string
	path    string
	message string
	args    []any
}

func stageJson(path string, value any) (stagedFile, error) {
	out, err := json.MarshalIndent(value, "", indent)
	if err != nil {
		return stagedFile{}, err
	}
	err = os.MkdirAll(filepath.Dir(path), 0755)
	if err != nil {
		return stagedFile{}, err
	}

	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return stagedFile{}, err
	}
	_, err = f.Write(out)
	closeErr := f.Close()
	if err == nil {
		err = closeErr
	}
	if err == nil {
		err = os.Chmod(f.Name(), 0644)
	}
	if err != nil {
		os.Remove(f.Name())
		return stagedFile{}, err
	}
	return stagedFile{tmp: f.Name(), path: path}, nil
}

func (f stagedFile) Commit() error {
	err := os.Rename(f.tmp, f.path)
	if err != nil {
		f.Discard()
		return err
	}
	slog.Info(f.message, f.args...)
	return nil
}

func (f stagedFile) Discard() {
	err := os.Remove(f.tmp)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to remove staged file", "file", f.tmp, "err", err)
	}
}

func (s JsonFiles) StageTeams(ctx context.Context, batch hltv.TeamBatch) (Staged, error) {
	if batch.Teams == nil {
		batch.Teams = []hltv.Team{}
	}
	staged, err := stageJson(s.teamsPath(), batch)
	if err != nil {
		return nil, fmt.Errorf("write teams: %w", err)
	}
	staged.message = "Teams saved"
	staged.args = []any{"file", s.teamsPath(), "count", len(batch.Teams)}
	return staged, nil
}

func (s JsonFiles) StagePlayer(ctx context.Context, slug string, player hltv.Player) (Staged, error) {
	path := s.PlayerFile(slug)
	staged, err := stageJson(path, player)
	if err != nil {
		return nil, fmt.Errorf("write player: %w", err)
	}
	staged.message = fmt.Sprintf("Player data saved to %s", path)
	return staged, nil
}

// SaveTeams replaces the teams file with the batch.
func (s JsonFiles) SaveTeams(ctx context.Context, batch hltv.TeamBatch) error {
	staged, err := s.StageTeams(ctx, batch)
	if err != nil {
		return err
	}
	return staged.Commit()
}

// SavePlayer replaces the player's file with the record.
func (s JsonFiles) SavePlayer(ctx context.Context, slug string, player hltv.Player) error {
	staged, err := s.StagePlayer(ctx, slug, player)
	if err != nil {
		return err
	}
	return staged.Commit()
}

// Document is a file written by JsonFiles, exactly one of the fields is set.
type Document struct {
	Teams  *hltv.TeamBatch
	Player *hltv.Player
}

// ReadDocument reads a teams or player file back.
func ReadDocument(path string) (Document, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return Document{}, err
	}

	var probe map[string]json.RawMessage
	err = json.Unmarshal(contents, &probe)
	if err != nil {
		return Document{}, fmt.Errorf("read %s: %w", path, err)
	}

	if _, ok := probe["teams"]; ok {
		var batch hltv.TeamBatch
		err = json.Unmarshal(contents, &batch)
		if err != nil {
			return Document{}, fmt.Errorf("read %s: %w", path, err)
		}
		return Document{Teams: &batch}, nil
	}
	if _, ok := probe["nickname"]; ok {
		var player hltv.Player
		err = json.Unmarshal(contents, &player)
		if err != nil {
			return Document{}, fmt.Errorf("read %s: %w", path, err)
		}
		return Document{Player: &player}, nil
	}

	return Document{}, fmt.Errorf("read %s: neither a teams nor a player file", path)
}
