package store

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"hltv-scraper/internal/chrono"
	"hltv-scraper/internal/hltv"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var Schema string

var tracer = otel.Tracer("internal/store")

// ArchiveConfig selects a local sqlite file or a remote libsql database.
type ArchiveConfig struct {
	File      string `json:"file"`
	Url       string `json:"url"`
	AuthToken string `json:"auth_token"`
}

func (config ArchiveConfig) Enabled() bool {
	return config.File != "" || config.Url != ""
}

// OpenDB opens the configured database without touching its schema.
func (config ArchiveConfig) OpenDB() (*sql.DB, error) {
	if config.Url != "" {
		dsn := config.Url
		if config.AuthToken != "" {
			parsed, err := url.Parse(config.Url)
			if err != nil {
				return nil, fmt.Errorf("archive url: %w", err)
			}
			query := parsed.Query()
			query.Set("authToken", config.AuthToken)
			parsed.RawQuery = query.Encode()
			dsn = parsed.String()
		}
		return sql.Open("libsql", dsn)
	}
	if config.File == "" {
		return nil, fmt.Errorf("archive: neither a file nor a url was specified")
	}

	err := os.MkdirAll(filepath.Dir(config.File), 0755)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", config.File)
	if err != nil {
		return nil, err
	}
	// sqlite only allows a single writer
	db.SetMaxOpenConns(1)
	_, err = db.Exec("PRAGMA journal_mode=WAL")
	if err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// Archive appends every saved record to snapshot tables, records are never deduplicated.
type Archive struct {
	db   *sql.DB
	time chrono.TimeAPI
}

// NewArchive creates the snapshot tables if they do not exist yet.
func NewArchive(ctx context.Context, db *sql.DB, time chrono.TimeAPI) (Archive, error) {
	_, err := db.ExecContext(ctx, Schema)
	if err != nil {
		return Archive{}, fmt.Errorf("archive schema: %w", err)
	}
	return Archive{db: db, time: time}, nil
}

func (a Archive) Close() error {
	return a.db.Close()
}

func (a Archive) SaveTeams(ctx context.Context, batch hltv.TeamBatch) (err error) {
	ctx, span := tracer.Start(ctx, "SaveTeams")
	defer span.End()
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
	}()
	span.SetAttributes(attribute.Int("teams", len(batch.Teams)))

	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := a.time.Now().Unix()
	for _, team := range batch.Teams {
		record, err := json.Marshal(team)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(
			ctx,
			"insert into team_snapshot(time, team_id, name, record) values (?, ?, ?, ?)",
			now, team.Id, team.Name, string(record),
		)
		if err != nil {
			return fmt.Errorf("archive team %d: %w", team.Id, err)
		}
	}

	return tx.Commit()
}

func (a Archive) SavePlayer(ctx context.Context, slug string, player hltv.Player) (err error) {
	ctx, span := tracer.Start(ctx, "SavePlayer")
	defer span.End()
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
	}()
	span.SetAttributes(attribute.Int("player_id", player.Id))

	record, err := json.Marshal(player)
	if err != nil {
		return err
	}
	_, err = a.db.ExecContext(
		ctx,
		"insert into player_snapshot(time, player_id, slug, role, record) values (?, ?, ?, ?, ?)",
		a.time.Now().Unix(), player.Id, slug, string(player.Role), string(record),
	)
	if err != nil {
		return fmt.Errorf("archive player %d: %w", player.Id, err)
	}
	return nil
}

// Snapshot is a single archived record.
type Snapshot struct {
	Time   int64
	Id     int
	Record string
}

// TeamSnapshots returns every archived version of a team, oldest first.
func (a Archive) TeamSnapshots(ctx context.Context, teamId int) ([]Snapshot, error) {
	return a.snapshots(ctx, "select time, team_id, record from team_snapshot where team_id = ? order by time, rowid", teamId)
}

// PlayerSnapshots returns every archived version of a player, oldest first.
func (a Archive) PlayerSnapshots(ctx context.Context, playerId int) ([]Snapshot, error) {
	return a.snapshots(ctx, "select time, player_id, record from player_snapshot where player_id = ? order by time, rowid", playerId)
}

func (a Archive) snapshots(ctx context.Context, query string, id int) ([]Snapshot, error) {
	rows, err := a.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Snapshot
	for rows.Next() {
		var s Snapshot
		err := rows.Scan(&s.Time, &s.Id, &s.Record)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
