package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"hltv-scraper/internal/chrono"
	"hltv-scraper/internal/hltv"
	"hltv-scraper/internal/pipeline"
	"hltv-scraper/internal/store"
	"hltv-scraper/internal/telemetry"
	"hltv-scraper/lib/configutil"
)

type Config struct {
	BaseUrl        string              `json:"base_url"`
	OutputDir      string              `json:"output_dir"`
	TeamList       string              `json:"team_list"`
	TeamsFile      string              `json:"teams_file"`
	TimeoutSeconds int                 `json:"timeout_seconds"`
	HttpDumpDir    string              `json:"http_dump_dir"`
	Archive        store.ArchiveConfig `json:"archive"`
}

func defaultConfig() Config {
	return Config{
		BaseUrl:        hltv.DefaultBaseUrl,
		OutputDir:      ".",
		TeamList:       "teamlist.txt",
		TeamsFile:      "teams.json",
		TimeoutSeconds: 30,
	}
}

func readConfig() (Config, error) {
	config, err := configutil.ReadWithDefaults(*configPath, defaultConfig())
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", *configPath, err)
	}
	return config, nil
}

// env is everything a command needs to run a pipeline.
type env struct {
	config   Config
	files    store.JsonFiles
	pipeline pipeline.Pipeline
	close    func()
}

func setup(ctx context.Context) (env, error) {
	config, err := readConfig()
	if err != nil {
		return env{}, err
	}
	tel := telemetry.SlogAPI{}

	opts := hltv.ClientOptions{
		Timeout: time.Duration(config.TimeoutSeconds) * time.Second,
	}
	if config.HttpDumpDir != "" {
		output, err := telemetry.NewFilesystemOutput(config.HttpDumpDir)
		if err != nil {
			return env{}, fmt.Errorf("http dump: %w", err)
		}
		opts.Output = output
	}
	client := hltv.NewClient(tel, opts)

	files := store.NewJsonFiles(config.OutputDir, config.TeamsFile)
	sinks := store.Multi{files}
	closeFn := func() {}

	if config.Archive.Enabled() {
		db, err := config.Archive.OpenDB()
		if err != nil {
			return env{}, fmt.Errorf("open archive: %w", err)
		}
		archive, err := store.NewArchive(ctx, db, chrono.NewStandardTime())
		if err != nil {
			db.Close()
			return env{}, err
		}
		sinks = append(sinks, archive)
		closeFn = func() {
			err := archive.Close()
			if err != nil {
				slog.Warn("failed to close archive", "err", err)
			}
		}
	}

	return env{
		config:   config,
		files:    files,
		pipeline: pipeline.New(client, hltv.NewSite(config.BaseUrl), sinks, tel),
		close:    closeFn,
	}, nil
}

func (e env) teamListPath(override string) string {
	if override != "" {
		return override
	}
	return e.config.TeamList
}
