package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"hltv-scraper/cmd/hltv/commands"
	"hltv-scraper/internal/telemetry"
	"hltv-scraper/lib/util/serviceutil"
)

func main() {
	telemetry.InitSlog(false)

	ctx, cancel := serviceutil.SignalContext()
	defer cancel()

	tel, err := setupTelemetry(ctx)
	if err != nil {
		serviceutil.Fatal("failed to setup telemetry", err)
	}

	code := commands.ExecuteContext(ctx)

	telemetry.RecordPerfStats(ctx, telemetry.SlogAPI{})
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), time.Second*5)
	err = tel.Shutdown(shutdownCtx)
	cancelShutdown()
	if err != nil {
		slog.Warn("failed to flush telemetry", "err", err)
	}

	os.Exit(code)
}

// setupTelemetry installs the exporters from telemetry.json5, a missing file leaves
// telemetry disabled.
func setupTelemetry(ctx context.Context) (telemetry.Telemetry, error) {
	tel, err := telemetry.SetupFromEnv(ctx, "hltv-scraper")
	if errors.Is(err, os.ErrNotExist) {
		return telemetry.Telemetry{}, nil
	}
	return tel, err
}
