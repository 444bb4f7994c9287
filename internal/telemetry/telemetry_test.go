package telemetry

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/require"
)

func TestScopedAPI(t *testing.T) {
	mem := NewMemoryAPI()
	tel := NewScopedAPI("pipeline", NewScopedAPI("teams", mem))

	tel.ReportBroken("team.extract", errors.New("boom"), 1001)
	tel.ReportWarning("team.slug-mismatch")
	tel.ReportCount("teams.saved", 2)

	broken := mem.Reports(LevelBroken)
	require.Len(t, broken, 1)
	require.Equal(t, "teams: pipeline: team.extract", broken[0].Id)
	require.Equal(t, []any{errors.New("boom"), 1001}, broken[0].Params)

	require.True(t, mem.Has(LevelWarning, "team.slug-mismatch"))
	require.False(t, mem.Has(LevelBroken, "team.slug-mismatch"))

	counts := mem.Reports(LevelCount)
	require.Len(t, counts, 1)
	require.Equal(t, int64(2), counts[0].Count)
}

func TestInstrumentRestyDump(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<h1>ok</h1>"))
	}))
	defer server.Close()

	dir := filepath.Join(t.TempDir(), "dump")
	output, err := NewFilesystemOutput(dir)
	require.NoError(t, err)

	mem := NewMemoryAPI()
	client := resty.New()
	InstrumentResty(client, mem, "test", output)

	res, err := client.R().SetContext(context.Background()).Get(server.URL + "/team/1/a")
	require.NoError(t, err)
	require.Equal(t, 200, res.StatusCode())

	contents, err := os.ReadFile(filepath.Join(dir, "1.txt"))
	require.NoError(t, err)
	require.Contains(t, string(contents), "---- REQUEST ----")
	require.Contains(t, string(contents), "GET "+server.URL+"/team/1/a")
	require.Contains(t, string(contents), "<h1>ok</h1>")

	require.True(t, mem.Has(LevelDebug, report_resty_request))
	require.True(t, mem.Has(LevelDebug, report_resty_response))
	require.False(t, mem.Has(LevelBroken, report_resty_response))
}

func TestFilesystemOutputClears(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "dump")
	require.NoError(t, os.MkdirAll(dir, 0777))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "stale.txt"), []byte("old"), 0600))

	output, err := NewFilesystemOutput(dir)
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "stale.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)

	output.Write("7", "hello")
	contents, err := os.ReadFile(filepath.Join(dir, "7.txt"))
	require.NoError(t, err)
	require.Equal(t, "hello", string(contents))
}

func TestRecordPerfStats(t *testing.T) {
	mem := NewMemoryAPI()
	RecordPerfStats(context.Background(), mem)
	require.True(t, mem.Has(LevelCount, "allocated_mb"))
}

func TestSetupFromEnvMissing(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { os.Chdir(cwd) })

	_, err = SetupFromEnv(context.Background(), "test")
	require.ErrorIs(t, err, os.ErrNotExist)
}
