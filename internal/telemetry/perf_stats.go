package telemetry

import (
	"context"
	"runtime"

	"github.com/shirou/gopsutil/v4/cpu"
	"go.opentelemetry.io/otel"
)

const report_perf_stats = "perf-stats"

var meter = otel.Meter("hltv-scraper/perf_stats")
var cpuGauge, _ = meter.Float64Gauge("cpu_usage")
var memoryGauge, _ = meter.Int64Gauge("allocated_mb")
var goroutineGauge, _ = meter.Int64Gauge("goroutine_count")

// RecordPerfStats takes a single sample of process resource usage.
func RecordPerfStats(ctx context.Context, tel API) {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	allocated := int64(memStats.Alloc / 1_000_000)
	memoryGauge.Record(ctx, allocated)
	tel.ReportCount("allocated_mb", allocated)

	goroutines := int64(runtime.NumGoroutine())
	goroutineGauge.Record(ctx, goroutines)

	// interval 0 compares against the previous call
	cpuUsage, err := cpu.PercentWithContext(ctx, 0, false)
	if err != nil || len(cpuUsage) == 0 {
		tel.ReportWarning(report_perf_stats, err)
		return
	}
	cpuGauge.Record(ctx, cpuUsage[0])
	tel.ReportCount("cpu_usage_percent", int64(cpuUsage[0]))
}
