package telemetry

import (
	"strings"
	"sync"
)

type Level int

const (
	LevelDebug Level = iota
	LevelWarning
	LevelBroken
	LevelCount
)

// Report is a single call made against MemoryAPI.
type Report struct {
	Level  Level
	Id     string
	Params []any
	Count  int64
}

// MemoryAPI implements API by keeping every report in memory, it is meant for tests that
// want to assert on what a component reported.
type MemoryAPI struct {
	lock    *sync.Mutex
	reports *[]Report
}

func NewMemoryAPI() MemoryAPI {
	return MemoryAPI{
		lock:    &sync.Mutex{},
		reports: &[]Report{},
	}
}

func (m MemoryAPI) push(r Report) {
	m.lock.Lock()
	defer m.lock.Unlock()
	*m.reports = append(*m.reports, r)
}

func (m MemoryAPI) ReportBroken(id string, params ...any) {
	m.push(Report{Level: LevelBroken, Id: id, Params: params})
}

func (m MemoryAPI) ReportWarning(id string, params ...any) {
	m.push(Report{Level: LevelWarning, Id: id, Params: params})
}

func (m MemoryAPI) ReportDebug(msg string, params ...any) {
	m.push(Report{Level: LevelDebug, Id: msg, Params: params})
}

func (m MemoryAPI) ReportCount(id string, count int64) {
	m.push(Report{Level: LevelCount, Id: id, Count: count})
}

// Reports returns a copy of every report of the given level.
func (m MemoryAPI) Reports(level Level) []Report {
	m.lock.Lock()
	defer m.lock.Unlock()

	var out []Report
	for _, r := range *m.reports {
		if r.Level == level {
			out = append(out, r)
		}
	}
	return out
}

// Has returns true if a report of the given level has an id ending with suffix.
// Scoped ids are prefixed with their namespace, so matching on the suffix is usually enough.
func (m MemoryAPI) Has(level Level, suffix string) bool {
	for _, r := range m.Reports(level) {
		if strings.HasSuffix(r.Id, suffix) {
			return true
		}
	}
	return false
}
