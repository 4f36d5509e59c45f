// Package stats keeps in-memory aggregate counters for resolved combat.
package stats

import (
	"sync"
	"time"
)

// Summary is a snapshot of the aggregate counters.
type Summary struct {
	Duels            int            `json:"duels"`
	Exchanges        int            `json:"exchanges"`
	WoundsBySeverity map[string]int `json:"wounds_by_severity"`
	MoraleBreaks     int            `json:"morale_breaks"`
	Deaths           int            `json:"deaths"`
}

// DuelRecord identifies one resolved duel for the daily leaderboard.
type DuelRecord struct {
	Winner string `json:"winner"`
	Wounds int    `json:"wounds"`
	Ticks  int    `json:"ticks"`
}

var (
	statsMu sync.Mutex
	current = newSummary()
	// Global daily max wound count (by date string YYYY-MM-DD UTC).
	dailyMax = make(map[string]DuelRecord)
)

func newSummary() Summary {
	return Summary{WoundsBySeverity: make(map[string]int)}
}

// RecordDuel folds one duel into the aggregates.
func RecordDuel(exchanges int) {
	statsMu.Lock()
	defer statsMu.Unlock()
	current.Duels++
	current.Exchanges += exchanges
}

// RecordWound counts one wound by severity name.
func RecordWound(severity string) {
	statsMu.Lock()
	defer statsMu.Unlock()
	current.WoundsBySeverity[severity]++
}

// RecordBreak counts one morale break.
func RecordBreak() {
	statsMu.Lock()
	defer statsMu.Unlock()
	current.MoraleBreaks++
}

// RecordDeath counts one death.
func RecordDeath() {
	statsMu.Lock()
	defer statsMu.Unlock()
	current.Deaths++
}

// GetSummary returns a copy of the aggregates.
func GetSummary() Summary {
	statsMu.Lock()
	defer statsMu.Unlock()
	out := current
	out.WoundsBySeverity = make(map[string]int, len(current.WoundsBySeverity))
	for k, v := range current.WoundsBySeverity {
		out.WoundsBySeverity[k] = v
	}
	return out
}

// SaveDailyMax updates the per-day bloodiest duel if this one beats it.
// Ties break toward the shorter duel.
func SaveDailyMax(rec DuelRecord) {
	dateKey := time.Now().UTC().Format("2006-01-02")
	statsMu.Lock()
	defer statsMu.Unlock()
	cur, ok := dailyMax[dateKey]
	if !ok {
		dailyMax[dateKey] = rec
		return
	}
	if rec.Wounds > cur.Wounds || (rec.Wounds == cur.Wounds && rec.Ticks < cur.Ticks) {
		dailyMax[dateKey] = rec
	}
}

// GetDailyMax returns today's bloodiest duel, if any.
func GetDailyMax() (DuelRecord, bool) {
	dateKey := time.Now().UTC().Format("2006-01-02")
	statsMu.Lock()
	defer statsMu.Unlock()
	rec, ok := dailyMax[dateKey]
	return rec, ok
}
