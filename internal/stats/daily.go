package stats

// Helpers around the daily leaderboard. Complements stats.go.

// Reset clears all aggregates and the daily leaderboard.
// Intended for tests and dev convenience.
func Reset() {
	statsMu.Lock()
	defer statsMu.Unlock()
	current = newSummary()
	for k := range dailyMax {
		delete(dailyMax, k)
	}
}
