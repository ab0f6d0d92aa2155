// Package seed provides database upsert orchestration for the sync flows.
package seed

import "fmt"

// Result tracks counts and errors from a sync operation.
type Result struct {
	GamesUpserted     int
	StandingsUpserted int
	PlayersUpserted   int
	Errors            []string
}

// Add merges another Result into this one.
func (r *Result) Add(other Result) {
	r.GamesUpserted += other.GamesUpserted
	r.StandingsUpserted += other.StandingsUpserted
	r.PlayersUpserted += other.PlayersUpserted
	r.Errors = append(r.Errors, other.Errors...)
}

// AddErrorf records a formatted error message.
func (r *Result) AddErrorf(format string, args ...interface{}) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// Summary returns a human-readable summary of the sync operation.
func (r *Result) Summary() string {
	return fmt.Sprintf(
		"games=%d standings=%d players=%d errors=%d",
		r.GamesUpserted, r.StandingsUpserted, r.PlayersUpserted,
		len(r.Errors),
	)
}
