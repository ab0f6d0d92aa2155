package match

import (
	"github.com/nbaiagent/agent-data/internal/team"
)

// GameKey identifies an official game by date and normalized home-team name.
type GameKey struct {
	Date string
	Home string
}

// Key builds a GameKey with a normalized team identifier.
func Key(date, home string) GameKey {
	return GameKey{Date: date, Home: team.Normalize(home)}
}

// GamesByKey indexes official games under both their full-name and
// abbreviation keys were they distinct; in practice the feed stores one form,
// so a single key per game is written with whatever form it carries.
func GamesByKey(games []OfficialGame) map[GameKey]OfficialGame {
	out := make(map[GameKey]OfficialGame, len(games))
	for _, g := range games {
		out[Key(g.DateKey(), g.HomeTeam)] = g
	}
	return out
}

// DateKey returns the date component of the official game's timestamp.
func (g OfficialGame) DateKey() string {
	if len(g.GameDate) < 10 {
		return g.GameDate
	}
	return g.GameDate[:10]
}

// StandingsByTeam indexes standings by normalized team name.
func StandingsByTeam(standings []Standing) map[string]Standing {
	out := make(map[string]Standing, len(standings))
	for _, s := range standings {
		out[team.Normalize(s.TeamName)] = s
	}
	return out
}

// Enrich merges official game data and standings into each match, returning
// a new slice of the same length and order. Inputs are never mutated, so the
// merge is idempotent: enriching an already-enriched list with the same
// lookups yields the same records.
//
// Precedence: the official game row is the primary source for scores,
// status, and per-team context. Standings overlay rank/record/streak, and —
// when their compact "W-L" strings are well-formed — recompute last-10 wins
// and the situational win rate, overriding the official context. Standings
// refresh more often than the per-game context rows, so the parsed values
// are the fresher read.
func Enrich(matches []Match, official map[GameKey]OfficialGame, standings map[string]Standing) []Match {
	out := make([]Match, len(matches))
	for i, m := range matches {
		out[i] = enrichOne(m, official, standings)
	}
	return out
}

func enrichOne(m Match, official map[GameKey]OfficialGame, standings map[string]Standing) Match {
	date := m.DateKey()

	// Probe the full-name key first, then the abbreviation key.
	g, ok := official[Key(date, m.HomeTeam)]
	if !ok {
		g, ok = official[Key(date, team.Abbrev(m.HomeTeam))]
	}
	if ok {
		overlayOfficial(&m, g)
	}

	if st, found := standings[team.Normalize(m.HomeTeam)]; found {
		overlayStanding(&m, st, true)
	}
	if st, found := standings[team.Normalize(m.AwayTeam)]; found {
		overlayStanding(&m, st, false)
	}
	return m
}

// overlayOfficial copies the official game's result and context fields onto
// the match. Identity, date, and team-name fields are deliberately excluded
// so the match keeps its own identity.
func overlayOfficial(m *Match, g OfficialGame) {
	if g.HomeScore != nil {
		m.HomeScore = intPtr(*g.HomeScore)
	}
	if g.AwayScore != nil {
		m.AwayScore = intPtr(*g.AwayScore)
	}
	if g.Status != "" {
		m.Status = g.Status
	}

	// real_winner: keep an existing value, else derive from official scores.
	// The match's own team names are used for the derived value so it
	// compares cleanly against predicted_winner and user_prediction.
	if (m.RealWinner == nil || *m.RealWinner == "") && g.HomeScore != nil && g.AwayScore != nil {
		w := m.AwayTeam
		if *g.HomeScore > *g.AwayScore {
			w = m.HomeTeam
		}
		m.RealWinner = strPtr(w)
	}

	m.HomeRestDays = copyInt(g.RestDaysHome)
	m.AwayRestDays = copyInt(g.RestDaysAway)
	m.HomeB2B = copyBool(g.B2BHome)
	m.AwayB2B = copyBool(g.B2BAway)
	m.HomeLast10 = copyInt(g.Last10HomeWins)
	m.AwayLast10 = copyInt(g.Last10AwayWins)
	m.HomeWinRate = copyFloat(g.HomeWinRateSpecific)
	m.AwayWinRate = copyFloat(g.AwayWinRateSpecific)
}

// overlayStanding copies rank/record/streak and recomputes last-10 and the
// situational win rate from the standings' compact strings. The home side
// uses the home record split; the away side the road split. A malformed
// string skips that assignment and leaves the prior value intact.
func overlayStanding(m *Match, st Standing, home bool) {
	if home {
		m.HomeID = intPtr(st.TeamID)
		m.HomeRank = intPtr(st.Rank)
		m.HomeRecord = strPtr(st.Record)
		m.HomeStreak = strPtr(st.Streak)
		if w, _, ok := ParseWinLoss(st.Last10); ok {
			m.HomeLast10 = intPtr(w)
		}
		if w, l, ok := ParseWinLoss(st.HomeRecord); ok && w+l > 0 {
			m.HomeWinRate = floatPtr(float64(w) / float64(w+l))
		}
		return
	}
	m.AwayID = intPtr(st.TeamID)
	m.AwayRank = intPtr(st.Rank)
	m.AwayRecord = strPtr(st.Record)
	m.AwayStreak = strPtr(st.Streak)
	if w, _, ok := ParseWinLoss(st.Last10); ok {
		m.AwayLast10 = intPtr(w)
	}
	if w, l, ok := ParseWinLoss(st.RoadRecord); ok && w+l > 0 {
		m.AwayWinRate = floatPtr(float64(w) / float64(w+l))
	}
}

// Pointer helpers. Fresh pointers are allocated on every overlay so enriched
// records never alias the lookup tables.

func intPtr(v int) *int           { return &v }
func strPtr(v string) *string     { return &v }
func floatPtr(v float64) *float64 { return &v }
func boolPtr(v bool) *bool        { return &v }

func copyInt(p *int) *int {
	if p == nil {
		return nil
	}
	return intPtr(*p)
}

func copyBool(p *bool) *bool {
	if p == nil {
		return nil
	}
	return boolPtr(*p)
}

func copyFloat(p *float64) *float64 {
	if p == nil {
		return nil
	}
	return floatPtr(*p)
}
