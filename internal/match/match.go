// Package match implements the match enrichment pipeline: merging the bets
// history with official game results and team standings, grouping the result
// by calendar date, and tallying AI-vs-user correctness.
package match

import "strconv"

// Status is the lifecycle state of a game.
type Status string

const (
	StatusScheduled Status = "Scheduled"
	StatusLive      Status = "Live"
	StatusFinal     Status = "Final"
)

// Match is one row of the bets history, optionally enriched with official
// game data and standings. Optional fields are pointers so "absent" and
// "zero" stay distinguishable across the merge.
type Match struct {
	ID       int64  `json:"id"`
	GameDate string `json:"game_date"`
	HomeTeam string `json:"home_team"`
	AwayTeam string `json:"away_team"`

	// AI prediction (produced externally, displayed here)
	PredictedWinner string  `json:"predicted_winner"`
	Confidence      string  `json:"confidence"`
	AIExplanation   *string `json:"ai_explanation,omitempty"`
	RiskLevel       *string `json:"risk_level,omitempty"`
	Badges          *string `json:"badges,omitempty"`

	// Outcome (present once the game concludes)
	HomeScore  *int    `json:"home_score,omitempty"`
	AwayScore  *int    `json:"away_score,omitempty"`
	Status     Status  `json:"status,omitempty"`
	RealWinner *string `json:"real_winner,omitempty"`

	// User annotation (single admin, set at most once per match)
	UserPrediction *string `json:"user_prediction,omitempty"`
	UserReason     *string `json:"user_reason,omitempty"`
	UserConfidence *int    `json:"user_confidence,omitempty"`

	// Enriched from official games (per-team context)
	HomeRestDays *int     `json:"home_rest_days,omitempty"`
	AwayRestDays *int     `json:"away_rest_days,omitempty"`
	HomeB2B      *bool    `json:"home_is_b2b,omitempty"`
	AwayB2B      *bool    `json:"away_is_b2b,omitempty"`
	HomeLast10   *int     `json:"home_last10,omitempty"`
	AwayLast10   *int     `json:"away_last10,omitempty"`
	HomeWinRate  *float64 `json:"home_win_rate_specific,omitempty"`
	AwayWinRate  *float64 `json:"away_win_rate_specific,omitempty"`

	// Enriched from standings
	HomeID     *int    `json:"home_id,omitempty"`
	AwayID     *int    `json:"away_id,omitempty"`
	HomeRank   *int    `json:"home_rank,omitempty"`
	AwayRank   *int    `json:"away_rank,omitempty"`
	HomeRecord *string `json:"home_record,omitempty"`
	AwayRecord *string `json:"away_record,omitempty"`
	HomeStreak *string `json:"home_streak,omitempty"`
	AwayStreak *string `json:"away_streak,omitempty"`
}

// DateKey returns the date-only key of the match, derived by truncating the
// stored timestamp to its date component. ISO dates compare lexicographically
// in chronological order.
func (m Match) DateKey() string {
	if len(m.GameDate) < 10 {
		return m.GameDate
	}
	return m.GameDate[:10]
}

// Winner returns the determinable winner of the match. A match is finished
// when real_winner is set or status is Final; when Final without an explicit
// winner, the side with the strictly greater score wins. Scores are never
// equal in a completed basketball game.
func (m Match) Winner() (string, bool) {
	if m.RealWinner != nil && *m.RealWinner != "" {
		return *m.RealWinner, true
	}
	if m.Status == StatusFinal && m.HomeScore != nil && m.AwayScore != nil {
		if *m.HomeScore > *m.AwayScore {
			return m.HomeTeam, true
		}
		return m.AwayTeam, true
	}
	return "", false
}

// OfficialGame is one row of the official NBA results table, keyed by
// (date, home team identifier).
type OfficialGame struct {
	ID        int64
	GameDate  string
	HomeTeam  string // usually an abbreviation
	AwayTeam  string
	HomeScore *int
	AwayScore *int
	Status    Status

	RestDaysHome        *int
	RestDaysAway        *int
	B2BHome             *bool
	B2BAway             *bool
	Last10HomeWins      *int
	Last10AwayWins      *int
	HomeWinRateSpecific *float64
	AwayWinRateSpecific *float64
}

// Standing is one franchise's season-to-date summary.
type Standing struct {
	TeamID     int     `json:"team_id"`
	TeamName   string  `json:"team_name"`
	Wins       int     `json:"wins"`
	Losses     int     `json:"losses"`
	WinPct     float64 `json:"win_pct"`
	Conference string  `json:"conference"`
	Rank       int     `json:"rank"`
	Record     string  `json:"record"`
	Streak     string  `json:"streak"`      // "W3"
	Last10     string  `json:"last_10"`     // "7-3"
	HomeRecord string  `json:"home_record"` // "10-5"
	RoadRecord string  `json:"road_record"`
}

// ParseWinLoss parses a compact "W-L" record string into win and loss
// counts. Malformed strings (missing separator, non-numeric parts) report
// ok=false so callers can leave prior values untouched.
func ParseWinLoss(s string) (wins, losses int, ok bool) {
	sep := -1
	for i := 0; i < len(s); i++ {
		if s[i] == '-' {
			sep = i
			break
		}
	}
	if sep <= 0 || sep == len(s)-1 {
		return 0, 0, false
	}
	w, err := strconv.Atoi(s[:sep])
	if err != nil {
		return 0, 0, false
	}
	l, err := strconv.Atoi(s[sep+1:])
	if err != nil {
		return 0, 0, false
	}
	return w, l, true
}
