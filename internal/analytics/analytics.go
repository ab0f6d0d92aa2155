// Package analytics computes the dashboard aggregates over the full bets
// history: bankroll simulation, confusion matrix, per-team / per-reason
// performance, and the rest-scenario split. All functions are pure over the
// match slice.
package analytics

import (
	"sort"

	"github.com/nbaiagent/agent-data/internal/match"
)

// Flat staking model for the virtual bankroll: 100 per bet, average 1.90
// odds, so +90 on a win and -100 on a loss.
const (
	stake     = 100.0
	winProfit = 90.0
)

// aiResult reports whether the AI's pick on a finished match was correct.
// ok is false while the outcome is undeterminable.
func aiResult(m match.Match) (won, ok bool) {
	winner, done := m.Winner()
	if !done {
		return false, false
	}
	return m.PredictedWinner == winner, true
}

// userResult is aiResult for the user's pick. Matches without a vote report
// ok=false.
func userResult(m match.Match) (won, ok bool) {
	winner, done := m.Winner()
	if !done || m.UserPrediction == nil || *m.UserPrediction == "" {
		return false, false
	}
	return *m.UserPrediction == winner, true
}

// chronological returns a copy sorted oldest first. ISO timestamps sort
// lexicographically.
func chronological(matches []match.Match) []match.Match {
	out := make([]match.Match, len(matches))
	copy(out, matches)
	sort.SliceStable(out, func(i, j int) bool { return out[i].GameDate < out[j].GameDate })
	return out
}

// --------------------------------------------------------------------------
// KPI summary
// --------------------------------------------------------------------------

// KPI is the headline dashboard numbers.
type KPI struct {
	UserBets      int     `json:"user_bets"`
	UserWins      int     `json:"user_wins"`
	UserWinRate   float64 `json:"user_win_rate"` // percent
	AIGames       int     `json:"ai_games"`
	AIWins        int     `json:"ai_wins"`
	AIWinRate     float64 `json:"ai_win_rate"`
	Bankroll      float64 `json:"bankroll"`
	ROI           float64 `json:"roi"` // percent of total staked
	CurrentStreak int     `json:"current_streak"`
	BestStreak    int     `json:"best_streak"`
	HighConfBets  int     `json:"high_conf_bets"`
	HighConfWins  int     `json:"high_conf_wins"`
	HighConfRate  float64 `json:"high_conf_rate"`
}

// ComputeKPI walks the history oldest-first and accumulates win rates, the
// virtual bankroll, and streaks.
func ComputeKPI(matches []match.Match) KPI {
	var k KPI
	var bankroll float64

	for _, m := range chronological(matches) {
		if won, ok := aiResult(m); ok {
			k.AIGames++
			if won {
				k.AIWins++
			}
		}

		won, ok := userResult(m)
		if !ok {
			continue
		}
		k.UserBets++
		if won {
			k.UserWins++
			bankroll += winProfit
			k.CurrentStreak++
		} else {
			bankroll -= stake
			k.CurrentStreak = 0
		}
		if k.CurrentStreak > k.BestStreak {
			k.BestStreak = k.CurrentStreak
		}

		if m.UserConfidence != nil && *m.UserConfidence == 3 {
			k.HighConfBets++
			if won {
				k.HighConfWins++
			}
		}
	}

	k.Bankroll = bankroll
	if k.UserBets > 0 {
		k.UserWinRate = float64(k.UserWins) / float64(k.UserBets) * 100
		k.ROI = bankroll / (float64(k.UserBets) * stake) * 100
	}
	if k.AIGames > 0 {
		k.AIWinRate = float64(k.AIWins) / float64(k.AIGames) * 100
	}
	if k.HighConfBets > 0 {
		k.HighConfRate = float64(k.HighConfWins) / float64(k.HighConfBets) * 100
	}
	return k
}

// --------------------------------------------------------------------------
// Bankroll series
// --------------------------------------------------------------------------

// BankrollPoint is one step of the cumulative PnL curve.
type BankrollPoint struct {
	Date     string  `json:"date"`
	Bankroll float64 `json:"bankroll"`
	Label    string  `json:"label"` // "Home vs Away"
	Won      bool    `json:"won"`
}

// BankrollSeries returns the cumulative virtual-bankroll curve over the
// user's settled bets, oldest first.
func BankrollSeries(matches []match.Match) []BankrollPoint {
	var points []BankrollPoint
	var bankroll float64

	for _, m := range chronological(matches) {
		won, ok := userResult(m)
		if !ok {
			continue
		}
		if won {
			bankroll += winProfit
		} else {
			bankroll -= stake
		}
		points = append(points, BankrollPoint{
			Date:     m.DateKey(),
			Bankroll: bankroll,
			Label:    m.HomeTeam + " vs " + m.AwayTeam,
			Won:      won,
		})
	}
	return points
}

// --------------------------------------------------------------------------
// Confusion matrix
// --------------------------------------------------------------------------

// Confusion is the AI-vs-human 2x2 over matches where both outcomes are
// known.
type Confusion struct {
	BothWon  int `json:"both_won"`
	UserOnly int `json:"user_only"` // user right, AI wrong
	AIOnly   int `json:"ai_only"`   // AI right, user wrong
	BothLost int `json:"both_lost"`
	Total    int `json:"total"`

	// Per-cell match ids for drill-down.
	Matches map[string][]int64 `json:"matches"`
}

// ComputeConfusion classifies every match with both an AI and a user
// outcome into the four cells.
func ComputeConfusion(matches []match.Match) Confusion {
	c := Confusion{Matches: map[string][]int64{
		"both_won": {}, "user_only": {}, "ai_only": {}, "both_lost": {},
	}}

	for _, m := range matches {
		aiWon, aiOK := aiResult(m)
		userWon, userOK := userResult(m)
		if !aiOK || !userOK {
			continue
		}
		c.Total++
		switch {
		case userWon && aiWon:
			c.BothWon++
			c.Matches["both_won"] = append(c.Matches["both_won"], m.ID)
		case userWon:
			c.UserOnly++
			c.Matches["user_only"] = append(c.Matches["user_only"], m.ID)
		case aiWon:
			c.AIOnly++
			c.Matches["ai_only"] = append(c.Matches["ai_only"], m.ID)
		default:
			c.BothLost++
			c.Matches["both_lost"] = append(c.Matches["both_lost"], m.ID)
		}
	}
	return c
}

// --------------------------------------------------------------------------
// Team performance
// --------------------------------------------------------------------------

// minTeamSample filters out teams with too few finished games for the
// accuracy numbers to mean anything.
const minTeamSample = 3

// TeamPerformance is AI accuracy, user accuracy, and betting PnL for one
// franchise across its finished games.
type TeamPerformance struct {
	Team     string  `json:"team"`
	Games    int     `json:"games"`
	AIWins   int     `json:"ai_wins"`
	AIAcc    float64 `json:"ai_acc"` // percent
	UserBets int     `json:"user_bets"`
	UserWins int     `json:"user_wins"`
	UserAcc  float64 `json:"user_acc"`
	PnL      float64 `json:"pnl"`
}

// ComputeTeamPerformance aggregates per-team numbers over finished matches.
// Both participants of a match count toward their own rows; user PnL counts
// only on the side the user actually backed. Sorted by PnL descending, teams
// with fewer than minTeamSample games dropped.
func ComputeTeamPerformance(matches []match.Match) []TeamPerformance {
	byTeam := make(map[string]*TeamPerformance)

	for _, m := range matches {
		winner, done := m.Winner()
		if !done {
			continue
		}
		for _, name := range []string{m.HomeTeam, m.AwayTeam} {
			tp, ok := byTeam[name]
			if !ok {
				tp = &TeamPerformance{Team: name}
				byTeam[name] = tp
			}
			tp.Games++
			if m.PredictedWinner == winner {
				tp.AIWins++
			}
			if m.UserPrediction != nil && *m.UserPrediction == name {
				tp.UserBets++
				if name == winner {
					tp.UserWins++
					tp.PnL += winProfit
				} else {
					tp.PnL -= stake
				}
			}
		}
	}

	out := make([]TeamPerformance, 0, len(byTeam))
	for _, tp := range byTeam {
		if tp.Games < minTeamSample {
			continue
		}
		tp.AIAcc = float64(tp.AIWins) / float64(tp.Games) * 100
		if tp.UserBets > 0 {
			tp.UserAcc = float64(tp.UserWins) / float64(tp.UserBets) * 100
		}
		out = append(out, *tp)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].PnL != out[j].PnL {
			return out[i].PnL > out[j].PnL
		}
		return out[i].Team < out[j].Team
	})
	return out
}

// --------------------------------------------------------------------------
// Reason performance
// --------------------------------------------------------------------------

// ReasonPerformance is the user's hit rate for one reason code.
type ReasonPerformance struct {
	Reason  string  `json:"reason"`
	Bets    int     `json:"bets"`
	Wins    int     `json:"wins"`
	WinRate float64 `json:"win_rate"` // percent
}

// ComputeReasonPerformance groups settled user bets by their reason code.
func ComputeReasonPerformance(matches []match.Match) []ReasonPerformance {
	byReason := make(map[string]*ReasonPerformance)

	for _, m := range matches {
		won, ok := userResult(m)
		if !ok || m.UserReason == nil || *m.UserReason == "" {
			continue
		}
		rp, exists := byReason[*m.UserReason]
		if !exists {
			rp = &ReasonPerformance{Reason: *m.UserReason}
			byReason[*m.UserReason] = rp
		}
		rp.Bets++
		if won {
			rp.Wins++
		}
	}

	out := make([]ReasonPerformance, 0, len(byReason))
	for _, rp := range byReason {
		rp.WinRate = float64(rp.Wins) / float64(rp.Bets) * 100
		out = append(out, *rp)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Bets != out[j].Bets {
			return out[i].Bets > out[j].Bets
		}
		return out[i].Reason < out[j].Reason
	})
	return out
}

// --------------------------------------------------------------------------
// Fatigue performance
// --------------------------------------------------------------------------

// FatigueBucket is AI and user accuracy over finished matches sharing a rest
// scenario.
type FatigueBucket struct {
	Key      string  `json:"key"`   // "b2b", "short_rest", "fresh"
	Label    string  `json:"label"` // display name
	Total    int     `json:"total"`
	AIWins   int     `json:"ai_wins"`
	AIAcc    float64 `json:"ai_acc"` // percent
	UserWins int     `json:"user_wins"`
	UserAcc  float64 `json:"user_acc"`
}

// ComputeFatiguePerformance buckets finished matches by the worst rest
// condition either side carries: back-to-back, then a single rest day, then
// fresh. Matches without rest context land in the fresh bucket. Always
// returns the three buckets in that order.
func ComputeFatiguePerformance(matches []match.Match) []FatigueBucket {
	buckets := []FatigueBucket{
		{Key: "b2b", Label: "Back-to-Back"},
		{Key: "short_rest", Label: "1 Day Rest"},
		{Key: "fresh", Label: "2+ Days Rest"},
	}

	for _, m := range matches {
		aiWon, done := aiResult(m)
		if !done {
			continue
		}

		idx := 2
		switch {
		case truthy(m.HomeB2B) || truthy(m.AwayB2B):
			idx = 0
		case restIs(m.HomeRestDays, 1) || restIs(m.AwayRestDays, 1):
			idx = 1
		}

		b := &buckets[idx]
		b.Total++
		if aiWon {
			b.AIWins++
		}
		if won, ok := userResult(m); ok && won {
			b.UserWins++
		}
	}

	for i := range buckets {
		if buckets[i].Total > 0 {
			buckets[i].AIAcc = float64(buckets[i].AIWins) / float64(buckets[i].Total) * 100
			buckets[i].UserAcc = float64(buckets[i].UserWins) / float64(buckets[i].Total) * 100
		}
	}
	return buckets
}

func truthy(b *bool) bool       { return b != nil && *b }
func restIs(v *int, n int) bool { return v != nil && *v == n }

// --------------------------------------------------------------------------
// Full dashboard payload
// --------------------------------------------------------------------------

// Dashboard bundles everything the dashboard page renders.
type Dashboard struct {
	KPI       KPI                 `json:"kpi"`
	Bankroll  []BankrollPoint     `json:"bankroll"`
	Confusion Confusion           `json:"confusion"`
	Teams     []TeamPerformance   `json:"teams"`
	Reasons   []ReasonPerformance `json:"reasons"`
	Fatigue   []FatigueBucket     `json:"fatigue"`
}

// Compute builds the full dashboard from the bets history.
func Compute(matches []match.Match) Dashboard {
	return Dashboard{
		KPI:       ComputeKPI(matches),
		Bankroll:  BankrollSeries(matches),
		Confusion: ComputeConfusion(matches),
		Teams:     ComputeTeamPerformance(matches),
		Reasons:   ComputeReasonPerformance(matches),
		Fatigue:   ComputeFatiguePerformance(matches),
	}
}
