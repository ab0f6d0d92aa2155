package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nbaiagent/agent-data/internal/match"
)

func strPtr(s string) *string { return &s }
func intPtr(v int) *int       { return &v }

// settled builds a finished match with both picks recorded.
func settled(id int64, date, home, away, ai, user, winner string) match.Match {
	return match.Match{
		ID:              id,
		GameDate:        date,
		HomeTeam:        home,
		AwayTeam:        away,
		PredictedWinner: ai,
		UserPrediction:  strPtr(user),
		RealWinner:      strPtr(winner),
	}
}

func sampleHistory() []match.Match {
	return []match.Match{
		// Oldest first once sorted; deliberately shuffled here.
		settled(3, "2024-01-05", "Boston Celtics", "Miami Heat",
			"Boston Celtics", "Miami Heat", "Boston Celtics"), // ai_only
		settled(1, "2024-01-01", "Boston Celtics", "New York Knicks",
			"Boston Celtics", "Boston Celtics", "Boston Celtics"), // both_won
		settled(2, "2024-01-03", "Miami Heat", "Boston Celtics",
			"Miami Heat", "Miami Heat", "Boston Celtics"), // both_lost
		settled(4, "2024-01-07", "New York Knicks", "Miami Heat",
			"Miami Heat", "New York Knicks", "New York Knicks"), // user_only
		// Unsettled: ignored everywhere.
		{ID: 5, GameDate: "2024-01-09", HomeTeam: "Utah Jazz", AwayTeam: "Miami Heat",
			PredictedWinner: "Utah Jazz", Status: match.StatusScheduled},
	}
}

func TestComputeKPI(t *testing.T) {
	history := sampleHistory()
	history[1].UserConfidence = intPtr(3) // the 2024-01-01 both_won bet

	k := ComputeKPI(history)

	assert.Equal(t, 4, k.UserBets)
	assert.Equal(t, 2, k.UserWins)
	assert.InDelta(t, 50.0, k.UserWinRate, 1e-9)

	// AI got ids 1 and 3 right; its Heat picks on 2 and 4 both lost.
	assert.Equal(t, 4, k.AIGames)
	assert.Equal(t, 2, k.AIWins)
	assert.InDelta(t, 50.0, k.AIWinRate, 1e-9)

	// +90 -100 -100 +90 in date order.
	assert.InDelta(t, -20.0, k.Bankroll, 1e-9)
	assert.InDelta(t, -20.0/400.0*100, k.ROI, 1e-9)

	// Streaks follow date order: W L L W.
	assert.Equal(t, 1, k.CurrentStreak)
	assert.Equal(t, 1, k.BestStreak)

	assert.Equal(t, 1, k.HighConfBets)
	assert.Equal(t, 1, k.HighConfWins)
	assert.InDelta(t, 100.0, k.HighConfRate, 1e-9)
}

func TestBankrollSeries(t *testing.T) {
	points := BankrollSeries(sampleHistory())
	require.Len(t, points, 4)

	// Chronological regardless of input order.
	assert.Equal(t, "2024-01-01", points[0].Date)
	assert.InDelta(t, 90.0, points[0].Bankroll, 1e-9)
	assert.True(t, points[0].Won)
	assert.Equal(t, "Boston Celtics vs New York Knicks", points[0].Label)

	assert.InDelta(t, -10.0, points[1].Bankroll, 1e-9)
	assert.InDelta(t, -110.0, points[2].Bankroll, 1e-9)
	assert.InDelta(t, -20.0, points[3].Bankroll, 1e-9)
}

func TestComputeConfusion(t *testing.T) {
	c := ComputeConfusion(sampleHistory())

	assert.Equal(t, 4, c.Total)
	assert.Equal(t, 1, c.BothWon)
	assert.Equal(t, 1, c.UserOnly)
	assert.Equal(t, 1, c.AIOnly)
	assert.Equal(t, 1, c.BothLost)

	assert.Equal(t, []int64{1}, c.Matches["both_won"])
	assert.Equal(t, []int64{4}, c.Matches["user_only"])
	assert.Equal(t, []int64{3}, c.Matches["ai_only"])
	assert.Equal(t, []int64{2}, c.Matches["both_lost"])
}

func TestComputeTeamPerformance(t *testing.T) {
	perf := ComputeTeamPerformance(sampleHistory())

	// Jazz game is unfinished; Knicks have 2 finished games, below the
	// minimum sample, so only Celtics and Heat survive.
	require.Len(t, perf, 2)

	byTeam := map[string]TeamPerformance{}
	for _, tp := range perf {
		byTeam[tp.Team] = tp
	}

	celtics := byTeam["Boston Celtics"]
	assert.Equal(t, 3, celtics.Games)
	assert.Equal(t, 2, celtics.AIWins)
	assert.Equal(t, 1, celtics.UserBets)
	assert.Equal(t, 1, celtics.UserWins)
	assert.InDelta(t, 90.0, celtics.PnL, 1e-9)

	heat := byTeam["Miami Heat"]
	assert.Equal(t, 3, heat.Games)
	assert.Equal(t, 2, heat.UserBets)
	assert.Equal(t, 0, heat.UserWins)
	assert.InDelta(t, -200.0, heat.PnL, 1e-9)

	// Sorted by PnL descending.
	assert.Equal(t, "Boston Celtics", perf[0].Team)
}

func TestComputeReasonPerformance(t *testing.T) {
	history := sampleHistory()
	history[0].UserReason = strPtr("forme")
	history[1].UserReason = strPtr("stats")
	history[2].UserReason = strPtr("stats")
	history[3].UserReason = strPtr("intuition")

	perf := ComputeReasonPerformance(history)
	require.Len(t, perf, 3)

	// Most-used reason first.
	assert.Equal(t, "stats", perf[0].Reason)
	assert.Equal(t, 2, perf[0].Bets)
	assert.Equal(t, 1, perf[0].Wins)
	assert.InDelta(t, 50.0, perf[0].WinRate, 1e-9)
}

func boolPtr(b bool) *bool { return &b }

func TestComputeFatiguePerformance(t *testing.T) {
	history := sampleHistory()
	// Id 1: Celtics on a back-to-back. Id 2: Heat on one day of rest. Id 3
	// has away short rest but a home b2b, so the b2b bucket wins. Id 4 has
	// no rest context and stays fresh.
	history[1].HomeB2B = boolPtr(true)
	history[2].HomeRestDays = intPtr(1)
	history[0].HomeB2B = boolPtr(true)
	history[0].AwayRestDays = intPtr(1)

	buckets := ComputeFatiguePerformance(history)
	require.Len(t, buckets, 3)

	b2b := buckets[0]
	assert.Equal(t, "b2b", b2b.Key)
	assert.Equal(t, 2, b2b.Total) // ids 1 and 3
	assert.Equal(t, 2, b2b.AIWins)
	assert.InDelta(t, 100.0, b2b.AIAcc, 1e-9)
	assert.Equal(t, 1, b2b.UserWins) // user only got id 1 right
	assert.InDelta(t, 50.0, b2b.UserAcc, 1e-9)

	short := buckets[1]
	assert.Equal(t, "short_rest", short.Key)
	assert.Equal(t, 1, short.Total) // id 2
	assert.Equal(t, 0, short.AIWins)
	assert.Equal(t, 0, short.UserWins)

	fresh := buckets[2]
	assert.Equal(t, "fresh", fresh.Key)
	assert.Equal(t, 1, fresh.Total) // id 4; the unsettled Jazz game is skipped
	assert.Equal(t, 0, fresh.AIWins)
	assert.Equal(t, 1, fresh.UserWins)
}

func TestComputeEmptyHistory(t *testing.T) {
	d := Compute(nil)
	assert.Zero(t, d.KPI.UserBets)
	assert.Zero(t, d.KPI.Bankroll)
	assert.Empty(t, d.Bankroll)
	assert.Zero(t, d.Confusion.Total)
	assert.Empty(t, d.Teams)
	assert.Empty(t, d.Reasons)
	require.Len(t, d.Fatigue, 3)
	assert.Zero(t, d.Fatigue[0].Total)
}
