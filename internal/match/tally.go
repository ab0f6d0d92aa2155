package match

// DayTally is the AI-vs-user correctness count for one displayed date.
type DayTally struct {
	AIWins        int `json:"ai_wins"`
	UserWins      int `json:"user_wins"`
	TotalFinished int `json:"total_finished"`
}

// Tally counts, over one date's matches, how many finished with a
// determinable winner and how often the AI and the user picked it.
// Comparison is exact: inconsistent team-name casing between sources
// silently undercounts, a known fragility of the upstream data.
func Tally(matches []Match) DayTally {
	var t DayTally
	for _, m := range matches {
		winner, ok := m.Winner()
		if !ok {
			continue
		}
		t.TotalFinished++
		if m.PredictedWinner == winner {
			t.AIWins++
		}
		if m.UserPrediction != nil && *m.UserPrediction == winner {
			t.UserWins++
		}
	}
	return t
}
