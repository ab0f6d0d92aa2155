package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTallyCountsFinishedMatchesOnly(t *testing.T) {
	matches := []Match{
		// AI right, user right
		{
			PredictedWinner: "Boston Celtics",
			UserPrediction:  strPtr("Boston Celtics"),
			RealWinner:      strPtr("Boston Celtics"),
		},
		// AI right, user wrong
		{
			PredictedWinner: "Miami Heat",
			UserPrediction:  strPtr("Chicago Bulls"),
			RealWinner:      strPtr("Miami Heat"),
		},
		// AI wrong, no user pick; winner derived from Final scores
		{
			HomeTeam:        "Utah Jazz",
			AwayTeam:        "Phoenix Suns",
			PredictedWinner: "Phoenix Suns",
			Status:          StatusFinal,
			HomeScore:       intPtr(110),
			AwayScore:       intPtr(104),
		},
		// Not finished: excluded entirely
		{
			PredictedWinner: "Denver Nuggets",
			Status:          StatusScheduled,
		},
	}

	tally := Tally(matches)
	assert.Equal(t, 3, tally.TotalFinished)
	assert.Equal(t, 2, tally.AIWins)
	assert.Equal(t, 1, tally.UserWins)
}

func TestWinnerRequiresScoresWhenNotExplicit(t *testing.T) {
	m := Match{Status: StatusFinal}
	_, ok := m.Winner()
	assert.False(t, ok)

	m.RealWinner = strPtr("")
	_, ok = m.Winner()
	assert.False(t, ok)
}
