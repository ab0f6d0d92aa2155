package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nbaiagent/agent-data/internal/provider/bdl"
)

func game(id int64, date, home, away string, homeScore, awayScore int, final bool) bdl.Game {
	status := "Scheduled"
	if final {
		status = "Final"
	}
	return bdl.Game{
		ID: id, Date: date, Status: status,
		HomeTeam: home, AwayTeam: away,
		HomeScore: homeScore, AwayScore: awayScore,
		Final: final,
	}
}

func bosSchedule() []appearance {
	byTeam := schedules([]bdl.Game{
		game(1, "2025-01-01", "BOS", "MIA", 100, 90, true),  // home W
		game(2, "2025-01-02", "NYK", "BOS", 105, 99, true),  // road L
		game(3, "2025-01-04", "BOS", "PHI", 112, 108, true), // home W
		game(4, "2025-01-06", "BOS", "CHI", 0, 0, false),    // scheduled
	})
	return byTeam["BOS"]
}

func TestSchedulesSplitPerTeam(t *testing.T) {
	apps := bosSchedule()
	require.Len(t, apps, 4)
	assert.Equal(t, "2025-01-01", apps[0].Date)
	assert.True(t, apps[0].Home)
	assert.True(t, apps[0].Won)
	assert.False(t, apps[1].Home)
	assert.False(t, apps[1].Won)
	assert.False(t, apps[3].Final)
}

func TestRestDays(t *testing.T) {
	apps := bosSchedule()

	rd := restDays(apps, "2025-01-02")
	require.NotNil(t, rd)
	assert.Equal(t, 1, *rd) // back-to-back

	rd = restDays(apps, "2025-01-04")
	require.NotNil(t, rd)
	assert.Equal(t, 2, *rd)

	assert.Nil(t, restDays(apps, "2025-01-01"))
}

func TestLastNWinsIgnoresUnfinishedAndFutureGames(t *testing.T) {
	apps := bosSchedule()
	assert.Equal(t, 2, lastNWins(apps, "2025-01-06", 10))
	assert.Equal(t, 1, lastNWins(apps, "2025-01-02", 10))
	assert.Equal(t, 0, lastNWins(apps, "2025-01-01", 10))
}

func TestVenueWinRate(t *testing.T) {
	apps := bosSchedule()

	homeRate := venueWinRate(apps, "2025-01-06", true)
	require.NotNil(t, homeRate)
	assert.InDelta(t, 1.0, *homeRate, 1e-9) // 2-0 at home

	roadRate := venueWinRate(apps, "2025-01-06", false)
	require.NotNil(t, roadRate)
	assert.InDelta(t, 0.0, *roadRate, 1e-9) // 0-1 on the road

	assert.Nil(t, venueWinRate(apps, "2025-01-01", true))
}

func TestStreakAndLast10(t *testing.T) {
	apps := bosSchedule()
	// W L W, unfinished game ignored: streak is the trailing W run.
	assert.Equal(t, "W1", streakOf(apps))
	assert.Equal(t, "2-1", last10Of(apps))

	losing := schedules([]bdl.Game{
		game(1, "2025-01-01", "WAS", "BOS", 100, 90, true),
		game(2, "2025-01-02", "WAS", "MIA", 100, 110, true),
		game(3, "2025-01-03", "WAS", "NYK", 95, 99, true),
	})["WAS"]
	assert.Equal(t, "L2", streakOf(losing))
	assert.Equal(t, "1-2", last10Of(losing))

	assert.Equal(t, "", streakOf(nil))
	assert.Equal(t, "", last10Of(nil))
}
