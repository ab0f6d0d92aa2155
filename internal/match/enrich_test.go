package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseMatch() Match {
	return Match{
		ID:              1,
		GameDate:        "2025-01-05T00:00:00Z",
		HomeTeam:        "Oklahoma City Thunder",
		AwayTeam:        "Denver Nuggets",
		PredictedWinner: "Oklahoma City Thunder",
		Confidence:      "High",
	}
}

func TestEnrichOverlaysOfficialGame(t *testing.T) {
	official := GamesByKey([]OfficialGame{{
		ID:        900,
		GameDate:  "2025-01-05",
		HomeTeam:  "OKC",
		AwayTeam:  "DEN",
		HomeScore: intPtr(120),
		AwayScore: intPtr(112),
		Status:    StatusFinal,

		RestDaysHome:        intPtr(2),
		RestDaysAway:        intPtr(1),
		B2BHome:             boolPtr(false),
		B2BAway:             boolPtr(true),
		Last10HomeWins:      intPtr(8),
		Last10AwayWins:      intPtr(5),
		HomeWinRateSpecific: floatPtr(0.75),
		AwayWinRateSpecific: floatPtr(0.40),
	}})

	out := Enrich([]Match{baseMatch()}, official, nil)
	require.Len(t, out, 1)
	m := out[0]

	// Identity fields stay untouched.
	assert.Equal(t, int64(1), m.ID)
	assert.Equal(t, "Oklahoma City Thunder", m.HomeTeam)
	assert.Equal(t, "Denver Nuggets", m.AwayTeam)

	require.NotNil(t, m.HomeScore)
	assert.Equal(t, 120, *m.HomeScore)
	assert.Equal(t, StatusFinal, m.Status)
	require.NotNil(t, m.RealWinner)
	// Derived winner uses the match's own naming, not the feed abbreviation.
	assert.Equal(t, "Oklahoma City Thunder", *m.RealWinner)

	require.NotNil(t, m.AwayB2B)
	assert.True(t, *m.AwayB2B)
	require.NotNil(t, m.HomeLast10)
	assert.Equal(t, 8, *m.HomeLast10)
}

func TestEnrichProbesAbbreviationKey(t *testing.T) {
	// Game keyed by abbreviation only; the full-name probe misses, the
	// abbreviation probe hits.
	official := GamesByKey([]OfficialGame{{
		GameDate:  "2025-01-05",
		HomeTeam:  "OKC",
		HomeScore: intPtr(100),
		AwayScore: intPtr(90),
		Status:    StatusFinal,
	}})

	out := Enrich([]Match{baseMatch()}, official, nil)
	require.NotNil(t, out[0].RealWinner)
	assert.Equal(t, "Oklahoma City Thunder", *out[0].RealWinner)
}

func TestEnrichUnknownTeamIsNoOp(t *testing.T) {
	m := baseMatch()
	m.HomeTeam = "Seattle SuperSonics"

	official := GamesByKey([]OfficialGame{{
		GameDate: "2025-01-05",
		HomeTeam: "OKC",
		Status:   StatusFinal,
	}})

	out := Enrich([]Match{m}, official, nil)
	assert.Equal(t, m, out[0])
}

func TestEnrichKeepsExistingRealWinner(t *testing.T) {
	m := baseMatch()
	m.RealWinner = strPtr("Denver Nuggets")

	official := GamesByKey([]OfficialGame{{
		GameDate:  "2025-01-05",
		HomeTeam:  "OKC",
		HomeScore: intPtr(120),
		AwayScore: intPtr(112),
		Status:    StatusFinal,
	}})

	out := Enrich([]Match{m}, official, nil)
	require.NotNil(t, out[0].RealWinner)
	assert.Equal(t, "Denver Nuggets", *out[0].RealWinner)
}

func TestEnrichStandingsOverrideOfficialContext(t *testing.T) {
	official := GamesByKey([]OfficialGame{{
		GameDate:            "2025-01-05",
		HomeTeam:            "OKC",
		Last10HomeWins:      intPtr(6),
		HomeWinRateSpecific: floatPtr(0.50),
	}})
	standings := StandingsByTeam([]Standing{{
		TeamID:     1610612760,
		TeamName:   "Oklahoma City Thunder",
		Rank:       1,
		Record:     "30-6",
		Streak:     "W5",
		Last10:     "9-1",
		HomeRecord: "15-3",
	}, {
		TeamID:     1610612743,
		TeamName:   "Denver Nuggets",
		Rank:       4,
		Record:     "24-12",
		Streak:     "L2",
		Last10:     "6-4",
		RoadRecord: "10-10",
	}})

	out := Enrich([]Match{baseMatch()}, official, standings)
	m := out[0]

	// Standings-derived values win over the official per-game context.
	require.NotNil(t, m.HomeLast10)
	assert.Equal(t, 9, *m.HomeLast10)
	require.NotNil(t, m.HomeWinRate)
	assert.InDelta(t, 15.0/18.0, *m.HomeWinRate, 1e-9)

	require.NotNil(t, m.HomeRank)
	assert.Equal(t, 1, *m.HomeRank)
	require.NotNil(t, m.AwayStreak)
	assert.Equal(t, "L2", *m.AwayStreak)
	require.NotNil(t, m.AwayWinRate)
	assert.InDelta(t, 0.5, *m.AwayWinRate, 1e-9)
	require.NotNil(t, m.AwayID)
	assert.Equal(t, 1610612743, *m.AwayID)
}

func TestEnrichMalformedRecordLeavesPriorValue(t *testing.T) {
	official := GamesByKey([]OfficialGame{{
		GameDate:       "2025-01-05",
		HomeTeam:       "OKC",
		Last10HomeWins: intPtr(6),
	}})
	standings := StandingsByTeam([]Standing{{
		TeamName: "Oklahoma City Thunder",
		Last10:   "N/A",
	}})

	out := Enrich([]Match{baseMatch()}, official, standings)
	require.NotNil(t, out[0].HomeLast10)
	assert.Equal(t, 6, *out[0].HomeLast10)
	assert.Nil(t, out[0].HomeWinRate)
}

func TestEnrichIsIdempotent(t *testing.T) {
	official := GamesByKey([]OfficialGame{{
		GameDate:  "2025-01-05",
		HomeTeam:  "OKC",
		HomeScore: intPtr(110),
		AwayScore: intPtr(108),
		Status:    StatusFinal,
	}})
	standings := StandingsByTeam([]Standing{{
		TeamName: "Oklahoma City Thunder",
		Rank:     2,
		Record:   "28-8",
		Last10:   "7-3",
	}})

	once := Enrich([]Match{baseMatch()}, official, standings)
	twice := Enrich(once, official, standings)
	assert.Equal(t, once, twice)
}

func TestEnrichDoesNotMutateInput(t *testing.T) {
	in := []Match{baseMatch()}
	official := GamesByKey([]OfficialGame{{
		GameDate:  "2025-01-05",
		HomeTeam:  "OKC",
		HomeScore: intPtr(99),
		AwayScore: intPtr(98),
		Status:    StatusFinal,
	}})

	_ = Enrich(in, official, nil)
	assert.Nil(t, in[0].HomeScore)
	assert.Nil(t, in[0].RealWinner)
}

func TestParseWinLoss(t *testing.T) {
	w, l, ok := ParseWinLoss("10-5")
	require.True(t, ok)
	assert.Equal(t, 10, w)
	assert.Equal(t, 5, l)

	for _, s := range []string{"", "N/A", "10", "-5", "10-", "a-b"} {
		_, _, ok := ParseWinLoss(s)
		assert.False(t, ok, "input %q", s)
	}
}
