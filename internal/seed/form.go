package seed

import (
	"fmt"
	"sort"
	"time"

	"github.com/nbaiagent/agent-data/internal/provider/bdl"
)

// appearance is one team's side of a game, used to derive schedule context.
type appearance struct {
	Date  string
	Home  bool
	Won   bool
	Final bool
}

// schedules splits games into per-team appearance lists keyed by team
// abbreviation, sorted by date ascending.
func schedules(games []bdl.Game) map[string][]appearance {
	byTeam := make(map[string][]appearance)
	for _, g := range games {
		homeWon := g.Final && g.HomeScore > g.AwayScore
		byTeam[g.HomeTeam] = append(byTeam[g.HomeTeam], appearance{
			Date: g.Date, Home: true, Won: homeWon, Final: g.Final,
		})
		byTeam[g.AwayTeam] = append(byTeam[g.AwayTeam], appearance{
			Date: g.Date, Home: false, Won: g.Final && !homeWon, Final: g.Final,
		})
	}
	for _, apps := range byTeam {
		sort.Slice(apps, func(i, j int) bool { return apps[i].Date < apps[j].Date })
	}
	return byTeam
}

func daysBetween(from, to string) (int, bool) {
	a, err := time.Parse("2006-01-02", from)
	if err != nil {
		return 0, false
	}
	b, err := time.Parse("2006-01-02", to)
	if err != nil {
		return 0, false
	}
	return int(b.Sub(a).Hours() / 24), true
}

// restDays returns the days since the team's previous game before date,
// or nil when no earlier game is known.
func restDays(apps []appearance, date string) *int {
	prev := ""
	for _, a := range apps {
		if a.Date >= date {
			break
		}
		prev = a.Date
	}
	if prev == "" {
		return nil
	}
	d, ok := daysBetween(prev, date)
	if !ok {
		return nil
	}
	return &d
}

// lastNWins counts wins in the team's most recent n finished games before date.
func lastNWins(apps []appearance, date string, n int) int {
	wins, seen := 0, 0
	for i := len(apps) - 1; i >= 0 && seen < n; i-- {
		a := apps[i]
		if a.Date >= date || !a.Final {
			continue
		}
		seen++
		if a.Won {
			wins++
		}
	}
	return wins
}

// venueWinRate is the team's win rate before date at home or on the road,
// nil when no finished game at that venue is known.
func venueWinRate(apps []appearance, date string, home bool) *float64 {
	wins, total := 0, 0
	for _, a := range apps {
		if a.Date >= date || !a.Final || a.Home != home {
			continue
		}
		total++
		if a.Won {
			wins++
		}
	}
	if total == 0 {
		return nil
	}
	rate := float64(wins) / float64(total)
	return &rate
}

// streakOf renders the current run of results as "W3" or "L2", empty when
// the team has no finished games in the window.
func streakOf(apps []appearance) string {
	length := 0
	var won bool
	for i := len(apps) - 1; i >= 0; i-- {
		a := apps[i]
		if !a.Final {
			continue
		}
		if length == 0 {
			won = a.Won
		} else if a.Won != won {
			break
		}
		length++
	}
	if length == 0 {
		return ""
	}
	if won {
		return fmt.Sprintf("W%d", length)
	}
	return fmt.Sprintf("L%d", length)
}

// last10Of renders the last ten finished results as "7-3".
func last10Of(apps []appearance) string {
	wins, seen := 0, 0
	for i := len(apps) - 1; i >= 0 && seen < 10; i-- {
		a := apps[i]
		if !a.Final {
			continue
		}
		seen++
		if a.Won {
			wins++
		}
	}
	if seen == 0 {
		return ""
	}
	return fmt.Sprintf("%d-%d", wins, seen-wins)
}
