package bdl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
)

// NBAHandler fetches games, standings and the active roster from BallDontLie.
type NBAHandler struct {
	client *client
	logger *slog.Logger
}

// NewNBAHandler creates an NBA handler with the given API key.
func NewNBAHandler(apiKey string, logger *slog.Logger) *NBAHandler {
	return &NBAHandler{
		client: newClient(apiKey, 600, logger),
		logger: logger,
	}
}

// --------------------------------------------------------------------------
// Games
// --------------------------------------------------------------------------

type teamRef struct {
	ID           int    `json:"id"`
	FullName     string `json:"full_name"`
	Abbreviation string `json:"abbreviation"`
}

type gameRaw struct {
	ID           int64   `json:"id"`
	Date         string  `json:"date"` // "2025-01-05"
	Season       int     `json:"season"`
	Status       string  `json:"status"` // "Final", tip-off time, or quarter
	Postseason   bool    `json:"postseason"`
	HomeTeam     teamRef `json:"home_team"`
	VisitorTeam  teamRef `json:"visitor_team"`
	HomeScore    int     `json:"home_team_score"`
	VisitorScore int     `json:"visitor_team_score"`
}

// Game is one official NBA game as reported by BDL.
type Game struct {
	ID        int64
	Date      string // YYYY-MM-DD
	Status    string
	HomeTeam  string // abbreviation
	AwayTeam  string
	HomeFull  string // full franchise name
	AwayFull  string
	HomeScore int
	AwayScore int
	Final     bool
}

// GetGames fetches all games between startDate and endDate inclusive
// (YYYY-MM-DD), following cursor pagination.
func (h *NBAHandler) GetGames(ctx context.Context, startDate, endDate string) ([]Game, error) {
	params := url.Values{
		"start_date": {startDate},
		"end_date":   {endDate},
	}

	var games []Game
	err := h.client.getAll(ctx, "/games", params, func(data json.RawMessage) error {
		var raw []gameRaw
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("decode games: %w", err)
		}
		for _, g := range raw {
			games = append(games, Game{
				ID:        g.ID,
				Date:      truncDate(g.Date),
				Status:    g.Status,
				HomeTeam:  g.HomeTeam.Abbreviation,
				AwayTeam:  g.VisitorTeam.Abbreviation,
				HomeFull:  g.HomeTeam.FullName,
				AwayFull:  g.VisitorTeam.FullName,
				HomeScore: g.HomeScore,
				AwayScore: g.VisitorScore,
				Final:     g.Status == "Final",
			})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("fetch NBA games: %w", err)
	}
	return games, nil
}

// --------------------------------------------------------------------------
// Standings
// --------------------------------------------------------------------------

type standingRaw struct {
	Team           teamRef `json:"team"`
	Conference     string  `json:"conference"`
	ConferenceRank int     `json:"conference_rank"`
	Wins           int     `json:"wins"`
	Losses         int     `json:"losses"`
	HomeRecord     string  `json:"home_record"`
	RoadRecord     string  `json:"road_record"`
	Season         int     `json:"season"`
}

// Standing is one franchise's season summary as reported by BDL. Streak and
// last-10 are not part of the feed; the sync layer derives them from recent
// games.
type Standing struct {
	TeamID     int
	TeamName   string // full franchise name
	Conference string
	Rank       int
	Wins       int
	Losses     int
	HomeRecord string
	RoadRecord string
}

// GetStandings fetches the season standings.
func (h *NBAHandler) GetStandings(ctx context.Context, season int) ([]Standing, error) {
	params := url.Values{"season": {strconv.Itoa(season)}}

	var standings []Standing
	err := h.client.getAll(ctx, "/standings", params, func(data json.RawMessage) error {
		var raw []standingRaw
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("decode standings: %w", err)
		}
		for _, s := range raw {
			standings = append(standings, Standing{
				TeamID:     s.Team.ID,
				TeamName:   s.Team.FullName,
				Conference: s.Conference,
				Rank:       s.ConferenceRank,
				Wins:       s.Wins,
				Losses:     s.Losses,
				HomeRecord: s.HomeRecord,
				RoadRecord: s.RoadRecord,
			})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("fetch NBA standings: %w", err)
	}
	return standings, nil
}

// --------------------------------------------------------------------------
// Players (cursor-paginated)
// --------------------------------------------------------------------------

type playerRaw struct {
	ID        int64    `json:"id"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Position  string   `json:"position"`
	Team      *teamRef `json:"team"`
}

// Player is one active roster entry.
type Player struct {
	ID       int64
	FullName string
	Position string
	TeamID   int
}

// GetActivePlayers iterates the active roster via cursor pagination,
// calling fn for each player.
func (h *NBAHandler) GetActivePlayers(ctx context.Context, fn func(Player) error) error {
	err := h.client.getAll(ctx, "/players/active", nil, func(data json.RawMessage) error {
		var raw []playerRaw
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("decode players: %w", err)
		}
		for _, p := range raw {
			player := Player{
				ID:       p.ID,
				FullName: p.FirstName + " " + p.LastName,
				Position: p.Position,
			}
			if p.Team != nil {
				player.TeamID = p.Team.ID
			}
			if err := fn(player); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("fetch NBA players: %w", err)
	}
	return nil
}

// truncDate reduces an ISO timestamp to its date component.
func truncDate(s string) string {
	if len(s) < 10 {
		return s
	}
	return s[:10]
}
