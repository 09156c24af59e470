// Package feed fetches match data from a vlrggapi-compatible endpoint.
// The feed exposes three query modes (upcoming, live, results) that all
// return the same envelope: {"data": {"segments": [...]}}. Any non-success
// response or malformed payload is reported as ErrNoData; callers are
// expected to retry on their next cycle rather than treat it as fatal.
package feed

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/vlrbet/vlrbet/internal/config"
	"github.com/vlrbet/vlrbet/pkg/clients"
)

// ErrNoData means the feed had nothing usable this time. Never terminal.
var ErrNoData = errors.New("no match data available")

const (
	queryUpcoming = "upcoming"
	queryLive     = "live_score"
	queryResults  = "results"
)

// Match is a single match record. Which fields are populated depends on
// the query mode: TimeUntil for upcoming, round breakdowns and CurrentMap
// for live, scores and TimeCompleted for results.
type Match struct {
	Event         string
	Series        string
	Team1         string
	Team2         string
	Score1        int
	Score2        int
	MatchPath     string
	TimeUntil     string
	TimeCompleted string
	CurrentMap    string
	Team1RoundsCT int
	Team1RoundsT  int
	Team2RoundsCT int
	Team2RoundsT  int
}

// TeamRank is one row of a regional ranking table.
type TeamRank struct {
	Rank       int
	Team       string
	LastPlayed string
	Earnings   string
}

type Client struct {
	baseURL string
	client  clients.HTTPClientI
}

func New(cfg *config.Config, client clients.HTTPClientI) *Client {
	return &Client{
		baseURL: cfg.FeedAddress,
		client:  client,
	}
}

type segment struct {
	// Upcoming and live records carry the event under match_event, results
	// under tournament_name. Same duplication for the series/round label.
	MatchEvent     string `json:"match_event"`
	TournamentName string `json:"tournament_name"`
	MatchSeries    string `json:"match_series"`
	RoundInfo      string `json:"round_info"`

	Team1  string `json:"team1"`
	Team2  string `json:"team2"`
	Score1 string `json:"score1"`
	Score2 string `json:"score2"`

	MatchPage      string `json:"match_page"`
	TimeUntilMatch string `json:"time_until_match"`
	TimeCompleted  string `json:"time_completed"`
	CurrentMap     string `json:"current_map"`

	Team1RoundCT string `json:"team1_round_ct"`
	Team1RoundT  string `json:"team1_round_t"`
	Team2RoundCT string `json:"team2_round_ct"`
	Team2RoundT  string `json:"team2_round_t"`
}

type matchPayload struct {
	Data struct {
		Segments []segment `json:"segments"`
	} `json:"data"`
}

// Upcoming returns matches that have not started yet.
func (c *Client) Upcoming(ctx context.Context) ([]Match, error) {
	return c.fetch(ctx, queryUpcoming)
}

// Live returns matches currently in progress.
func (c *Client) Live(ctx context.Context) ([]Match, error) {
	return c.fetch(ctx, queryLive)
}

// Results returns recently completed matches with final scores.
func (c *Client) Results(ctx context.Context) ([]Match, error) {
	return c.fetch(ctx, queryResults)
}

func (c *Client) fetch(ctx context.Context, mode string) ([]Match, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	statusCode, body, _, err := c.client.Get(c.baseURL+"/match?q="+mode, nil)
	if err != nil {
		return nil, errors.Join(ErrNoData, err)
	}
	if statusCode != http.StatusOK {
		return nil, ErrNoData
	}

	var payload matchPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, errors.Join(ErrNoData, err)
	}
	if payload.Data.Segments == nil {
		return nil, ErrNoData
	}

	matches := make([]Match, 0, len(payload.Data.Segments))
	for _, seg := range payload.Data.Segments {
		matches = append(matches, seg.toMatch())
	}
	return matches, nil
}

func (s segment) toMatch() Match {
	event := s.MatchEvent
	if event == "" {
		event = s.TournamentName
	}
	series := s.MatchSeries
	if series == "" {
		series = s.RoundInfo
	}
	return Match{
		Event:         event,
		Series:        series,
		Team1:         s.Team1,
		Team2:         s.Team2,
		Score1:        scoreVal(s.Score1),
		Score2:        scoreVal(s.Score2),
		MatchPath:     NormalizePath(s.MatchPage),
		TimeUntil:     s.TimeUntilMatch,
		TimeCompleted: s.TimeCompleted,
		CurrentMap:    s.CurrentMap,
		Team1RoundsCT: scoreVal(s.Team1RoundCT),
		Team1RoundsT:  scoreVal(s.Team1RoundT),
		Team2RoundsCT: scoreVal(s.Team2RoundCT),
		Team2RoundsT:  scoreVal(s.Team2RoundT),
	}
}

// scoreVal parses a score field, defaulting missing or non-numeric values
// ("", "N/A", garbage) to 0 so malformed records never fail a cycle.
func scoreVal(v string) int {
	if v == "" || v == "N/A" {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0
	}
	return n
}

// NormalizePath canonicalizes a match locator. The feed reports the same
// match either as a full URL or a bare path depending on the endpoint, so
// every comparison and storage key goes through this. Malformed input is
// passed through unchanged.
func NormalizePath(locator string) string {
	if locator == "" {
		return locator
	}
	if strings.HasPrefix(locator, "http") {
		u, err := url.Parse(locator)
		if err != nil {
			return locator
		}
		return u.Path
	}
	return locator
}

type rankingsPayload struct {
	Data []struct {
		Rank           string `json:"rank"`
		Team           string `json:"team"`
		LastPlayedTeam string `json:"last_played_team"`
		Earnings       string `json:"earnings"`
	} `json:"data"`
}

// Rankings returns the ranking table for a region code (na, eu, ap, ...).
func (c *Client) Rankings(ctx context.Context, region string) ([]TeamRank, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	statusCode, body, _, err := c.client.Get(c.baseURL+"/rankings?region="+url.QueryEscape(region), nil)
	if err != nil {
		return nil, errors.Join(ErrNoData, err)
	}
	if statusCode != http.StatusOK {
		return nil, ErrNoData
	}

	var payload rankingsPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, errors.Join(ErrNoData, err)
	}
	if payload.Data == nil {
		return nil, ErrNoData
	}

	ranks := make([]TeamRank, 0, len(payload.Data))
	for _, row := range payload.Data {
		ranks = append(ranks, TeamRank{
			Rank:       scoreVal(row.Rank),
			Team:       row.Team,
			LastPlayed: row.LastPlayedTeam,
			Earnings:   row.Earnings,
		})
	}
	return ranks, nil
}
