package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/arubero/mlb-nrsi-prediction/internal/metrics"
	"github.com/arubero/mlb-nrsi-prediction/internal/models"
)

// Client is the MLB Stats API client. It carries no retry policy of its
// own: the stats retriever owns the retry budget, and the resolver path
// must never retry.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new MLB Stats API client
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// get performs a GET request against the Stats API and returns the body.
// endpoint is the coarse metric label; path may embed ids.
func (c *Client) get(ctx context.Context, path, endpoint string, params map[string]string) ([]byte, error) {
	url := fmt.Sprintf("%s/%s", c.baseURL, path)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "nrsi-sheetsync/1.0")

	if len(params) > 0 {
		q := req.URL.Query()
		for key, value := range params {
			q.Add(key, value)
		}
		req.URL.RawQuery = q.Encode()
	}

	log.Debug().
		Str("url", url).
		Str("method", req.Method).
		Msg("Making API request")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordAPICall(endpoint, "error", time.Since(start).Seconds())
		return nil, fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.RecordAPICall(endpoint, "error", time.Since(start).Seconds())
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	metrics.RecordAPICall(endpoint, fmt.Sprintf("%d", resp.StatusCode), time.Since(start).Seconds())

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}

	log.Debug().
		Str("url", url).
		Int("status", resp.StatusCode).
		Int("size", len(body)).
		Msg("API request successful")
	return body, nil
}

// FetchSchedule fetches the game schedule for a date window. Dates are
// MM/DD/YYYY as the Stats API expects. Probable pitchers are hydrated in.
func (c *Client) FetchSchedule(ctx context.Context, startDate, endDate string) ([]models.Game, error) {
	body, err := c.get(ctx, "schedule", "schedule", map[string]string{
		"sportId":   "1",
		"startDate": startDate,
		"endDate":   endDate,
		"hydrate":   "probablePitcher",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedule: %w", err)
	}

	var schedule models.ScheduleResponse
	if err := json.Unmarshal(body, &schedule); err != nil {
		return nil, fmt.Errorf("failed to unmarshal schedule: %w", err)
	}

	var games []models.Game
	for _, date := range schedule.Dates {
		for i := range date.Games {
			games = append(games, date.Games[i].ToGame())
		}
	}

	return games, nil
}

// FetchSeasonPlayers fetches the full season roster listing used for
// name-to-id resolution.
func (c *Client) FetchSeasonPlayers(ctx context.Context, season int) ([]models.Player, error) {
	body, err := c.get(ctx, "sports/1/players", "players", map[string]string{
		"season":   fmt.Sprintf("%d", season),
		"gameType": "W",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch season players: %w", err)
	}

	var players models.PlayersResponse
	if err := json.Unmarshal(body, &players); err != nil {
		return nil, fmt.Errorf("failed to unmarshal season players: %w", err)
	}

	return players.People, nil
}

// personResponse mirrors the /people/{id} payload with hydrated stats.
type personResponse struct {
	People []struct {
		Stats []struct {
			Splits []struct {
				Stat map[string]any `json:"stat"`
			} `json:"splits"`
		} `json:"stats"`
	} `json:"people"`
}

// FetchPlayerStats fetches season pitching aggregate stats for one player
// and returns the raw stat map of the first split.
func (c *Client) FetchPlayerStats(ctx context.Context, playerID, season int) (map[string]any, error) {
	path := fmt.Sprintf("people/%d", playerID)
	hydrate := fmt.Sprintf("stats(group=[pitching],type=[season],sportId=1,season=%d)", season)

	body, err := c.get(ctx, path, "people", map[string]string{"hydrate": hydrate})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch player stats: %w", err)
	}

	var person personResponse
	if err := json.Unmarshal(body, &person); err != nil {
		return nil, fmt.Errorf("failed to unmarshal player stats: %w", err)
	}

	if len(person.People) == 0 || len(person.People[0].Stats) == 0 || len(person.People[0].Stats[0].Splits) == 0 {
		return nil, fmt.Errorf("no season pitching stats for player %d", playerID)
	}

	return person.People[0].Stats[0].Splits[0].Stat, nil
}
