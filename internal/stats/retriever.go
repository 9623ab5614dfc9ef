// Package stats retrieves season pitching statistics with a bounded
// retry budget.
package stats

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"

	"github.com/arubero/mlb-nrsi-prediction/internal/metrics"
	"github.com/arubero/mlb-nrsi-prediction/internal/models"
)

// StatsFetcher fetches the raw season pitching stat map for one player.
type StatsFetcher interface {
	FetchPlayerStats(ctx context.Context, playerID, season int) (map[string]any, error)
}

// Retriever fetches pitching stats, retrying transient failures a bounded
// number of times with a constant pause. Exhausting the budget yields the
// all-blank placeholder block; a failed lookup is never fatal to the job.
type Retriever struct {
	fetcher  StatsFetcher
	season   int
	attempts int
	pause    time.Duration

	// newBackOff is swappable so tests do not sleep.
	newBackOff func() backoff.BackOff
}

// New creates a Retriever. attempts is the total try budget (default 3
// in config); pause is the constant wait between tries.
func New(fetcher StatsFetcher, season, attempts int, pause time.Duration) *Retriever {
	if attempts < 1 {
		attempts = 1
	}
	r := &Retriever{
		fetcher:  fetcher,
		season:   season,
		attempts: attempts,
		pause:    pause,
	}
	r.newBackOff = func() backoff.BackOff {
		return backoff.NewConstantBackOff(r.pause)
	}
	return r
}

// Fetch returns the pitching stat block for a player, or the all-blank
// placeholder after the retry budget is spent.
func (r *Retriever) Fetch(ctx context.Context, playerID int) models.PitchingStats {
	var raw map[string]any

	operation := func() error {
		var err error
		raw, err = r.fetcher.FetchPlayerStats(ctx, playerID, r.season)
		return err
	}

	notify := func(err error, wait time.Duration) {
		metrics.StatsRetriesTotal.Inc()
		log.Warn().
			Err(err).
			Int("player_id", playerID).
			Dur("backoff", wait).
			Msg("Failed to fetch pitching stats, will retry")
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(r.newBackOff(), uint64(r.attempts-1)),
		ctx,
	)

	if err := backoff.RetryNotify(operation, policy, notify); err != nil {
		metrics.StatsPlaceholdersTotal.Inc()
		log.Warn().
			Err(err).
			Int("player_id", playerID).
			Int("attempts", r.attempts).
			Msg("Exhausted retries fetching pitching stats, using blank placeholders")
		return models.EmptyPitchingStats()
	}

	return models.PitchingStatsFromMap(raw)
}
