// Package resolver maps player display names to their stable MLB ids.
package resolver

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/arubero/mlb-nrsi-prediction/internal/metrics"
	"github.com/arubero/mlb-nrsi-prediction/internal/models"
)

// RosterFetcher fetches the full season roster listing.
type RosterFetcher interface {
	FetchSeasonPlayers(ctx context.Context, season int) ([]models.Player, error)
}

// Resolver resolves player names to ids, memoizing hits for the lifetime
// of the job. Lookups never retry and never fail the run: a fetch error
// or an unmatched name yields an absent id.
type Resolver struct {
	fetcher RosterFetcher
	season  int
	cache   map[string]int
}

// New creates a Resolver for one season.
func New(fetcher RosterFetcher, season int) *Resolver {
	return &Resolver{
		fetcher: fetcher,
		season:  season,
		cache:   make(map[string]int),
	}
}

// Resolve returns the player id for a display name, and whether one was
// found. Cached names do not touch the roster endpoint again.
func (r *Resolver) Resolve(ctx context.Context, fullName string) (int, bool) {
	if id, ok := r.cache[fullName]; ok {
		metrics.PlayerCacheHitsTotal.Inc()
		return id, true
	}
	metrics.PlayerCacheMissesTotal.Inc()

	players, err := r.fetcher.FetchSeasonPlayers(ctx, r.season)
	if err != nil {
		log.Warn().
			Err(err).
			Str("player", fullName).
			Int("season", r.season).
			Msg("Failed to fetch season roster for player lookup")
		return 0, false
	}

	for _, p := range players {
		if p.FullName == fullName {
			r.cache[fullName] = p.ID
			return p.ID, true
		}
	}

	log.Warn().
		Str("player", fullName).
		Int("season", r.season).
		Msg("Player not found in season roster")
	return 0, false
}

// CacheSize reports how many names have been resolved so far.
func (r *Resolver) CacheSize() int {
	return len(r.cache)
}
