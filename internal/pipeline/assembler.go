// Package pipeline assembles schedule games and pitcher stats into
// output rows.
package pipeline

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/arubero/mlb-nrsi-prediction/internal/metrics"
	"github.com/arubero/mlb-nrsi-prediction/internal/models"
)

// NameResolver resolves a pitcher display name to a player id.
type NameResolver interface {
	Resolve(ctx context.Context, fullName string) (int, bool)
}

// StatsRetriever fetches the pitching stat block for a resolved player.
type StatsRetriever interface {
	Fetch(ctx context.Context, playerID int) models.PitchingStats
}

// Assembler turns games into flat output rows, one per game, enriching
// each side's probable pitcher sequentially. A fixed pause follows every
// game to stay under the upstream rate limit.
type Assembler struct {
	resolver  NameResolver
	retriever StatsRetriever
	pause     time.Duration

	// sleep is swappable so tests do not wait out the pause.
	sleep func(context.Context, time.Duration)
}

// NewAssembler creates an Assembler with the given inter-game pause.
func NewAssembler(resolver NameResolver, retriever StatsRetriever, pause time.Duration) *Assembler {
	return &Assembler{
		resolver:  resolver,
		retriever: retriever,
		pause:     pause,
		sleep:     sleepCtx,
	}
}

// Assemble builds one row per game, in schedule order. A game is never
// dropped: sides without an announced pitcher, or whose lookups fail,
// carry blank stat blocks.
func (a *Assembler) Assemble(ctx context.Context, games []models.Game) []models.Row {
	rows := make([]models.Row, 0, len(games))

	for _, game := range games {
		row := models.Row{
			GameID:      game.GameID,
			AwayName:    game.AwayName,
			HomeName:    game.HomeName,
			AwayPitcher: game.AwayPitcher,
			HomePitcher: game.HomePitcher,
			AwayStats:   a.enrich(ctx, game.AwayPitcher),
			HomeStats:   a.enrich(ctx, game.HomePitcher),
		}

		rows = append(rows, row)
		metrics.RowsAssembledTotal.Inc()
		log.Debug().
			Int("game_id", game.GameID).
			Str("away", game.AwayName).
			Str("home", game.HomeName).
			Msg("Row assembled")

		a.sleep(ctx, a.pause)
	}

	return rows
}

// enrich resolves one pitcher name and fetches its stat block. An absent
// name short-circuits without touching the resolver or retriever.
func (a *Assembler) enrich(ctx context.Context, pitcherName string) models.PitchingStats {
	if pitcherName == "" {
		return models.EmptyPitchingStats()
	}

	playerID, ok := a.resolver.Resolve(ctx, pitcherName)
	if !ok {
		return models.EmptyPitchingStats()
	}

	return a.retriever.Fetch(ctx, playerID)
}

// sleepCtx waits out the pause but returns early on cancellation.
func sleepCtx(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
