package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arubero/mlb-nrsi-prediction/internal/models"
)

type fakeResolver struct {
	ids   map[string]int
	calls []string
}

func (f *fakeResolver) Resolve(ctx context.Context, fullName string) (int, bool) {
	f.calls = append(f.calls, fullName)
	id, ok := f.ids[fullName]
	return id, ok
}

type fakeRetriever struct {
	stats map[int]models.PitchingStats
	calls []int
}

func (f *fakeRetriever) Fetch(ctx context.Context, playerID int) models.PitchingStats {
	f.calls = append(f.calls, playerID)
	return f.stats[playerID]
}

func newTestAssembler(r *fakeResolver, s *fakeRetriever) *Assembler {
	a := NewAssembler(r, s, 500*time.Millisecond)
	a.sleep = func(context.Context, time.Duration) {}
	return a
}

func TestAssembler_Assemble(t *testing.T) {
	res := &fakeResolver{ids: map[string]int{
		"Ace Lefty":  101,
		"Big Righty": 202,
	}}
	ret := &fakeRetriever{stats: map[int]models.PitchingStats{
		101: {ERA: "3.45", WHIP: "1.12", GamesStarted: "20"},
		202: {ERA: "2.98", WHIP: "1.05", GamesStarted: "21"},
	}}
	a := newTestAssembler(res, ret)

	games := []models.Game{{
		GameID:      745123,
		AwayName:    "Boston Red Sox",
		HomeName:    "New York Yankees",
		AwayPitcher: "Ace Lefty",
		HomePitcher: "Big Righty",
	}}

	rows := a.Assemble(context.Background(), games)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, 745123, row.GameID)
	assert.Equal(t, "3.45", row.AwayStats.ERA)
	assert.Equal(t, "2.98", row.HomeStats.ERA)
	assert.Equal(t, []string{"Ace Lefty", "Big Righty"}, res.calls)
	assert.Equal(t, []int{101, 202}, ret.calls)

	vals := row.Values()
	require.Len(t, vals, models.NumColumns, "one flat row, 23 positional fields")
	assert.Equal(t, "1.12", vals[6])
	assert.Equal(t, "21", vals[22])
}

func TestAssembler_MissingAwayPitcher(t *testing.T) {
	res := &fakeResolver{ids: map[string]int{"Big Righty": 202}}
	ret := &fakeRetriever{stats: map[int]models.PitchingStats{
		202: {ERA: "2.98"},
	}}
	a := newTestAssembler(res, ret)

	games := []models.Game{{
		GameID:      1,
		AwayName:    "Away Club",
		HomeName:    "Home Club",
		HomePitcher: "Big Righty",
	}}

	rows := a.Assemble(context.Background(), games)
	require.Len(t, rows, 1, "a missing pitcher never drops the row")

	assert.Equal(t, models.EmptyPitchingStats(), rows[0].AwayStats)
	assert.Equal(t, []string{"Big Righty"}, res.calls, "no resolver call for the missing side")
	assert.Equal(t, []int{202}, ret.calls, "no stats call for the missing side")

	for _, v := range rows[0].AwayStats.Values() {
		assert.Equal(t, "", v)
	}
}

func TestAssembler_UnresolvedPitcher(t *testing.T) {
	res := &fakeResolver{ids: map[string]int{}}
	ret := &fakeRetriever{}
	a := newTestAssembler(res, ret)

	games := []models.Game{{
		GameID:      2,
		AwayPitcher: "Unknown Arm",
		HomePitcher: "Also Unknown",
	}}

	rows := a.Assemble(context.Background(), games)
	require.Len(t, rows, 1)

	assert.Equal(t, models.EmptyPitchingStats(), rows[0].AwayStats)
	assert.Equal(t, models.EmptyPitchingStats(), rows[0].HomeStats)
	assert.Empty(t, ret.calls, "an unresolved id skips the stats step")
}

func TestAssembler_PreservesOrder(t *testing.T) {
	res := &fakeResolver{ids: map[string]int{}}
	ret := &fakeRetriever{}
	a := newTestAssembler(res, ret)

	games := []models.Game{
		{GameID: 30},
		{GameID: 10},
		{GameID: 20},
	}

	rows := a.Assemble(context.Background(), games)
	require.Len(t, rows, 3)
	assert.Equal(t, 30, rows[0].GameID)
	assert.Equal(t, 10, rows[1].GameID)
	assert.Equal(t, 20, rows[2].GameID)
}

func TestAssembler_PausesBetweenGames(t *testing.T) {
	res := &fakeResolver{ids: map[string]int{}}
	ret := &fakeRetriever{}
	a := NewAssembler(res, ret, 500*time.Millisecond)

	var pauses []time.Duration
	a.sleep = func(_ context.Context, d time.Duration) {
		pauses = append(pauses, d)
	}

	a.Assemble(context.Background(), []models.Game{{GameID: 1}, {GameID: 2}})

	require.Len(t, pauses, 2, "one pause after every game")
	assert.Equal(t, 500*time.Millisecond, pauses[0])
}
