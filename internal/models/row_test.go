package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaderWidth(t *testing.T) {
	require.Len(t, Header, NumColumns, "header must span columns A through W")
	assert.Equal(t, "Game ID", Header[0])
	assert.Equal(t, "Away ERA", Header[5])
	assert.Equal(t, "Home ERA", Header[14])
	assert.Equal(t, "Home GS", Header[22])
}

func TestRow_ValuesLayout(t *testing.T) {
	row := Row{
		GameID:      745123,
		AwayName:    "Boston Red Sox",
		HomeName:    "New York Yankees",
		AwayPitcher: "Ace Lefty",
		HomePitcher: "Big Righty",
		AwayStats: PitchingStats{
			ERA: "3.45", WHIP: "1.12", StrikeoutsPer9: "9.8", WalksPer9: "2.1",
			HitsPer9: "7.9", RunsPer9: "3.6", HomeRunsPer9: "0.9",
			InningsPitched: "120.1", GamesStarted: "20",
		},
		HomeStats: PitchingStats{
			ERA: "2.98", WHIP: "1.05", StrikeoutsPer9: "10.4", WalksPer9: "1.8",
			HitsPer9: "7.1", RunsPer9: "3.0", HomeRunsPer9: "1.1",
			InningsPitched: "131.0", GamesStarted: "21",
		},
	}

	vals := row.Values()
	require.Len(t, vals, NumColumns)

	assert.Equal(t, 745123, vals[0])
	assert.Equal(t, "Boston Red Sox", vals[1])
	assert.Equal(t, "New York Yankees", vals[2])
	assert.Equal(t, "Ace Lefty", vals[3])
	assert.Equal(t, "Big Righty", vals[4])

	// Away stat block, columns F through N
	assert.Equal(t, "3.45", vals[5])
	assert.Equal(t, "20", vals[13])

	// Home stat block, columns O through W
	assert.Equal(t, "2.98", vals[14])
	assert.Equal(t, "21", vals[22])
}

func TestScheduleGame_ToGame(t *testing.T) {
	var sg ScheduleGame
	sg.GamePk = 1001
	sg.Teams.Away.Team.Name = "Away Club"
	sg.Teams.Home.Team.Name = "Home Club"
	sg.Teams.Home.ProbablePitcher = &struct {
		ID       int    `json:"id"`
		FullName string `json:"fullName"`
	}{ID: 7, FullName: "Home Starter"}

	game := sg.ToGame()

	assert.Equal(t, 1001, game.GameID)
	assert.Equal(t, "Away Club", game.AwayName)
	assert.Equal(t, "Home Club", game.HomeName)
	assert.Equal(t, "", game.AwayPitcher, "unannounced pitcher should be empty, not omitted")
	assert.Equal(t, "Home Starter", game.HomePitcher)
}
