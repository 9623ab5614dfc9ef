package models

// Header is the fixed 23-column header row written ahead of the data.
var Header = []string{
	"Game ID", "Away Team", "Home Team", "Away Pitcher", "Home Pitcher",
	"Away ERA", "Away WHIP", "Away K/9", "Away BB/9", "Away H/9", "Away R/9", "Away HR/9", "Away IP", "Away GS",
	"Home ERA", "Home WHIP", "Home K/9", "Home BB/9", "Home H/9", "Home R/9", "Home HR/9", "Home IP", "Home GS",
}

// NumColumns is the width of the output table (columns A through W).
const NumColumns = 23

// Row is one assembled output row: game identity plus both pitchers'
// stat blocks. Column positions are fixed and match Header.
type Row struct {
	GameID      int
	AwayName    string
	HomeName    string
	AwayPitcher string
	HomePitcher string
	AwayStats   PitchingStats
	HomeStats   PitchingStats
}

// Values flattens the row into its 23 positional cells. Stat cells are
// strings here; numeric coercion happens at write time.
func (r Row) Values() []any {
	vals := make([]any, 0, NumColumns)
	vals = append(vals, r.GameID, r.AwayName, r.HomeName, r.AwayPitcher, r.HomePitcher)
	for _, s := range r.AwayStats.Values() {
		vals = append(vals, s)
	}
	for _, s := range r.HomeStats.Values() {
		vals = append(vals, s)
	}
	return vals
}
