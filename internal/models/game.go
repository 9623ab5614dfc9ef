package models

// Game represents one scheduled MLB game with its probable pitchers.
// Pitcher names are empty strings when the club has not announced one.
type Game struct {
	GameID      int
	AwayName    string
	HomeName    string
	AwayPitcher string
	HomePitcher string
}

// ScheduleResponse mirrors the /schedule payload from the MLB Stats API.
type ScheduleResponse struct {
	Dates []ScheduleDate `json:"dates"`
}

// ScheduleDate is one calendar day of games.
type ScheduleDate struct {
	Date  string         `json:"date"`
	Games []ScheduleGame `json:"games"`
}

// ScheduleGame is the raw per-game schedule entry.
type ScheduleGame struct {
	GamePk int `json:"gamePk"`
	Teams  struct {
		Away ScheduleSide `json:"away"`
		Home ScheduleSide `json:"home"`
	} `json:"teams"`
}

// ScheduleSide is one side (home or away) of a schedule entry.
type ScheduleSide struct {
	Team struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"team"`
	ProbablePitcher *struct {
		ID       int    `json:"id"`
		FullName string `json:"fullName"`
	} `json:"probablePitcher,omitempty"`
}

// ToGame flattens a raw schedule entry into the domain Game.
func (sg *ScheduleGame) ToGame() Game {
	g := Game{
		GameID:   sg.GamePk,
		AwayName: sg.Teams.Away.Team.Name,
		HomeName: sg.Teams.Home.Team.Name,
	}
	if sg.Teams.Away.ProbablePitcher != nil {
		g.AwayPitcher = sg.Teams.Away.ProbablePitcher.FullName
	}
	if sg.Teams.Home.ProbablePitcher != nil {
		g.HomePitcher = sg.Teams.Home.ProbablePitcher.FullName
	}
	return g
}

// Player is one entry of the season roster listing.
type Player struct {
	ID       int    `json:"id"`
	FullName string `json:"fullName"`
}

// PlayersResponse mirrors the /sports/1/players payload.
type PlayersResponse struct {
	People []Player `json:"people"`
}
