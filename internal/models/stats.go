package models

import (
	"encoding/json"
	"fmt"
)

// StatKeys are the pitching metrics carried into the sheet, in column order.
var StatKeys = []string{
	"era",
	"whip",
	"strikeoutsPer9Inn",
	"walksPer9Inn",
	"hitsPer9Inn",
	"runsScoredPer9",
	"homeRunsPer9",
	"inningsPitched",
	"gamesStarted",
}

// PitchingStats holds the fixed set of season pitching metrics for one
// player-season. Values are kept as strings exactly as the API reports
// them; a missing or failed metric is the empty string.
type PitchingStats struct {
	ERA            string
	WHIP           string
	StrikeoutsPer9 string
	WalksPer9      string
	HitsPer9       string
	RunsPer9       string
	HomeRunsPer9   string
	InningsPitched string
	GamesStarted   string
}

// EmptyPitchingStats returns the all-blank placeholder block used when a
// pitcher is unknown or every retrieval attempt failed.
func EmptyPitchingStats() PitchingStats {
	return PitchingStats{}
}

// PitchingStatsFromMap extracts the fixed metric set from a raw API stat
// map, substituting "" for any key that is absent.
func PitchingStatsFromMap(raw map[string]any) PitchingStats {
	get := func(key string) string {
		return statString(raw[key])
	}
	return PitchingStats{
		ERA:            get("era"),
		WHIP:           get("whip"),
		StrikeoutsPer9: get("strikeoutsPer9Inn"),
		WalksPer9:      get("walksPer9Inn"),
		HitsPer9:       get("hitsPer9Inn"),
		RunsPer9:       get("runsScoredPer9"),
		HomeRunsPer9:   get("homeRunsPer9"),
		InningsPitched: get("inningsPitched"),
		GamesStarted:   get("gamesStarted"),
	}
}

// Values returns the metrics in StatKeys order.
func (p PitchingStats) Values() []string {
	return []string{
		p.ERA,
		p.WHIP,
		p.StrikeoutsPer9,
		p.WalksPer9,
		p.HitsPer9,
		p.RunsPer9,
		p.HomeRunsPer9,
		p.InningsPitched,
		p.GamesStarted,
	}
}

// statString renders an API stat value as a string. The Stats API mixes
// string rate stats ("3.45") with integer counting stats (12).
func statString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case json.Number:
		return val.String()
	case float64:
		if val == float64(int64(val)) {
			return fmt.Sprintf("%d", int64(val))
		}
		return fmt.Sprintf("%g", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
