// Package model contains domain entities and result shapes used across layers.
// I keep it lean and focused on data shapes without behavior.
package model

import (
	"time"

	"github.com/google/uuid"
)

// Racha is the tenant unit: one recurring 7-a-side group.
type Racha struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Side identifies one of the two sides of a match.
type Side string

const (
	SideA Side = "A"
	SideB Side = "B"
)

// MatchSide is one side of a played fixture as stored upstream.
// Roster is kept as the raw blob; decoding it is the ranking package's job.
type MatchSide struct {
	TeamID   string `json:"team_id,omitempty"`
	TeamName string `json:"team_name,omitempty"`
	TeamLogo string `json:"team_logo,omitempty"`
	Score    int    `json:"score"`
	Roster   []byte `json:"-"`
}

// MatchRecord represents one played fixture. Read-only input of the standings engine.
type MatchRecord struct {
	ID        string    `json:"id"`
	RachaID   uuid.UUID `json:"racha_id"`
	PlayedAt  time.Time `json:"played_at"`
	A         MatchSide `json:"side_a"`
	B         MatchSide `json:"side_b"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"` // zero when the row was never modified
}

// Side returns the requested side of the match.
func (m MatchRecord) Side(s Side) MatchSide {
	if s == SideB {
		return m.B
	}
	return m.A
}

// ParticipantEntry is one decoded line of a roster blob.
// Goals and Assists are never negative once decoded.
type ParticipantEntry struct {
	ID       string
	Name     string
	Nickname string
	Photo    string
	Position string
	Goals    int
	Assists  int
	Status   string
	// PlaceholderName is set when Name was synthesized from the entry position.
	PlaceholderName bool
}

// AthleteStanding holds accumulated results for one athlete over a reporting period.
type AthleteStanding struct {
	Key      string `json:"key"`
	ID       string `json:"id,omitempty"`
	Name     string `json:"name"`
	Nickname string `json:"nickname,omitempty"`
	Slug     string `json:"slug"`
	Photo    string `json:"photo,omitempty"`
	Position string `json:"position,omitempty"`
	Games    int    `json:"games"`
	Wins     int    `json:"wins"`
	Draws    int    `json:"draws"`
	Losses   int    `json:"losses"`
	Goals    int    `json:"goals"`
	Assists  int    `json:"assists"`
	Points   int    `json:"points"`
}

// TeamStanding holds accumulated results for one team over a reporting period.
type TeamStanding struct {
	Key            string `json:"key"`
	ID             string `json:"id,omitempty"`
	Name           string `json:"name"`
	Slug           string `json:"slug"`
	Logo           string `json:"logo,omitempty"`
	Games          int    `json:"games"`
	Wins           int    `json:"wins"`
	Draws          int    `json:"draws"`
	Losses         int    `json:"losses"`
	GoalsFor       int    `json:"goals_for"`
	GoalsAgainst   int    `json:"goals_against"`
	GoalDifference int    `json:"goal_difference"`
	Points         int    `json:"points"`
}

// PeriodInfo echoes the reporting window that was effectively applied.
type PeriodInfo struct {
	Kind         string     `json:"kind"`
	Year         int        `json:"year,omitempty"`
	Quadrimester int        `json:"quadrimester,omitempty"`
	From         *time.Time `json:"from,omitempty"`
	To           *time.Time `json:"to,omitempty"`
}

// RosterIssue points at a roster blob that was present but could not be decoded.
type RosterIssue struct {
	MatchID string `json:"match_id"`
	Side    Side   `json:"side"`
}

// Standings is the complete result of one standings computation.
// It is recomputed on every request and never persisted.
type Standings struct {
	Period          PeriodInfo        `json:"period"`
	Athletes        []AthleteStanding `json:"athletes"`
	Teams           []TeamStanding    `json:"teams"`
	AvailableYears  []int             `json:"available_years"`
	LastUpdatedAt   *time.Time        `json:"last_updated_at"`
	MatchCount      int               `json:"match_count"`
	DegradedRosters []RosterIssue     `json:"-"`
}
