package ranking

import (
	"time"

	"github.com/maxviazov/racha-stats-service/internal/model"
)

func at(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 20, 0, 0, 0, time.UTC)
}

func match(id string, playedAt time.Time, teamA string, scoreA int, rosterA string, teamB string, scoreB int, rosterB string) model.MatchRecord {
	return model.MatchRecord{
		ID:        id,
		PlayedAt:  playedAt,
		A:         model.MatchSide{TeamName: teamA, Score: scoreA, Roster: []byte(rosterA)},
		B:         model.MatchSide{TeamName: teamB, Score: scoreB, Roster: []byte(rosterB)},
		CreatedAt: playedAt,
	}
}

func athleteBySlug(list []model.AthleteStanding, slug string) (model.AthleteStanding, bool) {
	for _, a := range list {
		if a.Slug == slug {
			return a, true
		}
	}
	return model.AthleteStanding{}, false
}

func teamByName(list []model.TeamStanding, name string) (model.TeamStanding, bool) {
	for _, t := range list {
		if t.Name == name {
			return t, true
		}
	}
	return model.TeamStanding{}, false
}
