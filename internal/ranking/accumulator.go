package ranking

import (
	"strings"

	"github.com/maxviazov/racha-stats-service/internal/model"
)

// Outcome is the result of a match from one side's point of view.
type Outcome int

const (
	Loss Outcome = iota
	Draw
	Win
)

const (
	pointsPerWin  = 3
	pointsPerDraw = 1
)

// OutcomeFor compares the two final scores of a match; equal scores are a draw.
func OutcomeFor(own, other int) Outcome {
	own, other = nonNegative(own), nonNegative(other)
	switch {
	case own > other:
		return Win
	case own == other:
		return Draw
	default:
		return Loss
	}
}

// record is the W/D/L ledger shared by athletes and teams.
type record struct {
	games, wins, draws, losses, points int
}

func (r *record) add(o Outcome) {
	r.games++
	switch o {
	case Win:
		r.wins++
		r.points += pointsPerWin
	case Draw:
		r.draws++
		r.points += pointsPerDraw
	default:
		r.losses++
	}
}

type athleteTally struct {
	ident *Identity
	record
	goals, assists int
}

type teamTally struct {
	ident *Identity
	record
	goalsFor, goalsAgainst int
}

// Accumulator folds matches into per-athlete and per-team running totals.
// It owns its resolvers, so one Accumulator serves exactly one computation.
type Accumulator struct {
	athleteIDs *Resolver
	teamIDs    *Resolver

	athletes     map[Key]*athleteTally
	athleteOrder []Key
	teams        map[Key]*teamTally
	teamOrder    []Key

	// keys already credited with a game in the current match
	athletesInMatch map[Key]struct{}
	teamsInMatch    map[Key]struct{}
}

func NewAccumulator() *Accumulator {
	return &Accumulator{
		athleteIDs: NewResolver("athlete"),
		teamIDs:    NewResolver("team"),
		athletes:   make(map[Key]*athleteTally),
		teams:      make(map[Key]*teamTally),

		athletesInMatch: make(map[Key]struct{}),
		teamsInMatch:    make(map[Key]struct{}),
	}
}

// AddMatch folds one match, given the already decoded rosters of both sides.
// Side A is folded first, so a key listed on both sides takes side A's outcome.
func (a *Accumulator) AddMatch(m model.MatchRecord, rosterA, rosterB []model.ParticipantEntry) {
	a.athleteIDs.BeginMatch()
	a.teamIDs.BeginMatch()
	clear(a.athletesInMatch)
	clear(a.teamsInMatch)

	a.addSide(m, model.SideA, rosterA)
	a.addSide(m, model.SideB, rosterB)
}

func (a *Accumulator) addSide(m model.MatchRecord, side model.Side, roster []model.ParticipantEntry) {
	own, other := m.A, m.B
	if side == model.SideB {
		own, other = m.B, m.A
	}
	outcome := OutcomeFor(own.Score, other.Score)

	if strings.TrimSpace(own.TeamID) != "" || strings.TrimSpace(own.TeamName) != "" {
		ident := a.teamIDs.Resolve(Candidate{
			ID:    own.TeamID,
			Name:  firstNonEmpty(own.TeamName, own.TeamID),
			Image: strings.TrimSpace(own.TeamLogo),
		})
		a.AddTeam(ident, outcome, own.Score, other.Score)
	}

	for _, e := range roster {
		if IsAbsent(e.Status) {
			continue
		}
		ident := a.athleteIDs.Resolve(Candidate{
			ID:              e.ID,
			Name:            e.Name,
			Nickname:        e.Nickname,
			Image:           e.Photo,
			Position:        e.Position,
			PlaceholderName: e.PlaceholderName,
		})
		a.AddAthlete(ident, outcome, e)
	}
}

// AddAthlete records one appearance of an athlete. Absent entries are ignored.
// A key seen again in the same match adds its goals and assists but no game.
func (a *Accumulator) AddAthlete(ident *Identity, outcome Outcome, e model.ParticipantEntry) {
	if IsAbsent(e.Status) {
		return
	}
	t, ok := a.athletes[ident.Key]
	if !ok {
		t = &athleteTally{ident: ident}
		a.athletes[ident.Key] = t
		a.athleteOrder = append(a.athleteOrder, ident.Key)
	}
	if _, counted := a.athletesInMatch[ident.Key]; !counted {
		a.athletesInMatch[ident.Key] = struct{}{}
		t.add(outcome)
	}
	t.goals += nonNegative(e.Goals)
	t.assists += nonNegative(e.Assists)
}

// AddTeam records one match for a team. A team already credited in the current
// match gains nothing more from it.
func (a *Accumulator) AddTeam(ident *Identity, outcome Outcome, goalsFor, goalsAgainst int) {
	if _, counted := a.teamsInMatch[ident.Key]; counted {
		return
	}
	a.teamsInMatch[ident.Key] = struct{}{}
	t, ok := a.teams[ident.Key]
	if !ok {
		t = &teamTally{ident: ident}
		a.teams[ident.Key] = t
		a.teamOrder = append(a.teamOrder, ident.Key)
	}
	t.add(outcome)
	t.goalsFor += nonNegative(goalsFor)
	t.goalsAgainst += nonNegative(goalsAgainst)
}

// Athletes snapshots the athlete totals in first-seen order (unsorted).
func (a *Accumulator) Athletes() []model.AthleteStanding {
	out := make([]model.AthleteStanding, 0, len(a.athleteOrder))
	for _, k := range a.athleteOrder {
		t := a.athletes[k]
		out = append(out, model.AthleteStanding{
			Key:      t.ident.Key.String(),
			ID:       t.ident.ID,
			Name:     t.ident.Name,
			Nickname: t.ident.Nickname,
			Slug:     t.ident.Slug,
			Photo:    t.ident.Image,
			Position: t.ident.Position,
			Games:    t.games,
			Wins:     t.wins,
			Draws:    t.draws,
			Losses:   t.losses,
			Goals:    t.goals,
			Assists:  t.assists,
			Points:   t.points,
		})
	}
	return out
}

// Teams snapshots the team totals in first-seen order (unsorted). Goal
// difference is derived here, once.
func (a *Accumulator) Teams() []model.TeamStanding {
	out := make([]model.TeamStanding, 0, len(a.teamOrder))
	for _, k := range a.teamOrder {
		t := a.teams[k]
		out = append(out, model.TeamStanding{
			Key:            t.ident.Key.String(),
			ID:             t.ident.ID,
			Name:           t.ident.Name,
			Slug:           t.ident.Slug,
			Logo:           t.ident.Image,
			Games:          t.games,
			Wins:           t.wins,
			Draws:          t.draws,
			Losses:         t.losses,
			GoalsFor:       t.goalsFor,
			GoalsAgainst:   t.goalsAgainst,
			GoalDifference: t.goalsFor - t.goalsAgainst,
			Points:         t.points,
		})
	}
	return out
}

func nonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
