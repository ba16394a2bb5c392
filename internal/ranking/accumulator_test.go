package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/racha-stats-service/internal/model"
)

func TestOutcomeFor(t *testing.T) {
	assert.Equal(t, Win, OutcomeFor(3, 1))
	assert.Equal(t, Loss, OutcomeFor(1, 3))
	assert.Equal(t, Draw, OutcomeFor(2, 2))
	assert.Equal(t, Draw, OutcomeFor(-1, 0), "negative scores count as zero")
}

func TestAccumulator_TwoMatchScenario(t *testing.T) {
	acc := NewAccumulator()
	m1 := match("m1", at(2025, 3, 1), "Team A", 3, "", "Team B", 1, "")
	m2 := match("m2", at(2025, 3, 8), "Team A", 0, "", "Team B", 0, "")
	acc.AddMatch(m1, []model.ParticipantEntry{{Name: "Ana", Goals: 3}}, []model.ParticipantEntry{{Name: "Bia", Goals: 1}})
	acc.AddMatch(m2, []model.ParticipantEntry{{Name: "Ana"}}, []model.ParticipantEntry{{Name: "Bia"}})

	teams := acc.Teams()
	require.Len(t, teams, 2)
	a, _ := teamByName(teams, "Team A")
	b, _ := teamByName(teams, "Team B")

	assert.Equal(t, 2, a.Games)
	assert.Equal(t, 1, a.Wins)
	assert.Equal(t, 1, a.Draws)
	assert.Equal(t, 0, a.Losses)
	assert.Equal(t, 4, a.Points)
	assert.Equal(t, 3, a.GoalsFor)
	assert.Equal(t, 1, a.GoalsAgainst)
	assert.Equal(t, 2, a.GoalDifference)

	assert.Equal(t, 2, b.Games)
	assert.Equal(t, 0, b.Wins)
	assert.Equal(t, 1, b.Draws)
	assert.Equal(t, 1, b.Losses)
	assert.Equal(t, 1, b.Points)
	assert.Equal(t, -2, b.GoalDifference)

	athletes := acc.Athletes()
	ana, ok := athleteBySlug(athletes, "ana")
	require.True(t, ok)
	assert.Equal(t, model.AthleteStanding{Key: "slug:ana", Name: "Ana", Slug: "ana", Games: 2, Wins: 1, Draws: 1, Goals: 3, Points: 4}, ana)
}

func TestAccumulator_AbsentEntryContributesNothing(t *testing.T) {
	acc := NewAccumulator()
	m := match("m1", at(2025, 1, 10), "A", 2, "", "B", 0, "")
	acc.AddMatch(m, []model.ParticipantEntry{
		{Name: "Caio", Goals: 2},
		{Name: "Duda", Status: "absent", Goals: 5, Assists: 2},
	}, nil)

	athletes := acc.Athletes()
	require.Len(t, athletes, 1)
	assert.Equal(t, "caio", athletes[0].Slug)

	// Direct calls honour the status too.
	ident := NewResolver("athlete").Resolve(Candidate{Name: "Duda"})
	acc.AddAthlete(ident, Win, model.ParticipantEntry{Name: "Duda", Status: "ausente"})
	assert.Len(t, acc.Athletes(), 1)
}

func TestAccumulator_ZeroStatsStillCountAsPlayed(t *testing.T) {
	acc := NewAccumulator()
	acc.AddMatch(match("m1", at(2025, 1, 10), "A", 0, "", "B", 1, ""), []model.ParticipantEntry{{Name: "Edu"}}, nil)

	athletes := acc.Athletes()
	require.Len(t, athletes, 1)
	assert.Equal(t, 1, athletes[0].Games)
	assert.Equal(t, 1, athletes[0].Losses)
	assert.Equal(t, 0, athletes[0].Points)
}

func TestAccumulator_SideWithoutTeamLabelSkipsTeamTally(t *testing.T) {
	acc := NewAccumulator()
	acc.AddMatch(match("m1", at(2025, 1, 10), "", 1, "", "B", 0, ""), []model.ParticipantEntry{{Name: "Fabi"}}, nil)

	teams := acc.Teams()
	require.Len(t, teams, 1)
	assert.Equal(t, "B", teams[0].Name)
	assert.Len(t, acc.Athletes(), 1)
}

func TestAccumulator_TeamIDWithoutName(t *testing.T) {
	acc := NewAccumulator()
	m := match("m1", at(2025, 1, 10), "", 1, "", "", 1, "")
	m.A.TeamID = "t-1"
	m.B.TeamID = "t-2"
	acc.AddMatch(m, nil, nil)

	teams := acc.Teams()
	require.Len(t, teams, 2)
	assert.Equal(t, "id:t-1", teams[0].Key)
	assert.Equal(t, "t-1", teams[0].Name)
	assert.Equal(t, 1, teams[0].Draws)
}

func TestAccumulator_Invariants(t *testing.T) {
	acc := NewAccumulator()
	scores := [][2]int{{3, 1}, {0, 0}, {1, 2}, {4, 4}, {0, 5}, {2, 1}}
	for i, s := range scores {
		m := match("m", at(2025, 2, i+1), "Red", s[0], "", "Blue", s[1], "")
		acc.AddMatch(m,
			[]model.ParticipantEntry{{Name: "Gabi", Goals: s[0]}, {Name: "Hugo"}},
			[]model.ParticipantEntry{{Name: "Ivo", Goals: s[1]}, {Name: "Hugo"}},
		)
	}
	for _, a := range acc.Athletes() {
		assert.Equal(t, a.Games, a.Wins+a.Draws+a.Losses, a.Slug)
		assert.Equal(t, 3*a.Wins+a.Draws, a.Points, a.Slug)
	}
	for _, tm := range acc.Teams() {
		assert.Equal(t, tm.Games, tm.Wins+tm.Draws+tm.Losses, tm.Name)
		assert.Equal(t, 3*tm.Wins+tm.Draws, tm.Points, tm.Name)
		assert.Equal(t, tm.GoalsFor-tm.GoalsAgainst, tm.GoalDifference, tm.Name)
	}
	// "Hugo" listed on both sides of every match is two different people.
	_, ok := athleteBySlug(acc.Athletes(), "hugo-2")
	assert.True(t, ok)
}

func TestAccumulator_RepeatedIDCountsOneGamePerMatch(t *testing.T) {
	acc := NewAccumulator()
	rosterA, bad := ParseRoster([]byte(`[{"id":"7","goals":1},{"id":"7","goals":1,"assists":1}]`))
	require.False(t, bad)
	acc.AddMatch(match("m1", at(2025, 2, 1), "A", 2, "", "B", 0, ""), rosterA, nil)

	athletes := acc.Athletes()
	require.Len(t, athletes, 1)
	got := athletes[0]
	assert.Equal(t, "id:7", got.Key)
	assert.Equal(t, 1, got.Games)
	assert.Equal(t, 1, got.Wins)
	assert.Equal(t, 3, got.Points)
	assert.Equal(t, 2, got.Goals, "goals of every line still count")
	assert.Equal(t, 1, got.Assists)

	// the guard is per match: the next fixture counts again
	acc.AddMatch(match("m2", at(2025, 2, 8), "A", 0, "", "B", 0, ""), []model.ParticipantEntry{{ID: "7", Name: "Sete"}}, nil)
	got = acc.Athletes()[0]
	assert.Equal(t, 2, got.Games)
	assert.Equal(t, 1, got.Draws)
	assert.Equal(t, 4, got.Points)
}

func TestAccumulator_KeyOnBothSidesTakesSideA(t *testing.T) {
	acc := NewAccumulator()
	m := match("m1", at(2025, 2, 1), "", 2, "", "", 0, "")
	m.A.TeamID, m.B.TeamID = "t", "t"
	acc.AddMatch(m,
		[]model.ParticipantEntry{{ID: "7", Name: "Sete", Goals: 1}},
		[]model.ParticipantEntry{{ID: "7", Name: "Sete", Goals: 1}},
	)

	athletes := acc.Athletes()
	require.Len(t, athletes, 1)
	a := athletes[0]
	assert.Equal(t, [5]int{1, 1, 0, 0, 3}, [5]int{a.Games, a.Wins, a.Draws, a.Losses, a.Points})
	assert.Equal(t, 2, a.Goals)

	teams := acc.Teams()
	require.Len(t, teams, 1)
	tm := teams[0]
	assert.Equal(t, "id:t", tm.Key)
	assert.Equal(t, [5]int{1, 1, 0, 0, 3}, [5]int{tm.Games, tm.Wins, tm.Draws, tm.Losses, tm.Points})
	assert.Equal(t, 2, tm.GoalsFor)
	assert.Equal(t, 0, tm.GoalsAgainst)
	for _, s := range append(acc.Athletes(), athletes...) {
		assert.Equal(t, s.Games, s.Wins+s.Draws+s.Losses)
	}
}
