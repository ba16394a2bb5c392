package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/maxviazov/racha-stats-service/internal/model"
)

func athleteSlugs(list []model.AthleteStanding) []string {
	out := make([]string, 0, len(list))
	for _, a := range list {
		out = append(out, a.Slug)
	}
	return out
}

func TestSortAthletes_Priority(t *testing.T) {
	list := []model.AthleteStanding{
		{Slug: "low-points", Name: "A", Points: 3, Wins: 1, Goals: 9},
		{Slug: "more-goals", Name: "Z", Points: 6, Wins: 2, Goals: 5},
		{Slug: "more-wins", Name: "Y", Points: 6, Wins: 2, Goals: 1, Draws: 0},
		{Slug: "draw-heavy", Name: "B", Points: 6, Wins: 1, Draws: 3, Goals: 10},
		{Slug: "top", Name: "X", Points: 9, Wins: 3},
	}
	NewSorter(language.BrazilianPortuguese).SortAthletes(list)
	assert.Equal(t, []string{"top", "more-goals", "more-wins", "draw-heavy", "low-points"}, athleteSlugs(list))
}

func TestSortAthletes_NameTieBreakIsLocaleAwareAndCaseInsensitive(t *testing.T) {
	list := []model.AthleteStanding{
		{Slug: "zeca", Name: "Zeca"},
		{Slug: "erica", Name: "Érica"},
		{Slug: "eduardo", Name: "eduardo"},
		{Slug: "bruno", Name: "Bruno"},
	}
	NewSorter(language.BrazilianPortuguese).SortAthletes(list)
	assert.Equal(t, []string{"bruno", "eduardo", "erica", "zeca"}, athleteSlugs(list))
}

func TestSortAthletes_IdenticalNamesFallBackToSlug(t *testing.T) {
	list := []model.AthleteStanding{
		{Slug: "joao-silva-2", Name: "João Silva"},
		{Slug: "joao-silva", Name: "João Silva"},
	}
	s := NewSorter(language.Und)
	s.SortAthletes(list)
	assert.Equal(t, []string{"joao-silva", "joao-silva-2"}, athleteSlugs(list))
	assert.NotZero(t, s.CompareAthletes(list[0], list[1]))
}

func TestSortTeams_Priority(t *testing.T) {
	list := []model.TeamStanding{
		{Slug: "c", Name: "C", Points: 4, Wins: 1, GoalDifference: 3, GoalsFor: 5},
		{Slug: "b", Name: "B", Points: 4, Wins: 1, GoalDifference: 3, GoalsFor: 7},
		{Slug: "a", Name: "A", Points: 4, Wins: 1, GoalDifference: 1, GoalsFor: 9},
		{Slug: "d", Name: "D", Points: 4, Wins: 0, GoalDifference: 9, GoalsFor: 9},
		{Slug: "e", Name: "E", Points: 7},
		{Slug: "f", Name: "F", Points: 4, Wins: 1, GoalDifference: 3, GoalsFor: 7},
	}
	NewSorter(language.Und).SortTeams(list)
	got := make([]string, 0, len(list))
	for _, tm := range list {
		got = append(got, tm.Slug)
	}
	assert.Equal(t, []string{"e", "b", "f", "c", "a", "d"}, got)
}

func TestCompare_TotalOrder(t *testing.T) {
	s := NewSorter(language.BrazilianPortuguese)
	list := []model.AthleteStanding{
		{Slug: "ana", Name: "Ana"},
		{Slug: "ana-2", Name: "ANA"},
		{Slug: "ana-3", Name: "ana"},
		{Slug: "ana-4", Name: "Ana"},
	}
	for i := range list {
		for j := range list {
			if i == j {
				continue
			}
			assert.NotZero(t, s.CompareAthletes(list[i], list[j]), "%s vs %s", list[i].Slug, list[j].Slug)
			assert.Equal(t, -s.CompareAthletes(list[i], list[j]), s.CompareAthletes(list[j], list[i]))
		}
	}
}
