package ranking

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/maxviazov/racha-stats-service/internal/model"
)

// Sorter orders standings with the leaderboard comparators. The name tie-break is
// case-insensitive and follows the collation rules of the configured language.
// A Sorter is not safe for concurrent use.
type Sorter struct {
	col *collate.Collator
}

func NewSorter(tag language.Tag) *Sorter {
	return &Sorter{col: collate.New(tag, collate.IgnoreCase)}
}

// CompareAthletes orders by points, wins and goals (all descending), then name.
// Slugs are unique per run, so the final slug comparison makes the order total.
func (s *Sorter) CompareAthletes(a, b model.AthleteStanding) int {
	if c := cmp.Compare(b.Points, a.Points); c != 0 {
		return c
	}
	if c := cmp.Compare(b.Wins, a.Wins); c != 0 {
		return c
	}
	if c := cmp.Compare(b.Goals, a.Goals); c != 0 {
		return c
	}
	if c := s.compareNames(a.Name, b.Name); c != 0 {
		return c
	}
	return strings.Compare(a.Slug, b.Slug)
}

// CompareTeams orders by points, wins, goal difference and goals for (all
// descending), then name.
func (s *Sorter) CompareTeams(a, b model.TeamStanding) int {
	if c := cmp.Compare(b.Points, a.Points); c != 0 {
		return c
	}
	if c := cmp.Compare(b.Wins, a.Wins); c != 0 {
		return c
	}
	if c := cmp.Compare(b.GoalDifference, a.GoalDifference); c != 0 {
		return c
	}
	if c := cmp.Compare(b.GoalsFor, a.GoalsFor); c != 0 {
		return c
	}
	if c := s.compareNames(a.Name, b.Name); c != 0 {
		return c
	}
	return strings.Compare(a.Slug, b.Slug)
}

func (s *Sorter) SortAthletes(list []model.AthleteStanding) {
	slices.SortFunc(list, s.CompareAthletes)
}

func (s *Sorter) SortTeams(list []model.TeamStanding) {
	slices.SortFunc(list, s.CompareTeams)
}

func (s *Sorter) compareNames(a, b string) int {
	if c := s.col.CompareString(a, b); c != 0 {
		return c
	}
	// Names equal under the collation but not byte-equal still get a fixed order.
	return strings.Compare(a, b)
}
