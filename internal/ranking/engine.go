// Package ranking rebuilds athlete and team standings from a match history.
//
// The package is a pure batch transform: it performs no I/O, keeps no state
// between calls and never fails on malformed match data. A malformed roster
// contributes nothing and is reported in Standings.DegradedRosters.
package ranking

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/maxviazov/racha-stats-service/internal/model"
)

// Options carries everything the engine would otherwise read from the environment.
type Options struct {
	// CurrentYear is used when the requested period has no year.
	CurrentYear int
	// Location is where match dates are read as calendar dates. Defaults to UTC.
	Location *time.Location
	// Collation drives the name tie-break. Defaults to language.Und.
	Collation language.Tag
}

// Compute filters the history to the requested period, aggregates standings and
// ranks them. Output order is a deterministic function of the input set, whatever
// order the matches arrive in.
func Compute(matches []model.MatchRecord, period Period, opts Options) model.Standings {
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}
	effective := period.Resolve(opts.CurrentYear)

	filtered := FilterMatches(matches, effective, loc)
	slices.SortStableFunc(filtered, func(a, b model.MatchRecord) int {
		if c := a.PlayedAt.Compare(b.PlayedAt); c != 0 {
			return c
		}
		return compareMatchIDs(a.ID, b.ID)
	})

	var issues []model.RosterIssue
	acc := NewAccumulator()
	for _, m := range filtered {
		rosterA, badA := ParseRoster(m.A.Roster)
		rosterB, badB := ParseRoster(m.B.Roster)
		if badA {
			issues = append(issues, model.RosterIssue{MatchID: m.ID, Side: model.SideA})
		}
		if badB {
			issues = append(issues, model.RosterIssue{MatchID: m.ID, Side: model.SideB})
		}
		acc.AddMatch(m, rosterA, rosterB)
	}

	athletes, teams := acc.Athletes(), acc.Teams()
	sorter := NewSorter(opts.Collation)
	sorter.SortAthletes(athletes)
	sorter.SortTeams(teams)

	return model.Standings{
		Period:          effective.Info(loc),
		Athletes:        athletes,
		Teams:           teams,
		AvailableYears:  AvailableYears(matches, loc),
		LastUpdatedAt:   LastUpdated(filtered),
		MatchCount:      len(filtered),
		DegradedRosters: issues,
	}
}

// compareMatchIDs orders numeric ids by value ("9" before "10") so serial ids
// follow insertion order. Numeric ids sort before any other id; the rest
// compare as strings.
func compareMatchIDs(a, b string) int {
	na, nb := numericID(a), numericID(b)
	switch {
	case na && nb:
		a, b = strings.TrimLeft(a, "0"), strings.TrimLeft(b, "0")
		if c := cmp.Compare(len(a), len(b)); c != 0 {
			return c
		}
	case na:
		return -1
	case nb:
		return 1
	}
	return cmp.Compare(a, b)
}

func numericID(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
