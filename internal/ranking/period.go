package ranking

import (
	"slices"
	"strings"
	"time"

	"github.com/maxviazov/racha-stats-service/internal/model"
)

// PeriodKind selects the reporting window.
type PeriodKind string

const (
	AllTime      PeriodKind = "all-time"
	Year         PeriodKind = "year"
	Quadrimester PeriodKind = "quadrimester"
)

// ParsePeriodKind accepts the spellings clients send. An empty string is all-time.
func ParsePeriodKind(s string) (PeriodKind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all", "all-time", "alltime", "all_time", "lifetime":
		return AllTime, true
	case "year", "yearly", "annual":
		return Year, true
	case "quadrimester", "quad", "q":
		return Quadrimester, true
	default:
		return "", false
	}
}

// Period is a requested reporting window. Year 0 means "the current year".
type Period struct {
	Kind         PeriodKind
	Year         int
	Quadrimester int
}

// QuadrimesterOf returns 1 for January-April, 2 for May-August and 3 for September-December.
func QuadrimesterOf(m time.Month) int {
	switch idx := int(m) - 1; {
	case idx < 4:
		return 1
	case idx < 8:
		return 2
	default:
		return 3
	}
}

// Resolve fills in the default year and degrades an out-of-range quadrimester
// to a plain year window. Unknown kinds resolve to all-time.
func (p Period) Resolve(currentYear int) Period {
	switch p.Kind {
	case Year, Quadrimester:
		if p.Year <= 0 {
			p.Year = currentYear
		}
		if p.Kind == Quadrimester && (p.Quadrimester < 1 || p.Quadrimester > 3) {
			p.Kind = Year
		}
		if p.Kind == Year {
			p.Quadrimester = 0
		}
		return p
	default:
		return Period{Kind: AllTime}
	}
}

// Contains reports whether t falls inside a resolved period, reading the calendar in loc.
func (p Period) Contains(t time.Time, loc *time.Location) bool {
	switch p.Kind {
	case Year:
		return t.In(loc).Year() == p.Year
	case Quadrimester:
		local := t.In(loc)
		return local.Year() == p.Year && QuadrimesterOf(local.Month()) == p.Quadrimester
	default:
		return true
	}
}

// Bounds returns the half-open [from, to) window of a resolved period.
// ok is false for all-time, which has no bounds.
func (p Period) Bounds(loc *time.Location) (from, to time.Time, ok bool) {
	switch p.Kind {
	case Year:
		from = time.Date(p.Year, time.January, 1, 0, 0, 0, 0, loc)
		return from, from.AddDate(1, 0, 0), true
	case Quadrimester:
		from = time.Date(p.Year, time.Month(1+4*(p.Quadrimester-1)), 1, 0, 0, 0, 0, loc)
		return from, from.AddDate(0, 4, 0), true
	default:
		return time.Time{}, time.Time{}, false
	}
}

// Info renders a resolved period for the response.
func (p Period) Info(loc *time.Location) model.PeriodInfo {
	info := model.PeriodInfo{Kind: string(p.Kind), Year: p.Year, Quadrimester: p.Quadrimester}
	if from, to, ok := p.Bounds(loc); ok {
		info.From, info.To = &from, &to
	}
	return info
}

// FilterMatches keeps the matches whose own date falls in the resolved period p.
// The input slice is never modified.
func FilterMatches(matches []model.MatchRecord, p Period, loc *time.Location) []model.MatchRecord {
	out := make([]model.MatchRecord, 0, len(matches))
	for _, m := range matches {
		if p.Contains(m.PlayedAt, loc) {
			out = append(out, m)
		}
	}
	return out
}

// AvailableYears lists the distinct calendar years present in the history, newest first.
func AvailableYears(matches []model.MatchRecord, loc *time.Location) []int {
	seen := make(map[int]struct{})
	years := make([]int, 0)
	for _, m := range matches {
		if m.PlayedAt.IsZero() {
			continue
		}
		y := m.PlayedAt.In(loc).Year()
		if _, ok := seen[y]; ok {
			continue
		}
		seen[y] = struct{}{}
		years = append(years, y)
	}
	slices.Sort(years)
	slices.Reverse(years)
	return years
}
