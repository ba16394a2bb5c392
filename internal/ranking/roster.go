package ranking

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/maxviazov/racha-stats-service/internal/model"
)

const maxCount = math.MaxInt32

// Field aliases accepted inside a roster entry, in lookup priority order.
var (
	idFields       = []string{"id", "athleteId", "playerId", "athlete_id", "player_id"}
	nameFields     = []string{"name", "nome"}
	nicknameFields = []string{"nickname", "apelido"}
	photoFields    = []string{"photo", "photoUrl", "photo_url", "foto"}
	positionFields = []string{"position", "posicao"}
	goalsFields    = []string{"goals", "gols"}
	assistsFields  = []string{"assists", "assistencias"}
	statusFields   = []string{"status", "presence"}
)

var absentStatuses = map[string]struct{}{
	"absent":  {},
	"ausente": {},
	"missing": {},
}

// ParseRoster decodes one roster blob into participant entries. It never fails:
// a missing, null or empty blob yields no entries, and a blob that is present but
// not a JSON array (directly or as a JSON string holding one) yields no entries
// with malformed set so the caller can report it. Elements that are not objects
// are dropped.
func ParseRoster(blob []byte) (entries []model.ParticipantEntry, malformed bool) {
	entries = []model.ParticipantEntry{}

	raw := bytes.TrimSpace(blob)
	if len(raw) == 0 {
		return entries, false
	}
	if !gjson.ValidBytes(raw) {
		return entries, true
	}
	root := gjson.ParseBytes(raw)

	// Some writers store the roster as a JSON string holding the array.
	if root.Type == gjson.String {
		inner := strings.TrimSpace(root.Str)
		if inner == "" {
			return entries, false
		}
		if !gjson.Valid(inner) {
			return entries, true
		}
		root = gjson.Parse(inner)
	}

	if root.Type == gjson.Null {
		return entries, false
	}
	if !root.IsArray() {
		return entries, true
	}

	for i, el := range root.Array() {
		if !el.IsObject() {
			continue
		}
		entries = append(entries, decodeEntry(el, i+1))
	}
	return entries, false
}

// IsAbsent reports whether a participation status marks the entry as listed but not played.
func IsAbsent(status string) bool {
	_, ok := absentStatuses[strings.ToLower(strings.TrimSpace(status))]
	return ok
}

func decodeEntry(el gjson.Result, position int) model.ParticipantEntry {
	e := model.ParticipantEntry{
		ID:       text(lookup(el, idFields)),
		Name:     text(lookup(el, nameFields)),
		Nickname: text(lookup(el, nicknameFields)),
		Photo:    text(lookup(el, photoFields)),
		Position: text(lookup(el, positionFields)),
		Goals:    count(lookup(el, goalsFields)),
		Assists:  count(lookup(el, assistsFields)),
		Status:   strings.ToLower(text(lookup(el, statusFields))),
	}
	if e.Name == "" {
		e.Name = fmt.Sprintf("Player %d", position)
		e.PlaceholderName = true
	}
	return e
}

func lookup(el gjson.Result, fields []string) gjson.Result {
	for _, f := range fields {
		if r := el.Get(f); r.Exists() && r.Type != gjson.Null {
			return r
		}
	}
	return gjson.Result{}
}

// text accepts strings and numbers (ids are often numeric); anything else is blank.
func text(r gjson.Result) string {
	switch r.Type {
	case gjson.String:
		return strings.TrimSpace(r.Str)
	case gjson.Number:
		return strings.TrimSpace(r.Raw)
	default:
		return ""
	}
}

// count coerces a JSON number or a numeric string (comma or dot decimal separator)
// to a non-negative integer, truncating fractions. Everything else is 0.
func count(r gjson.Result) int {
	var f float64
	switch r.Type {
	case gjson.Number:
		f = r.Num
	case gjson.String:
		s := strings.ReplaceAll(strings.TrimSpace(r.Str), ",", ".")
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		f = v
	default:
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return 0
	}
	if f >= maxCount {
		return maxCount
	}
	return int(f)
}
