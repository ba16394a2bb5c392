package ranking

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Key is an aggregation key: exactly one of ID or Slug is set.
type Key struct {
	ID   string
	Slug string
}

// String renders the key namespaced by its tier, so a stable id that happens to
// look like a slug never collides with a slug key: "id:42", "slug:joao-silva".
func (k Key) String() string {
	if k.ID != "" {
		return "id:" + k.ID
	}
	return "slug:" + k.Slug
}

// Candidate is what the resolver needs to know about one appearance.
type Candidate struct {
	ID              string
	Name            string
	Nickname        string
	Image           string
	Position        string
	PlaceholderName bool
}

// Identity is the canonical display record behind one aggregation key.
type Identity struct {
	Key      Key
	ID       string
	Slug     string
	Name     string
	Nickname string
	Image    string
	Position string

	placeholder bool
}

// merge refreshes display attributes with non-empty values from a later appearance.
func (i *Identity) merge(c Candidate) {
	if c.Name != "" && (!c.PlaceholderName || i.placeholder) {
		i.Name = c.Name
		i.placeholder = c.PlaceholderName
	}
	if c.Nickname != "" {
		i.Nickname = c.Nickname
	}
	if c.Image != "" {
		i.Image = c.Image
	}
	if c.Position != "" {
		i.Position = c.Position
	}
}

// Resolver maps appearances to aggregation keys for one computation run.
//
// An appearance with a stable id is keyed by that id. One without is keyed by the
// slug of its nickname (or name). Within a single match, the n-th id-less
// appearance of a slug is a different person from the previous n-1, so it maps to
// the n-th id-less identity ever created for that slug. Slugs are unique per run:
// a taken slug gets "-2", "-3", ... appended in first-seen order.
type Resolver struct {
	fallback  string
	records   map[Key]*Identity
	claimed   map[string]struct{}
	anonymous map[string][]Key
	seen      map[string]int
}

// NewResolver creates an empty resolver. fallback is used as the base slug when a
// name normalizes to nothing.
func NewResolver(fallback string) *Resolver {
	return &Resolver{
		fallback:  fallback,
		records:   make(map[Key]*Identity),
		claimed:   make(map[string]struct{}),
		anonymous: make(map[string][]Key),
		seen:      make(map[string]int),
	}
}

// BeginMatch resets the per-match occurrence counters.
func (r *Resolver) BeginMatch() {
	clear(r.seen)
}

// Resolve returns the canonical identity for c, creating it on first encounter.
func (r *Resolver) Resolve(c Candidate) *Identity {
	c.ID = strings.TrimSpace(c.ID)
	base := Slugify(firstNonEmpty(c.Nickname, c.Name))
	if base == "" {
		base = r.fallback
	}

	if c.ID != "" {
		k := Key{ID: c.ID}
		if rec, ok := r.records[k]; ok {
			rec.merge(c)
			return rec
		}
		return r.create(k, r.claim(base), c)
	}

	n := r.seen[base]
	r.seen[base] = n + 1
	if keys := r.anonymous[base]; n < len(keys) {
		rec := r.records[keys[n]]
		rec.merge(c)
		return rec
	}
	slug := r.claim(base)
	k := Key{Slug: slug}
	r.anonymous[base] = append(r.anonymous[base], k)
	return r.create(k, slug, c)
}

// Len returns the number of identities created so far.
func (r *Resolver) Len() int { return len(r.records) }

func (r *Resolver) create(k Key, slug string, c Candidate) *Identity {
	rec := &Identity{
		Key:         k,
		ID:          c.ID,
		Slug:        slug,
		Name:        c.Name,
		Nickname:    c.Nickname,
		Image:       c.Image,
		Position:    c.Position,
		placeholder: c.PlaceholderName,
	}
	r.records[k] = rec
	return rec
}

func (r *Resolver) claim(base string) string {
	slug := base
	for n := 2; ; n++ {
		if _, taken := r.claimed[slug]; !taken {
			break
		}
		slug = base + "-" + strconv.Itoa(n)
	}
	r.claimed[slug] = struct{}{}
	return slug
}

// Slugify lower-cases s, strips diacritics and collapses every run of
// non-alphanumeric characters into a single "-". "  João  da Silva! " becomes
// "joao-da-silva".
func Slugify(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	gap := false
	for _, ch := range strings.ToLower(folded) {
		if !unicode.IsLetter(ch) && !unicode.IsDigit(ch) {
			gap = true
			continue
		}
		if gap && b.Len() > 0 {
			b.WriteByte('-')
		}
		gap = false
		b.WriteRune(ch)
	}
	return b.String()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
