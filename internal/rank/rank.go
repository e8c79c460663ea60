// package rank scores tracks against a free-text query.
//
// The scoring is intentionally layered and overlapping: exact-match tiers
// are re-awarded as substring bonuses for near misses, and per-term hits
// stack on top of everything else. Downstream consumers depend on the
// resulting order, so the weights and their overlap are a compatibility
// surface and must not be "cleaned up".
package rank

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/nextsound/nextsound/internal/catalog"
)

// Scored is an ephemeral per-query entry; callers read the ordered list
// and discard it.
type Scored struct {
	Track catalog.Track
	Score int
	Exact bool
}

// InteractiveLimit bounds interactive (palette) searches. Batch searches
// pass limit <= 0 for an unbounded result.
const InteractiveLimit = 8

var yearPattern = regexp.MustCompile(`\b(19|20)\d{2}\b`)

// genreAliases maps a query keyword to the genre strings it should match.
var genreAliases = map[string][]string{
	"pop":        {"pop", "alternative pop", "dance pop", "synthpop"},
	"rock":       {"rock", "pop rock", "alternative rock", "classic rock"},
	"hip hop":    {"hip hop", "hip-hop", "rap", "latin trap"},
	"r&b":        {"r&b", "rnb", "soul"},
	"electronic": {"electronic", "dance", "edm", "synthpop"},
	"country":    {"country"},
	"indie":      {"indie", "indie folk", "indie rock"},
	"folk":       {"folk", "indie folk"},
	"punk":       {"punk", "pop punk"},
	"garage":     {"garage", "uk garage"},
	"k-pop":      {"k-pop", "kpop"},
	"latin":      {"latin", "latin trap"},
}

// fields holds the lowercased text of one candidate.
type fields struct {
	title, name, original string
	artist, album         string
	genre, overview, year string
}

func fieldsOf(t catalog.Track) fields {
	f := fields{
		title:    strings.ToLower(t.Title),
		name:     strings.ToLower(t.Name),
		original: strings.ToLower(t.OriginalTitle),
		artist:   strings.ToLower(t.Artist),
		album:    strings.ToLower(t.Album),
		genre:    strings.ToLower(t.Genre),
		overview: strings.ToLower(t.Overview),
	}
	if t.Year > 0 {
		f.year = strconv.Itoa(t.Year)
	}
	return f
}

func (f fields) anyTitle(match func(string) bool) bool {
	return match(f.title) || match(f.name) || match(f.original)
}

// Rank scores candidates against query and returns the relevance-ordered
// subset. Exact matches precede all others; within each partition the
// order is score descending with input order as the tiebreak. Zero-score
// candidates are discarded. A limit <= 0 means unbounded.
//
// Rank is a pure function of its inputs: repeated calls with the same
// arguments produce the same order.
func Rank(candidates []catalog.Track, query string, limit int) []Scored {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" || len(candidates) == 0 {
		return nil
	}

	terms := strings.Fields(query)

	queryYear := 0
	if m := yearPattern.FindString(query); m != "" {
		queryYear, _ = strconv.Atoi(m)
	}

	scored := make([]Scored, 0, len(candidates))
	for _, t := range candidates {
		f := fieldsOf(t)
		score, exact := scoreCandidate(f, t, query, terms, queryYear)
		if score > 0 {
			scored = append(scored, Scored{Track: t, Score: score, Exact: exact})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Exact != scored[j].Exact {
			return scored[i].Exact
		}
		return scored[i].Score > scored[j].Score
	})

	if limit > 0 && len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}

// Tracks flattens a scored list back into plain tracks.
func Tracks(scored []Scored) []catalog.Track {
	out := make([]catalog.Track, len(scored))
	for i, s := range scored {
		out[i] = s.Track
	}
	return out
}

func scoreCandidate(f fields, t catalog.Track, query string, terms []string, queryYear int) (int, bool) {
	score := 0
	exact := false

	// Exact tiers: first hit wins, title checked before artist before
	// album before genre.
	eq := func(s string) bool { return s != "" && s == query }
	switch {
	case f.anyTitle(eq):
		score += 100
		exact = true
	case eq(f.artist):
		score += 90
		exact = true
	case eq(f.album):
		score += 80
		exact = true
	case eq(f.genre):
		score += 70
		exact = true
	}

	// Near misses get the same weights as substring credit.
	if !exact {
		has := func(s string) bool { return s != "" && strings.Contains(s, query) }
		if f.anyTitle(has) {
			score += 100
		}
		if has(f.artist) {
			score += 90
		}
		if has(f.album) {
			score += 80
		}
		if has(f.genre) {
			score += 70
		}
	}

	if queryYear > 0 && t.Year == queryYear {
		score += 85
	}

	if genreFamilyMatch(query, f.genre) {
		score += 75
	}

	if !exact {
		for _, term := range terms {
			if strings.Contains(f.title, term) || strings.Contains(f.name, term) {
				score += 50
			}
			if f.original != "" && strings.Contains(f.original, term) {
				score += 45
			}
			if f.artist != "" && strings.Contains(f.artist, term) {
				score += 40
			}
			if f.album != "" && strings.Contains(f.album, term) {
				score += 30
			}
			if f.genre != "" && strings.Contains(f.genre, term) {
				score += 35
			}
			if f.overview != "" && strings.Contains(f.overview, term) {
				score += 15
			}
			if f.year != "" && strings.Contains(f.year, term) {
				score += 25
			}
		}

		for _, term := range terms {
			if len(term) < 3 {
				continue
			}
			if strings.Contains(f.title, term) || strings.Contains(f.name, term) || strings.Contains(f.artist, term) {
				score += 20
			}
		}

		if t.Popularity > 85 {
			score += 10
		}
		if t.Popularity > 90 {
			score += 5
		}
	}

	return score, exact
}

// genreFamilyMatch reports whether the query names a genre family whose
// alias set intersects the candidate's genre string. Awarded once no
// matter how many families match.
func genreFamilyMatch(query, genre string) bool {
	if genre == "" {
		return false
	}
	for keyword, aliases := range genreAliases {
		if !strings.Contains(query, keyword) {
			continue
		}
		for _, alias := range aliases {
			if strings.Contains(genre, alias) {
				return true
			}
		}
	}
	return false
}
