// package local holds the built-in catalog used when no live backend is
// configured.
//
// The dataset is fixed at authoring time and partitioned into named
// buckets. Buckets are keyed "category-type" to mirror the listing
// parameters of the remote catalog.
package local

import "github.com/nextsound/nextsound/internal/catalog"

// defaultLimit bounds the generic fallback bucket returned for unknown
// category/type combinations.
const defaultLimit = 20

// Store serves tracks from the static dataset.
type Store struct {
	buckets map[string][]catalog.Track
}

// NewStore builds a Store over the authored dataset. The "hero" bucket is
// derived from the first slices of the other two.
func NewStore() *Store {
	latest := normalize(latestHits)
	popular := normalize(popularTracks)

	hero := make([]catalog.Track, 0, 8)
	hero = append(hero, latest[:min(5, len(latest))]...)
	hero = append(hero, popular[:min(3, len(popular))]...)

	return &Store{
		buckets: map[string][]catalog.Track{
			"tracks-latest":  latest,
			"tracks-popular": popular,
			"tracks-hero":    hero,
		},
	}
}

// GetBucket returns the bucket for category-type. Unknown combinations
// return a bounded concatenation of all known buckets as a generic
// default; there is no failure mode.
func (s *Store) GetBucket(category, kind string) catalog.TrackList {
	if b, ok := s.buckets[category+"-"+kind]; ok {
		return catalog.TrackList{Results: clone(b)}
	}

	all := s.All()
	if len(all) > defaultLimit {
		all = all[:defaultLimit]
	}
	return catalog.TrackList{Results: all}
}

// All returns the union of the primary buckets, latest first. The derived
// hero bucket is excluded so its members are not duplicated.
func (s *Store) All() []catalog.Track {
	out := make([]catalog.Track, 0, len(s.buckets["tracks-latest"])+len(s.buckets["tracks-popular"]))
	out = append(out, s.buckets["tracks-latest"]...)
	out = append(out, s.buckets["tracks-popular"]...)
	return out
}

// FindByID does a linear scan across all buckets, matching either the
// catalog id or the external alias id. Returns nil when absent.
func (s *Store) FindByID(id string) *catalog.Track {
	for _, t := range s.All() {
		if t.ID == id || (t.ExternalID != "" && t.ExternalID == id) {
			found := t
			return &found
		}
	}
	return nil
}

func normalize(tracks []catalog.Track) []catalog.Track {
	out := make([]catalog.Track, len(tracks))
	for i, t := range tracks {
		out[i] = t.Normalized()
	}
	return out
}

func clone(tracks []catalog.Track) []catalog.Track {
	out := make([]catalog.Track, len(tracks))
	copy(out, tracks)
	return out
}
