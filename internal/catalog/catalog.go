// package catalog defines the domain model shared by every data source.
//
// Tracks and albums arrive here from two places: the remote catalog client
// (transformed API payloads, ephemeral) and the local store (static data).
// Both are normalized to the same shape so consumers never care which
// source produced an item.
package catalog

import "strings"

// Track is the canonical music item.
type Track struct {
	ID            string  `json:"id"`
	ExternalID    string  `json:"external_id,omitempty"`
	Title         string  `json:"title"`
	Name          string  `json:"name,omitempty"`
	OriginalTitle string  `json:"original_title,omitempty"`
	Artist        string  `json:"artist"`
	Album         string  `json:"album,omitempty"`
	Genre         string  `json:"genre,omitempty"`
	Overview      string  `json:"overview,omitempty"`
	Year          int     `json:"year,omitempty"`
	ImageURL      string  `json:"image_url,omitempty"`
	BackdropURL   string  `json:"backdrop_url,omitempty"`
	PreviewURL    *string `json:"preview_url"`
	DurationMS    int     `json:"duration_ms"`
	Popularity    int     `json:"popularity"`
}

// DisplayTitle resolves the title fallback chain. It never returns an
// empty string.
func (t Track) DisplayTitle() string {
	for _, s := range []string{t.Title, t.Name, t.OriginalTitle} {
		if strings.TrimSpace(s) != "" {
			return s
		}
	}
	return "Unknown Track"
}

// Normalized returns a copy with Title resolved through the fallback chain
// and negative numeric fields clamped to zero.
func (t Track) Normalized() Track {
	t.Title = t.DisplayTitle()
	if t.DurationMS < 0 {
		t.DurationMS = 0
	}
	if t.Popularity < 0 {
		t.Popularity = 0
	}
	return t
}

// Album represents an album, used for detail lookups and album listings.
type Album struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Artists     []string `json:"artists"`
	ReleaseDate string   `json:"release_date,omitempty"`
	TotalTracks int      `json:"total_tracks"`
	ImageURL    string   `json:"image_url,omitempty"`
}

// Artist represents an artist detail record.
type Artist struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Genres     []string `json:"genres,omitempty"`
	ImageURL   string   `json:"image_url,omitempty"`
	Popularity int      `json:"popularity,omitempty"`
}

// TrackList is the list payload every listing operation returns.
type TrackList struct {
	Results []Track `json:"results"`
}

// SearchResult is the flattened shape consumed by combined command/search
// surfaces (palette, TUI list).
type SearchResult struct {
	ID       string `json:"id"`
	Kind     string `json:"kind"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	Image    string `json:"image,omitempty"`
	Exact    bool   `json:"exact,omitempty"`
}

// ResultFromTrack converts a Track into the palette SearchResult shape.
func ResultFromTrack(t Track, exact bool) SearchResult {
	return SearchResult{
		ID:       t.ID,
		Kind:     "track",
		Title:    t.DisplayTitle(),
		Subtitle: t.Artist,
		Image:    t.ImageURL,
		Exact:    exact,
	}
}
