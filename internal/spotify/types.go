package spotify

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nextsound/nextsound/internal/catalog"
)

// Kind tags which catalog variant a payload holds. Transformation is
// selected by an explicit switch on the tag, never by probing response
// fields.
type Kind string

const (
	KindTrack  Kind = "track"
	KindAlbum  Kind = "album"
	KindArtist Kind = "artist"
)

// apiImage represents an image resource.
type apiImage struct {
	URL    string `json:"url"`
	Height int    `json:"height"`
	Width  int    `json:"width"`
}

// apiArtist represents an artist object.
type apiArtist struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Genres     []string   `json:"genres"`
	Images     []apiImage `json:"images"`
	Popularity int        `json:"popularity"`
}

// apiAlbum represents an album object.
type apiAlbum struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	AlbumType   string      `json:"album_type"`
	Artists     []apiArtist `json:"artists"`
	ReleaseDate string      `json:"release_date"`
	TotalTracks int         `json:"total_tracks"`
	Images      []apiImage  `json:"images"`
}

// apiTrack represents a track object.
type apiTrack struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Artists    []apiArtist `json:"artists"`
	Album      apiAlbum    `json:"album"`
	DurationMS int         `json:"duration_ms"`
	PreviewURL *string     `json:"preview_url"`
	Popularity int         `json:"popularity"`
}

// page is the paginated wrapper the search endpoint nests per kind.
type page[T any] struct {
	Items  []T `json:"items"`
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// searchResponse carries one populated page depending on the requested
// kind.
type searchResponse struct {
	Tracks  *page[apiTrack]  `json:"tracks"`
	Albums  *page[apiAlbum]  `json:"albums"`
	Artists *page[apiArtist] `json:"artists"`
}

// newReleasesResponse wraps the browse/new-releases payload.
type newReleasesResponse struct {
	Albums page[apiAlbum] `json:"albums"`
}

func firstImage(images []apiImage) string {
	if len(images) > 0 {
		return images[0].URL
	}
	return ""
}

func artistNames(artists []apiArtist) []string {
	names := make([]string, 0, len(artists))
	for _, a := range artists {
		names = append(names, a.Name)
	}
	return names
}

func releaseYear(date string) int {
	if len(date) < 4 {
		return 0
	}
	y, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0
	}
	return y
}

// transformTrack maps a wire track into the canonical shape.
func transformTrack(t apiTrack) (catalog.Track, error) {
	if t.ID == "" {
		return catalog.Track{}, fmt.Errorf("track payload missing id")
	}

	out := catalog.Track{
		ID:            t.ID,
		ExternalID:    t.ID,
		Title:         t.Name,
		Name:          t.Name,
		OriginalTitle: t.Name,
		Album:         t.Album.Name,
		Overview:      strings.Join(artistNames(t.Artists), ", "),
		Year:          releaseYear(t.Album.ReleaseDate),
		ImageURL:      firstImage(t.Album.Images),
		BackdropURL:   firstImage(t.Album.Images),
		PreviewURL:    t.PreviewURL,
		DurationMS:    t.DurationMS,
		Popularity:    t.Popularity,
	}
	if len(t.Artists) > 0 {
		out.Artist = t.Artists[0].Name
		if len(t.Artists[0].Genres) > 0 {
			out.Genre = t.Artists[0].Genres[0]
		}
	}
	return out.Normalized(), nil
}

// transformAlbum maps a wire album into the album detail shape.
func transformAlbum(a apiAlbum) (catalog.Album, error) {
	if a.ID == "" {
		return catalog.Album{}, fmt.Errorf("album payload missing id")
	}

	return catalog.Album{
		ID:          a.ID,
		Title:       a.Name,
		Artists:     artistNames(a.Artists),
		ReleaseDate: a.ReleaseDate,
		TotalTracks: a.TotalTracks,
		ImageURL:    firstImage(a.Images),
	}, nil
}

// albumAsTrack adapts an album into the Track listing shape so album
// listings share the track output contract.
func albumAsTrack(a apiAlbum) (catalog.Track, error) {
	if a.ID == "" {
		return catalog.Track{}, fmt.Errorf("album payload missing id")
	}

	out := catalog.Track{
		ID:            a.ID,
		ExternalID:    a.ID,
		Title:         a.Name,
		Name:          a.Name,
		OriginalTitle: a.Name,
		Album:         a.Name,
		Overview:      describeAlbum(a),
		Year:          releaseYear(a.ReleaseDate),
		ImageURL:      firstImage(a.Images),
		BackdropURL:   firstImage(a.Images),
	}
	if len(a.Artists) > 0 {
		out.Artist = a.Artists[0].Name
	}
	return out.Normalized(), nil
}

// transformArtist maps a wire artist into the artist detail shape.
func transformArtist(a apiArtist) (catalog.Artist, error) {
	if a.ID == "" {
		return catalog.Artist{}, fmt.Errorf("artist payload missing id")
	}

	return catalog.Artist{
		ID:         a.ID,
		Name:       a.Name,
		Genres:     a.Genres,
		ImageURL:   firstImage(a.Images),
		Popularity: a.Popularity,
	}, nil
}

// artistAsTrack adapts an artist into the Track listing shape.
func artistAsTrack(a apiArtist) (catalog.Track, error) {
	if a.ID == "" {
		return catalog.Track{}, fmt.Errorf("artist payload missing id")
	}

	out := catalog.Track{
		ID:            a.ID,
		ExternalID:    a.ID,
		Title:         a.Name,
		Name:          a.Name,
		OriginalTitle: a.Name,
		Artist:        a.Name,
		Overview:      strings.Join(a.Genres, ", "),
		ImageURL:      firstImage(a.Images),
		BackdropURL:   firstImage(a.Images),
		Popularity:    a.Popularity,
	}
	if len(a.Genres) > 0 {
		out.Genre = a.Genres[0]
	}
	return out.Normalized(), nil
}

func describeAlbum(a apiAlbum) string {
	kind := a.AlbumType
	if kind != "" {
		kind = strings.ToUpper(kind[:1]) + kind[1:]
	} else {
		kind = "Album"
	}
	return fmt.Sprintf("%s by %s", kind, strings.Join(artistNames(a.Artists), ", "))
}

// transformSearch converts a search response into a TrackList, selecting
// the transformer by the requested kind tag.
func transformSearch(kind Kind, resp searchResponse) (catalog.TrackList, error) {
	var out catalog.TrackList

	switch kind {
	case KindTrack:
		if resp.Tracks == nil {
			return out, nil
		}
		for _, item := range resp.Tracks.Items {
			t, err := transformTrack(item)
			if err != nil {
				return catalog.TrackList{}, err
			}
			out.Results = append(out.Results, t)
		}
	case KindAlbum:
		if resp.Albums == nil {
			return out, nil
		}
		for _, item := range resp.Albums.Items {
			t, err := albumAsTrack(item)
			if err != nil {
				return catalog.TrackList{}, err
			}
			out.Results = append(out.Results, t)
		}
	case KindArtist:
		if resp.Artists == nil {
			return out, nil
		}
		for _, item := range resp.Artists.Items {
			t, err := artistAsTrack(item)
			if err != nil {
				return catalog.TrackList{}, err
			}
			out.Results = append(out.Results, t)
		}
	default:
		return catalog.TrackList{}, fmt.Errorf("unknown search kind %q", kind)
	}

	return out, nil
}
