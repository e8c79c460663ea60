package spotify

import (
	"strings"
	"testing"
)

func TestTransformTrack(t *testing.T) {
	t.Run("Full Payload", func(t *testing.T) {
		in := apiTrack{
			ID:   "t1",
			Name: "Espresso",
			Artists: []apiArtist{
				{ID: "a1", Name: "Sabrina Carpenter", Genres: []string{"pop", "dance pop"}},
				{ID: "a2", Name: "Feature"},
			},
			Album: apiAlbum{
				ID:          "al1",
				Name:        "Short n' Sweet",
				ReleaseDate: "2024-08-23",
				Images:      []apiImage{{URL: "http://img/big"}, {URL: "http://img/small"}},
			},
			DurationMS: 175000,
			Popularity: 92,
		}

		got, err := transformTrack(in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "t1" || got.ExternalID != "t1" {
			t.Errorf("unexpected ids: %+v", got)
		}
		if got.Title != "Espresso" || got.Album != "Short n' Sweet" {
			t.Errorf("unexpected names: %+v", got)
		}
		if got.Artist != "Sabrina Carpenter" {
			t.Errorf("expected the primary artist, got %q", got.Artist)
		}
		if got.Genre != "pop" {
			t.Errorf("expected the primary artist genre, got %q", got.Genre)
		}
		if got.Year != 2024 {
			t.Errorf("expected the release year, got %d", got.Year)
		}
		if got.ImageURL != "http://img/big" {
			t.Errorf("expected the first image, got %q", got.ImageURL)
		}
		if !strings.Contains(got.Overview, "Feature") {
			t.Errorf("expected all artists in the overview, got %q", got.Overview)
		}
	})

	t.Run("Missing ID", func(t *testing.T) {
		if _, err := transformTrack(apiTrack{Name: "nameless"}); err == nil {
			t.Error("expected an error for a missing id")
		}
	})

	t.Run("Malformed Release Date", func(t *testing.T) {
		got, err := transformTrack(apiTrack{ID: "t1", Name: "X", Album: apiAlbum{ReleaseDate: "???"}})
		if err != nil {
			t.Fatal(err)
		}
		if got.Year != 0 {
			t.Errorf("expected year 0, got %d", got.Year)
		}
	})

	t.Run("Negative Numbers Are Clamped", func(t *testing.T) {
		got, err := transformTrack(apiTrack{ID: "t1", Name: "X", DurationMS: -1, Popularity: -5})
		if err != nil {
			t.Fatal(err)
		}
		if got.DurationMS != 0 || got.Popularity != 0 {
			t.Errorf("expected clamped values, got %+v", got)
		}
	})
}

func TestAlbumAsTrack(t *testing.T) {
	got, err := albumAsTrack(apiAlbum{
		ID:          "al1",
		Name:        "Future Nostalgia",
		AlbumType:   "album",
		Artists:     []apiArtist{{Name: "Dua Lipa"}},
		ReleaseDate: "2020-03-27",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Title != "Future Nostalgia" || got.Album != "Future Nostalgia" {
		t.Errorf("unexpected names: %+v", got)
	}
	if got.Artist != "Dua Lipa" || got.Year != 2020 {
		t.Errorf("unexpected fields: %+v", got)
	}
	if got.Overview != "Album by Dua Lipa" {
		t.Errorf("unexpected overview %q", got.Overview)
	}
}

func TestArtistAsTrack(t *testing.T) {
	got, err := artistAsTrack(apiArtist{
		ID:     "a1",
		Name:   "SZA",
		Genres: []string{"r&b", "pop"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Title != "SZA" || got.Artist != "SZA" {
		t.Errorf("unexpected names: %+v", got)
	}
	if got.Genre != "r&b" || got.Overview != "r&b, pop" {
		t.Errorf("unexpected genre fields: %+v", got)
	}
}

func TestTransformSearch(t *testing.T) {
	t.Run("Tracks", func(t *testing.T) {
		resp := searchResponse{Tracks: &page[apiTrack]{Items: []apiTrack{{ID: "t1", Name: "X"}}}}
		got, err := transformSearch(KindTrack, resp)
		if err != nil {
			t.Fatal(err)
		}
		if len(got.Results) != 1 || got.Results[0].ID != "t1" {
			t.Errorf("unexpected results: %+v", got.Results)
		}
	})

	t.Run("Albums", func(t *testing.T) {
		resp := searchResponse{Albums: &page[apiAlbum]{Items: []apiAlbum{{ID: "al1", Name: "A"}}}}
		got, err := transformSearch(KindAlbum, resp)
		if err != nil {
			t.Fatal(err)
		}
		if len(got.Results) != 1 || got.Results[0].ID != "al1" {
			t.Errorf("unexpected results: %+v", got.Results)
		}
	})

	t.Run("Missing Page Is Empty", func(t *testing.T) {
		got, err := transformSearch(KindArtist, searchResponse{})
		if err != nil {
			t.Fatal(err)
		}
		if len(got.Results) != 0 {
			t.Errorf("expected no results, got %+v", got.Results)
		}
	})

	t.Run("Unknown Kind", func(t *testing.T) {
		if _, err := transformSearch(Kind("playlist"), searchResponse{}); err == nil {
			t.Error("expected an error for an unknown kind")
		}
	})

	t.Run("Bad Item Aborts", func(t *testing.T) {
		resp := searchResponse{Tracks: &page[apiTrack]{Items: []apiTrack{{ID: "t1", Name: "ok"}, {Name: "no id"}}}}
		if _, err := transformSearch(KindTrack, resp); err == nil {
			t.Error("expected the malformed item to abort the transform")
		}
	})
}
