package rank

import (
	"testing"

	"github.com/nextsound/nextsound/internal/catalog"
)

func testCandidates() []catalog.Track {
	return []catalog.Track{
		{ID: "1", Title: "Flowers", Artist: "Miley Cyrus", Album: "Endless Summer Vacation", Genre: "Pop", Year: 2023, Popularity: 89},
		{ID: "2", Title: "Espresso", Artist: "Sabrina Carpenter", Album: "Short n' Sweet", Genre: "Pop", Year: 2024, Popularity: 92},
		{ID: "3", Title: "Mr. Brightside", Artist: "The Killers", Album: "Hot Fuss", Genre: "Rock", Year: 2004, Popularity: 88},
		{ID: "4", Title: "Here Comes the Sun", Artist: "The Beatles", Album: "Abbey Road", Genre: "Classic Rock", Year: 1969, Popularity: 86},
		{ID: "5", Title: "Kill Bill", Artist: "SZA", Album: "SOS", Genre: "R&B", Year: 2022, Popularity: 90},
	}
}

func TestRank(t *testing.T) {
	t.Run("Empty Query", func(t *testing.T) {
		if got := Rank(testCandidates(), "", 0); got != nil {
			t.Errorf("expected nil for empty query, got %d entries", len(got))
		}
		if got := Rank(testCandidates(), "   ", 0); got != nil {
			t.Errorf("expected nil for blank query, got %d entries", len(got))
		}
	})

	t.Run("Empty Candidates", func(t *testing.T) {
		if got := Rank(nil, "flowers", 0); got != nil {
			t.Errorf("expected nil for empty candidates, got %d entries", len(got))
		}
	})

	t.Run("Determinism", func(t *testing.T) {
		first := Rank(testCandidates(), "rock", 0)
		for i := 0; i < 10; i++ {
			again := Rank(testCandidates(), "rock", 0)
			if len(again) != len(first) {
				t.Fatalf("run %d: expected %d results, got %d", i, len(first), len(again))
			}
			for j := range first {
				if again[j].Track.ID != first[j].Track.ID || again[j].Score != first[j].Score {
					t.Fatalf("run %d: order diverged at %d: %s vs %s", i, j, first[j].Track.ID, again[j].Track.ID)
				}
			}
		}
	})

	t.Run("Exact Title Match", func(t *testing.T) {
		got := Rank(testCandidates(), "flowers", 0)
		if len(got) == 0 {
			t.Fatal("expected results")
		}
		if got[0].Track.ID != "1" {
			t.Errorf("expected Flowers first, got %s", got[0].Track.Title)
		}
		if !got[0].Exact {
			t.Error("expected exact-match flag")
		}
		if got[0].Score < 100 {
			t.Errorf("expected exact title score >= 100, got %d", got[0].Score)
		}
	})

	t.Run("Exact Match Precedence", func(t *testing.T) {
		// "pop" matches the Pop genre exactly on two tracks and as
		// substring text elsewhere.
		got := Rank(testCandidates(), "pop", 0)
		seenNonExact := false
		for _, s := range got {
			if !s.Exact {
				seenNonExact = true
			} else if seenNonExact {
				t.Fatalf("exact match %s sorted after a non-exact entry", s.Track.Title)
			}
		}
	})

	t.Run("Exact Tier Short Circuit", func(t *testing.T) {
		// An artist-exact hit scores 90, not 90+title credit.
		candidates := []catalog.Track{
			{ID: "a", Title: "Something Else", Artist: "sza", Year: 0, Popularity: 10},
		}
		got := Rank(candidates, "sza", 0)
		if len(got) != 1 {
			t.Fatalf("expected 1 result, got %d", len(got))
		}
		if got[0].Score != 90 {
			t.Errorf("expected artist-exact score 90, got %d", got[0].Score)
		}
		if !got[0].Exact {
			t.Error("expected exact-match flag for artist match")
		}
	})

	t.Run("Score Monotonicity", func(t *testing.T) {
		base := catalog.Track{ID: "m", Title: "Golden Hour", Artist: "JVKE", Popularity: 50}
		with := base
		with.Title = "Golden Hour sunset mix"

		query := "sunset"
		baseScore := 0
		if got := Rank([]catalog.Track{base}, query, 0); len(got) > 0 {
			baseScore = got[0].Score
		}
		got := Rank([]catalog.Track{with}, query, 0)
		if len(got) == 0 {
			t.Fatal("expected the literal occurrence to produce a hit")
		}
		if got[0].Score < baseScore {
			t.Errorf("adding the query to the title lowered the score: %d -> %d", baseScore, got[0].Score)
		}
	})

	t.Run("Year Query Scenario", func(t *testing.T) {
		candidates := []catalog.Track{
			{ID: "y1", Title: "Espresso", Artist: "Sabrina Carpenter", Album: "Summer Hits 2024", Year: 2024, Popularity: 92},
			{ID: "y2", Title: "Flowers", Artist: "Miley Cyrus", Album: "Endless Summer Vacation", Year: 2023, Popularity: 89},
			{ID: "y3", Title: "Mr. Brightside", Artist: "The Killers", Album: "Hot Fuss", Year: 2004, Popularity: 88},
		}
		got := Rank(candidates, "2024", 0)
		if len(got) == 0 {
			t.Fatal("expected results for year query")
		}
		if got[0].Track.ID != "y1" {
			t.Errorf("expected the 2024 release first, got %s", got[0].Track.Title)
		}
		// 85 year boost + 80 album substring credit + per-term and
		// popularity bonuses on top.
		if got[0].Score < 185 {
			t.Errorf("expected 2024 track to score >= 185, got %d", got[0].Score)
		}
	})

	t.Run("Genre Family Boost", func(t *testing.T) {
		candidates := []catalog.Track{
			{ID: "g1", Title: "Track A", Artist: "A", Genre: "Synthpop", Popularity: 10},
			{ID: "g2", Title: "Track B", Artist: "B", Genre: "Country", Popularity: 10},
		}
		got := Rank(candidates, "electronic", 0)
		if len(got) != 1 || got[0].Track.ID != "g1" {
			t.Fatalf("expected only the synthpop track to match, got %d results", len(got))
		}
		if got[0].Score != 75 {
			t.Errorf("expected genre-family score 75, got %d", got[0].Score)
		}
	})

	t.Run("Zero Score Discard", func(t *testing.T) {
		candidates := []catalog.Track{
			{ID: "z1", Title: "Quiet Song", Artist: "Nobody", Popularity: 40},
			{ID: "z2", Title: "Another One", Artist: "Somebody", Popularity: 55},
		}
		got := Rank(candidates, "zzzzqqq", 0)
		if len(got) != 0 {
			t.Errorf("expected no results for nonsense query, got %d", len(got))
		}
	})

	t.Run("Popularity Keeps Popular Tracks In", func(t *testing.T) {
		// The popularity boost applies to every non-exact candidate, so
		// mainstream tracks surface even for otherwise miss queries.
		candidates := []catalog.Track{
			{ID: "p1", Title: "Big Hit", Artist: "Star", Popularity: 95},
			{ID: "p2", Title: "Deep Cut", Artist: "Obscure", Popularity: 20},
		}
		got := Rank(candidates, "zzzzqqq", 0)
		if len(got) != 1 || got[0].Track.ID != "p1" {
			t.Fatalf("expected only the popular track to survive, got %d results", len(got))
		}
		if got[0].Score != 15 {
			t.Errorf("expected popularity-only score 15, got %d", got[0].Score)
		}
	})

	t.Run("Limit Truncation", func(t *testing.T) {
		got := Rank(testCandidates(), "the", 1)
		if len(got) > 1 {
			t.Errorf("expected at most 1 result, got %d", len(got))
		}
		unbounded := Rank(testCandidates(), "the", 0)
		if len(unbounded) < 2 {
			t.Fatalf("expected multiple unbounded results, got %d", len(unbounded))
		}
	})

	t.Run("Stable Tiebreak", func(t *testing.T) {
		candidates := []catalog.Track{
			{ID: "t1", Title: "same song", Artist: "A", Popularity: 10},
			{ID: "t2", Title: "same song", Artist: "B", Popularity: 10},
		}
		got := Rank(candidates, "same song", 0)
		if len(got) != 2 {
			t.Fatalf("expected 2 results, got %d", len(got))
		}
		if got[0].Track.ID != "t1" || got[1].Track.ID != "t2" {
			t.Error("tie not broken by input order")
		}
	})
}

func TestTracks(t *testing.T) {
	scored := Rank(testCandidates(), "flowers", 0)
	tracks := Tracks(scored)
	if len(tracks) != len(scored) {
		t.Fatalf("expected %d tracks, got %d", len(scored), len(tracks))
	}
	for i := range tracks {
		if tracks[i].ID != scored[i].Track.ID {
			t.Errorf("order changed at %d", i)
		}
	}
}
