package local

import "testing"

func TestStore(t *testing.T) {
	s := NewStore()

	t.Run("Named Buckets", func(t *testing.T) {
		latest := s.GetBucket("tracks", "latest")
		popular := s.GetBucket("tracks", "popular")

		if len(latest.Results) != 8 {
			t.Errorf("expected 8 latest tracks, got %d", len(latest.Results))
		}
		if len(popular.Results) != 8 {
			t.Errorf("expected 8 popular tracks, got %d", len(popular.Results))
		}
		if latest.Results[0].Title != "Die With A Smile" {
			t.Errorf("unexpected first latest track %q", latest.Results[0].Title)
		}
		if popular.Results[0].Title != "Mr. Brightside" {
			t.Errorf("unexpected first popular track %q", popular.Results[0].Title)
		}
	})

	t.Run("Hero Bucket Is Derived", func(t *testing.T) {
		hero := s.GetBucket("tracks", "hero")
		latest := s.GetBucket("tracks", "latest")
		popular := s.GetBucket("tracks", "popular")

		if len(hero.Results) != 8 {
			t.Fatalf("expected 8 hero tracks, got %d", len(hero.Results))
		}
		for i := 0; i < 5; i++ {
			if hero.Results[i].ID != latest.Results[i].ID {
				t.Errorf("hero[%d] = %s, want latest[%d] = %s", i, hero.Results[i].ID, i, latest.Results[i].ID)
			}
		}
		for i := 0; i < 3; i++ {
			if hero.Results[5+i].ID != popular.Results[i].ID {
				t.Errorf("hero[%d] = %s, want popular[%d] = %s", 5+i, hero.Results[5+i].ID, i, popular.Results[i].ID)
			}
		}
	})

	t.Run("Unknown Combination Falls Back", func(t *testing.T) {
		got := s.GetBucket("albums", "trending")

		if len(got.Results) == 0 {
			t.Fatal("expected a non-empty fallback bucket")
		}
		if len(got.Results) > defaultLimit {
			t.Errorf("fallback bucket has %d tracks, want at most %d", len(got.Results), defaultLimit)
		}
	})

	t.Run("All Excludes Hero Duplicates", func(t *testing.T) {
		all := s.All()

		if len(all) != 16 {
			t.Fatalf("expected 16 tracks, got %d", len(all))
		}
		seen := make(map[string]bool, len(all))
		for _, tr := range all {
			if seen[tr.ID] {
				t.Errorf("track %s appears more than once", tr.ID)
			}
			seen[tr.ID] = true
		}
	})

	t.Run("Find By ID", func(t *testing.T) {
		got := s.FindByID("2qSkIjg1o9h3YT9RAgYN75")
		if got == nil {
			t.Fatal("expected a track")
		}
		if got.Title != "Espresso" {
			t.Errorf("got %q, want Espresso", got.Title)
		}
	})

	t.Run("Find By External Alias", func(t *testing.T) {
		// External ids mirror the catalog ids in the authored dataset,
		// so alias resolution is exercised with the same value.
		got := s.FindByID("003vvx7Niy0yvhvHt4a68B")
		if got == nil || got.ExternalID != "003vvx7Niy0yvhvHt4a68B" {
			t.Fatal("expected alias lookup to resolve")
		}
	})

	t.Run("Find Miss Returns Nil", func(t *testing.T) {
		if got := s.FindByID("no-such-id"); got != nil {
			t.Errorf("expected nil, got %+v", got)
		}
	})

	t.Run("Bucket Results Are Copies", func(t *testing.T) {
		a := s.GetBucket("tracks", "latest")
		a.Results[0].Title = "mutated"

		b := s.GetBucket("tracks", "latest")
		if b.Results[0].Title == "mutated" {
			t.Error("bucket mutation leaked into the store")
		}
	})
}
