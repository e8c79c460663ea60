package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nextsound/nextsound/internal/cache"
	"github.com/nextsound/nextsound/internal/local"
	"github.com/nextsound/nextsound/internal/shared"
	"github.com/nextsound/nextsound/internal/source"
)

func newTestHandler(t *testing.T) *APIHandler {
	t.Helper()
	logger := shared.NewLogger(io.Discard)
	selector := source.NewSelector(&shared.Config{}, local.NewStore(), nil, logger)
	store := cache.NewStore(cache.NewMemoryStorage(0), true, logger)
	return NewAPIHandler(selector, store, logger)
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]json.RawMessage {
	t.Helper()
	var env map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("invalid envelope JSON: %v", err)
	}
	return env
}

func TestAPIHandler(t *testing.T) {
	h := newTestHandler(t)

	t.Run("Browse Defaults To Latest", func(t *testing.T) {
		rec := get(t, h, "/api/browse")

		if rec.Code != http.StatusOK {
			t.Fatalf("status %d", rec.Code)
		}
		env := decodeEnvelope(t, rec)
		if string(env["isError"]) != "false" {
			t.Errorf("unexpected isError: %s", env["isError"])
		}
		var data struct {
			Results []json.RawMessage `json:"results"`
		}
		if err := json.Unmarshal(env["data"], &data); err != nil {
			t.Fatal(err)
		}
		if len(data.Results) != 8 {
			t.Errorf("expected 8 tracks, got %d", len(data.Results))
		}
	})

	t.Run("Envelope Carries Status Fields", func(t *testing.T) {
		env := decodeEnvelope(t, get(t, h, "/api/browse"))

		for _, field := range []string{"data", "isLoading", "isFetching", "isError"} {
			if _, ok := env[field]; !ok {
				t.Errorf("missing envelope field %q", field)
			}
		}
		if _, ok := env["error"]; ok {
			t.Error("error should be omitted on success")
		}
	})

	t.Run("Search", func(t *testing.T) {
		rec := get(t, h, "/api/search?q=espresso&limit=5")

		if rec.Code != http.StatusOK {
			t.Fatalf("status %d", rec.Code)
		}
		env := decodeEnvelope(t, rec)
		var data struct {
			Results []struct {
				Title string `json:"title"`
			} `json:"results"`
		}
		if err := json.Unmarshal(env["data"], &data); err != nil {
			t.Fatal(err)
		}
		if len(data.Results) == 0 || data.Results[0].Title != "Espresso" {
			t.Errorf("unexpected search results: %+v", data.Results)
		}
	})

	t.Run("Track Detail", func(t *testing.T) {
		rec := get(t, h, "/api/tracks/2qSkIjg1o9h3YT9RAgYN75")

		if rec.Code != http.StatusOK {
			t.Fatalf("status %d", rec.Code)
		}
		env := decodeEnvelope(t, rec)
		var data struct {
			Title string `json:"title"`
		}
		if err := json.Unmarshal(env["data"], &data); err != nil {
			t.Fatal(err)
		}
		if data.Title != "Espresso" {
			t.Errorf("got %q, want Espresso", data.Title)
		}
	})

	t.Run("Track Not Found", func(t *testing.T) {
		rec := get(t, h, "/api/tracks/no-such-id")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("status %d, want 404", rec.Code)
		}
		env := decodeEnvelope(t, rec)
		if string(env["isError"]) != "true" {
			t.Error("expected isError true")
		}
		var wire struct {
			Code    string `json:"code"`
			Status  int    `json:"status"`
			UserMsg string `json:"userMessage"`
		}
		if err := json.Unmarshal(env["error"], &wire); err != nil {
			t.Fatal(err)
		}
		if wire.Code != "NOT_FOUND" || wire.Status != http.StatusNotFound {
			t.Errorf("unexpected wire error: %+v", wire)
		}
		if wire.UserMsg == "" {
			t.Error("expected a user-facing message")
		}
	})

	t.Run("Track Without ID", func(t *testing.T) {
		if rec := get(t, h, "/api/tracks/"); rec.Code != http.StatusNotFound {
			t.Errorf("status %d, want 404", rec.Code)
		}
	})

	t.Run("Similar", func(t *testing.T) {
		rec := get(t, h, "/api/similar?id=2qSkIjg1o9h3YT9RAgYN75")
		if rec.Code != http.StatusOK {
			t.Fatalf("status %d", rec.Code)
		}
	})

	t.Run("Releases", func(t *testing.T) {
		rec := get(t, h, "/api/releases?limit=3")

		env := decodeEnvelope(t, rec)
		var data struct {
			Results []json.RawMessage `json:"results"`
		}
		if err := json.Unmarshal(env["data"], &data); err != nil {
			t.Fatal(err)
		}
		if len(data.Results) != 3 {
			t.Errorf("expected 3 releases, got %d", len(data.Results))
		}
	})

	t.Run("Cache Stats", func(t *testing.T) {
		rec := get(t, h, "/api/cache/stats")

		env := decodeEnvelope(t, rec)
		var stats struct {
			Enabled bool `json:"enabled"`
		}
		if err := json.Unmarshal(env["data"], &stats); err != nil {
			t.Fatal(err)
		}
		if !stats.Enabled {
			t.Error("expected the cache to report enabled")
		}
	})

	t.Run("Cache Clear Requires POST", func(t *testing.T) {
		if rec := get(t, h, "/api/cache/clear"); rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("GET status %d, want 405", rec.Code)
		}

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/cache/clear", nil))
		if rec.Code != http.StatusOK {
			t.Errorf("POST status %d, want 200", rec.Code)
		}
	})

	t.Run("Unknown Path", func(t *testing.T) {
		if rec := get(t, h, "/api/unknown"); rec.Code != http.StatusNotFound {
			t.Errorf("status %d, want 404", rec.Code)
		}
	})
}
