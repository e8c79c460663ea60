package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/nextsound/nextsound/internal/cache"
	"github.com/nextsound/nextsound/internal/shared"
	"github.com/nextsound/nextsound/internal/source"
	"github.com/nextsound/nextsound/internal/spotify"
)

// APIHandler exposes the source selector and the response cache as a
// JSON API. Responses always carry the uniform envelope shape.
type APIHandler struct {
	selector *source.Selector
	store    *cache.Store
	logger   *log.Logger
}

// NewAPIHandler creates an APIHandler over the given selector and cache.
func NewAPIHandler(selector *source.Selector, store *cache.Store, logger *log.Logger) *APIHandler {
	return &APIHandler{
		selector: selector,
		store:    store,
		logger:   shared.WithLogger(logger, "component", "api"),
	}
}

// Routes returns the path patterns this handler serves.
func (h *APIHandler) Routes() []string {
	return []string{
		"/api/browse",
		"/api/search",
		"/api/similar",
		"/api/releases",
		"/api/tracks/",
		"/api/cache/stats",
		"/api/cache/clear",
	}
}

// ServeHTTP dispatches by path.
func (h *APIHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.URL.Path == "/api/browse":
		h.handleBrowse(w, r)
	case r.URL.Path == "/api/search":
		h.handleSearch(w, r)
	case r.URL.Path == "/api/similar":
		h.handleSimilar(w, r)
	case r.URL.Path == "/api/releases":
		h.handleReleases(w, r)
	case strings.HasPrefix(r.URL.Path, "/api/tracks/"):
		h.handleTrack(w, r)
	case r.URL.Path == "/api/cache/stats":
		h.handleCacheStats(w, r)
	case r.URL.Path == "/api/cache/clear":
		h.handleCacheClear(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (h *APIHandler) handleBrowse(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	kind := r.URL.Query().Get("type")
	if category == "" {
		category = "tracks"
	}
	if kind == "" {
		kind = "latest"
	}

	env := h.selector.Browse(r.Context(), category, kind)
	writeEnvelope(w, env.Data, env.Err)
}

func (h *APIHandler) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	limit := queryInt(r, "limit", 20)

	env := h.selector.Search(r.Context(), query, limit)
	writeEnvelope(w, env.Data, env.Err)
}

func (h *APIHandler) handleSimilar(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")

	env := h.selector.Similar(r.Context(), id)
	writeEnvelope(w, env.Data, env.Err)
}

func (h *APIHandler) handleReleases(w http.ResponseWriter, r *http.Request) {
	env := h.selector.NewReleases(r.Context(), queryInt(r, "limit", 20))
	writeEnvelope(w, env.Data, env.Err)
}

func (h *APIHandler) handleTrack(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/tracks/")
	if id == "" {
		writeEnvelope(w, nil, shared.ErrTrackNotFound)
		return
	}

	env := h.selector.Get(r.Context(), id)
	writeEnvelope(w, env.Data, env.Err)
}

func (h *APIHandler) handleCacheStats(w http.ResponseWriter, r *http.Request) {
	writeEnvelope(w, h.store.Stats(), nil)
}

func (h *APIHandler) handleCacheClear(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	h.store.Clear()
	h.logger.Info("cache cleared via api")
	writeEnvelope(w, h.store.Stats(), nil)
}

// wireEnvelope is the serialized form of the response envelope.
type wireEnvelope struct {
	Data       any        `json:"data"`
	IsLoading  bool       `json:"isLoading"`
	IsFetching bool       `json:"isFetching"`
	IsError    bool       `json:"isError"`
	Error      *wireError `json:"error,omitempty"`
}

type wireError struct {
	Type      string `json:"type"`
	Code      string `json:"code"`
	Status    int    `json:"status"`
	Message   string `json:"message"`
	UserMsg   string `json:"userMessage"`
	Retryable bool   `json:"retryable"`
}

// writeEnvelope serializes the envelope, mapping classified errors to
// their HTTP status and local misses to 404.
func writeEnvelope(w http.ResponseWriter, data any, err error) {
	env := wireEnvelope{Data: data}
	status := http.StatusOK

	if err != nil {
		env.IsError = true

		var apiErr *spotify.APIError
		switch {
		case errors.As(err, &apiErr):
			env.Error = &wireError{
				Type:      string(apiErr.Type),
				Code:      apiErr.Code,
				Status:    apiErr.Status,
				Message:   apiErr.Message,
				UserMsg:   apiErr.UserMessage,
				Retryable: apiErr.Retryable,
			}
			status = apiErr.Status
			if status < 400 {
				status = http.StatusBadGateway
			}
		case errors.Is(err, shared.ErrTrackNotFound):
			env.Error = &wireError{Code: "NOT_FOUND", Status: http.StatusNotFound, Message: err.Error(), UserMsg: "Track not found."}
			status = http.StatusNotFound
		default:
			env.Error = &wireError{Code: "INTERNAL", Status: http.StatusInternalServerError, Message: err.Error(), UserMsg: "Something went wrong. Please try again."}
			status = http.StatusInternalServerError
		}
	}

	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}

func queryInt(r *http.Request, name string, fallback int) int {
	v := r.URL.Query().Get(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
