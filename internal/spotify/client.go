package spotify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/time/rate"

	"github.com/nextsound/nextsound/internal/cache"
	"github.com/nextsound/nextsound/internal/catalog"
	"github.com/nextsound/nextsound/internal/shared"
)

const defaultBaseURL = "https://api.spotify.com/v1"

// Retry policy. A request is attempted at most maxRetries+1 times; only
// transient classes (network, timeout, 5xx, 429) are retried.
const (
	maxRetries    = 3
	baseDelay     = 1000 * time.Millisecond
	maxDelay      = 10000 * time.Millisecond
	backoffFactor = 2
)

// defaultRateLimit bounds outgoing requests per second.
const defaultRateLimit = 10

// Client issues requests against the remote catalog with bounded retry,
// exponential backoff and cache-assisted degradation. Failed requests
// fall back to the offline cache before surfacing an error; successful
// ones are written back to it without blocking the caller.
type Client struct {
	baseURL    string
	httpClient *http.Client
	creds      *CredentialStore
	store      *cache.Store
	limiter    *rate.Limiter
	logger     *log.Logger

	// test seams
	sleep          func(ctx context.Context, d time.Duration) error
	jitter         func() float64
	syncCacheWrite bool
}

// ClientOpts contains configuration options for creating a Client.
type ClientOpts struct {
	Config      *shared.Config
	HTTPClient  *http.Client
	Credentials *CredentialStore
	Cache       *cache.Store
	Logger      *log.Logger
	RateLimit   float64
}

// NewClient creates a Client. The base URL is the intermediary proxy when
// one is configured, the public API otherwise.
func NewClient(opts ClientOpts) *Client {
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: 30 * time.Second}
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Credentials == nil {
		opts.Credentials = NewCredentialStore(opts.Config)
	}
	if opts.Cache == nil {
		opts.Cache = cache.NewStore(nil, false, opts.Logger)
	}
	if opts.RateLimit <= 0 {
		opts.RateLimit = defaultRateLimit
	}

	baseURL := defaultBaseURL
	if opts.Config != nil && opts.Config.UseProxy() {
		baseURL = strings.TrimRight(opts.Config.Proxy.BaseURL, "/")
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: opts.HTTPClient,
		creds:      opts.Credentials,
		store:      opts.Cache,
		limiter:    rate.NewLimiter(rate.Limit(opts.RateLimit), 1),
		logger:     shared.WithLogger(opts.Logger, "component", "spotify"),
		sleep:      sleepCtx,
		jitter:     rand.Float64,
	}
}

// Search runs a text search scoped to one kind and returns the
// transformed track list.
func (c *Client) Search(ctx context.Context, query string, kind Kind, limit int) (catalog.TrackList, error) {
	if strings.TrimSpace(query) == "" {
		return catalog.TrackList{}, missingArgError("query")
	}
	if limit <= 0 {
		limit = 20
	}

	path := fmt.Sprintf("/search?q=%s&type=%s&limit=%d&market=US", url.QueryEscape(query), kind, limit)
	key := fmt.Sprintf("search_%s_%s", kind, query)

	return fetch(ctx, c, path, key, cache.TTLSearchResults, func(resp searchResponse) (catalog.TrackList, error) {
		return transformSearch(kind, resp)
	})
}

// Track fetches a single track by id.
func (c *Client) Track(ctx context.Context, id string) (catalog.Track, error) {
	if strings.TrimSpace(id) == "" {
		return catalog.Track{}, missingArgError("id")
	}

	return fetch(ctx, c, "/tracks/"+url.PathEscape(id), "track_"+id, cache.TTLTrackDetails, transformTrack)
}

// Album fetches a single album by id.
func (c *Client) Album(ctx context.Context, id string) (catalog.Album, error) {
	if strings.TrimSpace(id) == "" {
		return catalog.Album{}, missingArgError("id")
	}

	return fetch(ctx, c, "/albums/"+url.PathEscape(id), "album_"+id, cache.TTLAlbumDetails, transformAlbum)
}

// Artist fetches a single artist by id.
func (c *Client) Artist(ctx context.Context, id string) (catalog.Artist, error) {
	if strings.TrimSpace(id) == "" {
		return catalog.Artist{}, missingArgError("id")
	}

	return fetch(ctx, c, "/artists/"+url.PathEscape(id), "artist_"+id, cache.TTLArtistDetails, transformArtist)
}

// NewReleases fetches the newest albums, adapted to the track listing
// shape.
func (c *Client) NewReleases(ctx context.Context, limit int) (catalog.TrackList, error) {
	if limit <= 0 {
		limit = 20
	}

	path := fmt.Sprintf("/browse/new-releases?limit=%d", limit)
	return fetch(ctx, c, path, "new_releases", cache.TTLNewReleases, func(resp newReleasesResponse) (catalog.TrackList, error) {
		var out catalog.TrackList
		for _, item := range resp.Albums.Items {
			t, err := albumAsTrack(item)
			if err != nil {
				return catalog.TrackList{}, err
			}
			out.Results = append(out.Results, t)
		}
		return out, nil
	})
}

// fetch runs one logical request: retried network call, transform, async
// cache write-through on success, cache fallback on transient failure.
//
// A cache hit during fallback is returned as if it were a live success;
// callers cannot distinguish the two. A miss propagates the original
// classified error.
func fetch[W, D any](ctx context.Context, c *Client, path, key string, ttl time.Duration, transform func(W) (D, error)) (D, error) {
	var zero D

	var wire W
	if apiErr := c.getJSON(ctx, path, &wire); apiErr != nil {
		if apiErr.Retryable {
			var cached D
			if c.store.GetInto(key, &cached) {
				c.logger.Info("serving cached payload after remote failure", "key", key, "type", apiErr.Type)
				return cached, nil
			}
		}
		return zero, apiErr
	}

	out, err := transform(wire)
	if err != nil {
		apiErr := newAPIError(ErrorData, http.StatusInternalServerError, "TRANSFORM_ERROR", err.Error(), false)
		apiErr.Context = map[string]any{"path": path}
		return zero, apiErr
	}

	if c.syncCacheWrite {
		c.store.Set(key, out, ttl)
	} else {
		go c.store.Set(key, out, ttl)
	}
	return out, nil
}

// getJSON performs the request with bounded retries and classifies every
// failure. Non-retryable errors end the loop immediately.
func (c *Client) getJSON(ctx context.Context, path string, out any) *APIError {
	logger := shared.WithLogger(c.logger, "request_id", shared.GenerateID(), "path", path)

	var lastErr *APIError
	for attempt := 1; attempt <= maxRetries+1; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return classifyTransport(err)
		}

		apiErr := c.doOnce(ctx, path, out)
		if apiErr == nil {
			if attempt > 1 {
				logger.Info("request succeeded after retry", "attempt", attempt)
			}
			return nil
		}

		lastErr = apiErr
		if !apiErr.Retryable || attempt > maxRetries {
			break
		}

		delay := c.backoffDelay(attempt)
		if apiErr.Type == ErrorRateLimit && apiErr.RetryAfter > 0 {
			delay = apiErr.RetryAfter
		}

		logger.Warn("retrying request", "attempt", attempt, "max_retries", maxRetries, "delay", delay, "type", apiErr.Type)
		if err := c.sleep(ctx, delay); err != nil {
			break
		}
	}

	logger.Error("request failed", "type", lastErr.Type, "code", lastErr.Code, "status", lastErr.Status)
	return lastErr
}

// doOnce performs a single attempt.
func (c *Client) doOnce(ctx context.Context, path string, out any) *APIError {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return newAPIError(ErrorClient, http.StatusBadRequest, "BAD_REQUEST", fmt.Sprintf("failed to create request: %v", err), false)
	}
	req.Header.Set("Content-Type", "application/json")

	if err := c.creds.Authorize(ctx, req); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			return apiErr
		}
		return newAPIError(ErrorAuth, http.StatusInternalServerError, "AUTH_FAILED", err.Error(), false)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return classifyTransport(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return newAPIError(ErrorNetwork, 0, "READ_FAILED", fmt.Sprintf("failed to read response: %v", err), true)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return classifyResponse(resp, body)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return newAPIError(ErrorData, resp.StatusCode, "DECODE_ERROR", fmt.Sprintf("failed to decode response: %v", err), false)
	}
	return nil
}

// backoffDelay computes the capped exponential delay for the given
// attempt, with up to 10% random jitter added (never subtracted).
func (c *Client) backoffDelay(attempt int) time.Duration {
	delay := baseDelay
	for i := 1; i < attempt; i++ {
		delay *= backoffFactor
	}
	if delay > maxDelay {
		delay = maxDelay
	}
	return delay + time.Duration(c.jitter()*0.1*float64(delay))
}

// classifyResponse maps a non-2xx response to an APIError, parsing the
// error body and the Retry-After header when present.
func classifyResponse(resp *http.Response, body []byte) *APIError {
	errType, retryable := classifyStatus(resp.StatusCode)

	message := strings.TrimSpace(string(body))
	var wireErr struct {
		Error struct {
			Status  int    `json:"status"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &wireErr); err == nil && wireErr.Error.Message != "" {
		message = wireErr.Error.Message
	}
	if message == "" {
		message = "API request failed"
	}

	apiErr := newAPIError(errType, resp.StatusCode, "HTTP_"+strconv.Itoa(resp.StatusCode), message, retryable)
	apiErr.Context = map[string]any{"url": resp.Request.URL.String()}

	if errType == ErrorRateLimit {
		if v := resp.Header.Get("Retry-After"); v != "" {
			if secs, err := strconv.Atoi(v); err == nil && secs >= 0 {
				apiErr.RetryAfter = time.Duration(secs) * time.Second
			}
		}
	}
	return apiErr
}

// classifyTransport maps a transport-level failure to an APIError.
func classifyTransport(err error) *APIError {
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()):
		return newAPIError(ErrorTimeout, 0, "TIMEOUT", err.Error(), true)
	case errors.Is(err, context.Canceled):
		return newAPIError(ErrorClient, 0, "CANCELED", err.Error(), false)
	case strings.Contains(err.Error(), "x509") || strings.Contains(err.Error(), "certificate"):
		return newAPIError(ErrorAccess, 0, "ACCESS_DENIED", err.Error(), false)
	default:
		return newAPIError(ErrorNetwork, 0, "NETWORK_ERROR", err.Error(), true)
	}
}

func missingArgError(name string) *APIError {
	code := "MISSING_" + strings.ToUpper(name)
	apiErr := newAPIError(ErrorClient, http.StatusBadRequest, code, name+" is required", false)
	apiErr.Context = map[string]any{"argument": name}
	return apiErr
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
