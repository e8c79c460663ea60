// package source routes data requests between the built-in catalog and
// the live remote client, normalizing both into one response envelope.
package source

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/log"

	"github.com/nextsound/nextsound/internal/catalog"
	"github.com/nextsound/nextsound/internal/local"
	"github.com/nextsound/nextsound/internal/rank"
	"github.com/nextsound/nextsound/internal/shared"
	"github.com/nextsound/nextsound/internal/spotify"
)

// similarLimit bounds the local similar-tracks slice.
const similarLimit = 10

// Envelope is the uniform response shape every operation returns,
// regardless of which source served it.
type Envelope[T any] struct {
	Data       T
	IsLoading  bool
	IsFetching bool
	IsError    bool
	Err        error
}

func ok[T any](data T) Envelope[T] {
	return Envelope[T]{Data: data}
}

func fail[T any](err error) Envelope[T] {
	return Envelope[T]{IsError: true, Err: err}
}

// Remote is the live-catalog surface the selector routes to. *spotify.Client
// satisfies it.
type Remote interface {
	Search(ctx context.Context, query string, kind spotify.Kind, limit int) (catalog.TrackList, error)
	Track(ctx context.Context, id string) (catalog.Track, error)
	NewReleases(ctx context.Context, limit int) (catalog.TrackList, error)
}

// Selector is the single entry point for catalog data. The local/remote
// decision is re-evaluated on every call from the current configuration,
// never latched.
type Selector struct {
	config *shared.Config
	local  *local.Store
	remote Remote
	logger *log.Logger

	// test seam; defaults to the wall clock's current year
	year func() int
}

// NewSelector builds a Selector over the given sources.
func NewSelector(config *shared.Config, localStore *local.Store, remote Remote, logger *log.Logger) *Selector {
	if localStore == nil {
		localStore = local.NewStore()
	}
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Selector{
		config: config,
		local:  localStore,
		remote: remote,
		logger: shared.WithLogger(logger, "component", "source"),
		year:   func() int { return time.Now().Year() },
	}
}

// live reports whether calls should go to the remote client. True when
// either direct credentials or an intermediary proxy is configured.
func (s *Selector) live() bool {
	return s.config != nil && s.config.Live() && s.remote != nil
}

// Browse returns a bucketed listing. The local path serves the matching
// bucket directly; the remote path combines one new-music query per
// recent year and refines the union through the listing pipeline.
func (s *Selector) Browse(ctx context.Context, category, kind string) Envelope[catalog.TrackList] {
	if !s.live() {
		return ok(s.local.GetBucket(category, kind))
	}

	year := s.year()
	queries := []string{
		"year:" + strconv.Itoa(year),
		"year:" + strconv.Itoa(year-1),
	}

	var combined []catalog.Track
	for _, q := range queries {
		list, err := s.remote.Search(ctx, q, spotify.KindTrack, 50)
		if err != nil {
			return fail[catalog.TrackList](err)
		}
		combined = append(combined, list.Results...)
	}

	return ok(catalog.TrackList{Results: refineListing(combined, s.logger)})
}

// Search runs a free-text search. The local path ranks the union of all
// buckets; the remote path delegates to the client's search operation.
func (s *Selector) Search(ctx context.Context, query string, limit int) Envelope[catalog.TrackList] {
	if query == "" {
		return ok(catalog.TrackList{})
	}

	if !s.live() {
		scored := rank.Rank(s.local.All(), query, limit)
		return ok(catalog.TrackList{Results: rank.Tracks(scored)})
	}

	list, err := s.remote.Search(ctx, query, spotify.KindTrack, limit)
	if err != nil {
		return fail[catalog.TrackList](err)
	}
	return ok(list)
}

// QuickSearch runs a bounded interactive search and shapes the hits for
// command-palette surfaces, flagging exact matches.
func (s *Selector) QuickSearch(ctx context.Context, query string) Envelope[[]catalog.SearchResult] {
	if query == "" {
		return ok([]catalog.SearchResult{})
	}

	if !s.live() {
		scored := rank.Rank(s.local.All(), query, rank.InteractiveLimit)
		out := make([]catalog.SearchResult, 0, len(scored))
		for _, sc := range scored {
			out = append(out, catalog.ResultFromTrack(sc.Track, sc.Exact))
		}
		return ok(out)
	}

	list, err := s.remote.Search(ctx, query, spotify.KindTrack, rank.InteractiveLimit)
	if err != nil {
		return fail[[]catalog.SearchResult](err)
	}

	out := make([]catalog.SearchResult, 0, len(list.Results))
	for _, t := range list.Results {
		out = append(out, catalog.ResultFromTrack(t, false))
	}
	return ok(out)
}

// Similar returns tracks related to the given one. The local path slices
// the popular bucket; the remote path issues an exploratory query.
func (s *Selector) Similar(ctx context.Context, id string) Envelope[catalog.TrackList] {
	if !s.live() {
		popular := s.local.GetBucket("tracks", "popular").Results
		if len(popular) > similarLimit {
			popular = popular[:similarLimit]
		}
		return ok(catalog.TrackList{Results: popular})
	}

	list, err := s.remote.Search(ctx, "recommended", spotify.KindTrack, similarLimit)
	if err != nil {
		return fail[catalog.TrackList](err)
	}
	return ok(list)
}

// Get fetches a single track by id. A local miss surfaces a not-found
// error, distinct from any remote failure class.
func (s *Selector) Get(ctx context.Context, id string) Envelope[catalog.Track] {
	if !s.live() {
		if t := s.local.FindByID(id); t != nil {
			return ok(*t)
		}
		return fail[catalog.Track](fmt.Errorf("%w: %s", shared.ErrTrackNotFound, id))
	}

	track, err := s.remote.Track(ctx, id)
	if err != nil {
		return fail[catalog.Track](err)
	}
	return ok(track)
}

// NewReleases lists recently released albums as tracks. The local path
// reuses the latest bucket.
func (s *Selector) NewReleases(ctx context.Context, limit int) Envelope[catalog.TrackList] {
	if !s.live() {
		latest := s.local.GetBucket("tracks", "latest").Results
		if limit > 0 && len(latest) > limit {
			latest = latest[:limit]
		}
		return ok(catalog.TrackList{Results: latest})
	}

	list, err := s.remote.NewReleases(ctx, limit)
	if err != nil {
		return fail[catalog.TrackList](err)
	}
	return ok(list)
}
