package cache

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/nextsound/nextsound/internal/shared"
)

const (
	cachePrefix  = "nextsound_cache_"
	cacheVersion = "v1"
)

// Content-aware expirations. Detail payloads are stable; listings churn.
const (
	TTLSearchResults = 5 * time.Minute
	TTLTrackDetails  = 24 * time.Hour
	TTLAlbumDetails  = 24 * time.Hour
	TTLArtistDetails = 24 * time.Hour
	TTLTopTracks     = 15 * time.Minute
	TTLFeatured      = 30 * time.Minute
	TTLNewReleases   = time.Hour
)

// entry is the serialized form of one cached payload.
type entry struct {
	Payload   json.RawMessage `json:"payload"`
	StoredAt  int64           `json:"stored_at"`
	ExpiresAt int64           `json:"expires_at"`
}

// Stats aggregates cache observability counters.
type Stats struct {
	Size    int  `json:"size"`
	Items   int  `json:"items"`
	Enabled bool `json:"enabled"`
}

// Store is the versioned, TTL'd response cache. A disabled Store turns
// every method into a no-op so callers never special-case the flag.
type Store struct {
	storage Storage
	enabled bool
	logger  *log.Logger
	now     func() time.Time
}

// NewStore wraps storage in a Store. Construction sweeps expired entries
// eagerly so reads don't pay the cleanup cost.
func NewStore(storage Storage, enabled bool, logger *log.Logger) *Store {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	s := &Store{
		storage: storage,
		enabled: enabled && storage != nil,
		logger:  logger,
		now:     time.Now,
	}
	if s.enabled {
		s.Sweep()
	}
	return s
}

// Enabled reports whether the cache is active.
func (s *Store) Enabled() bool { return s.enabled }

func (s *Store) fullKey(key string) string {
	return cachePrefix + cacheVersion + "_" + key
}

// Set serializes payload under the versioned key with the given TTL. On
// quota pressure it sweeps expired entries and retries once; a second
// failure drops the write. Set never returns an error: the cache is
// best-effort.
func (s *Store) Set(key string, payload any, ttl time.Duration) {
	if !s.enabled {
		return
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		s.logger.Warn("failed to serialize cache payload", "key", key, "error", err)
		return
	}

	now := s.now()
	value, err := json.Marshal(entry{
		Payload:   raw,
		StoredAt:  now.UnixMilli(),
		ExpiresAt: now.Add(ttl).UnixMilli(),
	})
	if err != nil {
		s.logger.Warn("failed to serialize cache entry", "key", key, "error", err)
		return
	}

	full := s.fullKey(key)
	if err := s.storage.SetItem(full, string(value)); err != nil {
		s.logger.Warn("cache write failed, sweeping and retrying", "key", key, "error", err)
		s.Sweep()
		if err := s.storage.SetItem(full, string(value)); err != nil {
			s.logger.Error("cache write failed after sweep, dropping", "key", key, "error", err)
		}
	}
}

// Get returns the cached payload for key, or nil when the entry is
// absent, corrupted, or expired. Corrupted and expired entries are
// removed as a side effect of the read.
func (s *Store) Get(key string) json.RawMessage {
	if !s.enabled {
		return nil
	}

	full := s.fullKey(key)
	value, ok, err := s.storage.GetItem(full)
	if err != nil {
		s.logger.Warn("cache read failed", "key", key, "error", err)
		return nil
	}
	if !ok {
		return nil
	}

	var e entry
	if err := json.Unmarshal([]byte(value), &e); err != nil {
		s.logger.Warn("removing corrupted cache entry", "key", key, "error", err)
		s.Remove(key)
		return nil
	}

	if s.now().UnixMilli() > e.ExpiresAt {
		s.Remove(key)
		return nil
	}

	return e.Payload
}

// GetInto unmarshals the cached payload for key into out, reporting
// whether a live entry was found.
func (s *Store) GetInto(key string, out any) bool {
	raw := s.Get(key)
	if raw == nil {
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		s.logger.Warn("removing cache entry with mismatched payload", "key", key, "error", err)
		s.Remove(key)
		return false
	}
	return true
}

// Has reports whether key holds a live entry. Defined as Get(key) != nil,
// expiry side effects included.
func (s *Store) Has(key string) bool {
	return s.Get(key) != nil
}

// Remove deletes the entry for key.
func (s *Store) Remove(key string) {
	if !s.enabled {
		return
	}
	if err := s.storage.RemoveItem(s.fullKey(key)); err != nil {
		s.logger.Warn("cache remove failed", "key", key, "error", err)
	}
}

// Clear removes every entry under the versioned prefix, leaving unrelated
// storage untouched.
func (s *Store) Clear() {
	if !s.enabled {
		return
	}

	keys, err := s.storage.Keys()
	if err != nil {
		s.logger.Warn("cache clear failed", "error", err)
		return
	}

	prefix := s.fullKey("")
	for _, k := range keys {
		if strings.HasPrefix(k, prefix) {
			if err := s.storage.RemoveItem(k); err != nil {
				s.logger.Warn("cache clear failed for key", "key", k, "error", err)
			}
		}
	}
}

// Stats returns aggregate byte size and item count for entries under the
// versioned prefix.
func (s *Store) Stats() Stats {
	if !s.enabled {
		return Stats{}
	}

	stats := Stats{Enabled: true}
	keys, err := s.storage.Keys()
	if err != nil {
		s.logger.Warn("cache stats failed", "error", err)
		return stats
	}

	prefix := s.fullKey("")
	for _, k := range keys {
		if !strings.HasPrefix(k, prefix) {
			continue
		}
		if v, ok, err := s.storage.GetItem(k); err == nil && ok {
			stats.Size += len(v)
			stats.Items++
		}
	}
	return stats
}

// Sweep removes expired and corrupted entries under the versioned prefix.
func (s *Store) Sweep() {
	if !s.enabled {
		return
	}

	keys, err := s.storage.Keys()
	if err != nil {
		s.logger.Warn("cache sweep failed", "error", err)
		return
	}

	prefix := s.fullKey("")
	now := s.now().UnixMilli()
	removed := 0
	for _, k := range keys {
		if !strings.HasPrefix(k, prefix) {
			continue
		}
		value, ok, err := s.storage.GetItem(k)
		if err != nil || !ok {
			continue
		}

		var e entry
		if err := json.Unmarshal([]byte(value), &e); err != nil || now > e.ExpiresAt {
			if err := s.storage.RemoveItem(k); err == nil {
				removed++
			}
		}
	}

	if removed > 0 {
		s.logger.Debug("swept expired cache entries", "removed", removed)
	}
}
