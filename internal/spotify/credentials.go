package spotify

import (
	"context"
	"net/http"
	"sync"
	"time"

	"golang.org/x/oauth2"

	"github.com/nextsound/nextsound/internal/shared"
)

// CredentialStore owns the bearer credential for direct API access. The
// token lives in process memory only; it is never written to durable
// storage and vanishes on restart.
//
// One store is owned by one [Client]. There is no package-level token
// state.
type CredentialStore struct {
	mu     sync.Mutex
	config *shared.Config
	token  *oauth2.Token
	now    func() time.Time
}

// NewCredentialStore creates a store bound to the given configuration.
func NewCredentialStore(config *shared.Config) *CredentialStore {
	return &CredentialStore{config: config, now: time.Now}
}

// Authorize sets the Authorization header for req, acquiring a credential
// if needed. In proxy mode no header is set at all: the intermediary
// authenticates server-side and an extra header would be rejected.
func (c *CredentialStore) Authorize(ctx context.Context, req *http.Request) error {
	if c.config.UseProxy() {
		return nil
	}

	token, err := c.Get(ctx)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	return nil
}

// Get returns a valid access token, refreshing lazily when the cached one
// is absent or expired.
//
// Acquiring a token directly from the credential endpoint would expose the
// client secret, so direct acquisition is a fatal configuration error:
// callers must route through the intermediary proxy instead. The error is
// non-retryable.
func (c *CredentialStore) Get(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != nil && c.token.AccessToken != "" && (c.token.Expiry.IsZero() || c.now().Before(c.token.Expiry)) {
		return c.token.AccessToken, nil
	}
	c.token = nil

	if !c.config.HasCredentials() {
		err := newAPIError(ErrorAuth, http.StatusInternalServerError, "MISSING_CREDENTIALS", "client credentials not configured", false)
		err.Context = map[string]any{"has_client_id": c.config.Credentials.ClientID != ""}
		return "", err
	}

	err := newAPIError(ErrorAuth, http.StatusInternalServerError, "DIRECT_AUTH_DISABLED", "direct credential acquisition disabled, use the intermediary proxy", false)
	err.Context = map[string]any{"use_proxy": c.config.UseProxy()}
	return "", err
}

// SetToken caches a credential obtained out of band (tests, or a future
// proxy token handoff).
func (c *CredentialStore) SetToken(token *oauth2.Token) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// Refresh drops the cached credential so the next Get re-acquires.
func (c *CredentialStore) Refresh() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = nil
}
