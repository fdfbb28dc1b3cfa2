package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/aussiebroadwan/boardgate/internal/gateway/cache"
	"github.com/aussiebroadwan/boardgate/internal/gateway/domain"
	"github.com/aussiebroadwan/boardgate/pkg/jwtx"
)

// KeyringTTL is how long a fetched provider key set is trusted.
const KeyringTTL = 24 * time.Hour

// DefaultProviderTimeout bounds one JWKS fetch.
const DefaultProviderTimeout = 5 * time.Second

var (
	ErrKeysUnavailable = errors.New("identity: provider keys unavailable")
	ErrUnknownProvider = errors.New("identity: unknown provider")
)

// Keyring caches each provider's published signing keys.
type Keyring struct {
	providers map[domain.Provider]ProviderSpec
	http      *http.Client
	cache     *cache.TTL[domain.Provider, *jwtx.KeySet]
}

// KeyringOption configures a Keyring.
type KeyringOption func(*keyringOptions)

type keyringOptions struct {
	client    *http.Client
	cacheOpts []cache.Option
}

// WithHTTPClient replaces the HTTP client used for JWKS fetches.
func WithHTTPClient(c *http.Client) KeyringOption {
	return func(o *keyringOptions) { o.client = c }
}

// WithKeyringClock injects the cache clock.
func WithKeyringClock(now func() time.Time) KeyringOption {
	return func(o *keyringOptions) { o.cacheOpts = append(o.cacheOpts, cache.WithClock(now)) }
}

// NewKeyring builds a Keyring over providers. timeout bounds each fetch.
func NewKeyring(providers map[domain.Provider]ProviderSpec, timeout time.Duration, opts ...KeyringOption) *Keyring {
	if timeout <= 0 {
		timeout = DefaultProviderTimeout
	}
	o := keyringOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.client == nil {
		o.client = &http.Client{Timeout: timeout}
	}

	k := &Keyring{providers: providers, http: o.client}
	k.cache = cache.New("keyring", KeyringTTL, k.fetch, o.cacheOpts...)
	return k
}

// Get returns the provider's key set, fetching it when missing or stale.
func (k *Keyring) Get(ctx context.Context, p domain.Provider) (*jwtx.KeySet, error) {
	return k.cache.Get(ctx, p)
}

// Lookup returns the cached key set without fetching.
func (k *Keyring) Lookup(p domain.Provider) (cache.Entry[*jwtx.KeySet], bool) {
	return k.cache.Lookup(p)
}

// Refresh fetches the provider's key set unconditionally.
func (k *Keyring) Refresh(ctx context.Context, p domain.Provider) (*jwtx.KeySet, error) {
	return k.cache.Refresh(ctx, p)
}

// Invalidate drops the cached key set for p.
func (k *Keyring) Invalidate(p domain.Provider) { k.cache.Invalidate(p) }

// Sweep drops expired key sets.
func (k *Keyring) Sweep() int { return k.cache.Sweep() }

func (k *Keyring) fetch(ctx context.Context, p domain.Provider) (*jwtx.KeySet, error) {
	spec, ok := k.providers[p]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, p)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, spec.JWKSURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeysUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := k.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrKeysUnavailable, p, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s: status %d", ErrKeysUnavailable, p, resp.StatusCode)
	}

	var jwks jwtx.JWKS
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&jwks); err != nil {
		return nil, fmt.Errorf("%w: %s: decode: %v", ErrKeysUnavailable, p, err)
	}
	ks, err := jwtx.NewKeySetFromJWKS(jwks)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrKeysUnavailable, p, err)
	}
	return ks, nil
}
