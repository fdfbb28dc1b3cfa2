package identity_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aussiebroadwan/boardgate/internal/gateway/domain"
	"github.com/aussiebroadwan/boardgate/internal/gateway/identity"
	"github.com/stretchr/testify/require"
)

func TestKeyringCachesPerProvider(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	jwks := &jwksServer{}
	jwks.publish(rsaSigner(t, "k1"))
	srv := httptest.NewServer(jwks)
	t.Cleanup(srv.Close)

	providers := map[domain.Provider]identity.ProviderSpec{
		domain.ProviderPrimary: {Name: domain.ProviderPrimary, JWKSURL: srv.URL},
	}
	k := identity.NewKeyring(providers, time.Second, identity.WithKeyringClock(func() time.Time { return now }))

	_, ok := k.Lookup(domain.ProviderPrimary)
	require.False(t, ok)

	ks, err := k.Get(t.Context(), domain.ProviderPrimary)
	require.NoError(t, err)
	require.Equal(t, 1, ks.Len())

	entry, ok := k.Lookup(domain.ProviderPrimary)
	require.True(t, ok)
	require.Equal(t, now, entry.FetchedAt)

	_, err = k.Get(t.Context(), domain.ProviderPrimary)
	require.NoError(t, err)
	require.EqualValues(t, 1, jwks.fetches.Load())

	k.Invalidate(domain.ProviderPrimary)
	_, err = k.Get(t.Context(), domain.ProviderPrimary)
	require.NoError(t, err)
	require.EqualValues(t, 2, jwks.fetches.Load())

	_, err = k.Get(t.Context(), domain.ProviderSecondary)
	require.ErrorIs(t, err, identity.ErrUnknownProvider)
}

func TestKeyringRejectsEmptySet(t *testing.T) {
	jwks := &jwksServer{}
	srv := httptest.NewServer(jwks)
	t.Cleanup(srv.Close)

	k := identity.NewKeyring(map[domain.Provider]identity.ProviderSpec{
		domain.ProviderSecondary: {Name: domain.ProviderSecondary, JWKSURL: srv.URL},
	}, time.Second)

	_, err := k.Get(t.Context(), domain.ProviderSecondary)
	require.ErrorIs(t, err, identity.ErrKeysUnavailable)
}
