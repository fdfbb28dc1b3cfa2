package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aussiebroadwan/boardgate/internal/gateway/backend"
	"github.com/aussiebroadwan/boardgate/internal/gateway/backend/backendtest"
	"github.com/aussiebroadwan/boardgate/internal/gateway/cache"
	"github.com/aussiebroadwan/boardgate/internal/gateway/domain"
	"github.com/aussiebroadwan/boardgate/internal/gateway/service"
	"github.com/aussiebroadwan/boardgate/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func TestCredentialConfigCached(t *testing.T) {
	clk := newClock()
	fake := &backendtest.Fake{
		GetGameCredentialConfigFn: func(_ context.Context, gameID string) (*domain.GameCredentialConfig, error) {
			if gameID == "none" {
				return nil, nil
			}
			return &domain.GameCredentialConfig{ProviderAudiences: []string{"a.apps.googleusercontent.com"}}, nil
		},
	}
	svc := service.NewCredentialService(backend.Static(fake), slogx.Discard(), cache.WithClock(clk.Now))

	cfg, err := svc.Config(t.Context(), "g1")
	require.NoError(t, err)
	require.Equal(t, []string{"a.apps.googleusercontent.com"}, cfg.Audiences(domain.ProviderPrimary))

	_, err = svc.Config(t.Context(), "g1")
	require.NoError(t, err)
	require.Equal(t, 1, fake.Calls("GetGameCredentialConfig"))

	// a game without config is cached too
	for range 2 {
		cfg, err = svc.Config(t.Context(), "none")
		require.NoError(t, err)
		require.Nil(t, cfg)
	}
	require.Equal(t, 2, fake.Calls("GetGameCredentialConfig"))

	clk.Advance(service.CredentialCacheTTL)
	_, err = svc.Config(t.Context(), "g1")
	require.NoError(t, err)
	require.Equal(t, 3, fake.Calls("GetGameCredentialConfig"))
}

func TestCredentialFetchFailureNotCached(t *testing.T) {
	fail := true
	fake := &backendtest.Fake{
		GetGameCredentialConfigFn: func(context.Context, string) (*domain.GameCredentialConfig, error) {
			if fail {
				return nil, errors.New("timeout")
			}
			return &domain.GameCredentialConfig{SecondaryBundleID: "com.example.app"}, nil
		},
	}
	svc := service.NewCredentialService(backend.Static(fake), slogx.Discard())

	_, err := svc.Config(t.Context(), "g1")
	require.Error(t, err)

	fail = false
	cfg, err := svc.Config(t.Context(), "g1")
	require.NoError(t, err)
	require.Equal(t, "com.example.app", cfg.SecondaryBundleID)
}

func TestCredentialWritesInvalidate(t *testing.T) {
	bundle := "com.example.old"
	fake := &backendtest.Fake{
		GetGameCredentialConfigFn: func(context.Context, string) (*domain.GameCredentialConfig, error) {
			return &domain.GameCredentialConfig{SecondaryBundleID: bundle}, nil
		},
		SetSecondaryCredentialsFn: func(_ context.Context, token, gameID, bundleID, teamID string) (backend.Result[string], error) {
			if token != "owner" {
				return backend.Err[string]("Not authorized"), nil
			}
			bundle = bundleID
			return backend.Ok("Apple credentials saved"), nil
		},
	}
	svc := service.NewCredentialService(backend.Static(fake), slogx.Discard())

	cfg, err := svc.Config(t.Context(), "g1")
	require.NoError(t, err)
	require.Equal(t, "com.example.old", cfg.SecondaryBundleID)

	// a failed write leaves the cache alone
	res, err := svc.SetSecondary(t.Context(), "stranger", "g1", "com.example.new", "")
	require.NoError(t, err)
	_, msg, ok := res.Unpack()
	require.False(t, ok)
	require.Equal(t, "Not authorized", msg)

	_, err = svc.SetSecondary(t.Context(), "owner", "g1", "com.example.new", "TEAM1")
	require.NoError(t, err)

	cfg, err = svc.Config(t.Context(), "g1")
	require.NoError(t, err)
	require.Equal(t, "com.example.new", cfg.SecondaryBundleID)
	require.Equal(t, 2, fake.Calls("GetGameCredentialConfig"))
}

func TestCredentialInputValidation(t *testing.T) {
	fake := &backendtest.Fake{}
	svc := service.NewCredentialService(backend.Static(fake), slogx.Discard())

	_, err := svc.SetPrimary(t.Context(), "s", "g1", nil)
	requireKind(t, err, domain.KindValidation, "clientIds must be an array of Google OAuth client IDs")

	_, err = svc.SetPrimary(t.Context(), "s", "g1", []string{"ok.apps.googleusercontent.com", "bad"})
	requireKind(t, err, domain.KindValidation, "Invalid client ID format: bad. Must end with .apps.googleusercontent.com")

	_, err = svc.SetSecondary(t.Context(), "s", "g1", "", "")
	requireKind(t, err, domain.KindValidation, "bundleId is required (e.g., com.company.appname)")

	_, err = svc.SetSecondary(t.Context(), "s", "g1", "app", "")
	requireKind(t, err, domain.KindValidation, "Invalid bundle ID format. Expected: com.company.appname")

	require.Zero(t, fake.Total())
}
