package domain_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/aussiebroadwan/boardgate/internal/gateway/domain"
	"github.com/stretchr/testify/require"
)

func TestKindStatus(t *testing.T) {
	tests := []struct {
		kind domain.Kind
		want int
	}{
		{domain.KindValidation, http.StatusBadRequest},
		{domain.KindAuth, http.StatusUnauthorized},
		{domain.KindNotFound, http.StatusNotFound},
		{domain.KindRateLimited, http.StatusTooManyRequests},
		{domain.KindUpstream, http.StatusServiceUnavailable},
		{domain.KindInternal, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			require.Equal(t, tt.want, tt.kind.Status())
		})
	}
}

func TestKindOf(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	wrapped := fmt.Errorf("calling backend: %w", domain.Upstream("Backend temporarily unavailable", cause))

	require.Equal(t, domain.KindUpstream, domain.KindOf(wrapped))
	require.ErrorIs(t, wrapped, cause)
	require.Equal(t, domain.KindInternal, domain.KindOf(errors.New("plain")))
}

func TestGameCredentialConfigAudiences(t *testing.T) {
	var none *domain.GameCredentialConfig
	require.Empty(t, none.Audiences(domain.ProviderPrimary))

	cfg := &domain.GameCredentialConfig{
		ProviderAudiences: []string{"a.apps.googleusercontent.com"},
		SecondaryBundleID: "com.example.game",
	}
	require.Equal(t, []string{"a.apps.googleusercontent.com"}, cfg.Audiences(domain.ProviderPrimary))
	require.Equal(t, []string{"com.example.game"}, cfg.Audiences(domain.ProviderSecondary))

	cfg.SecondaryBundleID = ""
	require.Empty(t, cfg.Audiences(domain.ProviderSecondary))
}

func TestParseProvider(t *testing.T) {
	p, ok := domain.ParseProvider(" Apple ")
	require.True(t, ok)
	require.Equal(t, domain.ProviderSecondary, p)
	require.Equal(t, domain.ProviderPrimary, p.Other())

	_, ok = domain.ParseProvider("github")
	require.False(t, ok)
}

func TestDemoGameID(t *testing.T) {
	id, ok := domain.DemoGameID("demo_cheese")
	require.True(t, ok)
	require.Equal(t, "cheese", id)

	_, ok = domain.DemoGameID("live_123")
	require.False(t, ok)
}
