package backend_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/boardgate/internal/gateway/backend"
	"github.com/aussiebroadwan/boardgate/internal/gateway/domain"
	"github.com/aussiebroadwan/boardgate/pkg/cryptox"
	"github.com/aussiebroadwan/boardgate/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func newSigner(t *testing.T) jwtx.Signer {
	t.Helper()
	pemKey, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)
	s, err := jwtx.NewSignerEdDSA("gateway-test", pemKey)
	require.NoError(t, err)
	return s
}

func newClient(t *testing.T, h http.Handler) (*backend.Client, jwtx.Signer) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	signer := newSigner(t)
	c, err := backend.NewClient(backend.ClientConfig{
		BaseURL:    srv.URL,
		CanisterID: "games",
		Timeout:    time.Second,
		Signer:     signer,
		Issuer:     "boardgate-test",
	})
	require.NoError(t, err)
	return c, signer
}

func TestClientCallCarriesAssertion(t *testing.T) {
	var (
		gotPath string
		gotArgs map[string]any
		gotAuth string
	)
	c, signer := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotArgs)
		_, _ = w.Write([]byte(`{"ok":{"email":"p@example.com","nickname":"ace"}}`))
	}))

	res, err := c.ValidateSession(t.Context(), "sess-1")
	require.NoError(t, err)

	info, _, ok := res.Unpack()
	require.True(t, ok)
	require.Equal(t, "ace", info.Nickname)

	require.Equal(t, "/rpc/games/validateSession", gotPath)
	require.Equal(t, "sess-1", gotArgs["sessionToken"])

	token, found := strings.CutPrefix(gotAuth, "Bearer ")
	require.True(t, found)

	keys := jwtx.NewKeySet()
	require.NoError(t, keys.AddSigner(signer))
	claims, err := jwtx.VerifyService(token, keys, "boardgate-test", "games", time.Now())
	require.NoError(t, err)
	require.Equal(t, "validateSession", claims.Method)
}

func TestClientBusinessFailure(t *testing.T) {
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"err":"Scoreboard not found"}`))
	}))

	res, err := c.GetScoreboard(t.Context(), "g1", "weekly", 100)
	require.NoError(t, err)
	_, msg, ok := res.Unpack()
	require.False(t, ok)
	require.Equal(t, "Scoreboard not found", msg)
}

func TestClientOptionalLookups(t *testing.T) {
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`null`))
	}))

	rec, err := c.ValidateAPIKey(t.Context(), "k")
	require.NoError(t, err)
	require.Nil(t, rec)

	game, err := c.GetGame(t.Context(), "g1")
	require.NoError(t, err)
	require.Nil(t, game)
}

func TestClientUnavailable(t *testing.T) {
	t.Run("server error", func(t *testing.T) {
		c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))

		_, err := c.DestroySession(t.Context(), "s")
		require.ErrorIs(t, err, backend.ErrUnavailable)
		require.Equal(t, domain.KindUpstream, domain.KindOf(err))
	})

	t.Run("timeout", func(t *testing.T) {
		c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(3 * time.Second):
			}
		}))

		ctx, cancel := context.WithTimeout(t.Context(), 50*time.Millisecond)
		defer cancel()
		_, err := c.GetArchiveStats(ctx, "g1")
		require.ErrorIs(t, err, backend.ErrUnavailable)
	})

	t.Run("undecodable reply", func(t *testing.T) {
		c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"maybe":true}`))
		}))

		_, err := c.ValidateSession(t.Context(), "s")
		require.ErrorIs(t, err, backend.ErrBadResponse)
		require.False(t, errors.Is(err, backend.ErrUnavailable))
	})
}

func TestNewClientValidates(t *testing.T) {
	signer := newSigner(t)

	_, err := backend.NewClient(backend.ClientConfig{BaseURL: "not a url", CanisterID: "c", Signer: signer})
	require.Error(t, err)

	_, err = backend.NewClient(backend.ClientConfig{BaseURL: "http://localhost:4943", Signer: signer})
	require.Error(t, err)

	_, err = backend.NewClient(backend.ClientConfig{BaseURL: "http://localhost:4943", CanisterID: "c"})
	require.Error(t, err)
}
