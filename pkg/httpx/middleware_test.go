package httpx_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aussiebroadwan/boardgate/pkg/httpx"
	"github.com/stretchr/testify/require"
)

func TestChainOrder(t *testing.T) {
	var order []string
	mark := func(name string) httpx.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := httpx.Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		order = append(order, "handler")
	}), mark("outer"), mark("inner"))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, []string{"outer", "inner", "handler"}, order)
}

func TestCORS(t *testing.T) {
	cfg := httpx.CORSConfig{
		AllowedOrigins: []string{"https://game.example", "https://other.example"},
		AllowedMethods: []string{"GET", "POST"},
		AllowedHeaders: []string{"Content-Type", "X-API-Key"},
	}

	tests := []struct {
		name   string
		cfg    httpx.CORSConfig
		origin string
		want   string
	}{
		{"listed origin echoed", cfg, "https://other.example", "https://other.example"},
		{"unlisted origin gets first", cfg, "https://evil.example", "https://game.example"},
		{"empty list is wildcard", httpx.CORSConfig{}, "https://any.example", "*"},
		{"explicit wildcard", httpx.CORSConfig{AllowedOrigins: []string{"*"}}, "https://any.example", "*"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := httpx.CORS(tt.cfg)(okHandler())
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			require.Equal(t, tt.want, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}

	t.Run("preflight short-circuits", func(t *testing.T) {
		called := false
		h := httpx.CORS(cfg)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true }))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/scores", nil))

		require.False(t, called)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "GET, POST", rec.Header().Get("Access-Control-Allow-Methods"))
		require.True(t, strings.Contains(rec.Header().Get("Access-Control-Allow-Headers"), "X-API-Key"))
	})
}

func TestRecover(t *testing.T) {
	h := httpx.Recover()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var env httpx.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.False(t, env.OK)
	require.Equal(t, "Internal server error", env.Error)
}

func TestWriteOK(t *testing.T) {
	rec := httptest.NewRecorder()
	httpx.WriteOK(rec, map[string]int{"total": 3})

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	require.JSONEq(t, `{"ok":true,"data":{"total":3}}`, rec.Body.String())
}
