package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/aussiebroadwan/boardgate/internal/gateway/backend"
	"github.com/aussiebroadwan/boardgate/internal/gateway/domain"
	"github.com/aussiebroadwan/boardgate/internal/gateway/identity"
	"github.com/aussiebroadwan/boardgate/internal/gateway/metrics"
	"github.com/aussiebroadwan/boardgate/internal/gateway/service"
	"github.com/aussiebroadwan/boardgate/pkg/httpx"
	"github.com/aussiebroadwan/boardgate/pkg/slogx"
)

// MaxBodyBytes caps request bodies.
const MaxBodyBytes = 1 << 20

// Mode is the credential a route demands before its handler runs.
type Mode int

const (
	// ModePublic needs no credential.
	ModePublic Mode = iota
	// ModeOptionalKey authenticates an API key when one is presented.
	ModeOptionalKey
	// ModeSessionOptional passes the raw session token through unvalidated.
	ModeSessionOptional
	// ModeSession requires a session token the backend accepts.
	ModeSession
	// ModeAPIKey requires a valid API key within its rate limit.
	ModeAPIKey
	// ModeGameplay accepts an API key or a session token. The key wins when
	// both are sent.
	ModeGameplay
)

func (m Mode) String() string {
	switch m {
	case ModePublic:
		return "public"
	case ModeOptionalKey:
		return "optional_key"
	case ModeSessionOptional:
		return "session_optional"
	case ModeSession:
		return "session"
	case ModeAPIKey:
		return "api_key"
	case ModeGameplay:
		return "gameplay"
	default:
		return "unknown"
	}
}

// Call is one request after credential checks, as seen by a handler.
type Call struct {
	Request *http.Request
	Backend backend.Backend

	// SessionToken is the presented session token, if any. Session is set
	// only once the backend has accepted it.
	SessionToken string
	Session      *backend.SessionInfo

	// APIKey is the raw key for backend calls that need it; never log it.
	APIKey string
	Key    *service.APIKeyAuth

	// GameID is the resolved game: the API key's game, else the path, else
	// header or query, else the body.
	GameID string

	headerGameID string
	body         []byte
}

// ByAPIKey reports whether the call is authenticated by an API key.
func (c *Call) ByAPIKey() bool { return c.Key != nil }

// Decode unmarshals the request body into v. An empty body leaves v as is.
func (c *Call) Decode(v any) error {
	if len(c.body) == 0 {
		return nil
	}
	if err := json.Unmarshal(c.body, v); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return domain.Validation("Invalid type for field: " + typeErr.Field)
		}
		return domain.Validation("Invalid JSON body")
	}
	return nil
}

// Query returns a query parameter.
func (c *Call) Query(name string) string { return c.Request.URL.Query().Get(name) }

// Path returns a path wildcard.
func (c *Call) Path(name string) string { return c.Request.PathValue(name) }

// HandlerFunc serves one route. The returned value becomes the envelope's
// data; an error is rendered through its domain kind.
type HandlerFunc func(ctx context.Context, c *Call) (any, error)

type routeSpec struct {
	mode           Mode
	missingSession string
	missingGame    string
}

type routeOption func(*routeSpec)

// withSessionMessage sets the 401 text when a session route gets no token.
func withSessionMessage(msg string) routeOption {
	return func(s *routeSpec) { s.missingSession = msg }
}

// withGameRequired makes a session-authenticated call fail with msg when no
// game id was resolved.
func withGameRequired(msg string) routeOption {
	return func(s *routeSpec) { s.missingGame = msg }
}

// route adapts h into an http.Handler that reads the body, enforces the
// mode's credential, and renders the envelope.
func (r *Router) route(mode Mode, h HandlerFunc, opts ...routeOption) http.Handler {
	spec := routeSpec{mode: mode, missingSession: "Missing session token"}
	for _, opt := range opts {
		opt(&spec)
	}

	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		ctx := req.Context()

		c, err := r.newCall(req)
		if err == nil {
			err = r.authorize(ctx, spec, c)
		}
		var data any
		if err == nil {
			data, err = h(ctx, c)
		}

		code := r.respond(w, req, c, data, err)
		metrics.RecordRequest(routeLabel(req), mode.String(), code, time.Since(start))
	})
}

func routeLabel(req *http.Request) string {
	if req.Pattern == "" || req.Pattern == "/" {
		return "unmatched"
	}
	return req.Pattern
}

func (r *Router) newCall(req *http.Request) (*Call, error) {
	c := &Call{Request: req}

	if req.Body != nil {
		raw, err := io.ReadAll(io.LimitReader(req.Body, MaxBodyBytes+1))
		if err != nil {
			return c, domain.Validation("Invalid JSON body")
		}
		if len(raw) > MaxBodyBytes {
			return c, domain.Validation("Request body too large")
		}
		c.body = bytes.TrimSpace(raw)
	}

	var fields map[string]json.RawMessage
	if len(c.body) > 0 {
		if err := json.Unmarshal(c.body, &fields); err != nil {
			return c, domain.Validation("Invalid JSON body")
		}
	}

	q := req.URL.Query()
	c.APIKey = firstNonEmpty(req.Header.Get("X-API-Key"), q.Get("api_key"))
	c.SessionToken = firstNonEmpty(
		req.Header.Get("X-Session-Token"),
		bearerToken(req.Header.Get("Authorization")),
		q.Get("session"),
	)
	c.headerGameID = firstNonEmpty(req.Header.Get("X-Game-ID"), q.Get("game_id"))

	var bodyGame string
	if raw, ok := fields["gameId"]; ok {
		_ = json.Unmarshal(raw, &bodyGame)
	}
	c.GameID = firstNonEmpty(req.PathValue("gameId"), c.headerGameID, bodyGame)

	b, err := r.backends.Handle()
	if err != nil {
		return c, err
	}
	c.Backend = b
	return c, nil
}

func (r *Router) authorize(ctx context.Context, spec routeSpec, c *Call) error {
	switch spec.mode {
	case ModePublic, ModeSessionOptional:
		return nil

	case ModeOptionalKey:
		if c.APIKey == "" {
			return nil
		}
		return r.authenticateKey(ctx, c)

	case ModeAPIKey:
		if c.APIKey == "" {
			return domain.Auth("API key required")
		}
		return r.authenticateKey(ctx, c)

	case ModeSession:
		if c.SessionToken == "" {
			return domain.Auth(spec.missingSession)
		}
		if err := r.validateSession(ctx, c); err != nil {
			return err
		}

	case ModeGameplay:
		switch {
		case c.APIKey != "":
			return r.authenticateKey(ctx, c)
		case c.SessionToken != "":
			if err := r.validateSession(ctx, c); err != nil {
				return err
			}
		default:
			return domain.Auth("API key or session token required")
		}
	}

	if spec.missingGame != "" && c.GameID == "" {
		return domain.Validation(spec.missingGame)
	}
	return nil
}

func (r *Router) authenticateKey(ctx context.Context, c *Call) error {
	auth, err := r.APIKeyService.Authenticate(ctx, c.APIKey, c.headerGameID)
	if err != nil {
		return err
	}
	c.Key = &auth
	c.GameID = auth.GameID
	slogx.FromContext(ctx).Debug("api key accepted", "key_fp", auth.Fingerprint[:12], "tier", auth.Tier, "game_id", auth.GameID)
	return nil
}

func (r *Router) validateSession(ctx context.Context, c *Call) error {
	res, err := c.Backend.ValidateSession(ctx, c.SessionToken)
	if err != nil {
		return backendFailure(err, "Failed to validate session")
	}
	info, msg, ok := res.Unpack()
	if !ok {
		return domain.Auth(msg)
	}
	c.Session = &info
	return nil
}

// respond renders data or err as the envelope and returns the status sent.
func (r *Router) respond(w http.ResponseWriter, req *http.Request, c *Call, data any, err error) int {
	if err != nil {
		code, msg := r.classify(req.Context(), err)
		var derr *domain.Error
		if errors.As(err, &derr) && derr.Kind == domain.KindRateLimited && derr.RetryAfter > 0 {
			w.Header().Set("Retry-After", strconv.Itoa(derr.RetryAfter))
		}
		httpx.WriteError(w, code, msg)
		return code
	}

	if c != nil && c.Key != nil && c.Key.Limit.RemainingHour >= 0 {
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(c.Key.Limit.RemainingHour))
	}
	httpx.WriteOK(w, data)
	return http.StatusOK
}

// classify maps err to a status and a client-safe message.
func (r *Router) classify(ctx context.Context, err error) (int, string) {
	var verr *identity.VerificationError
	if errors.As(err, &verr) {
		return verr.Status(), verr.Hint
	}

	var derr *domain.Error
	if errors.As(err, &derr) {
		if derr.Kind == domain.KindInternal || derr.Kind == domain.KindUpstream {
			slogx.FromContext(ctx).Error("request failed", "kind", derr.Kind, "error", err)
		}
		return derr.Kind.Status(), derr.Message
	}

	slogx.FromContext(ctx).Error("unclassified request failure", "error", err)
	return http.StatusInternalServerError, "Internal server error"
}

// backendFailure turns a backend call error into a domain error. Errors
// already classified (an unavailable backend, a rejected input) pass
// through; anything else is reported with msg.
func backendFailure(err error, msg string) error {
	var derr *domain.Error
	if errors.As(err, &derr) {
		return err
	}
	return domain.Internal(msg, err)
}

// settle unpacks a backend reply. The failure arm becomes a domain error of
// kind, carrying the backend's message verbatim.
func settle[T any](res backend.Result[T], err error, kind domain.Kind, failMsg string) (T, error) {
	var zero T
	if err != nil {
		return zero, backendFailure(err, failMsg)
	}
	v, msg, ok := res.Unpack()
	if !ok {
		return zero, &domain.Error{Kind: kind, Message: msg}
	}
	return v, nil
}

func (r *Router) handleUnknown(_ context.Context, c *Call) (any, error) {
	return nil, domain.NotFound(fmt.Sprintf("Unknown endpoint: %s %s. See /docs", c.Request.Method, c.Request.URL.Path))
}

func bearerToken(h string) string {
	token, ok := strings.CutPrefix(h, "Bearer ")
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
