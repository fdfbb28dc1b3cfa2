package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/aussiebroadwan/boardgate/internal/gateway/domain"
	"github.com/aussiebroadwan/boardgate/internal/gateway/metrics"
	"github.com/aussiebroadwan/boardgate/pkg/jwtx"
)

// DefaultTimeout bounds every backend call when none is configured.
const DefaultTimeout = 10 * time.Second

const maxResponseBytes = 4 << 20

// ClientConfig configures a Client.
type ClientConfig struct {
	BaseURL    string
	CanisterID string
	Timeout    time.Duration

	// Signer is the gateway's signing identity. Every call carries a fresh
	// assertion signed with it.
	Signer jwtx.Signer
	// Issuer names the gateway in assertions.
	Issuer string

	// HTTPClient overrides the transport, mainly for tests.
	HTTPClient *http.Client
}

// Client speaks JSON RPC to the backend: POST {BaseURL}/rpc/{canister}/{method}
// with the arguments as a JSON object, answered with the JSON result.
type Client struct {
	endpoint string
	canister string
	issuer   string
	timeout  time.Duration
	signer   jwtx.Signer
	http     *http.Client
	now      func() time.Time
}

var _ Backend = (*Client)(nil)

// NewClient validates cfg and builds a Client. It performs no I/O.
func NewClient(cfg ClientConfig) (*Client, error) {
	u, err := url.Parse(cfg.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("backend: invalid base url %q", cfg.BaseURL)
	}
	if cfg.CanisterID == "" {
		return nil, errors.New("backend: canister id is required")
	}
	if cfg.Signer == nil {
		return nil, errors.New("backend: signing identity is required")
	}
	if err := cfg.Signer.Validate(); err != nil {
		return nil, fmt.Errorf("backend: signing identity: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: timeout}
	}
	issuer := cfg.Issuer
	if issuer == "" {
		issuer = "boardgate"
	}

	return &Client{
		endpoint: strings.TrimSuffix(u.String(), "/") + "/rpc/" + url.PathEscape(cfg.CanisterID) + "/",
		canister: cfg.CanisterID,
		issuer:   issuer,
		timeout:  timeout,
		signer:   cfg.Signer,
		http:     hc,
		now:      time.Now,
	}, nil
}

// call performs one RPC and decodes the reply into out.
func (c *Client) call(ctx context.Context, method string, args, out any) (err error) {
	start := time.Now()
	status := "ok"
	defer func() { metrics.RecordBackendCall(method, status, time.Since(start)) }()

	body, err := json.Marshal(args)
	if err != nil {
		status = "invalid"
		return fmt.Errorf("backend: encode %s args: %w", method, err)
	}

	assertion, err := c.signer.Sign(jwtx.NewServiceClaims(c.issuer, c.canister, method, jwtx.DefaultAssertionTTL, c.now()))
	if err != nil {
		status = "invalid"
		return fmt.Errorf("backend: sign %s assertion: %w", method, err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+method, bytes.NewReader(body))
	if err != nil {
		status = "invalid"
		return fmt.Errorf("backend: build %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+assertion)

	resp, err := c.http.Do(req)
	if err != nil {
		status = "unavailable"
		return unavailable(method, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		status = "unavailable"
		return unavailable(method, err)
	}

	switch {
	case resp.StatusCode >= http.StatusInternalServerError:
		status = "unavailable"
		return unavailable(method, fmt.Errorf("status %d", resp.StatusCode))
	case resp.StatusCode != http.StatusOK:
		status = "invalid"
		return fmt.Errorf("%w: %s returned status %d", ErrBadResponse, method, resp.StatusCode)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		status = "invalid"
		return fmt.Errorf("%w: %s: %v", ErrBadResponse, method, err)
	}
	return nil
}

func unavailable(method string, err error) error {
	return domain.Upstream(UnavailableMessage, fmt.Errorf("%w: %s: %v", ErrUnavailable, method, err))
}

func callResult[T any](ctx context.Context, c *Client, method string, args any) (Result[T], error) {
	var r Result[T]
	if err := c.call(ctx, method, args, &r); err != nil {
		return Result[T]{}, err
	}
	return r, nil
}

func callValue[T any](ctx context.Context, c *Client, method string, args any) (T, error) {
	var v T
	err := c.call(ctx, method, args, &v)
	return v, err
}

type args map[string]any

func (c *Client) CreateVerifiedSession(ctx context.Context, req VerifiedSessionRequest) (Result[Session], error) {
	return callResult[Session](ctx, c, "createVerifiedSession", req)
}

func (c *Client) AnonymousSession(ctx context.Context, req AnonymousSessionRequest) (Result[Session], error) {
	return callResult[Session](ctx, c, "anonymousSession", req)
}

func (c *Client) ValidateSession(ctx context.Context, token string) (Result[SessionInfo], error) {
	return callResult[SessionInfo](ctx, c, "validateSession", args{"sessionToken": token})
}

func (c *Client) DestroySession(ctx context.Context, token string) (Result[string], error) {
	return callResult[string](ctx, c, "destroySession", args{"sessionToken": token})
}

func (c *Client) GetProfileBySession(ctx context.Context, token string) (Result[Profile], error) {
	return callResult[Profile](ctx, c, "getProfileBySession", args{"sessionToken": token})
}

func (c *Client) GetPlayerProfile(ctx context.Context, playerID string) (Result[Profile], error) {
	return callResult[Profile](ctx, c, "getPlayerProfile", args{"mode": ModeExternal, "playerId": playerID})
}

func (c *Client) GetGameCredentialConfig(ctx context.Context, gameID string) (*domain.GameCredentialConfig, error) {
	return callValue[*domain.GameCredentialConfig](ctx, c, "getGameCredentialConfig", args{"gameId": gameID})
}

func (c *Client) GetGameCredentialSettings(ctx context.Context, token, gameID string) (Result[CredentialSettings], error) {
	return callResult[CredentialSettings](ctx, c, "getGameCredentialSettings", args{"sessionToken": token, "gameId": gameID})
}

func (c *Client) SetPrimaryCredentials(ctx context.Context, token, gameID string, clientIDs []string) (Result[string], error) {
	return callResult[string](ctx, c, "setPrimaryCredentials", args{"sessionToken": token, "gameId": gameID, "clientIds": clientIDs})
}

func (c *Client) SetSecondaryCredentials(ctx context.Context, token, gameID, bundleID, teamID string) (Result[string], error) {
	a := args{"sessionToken": token, "gameId": gameID, "bundleId": bundleID}
	if teamID != "" {
		a["teamId"] = teamID
	}
	return callResult[string](ctx, c, "setSecondaryCredentials", a)
}

func (c *Client) ClearCredentials(ctx context.Context, token, gameID string, provider domain.Provider) (Result[string], error) {
	return callResult[string](ctx, c, "clearCredentials", args{"sessionToken": token, "gameId": gameID, "provider": provider})
}

func (c *Client) ValidateAPIKey(ctx context.Context, key string) (*domain.APIKeyRecord, error) {
	return callValue[*domain.APIKeyRecord](ctx, c, "validateApiKey", args{"key": key})
}

func (c *Client) SubmitScore(ctx context.Context, s ScoreSubmission) (Result[string], error) {
	return callResult[string](ctx, c, "submitScore", s)
}

func (c *Client) UnlockAchievement(ctx context.Context, actor Actor, gameID, achievementID string) (Result[string], error) {
	return callResult[string](ctx, c, "unlockAchievement", args{"actor": actor, "gameId": gameID, "achievementId": achievementID})
}

func (c *Client) ChangeNickname(ctx context.Context, actor Actor, gameID, nickname string) (Result[NicknameChange], error) {
	return callResult[NicknameChange](ctx, c, "changeNickname", args{"actor": actor, "gameId": gameID, "nickname": nickname})
}

func (c *Client) GetLeaderboard(ctx context.Context, gameID string, sortBy SortBy, limit int) ([]LeaderboardEntry, error) {
	return callValue[[]LeaderboardEntry](ctx, c, "getLeaderboard", args{"gameId": gameID, "sortBy": sortBy, "limit": limit})
}

func (c *Client) GetGame(ctx context.Context, gameID string) (*Game, error) {
	return callValue[*Game](ctx, c, "getGame", args{"gameId": gameID})
}

func (c *Client) ListScoreboards(ctx context.Context, gameID string) ([]ScoreboardSummary, error) {
	return callValue[[]ScoreboardSummary](ctx, c, "listScoreboards", args{"gameId": gameID})
}

func (c *Client) GetScoreboard(ctx context.Context, gameID, scoreboardID string, limit int) (Result[ScoreboardView], error) {
	return callResult[ScoreboardView](ctx, c, "getScoreboard", args{"gameId": gameID, "scoreboardId": scoreboardID, "limit": limit})
}

func (c *Client) CreateScoreboard(ctx context.Context, token, gameID string, spec ScoreboardSpec) (Result[string], error) {
	return callResult[string](ctx, c, "createScoreboard", args{"sessionToken": token, "gameId": gameID, "scoreboard": spec})
}

func (c *Client) ResetScoreboard(ctx context.Context, token, gameID, scoreboardID string) (Result[string], error) {
	return callResult[string](ctx, c, "resetScoreboard", args{"sessionToken": token, "gameId": gameID, "scoreboardId": scoreboardID})
}

func (c *Client) DeleteScoreboard(ctx context.Context, token, gameID, scoreboardID string) (Result[string], error) {
	return callResult[string](ctx, c, "deleteScoreboard", args{"sessionToken": token, "gameId": gameID, "scoreboardId": scoreboardID})
}

func (c *Client) ListArchives(ctx context.Context, gameID, scoreboardID string, within *TimeRange) ([]ArchiveSummary, error) {
	a := args{"gameId": gameID, "scoreboardId": scoreboardID}
	if within != nil {
		a["range"] = within
	}
	return callValue[[]ArchiveSummary](ctx, c, "listArchives", a)
}

func (c *Client) GetLatestArchive(ctx context.Context, gameID, scoreboardID string, limit int) (Result[ArchiveView], error) {
	return callResult[ArchiveView](ctx, c, "getLatestArchive", args{"gameId": gameID, "scoreboardId": scoreboardID, "limit": limit})
}

func (c *Client) GetArchive(ctx context.Context, archiveID string, limit int) (Result[ArchiveView], error) {
	return callResult[ArchiveView](ctx, c, "getArchive", args{"archiveId": archiveID, "limit": limit})
}

func (c *Client) GetArchiveStats(ctx context.Context, gameID string) (ArchiveStats, error) {
	return callValue[ArchiveStats](ctx, c, "getArchiveStats", args{"gameId": gameID})
}

func (c *Client) StartPlaySessionByAPIKey(ctx context.Context, key, playerID, gameID string) (Result[string], error) {
	return callResult[string](ctx, c, "startPlaySessionByAPIKey", args{"key": key, "playerId": playerID, "gameId": gameID})
}

func (c *Client) StartPlaySessionBySession(ctx context.Context, token, gameID string) (Result[string], error) {
	return callResult[string](ctx, c, "startPlaySessionBySession", args{"sessionToken": token, "gameId": gameID})
}

func (c *Client) GetPlaySessionStatus(ctx context.Context, token string) (Result[PlaySessionStatus], error) {
	return callResult[PlaySessionStatus](ctx, c, "getPlaySessionStatus", args{"playSessionToken": token})
}
