// Package backend is the gateway's connection to the authoritative game
// backend: its RPC operation set, the HTTP client that speaks it, and the
// connector that recycles the client handle.
package backend

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/boardgate/internal/gateway/domain"
)

var (
	// ErrUnavailable wraps transport failures and timeouts.
	ErrUnavailable = errors.New("backend: unavailable")
	// ErrBadResponse reports a reply the gateway could not decode.
	ErrBadResponse = errors.New("backend: bad response")
)

// UnavailableMessage is the client-facing text for ErrUnavailable.
const UnavailableMessage = "Backend temporarily unavailable"

// Backend is the backend's RPC operation set. A non-nil error is always a
// transport or protocol failure; business failures travel in the Result.
// Lookups that may find nothing return a nil pointer.
type Backend interface {
	CreateVerifiedSession(ctx context.Context, req VerifiedSessionRequest) (Result[Session], error)
	AnonymousSession(ctx context.Context, req AnonymousSessionRequest) (Result[Session], error)
	ValidateSession(ctx context.Context, token string) (Result[SessionInfo], error)
	DestroySession(ctx context.Context, token string) (Result[string], error)
	GetProfileBySession(ctx context.Context, token string) (Result[Profile], error)
	GetPlayerProfile(ctx context.Context, playerID string) (Result[Profile], error)

	GetGameCredentialConfig(ctx context.Context, gameID string) (*domain.GameCredentialConfig, error)
	GetGameCredentialSettings(ctx context.Context, token, gameID string) (Result[CredentialSettings], error)
	SetPrimaryCredentials(ctx context.Context, token, gameID string, clientIDs []string) (Result[string], error)
	SetSecondaryCredentials(ctx context.Context, token, gameID, bundleID, teamID string) (Result[string], error)
	ClearCredentials(ctx context.Context, token, gameID string, provider domain.Provider) (Result[string], error)

	ValidateAPIKey(ctx context.Context, key string) (*domain.APIKeyRecord, error)

	SubmitScore(ctx context.Context, s ScoreSubmission) (Result[string], error)
	UnlockAchievement(ctx context.Context, actor Actor, gameID, achievementID string) (Result[string], error)
	ChangeNickname(ctx context.Context, actor Actor, gameID, nickname string) (Result[NicknameChange], error)
	GetLeaderboard(ctx context.Context, gameID string, sortBy SortBy, limit int) ([]LeaderboardEntry, error)
	GetGame(ctx context.Context, gameID string) (*Game, error)

	ListScoreboards(ctx context.Context, gameID string) ([]ScoreboardSummary, error)
	GetScoreboard(ctx context.Context, gameID, scoreboardID string, limit int) (Result[ScoreboardView], error)
	CreateScoreboard(ctx context.Context, token, gameID string, spec ScoreboardSpec) (Result[string], error)
	ResetScoreboard(ctx context.Context, token, gameID, scoreboardID string) (Result[string], error)
	DeleteScoreboard(ctx context.Context, token, gameID, scoreboardID string) (Result[string], error)

	ListArchives(ctx context.Context, gameID, scoreboardID string, within *TimeRange) ([]ArchiveSummary, error)
	GetLatestArchive(ctx context.Context, gameID, scoreboardID string, limit int) (Result[ArchiveView], error)
	GetArchive(ctx context.Context, archiveID string, limit int) (Result[ArchiveView], error)
	GetArchiveStats(ctx context.Context, gameID string) (ArchiveStats, error)

	StartPlaySessionByAPIKey(ctx context.Context, key, playerID, gameID string) (Result[string], error)
	StartPlaySessionBySession(ctx context.Context, token, gameID string) (Result[string], error)
	GetPlaySessionStatus(ctx context.Context, token string) (Result[PlaySessionStatus], error)
}

// Source hands out the current Backend handle.
type Source interface {
	Handle() (Backend, error)
}

type staticSource struct{ b Backend }

func (s staticSource) Handle() (Backend, error) { return s.b, nil }

// Static wraps a fixed Backend as a Source.
func Static(b Backend) Source { return staticSource{b: b} }
