// Package backendtest provides an in-memory Backend for tests.
package backendtest

import (
	"context"
	"sync"

	"github.com/aussiebroadwan/boardgate/internal/gateway/backend"
	"github.com/aussiebroadwan/boardgate/internal/gateway/domain"
)

// Fake is a Backend whose operations are supplied per test. An operation
// without a func answers with a failure result (or nil for lookups). Every
// call is counted by operation name.
type Fake struct {
	CreateVerifiedSessionFn     func(ctx context.Context, req backend.VerifiedSessionRequest) (backend.Result[backend.Session], error)
	AnonymousSessionFn          func(ctx context.Context, req backend.AnonymousSessionRequest) (backend.Result[backend.Session], error)
	ValidateSessionFn           func(ctx context.Context, token string) (backend.Result[backend.SessionInfo], error)
	DestroySessionFn            func(ctx context.Context, token string) (backend.Result[string], error)
	GetProfileBySessionFn       func(ctx context.Context, token string) (backend.Result[backend.Profile], error)
	GetPlayerProfileFn          func(ctx context.Context, playerID string) (backend.Result[backend.Profile], error)
	GetGameCredentialConfigFn   func(ctx context.Context, gameID string) (*domain.GameCredentialConfig, error)
	GetGameCredentialSettingsFn func(ctx context.Context, token, gameID string) (backend.Result[backend.CredentialSettings], error)
	SetPrimaryCredentialsFn     func(ctx context.Context, token, gameID string, clientIDs []string) (backend.Result[string], error)
	SetSecondaryCredentialsFn   func(ctx context.Context, token, gameID, bundleID, teamID string) (backend.Result[string], error)
	ClearCredentialsFn          func(ctx context.Context, token, gameID string, provider domain.Provider) (backend.Result[string], error)
	ValidateAPIKeyFn            func(ctx context.Context, key string) (*domain.APIKeyRecord, error)
	SubmitScoreFn               func(ctx context.Context, s backend.ScoreSubmission) (backend.Result[string], error)
	UnlockAchievementFn         func(ctx context.Context, actor backend.Actor, gameID, achievementID string) (backend.Result[string], error)
	ChangeNicknameFn            func(ctx context.Context, actor backend.Actor, gameID, nickname string) (backend.Result[backend.NicknameChange], error)
	GetLeaderboardFn            func(ctx context.Context, gameID string, sortBy backend.SortBy, limit int) ([]backend.LeaderboardEntry, error)
	GetGameFn                   func(ctx context.Context, gameID string) (*backend.Game, error)
	ListScoreboardsFn           func(ctx context.Context, gameID string) ([]backend.ScoreboardSummary, error)
	GetScoreboardFn             func(ctx context.Context, gameID, scoreboardID string, limit int) (backend.Result[backend.ScoreboardView], error)
	CreateScoreboardFn          func(ctx context.Context, token, gameID string, spec backend.ScoreboardSpec) (backend.Result[string], error)
	ResetScoreboardFn           func(ctx context.Context, token, gameID, scoreboardID string) (backend.Result[string], error)
	DeleteScoreboardFn          func(ctx context.Context, token, gameID, scoreboardID string) (backend.Result[string], error)
	ListArchivesFn              func(ctx context.Context, gameID, scoreboardID string, within *backend.TimeRange) ([]backend.ArchiveSummary, error)
	GetLatestArchiveFn          func(ctx context.Context, gameID, scoreboardID string, limit int) (backend.Result[backend.ArchiveView], error)
	GetArchiveFn                func(ctx context.Context, archiveID string, limit int) (backend.Result[backend.ArchiveView], error)
	GetArchiveStatsFn           func(ctx context.Context, gameID string) (backend.ArchiveStats, error)
	StartPlaySessionByAPIKeyFn  func(ctx context.Context, key, playerID, gameID string) (backend.Result[string], error)
	StartPlaySessionBySessionFn func(ctx context.Context, token, gameID string) (backend.Result[string], error)
	GetPlaySessionStatusFn      func(ctx context.Context, token string) (backend.Result[backend.PlaySessionStatus], error)

	mu    sync.Mutex
	calls map[string]int
}

var _ backend.Backend = (*Fake)(nil)

// Calls returns how many times op was invoked.
func (f *Fake) Calls(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[op]
}

// Total returns the number of calls across every operation.
func (f *Fake) Total() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		n += c
	}
	return n
}

func (f *Fake) record(op string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls == nil {
		f.calls = make(map[string]int)
	}
	f.calls[op]++
}

func unset[T any]() (backend.Result[T], error) {
	return backend.Err[T]("not implemented"), nil
}

func (f *Fake) CreateVerifiedSession(ctx context.Context, req backend.VerifiedSessionRequest) (backend.Result[backend.Session], error) {
	f.record("CreateVerifiedSession")
	if f.CreateVerifiedSessionFn == nil {
		return unset[backend.Session]()
	}
	return f.CreateVerifiedSessionFn(ctx, req)
}

func (f *Fake) AnonymousSession(ctx context.Context, req backend.AnonymousSessionRequest) (backend.Result[backend.Session], error) {
	f.record("AnonymousSession")
	if f.AnonymousSessionFn == nil {
		return unset[backend.Session]()
	}
	return f.AnonymousSessionFn(ctx, req)
}

func (f *Fake) ValidateSession(ctx context.Context, token string) (backend.Result[backend.SessionInfo], error) {
	f.record("ValidateSession")
	if f.ValidateSessionFn == nil {
		return unset[backend.SessionInfo]()
	}
	return f.ValidateSessionFn(ctx, token)
}

func (f *Fake) DestroySession(ctx context.Context, token string) (backend.Result[string], error) {
	f.record("DestroySession")
	if f.DestroySessionFn == nil {
		return unset[string]()
	}
	return f.DestroySessionFn(ctx, token)
}

func (f *Fake) GetProfileBySession(ctx context.Context, token string) (backend.Result[backend.Profile], error) {
	f.record("GetProfileBySession")
	if f.GetProfileBySessionFn == nil {
		return unset[backend.Profile]()
	}
	return f.GetProfileBySessionFn(ctx, token)
}

func (f *Fake) GetPlayerProfile(ctx context.Context, playerID string) (backend.Result[backend.Profile], error) {
	f.record("GetPlayerProfile")
	if f.GetPlayerProfileFn == nil {
		return unset[backend.Profile]()
	}
	return f.GetPlayerProfileFn(ctx, playerID)
}

func (f *Fake) GetGameCredentialConfig(ctx context.Context, gameID string) (*domain.GameCredentialConfig, error) {
	f.record("GetGameCredentialConfig")
	if f.GetGameCredentialConfigFn == nil {
		return nil, nil
	}
	return f.GetGameCredentialConfigFn(ctx, gameID)
}

func (f *Fake) GetGameCredentialSettings(ctx context.Context, token, gameID string) (backend.Result[backend.CredentialSettings], error) {
	f.record("GetGameCredentialSettings")
	if f.GetGameCredentialSettingsFn == nil {
		return unset[backend.CredentialSettings]()
	}
	return f.GetGameCredentialSettingsFn(ctx, token, gameID)
}

func (f *Fake) SetPrimaryCredentials(ctx context.Context, token, gameID string, clientIDs []string) (backend.Result[string], error) {
	f.record("SetPrimaryCredentials")
	if f.SetPrimaryCredentialsFn == nil {
		return unset[string]()
	}
	return f.SetPrimaryCredentialsFn(ctx, token, gameID, clientIDs)
}

func (f *Fake) SetSecondaryCredentials(ctx context.Context, token, gameID, bundleID, teamID string) (backend.Result[string], error) {
	f.record("SetSecondaryCredentials")
	if f.SetSecondaryCredentialsFn == nil {
		return unset[string]()
	}
	return f.SetSecondaryCredentialsFn(ctx, token, gameID, bundleID, teamID)
}

func (f *Fake) ClearCredentials(ctx context.Context, token, gameID string, provider domain.Provider) (backend.Result[string], error) {
	f.record("ClearCredentials")
	if f.ClearCredentialsFn == nil {
		return unset[string]()
	}
	return f.ClearCredentialsFn(ctx, token, gameID, provider)
}

func (f *Fake) ValidateAPIKey(ctx context.Context, key string) (*domain.APIKeyRecord, error) {
	f.record("ValidateAPIKey")
	if f.ValidateAPIKeyFn == nil {
		return nil, nil
	}
	return f.ValidateAPIKeyFn(ctx, key)
}

func (f *Fake) SubmitScore(ctx context.Context, s backend.ScoreSubmission) (backend.Result[string], error) {
	f.record("SubmitScore")
	if f.SubmitScoreFn == nil {
		return unset[string]()
	}
	return f.SubmitScoreFn(ctx, s)
}

func (f *Fake) UnlockAchievement(ctx context.Context, actor backend.Actor, gameID, achievementID string) (backend.Result[string], error) {
	f.record("UnlockAchievement")
	if f.UnlockAchievementFn == nil {
		return unset[string]()
	}
	return f.UnlockAchievementFn(ctx, actor, gameID, achievementID)
}

func (f *Fake) ChangeNickname(ctx context.Context, actor backend.Actor, gameID, nickname string) (backend.Result[backend.NicknameChange], error) {
	f.record("ChangeNickname")
	if f.ChangeNicknameFn == nil {
		return unset[backend.NicknameChange]()
	}
	return f.ChangeNicknameFn(ctx, actor, gameID, nickname)
}

func (f *Fake) GetLeaderboard(ctx context.Context, gameID string, sortBy backend.SortBy, limit int) ([]backend.LeaderboardEntry, error) {
	f.record("GetLeaderboard")
	if f.GetLeaderboardFn == nil {
		return nil, nil
	}
	return f.GetLeaderboardFn(ctx, gameID, sortBy, limit)
}

func (f *Fake) GetGame(ctx context.Context, gameID string) (*backend.Game, error) {
	f.record("GetGame")
	if f.GetGameFn == nil {
		return nil, nil
	}
	return f.GetGameFn(ctx, gameID)
}

func (f *Fake) ListScoreboards(ctx context.Context, gameID string) ([]backend.ScoreboardSummary, error) {
	f.record("ListScoreboards")
	if f.ListScoreboardsFn == nil {
		return nil, nil
	}
	return f.ListScoreboardsFn(ctx, gameID)
}

func (f *Fake) GetScoreboard(ctx context.Context, gameID, scoreboardID string, limit int) (backend.Result[backend.ScoreboardView], error) {
	f.record("GetScoreboard")
	if f.GetScoreboardFn == nil {
		return unset[backend.ScoreboardView]()
	}
	return f.GetScoreboardFn(ctx, gameID, scoreboardID, limit)
}

func (f *Fake) CreateScoreboard(ctx context.Context, token, gameID string, spec backend.ScoreboardSpec) (backend.Result[string], error) {
	f.record("CreateScoreboard")
	if f.CreateScoreboardFn == nil {
		return unset[string]()
	}
	return f.CreateScoreboardFn(ctx, token, gameID, spec)
}

func (f *Fake) ResetScoreboard(ctx context.Context, token, gameID, scoreboardID string) (backend.Result[string], error) {
	f.record("ResetScoreboard")
	if f.ResetScoreboardFn == nil {
		return unset[string]()
	}
	return f.ResetScoreboardFn(ctx, token, gameID, scoreboardID)
}

func (f *Fake) DeleteScoreboard(ctx context.Context, token, gameID, scoreboardID string) (backend.Result[string], error) {
	f.record("DeleteScoreboard")
	if f.DeleteScoreboardFn == nil {
		return unset[string]()
	}
	return f.DeleteScoreboardFn(ctx, token, gameID, scoreboardID)
}

func (f *Fake) ListArchives(ctx context.Context, gameID, scoreboardID string, within *backend.TimeRange) ([]backend.ArchiveSummary, error) {
	f.record("ListArchives")
	if f.ListArchivesFn == nil {
		return nil, nil
	}
	return f.ListArchivesFn(ctx, gameID, scoreboardID, within)
}

func (f *Fake) GetLatestArchive(ctx context.Context, gameID, scoreboardID string, limit int) (backend.Result[backend.ArchiveView], error) {
	f.record("GetLatestArchive")
	if f.GetLatestArchiveFn == nil {
		return unset[backend.ArchiveView]()
	}
	return f.GetLatestArchiveFn(ctx, gameID, scoreboardID, limit)
}

func (f *Fake) GetArchive(ctx context.Context, archiveID string, limit int) (backend.Result[backend.ArchiveView], error) {
	f.record("GetArchive")
	if f.GetArchiveFn == nil {
		return unset[backend.ArchiveView]()
	}
	return f.GetArchiveFn(ctx, archiveID, limit)
}

func (f *Fake) GetArchiveStats(ctx context.Context, gameID string) (backend.ArchiveStats, error) {
	f.record("GetArchiveStats")
	if f.GetArchiveStatsFn == nil {
		return backend.ArchiveStats{}, nil
	}
	return f.GetArchiveStatsFn(ctx, gameID)
}

func (f *Fake) StartPlaySessionByAPIKey(ctx context.Context, key, playerID, gameID string) (backend.Result[string], error) {
	f.record("StartPlaySessionByAPIKey")
	if f.StartPlaySessionByAPIKeyFn == nil {
		return unset[string]()
	}
	return f.StartPlaySessionByAPIKeyFn(ctx, key, playerID, gameID)
}

func (f *Fake) StartPlaySessionBySession(ctx context.Context, token, gameID string) (backend.Result[string], error) {
	f.record("StartPlaySessionBySession")
	if f.StartPlaySessionBySessionFn == nil {
		return unset[string]()
	}
	return f.StartPlaySessionBySessionFn(ctx, token, gameID)
}

func (f *Fake) GetPlaySessionStatus(ctx context.Context, token string) (backend.Result[backend.PlaySessionStatus], error) {
	f.record("GetPlaySessionStatus")
	if f.GetPlaySessionStatusFn == nil {
		return unset[backend.PlaySessionStatus]()
	}
	return f.GetPlaySessionStatusFn(ctx, token)
}
