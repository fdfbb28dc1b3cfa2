package boardsdk

import (
	"context"
	"net/http"
)

// Session is an authenticated player session. Requests carry the session
// id in X-Session-Token.
type Session struct {
	client *SDKClient
	token  string
}

// Token returns the session id.
func (s *Session) Token() string {
	return s.token
}

func (s *Session) headers() map[string]string {
	return map[string]string{"X-Session-Token": s.token}
}

func sessionCall[T any](ctx context.Context, s *Session, method, path string, body any) (*T, error) {
	return call[T](ctx, s.client, method, path, body, s.headers())
}

// Validate checks the session against the backend.
func (s *Session) Validate(ctx context.Context) (*SessionResponse, error) {
	return sessionCall[SessionResponse](ctx, s, http.MethodGet, "/auth/session", nil)
}

// Logout ends the session.
func (s *Session) Logout(ctx context.Context) error {
	_, err := sessionCall[MessageResponse](ctx, s, http.MethodPost, "/auth/logout", nil)
	return err
}

// Profile returns the signed-in player's profile for the client's game.
func (s *Session) Profile(ctx context.Context) (*ProfileResponse, error) {
	return sessionCall[ProfileResponse](ctx, s, http.MethodGet, "/auth/profile", nil)
}

// StartPlaySession opens a timed play session used to validate scores.
func (s *Session) StartPlaySession(ctx context.Context) (*PlaySessionResponse, error) {
	return sessionCall[PlaySessionResponse](ctx, s, http.MethodPost, "/play-sessions/start", PlaySessionStartRequest{})
}

// SubmitScore records a score for the signed-in player.
func (s *Session) SubmitScore(ctx context.Context, req ScoreRequest) (*MessageResponse, error) {
	return sessionCall[MessageResponse](ctx, s, http.MethodPost, "/scores", req)
}

// UnlockAchievements unlocks one or more achievements. Partial success is
// reported per achievement, not as an error.
func (s *Session) UnlockAchievements(ctx context.Context, ids ...string) (*AchievementsResponse, error) {
	req := AchievementRequest{AchievementIDs: ids}
	if len(ids) == 1 {
		req = AchievementRequest{AchievementID: ids[0]}
	}
	return sessionCall[AchievementsResponse](ctx, s, http.MethodPost, "/achievements", req)
}

// ChangeNickname renames the signed-in player.
func (s *Session) ChangeNickname(ctx context.Context, nickname string) (*NicknameResponse, error) {
	return sessionCall[NicknameResponse](ctx, s, http.MethodPut, "/profile/nickname", NicknameRequest{Nickname: nickname})
}

// Leaderboard returns the game leaderboard sorted by "score" or "streak".
func (s *Session) Leaderboard(ctx context.Context, sort string, limit int) (*LeaderboardResponse, error) {
	path := "/leaderboard" + query("limit", limit)
	if sort != "" {
		sep := "?"
		if limit > 0 {
			sep = "&"
		}
		path += sep + "sort=" + escape(sort)
	}
	return sessionCall[LeaderboardResponse](ctx, s, http.MethodGet, path, nil)
}

// Game returns the metadata of the client's game.
func (s *Session) Game(ctx context.Context) (*GameResponse, error) {
	return sessionCall[GameResponse](ctx, s, http.MethodGet, "/game", nil)
}

// Rank looks up the signed-in player on a scoreboard.
func (s *Session) Rank(ctx context.Context, gameID, scoreboardID string) (*RankResponse, error) {
	return sessionCall[RankResponse](ctx, s, http.MethodGet, gamePath(gameID, "scoreboards", scoreboardID, "rank"), nil)
}

// CreateScoreboard defines a new scoreboard. The player must be a game admin.
func (s *Session) CreateScoreboard(ctx context.Context, gameID string, req CreateScoreboardRequest) (*ScoreboardCreatedResponse, error) {
	return sessionCall[ScoreboardCreatedResponse](ctx, s, http.MethodPost, gamePath(gameID, "scoreboards"), req)
}

// ResetScoreboard archives and clears a scoreboard.
func (s *Session) ResetScoreboard(ctx context.Context, gameID, scoreboardID string) (*MessageResponse, error) {
	return sessionCall[MessageResponse](ctx, s, http.MethodPost, gamePath(gameID, "scoreboards", scoreboardID, "reset"), nil)
}

// DeleteScoreboard removes a scoreboard.
func (s *Session) DeleteScoreboard(ctx context.Context, gameID, scoreboardID string) (*MessageResponse, error) {
	return sessionCall[MessageResponse](ctx, s, http.MethodDelete, gamePath(gameID, "scoreboards", scoreboardID), nil)
}

// SetGoogleCredentials registers the game's Google client ids.
func (s *Session) SetGoogleCredentials(ctx context.Context, gameID string, req GoogleCredentialsRequest) (*GoogleCredentialsResponse, error) {
	return sessionCall[GoogleCredentialsResponse](ctx, s, http.MethodPost, gamePath(gameID, "oauth", "google"), req)
}

// SetAppleCredentials registers the game's Apple bundle id.
func (s *Session) SetAppleCredentials(ctx context.Context, gameID string, req AppleCredentialsRequest) (*AppleCredentialsResponse, error) {
	return sessionCall[AppleCredentialsResponse](ctx, s, http.MethodPost, gamePath(gameID, "oauth", "apple"), req)
}

// CredentialSettings returns the game's provider configuration.
func (s *Session) CredentialSettings(ctx context.Context, gameID string) (*CredentialSettingsResponse, error) {
	return sessionCall[CredentialSettingsResponse](ctx, s, http.MethodGet, gamePath(gameID, "oauth"), nil)
}

// ClearCredentials removes the game's credentials for provider ("google"
// or "apple").
func (s *Session) ClearCredentials(ctx context.Context, gameID, provider string) (*MessageResponse, error) {
	return sessionCall[MessageResponse](ctx, s, http.MethodDelete, gamePath(gameID, "oauth", provider), nil)
}
