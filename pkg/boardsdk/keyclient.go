package boardsdk

import (
	"context"
	"net/http"
	"strings"
)

// KeyClient makes server-to-server calls authenticated by a game API key.
// The key determines the game, so X-Game-ID is not needed.
type KeyClient struct {
	client *SDKClient
	key    string
}

func keyCall[T any](ctx context.Context, k *KeyClient, method, path string, body any) (*T, error) {
	return call[T](ctx, k.client, method, path, body, map[string]string{"X-API-Key": k.key})
}

// Status returns the gateway status including the key's tier.
func (k *KeyClient) Status(ctx context.Context) (*StatusResponse, error) {
	return keyCall[StatusResponse](ctx, k, http.MethodGet, "/health", nil)
}

// SubmitScore records a score on behalf of req.PlayerID.
func (k *KeyClient) SubmitScore(ctx context.Context, req ScoreRequest) (*MessageResponse, error) {
	return keyCall[MessageResponse](ctx, k, http.MethodPost, "/scores", req)
}

// UnlockAchievements unlocks achievements on behalf of playerID.
func (k *KeyClient) UnlockAchievements(ctx context.Context, playerID string, ids ...string) (*AchievementsResponse, error) {
	req := AchievementRequest{PlayerID: playerID, AchievementIDs: ids}
	return keyCall[AchievementsResponse](ctx, k, http.MethodPost, "/achievements", req)
}

// Leaderboard returns the key's game leaderboard.
func (k *KeyClient) Leaderboard(ctx context.Context, limit int) (*LeaderboardResponse, error) {
	return keyCall[LeaderboardResponse](ctx, k, http.MethodGet, "/leaderboard"+query("limit", limit), nil)
}

// Game returns the key's game metadata.
func (k *KeyClient) Game(ctx context.Context) (*GameResponse, error) {
	return keyCall[GameResponse](ctx, k, http.MethodGet, "/game", nil)
}

// ChangeNickname renames playerID.
func (k *KeyClient) ChangeNickname(ctx context.Context, playerID, nickname string) (*NicknameResponse, error) {
	path := "/players/" + escape(playerID) + "/nickname"
	return keyCall[NicknameResponse](ctx, k, http.MethodPut, path, NicknameRequest{Nickname: nickname})
}

// PlayerProfile returns the public profile of playerID.
func (k *KeyClient) PlayerProfile(ctx context.Context, playerID string) (*PlayerProfileResponse, error) {
	return keyCall[PlayerProfileResponse](ctx, k, http.MethodGet, "/players/"+escape(playerID)+"/profile", nil)
}

// ListScoreboards lists the scoreboards of the key's game.
func (k *KeyClient) ListScoreboards(ctx context.Context) (*ScoreboardListResponse, error) {
	return keyCall[ScoreboardListResponse](ctx, k, http.MethodGet, "/scoreboards", nil)
}

// GetScoreboard returns up to limit ranked entries of scoreboardID.
func (k *KeyClient) GetScoreboard(ctx context.Context, scoreboardID string, limit int) (*ScoreboardResponse, error) {
	path := "/scoreboards/" + escape(scoreboardID) + query("limit", limit)
	return keyCall[ScoreboardResponse](ctx, k, http.MethodGet, path, nil)
}

// LatestArchive returns the most recent archive of scoreboardID.
func (k *KeyClient) LatestArchive(ctx context.Context, scoreboardID string) (*ArchiveResponse, error) {
	return keyCall[ArchiveResponse](ctx, k, http.MethodGet, "/scoreboards/"+escape(scoreboardID)+"/archives/latest", nil)
}

// GetArchive fetches an archive by id.
func (k *KeyClient) GetArchive(ctx context.Context, archiveID string) (*ArchiveResponse, error) {
	return keyCall[ArchiveResponse](ctx, k, http.MethodGet, "/archives/"+strings.TrimPrefix(archiveID, "/"), nil)
}
