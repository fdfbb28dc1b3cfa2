package http

import (
	"context"
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/aussiebroadwan/boardgate/internal/gateway/backend"
	"github.com/aussiebroadwan/boardgate/internal/gateway/domain"
	"github.com/aussiebroadwan/boardgate/pkg/boardsdk"
	"github.com/aussiebroadwan/boardgate/pkg/slogx"
)

// actor names the player a gameplay call acts for: the body's playerId
// under an API key, the session otherwise.
func actor(c *Call, playerID string) backend.Actor {
	if c.ByAPIKey() {
		return backend.Actor{Mode: backend.ModeExternal, ID: playerID}
	}
	return backend.Actor{Mode: backend.ModeSession, ID: c.SessionToken}
}

func requirePlayerID(id string) error {
	if id == "" {
		return domain.Validation("Missing required field: playerId")
	}
	if utf8.RuneCountInString(id) > 100 {
		return domain.Validation("playerId must be a string between 1-100 characters")
	}
	return nil
}

// handleSubmitScore godoc
//
//	@Summary		Submit a score
//	@Description	Under an API key the body names the player. Scores are floored to integers; negative scores are rejected before reaching the backend.
//	@Tags			Gameplay
//	@Accept			json
//	@Produce		json
//	@Security		APIKey
//	@Security		SessionToken
//	@Param			request	body		boardsdk.ScoreRequest	true	"Score"
//	@Success		200		{object}	httpx.Envelope{data=boardsdk.MessageResponse}
//	@Failure		400		{object}	httpx.Envelope
//	@Failure		401		{object}	httpx.Envelope
//	@Failure		429		{object}	httpx.Envelope
//	@Router			/scores [post].
func (r *Router) handleSubmitScore(ctx context.Context, c *Call) (any, error) {
	var req boardsdk.ScoreRequest
	if err := c.Decode(&req); err != nil {
		return nil, err
	}
	if c.ByAPIKey() {
		if err := requirePlayerID(req.PlayerID); err != nil {
			return nil, err
		}
	}
	if req.Score == nil {
		return nil, domain.Validation("score must be a non-negative number")
	}
	score, ok := wholeNumber(*req.Score)
	if !ok {
		return nil, domain.Validation("score must be a non-negative number")
	}
	streak, ok := wholeNumber(req.Streak)
	if !ok {
		return nil, domain.Validation("streak must be a non-negative number")
	}

	sub := backend.ScoreSubmission{
		Actor:            actor(c, req.PlayerID),
		GameID:           c.GameID,
		Score:            score,
		Streak:           streak,
		PlaySessionToken: req.PlaySessionToken,
	}
	if req.Rounds != nil && *req.Rounds != 0 {
		rounds, ok := wholeNumber(*req.Rounds)
		if !ok {
			return nil, domain.Validation("rounds must be a non-negative number")
		}
		sub.Rounds = &rounds
	}
	if c.ByAPIKey() {
		sub.Nickname = req.Nickname
	}

	res, err := c.Backend.SubmitScore(ctx, sub)
	msg, err := settle(res, err, domain.KindValidation, "Failed to submit score")
	if err != nil {
		return nil, err
	}
	return boardsdk.MessageResponse{Message: msg}, nil
}

// wholeNumber floors v to an int64. Negative, non-finite and out of range
// values are rejected.
func wholeNumber(v float64) (int64, bool) {
	if math.IsNaN(v) || v < 0 || v >= math.MaxInt64 {
		return 0, false
	}
	return int64(math.Floor(v)), true
}

// handleUnlockAchievements godoc
//
//	@Summary		Unlock achievements
//	@Description	Under an API key, achievementIds unlocks a batch; each item reports its own outcome and the response is 200 even when some fail.
//	@Tags			Gameplay
//	@Accept			json
//	@Produce		json
//	@Security		APIKey
//	@Security		SessionToken
//	@Param			request	body		boardsdk.AchievementRequest	true	"Achievement(s)"
//	@Success		200		{object}	httpx.Envelope{data=boardsdk.AchievementsResponse}
//	@Failure		400		{object}	httpx.Envelope
//	@Router			/achievements [post].
func (r *Router) handleUnlockAchievements(ctx context.Context, c *Call) (any, error) {
	var req boardsdk.AchievementRequest
	if err := c.Decode(&req); err != nil {
		return nil, err
	}

	if !c.ByAPIKey() {
		if req.AchievementID == "" {
			return nil, domain.Validation("Missing required field: achievementId")
		}
		res, err := c.Backend.UnlockAchievement(ctx, actor(c, ""), c.GameID, req.AchievementID)
		msg, err := settle(res, err, domain.KindValidation, "Failed to unlock achievement")
		if err != nil {
			return nil, err
		}
		return boardsdk.MessageResponse{Message: msg}, nil
	}

	if req.PlayerID == "" {
		return nil, domain.Validation("Missing required field: playerId")
	}
	ids := req.AchievementIDs
	if len(ids) == 0 && req.AchievementID != "" {
		ids = []string{req.AchievementID}
	}
	if len(ids) == 0 {
		return nil, domain.Validation("Missing required field: achievementId or achievementIds")
	}

	who := actor(c, req.PlayerID)
	results := make([]boardsdk.AchievementResult, 0, len(ids))
	unlocked := 0
	for _, id := range ids {
		res, err := c.Backend.UnlockAchievement(ctx, who, c.GameID, id)
		if err != nil {
			slogx.FromContext(ctx).Warn("achievement unlock failed", "achievement_id", id, "error", err)
			results = append(results, boardsdk.AchievementResult{AchievementID: id, Error: "Failed to unlock achievement"})
			continue
		}
		msg, failure, ok := res.Unpack()
		if !ok {
			results = append(results, boardsdk.AchievementResult{AchievementID: id, Error: failure})
			continue
		}
		unlocked++
		results = append(results, boardsdk.AchievementResult{AchievementID: id, Success: true, Message: msg})
	}

	return boardsdk.AchievementsResponse{
		Message:  fmt.Sprintf("%d/%d achievements unlocked", unlocked, len(ids)),
		Unlocked: unlocked,
		Total:    len(ids),
		Results:  results,
	}, nil
}

// handleChangeNickname godoc
//
//	@Summary		Change nickname
//	@Description	PUT /profile/nickname acts on the session's player; PUT /players/{playerId}/nickname acts on a developer-managed player under an API key.
//	@Tags			Gameplay
//	@Accept			json
//	@Produce		json
//	@Security		SessionToken
//	@Param			request	body		boardsdk.NicknameRequest	true	"New nickname, 3-12 characters"
//	@Success		200		{object}	httpx.Envelope{data=boardsdk.NicknameResponse}
//	@Failure		400		{object}	httpx.Envelope
//	@Router			/profile/nickname [put].
func (r *Router) handleChangeNickname(ctx context.Context, c *Call) (any, error) {
	var req boardsdk.NicknameRequest
	if err := c.Decode(&req); err != nil {
		return nil, err
	}
	if n := utf8.RuneCountInString(req.Nickname); n < 3 || n > nicknameMax {
		return nil, domain.Validation("nickname must be 3-12 characters")
	}

	res, err := c.Backend.ChangeNickname(ctx, actor(c, c.Path("playerId")), c.GameID, req.Nickname)
	change, err := settle(res, err, domain.KindValidation, "Failed to change nickname")
	if err != nil {
		return nil, err
	}

	resp := boardsdk.NicknameResponse{Message: change.Message, Nickname: change.Nickname}
	if gp := change.GameProfile; gp != nil {
		resp.GameProfile = &boardsdk.ScoreSummary{Score: gp.TotalScore, Streak: gp.BestStreak}
	}
	return resp, nil
}

// handlePlayerProfile godoc
//
//	@Summary		Profile of a developer-managed player
//	@Tags			Gameplay
//	@Produce		json
//	@Security		APIKey
//	@Param			playerId	path		string	true	"Player id"
//	@Success		200			{object}	httpx.Envelope{data=boardsdk.PlayerProfileResponse}
//	@Failure		404			{object}	httpx.Envelope
//	@Router			/players/{playerId}/profile [get].
func (r *Router) handlePlayerProfile(ctx context.Context, c *Call) (any, error) {
	res, err := c.Backend.GetPlayerProfile(ctx, c.Path("playerId"))
	p, err := settle(res, err, domain.KindNotFound, "Failed to fetch player profile")
	if err != nil {
		return nil, err
	}
	return boardsdk.PlayerProfileResponse{
		Nickname:    p.Nickname,
		Created:     p.Created,
		GameProfile: gameProfileFor(p, c.GameID),
	}, nil
}

// handleLeaderboard godoc
//
//	@Summary		Game leaderboard
//	@Tags			Gameplay
//	@Produce		json
//	@Security		APIKey
//	@Security		SessionToken
//	@Param			sort	query		string	false	"score (default) or streak"
//	@Param			limit	query		int		false	"1-1000, default 100"
//	@Success		200		{object}	httpx.Envelope{data=boardsdk.LeaderboardResponse}
//	@Router			/leaderboard [get].
func (r *Router) handleLeaderboard(ctx context.Context, c *Call) (any, error) {
	sortBy := backend.SortScore
	if c.Query("sort") == string(backend.SortStreak) {
		sortBy = backend.SortStreak
	}

	entries, err := c.Backend.GetLeaderboard(ctx, c.GameID, sortBy, parseLimit(c.Query("limit")))
	if err != nil {
		return nil, backendFailure(err, "Failed to fetch leaderboard")
	}

	board := make([]boardsdk.LeaderboardEntry, 0, len(entries))
	for i, e := range entries {
		board = append(board, boardsdk.LeaderboardEntry{
			Rank:     i + 1,
			Nickname: e.Nickname,
			Score:    e.Score,
			Streak:   e.Streak,
			AuthType: e.AuthType,
		})
	}
	return boardsdk.LeaderboardResponse{Leaderboard: board, Total: len(board)}, nil
}

// handleGame godoc
//
//	@Summary		Game details
//	@Tags			Gameplay
//	@Produce		json
//	@Security		APIKey
//	@Security		SessionToken
//	@Success		200	{object}	httpx.Envelope{data=boardsdk.GameResponse}
//	@Failure		404	{object}	httpx.Envelope
//	@Router			/game [get].
func (r *Router) handleGame(ctx context.Context, c *Call) (any, error) {
	g, err := c.Backend.GetGame(ctx, c.GameID)
	if err != nil {
		return nil, backendFailure(err, "Failed to fetch game info")
	}
	if g == nil {
		return nil, domain.NotFound("Game not found")
	}

	// Scoreboards are decoration here; a failed listing leaves them empty.
	refs := []boardsdk.ScoreboardRef{}
	if boards, err := c.Backend.ListScoreboards(ctx, c.GameID); err == nil {
		for _, sb := range boards {
			refs = append(refs, boardsdk.ScoreboardRef{ScoreboardID: sb.ScoreboardID, Name: sb.Name, Period: sb.Period})
		}
	}

	cfg := r.credentialConfig(ctx, c.GameID)
	return boardsdk.GameResponse{
		GameID:                g.GameID,
		Name:                  g.Name,
		Description:           g.Description,
		TotalPlayers:          g.TotalPlayers,
		TotalPlays:            g.TotalPlays,
		IsActive:              g.IsActive,
		TimeValidationEnabled: g.TimeValidationEnabled,
		NativeAuth: boardsdk.NativeAuth{
			GoogleEnabled: r.providerEnabled(cfg, domain.ProviderPrimary),
			AppleEnabled:  r.providerEnabled(cfg, domain.ProviderSecondary),
		},
		Scoreboards: refs,
	}, nil
}
