package http

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/aussiebroadwan/boardgate/internal/gateway/backend"
	"github.com/aussiebroadwan/boardgate/internal/gateway/domain"
	"github.com/aussiebroadwan/boardgate/pkg/boardsdk"
)

const (
	defaultLimit = 100
	maxLimit     = 1000
)

// parseLimit clamps the limit query parameter to [1, 1000], defaulting to
// 100 when absent or unparseable.
func parseLimit(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n == 0 {
		return defaultLimit
	}
	return min(max(n, 1), maxLimit)
}

// handleListScoreboards godoc
//
//	@Summary		List a game's scoreboards
//	@Tags			Scoreboards
//	@Produce		json
//	@Param			gameId	path		string	true	"Game id"
//	@Success		200		{object}	httpx.Envelope{data=boardsdk.ScoreboardListResponse}
//	@Router			/games/{gameId}/scoreboards [get].
func (r *Router) handleListScoreboards(ctx context.Context, c *Call) (any, error) {
	boards, err := c.Backend.ListScoreboards(ctx, c.GameID)
	if err != nil {
		return nil, backendFailure(err, "Failed to fetch scoreboards")
	}

	out := make([]boardsdk.Scoreboard, 0, len(boards))
	for _, sb := range boards {
		out = append(out, boardsdk.Scoreboard{
			ScoreboardID: sb.ScoreboardID,
			Name:         sb.Name,
			Description:  sb.Description,
			Period:       sb.Period,
			SortBy:       sb.SortBy,
			MaxEntries:   sb.MaxEntries,
			EntryCount:   sb.EntryCount,
			LastReset:    sb.LastReset,
			IsActive:     sb.IsActive,
		})
	}
	return boardsdk.ScoreboardListResponse{GameID: c.GameID, Scoreboards: out}, nil
}

// handleGetScoreboard godoc
//
//	@Summary		Scoreboard entries
//	@Tags			Scoreboards
//	@Produce		json
//	@Param			gameId			path		string	true	"Game id"
//	@Param			scoreboardId	path		string	true	"Scoreboard id"
//	@Param			limit			query		int		false	"1-1000, default 100"
//	@Success		200				{object}	httpx.Envelope{data=boardsdk.ScoreboardResponse}
//	@Failure		404				{object}	httpx.Envelope
//	@Router			/games/{gameId}/scoreboards/{scoreboardId} [get].
func (r *Router) handleGetScoreboard(ctx context.Context, c *Call) (any, error) {
	id := c.Path("scoreboardId")
	res, err := c.Backend.GetScoreboard(ctx, c.GameID, id, parseLimit(c.Query("limit")))
	view, err := settle(res, err, domain.KindNotFound, "Failed to fetch scoreboard")
	if err != nil {
		return nil, err
	}

	entries := rankedEntries(view.Entries)
	return boardsdk.ScoreboardResponse{
		ScoreboardID: id,
		Config: boardsdk.ScoreboardConfig{
			Name:        view.Config.Name,
			Description: view.Config.Description,
			Period:      view.Config.Period,
			SortBy:      view.Config.SortBy,
			LastReset:   view.Config.LastReset,
		},
		Entries:      entries,
		TotalEntries: len(entries),
	}, nil
}

// handlePlayerRank godoc
//
//	@Summary		Rank of the session's player
//	@Description	Looks the player up by nickname among the top 1000 entries.
//	@Tags			Scoreboards
//	@Produce		json
//	@Security		SessionToken
//	@Param			gameId			path		string	true	"Game id"
//	@Param			scoreboardId	path		string	true	"Scoreboard id"
//	@Success		200				{object}	httpx.Envelope{data=boardsdk.RankResponse}
//	@Failure		401				{object}	httpx.Envelope
//	@Failure		404				{object}	httpx.Envelope
//	@Router			/games/{gameId}/scoreboards/{scoreboardId}/rank [get].
func (r *Router) handlePlayerRank(ctx context.Context, c *Call) (any, error) {
	res, err := c.Backend.GetScoreboard(ctx, c.GameID, c.Path("scoreboardId"), maxLimit)
	view, err := settle(res, err, domain.KindNotFound, "Failed to fetch player rank")
	if err != nil {
		return nil, err
	}

	total := len(view.Entries)
	i := slices.IndexFunc(view.Entries, func(e backend.RankedEntry) bool {
		return e.Nickname == c.Session.Nickname
	})
	if i < 0 {
		return boardsdk.RankResponse{Found: false, Message: "Player not on this scoreboard yet", TotalPlayers: total}, nil
	}

	e := view.Entries[i]
	return boardsdk.RankResponse{Found: true, Rank: e.Rank, Score: e.Score, Streak: e.Streak, TotalPlayers: total}, nil
}

// handleCreateScoreboard godoc
//
//	@Summary		Create a scoreboard
//	@Tags			Scoreboards
//	@Accept			json
//	@Produce		json
//	@Security		SessionToken
//	@Param			gameId	path		string								true	"Game id"
//	@Param			request	body		boardsdk.CreateScoreboardRequest	true	"Scoreboard definition"
//	@Success		200		{object}	httpx.Envelope{data=boardsdk.ScoreboardCreatedResponse}
//	@Failure		400		{object}	httpx.Envelope
//	@Failure		401		{object}	httpx.Envelope
//	@Router			/games/{gameId}/scoreboards [post].
func (r *Router) handleCreateScoreboard(ctx context.Context, c *Call) (any, error) {
	var req boardsdk.CreateScoreboardRequest
	if err := c.Decode(&req); err != nil {
		return nil, err
	}
	if req.ScoreboardID == "" {
		return nil, domain.Validation("Missing required field: scoreboardId")
	}
	if req.Name == "" {
		return nil, domain.Validation("Missing required field: name")
	}
	if req.Period != "" && !slices.Contains(backend.Periods, req.Period) {
		return nil, domain.Validation(fmt.Sprintf("Invalid period. Must be one of: %s", strings.Join(backend.Periods, ", ")))
	}
	if req.SortBy != "" && !slices.Contains(backend.SortOrders, req.SortBy) {
		return nil, domain.Validation(fmt.Sprintf("Invalid sortBy. Must be one of: %s", strings.Join(backend.SortOrders, ", ")))
	}

	res, err := c.Backend.CreateScoreboard(ctx, c.SessionToken, c.GameID, backend.ScoreboardSpec{
		ScoreboardID: req.ScoreboardID,
		Name:         req.Name,
		Description:  req.Description,
		Period:       firstNonEmpty(req.Period, "allTime"),
		SortBy:       firstNonEmpty(req.SortBy, string(backend.SortScore)),
		MaxEntries:   req.MaxEntries,
	})
	msg, err := settle(res, err, domain.KindValidation, "Failed to create scoreboard")
	if err != nil {
		return nil, err
	}
	return boardsdk.ScoreboardCreatedResponse{Message: msg, ScoreboardID: req.ScoreboardID}, nil
}

// handleResetScoreboard godoc
//
//	@Summary		Reset a scoreboard
//	@Tags			Scoreboards
//	@Produce		json
//	@Security		SessionToken
//	@Param			gameId			path		string	true	"Game id"
//	@Param			scoreboardId	path		string	true	"Scoreboard id"
//	@Success		200				{object}	httpx.Envelope{data=boardsdk.MessageResponse}
//	@Failure		400				{object}	httpx.Envelope
//	@Router			/games/{gameId}/scoreboards/{scoreboardId}/reset [post].
func (r *Router) handleResetScoreboard(ctx context.Context, c *Call) (any, error) {
	res, err := c.Backend.ResetScoreboard(ctx, c.SessionToken, c.GameID, c.Path("scoreboardId"))
	msg, err := settle(res, err, domain.KindValidation, "Failed to reset scoreboard")
	if err != nil {
		return nil, err
	}
	return boardsdk.MessageResponse{Message: msg}, nil
}

// handleDeleteScoreboard godoc
//
//	@Summary		Delete a scoreboard
//	@Tags			Scoreboards
//	@Produce		json
//	@Security		SessionToken
//	@Param			gameId			path		string	true	"Game id"
//	@Param			scoreboardId	path		string	true	"Scoreboard id"
//	@Success		200				{object}	httpx.Envelope{data=boardsdk.MessageResponse}
//	@Failure		400				{object}	httpx.Envelope
//	@Router			/games/{gameId}/scoreboards/{scoreboardId} [delete].
func (r *Router) handleDeleteScoreboard(ctx context.Context, c *Call) (any, error) {
	res, err := c.Backend.DeleteScoreboard(ctx, c.SessionToken, c.GameID, c.Path("scoreboardId"))
	msg, err := settle(res, err, domain.KindValidation, "Failed to delete scoreboard")
	if err != nil {
		return nil, err
	}
	return boardsdk.MessageResponse{Message: msg}, nil
}

func rankedEntries(in []backend.RankedEntry) []boardsdk.RankedEntry {
	out := make([]boardsdk.RankedEntry, 0, len(in))
	for _, e := range in {
		out = append(out, boardsdk.RankedEntry{
			Rank:        e.Rank,
			Nickname:    e.Nickname,
			Score:       e.Score,
			Streak:      e.Streak,
			AuthType:    e.AuthType,
			SubmittedAt: e.SubmittedAt,
		})
	}
	return out
}
