package http

import (
	"context"
	"unicode/utf8"

	"github.com/aussiebroadwan/boardgate/internal/gateway/domain"
	"github.com/aussiebroadwan/boardgate/pkg/boardsdk"
)

// handleStartPlaySession godoc
//
//	@Summary		Start a play session
//	@Description	Opens a timed play session used for score time validation. Under an API key the body names the player; under a session the game comes from X-Game-ID or the body.
//	@Tags			PlaySessions
//	@Accept			json
//	@Produce		json
//	@Security		APIKey
//	@Security		SessionToken
//	@Param			request	body		boardsdk.PlaySessionStartRequest	false	"Player (API key) or game (session)"
//	@Success		200		{object}	httpx.Envelope{data=boardsdk.PlaySessionResponse}
//	@Failure		400		{object}	httpx.Envelope
//	@Failure		401		{object}	httpx.Envelope
//	@Failure		429		{object}	httpx.Envelope
//	@Router			/play-sessions/start [post].
func (r *Router) handleStartPlaySession(ctx context.Context, c *Call) (any, error) {
	var req boardsdk.PlaySessionStartRequest
	if err := c.Decode(&req); err != nil {
		return nil, err
	}

	if c.ByAPIKey() {
		if req.PlayerID == "" {
			return nil, domain.Validation("Missing required field: playerId")
		}
		if n := utf8.RuneCountInString(req.PlayerID); n < 3 || n > 100 {
			return nil, domain.Validation("playerId must be a string between 3-100 characters")
		}
		res, err := c.Backend.StartPlaySessionByAPIKey(ctx, c.APIKey, req.PlayerID, c.GameID)
		token, err := settle(res, err, domain.KindValidation, "Failed to start play session")
		if err != nil {
			return nil, err
		}
		return boardsdk.PlaySessionResponse{PlaySessionToken: token, Message: "Play session started"}, nil
	}

	res, err := c.Backend.StartPlaySessionBySession(ctx, c.SessionToken, c.GameID)
	token, err := settle(res, err, domain.KindValidation, "Failed to start play session")
	if err != nil {
		return nil, err
	}
	return boardsdk.PlaySessionResponse{PlaySessionToken: token, Message: "Play session started"}, nil
}

// handlePlaySessionStatus godoc
//
//	@Summary		Play session status
//	@Tags			PlaySessions
//	@Produce		json
//	@Param			token	path		string	true	"Play session token"
//	@Success		200		{object}	httpx.Envelope{data=boardsdk.PlaySessionStatusResponse}
//	@Failure		404		{object}	httpx.Envelope
//	@Router			/play-sessions/{token}/status [get].
func (r *Router) handlePlaySessionStatus(ctx context.Context, c *Call) (any, error) {
	token := c.Path("token")
	if token == "" {
		return nil, domain.Validation("Missing session token parameter")
	}

	res, err := c.Backend.GetPlaySessionStatus(ctx, token)
	st, err := settle(res, err, domain.KindNotFound, "Failed to get play session status")
	if err != nil {
		return nil, err
	}
	return boardsdk.PlaySessionStatusResponse{
		IsValid:          st.IsValid,
		GameID:           st.GameID,
		StartedAt:        st.StartedAt,
		ExpiresAt:        st.ExpiresAt,
		RemainingSeconds: st.RemainingSeconds,
	}, nil
}
