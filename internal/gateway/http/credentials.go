package http

import (
	"context"

	"github.com/aussiebroadwan/boardgate/internal/gateway/domain"
	"github.com/aussiebroadwan/boardgate/pkg/boardsdk"
)

// handleSetGoogleCredentials godoc
//
//	@Summary		Register Google client IDs for a game
//	@Description	Each id must end with .apps.googleusercontent.com. The gateway's cached config for the game is dropped on success.
//	@Tags			Credentials
//	@Accept			json
//	@Produce		json
//	@Security		SessionToken
//	@Param			gameId	path		string								true	"Game id"
//	@Param			request	body		boardsdk.GoogleCredentialsRequest	true	"Client ids"
//	@Success		200		{object}	httpx.Envelope{data=boardsdk.GoogleCredentialsResponse}
//	@Failure		400		{object}	httpx.Envelope
//	@Failure		401		{object}	httpx.Envelope
//	@Router			/games/{gameId}/oauth/google [post].
func (r *Router) handleSetGoogleCredentials(ctx context.Context, c *Call) (any, error) {
	var req boardsdk.GoogleCredentialsRequest
	if err := c.Decode(&req); err != nil {
		return nil, err
	}

	res, err := r.CredentialService.SetPrimary(ctx, c.SessionToken, c.GameID, req.ClientIDs)
	msg, err := settle(res, err, domain.KindValidation, "Failed to save Google credentials")
	if err != nil {
		return nil, err
	}
	return boardsdk.GoogleCredentialsResponse{Message: msg, ClientIDCount: len(req.ClientIDs)}, nil
}

// handleSetAppleCredentials godoc
//
//	@Summary		Register an Apple bundle id for a game
//	@Tags			Credentials
//	@Accept			json
//	@Produce		json
//	@Security		SessionToken
//	@Param			gameId	path		string								true	"Game id"
//	@Param			request	body		boardsdk.AppleCredentialsRequest	true	"Bundle id and optional team id"
//	@Success		200		{object}	httpx.Envelope{data=boardsdk.AppleCredentialsResponse}
//	@Failure		400		{object}	httpx.Envelope
//	@Failure		401		{object}	httpx.Envelope
//	@Router			/games/{gameId}/oauth/apple [post].
func (r *Router) handleSetAppleCredentials(ctx context.Context, c *Call) (any, error) {
	var req boardsdk.AppleCredentialsRequest
	if err := c.Decode(&req); err != nil {
		return nil, err
	}

	res, err := r.CredentialService.SetSecondary(ctx, c.SessionToken, c.GameID, req.BundleID, req.TeamID)
	msg, err := settle(res, err, domain.KindValidation, "Failed to save Apple credentials")
	if err != nil {
		return nil, err
	}
	return boardsdk.AppleCredentialsResponse{Message: msg, BundleID: req.BundleID}, nil
}

// handleCredentialSettings godoc
//
//	@Summary		Credential settings of a game
//	@Tags			Credentials
//	@Produce		json
//	@Security		SessionToken
//	@Param			gameId	path		string	true	"Game id"
//	@Success		200		{object}	httpx.Envelope{data=boardsdk.CredentialSettingsResponse}
//	@Failure		400		{object}	httpx.Envelope
//	@Failure		401		{object}	httpx.Envelope
//	@Router			/games/{gameId}/oauth [get].
func (r *Router) handleCredentialSettings(ctx context.Context, c *Call) (any, error) {
	res, err := r.CredentialService.Settings(ctx, c.SessionToken, c.GameID)
	s, err := settle(res, err, domain.KindValidation, "Failed to fetch OAuth config")
	if err != nil {
		return nil, err
	}

	clientIDs := s.PrimaryClientIDs
	if clientIDs == nil {
		clientIDs = []string{}
	}
	return boardsdk.CredentialSettingsResponse{
		Google: boardsdk.GoogleCredentialSettings{Configured: s.PrimaryConfigured, ClientIDs: clientIDs},
		Apple: boardsdk.AppleCredentialSettings{
			Configured: s.SecondaryConfigured,
			BundleID:   optional(s.SecondaryBundleID),
			TeamID:     optional(s.SecondaryTeamID),
		},
	}, nil
}

// handleClearCredentials godoc
//
//	@Summary		Remove a provider's credentials from a game
//	@Tags			Credentials
//	@Produce		json
//	@Security		SessionToken
//	@Param			gameId	path		string	true	"Game id"
//	@Success		200		{object}	httpx.Envelope{data=boardsdk.MessageResponse}
//	@Failure		400		{object}	httpx.Envelope
//	@Failure		401		{object}	httpx.Envelope
//	@Router			/games/{gameId}/oauth/google [delete]
//	@Router			/games/{gameId}/oauth/apple [delete].
func (r *Router) handleClearCredentials(p domain.Provider) HandlerFunc {
	return func(ctx context.Context, c *Call) (any, error) {
		res, err := r.CredentialService.Clear(ctx, c.SessionToken, c.GameID, p)
		msg, err := settle(res, err, domain.KindValidation, "Failed to clear "+p.DisplayName()+" credentials")
		if err != nil {
			return nil, err
		}
		return boardsdk.MessageResponse{Message: msg}, nil
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
