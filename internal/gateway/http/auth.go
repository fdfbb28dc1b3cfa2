package http

import (
	"context"
	"fmt"
	"strings"

	"github.com/aussiebroadwan/boardgate/internal/gateway/backend"
	"github.com/aussiebroadwan/boardgate/internal/gateway/domain"
	"github.com/aussiebroadwan/boardgate/internal/gateway/identity"
	"github.com/aussiebroadwan/boardgate/pkg/boardsdk"
	"github.com/aussiebroadwan/boardgate/pkg/idx"
	"github.com/aussiebroadwan/boardgate/pkg/slogx"
)

const (
	nicknameMax      = 12
	missingGameLogin = "Missing game ID. Include X-Game-ID header or gameId in body."
)

// handleGoogleSignIn godoc
//
//	@Summary		Sign in with Google
//	@Description	Verifies a Google ID token against the game's registered client IDs and opens a session.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			X-Game-ID	header		string								false	"Game id, or gameId in the body"
//	@Param			request		body		boardsdk.GoogleSignInRequest		true	"Google ID token"
//	@Success		200			{object}	httpx.Envelope{data=boardsdk.SignInResponse}
//	@Failure		400			{object}	httpx.Envelope	"Missing field, game, or provider not configured"
//	@Failure		401			{object}	httpx.Envelope	"Token rejected"
//	@Router			/auth/google [post].
func (r *Router) handleGoogleSignIn(ctx context.Context, c *Call) (any, error) {
	var req boardsdk.GoogleSignInRequest
	if err := c.Decode(&req); err != nil {
		return nil, err
	}
	if req.IDToken == "" {
		return nil, domain.Validation("Missing required field: idToken")
	}
	if c.GameID == "" {
		return nil, domain.Validation(missingGameLogin)
	}

	id, err := r.Verifier.Verify(ctx, identity.VerifyRequest{
		Provider:      domain.ProviderPrimary,
		RawToken:      req.IDToken,
		ExpectedNonce: req.Nonce,
		GameID:        c.GameID,
	})
	if err != nil {
		return nil, err
	}
	if id.Email == "" {
		return nil, domain.Validation("Google account has no email associated")
	}

	nickname := firstNonEmpty(req.Nickname, id.Name, localPart(id.Email))
	resp, err := r.openVerifiedSession(ctx, c, id, req.Nonce, nickname, "Failed to complete Google sign-in")
	if err != nil {
		return nil, err
	}
	resp.Email = id.Email
	return resp, nil
}

// handleAppleSignIn godoc
//
//	@Summary		Sign in with Apple
//	@Description	Verifies an Apple identity token against the game's bundle id and opens a session.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			X-Game-ID	header		string							false	"Game id, or gameId in the body"
//	@Param			request		body		boardsdk.AppleSignInRequest		true	"Apple identity token"
//	@Success		200			{object}	httpx.Envelope{data=boardsdk.SignInResponse}
//	@Failure		400			{object}	httpx.Envelope
//	@Failure		401			{object}	httpx.Envelope
//	@Router			/auth/apple [post].
func (r *Router) handleAppleSignIn(ctx context.Context, c *Call) (any, error) {
	var req boardsdk.AppleSignInRequest
	if err := c.Decode(&req); err != nil {
		return nil, err
	}
	if req.IdentityToken == "" {
		return nil, domain.Validation("Missing required field: identityToken")
	}
	if c.GameID == "" {
		return nil, domain.Validation(missingGameLogin)
	}

	id, err := r.Verifier.Verify(ctx, identity.VerifyRequest{
		Provider:      domain.ProviderSecondary,
		RawToken:      req.IdentityToken,
		ExpectedNonce: req.Nonce,
		GameID:        c.GameID,
	})
	if err != nil {
		return nil, err
	}

	nickname := req.Nickname
	if nickname == "" && req.User != nil && req.User.Name != nil {
		nickname = firstNonEmpty(req.User.Name.FirstName, req.User.Name.GivenName)
	}
	if nickname == "" {
		nickname = "Player"
	}

	return r.openVerifiedSession(ctx, c, id, req.Nonce, nickname, "Failed to complete Apple sign-in")
}

func (r *Router) openVerifiedSession(ctx context.Context, c *Call, id domain.VerifiedIdentity, nonce, nickname, failMsg string) (*boardsdk.SignInResponse, error) {
	res, err := c.Backend.CreateVerifiedSession(ctx, backend.VerifiedSessionRequest{
		Provider: id.Provider,
		Subject:  id.Subject,
		Email:    id.Email,
		Nonce:    nonce,
		Nickname: truncate(nickname, nicknameMax),
		GameID:   c.GameID,
	})
	sess, err := settle(res, err, domain.KindValidation, failMsg)
	if err != nil {
		return nil, err
	}

	slogx.FromContext(ctx).Info("player signed in",
		"provider", id.Provider,
		"game_id", c.GameID,
		"new_user", sess.IsNewUser,
		"private_relay", id.IsPrivateRelayEmail,
	)
	return signInResponse(sess), nil
}

// handleAnonymousSignIn godoc
//
//	@Summary		Anonymous sign-in
//	@Description	Opens a session for a device without a provider account. deviceId and nickname are generated when absent.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		boardsdk.AnonymousSignInRequest	false	"Device and nickname"
//	@Success		200		{object}	httpx.Envelope{data=boardsdk.SignInResponse}
//	@Failure		400		{object}	httpx.Envelope
//	@Router			/auth/anonymous [post].
func (r *Router) handleAnonymousSignIn(ctx context.Context, c *Call) (any, error) {
	var req boardsdk.AnonymousSignInRequest
	if err := c.Decode(&req); err != nil {
		return nil, err
	}

	deviceID := req.DeviceID
	if deviceID == "" {
		deviceID = idx.WithPrefix("anon").String()
	}
	nickname := req.Nickname
	if nickname == "" {
		nickname = defaultNickname(deviceID)
	}

	res, err := c.Backend.AnonymousSession(ctx, backend.AnonymousSessionRequest{
		DeviceID: deviceID,
		Nickname: truncate(nickname, nicknameMax),
		GameID:   c.GameID,
	})
	sess, err := settle(res, err, domain.KindValidation, "Failed to create anonymous session")
	if err != nil {
		return nil, err
	}

	resp := signInResponse(sess)
	resp.PlayerID = deviceID
	return resp, nil
}

// handleVerify godoc
//
//	@Summary		Verify a provider token
//	@Description	Standalone verification: checks a Google or Apple token and opens a session for the verified identity.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		boardsdk.VerifyRequest	true	"Provider and raw token"
//	@Success		200		{object}	httpx.Envelope{data=boardsdk.VerifyResponse}
//	@Failure		400		{object}	httpx.Envelope
//	@Failure		401		{object}	httpx.Envelope
//	@Failure		503		{object}	httpx.Envelope	"Provider keys unavailable"
//	@Router			/auth/verify [post].
func (r *Router) handleVerify(ctx context.Context, c *Call) (any, error) {
	var req boardsdk.VerifyRequest
	if err := c.Decode(&req); err != nil {
		return nil, err
	}
	provider, ok := domain.ParseProvider(req.Provider)
	if !ok {
		return nil, domain.Validation("provider must be one of: google, apple")
	}
	if req.IDToken == "" {
		return nil, domain.Validation("Missing required field: id_token")
	}

	id, err := r.Verifier.Verify(ctx, identity.VerifyRequest{
		Provider:      provider,
		RawToken:      req.IDToken,
		ExpectedNonce: req.Nonce,
		GameID:        c.GameID,
	})
	if err != nil {
		return nil, err
	}

	res, err := c.Backend.CreateVerifiedSession(ctx, backend.VerifiedSessionRequest{
		Provider: id.Provider,
		Subject:  id.Subject,
		Email:    id.Email,
		Nonce:    req.Nonce,
		Nickname: truncate(id.Name, nicknameMax),
		GameID:   c.GameID,
	})
	if err != nil {
		return nil, backendFailure(err, "Failed to create session")
	}
	sess, msg, ok := res.Unpack()
	if !ok {
		return nil, domain.Auth(msg)
	}

	return boardsdk.VerifyResponse{
		SessionID: sess.SessionID,
		Email:     firstNonEmpty(sess.Email, id.Email),
		Nickname:  sess.Nickname,
		AuthType:  firstNonEmpty(sess.AuthType, string(id.Provider)),
		Created:   sess.Created,
		Expires:   sess.Expires,
	}, nil
}

// handleValidateSession godoc
//
//	@Summary		Validate a session
//	@Tags			Auth
//	@Produce		json
//	@Security		SessionToken
//	@Success		200	{object}	httpx.Envelope{data=boardsdk.SessionResponse}
//	@Failure		401	{object}	httpx.Envelope
//	@Router			/auth/session [get].
func (r *Router) handleValidateSession(ctx context.Context, c *Call) (any, error) {
	if c.SessionToken == "" {
		return nil, domain.Auth("Missing session token")
	}
	if err := r.validateSession(ctx, c); err != nil {
		return nil, err
	}
	return boardsdk.SessionResponse{Valid: true, Email: c.Session.Email, Nickname: c.Session.Nickname}, nil
}

// handleLogout godoc
//
//	@Summary		Destroy a session
//	@Description	Always succeeds once a token is presented; a backend outage still logs the client out locally.
//	@Tags			Auth
//	@Produce		json
//	@Security		SessionToken
//	@Success		200	{object}	httpx.Envelope{data=boardsdk.MessageResponse}
//	@Failure		400	{object}	httpx.Envelope
//	@Router			/auth/logout [post].
func (r *Router) handleLogout(ctx context.Context, c *Call) (any, error) {
	if c.SessionToken == "" {
		return nil, domain.Validation("Missing session token")
	}
	if _, err := c.Backend.DestroySession(ctx, c.SessionToken); err != nil {
		slogx.FromContext(ctx).Warn("session destroy failed", "error", err)
		return boardsdk.MessageResponse{Message: "Logged out"}, nil
	}
	return boardsdk.MessageResponse{Message: "Logged out successfully"}, nil
}

// handleProfile godoc
//
//	@Summary		Profile of the session's player
//	@Tags			Auth
//	@Produce		json
//	@Security		SessionToken
//	@Param			X-Game-ID	header		string	false	"Selects gameProfile"
//	@Success		200			{object}	httpx.Envelope{data=boardsdk.ProfileResponse}
//	@Failure		401			{object}	httpx.Envelope
//	@Failure		404			{object}	httpx.Envelope
//	@Router			/auth/profile [get].
func (r *Router) handleProfile(ctx context.Context, c *Call) (any, error) {
	if c.SessionToken == "" {
		return nil, domain.Auth("Missing session token")
	}

	res, err := c.Backend.GetProfileBySession(ctx, c.SessionToken)
	p, err := settle(res, err, domain.KindNotFound, "Failed to fetch profile")
	if err != nil {
		return nil, err
	}

	return boardsdk.ProfileResponse{
		Nickname:    p.Nickname,
		AuthType:    p.AuthType,
		Created:     p.Created,
		LastUpdated: p.LastUpdated,
		GameProfile: gameProfileFor(p, c.GameID),
		TotalGames:  len(p.GameProfiles),
	}, nil
}

// handleAuthConfig godoc
//
//	@Summary		Sign-in methods available for a game
//	@Tags			Auth
//	@Produce		json
//	@Param			gameId	path		string	true	"Game id"
//	@Success		200		{object}	httpx.Envelope{data=boardsdk.AuthConfigResponse}
//	@Failure		400		{object}	httpx.Envelope
//	@Router			/auth/config/{gameId} [get].
func (r *Router) handleAuthConfig(ctx context.Context, c *Call) (any, error) {
	if c.GameID == "" {
		return nil, domain.Validation("Missing game ID")
	}

	cfg := r.credentialConfig(ctx, c.GameID)
	resp := boardsdk.AuthConfigResponse{
		GameID: c.GameID,
		Google: boardsdk.GoogleAuthConfig{
			Enabled:       r.providerEnabled(cfg, domain.ProviderPrimary),
			ClientIDCount: len(cfg.Audiences(domain.ProviderPrimary)),
		},
		Apple: boardsdk.AppleAuthConfig{
			Enabled: r.providerEnabled(cfg, domain.ProviderSecondary),
		},
	}
	if cfg != nil && cfg.SecondaryBundleID != "" {
		configured := "[configured]"
		resp.Apple.BundleID = &configured
	}
	return resp, nil
}

// credentialConfig returns the game's cached credential config. Lookup
// failures read as "none registered".
func (r *Router) credentialConfig(ctx context.Context, gameID string) *domain.GameCredentialConfig {
	cfg, err := r.CredentialService.Config(ctx, gameID)
	if err != nil {
		slogx.FromContext(ctx).Warn("credential config lookup failed", "game_id", gameID, "error", err)
		return nil
	}
	return cfg
}

func (r *Router) providerEnabled(cfg *domain.GameCredentialConfig, p domain.Provider) bool {
	return len(cfg.Audiences(p)) > 0 || len(r.FallbackAudiences[p]) > 0
}

func signInResponse(s backend.Session) *boardsdk.SignInResponse {
	return &boardsdk.SignInResponse{
		SessionID:   s.SessionID,
		Nickname:    s.Nickname,
		IsNewUser:   s.IsNewUser,
		Message:     s.Message,
		GameProfile: toGameProfile(s.GameProfile),
	}
}

func toGameProfile(gp *backend.GameProfile) *boardsdk.GameProfile {
	if gp == nil {
		return nil
	}
	achievements := gp.Achievements
	if achievements == nil {
		achievements = []string{}
	}
	return &boardsdk.GameProfile{
		Score:        gp.TotalScore,
		Streak:       gp.BestStreak,
		Achievements: achievements,
		PlayCount:    gp.PlayCount,
		LastPlayed:   gp.LastPlayed,
	}
}

func gameProfileFor(p backend.Profile, gameID string) *boardsdk.GameProfile {
	gp, ok := p.GameProfiles[gameID]
	if !ok {
		return nil
	}
	return toGameProfile(&gp)
}

// defaultNickname derives "Player_XXXX" from the tail of a device id.
func defaultNickname(deviceID string) string {
	tail := []rune(deviceID)
	if len(tail) > 4 {
		tail = tail[len(tail)-4:]
	}
	return fmt.Sprintf("Player_%s", strings.ToUpper(string(tail)))
}

func localPart(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
