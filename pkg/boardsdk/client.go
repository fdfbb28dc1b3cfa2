package boardsdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// SDKClient is a client for the Boardgate game gateway.
// It provides access to public operations and can create authenticated
// player Sessions and API key scoped KeyClients.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client

	// GameID is sent as X-Game-ID on every request when set.
	GameID string
}

// NewSDKClient creates a new gateway client for gameID.
func NewSDKClient(baseURL, gameID string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		GameID: gameID,
	}
}

// SignInWithGoogle exchanges a Google ID token for a player session.
func (c *SDKClient) SignInWithGoogle(ctx context.Context, req GoogleSignInRequest) (*Session, *SignInResponse, error) {
	return c.signIn(ctx, "/auth/google", req)
}

// SignInWithApple exchanges an Apple identity token for a player session.
func (c *SDKClient) SignInWithApple(ctx context.Context, req AppleSignInRequest) (*Session, *SignInResponse, error) {
	return c.signIn(ctx, "/auth/apple", req)
}

// SignInAnonymously opens a session for a device without a provider account.
func (c *SDKClient) SignInAnonymously(ctx context.Context, req AnonymousSignInRequest) (*Session, *SignInResponse, error) {
	return c.signIn(ctx, "/auth/anonymous", req)
}

func (c *SDKClient) signIn(ctx context.Context, path string, req any) (*Session, *SignInResponse, error) {
	resp, err := call[SignInResponse](ctx, c, http.MethodPost, path, req, nil)
	if err != nil {
		return nil, nil, err
	}
	return c.NewSession(resp.SessionID), resp, nil
}

// NewSession wraps an existing session token, e.g. one restored from storage.
func (c *SDKClient) NewSession(token string) *Session {
	return &Session{client: c, token: token}
}

// WithAPIKey returns a client for server-to-server calls authenticated by key.
func (c *SDKClient) WithAPIKey(key string) *KeyClient {
	return &KeyClient{client: c, key: key}
}
