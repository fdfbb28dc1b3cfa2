package boardsdk

import (
	"context"
	"net/http"
)

// GetLiveness checks if the gateway process is alive.
func (c *SDKClient) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	return c.probe(ctx, "/livez")
}

// GetReadiness checks if the gateway can serve traffic, i.e. its backend
// handle is up. A degraded gateway answers 503 and yields an *APIError.
func (c *SDKClient) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	return c.probe(ctx, "/readyz")
}

func (c *SDKClient) probe(ctx context.Context, path string) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return nil, err
	}

	return &health, nil
}

// GetStatus returns the gateway status. Without a key it reports the
// public view.
func (c *SDKClient) GetStatus(ctx context.Context) (*StatusResponse, error) {
	return call[StatusResponse](ctx, c, http.MethodGet, "/health", nil, nil)
}

// GetAuthConfig reports which sign-in providers gameID has enabled.
func (c *SDKClient) GetAuthConfig(ctx context.Context, gameID string) (*AuthConfigResponse, error) {
	return call[AuthConfigResponse](ctx, c, http.MethodGet, "/auth/config/"+escape(gameID), nil, nil)
}

// GetPlaySessionStatus reports whether a play session token is still valid.
func (c *SDKClient) GetPlaySessionStatus(ctx context.Context, token string) (*PlaySessionStatusResponse, error) {
	return call[PlaySessionStatusResponse](ctx, c, http.MethodGet, "/play-sessions/"+escape(token)+"/status", nil, nil)
}
