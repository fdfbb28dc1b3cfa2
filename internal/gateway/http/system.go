package http

import (
	"context"
	"net/http"
	"time"

	"github.com/aussiebroadwan/boardgate/pkg/boardsdk"
	"github.com/aussiebroadwan/boardgate/pkg/httpx"
)

// handleStatus godoc
//
//	@Summary		Gateway status
//	@Description	When an API key is presented it is authenticated (and charged) and the response names its game and tier.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	httpx.Envelope{data=boardsdk.StatusResponse}
//	@Failure		401	{object}	httpx.Envelope	"Invalid API key"
//	@Router			/health [get].
func (r *Router) handleStatus(_ context.Context, c *Call) (any, error) {
	if c.Key == nil {
		return boardsdk.StatusResponse{Status: "healthy", Version: APIVersion, Auth: "none"}, nil
	}
	return boardsdk.StatusResponse{
		Status:  "healthy",
		Version: APIVersion,
		GameID:  c.Key.GameID,
		Tier:    string(c.Key.Tier),
		Auth:    "api_key",
	}, nil
}

// handleDocs godoc
//
//	@Summary		Endpoint catalogue
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	httpx.Envelope
//	@Router			/docs [get].
func (r *Router) handleDocs(_ context.Context, _ *Call) (any, error) {
	return catalogue, nil
}

type docs struct {
	Version        string                       `json:"version"`
	Description    string                       `json:"description"`
	Authentication docsAuth                     `json:"authentication"`
	Endpoints      map[string]map[string]string `json:"endpoints"`
	Examples       map[string]string            `json:"examples"`
}

type docsAuth struct {
	Note    string            `json:"note"`
	Methods map[string]string `json:"methods"`
}

var catalogue = docs{
	Version:     APIVersion,
	Description: "Game gateway: provider sign-in, sessions, scores, achievements, scoreboards and archives",
	Authentication: docsAuth{
		Note: "Three auth methods available",
		Methods: map[string]string{
			"session": "Use X-Session-Token header after OAuth login",
			"apiKey":  "Use X-API-Key header for server-to-server",
			"gameId":  "Use X-Game-ID header to specify game context",
		},
	},
	Endpoints: map[string]map[string]string{
		"auth": {
			"POST /auth/google":        "Sign in with Google",
			"POST /auth/apple":         "Sign in with Apple",
			"POST /auth/anonymous":     "Create anonymous player",
			"POST /auth/verify":        "Verify a provider token and open a session",
			"GET /auth/session":        "Validate session",
			"POST /auth/logout":        "Destroy session",
			"GET /auth/profile":        "Get user profile",
			"GET /auth/config/:gameId": "Check available auth methods",
		},
		"playSessions": {
			"POST /play-sessions/start":        "Start a play session (for time validation)",
			"GET /play-sessions/:token/status": "Check play session status",
		},
		"scoreboards": {
			"GET /games/:gameId/scoreboards":            "List all scoreboards",
			"GET /games/:gameId/scoreboards/:id":        "Get scoreboard entries",
			"GET /games/:gameId/scoreboards/:id/rank":   "Get player rank (session)",
			"POST /games/:gameId/scoreboards":           "Create scoreboard (dev)",
			"POST /games/:gameId/scoreboards/:id/reset": "Reset scoreboard (dev)",
			"DELETE /games/:gameId/scoreboards/:id":     "Delete scoreboard (dev)",
		},
		"archives": {
			"GET /games/:gameId/scoreboards/:id/archives":        "List all archives",
			"GET /games/:gameId/scoreboards/:id/archives/latest": "Get last week's/month's results",
			"GET /archives/:archiveId":                           "Get specific archive",
			"GET /games/:gameId/archives/stats":                  "Get archive stats",
		},
		"gameplay": {
			"POST /scores":          "Submit score (include playSessionToken for time validation)",
			"POST /achievements":    "Unlock achievement",
			"PUT /profile/nickname": "Change nickname",
			"GET /leaderboard":      "Get legacy leaderboard",
			"GET /game":             "Get game details",
		},
		"apiKey": {
			"POST /play-sessions/start":            "Start play session {playerId, gameId}",
			"POST /scores":                         "Submit score (external)",
			"POST /achievements":                   "Unlock achievement {playerId, achievementId | achievementIds}",
			"PUT /players/:id/nickname":            "Change nickname",
			"GET /players/:id/profile":             "Get player profile",
			"GET /scoreboards":                     "List scoreboards",
			"GET /scoreboards/:id":                 "Get scoreboard entries",
			"GET /scoreboards/:id/archives":        "List archives",
			"GET /scoreboards/:id/archives/latest": "Get last archive",
			"GET /archives/stats":                  "Get archive stats",
		},
		"credentials": {
			"POST /games/:gameId/oauth/google":   "Register Google client IDs (session)",
			"POST /games/:gameId/oauth/apple":    "Register Apple bundle ID (session)",
			"GET /games/:gameId/oauth":           "Get credential settings (session)",
			"DELETE /games/:gameId/oauth/google": "Remove Google credentials (session)",
			"DELETE /games/:gameId/oauth/apple":  "Remove Apple credentials (session)",
		},
	},
	Examples: map[string]string{
		"startSession":      "POST /play-sessions/start {playerId: 'dev_123', gameId: 'my-game'}",
		"submitWithSession": "POST /scores {playerId: 'dev_123', score: 1000, playSessionToken: 'ps_...'}",
		"getWeekly":         "GET /games/my-game/scoreboards/weekly?limit=10",
		"getLastWeek":       "GET /games/my-game/scoreboards/weekly/archives/latest",
		"listArchives":      "GET /games/my-game/scoreboards/weekly/archives",
	},
}

// LivezHandler godoc
//
//	@Summary		Health Check Endpoint
//	@Description	Liveness probe endpoint returning basic service health status, uptime, and version information
//	@Description	This endpoint always returns 200 OK if the service is running
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	boardsdk.HealthResponse	"status, uptime, version"
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := boardsdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		}
		httpx.WriteJSON(w, http.StatusOK, response)
	}
}

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe endpoint returning service health status and whether a backend handle is available
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	boardsdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	boardsdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, ready func() bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &boardsdk.HealthChecks{Backend: "ok"}
		overallStatus := "ok"
		statusCode := http.StatusOK

		if !ready() {
			checks.Backend = "error: no backend handle"
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		response := boardsdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		}
		httpx.WriteJSON(w, statusCode, response)
	}
}
