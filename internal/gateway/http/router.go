package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/boardgate/internal/gateway/backend"
	"github.com/aussiebroadwan/boardgate/internal/gateway/domain"
	"github.com/aussiebroadwan/boardgate/internal/gateway/identity"
	"github.com/aussiebroadwan/boardgate/internal/gateway/metrics"
	"github.com/aussiebroadwan/boardgate/internal/gateway/service"
	"github.com/aussiebroadwan/boardgate/pkg/httpx"
	"github.com/aussiebroadwan/boardgate/pkg/slogx"

	_ "github.com/aussiebroadwan/boardgate/api/gateway" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// APIVersion is advertised on every response and by the status routes.
const APIVersion = "1.5.2"

// AllowedHeaders are the request headers clients may send cross-origin.
var AllowedHeaders = []string{"Content-Type", "X-API-Key", "X-Game-ID", "X-Session-Token", "Authorization"}

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	backends     backend.Source
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	Verifier          *identity.Verifier
	APIKeyService     *service.APIKeyService
	CredentialService *service.CredentialService

	// FallbackAudiences are the deployment-wide provider audiences, used to
	// report whether a sign-in method is enabled for games without their own.
	FallbackAudiences map[domain.Provider][]string
	// Ready reports whether a backend handle is available for /readyz.
	Ready func() bool
}

func NewRouter(
	backends backend.Source,
	buildVersion string,
	cors httpx.CORSConfig,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		backends:     backends,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		logger:       logger,
		Ready:        func() bool { return true },
	}

	if len(cors.AllowedMethods) == 0 {
		cors.AllowedMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	}
	if len(cors.AllowedHeaders) == 0 {
		cors.AllowedHeaders = AllowedHeaders
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.Recover(),
		httpx.CORS(cors),
		httpx.Headers(map[string]string{"X-API-Version": APIVersion}),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerCredentials()
	r.registerPlaySessions()
	r.registerScoreboards()
	r.registerArchives()
	r.registerGameplay()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
	r.Mux.Handle("GET /metrics", metrics.Handler())
	r.Mux.Handle("/", r.route(ModePublic, r.handleUnknown))
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Boardgate Game Gateway API
//	@version		1.5.2
//	@description	Edge gateway in front of the game backend: provider sign-in, sessions, scores, achievements, scoreboards and archives.
//	@description
//	@description				Every response is wrapped in an envelope: {"ok":true,"data":...} or {"ok":false,"error":"..."}.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/boardgate
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	APIKey
//	@in							header
//	@name						X-API-Key
//	@description				Server-to-server API key. Takes precedence over a session token.
//
//	@securityDefinitions.apikey	SessionToken
//	@in							header
//	@name						X-Session-Token
//	@description				Session id returned by a sign-in route. "Authorization: Bearer {session}" is also accepted.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	// Sign-in attempts - strict rate limit by IP and game, shared by all
	// sign-in routes
	signInLimit := httpx.RateLimitByIPAndHeader(httpx.AuthLimit, "X-Game-ID")
	signIn := func(h HandlerFunc) http.Handler {
		return httpx.Chain(r.route(ModePublic, h), signInLimit)
	}
	r.Mux.Handle("POST /auth/google", signIn(r.handleGoogleSignIn))
	r.Mux.Handle("POST /auth/apple", signIn(r.handleAppleSignIn))
	r.Mux.Handle("POST /auth/anonymous", signIn(r.handleAnonymousSignIn))
	r.Mux.Handle("POST /auth/verify", signIn(r.handleVerify))

	// Session routes enforce their own token so each can word its 4xx
	r.Mux.Handle("GET /auth/session", r.route(ModeSessionOptional, r.handleValidateSession))
	r.Mux.Handle("POST /auth/logout", r.route(ModeSessionOptional, r.handleLogout))
	r.Mux.Handle("GET /auth/profile", r.route(ModeSessionOptional, r.handleProfile))

	authConfig := httpx.Chain(r.route(ModePublic, r.handleAuthConfig), httpx.RateLimitByIP(httpx.PublicLimit))
	r.Mux.Handle("GET /auth/config", authConfig)
	r.Mux.Handle("GET /auth/config/{gameId}", authConfig)
}

func (r *Router) registerCredentials() {
	r.Mux.Handle("POST /games/{gameId}/oauth/google",
		r.route(ModeSession, r.handleSetGoogleCredentials, withSessionMessage("Session required. Login first.")))
	r.Mux.Handle("POST /games/{gameId}/oauth/apple",
		r.route(ModeSession, r.handleSetAppleCredentials, withSessionMessage("Session required. Login first.")))
	r.Mux.Handle("GET /games/{gameId}/oauth",
		r.route(ModeSession, r.handleCredentialSettings, withSessionMessage("Session required")))
	r.Mux.Handle("DELETE /games/{gameId}/oauth/google",
		r.route(ModeSession, r.handleClearCredentials(domain.ProviderPrimary), withSessionMessage("Session required")))
	r.Mux.Handle("DELETE /games/{gameId}/oauth/apple",
		r.route(ModeSession, r.handleClearCredentials(domain.ProviderSecondary), withSessionMessage("Session required")))
}

func (r *Router) registerPlaySessions() {
	r.Mux.Handle("POST /play-sessions/start",
		r.route(ModeGameplay, r.handleStartPlaySession, withGameRequired("Missing game ID")))
	r.Mux.Handle("GET /play-sessions/{token}/status",
		httpx.Chain(r.route(ModePublic, r.handlePlaySessionStatus), httpx.RateLimitByIP(httpx.PublicLimit)))
}

func (r *Router) registerScoreboards() {
	public := func(h HandlerFunc) http.Handler {
		return httpx.Chain(r.route(ModePublic, h), httpx.RateLimitByIP(httpx.PublicLimit))
	}
	r.Mux.Handle("GET /games/{gameId}/scoreboards", public(r.handleListScoreboards))
	r.Mux.Handle("GET /games/{gameId}/scoreboards/{scoreboardId}", public(r.handleGetScoreboard))
	r.Mux.Handle("GET /games/{gameId}/scoreboards/{scoreboardId}/rank",
		r.route(ModeSession, r.handlePlayerRank, withSessionMessage("Session required to get player rank")))

	// Scoreboard administration - the backend checks the session owns the game
	r.Mux.Handle("POST /games/{gameId}/scoreboards", r.route(ModeSession, r.handleCreateScoreboard))
	r.Mux.Handle("POST /games/{gameId}/scoreboards/{scoreboardId}/reset", r.route(ModeSession, r.handleResetScoreboard))
	r.Mux.Handle("DELETE /games/{gameId}/scoreboards/{scoreboardId}", r.route(ModeSession, r.handleDeleteScoreboard))

	// API key scoped: the key's game is implied
	r.Mux.Handle("GET /scoreboards", r.route(ModeAPIKey, r.handleListScoreboards))
	r.Mux.Handle("GET /scoreboards/{scoreboardId}", r.route(ModeAPIKey, r.handleGetScoreboard))
}

func (r *Router) registerArchives() {
	public := func(h HandlerFunc) http.Handler {
		return httpx.Chain(r.route(ModePublic, h), httpx.RateLimitByIP(httpx.PublicLimit))
	}
	r.Mux.Handle("GET /games/{gameId}/scoreboards/{scoreboardId}/archives", public(r.handleListArchives))
	r.Mux.Handle("GET /games/{gameId}/scoreboards/{scoreboardId}/archives/latest", public(r.handleLatestArchive))
	r.Mux.Handle("GET /games/{gameId}/archives/stats", public(r.handleArchiveStats))
	// Archive ids may contain slashes
	r.Mux.Handle("GET /archives/{archiveId...}", public(r.handleGetArchive))

	r.Mux.Handle("GET /scoreboards/{scoreboardId}/archives", r.route(ModeAPIKey, r.handleListArchives))
	r.Mux.Handle("GET /scoreboards/{scoreboardId}/archives/latest", r.route(ModeAPIKey, r.handleLatestArchive))
	r.Mux.Handle("GET /archives/stats", r.route(ModeAPIKey, r.handleArchiveStats))
}

func (r *Router) registerGameplay() {
	const missingGame = "Missing X-Game-ID header or gameId in body"

	r.Mux.Handle("POST /scores", r.route(ModeGameplay, r.handleSubmitScore, withGameRequired(missingGame)))
	r.Mux.Handle("POST /achievements", r.route(ModeGameplay, r.handleUnlockAchievements, withGameRequired(missingGame)))
	r.Mux.Handle("GET /leaderboard", r.route(ModeGameplay, r.handleLeaderboard, withGameRequired(missingGame)))
	r.Mux.Handle("GET /game", r.route(ModeGameplay, r.handleGame, withGameRequired(missingGame)))
	r.Mux.Handle("PUT /profile/nickname", r.route(ModeSession, r.handleChangeNickname, withGameRequired(missingGame)))

	r.Mux.Handle("PUT /players/{playerId}/nickname", r.route(ModeAPIKey, r.handleChangeNickname))
	r.Mux.Handle("GET /players/{playerId}/profile", r.route(ModeAPIKey, r.handlePlayerProfile))
}

func (r *Router) registerSystem() {
	status := r.route(ModeOptionalKey, r.handleStatus)
	r.Mux.Handle("GET /{$}", status)
	r.Mux.Handle("GET /health", status)
	r.Mux.Handle("GET /docs", httpx.Chain(r.route(ModePublic, r.handleDocs), httpx.RateLimitByIP(httpx.PublicLimit)))

	// Probes sit outside the envelope
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, func() bool { return r.Ready() }))
}
