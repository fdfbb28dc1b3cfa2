package boardsdk

// ============================================================================
// Envelope
// ============================================================================

// Envelope is the body of every gateway API response.
type Envelope[T any] struct {
	OK    bool   `json:"ok"`
	Data  T      `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

// ============================================================================
// Health
// ============================================================================

// HealthResponse is returned by the liveness and readiness probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports per-dependency readiness.
type HealthChecks struct {
	Backend string `json:"backend"`
}

// StatusResponse is the envelope payload of GET / and GET /health.
type StatusResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	GameID  string `json:"gameId,omitempty"`
	Tier    string `json:"tier,omitempty"`
	Auth    string `json:"auth"`
}

// ============================================================================
// Sign-in and sessions
// ============================================================================

type GoogleSignInRequest struct {
	IDToken  string `json:"idToken"`
	Nonce    string `json:"nonce,omitempty"`
	Nickname string `json:"nickname,omitempty"`
	GameID   string `json:"gameId,omitempty"`
}

type AppleSignInRequest struct {
	IdentityToken string     `json:"identityToken"`
	Nonce         string     `json:"nonce,omitempty"`
	Nickname      string     `json:"nickname,omitempty"`
	GameID        string     `json:"gameId,omitempty"`
	User          *AppleUser `json:"user,omitempty"`
}

// AppleUser is the one-time user payload Apple hands the client on first
// sign-in. Only the name is used; the email is taken from the token.
type AppleUser struct {
	Email string         `json:"email,omitempty"`
	Name  *AppleUserName `json:"name,omitempty"`
}

type AppleUserName struct {
	FirstName string `json:"firstName,omitempty"`
	GivenName string `json:"givenName,omitempty"`
}

type AnonymousSignInRequest struct {
	DeviceID string `json:"deviceId,omitempty"`
	Nickname string `json:"nickname,omitempty"`
	GameID   string `json:"gameId,omitempty"`
}

// VerifyRequest presents a raw provider token for verification.
type VerifyRequest struct {
	Provider string `json:"provider"`
	IDToken  string `json:"id_token"`
	Nonce    string `json:"nonce,omitempty"`
}

// GameProfile is a player's standing in one game.
type GameProfile struct {
	Score        int64    `json:"score"`
	Streak       int64    `json:"streak"`
	Achievements []string `json:"achievements"`
	PlayCount    int64    `json:"playCount"`
	LastPlayed   int64    `json:"lastPlayed,omitempty"`
}

// SignInResponse is returned by every sign-in route. GameProfile is null for
// a player new to the game.
type SignInResponse struct {
	SessionID   string       `json:"sessionId"`
	PlayerID    string       `json:"playerId,omitempty"`
	Nickname    string       `json:"nickname"`
	IsNewUser   bool         `json:"isNewUser"`
	Message     string       `json:"message"`
	Email       string       `json:"email,omitempty"`
	GameProfile *GameProfile `json:"gameProfile"`
}

type VerifyResponse struct {
	SessionID string `json:"sessionId"`
	Email     string `json:"email"`
	Nickname  string `json:"nickname"`
	AuthType  string `json:"authType"`
	Created   int64  `json:"created"`
	Expires   int64  `json:"expires"`
}

type SessionResponse struct {
	Valid    bool   `json:"valid"`
	Email    string `json:"email"`
	Nickname string `json:"nickname"`
}

// MessageResponse carries a bare backend confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}

type ProfileResponse struct {
	Nickname    string       `json:"nickname"`
	AuthType    string       `json:"authType"`
	Created     int64        `json:"created"`
	LastUpdated int64        `json:"lastUpdated"`
	GameProfile *GameProfile `json:"gameProfile"`
	TotalGames  int          `json:"totalGames"`
}

type PlayerProfileResponse struct {
	Nickname    string       `json:"nickname"`
	Created     int64        `json:"created"`
	GameProfile *GameProfile `json:"gameProfile"`
}

// AuthConfigResponse tells a client which sign-in buttons to show.
type AuthConfigResponse struct {
	GameID string           `json:"gameId"`
	Google GoogleAuthConfig `json:"google"`
	Apple  AppleAuthConfig  `json:"apple"`
}

type GoogleAuthConfig struct {
	Enabled       bool `json:"enabled"`
	ClientIDCount int  `json:"clientIdCount"`
}

type AppleAuthConfig struct {
	Enabled bool `json:"enabled"`
	// BundleID is "[configured]" when the game registered one, else null.
	BundleID *string `json:"bundleId"`
}

// ============================================================================
// Play sessions
// ============================================================================

type PlaySessionStartRequest struct {
	PlayerID string `json:"playerId,omitempty"`
	GameID   string `json:"gameId,omitempty"`
}

type PlaySessionResponse struct {
	PlaySessionToken string `json:"playSessionToken"`
	Message          string `json:"message"`
}

type PlaySessionStatusResponse struct {
	IsValid          bool   `json:"isValid"`
	GameID           string `json:"gameId"`
	StartedAt        int64  `json:"startedAt"`
	ExpiresAt        int64  `json:"expiresAt"`
	RemainingSeconds int64  `json:"remainingSeconds"`
}

// ============================================================================
// Gameplay
// ============================================================================

// ScoreRequest submits a score. PlayerID is required under an API key and
// ignored under a session.
type ScoreRequest struct {
	PlayerID         string   `json:"playerId,omitempty"`
	Score            *float64 `json:"score"`
	Streak           float64  `json:"streak,omitempty"`
	Rounds           *float64 `json:"rounds,omitempty"`
	Nickname         string   `json:"nickname,omitempty"`
	PlaySessionToken string   `json:"playSessionToken,omitempty"`
}

type AchievementRequest struct {
	PlayerID       string   `json:"playerId,omitempty"`
	AchievementID  string   `json:"achievementId,omitempty"`
	AchievementIDs []string `json:"achievementIds,omitempty"`
}

type AchievementResult struct {
	AchievementID string `json:"achievementId"`
	Success       bool   `json:"success"`
	Message       string `json:"message,omitempty"`
	Error         string `json:"error,omitempty"`
}

// AchievementsResponse is returned for batch unlocks. Partial failure is
// still a 200; inspect Results.
type AchievementsResponse struct {
	Message  string              `json:"message"`
	Unlocked int                 `json:"unlocked"`
	Total    int                 `json:"total"`
	Results  []AchievementResult `json:"results"`
}

type NicknameRequest struct {
	Nickname string `json:"nickname"`
}

type ScoreSummary struct {
	Score  int64 `json:"score"`
	Streak int64 `json:"streak"`
}

type NicknameResponse struct {
	Message     string        `json:"message"`
	Nickname    string        `json:"nickname"`
	GameProfile *ScoreSummary `json:"gameProfile"`
}

type LeaderboardEntry struct {
	Rank     int    `json:"rank"`
	Nickname string `json:"nickname"`
	Score    int64  `json:"score"`
	Streak   int64  `json:"streak"`
	AuthType string `json:"authType"`
}

type LeaderboardResponse struct {
	Leaderboard []LeaderboardEntry `json:"leaderboard"`
	Total       int                `json:"total"`
}

type GameResponse struct {
	GameID                string          `json:"gameId"`
	Name                  string          `json:"name"`
	Description           string          `json:"description"`
	TotalPlayers          int64           `json:"totalPlayers"`
	TotalPlays            int64           `json:"totalPlays"`
	IsActive              bool            `json:"isActive"`
	TimeValidationEnabled bool            `json:"timeValidationEnabled"`
	NativeAuth            NativeAuth      `json:"nativeAuth"`
	Scoreboards           []ScoreboardRef `json:"scoreboards"`
}

type NativeAuth struct {
	GoogleEnabled bool `json:"googleEnabled"`
	AppleEnabled  bool `json:"appleEnabled"`
}

type ScoreboardRef struct {
	ScoreboardID string `json:"scoreboardId"`
	Name         string `json:"name"`
	Period       string `json:"period"`
}

// ============================================================================
// Scoreboards and archives
// ============================================================================

type Scoreboard struct {
	ScoreboardID string `json:"scoreboardId"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Period       string `json:"period"`
	SortBy       string `json:"sortBy"`
	MaxEntries   int64  `json:"maxEntries"`
	EntryCount   int64  `json:"entryCount"`
	LastReset    int64  `json:"lastReset"`
	IsActive     bool   `json:"isActive"`
}

type ScoreboardListResponse struct {
	GameID      string       `json:"gameId"`
	Scoreboards []Scoreboard `json:"scoreboards"`
}

type ScoreboardConfig struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Period      string `json:"period"`
	SortBy      string `json:"sortBy"`
	LastReset   int64  `json:"lastReset"`
}

type RankedEntry struct {
	Rank        int64  `json:"rank"`
	Nickname    string `json:"nickname"`
	Score       int64  `json:"score"`
	Streak      int64  `json:"streak"`
	AuthType    string `json:"authType"`
	SubmittedAt int64  `json:"submittedAt"`
}

type ScoreboardResponse struct {
	ScoreboardID string           `json:"scoreboardId"`
	Config       ScoreboardConfig `json:"config"`
	Entries      []RankedEntry    `json:"entries"`
	TotalEntries int              `json:"totalEntries"`
}

// RankResponse locates the session's player on a scoreboard.
type RankResponse struct {
	Found        bool   `json:"found"`
	Rank         int64  `json:"rank,omitempty"`
	Score        int64  `json:"score,omitempty"`
	Streak       int64  `json:"streak,omitempty"`
	Message      string `json:"message,omitempty"`
	TotalPlayers int    `json:"totalPlayers"`
}

type CreateScoreboardRequest struct {
	ScoreboardID string `json:"scoreboardId"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	Period       string `json:"period,omitempty"`
	SortBy       string `json:"sortBy,omitempty"`
	MaxEntries   *int64 `json:"maxEntries,omitempty"`
	GameID       string `json:"gameId,omitempty"`
}

type ScoreboardCreatedResponse struct {
	Message      string `json:"message"`
	ScoreboardID string `json:"scoreboardId"`
}

type ArchiveSummary struct {
	ArchiveID    string  `json:"archiveId"`
	ScoreboardID string  `json:"scoreboardId"`
	PeriodStart  int64   `json:"periodStart"`
	PeriodEnd    int64   `json:"periodEnd"`
	EntryCount   int64   `json:"entryCount"`
	TopPlayer    *string `json:"topPlayer"`
	TopScore     int64   `json:"topScore"`
}

type ArchiveListResponse struct {
	GameID       string           `json:"gameId"`
	ScoreboardID string           `json:"scoreboardId"`
	Archives     []ArchiveSummary `json:"archives"`
}

type ArchiveConfig struct {
	Name        string `json:"name"`
	Period      string `json:"period"`
	SortBy      string `json:"sortBy"`
	PeriodStart int64  `json:"periodStart"`
	PeriodEnd   int64  `json:"periodEnd"`
}

type ArchiveResponse struct {
	ArchiveID    string        `json:"archiveId"`
	Config       ArchiveConfig `json:"config"`
	Entries      []RankedEntry `json:"entries"`
	TotalEntries int           `json:"totalEntries"`
}

type ArchiveCount struct {
	ScoreboardID string `json:"scoreboardId"`
	Count        int64  `json:"count"`
}

type ArchiveStatsResponse struct {
	GameID        string         `json:"gameId"`
	TotalArchives int64          `json:"totalArchives"`
	ByScoreboard  []ArchiveCount `json:"byScoreboard"`
}

// ============================================================================
// Credential management
// ============================================================================

type GoogleCredentialsRequest struct {
	ClientIDs []string `json:"clientIds"`
}

type GoogleCredentialsResponse struct {
	Message       string `json:"message"`
	ClientIDCount int    `json:"clientIdCount"`
}

type AppleCredentialsRequest struct {
	BundleID string `json:"bundleId"`
	TeamID   string `json:"teamId,omitempty"`
}

type AppleCredentialsResponse struct {
	Message  string `json:"message"`
	BundleID string `json:"bundleId"`
}

type CredentialSettingsResponse struct {
	Google GoogleCredentialSettings `json:"google"`
	Apple  AppleCredentialSettings  `json:"apple"`
}

type GoogleCredentialSettings struct {
	Configured bool     `json:"configured"`
	ClientIDs  []string `json:"clientIds"`
}

type AppleCredentialSettings struct {
	Configured bool    `json:"configured"`
	BundleID   *string `json:"bundleId"`
	TeamID     *string `json:"teamId"`
}
