package backend

import "github.com/aussiebroadwan/boardgate/internal/gateway/domain"

// IdentityMode tells the backend how to interpret an Actor id.
type IdentityMode string

const (
	// ModeSession identifies the caller by session token.
	ModeSession IdentityMode = "session"
	// ModeExternal identifies a developer-managed player id under an API key.
	ModeExternal IdentityMode = "external"
)

// Actor is the player a gameplay call acts on behalf of.
type Actor struct {
	Mode IdentityMode `json:"mode"`
	ID   string       `json:"id"`
}

// SortBy orders leaderboards and scoreboards.
type SortBy string

const (
	SortScore  SortBy = "score"
	SortStreak SortBy = "streak"
)

// Periods accepted for scoreboards.
var Periods = []string{"allTime", "daily", "weekly", "monthly", "custom"}

// SortOrders accepted for scoreboards.
var SortOrders = []string{string(SortScore), string(SortStreak)}

type GameProfile struct {
	TotalScore   int64    `json:"totalScore"`
	BestStreak   int64    `json:"bestStreak"`
	Achievements []string `json:"achievements"`
	PlayCount    int64    `json:"playCount"`
	LastPlayed   int64    `json:"lastPlayed,omitempty"`
}

// Session is a freshly created or resumed player session.
type Session struct {
	SessionID   string       `json:"sessionId"`
	Email       string       `json:"email,omitempty"`
	Nickname    string       `json:"nickname"`
	AuthType    string       `json:"authType,omitempty"`
	IsNewUser   bool         `json:"isNewUser"`
	Message     string       `json:"message,omitempty"`
	Created     int64        `json:"created,omitempty"`
	Expires     int64        `json:"expires,omitempty"`
	GameProfile *GameProfile `json:"gameProfile,omitempty"`
}

// VerifiedSessionRequest asks the backend to open a session for an identity
// the gateway has verified.
type VerifiedSessionRequest struct {
	Provider domain.Provider `json:"provider"`
	Subject  string          `json:"subject"`
	Email    string          `json:"email,omitempty"`
	Nonce    string          `json:"nonce"`
	Nickname string          `json:"nickname,omitempty"`
	GameID   string          `json:"gameId,omitempty"`
}

type AnonymousSessionRequest struct {
	DeviceID string `json:"deviceId"`
	Nickname string `json:"nickname"`
	GameID   string `json:"gameId"`
}

// SessionInfo is what validateSession reveals about a session.
type SessionInfo struct {
	Email    string `json:"email"`
	Nickname string `json:"nickname"`
}

type Profile struct {
	Nickname     string                 `json:"nickname"`
	AuthType     string                 `json:"authType"`
	Created      int64                  `json:"created"`
	LastUpdated  int64                  `json:"lastUpdated"`
	GameProfiles map[string]GameProfile `json:"gameProfiles"`
}

// CredentialSettings is the owner's view of a game's provider credentials.
type CredentialSettings struct {
	PrimaryConfigured   bool     `json:"primaryConfigured"`
	PrimaryClientIDs    []string `json:"primaryClientIds"`
	SecondaryConfigured bool     `json:"secondaryConfigured"`
	SecondaryBundleID   string   `json:"secondaryBundleId,omitempty"`
	SecondaryTeamID     string   `json:"secondaryTeamId,omitempty"`
}

type ScoreSubmission struct {
	Actor            Actor  `json:"actor"`
	GameID           string `json:"gameId"`
	Score            int64  `json:"score"`
	Streak           int64  `json:"streak"`
	Rounds           *int64 `json:"rounds,omitempty"`
	Nickname         string `json:"nickname,omitempty"`
	PlaySessionToken string `json:"playSessionToken,omitempty"`
}

type NicknameChange struct {
	Message     string       `json:"message"`
	Nickname    string       `json:"nickname"`
	GameProfile *GameProfile `json:"gameProfile,omitempty"`
}

type LeaderboardEntry struct {
	Nickname string `json:"nickname"`
	Score    int64  `json:"score"`
	Streak   int64  `json:"streak"`
	AuthType string `json:"authType"`
}

type Game struct {
	GameID                string `json:"gameId"`
	Name                  string `json:"name"`
	Description           string `json:"description"`
	TotalPlayers          int64  `json:"totalPlayers"`
	TotalPlays            int64  `json:"totalPlays"`
	IsActive              bool   `json:"isActive"`
	TimeValidationEnabled bool   `json:"timeValidationEnabled"`
}

type ScoreboardSummary struct {
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

type ScoreboardView struct {
	Config  ScoreboardConfig `json:"config"`
	Entries []RankedEntry    `json:"entries"`
}

// ScoreboardSpec describes a scoreboard to create.
type ScoreboardSpec struct {
	ScoreboardID string `json:"scoreboardId"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Period       string `json:"period"`
	SortBy       string `json:"sortBy"`
	MaxEntries   *int64 `json:"maxEntries,omitempty"`
}

// TimeRange bounds an archive listing, both ends in backend time units.
type TimeRange struct {
	After  int64 `json:"after"`
	Before int64 `json:"before"`
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

type ArchiveConfig struct {
	Name        string `json:"name"`
	Period      string `json:"period"`
	SortBy      string `json:"sortBy"`
	PeriodStart int64  `json:"periodStart"`
	PeriodEnd   int64  `json:"periodEnd"`
}

type ArchiveView struct {
	ArchiveID string        `json:"archiveId"`
	Config    ArchiveConfig `json:"config"`
	Entries   []RankedEntry `json:"entries"`
}

type ArchiveStats struct {
	TotalArchives int64                    `json:"totalArchives"`
	ByScoreboard  []ScoreboardArchiveCount `json:"byScoreboard"`
}

type ScoreboardArchiveCount struct {
	ScoreboardID string `json:"scoreboardId"`
	Count        int64  `json:"count"`
}

type PlaySessionStatus struct {
	IsValid          bool   `json:"isValid"`
	GameID           string `json:"gameId"`
	StartedAt        int64  `json:"startedAt"`
	ExpiresAt        int64  `json:"expiresAt"`
	RemainingSeconds int64  `json:"remainingSeconds"`
}
