package domain

import "strings"

// Tier is the service tier of an API key.
type Tier string

const (
	TierEnterprise Tier = "enterprise"
	TierPro        Tier = "pro"
	TierFree       Tier = "free"
	TierDemo       Tier = "demo"
)

// DemoKeyPrefix marks keys that never reach the backend: "demo_<gameId>".
const DemoKeyPrefix = "demo_"

// APIKeyRecord is the backend's view of an API key.
type APIKeyRecord struct {
	Tier   Tier   `json:"tier"`
	GameID string `json:"gameId"`
	Active bool   `json:"isActive"`
}

// DemoGameID returns the game id embedded in a demo key.
func DemoGameID(key string) (string, bool) {
	return strings.CutPrefix(key, DemoKeyPrefix)
}
