package domain

import "time"

// AccountType classifies how the creator account is registered on the
// social platform.
type AccountType string

const (
	AccountPersonal AccountType = "personal"
	AccountCreator  AccountType = "creator"
	AccountBusiness AccountType = "business"
)

// Profile is the identity of a creator. It is owned by the surrounding
// platform and read-only to the scoring engine.
type Profile struct {
	ID              string
	Username        string
	FullName        string
	FollowerCount   int
	FollowingCount  int
	MediaCount      int
	AccountType     AccountType
	TargetCountry   string   // ISO 3166-1 alpha-2, may be empty
	TargetLanguages []string // BCP-47 tags, may be empty
	CreatedAt       time.Time
}
