package domain

import "time"

// GrowthSnapshot records the follower count for one profile on one day.
// Collected daily, independent of the analysis Snapshot.
type GrowthSnapshot struct {
	ProfileID     string
	Day           time.Time
	FollowerCount int
}
