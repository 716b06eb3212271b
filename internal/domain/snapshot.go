package domain

import "time"

// Slice is one segment of a demographic breakdown, e.g. {"25-34", 41.5}.
type Slice struct {
	Label string  `json:"label"`
	Pct   float64 `json:"pct"`
}

// Demographics holds the audience breakdowns attached to a snapshot. All
// fields are optional: they are only populated when the profile has a linked
// business-page integration.
type Demographics struct {
	Age     []Slice `json:"age,omitempty"`
	Gender  []Slice `json:"gender,omitempty"`
	Country []Slice `json:"country,omitempty"`
	City    []Slice `json:"city,omitempty"`
}

// AIInsights caches the AI judgments computed for one snapshot. The fields
// are populated together exactly once, immediately after snapshot creation,
// and GeneratedAt marks that moment. A nil AIInsights means the snapshot was
// never analyzed.
type AIInsights struct {
	GeneratedAt       time.Time          `json:"generated_at"`
	TrendScore        float64            `json:"trend_score"`  // 1..10
	PrimaryNiche      string             `json:"primary_niche"`
	SecondaryNiches   []string           `json:"secondary_niches,omitempty"`
	HashtagRating     string             `json:"hashtag_rating"` // outperforming|effective|medium|need_improvement
	CaptionLanguages  map[string]float64 `json:"caption_languages,omitempty"` // BCP-47 tag -> share of captions, percent
	FacePct           float64            `json:"face_pct"`      // share of sampled posts with a detectable face
	VisualLighting    float64            `json:"visual_lighting"`   // 1..10
	VisualEditing     float64            `json:"visual_editing"`    // 1..10
	VisualAesthetics  float64            `json:"visual_aesthetics"` // 1..10
	ColorMoodScore    float64            `json:"color_mood_score"`  // 1..20
	SentimentScore    float64            `json:"sentiment_score"`   // -100..100
	CTARating         string             `json:"cta_rating"` // good|medium|less
	MonetisationScore float64            `json:"monetisation_score"` // 1..50
	PayoutPerView     float64            `json:"payout_per_view"`    // estimated IDR per view
	AudienceSentiment float64            `json:"audience_sentiment"` // 1..20
	GrowthFeedback    string             `json:"growth_feedback,omitempty"`
	PostingFeedback   string             `json:"posting_feedback,omitempty"`
}

// Snapshot is an immutable periodic capture of a profile's aggregate
// analytics, one per sync cycle. AuthenticityPct is nil when the platform
// API cannot report follower authenticity for the account.
type Snapshot struct {
	ID                string
	ProfileID         string
	TakenAt           time.Time
	FollowerCount     int
	FollowingCount    int
	MediaCount        int
	AvgEngagementRate float64 // percent
	AuthenticityPct   *float64
	PostsAnalyzed     int
	Demographics      Demographics
	AI                *AIInsights
}

// HasDemographics reports whether the snapshot carries age and gender
// breakdowns, which only arrive through a linked business page.
func (s *Snapshot) HasDemographics() bool {
	return s != nil && len(s.Demographics.Age) > 0 && len(s.Demographics.Gender) > 0
}

// PageConnected reports whether the demographic data density indicates a
// linked business-page integration. Used as an explanation hint only.
func (s *Snapshot) PageConnected() bool {
	return s != nil && (len(s.Demographics.Country) > 0 || len(s.Demographics.City) > 0 || s.HasDemographics())
}
