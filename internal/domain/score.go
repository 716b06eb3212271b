package domain

import "time"

// Category is one of the six top-level scoring dimensions.
type Category string

const (
	CategoryAudienceQuality    Category = "audience_quality"
	CategoryContentRelevance   Category = "content_relevance"
	CategoryContentQuality     Category = "content_quality"
	CategoryEngagementStrength Category = "engagement_strength"
	CategoryGrowthMomentum     Category = "growth_momentum"
	CategoryMonetisation       Category = "monetisation"
)

// Categories lists the six dimensions in report order.
var Categories = []Category{
	CategoryAudienceQuality,
	CategoryContentRelevance,
	CategoryContentQuality,
	CategoryEngagementStrength,
	CategoryGrowthMomentum,
	CategoryMonetisation,
}

// ParseCategory maps a route segment to a Category.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", ErrUnknownCategory
}

// Detail is the typed explanation payload attached to a metric. Each metric
// has a statically known detail shape; Kind names it.
type Detail interface {
	Kind() string
}

// AuthenticityDetail explains the follower-authenticity metric.
type AuthenticityDetail struct {
	Reported        bool    `json:"reported"`
	AuthenticityPct float64 `json:"authenticity_pct,omitempty"`
}

// StabilityDetail explains the demographics-stability metric.
type StabilityDetail struct {
	SnapshotsUsed int     `json:"snapshots_used"`
	VarianceIndex float64 `json:"variance_index"`
}

// GeoDetail explains the geo-relevance metric. PageConnected is a UI hint
// only and does not influence the score.
type GeoDetail struct {
	TargetCountry string  `json:"target_country"`
	AudiencePct   float64 `json:"audience_pct"`
	PageConnected bool    `json:"facebook_page_connected"`
}

// RatingDetail carries a raw AI rating and its feedback text.
type RatingDetail struct {
	Value    float64 `json:"value"`
	Feedback string  `json:"feedback,omitempty"`
}

// LabelDetail carries a categorical AI rating.
type LabelDetail struct {
	Rating string `json:"rating"`
}

// MixDetail explains the content-mix metric.
type MixDetail struct {
	Posts   int     `json:"posts"`
	ReelPct float64 `json:"reel_pct"`
	Raw     float64 `json:"raw"`
}

// PercentDetail carries a single percentage input.
type PercentDetail struct {
	Pct float64 `json:"pct"`
}

// SpreadDetail explains the top/worst performing-posts metrics.
type SpreadDetail struct {
	Posts    int     `json:"posts"`
	AvgReach float64 `json:"avg_reach"`
	Pct      float64 `json:"pct"`
}

// NicheDetail explains the niche-match metric.
type NicheDetail struct {
	Primary   string   `json:"primary"`
	Secondary []string `json:"secondary,omitempty"`
	Matches   int      `json:"matches"`
}

// LanguageDetail explains the language/market-fit metric.
type LanguageDetail struct {
	TargetLanguages []string `json:"target_languages"`
	MatchedPct      float64  `json:"matched_pct"`
}

// VisualDetail explains the visual-quality metric.
type VisualDetail struct {
	Lighting   float64 `json:"lighting"`
	Editing    float64 `json:"editing"`
	Aesthetics float64 `json:"aesthetics"`
}

// SentimentDetail explains the caption-sentiment metric.
type SentimentDetail struct {
	Raw         float64 `json:"raw"`          // -100..100
	PositivePct float64 `json:"positive_pct"` // 0..100
}

// RatioDetail explains the engagement-overview metric.
type RatioDetail struct {
	Rate      float64 `json:"rate"`
	Benchmark float64 `json:"benchmark"`
}

// ConsistencyDetail explains the performance-consistency metric.
type ConsistencyDetail struct {
	Posts  int     `json:"posts"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	CV     float64 `json:"cv"`
}

// TrendDetail explains the growth-trend metric.
type TrendDetail struct {
	Points         int     `json:"points"`
	StartFollowers int     `json:"start_followers"`
	EndFollowers   int     `json:"end_followers"`
	GrowthPct      float64 `json:"growth_pct"`
}

// CadenceDetail explains the posting-behaviour metric.
type CadenceDetail struct {
	Posts   int     `json:"posts"`
	PerWeek float64 `json:"per_week"`
}

// PayoutDetail explains the brand-trust metric.
type PayoutDetail struct {
	PayoutPerView float64 `json:"payout_per_view"`
}

func (AuthenticityDetail) Kind() string { return "authenticity" }
func (StabilityDetail) Kind() string    { return "stability" }
func (GeoDetail) Kind() string          { return "geo" }
func (RatingDetail) Kind() string       { return "rating" }
func (LabelDetail) Kind() string        { return "label" }
func (MixDetail) Kind() string          { return "mix" }
func (PercentDetail) Kind() string      { return "percent" }
func (SpreadDetail) Kind() string       { return "spread" }
func (NicheDetail) Kind() string        { return "niche" }
func (LanguageDetail) Kind() string     { return "language" }
func (VisualDetail) Kind() string       { return "visual" }
func (SentimentDetail) Kind() string    { return "sentiment" }
func (RatioDetail) Kind() string        { return "ratio" }
func (ConsistencyDetail) Kind() string  { return "consistency" }
func (TrendDetail) Kind() string        { return "trend" }
func (CadenceDetail) Kind() string      { return "cadence" }
func (PayoutDetail) Kind() string       { return "payout" }

// Metric is one weighted sub-score inside a category. Score is on the
// internal 0..10 scale; Weight is a percentage and the weights within one
// category sum to 100. Message explains degraded or defaulted values.
type Metric struct {
	Name    string  `json:"name"`
	Score   float64 `json:"score"`
	Weight  float64 `json:"weight"`
	Detail  Detail  `json:"detail,omitempty"`
	Message string  `json:"message,omitempty"`
}

// CategoryScore is the weighted result of one category, scaled to 0..100.
type CategoryScore struct {
	Category Category `json:"category"`
	Score    float64  `json:"score"`
	Metrics  []Metric `json:"metrics"`
}

// Weighted returns the weighted 0..100 score computed from the metrics.
func (c CategoryScore) Weighted() float64 {
	var sum float64
	for _, m := range c.Metrics {
		sum += m.Score * m.Weight / 100
	}
	return sum * 10
}

// ProfileScore is the aggregate report for one profile. WeeklyDelta is a
// declared placeholder: it stays 0 until score-history storage exists.
type ProfileScore struct {
	ProfileID   string          `json:"profile_id"`
	Score       float64         `json:"score"`
	Grade       string          `json:"grade"`
	WeeklyDelta float64         `json:"weekly_delta"`
	Categories  []CategoryScore `json:"categories"`
	Summary     string          `json:"summary"`
	ComputedAt  time.Time       `json:"computed_at"`
}
