package ai

import (
	"context"
	"errors"
)

// ErrUnavailable is returned by every method of the unavailable analyzer.
var ErrUnavailable = errors.New("ai analyzer unavailable")

// ScoreResult is a numeric AI judgment. The scale depends on the metric:
// trend relevance 1..10, colour/mood and audience sentiment 1..20, caption
// sentiment -100..100, monetisation potential 1..50, payout-per-view in
// currency units.
type ScoreResult struct {
	Value    float64 `json:"value"`
	Feedback string  `json:"feedback,omitempty"`
}

// LabelResult is a categorical AI judgment, e.g. a hashtag or CTA rating.
type LabelResult struct {
	Rating   string `json:"rating"`
	Feedback string `json:"feedback,omitempty"`
}

// NicheResult names the content niches detected for a creator.
type NicheResult struct {
	Primary   string   `json:"primary"`
	Secondary []string `json:"secondary,omitempty"`
}

// VisualResult carries the visual production sub-scores, each 1..10.
type VisualResult struct {
	Lighting   float64 `json:"lighting"`
	Editing    float64 `json:"editing"`
	Aesthetics float64 `json:"aesthetics"`
}

// MonetisationContext is the creator context given to monetisation prompts.
type MonetisationContext struct {
	Username          string
	FollowerCount     int
	Niche             string
	AvgEngagementRate float64
	Captions          []string
}

// Analyzer is the external content-analysis capability. Callers must check
// Available before invoking a judgment; every judgment has a documented
// per-metric fallback applied by the scoring engine when the provider is
// unavailable or fails.
type Analyzer interface {
	Available() bool

	AnalyzeTrendRelevance(ctx context.Context, captions []string) (*ScoreResult, error)
	DetectNiches(ctx context.Context, captions []string) (*NicheResult, error)
	RateHashtags(ctx context.Context, captions []string) (*LabelResult, error)
	DetectCaptionLanguages(ctx context.Context, captions []string) (map[string]float64, error)
	DetectFaces(ctx context.Context, mediaURLs []string) (float64, error)
	AssessVisualQuality(ctx context.Context, mediaURLs []string) (*VisualResult, error)
	AssessColorMood(ctx context.Context, mediaURLs []string) (*ScoreResult, error)
	AnalyzeSentiment(ctx context.Context, captions []string) (*ScoreResult, error)
	RateCTAUsage(ctx context.Context, captions []string) (*LabelResult, error)
	PredictMonetisation(ctx context.Context, mc MonetisationContext) (*ScoreResult, error)
	PredictPayoutPerView(ctx context.Context, mc MonetisationContext) (*ScoreResult, error)
	AssessAudienceSentiment(ctx context.Context, captions []string) (*ScoreResult, error)
}

// Unavailable is an Analyzer with no backing provider. Wiring it keeps the
// engine fully operational without an API key: every metric resolves to its
// documented fallback.
type Unavailable struct{}

// NewUnavailable constructs the no-op analyzer.
func NewUnavailable() *Unavailable {
	return &Unavailable{}
}

func (*Unavailable) Available() bool { return false }

func (*Unavailable) AnalyzeTrendRelevance(context.Context, []string) (*ScoreResult, error) {
	return nil, ErrUnavailable
}

func (*Unavailable) DetectNiches(context.Context, []string) (*NicheResult, error) {
	return nil, ErrUnavailable
}

func (*Unavailable) RateHashtags(context.Context, []string) (*LabelResult, error) {
	return nil, ErrUnavailable
}

func (*Unavailable) DetectCaptionLanguages(context.Context, []string) (map[string]float64, error) {
	return nil, ErrUnavailable
}

func (*Unavailable) DetectFaces(context.Context, []string) (float64, error) {
	return 0, ErrUnavailable
}

func (*Unavailable) AssessVisualQuality(context.Context, []string) (*VisualResult, error) {
	return nil, ErrUnavailable
}

func (*Unavailable) AssessColorMood(context.Context, []string) (*ScoreResult, error) {
	return nil, ErrUnavailable
}

func (*Unavailable) AnalyzeSentiment(context.Context, []string) (*ScoreResult, error) {
	return nil, ErrUnavailable
}

func (*Unavailable) RateCTAUsage(context.Context, []string) (*LabelResult, error) {
	return nil, ErrUnavailable
}

func (*Unavailable) PredictMonetisation(context.Context, MonetisationContext) (*ScoreResult, error) {
	return nil, ErrUnavailable
}

func (*Unavailable) PredictPayoutPerView(context.Context, MonetisationContext) (*ScoreResult, error) {
	return nil, ErrUnavailable
}

func (*Unavailable) AssessAudienceSentiment(context.Context, []string) (*ScoreResult, error) {
	return nil, ErrUnavailable
}

var _ Analyzer = (*Unavailable)(nil)
