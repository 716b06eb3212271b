package scoring

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"creatorscore/internal/domain"
	"creatorscore/internal/providers/ai"
)

// Config carries the engine's fixed parameters.
type Config struct {
	TargetCountry       string
	TargetLanguages     []string
	AITimeout           time.Duration
	MediaWindowDays     int
	GrowthWindowDays    int
	RecentMediaLimit    int
	HistoryLimit        int
	EngagementBenchmark float64 // percent, the 3% industry baseline
	Now                 func() time.Time
}

func (c Config) withDefaults() Config {
	if c.TargetCountry == "" {
		c.TargetCountry = "ID"
	}
	if len(c.TargetLanguages) == 0 {
		c.TargetLanguages = []string{"id", "en"}
	}
	if c.AITimeout <= 0 {
		c.AITimeout = 12 * time.Second
	}
	if c.MediaWindowDays <= 0 {
		c.MediaWindowDays = 30
	}
	if c.GrowthWindowDays <= 0 {
		c.GrowthWindowDays = 60
	}
	if c.RecentMediaLimit <= 0 {
		c.RecentMediaLimit = 30
	}
	if c.HistoryLimit <= 0 {
		c.HistoryLimit = 12
	}
	if c.EngagementBenchmark <= 0 {
		c.EngagementBenchmark = 3.0
	}
	if c.Now == nil {
		c.Now = time.Now
	}
	return c
}

// Engine computes creator quality scores from stored signals. All six
// category calculators are pure functions of the loaded signals and run in
// parallel; the aggregator joins them into one report.
type Engine struct {
	profiles  domain.ProfileRepository
	snapshots domain.SnapshotRepository
	media     domain.MediaRepository
	growth    domain.GrowthRepository
	gate      *Gate
	cfg       Config
	log       zerolog.Logger
}

// NewEngine constructs the scoring engine.
func NewEngine(
	profiles domain.ProfileRepository,
	snapshots domain.SnapshotRepository,
	media domain.MediaRepository,
	growth domain.GrowthRepository,
	analyzer ai.Analyzer,
	cfg Config,
	log zerolog.Logger,
) *Engine {
	cfg = cfg.withDefaults()
	return &Engine{
		profiles:  profiles,
		snapshots: snapshots,
		media:     media,
		growth:    growth,
		gate:      NewGate(analyzer, cfg.AITimeout, log),
		cfg:       cfg,
		log:       log,
	}
}

// Option adjusts one computation, e.g. the diagnostic target market.
type Option func(*computeOptions)

type computeOptions struct {
	targetCountry string
}

// WithTargetCountry overrides the target market for profiles that have none
// configured. Used by the API to score against the caller's market.
func WithTargetCountry(country string) Option {
	return func(o *computeOptions) {
		o.targetCountry = country
	}
}

// signals is everything the six calculators read. Loaded once per request;
// never mutated afterwards, which is what lets the calculators run without
// ordering guarantees.
type signals struct {
	profile         *domain.Profile
	snapshot        *domain.Snapshot // nil when the profile was never synced
	history         []domain.Snapshot
	media           []domain.MediaItem
	insights        []domain.MediaWithInsight
	growth          []domain.GrowthSnapshot
	targetCountry   string
	targetLanguages []string
	now             time.Time
}

// captions returns the non-empty captions of the loaded recent media.
func (s *signals) captions() []string {
	var out []string
	for _, m := range s.media {
		if m.Caption != "" {
			out = append(out, m.Caption)
		}
	}
	return out
}

// mediaURLs returns up to limit recent media URLs for visual judgments.
func (s *signals) mediaURLs(limit int) []string {
	var out []string
	for _, m := range s.media {
		if len(out) == limit {
			break
		}
		out = append(out, m.MediaURL)
	}
	return out
}

// mediaInWindow filters the recent media down to posts published within the
// trailing window.
func (s *signals) mediaInWindow(days int) []domain.MediaItem {
	cutoff := s.now.AddDate(0, 0, -days)
	var out []domain.MediaItem
	for _, m := range s.media {
		if m.PostedAt.After(cutoff) {
			out = append(out, m)
		}
	}
	return out
}

func (e *Engine) loadSignals(ctx context.Context, profileID string, opts computeOptions) (*signals, error) {
	profile, err := e.profiles.GetByID(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("load profile %s: %w", profileID, err)
	}

	sig := &signals{
		profile:         profile,
		now:             e.cfg.Now(),
		targetLanguages: profile.TargetLanguages,
	}
	if len(sig.targetLanguages) == 0 {
		sig.targetLanguages = e.cfg.TargetLanguages
	}
	sig.targetCountry = profile.TargetCountry
	if sig.targetCountry == "" {
		sig.targetCountry = opts.targetCountry
	}
	if sig.targetCountry == "" {
		sig.targetCountry = e.cfg.TargetCountry
	}

	snap, err := e.snapshots.LatestValid(ctx, profileID)
	switch {
	case err == nil:
		sig.snapshot = snap
	case errors.Is(err, domain.ErrNoSnapshot):
		// Insufficient data: calculators apply their category defaults.
	default:
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	if sig.history, err = e.snapshots.RecentAnalyzed(ctx, profileID, e.cfg.HistoryLimit); err != nil {
		return nil, fmt.Errorf("load snapshot history: %w", err)
	}
	if sig.media, err = e.media.RecentMedia(ctx, profileID, e.cfg.RecentMediaLimit); err != nil {
		return nil, fmt.Errorf("load media: %w", err)
	}
	if sig.insights, err = e.media.InsightsInWindow(ctx, profileID, e.cfg.MediaWindowDays); err != nil {
		return nil, fmt.Errorf("load insights: %w", err)
	}
	if sig.growth, err = e.growth.SnapshotsInWindow(ctx, profileID, e.cfg.GrowthWindowDays); err != nil {
		return nil, fmt.Errorf("load growth: %w", err)
	}
	return sig, nil
}

// ComputeProfileScore evaluates all six categories in parallel, waits for
// the join, and aggregates the composite report.
func (e *Engine) ComputeProfileScore(ctx context.Context, profileID string, opts ...Option) (*domain.ProfileScore, error) {
	var co computeOptions
	for _, opt := range opts {
		opt(&co)
	}

	started := time.Now()
	sig, err := e.loadSignals(ctx, profileID, co)
	if err != nil {
		return nil, err
	}

	results := make([]domain.CategoryScore, len(domain.Categories))
	g, gctx := errgroup.WithContext(ctx)
	for i, cat := range domain.Categories {
		i, cat := i, cat
		g.Go(func() error {
			results[i] = e.compute(gctx, cat, sig)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := aggregate(profileID, results, sig, e.cfg.Now())
	e.log.Info().
		Str("profile_id", profileID).
		Float64("score", report.Score).
		Str("grade", report.Grade).
		Dur("elapsed", time.Since(started)).
		Msg("profile score computed")
	return report, nil
}

// ComputeCategory evaluates a single category. Diagnostic entry point.
func (e *Engine) ComputeCategory(ctx context.Context, profileID string, cat domain.Category, opts ...Option) (*domain.CategoryScore, error) {
	var co computeOptions
	for _, opt := range opts {
		opt(&co)
	}

	if _, err := domain.ParseCategory(string(cat)); err != nil {
		return nil, err
	}
	sig, err := e.loadSignals(ctx, profileID, co)
	if err != nil {
		return nil, err
	}
	score := e.compute(ctx, cat, sig)
	return &score, nil
}

// compute dispatches one category calculator. Calculators degrade, they do
// not fail: any missing input resolves to the category's documented default.
func (e *Engine) compute(ctx context.Context, cat domain.Category, sig *signals) domain.CategoryScore {
	switch cat {
	case domain.CategoryAudienceQuality:
		return e.scoreAudienceQuality(sig)
	case domain.CategoryContentRelevance:
		return e.scoreContentRelevance(ctx, sig)
	case domain.CategoryContentQuality:
		return e.scoreContentQuality(ctx, sig)
	case domain.CategoryEngagementStrength:
		return e.scoreEngagementStrength(sig)
	case domain.CategoryGrowthMomentum:
		return e.scoreGrowthMomentum(sig)
	case domain.CategoryMonetisation:
		return e.scoreMonetisation(ctx, sig)
	default:
		return domain.CategoryScore{Category: cat}
	}
}

// finalize computes the weighted category score from its metrics.
func finalize(cat domain.Category, metrics []domain.Metric) domain.CategoryScore {
	cs := domain.CategoryScore{Category: cat, Metrics: metrics}
	cs.Score = round2(cs.Weighted())
	return cs
}
