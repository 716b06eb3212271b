package scoring

import (
	"context"

	"golang.org/x/sync/errgroup"

	"creatorscore/internal/domain"
	"creatorscore/internal/providers/ai"
)

// Content Quality defaults are deliberately generous: when no AI judgment is
// available the category gives the benefit of the doubt instead of zeroing
// out the way Content Relevance does.
const (
	visualFallbackScore    = 8.5
	colorMoodFallbackScore = 7.5
	sentimentFallbackScore = 7.0
	ctaFallbackScore       = 7.0
)

// Content Quality: visual production 60%, colour/mood consistency 20%,
// caption sentiment 10%, CTA usage 10%.
func (e *Engine) scoreContentQuality(ctx context.Context, sig *signals) domain.CategoryScore {
	var visual, color, sentiment, cta domain.Metric

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { visual = e.visualQuality(gctx, sig); return nil })
	g.Go(func() error { color = e.colorMoodConsistency(gctx, sig); return nil })
	g.Go(func() error { sentiment = e.captionSentiment(gctx, sig); return nil })
	g.Go(func() error { cta = e.ctaUsage(gctx, sig); return nil })
	_ = g.Wait()

	return finalize(domain.CategoryContentQuality, []domain.Metric{visual, color, sentiment, cta})
}

// visualQuality averages the lighting/editing/aesthetics sub-scores.
func (e *Engine) visualQuality(ctx context.Context, sig *signals) domain.Metric {
	m := domain.Metric{Name: "visual_quality", Weight: 60}

	res, ok := insight(ctx, e.gate, sig.snapshot, "visual_quality",
		func(c *domain.AIInsights) (*ai.VisualResult, bool) {
			if c.VisualLighting <= 0 && c.VisualEditing <= 0 && c.VisualAesthetics <= 0 {
				return nil, false
			}
			return &ai.VisualResult{
				Lighting:   c.VisualLighting,
				Editing:    c.VisualEditing,
				Aesthetics: c.VisualAesthetics,
			}, true
		},
		func(ctx context.Context, a ai.Analyzer) (*ai.VisualResult, error) {
			return a.AssessVisualQuality(ctx, sig.mediaURLs(10))
		},
		nil,
	)
	if !ok || res == nil {
		m.Score = visualFallbackScore
		m.Message = "visual analysis unavailable; benefit of the doubt applied"
		return m
	}

	avg := (res.Lighting + res.Editing + res.Aesthetics) / 3
	m.Score = round2(clamp(avg, 0, 10))
	m.Detail = domain.VisualDetail{Lighting: res.Lighting, Editing: res.Editing, Aesthetics: res.Aesthetics}
	return m
}

// colorMoodConsistency halves the AI's 1-20 consistency rating.
func (e *Engine) colorMoodConsistency(ctx context.Context, sig *signals) domain.Metric {
	m := domain.Metric{Name: "color_mood_consistency", Weight: 20}

	res, ok := insight(ctx, e.gate, sig.snapshot, "color_mood_consistency",
		func(c *domain.AIInsights) (*ai.ScoreResult, bool) {
			if c.ColorMoodScore <= 0 {
				return nil, false
			}
			return &ai.ScoreResult{Value: c.ColorMoodScore}, true
		},
		func(ctx context.Context, a ai.Analyzer) (*ai.ScoreResult, error) {
			return a.AssessColorMood(ctx, sig.mediaURLs(10))
		},
		nil,
	)
	if !ok || res == nil {
		m.Score = colorMoodFallbackScore
		m.Message = "colour analysis unavailable; benefit of the doubt applied"
		return m
	}

	m.Score = round2(clamp(res.Value/2, 0, 10))
	m.Detail = domain.RatingDetail{Value: res.Value, Feedback: res.Feedback}
	return m
}

// captionSentiment maps a -100..100 sentiment score into percent-positive
// bands.
func (e *Engine) captionSentiment(ctx context.Context, sig *signals) domain.Metric {
	m := domain.Metric{Name: "caption_sentiment", Weight: 10}

	res, ok := insight(ctx, e.gate, sig.snapshot, "caption_sentiment",
		func(c *domain.AIInsights) (*ai.ScoreResult, bool) {
			return &ai.ScoreResult{Value: c.SentimentScore}, true
		},
		func(ctx context.Context, a ai.Analyzer) (*ai.ScoreResult, error) {
			return a.AnalyzeSentiment(ctx, sig.captions())
		},
		nil,
	)
	if !ok || res == nil {
		m.Score = sentimentFallbackScore
		m.Message = "sentiment analysis unavailable; benefit of the doubt applied"
		return m
	}

	positivePct := clamp((res.Value+100)/2, 0, 100)
	m.Score = scoreAtLeast(SentimentTiers, positivePct)
	m.Detail = domain.SentimentDetail{Raw: res.Value, PositivePct: round2(positivePct)}
	return m
}

// ctaUsage maps the categorical call-to-action rating.
func (e *Engine) ctaUsage(ctx context.Context, sig *signals) domain.Metric {
	m := domain.Metric{Name: "cta_usage", Weight: 10}

	res, ok := insight(ctx, e.gate, sig.snapshot, "cta_usage",
		func(c *domain.AIInsights) (*ai.LabelResult, bool) {
			if c.CTARating == "" {
				return nil, false
			}
			return &ai.LabelResult{Rating: c.CTARating}, true
		},
		func(ctx context.Context, a ai.Analyzer) (*ai.LabelResult, error) {
			return a.RateCTAUsage(ctx, sig.captions())
		},
		nil,
	)
	if !ok || res == nil {
		m.Score = ctaFallbackScore
		m.Message = "CTA analysis unavailable; benefit of the doubt applied"
		return m
	}

	score, known := CTARatingScores[res.Rating]
	if !known {
		m.Score = ctaFallbackScore
		m.Message = "unrecognized CTA rating; benefit of the doubt applied"
		return m
	}
	m.Score = score
	m.Detail = domain.LabelDetail{Rating: res.Rating}
	return m
}
