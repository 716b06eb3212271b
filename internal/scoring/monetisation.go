package scoring

import (
	"context"

	"golang.org/x/sync/errgroup"

	"creatorscore/internal/domain"
	"creatorscore/internal/providers/ai"
)

// Monetisation gives the full score when AI or data is absent, the opposite
// of Content Relevance's zero-out policy. Intentional: a creator is not
// marked unmonetisable for lack of evidence.
const monetisationFallbackScore = 10.0

// Monetisation: monetisation signal 50%, brand trust 30%, audience
// sentiment 20%.
func (e *Engine) scoreMonetisation(ctx context.Context, sig *signals) domain.CategoryScore {
	var signal, trust, sentiment domain.Metric

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { signal = e.monetisationSignal(gctx, sig); return nil })
	g.Go(func() error { trust = e.brandTrust(gctx, sig); return nil })
	g.Go(func() error { sentiment = e.audienceSentiment(gctx, sig); return nil })
	_ = g.Wait()

	return finalize(domain.CategoryMonetisation, []domain.Metric{signal, trust, sentiment})
}

func (e *Engine) monetisationContext(sig *signals) ai.MonetisationContext {
	mc := ai.MonetisationContext{
		Username:      sig.profile.Username,
		FollowerCount: sig.profile.FollowerCount,
		Captions:      sig.captions(),
	}
	if sig.snapshot != nil {
		mc.AvgEngagementRate = sig.snapshot.AvgEngagementRate
		if sig.snapshot.AI != nil {
			mc.Niche = sig.snapshot.AI.PrimaryNiche
		}
	}
	return mc
}

// monetisationSignal scales the AI's 1-50 monetisation potential to 0..10.
func (e *Engine) monetisationSignal(ctx context.Context, sig *signals) domain.Metric {
	m := domain.Metric{Name: "monetisation_signal", Weight: 50}

	res, ok := insight(ctx, e.gate, sig.snapshot, "monetisation_signal",
		func(c *domain.AIInsights) (*ai.ScoreResult, bool) {
			if c.MonetisationScore <= 0 {
				return nil, false
			}
			return &ai.ScoreResult{Value: c.MonetisationScore}, true
		},
		func(ctx context.Context, a ai.Analyzer) (*ai.ScoreResult, error) {
			return a.PredictMonetisation(ctx, e.monetisationContext(sig))
		},
		nil,
	)
	if !ok || res == nil {
		m.Score = monetisationFallbackScore
		m.Message = "monetisation prediction unavailable; full score applied"
		return m
	}

	m.Score = round2(clamp(res.Value/5, 0, 10))
	m.Detail = domain.RatingDetail{Value: res.Value, Feedback: res.Feedback}
	return m
}

// brandTrust maps the predicted payout-per-view through the payout tiers.
func (e *Engine) brandTrust(ctx context.Context, sig *signals) domain.Metric {
	m := domain.Metric{Name: "brand_trust", Weight: 30}

	res, ok := insight(ctx, e.gate, sig.snapshot, "brand_trust",
		func(c *domain.AIInsights) (*ai.ScoreResult, bool) {
			if c.PayoutPerView <= 0 {
				return nil, false
			}
			return &ai.ScoreResult{Value: c.PayoutPerView}, true
		},
		func(ctx context.Context, a ai.Analyzer) (*ai.ScoreResult, error) {
			return a.PredictPayoutPerView(ctx, e.monetisationContext(sig))
		},
		nil,
	)
	if !ok || res == nil {
		m.Score = monetisationFallbackScore
		m.Message = "payout prediction unavailable; full score applied"
		return m
	}

	m.Score = round2(scoreAtLeast(PayoutTiers, res.Value) / 3)
	m.Detail = domain.PayoutDetail{PayoutPerView: res.Value}
	return m
}

// audienceSentiment halves the AI's 1-20 audience sentiment rating.
func (e *Engine) audienceSentiment(ctx context.Context, sig *signals) domain.Metric {
	m := domain.Metric{Name: "audience_sentiment", Weight: 20}

	res, ok := insight(ctx, e.gate, sig.snapshot, "audience_sentiment",
		func(c *domain.AIInsights) (*ai.ScoreResult, bool) {
			if c.AudienceSentiment <= 0 {
				return nil, false
			}
			return &ai.ScoreResult{Value: c.AudienceSentiment}, true
		},
		func(ctx context.Context, a ai.Analyzer) (*ai.ScoreResult, error) {
			return a.AssessAudienceSentiment(ctx, sig.captions())
		},
		nil,
	)
	if !ok || res == nil {
		m.Score = monetisationFallbackScore
		m.Message = "audience sentiment unavailable; full score applied"
		return m
	}

	m.Score = round2(clamp(res.Value/2, 0, 10))
	m.Detail = domain.RatingDetail{Value: res.Value, Feedback: res.Feedback}
	return m
}
