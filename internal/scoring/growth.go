package scoring

import (
	"creatorscore/internal/domain"
)

const neutralGrowthScore = 5.0

// Growth Momentum: growth trend 60%, posting behaviour 40%.
func (e *Engine) scoreGrowthMomentum(sig *signals) domain.CategoryScore {
	metrics := []domain.Metric{
		e.growthTrend(sig),
		e.postingBehaviour(sig),
	}
	return finalize(domain.CategoryGrowthMomentum, metrics)
}

// growthTrend converts the follower change between the oldest and newest
// growth record in the window through the tier ladder. Too little history is
// neutral, not penalized.
func (e *Engine) growthTrend(sig *signals) domain.Metric {
	m := domain.Metric{Name: "growth_trend", Weight: 60}

	if len(sig.growth) < 2 {
		m.Score = neutralGrowthScore
		m.Detail = domain.TrendDetail{Points: len(sig.growth)}
		m.Message = "not enough growth history to assess a trend"
		return m
	}

	oldest := sig.growth[0]
	newest := sig.growth[len(sig.growth)-1]
	if oldest.FollowerCount <= 0 {
		m.Score = neutralGrowthScore
		m.Detail = domain.TrendDetail{Points: len(sig.growth), EndFollowers: newest.FollowerCount}
		m.Message = "no follower baseline in the observation window"
		return m
	}

	growthPct := float64(newest.FollowerCount-oldest.FollowerCount) / float64(oldest.FollowerCount) * 100
	m.Score = scoreAtLeast(GrowthTrendTiers, growthPct)
	m.Detail = domain.TrendDetail{
		Points:         len(sig.growth),
		StartFollowers: oldest.FollowerCount,
		EndFollowers:   newest.FollowerCount,
		GrowthPct:      round2(growthPct),
	}
	if sig.snapshot != nil && sig.snapshot.AI != nil && sig.snapshot.AI.GrowthFeedback != "" {
		m.Message = sig.snapshot.AI.GrowthFeedback
	}
	return m
}

// postingBehaviour scores weekly posting cadence over the trailing window.
func (e *Engine) postingBehaviour(sig *signals) domain.Metric {
	m := domain.Metric{Name: "posting_behaviour", Weight: 40}

	posts := sig.mediaInWindow(e.cfg.MediaWindowDays)
	perWeek := float64(len(posts)) / (float64(e.cfg.MediaWindowDays) / 7)
	m.Score = scoreAtLeast(PostingCadenceTiers, perWeek)
	m.Detail = domain.CadenceDetail{Posts: len(posts), PerWeek: round2(perWeek)}
	if sig.snapshot != nil && sig.snapshot.AI != nil && sig.snapshot.AI.PostingFeedback != "" {
		m.Message = sig.snapshot.AI.PostingFeedback
	}
	return m
}
