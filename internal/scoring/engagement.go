package scoring

import (
	"creatorscore/internal/domain"
)

const minPostsForConsistency = 5

// Engagement Strength: engagement overview 70%, performance consistency 30%.
func (e *Engine) scoreEngagementStrength(sig *signals) domain.CategoryScore {
	metrics := []domain.Metric{
		e.engagementOverview(sig),
		e.performanceConsistency(sig),
	}
	return finalize(domain.CategoryEngagementStrength, metrics)
}

// engagementOverview scores the stored average engagement rate against the
// fixed benchmark; meeting the benchmark is a full score.
func (e *Engine) engagementOverview(sig *signals) domain.Metric {
	m := domain.Metric{Name: "engagement_overview", Weight: 70}

	if sig.snapshot == nil {
		m.Message = "no snapshot available"
		return m
	}

	rate := sig.snapshot.AvgEngagementRate
	m.Score = round2(clamp(rate/e.cfg.EngagementBenchmark*10, 0, 10))
	m.Detail = domain.RatioDetail{Rate: rate, Benchmark: e.cfg.EngagementBenchmark}
	return m
}

// performanceConsistency converts the coefficient of variation of 30-day
// reach values through 1/(1+CV).
func (e *Engine) performanceConsistency(sig *signals) domain.Metric {
	m := domain.Metric{Name: "performance_consistency", Weight: 30}

	if len(sig.insights) < minPostsForConsistency {
		m.Message = "fewer than 5 posts with insights in last 30 days"
		return m
	}

	var reaches []float64
	for _, row := range sig.insights {
		reaches = append(reaches, float64(row.Insight.Reach))
	}
	avg := mean(reaches)
	if avg <= 0 {
		m.Message = "no reach recorded in last 30 days"
		return m
	}

	sd := stdDev(reaches)
	cv := sd / avg
	m.Score = round2(1 / (1 + cv) * 10)
	m.Detail = domain.ConsistencyDetail{
		Posts:  len(reaches),
		Mean:   round2(avg),
		StdDev: round2(sd),
		CV:     round2(cv),
	}
	return m
}
