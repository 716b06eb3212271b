package scoring

import (
	"context"
	"testing"

	"creatorscore/internal/domain"
)

func growthScore(t *testing.T, fx fixture) domain.CategoryScore {
	t.Helper()
	e := newTestEngine(t, fx)
	cs, err := e.ComputeCategory(context.Background(), "p1", domain.CategoryGrowthMomentum)
	if err != nil {
		t.Fatalf("ComputeCategory returned error: %v", err)
	}
	return *cs
}

func growthPoints(counts ...int) []domain.GrowthSnapshot {
	points := make([]domain.GrowthSnapshot, 0, len(counts))
	for i, c := range counts {
		points = append(points, domain.GrowthSnapshot{
			ProfileID:     "p1",
			Day:           fixedNow.AddDate(0, 0, -len(counts)+i),
			FollowerCount: c,
		})
	}
	return points
}

func TestGrowthTrendTierMapping(t *testing.T) {
	tests := []struct {
		start, end int
		want       float64
	}{
		{start: 10000, end: 12700, want: 8.33}, // +27%
		{start: 10000, end: 13500, want: 10},   // +35%
		{start: 10000, end: 11500, want: 5.83}, // +15%
		{start: 10000, end: 10000, want: 3.33}, // flat
		{start: 10000, end: 9000, want: 0},     // shrinking
	}
	for _, tc := range tests {
		fx := fixture{snapshot: analyzedSnapshot(), growth: growthPoints(tc.start, tc.end)}
		cs := growthScore(t, fx)
		m := metricByName(t, cs, "growth_trend")
		if m.Score != tc.want {
			t.Fatalf("%d -> %d: score = %v, want %v", tc.start, tc.end, m.Score, tc.want)
		}
	}
}

func TestGrowthTrendNeutralWithoutHistory(t *testing.T) {
	cs := growthScore(t, fixture{snapshot: analyzedSnapshot(), growth: growthPoints(12000)})
	m := metricByName(t, cs, "growth_trend")
	if m.Score != neutralGrowthScore {
		t.Fatalf("score = %v, want neutral %v", m.Score, neutralGrowthScore)
	}
	if m.Message != "not enough growth history to assess a trend" {
		t.Fatalf("message = %q", m.Message)
	}
}

func TestGrowthTrendNeutralWithoutBaseline(t *testing.T) {
	cs := growthScore(t, fixture{snapshot: analyzedSnapshot(), growth: growthPoints(0, 500)})
	m := metricByName(t, cs, "growth_trend")
	if m.Score != neutralGrowthScore {
		t.Fatalf("score = %v, want neutral %v for a zero baseline", m.Score, neutralGrowthScore)
	}
}

func TestGrowthTrendCarriesCachedFeedback(t *testing.T) {
	snap := analyzedSnapshot()
	snap.AI.GrowthFeedback = "growth is steady; keep the cadence"

	fx := fixture{snapshot: snap, growth: growthPoints(10000, 12000)}
	cs := growthScore(t, fx)
	if m := metricByName(t, cs, "growth_trend"); m.Message != snap.AI.GrowthFeedback {
		t.Fatalf("message = %q, want cached feedback", m.Message)
	}
}

func TestPostingBehaviourCadence(t *testing.T) {
	tests := []struct {
		posts int
		want  float64
	}{
		{posts: 30, want: 10},   // 7 per week
		{posts: 20, want: 7.86}, // 4.67 per week
		{posts: 10, want: 5.71}, // 2.33 per week
		{posts: 4, want: 2.86},  // under one per week
		{posts: 0, want: 2.86},
	}
	for _, tc := range tests {
		fx := fixture{snapshot: analyzedSnapshot(), media: postedMedia(tc.posts, 0)}
		cs := growthScore(t, fx)
		m := metricByName(t, cs, "posting_behaviour")
		if m.Score != tc.want {
			t.Fatalf("%d posts: score = %v, want %v", tc.posts, m.Score, tc.want)
		}
	}
}

func TestGrowthCategoryWeighting(t *testing.T) {
	// trend 8.33 at 60%, cadence 7.86 at 40% -> (0.6*8.33 + 0.4*7.86) * 10.
	fx := fixture{
		snapshot: analyzedSnapshot(),
		media:    postedMedia(20, 0),
		growth:   growthPoints(10000, 12700),
	}
	cs := growthScore(t, fx)
	if cs.Score != 81.42 {
		t.Fatalf("category score = %v, want 81.42", cs.Score)
	}
}
