package scoring

import (
	"context"
	"testing"

	"creatorscore/internal/domain"
)

func qualityScore(t *testing.T, fx fixture) domain.CategoryScore {
	t.Helper()
	e := newTestEngine(t, fx)
	cs, err := e.ComputeCategory(context.Background(), "p1", domain.CategoryContentQuality)
	if err != nil {
		t.Fatalf("ComputeCategory returned error: %v", err)
	}
	return *cs
}

func TestQualityDefaultsWithoutAI(t *testing.T) {
	snap := analyzedSnapshot()
	snap.AI = nil

	cs := qualityScore(t, fixture{snapshot: snap})
	tests := []struct {
		name string
		want float64
	}{
		{"visual_quality", visualFallbackScore},
		{"color_mood_consistency", colorMoodFallbackScore},
		{"caption_sentiment", sentimentFallbackScore},
		{"cta_usage", ctaFallbackScore},
	}
	for _, tc := range tests {
		m := metricByName(t, cs, tc.name)
		if m.Score != tc.want {
			t.Fatalf("%s score = %v, want default %v", tc.name, m.Score, tc.want)
		}
		if m.Message == "" {
			t.Fatalf("%s missing degradation message", tc.name)
		}
	}
	// (0.6*8.5 + 0.2*7.5 + 0.1*7 + 0.1*7) * 10
	if cs.Score != 80 {
		t.Fatalf("category score = %v, want 80", cs.Score)
	}
}

func TestVisualQualityAveragesSubScores(t *testing.T) {
	// Cached lighting 8, editing 7, aesthetics 9.
	cs := qualityScore(t, fixture{snapshot: analyzedSnapshot()})
	m := metricByName(t, cs, "visual_quality")
	if m.Score != 8 {
		t.Fatalf("score = %v, want 8", m.Score)
	}
	detail := m.Detail.(domain.VisualDetail)
	if detail.Lighting != 8 || detail.Editing != 7 || detail.Aesthetics != 9 {
		t.Fatalf("detail = %#v", detail)
	}
}

func TestColorMoodHalvesRating(t *testing.T) {
	// Cached 1-20 rating of 15 maps to 7.5.
	cs := qualityScore(t, fixture{snapshot: analyzedSnapshot()})
	if m := metricByName(t, cs, "color_mood_consistency"); m.Score != 7.5 {
		t.Fatalf("score = %v, want 7.5", m.Score)
	}
}

func TestCaptionSentimentBands(t *testing.T) {
	tests := []struct {
		raw  float64
		want float64
	}{
		{raw: 60, want: 10}, // 80% positive
		{raw: 20, want: 8},  // 60% positive
		{raw: -40, want: 6}, // 30% positive
		{raw: -80, want: 4}, // 10% positive
	}
	for _, tc := range tests {
		snap := analyzedSnapshot()
		snap.AI.SentimentScore = tc.raw

		cs := qualityScore(t, fixture{snapshot: snap})
		if m := metricByName(t, cs, "caption_sentiment"); m.Score != tc.want {
			t.Fatalf("raw %v: score = %v, want %v", tc.raw, m.Score, tc.want)
		}
	}
}

func TestCTAUsageLookup(t *testing.T) {
	tests := []struct {
		rating string
		want   float64
	}{
		{"good", 10},
		{"medium", 7},
		{"less", 4},
	}
	for _, tc := range tests {
		snap := analyzedSnapshot()
		snap.AI.CTARating = tc.rating

		cs := qualityScore(t, fixture{snapshot: snap})
		if m := metricByName(t, cs, "cta_usage"); m.Score != tc.want {
			t.Fatalf("rating %q: score = %v, want %v", tc.rating, m.Score, tc.want)
		}
	}
}

func TestCTAUsageUnrecognizedRating(t *testing.T) {
	snap := analyzedSnapshot()
	snap.AI.CTARating = "stellar"

	cs := qualityScore(t, fixture{snapshot: snap})
	m := metricByName(t, cs, "cta_usage")
	if m.Score != ctaFallbackScore || m.Message == "" {
		t.Fatalf("metric = %+v, want fallback with message", m)
	}
}
