package scoring

import (
	"context"
	"testing"

	"creatorscore/internal/domain"
)

func relevanceScore(t *testing.T, fx fixture) domain.CategoryScore {
	t.Helper()
	e := newTestEngine(t, fx)
	cs, err := e.ComputeCategory(context.Background(), "p1", domain.CategoryContentRelevance)
	if err != nil {
		t.Fatalf("ComputeCategory returned error: %v", err)
	}
	return *cs
}

func TestContentMixBalancedReelShare(t *testing.T) {
	// 15 reels out of 20 posts = 75%, inside the rewarded 60-90% band.
	cs := relevanceScore(t, fixture{snapshot: analyzedSnapshot(), media: postedMedia(20, 15)})
	m := metricByName(t, cs, "content_mix")
	if m.Score != 10 {
		t.Fatalf("score = %v, want 10 for a 75%% reel share", m.Score)
	}
	detail := m.Detail.(domain.MixDetail)
	if detail.Raw != 5 || detail.ReelPct != 75 || detail.Posts != 20 {
		t.Fatalf("detail = %#v", detail)
	}
}

func TestContentMixPenalizesReelOnly(t *testing.T) {
	cs := relevanceScore(t, fixture{snapshot: analyzedSnapshot(), media: postedMedia(20, 20)})
	m := metricByName(t, cs, "content_mix")
	// 100% reels takes the raw-2 band: over-reliance on one format.
	if m.Score != 4 {
		t.Fatalf("score = %v, want 4", m.Score)
	}
}

func TestContentMixNoPosts(t *testing.T) {
	cs := relevanceScore(t, fixture{snapshot: analyzedSnapshot()})
	m := metricByName(t, cs, "content_mix")
	if m.Score != 0 {
		t.Fatalf("score = %v, want 0", m.Score)
	}
	if m.Message != "No posts in last 30 days" {
		t.Fatalf("message = %q", m.Message)
	}
}

func TestTrendRelevanceUsesCache(t *testing.T) {
	cs := relevanceScore(t, fixture{snapshot: analyzedSnapshot()})
	m := metricByName(t, cs, "trend_relevance")
	if m.Score != 8 {
		t.Fatalf("score = %v, want cached 8", m.Score)
	}
	if m.Message != "" {
		t.Fatalf("unexpected message %q for cached judgment", m.Message)
	}
}

func TestTrendRelevanceFallback(t *testing.T) {
	snap := analyzedSnapshot()
	snap.AI = nil

	cs := relevanceScore(t, fixture{snapshot: snap})
	m := metricByName(t, cs, "trend_relevance")
	if m.Score != trendFallbackScore {
		t.Fatalf("score = %v, want fallback %v", m.Score, trendFallbackScore)
	}
	if m.Message == "" {
		t.Fatal("expected degradation message")
	}
}

func TestPostSpread(t *testing.T) {
	// Reaches avg 106.43; above: 120, 110, 150 (3/7 = 42.86%), below: 100,
	// 90, 80, 95 (4/7 = 57.14%).
	fx := fixture{snapshot: analyzedSnapshot(), insights: insightRows(100, 120, 90, 110, 80, 150, 95)}
	cs := relevanceScore(t, fx)

	top := metricByName(t, cs, "top_posts")
	if top.Score != 8 {
		t.Fatalf("top score = %v, want 8 for 42.86%% above average", top.Score)
	}
	worst := metricByName(t, cs, "worst_posts")
	if worst.Score != 3 {
		t.Fatalf("worst score = %v, want 3 for 57.14%% below average", worst.Score)
	}
}

func TestPostSpreadNoInsights(t *testing.T) {
	cs := relevanceScore(t, fixture{snapshot: analyzedSnapshot()})
	for _, name := range []string{"top_posts", "worst_posts"} {
		m := metricByName(t, cs, name)
		if m.Score != 0 || m.Message == "" {
			t.Fatalf("%s = %+v, want 0 with message", name, m)
		}
	}
}

func TestNicheMatchFromCache(t *testing.T) {
	// fashion + beauty + lifestyle all sit in the allow-list: 3 matches.
	cs := relevanceScore(t, fixture{snapshot: analyzedSnapshot()})
	m := metricByName(t, cs, "niche_match")
	if m.Score != 8 {
		t.Fatalf("score = %v, want 8 for 3 matches", m.Score)
	}
	detail := m.Detail.(domain.NicheDetail)
	if detail.Matches != 3 {
		t.Fatalf("matches = %d, want 3", detail.Matches)
	}
}

func TestNicheMatchNoMatches(t *testing.T) {
	snap := analyzedSnapshot()
	snap.AI.PrimaryNiche = "astrology"
	snap.AI.SecondaryNiches = nil

	cs := relevanceScore(t, fixture{snapshot: snap})
	if m := metricByName(t, cs, "niche_match"); m.Score != 3 {
		t.Fatalf("score = %v, want 3 for 0 matches", m.Score)
	}
}

func TestHashtagEffectivenessLookup(t *testing.T) {
	tests := []struct {
		rating string
		want   float64
	}{
		{"outperforming", 10},
		{"effective", 8},
		{"medium", 5},
		{"need_improvement", 2},
	}
	for _, tc := range tests {
		snap := analyzedSnapshot()
		snap.AI.HashtagRating = tc.rating

		cs := relevanceScore(t, fixture{snapshot: snap})
		if m := metricByName(t, cs, "hashtag_effectiveness"); m.Score != tc.want {
			t.Fatalf("rating %q: score = %v, want %v", tc.rating, m.Score, tc.want)
		}
	}
}

func TestLanguageFit(t *testing.T) {
	// Cached mix is 70% id / 30% en; both sit in the default target set.
	cs := relevanceScore(t, fixture{snapshot: analyzedSnapshot()})
	if m := metricByName(t, cs, "language_fit"); m.Score != 10 {
		t.Fatalf("score = %v, want 10", m.Score)
	}
}

func TestLanguageFitPartialMatch(t *testing.T) {
	profile := testProfile()
	profile.TargetLanguages = []string{"id"}

	cs := relevanceScore(t, fixture{profile: profile, snapshot: analyzedSnapshot()})
	if m := metricByName(t, cs, "language_fit"); m.Score != 7 {
		t.Fatalf("score = %v, want 7 for a 70%% match", m.Score)
	}
}

func TestRelevanceZeroesOutWithoutAI(t *testing.T) {
	snap := analyzedSnapshot()
	snap.AI = nil

	cs := relevanceScore(t, fixture{snapshot: snap})
	for _, name := range []string{"content_style", "niche_match", "hashtag_effectiveness", "language_fit"} {
		m := metricByName(t, cs, name)
		if m.Score != 0 {
			t.Fatalf("%s score = %v, want 0 when AI unavailable", name, m.Score)
		}
		if m.Message == "" {
			t.Fatalf("%s missing degradation message", name)
		}
	}
}
