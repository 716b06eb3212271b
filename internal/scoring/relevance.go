package scoring

import (
	"context"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"

	"creatorscore/internal/domain"
	"creatorscore/internal/providers/ai"
)

const trendFallbackScore = 7.0

// Content Relevance: trend 35%, content mix 5%, content style 10%, top posts
// 10%, worst posts 10%, niche match 10%, hashtag effectiveness 10%,
// language/market fit 10%. Missing data short-circuits a metric to 0 with a
// message; the weight is never skipped.
func (e *Engine) scoreContentRelevance(ctx context.Context, sig *signals) domain.CategoryScore {
	var (
		trend, style, niche, hashtag, lang domain.Metric
	)

	// The five AI-backed sub-metrics fan out; no ordering guarantee between
	// them is needed.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { trend = e.trendRelevance(gctx, sig); return nil })
	g.Go(func() error { style = e.contentStyle(gctx, sig); return nil })
	g.Go(func() error { niche = e.nicheMatch(gctx, sig); return nil })
	g.Go(func() error { hashtag = e.hashtagEffectiveness(gctx, sig); return nil })
	g.Go(func() error { lang = e.languageFit(gctx, sig); return nil })
	_ = g.Wait()

	metrics := []domain.Metric{
		trend,
		e.contentMix(sig),
		style,
		e.postSpread(sig, true),
		e.postSpread(sig, false),
		niche,
		hashtag,
		lang,
	}
	return finalize(domain.CategoryContentRelevance, metrics)
}

func (e *Engine) trendRelevance(ctx context.Context, sig *signals) domain.Metric {
	m := domain.Metric{Name: "trend_relevance", Weight: 35}

	res, ok := insight(ctx, e.gate, sig.snapshot, "trend_relevance",
		func(c *domain.AIInsights) (*ai.ScoreResult, bool) {
			if c.TrendScore <= 0 {
				return nil, false
			}
			return &ai.ScoreResult{Value: c.TrendScore}, true
		},
		func(ctx context.Context, a ai.Analyzer) (*ai.ScoreResult, error) {
			return a.AnalyzeTrendRelevance(ctx, sig.captions())
		},
		&ai.ScoreResult{Value: trendFallbackScore},
	)
	m.Score = round2(clamp(res.Value, 0, 10))
	m.Detail = domain.RatingDetail{Value: res.Value, Feedback: res.Feedback}
	if !ok {
		m.Message = "trend analysis unavailable; neutral default applied"
	}
	return m
}

// contentMix rewards a balanced 60-90% reel share over the trailing window.
func (e *Engine) contentMix(sig *signals) domain.Metric {
	m := domain.Metric{Name: "content_mix", Weight: 5}

	posts := sig.mediaInWindow(e.cfg.MediaWindowDays)
	if len(posts) == 0 {
		m.Message = "No posts in last 30 days"
		return m
	}

	var reels int
	for _, p := range posts {
		if p.Kind == domain.MediaReel {
			reels++
		}
	}
	reelPct := float64(reels) / float64(len(posts)) * 100
	raw := scoreAtLeast(ContentMixTiers, reelPct)
	m.Score = round2(raw / 5 * 10)
	m.Detail = domain.MixDetail{Posts: len(posts), ReelPct: round2(reelPct), Raw: raw}
	return m
}

// contentStyle scores the share of sampled posts showing a detectable face.
func (e *Engine) contentStyle(ctx context.Context, sig *signals) domain.Metric {
	m := domain.Metric{Name: "content_style", Weight: 10}

	pct, ok := insight(ctx, e.gate, sig.snapshot, "content_style",
		func(c *domain.AIInsights) (float64, bool) { return c.FacePct, true },
		func(ctx context.Context, a ai.Analyzer) (float64, error) {
			return a.DetectFaces(ctx, sig.mediaURLs(10))
		},
		0,
	)
	m.Score = round2(clamp(pct/100*10, 0, 10))
	m.Detail = domain.PercentDetail{Pct: pct}
	if !ok {
		m.Message = "face detection unavailable"
	}
	return m
}

// postSpread scores the share of posts above (top=true) or below the 30-day
// average reach.
func (e *Engine) postSpread(sig *signals, top bool) domain.Metric {
	m := domain.Metric{Name: "worst_posts", Weight: 10}
	if top {
		m.Name = "top_posts"
	}

	if len(sig.insights) == 0 {
		m.Message = "no post insights in last 30 days"
		return m
	}

	var reaches []float64
	for _, row := range sig.insights {
		reaches = append(reaches, float64(row.Insight.Reach))
	}
	avg := mean(reaches)

	var count int
	for _, r := range reaches {
		if top && r > avg {
			count++
		}
		if !top && r < avg {
			count++
		}
	}
	pct := float64(count) / float64(len(reaches)) * 100

	if top {
		m.Score = scoreAtLeast(TopPostTiers, pct)
	} else {
		m.Score = scoreAtMost(WorstPostTiers, pct)
	}
	m.Detail = domain.SpreadDetail{Posts: len(reaches), AvgReach: round2(avg), Pct: round2(pct)}
	return m
}

// nicheMatch intersects the AI-detected niches with the top-niche list.
func (e *Engine) nicheMatch(ctx context.Context, sig *signals) domain.Metric {
	m := domain.Metric{Name: "niche_match", Weight: 10}

	res, ok := insight(ctx, e.gate, sig.snapshot, "niche_match",
		func(c *domain.AIInsights) (*ai.NicheResult, bool) {
			if c.PrimaryNiche == "" {
				return nil, false
			}
			return &ai.NicheResult{Primary: c.PrimaryNiche, Secondary: c.SecondaryNiches}, true
		},
		func(ctx context.Context, a ai.Analyzer) (*ai.NicheResult, error) {
			return a.DetectNiches(ctx, sig.captions())
		},
		nil,
	)
	if !ok || res == nil {
		m.Message = "niche detection unavailable"
		return m
	}

	matches := 0
	seen := map[string]bool{}
	for _, n := range append([]string{res.Primary}, res.Secondary...) {
		n = strings.ToLower(strings.TrimSpace(n))
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		if slices.Contains(TopNiches, n) {
			matches++
		}
	}
	m.Score = scoreAtLeast(NicheMatchTiers, float64(matches))
	m.Detail = domain.NicheDetail{Primary: res.Primary, Secondary: res.Secondary, Matches: matches}
	return m
}

func (e *Engine) hashtagEffectiveness(ctx context.Context, sig *signals) domain.Metric {
	m := domain.Metric{Name: "hashtag_effectiveness", Weight: 10}

	res, ok := insight(ctx, e.gate, sig.snapshot, "hashtag_effectiveness",
		func(c *domain.AIInsights) (*ai.LabelResult, bool) {
			if c.HashtagRating == "" {
				return nil, false
			}
			return &ai.LabelResult{Rating: c.HashtagRating}, true
		},
		func(ctx context.Context, a ai.Analyzer) (*ai.LabelResult, error) {
			return a.RateHashtags(ctx, sig.captions())
		},
		nil,
	)
	if !ok || res == nil {
		m.Message = "hashtag analysis unavailable"
		return m
	}

	score, known := HashtagRatingScores[res.Rating]
	if !known {
		m.Message = "unrecognized hashtag rating"
	}
	m.Score = score
	m.Detail = domain.LabelDetail{Rating: res.Rating}
	return m
}

// languageFit scores the share of captioned content written in the target
// language set.
func (e *Engine) languageFit(ctx context.Context, sig *signals) domain.Metric {
	m := domain.Metric{Name: "language_fit", Weight: 10}

	shares, ok := insight(ctx, e.gate, sig.snapshot, "language_fit",
		func(c *domain.AIInsights) (map[string]float64, bool) {
			return c.CaptionLanguages, len(c.CaptionLanguages) > 0
		},
		func(ctx context.Context, a ai.Analyzer) (map[string]float64, error) {
			return a.DetectCaptionLanguages(ctx, sig.captions())
		},
		nil,
	)
	if !ok || len(shares) == 0 {
		m.Message = "language detection unavailable"
		return m
	}

	matched := languageMatchPct(shares, sig.targetLanguages)
	m.Score = round2(clamp(matched/100*10, 0, 10))
	m.Detail = domain.LanguageDetail{TargetLanguages: sig.targetLanguages, MatchedPct: round2(matched)}
	return m
}

// languageMatchPct sums the caption shares whose BCP-47 tag matches one of
// the target languages with high confidence.
func languageMatchPct(shares map[string]float64, targets []string) float64 {
	var tags []language.Tag
	for _, t := range targets {
		if tag, err := language.Parse(t); err == nil {
			tags = append(tags, tag)
		}
	}
	if len(tags) == 0 {
		return 0
	}
	matcher := language.NewMatcher(tags)

	// Sorted iteration keeps float accumulation deterministic.
	keys := make([]string, 0, len(shares))
	for k := range shares {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var matched float64
	for _, k := range keys {
		tag, err := language.Parse(k)
		if err != nil {
			continue
		}
		if _, _, conf := matcher.Match(tag); conf >= language.High {
			matched += shares[k]
		}
	}
	return clamp(matched, 0, 100)
}
