package scoring

import "math"

// Tier is one band of a score conversion table: values meeting Bound (per
// the ladder direction) take Score.
type Tier struct {
	Bound float64
	Score float64
}

// scoreAtLeast walks tiers ordered by descending bound and returns the score
// of the first tier whose bound the value meets. Ladders end with a
// -Inf bound so every real value maps to exactly one band.
func scoreAtLeast(tiers []Tier, v float64) float64 {
	for _, t := range tiers {
		if v >= t.Bound {
			return t.Score
		}
	}
	return tiers[len(tiers)-1].Score
}

// scoreAtMost walks tiers ordered by ascending bound and returns the score
// of the first tier the value does not exceed. Ladders end with a +Inf bound.
func scoreAtMost(tiers []Tier, v float64) float64 {
	for _, t := range tiers {
		if v <= t.Bound {
			return t.Score
		}
	}
	return tiers[len(tiers)-1].Score
}

// GrowthTrendTiers converts a windowed follower growth percentage into a
// 0..10 score.
var GrowthTrendTiers = []Tier{
	{Bound: 30, Score: 10},
	{Bound: 25, Score: 8.33},
	{Bound: 20, Score: 6.67},
	{Bound: 15, Score: 5.83},
	{Bound: 10, Score: 5.0},
	{Bound: 5, Score: 4.17},
	{Bound: 0, Score: 3.33},
	{Bound: math.Inf(-1), Score: 0},
}

// PostingCadenceTiers converts posts-per-week into a 0..10 score.
var PostingCadenceTiers = []Tier{
	{Bound: 6, Score: 10},
	{Bound: 4, Score: 7.86},
	{Bound: 2, Score: 5.71},
	{Bound: math.Inf(-1), Score: 2.86},
}

// TopPostTiers converts the percentage of posts above the 30-day average
// reach into a 0..10 score.
var TopPostTiers = []Tier{
	{Bound: 45, Score: 10},
	{Bound: 30, Score: 8},
	{Bound: 15, Score: 6},
	{Bound: math.Inf(-1), Score: 3},
}

// WorstPostTiers converts the percentage of posts below the 30-day average
// reach into a 0..10 score. Fewer underperformers score higher, so this
// ladder reads upward.
var WorstPostTiers = []Tier{
	{Bound: 15, Score: 10},
	{Bound: 30, Score: 8},
	{Bound: 45, Score: 6},
	{Bound: math.Inf(1), Score: 3},
}

// NicheMatchTiers converts the number of detected niches intersecting the
// top-niche list into a 0..10 score.
var NicheMatchTiers = []Tier{
	{Bound: 5, Score: 10},
	{Bound: 2, Score: 8},
	{Bound: 1, Score: 6},
	{Bound: math.Inf(-1), Score: 3},
}

// PayoutTiers converts an estimated payout-per-view into a 0..30 raw score,
// divided by 3 by the monetisation calculator.
var PayoutTiers = []Tier{
	{Bound: 3000, Score: 30},
	{Bound: 1500, Score: 25},
	{Bound: 500, Score: 20},
	{Bound: 100, Score: 10},
	{Bound: math.Inf(-1), Score: 5},
}

// SentimentTiers converts a percent-positive sentiment value into a 0..10
// score.
var SentimentTiers = []Tier{
	{Bound: 75, Score: 10},
	{Bound: 50, Score: 8},
	{Bound: 25, Score: 6},
	{Bound: math.Inf(-1), Score: 4},
}

// ContentMixTiers converts the reel percentage over the trailing window into
// a raw 0..5 value. The band is non-monotonic on purpose: total reliance on
// one format scores below a balanced 60-90% band.
var ContentMixTiers = []Tier{
	{Bound: 90, Score: 2},
	{Bound: 60, Score: 5},
	{Bound: math.Inf(-1), Score: 3},
}

// HashtagRatingScores maps the categorical AI hashtag rating to a 0..10
// score.
var HashtagRatingScores = map[string]float64{
	"outperforming":    10,
	"effective":        8,
	"medium":           5,
	"need_improvement": 2,
}

// CTARatingScores maps the categorical AI call-to-action rating to a 0..10
// score.
var CTARatingScores = map[string]float64{
	"good":   10,
	"medium": 7,
	"less":   4,
}

// TopNiches is the allow-list the niche-match metric intersects against.
var TopNiches = []string{
	"fashion", "beauty", "food", "travel", "fitness",
	"tech", "gaming", "lifestyle", "education", "comedy",
}
