package scoring

import (
	"fmt"
	"strings"

	"creatorscore/internal/domain"
)

var categoryTitles = map[domain.Category]string{
	domain.CategoryAudienceQuality:    "Audience Quality",
	domain.CategoryContentRelevance:   "Content Relevance",
	domain.CategoryContentQuality:     "Content Quality",
	domain.CategoryEngagementStrength: "Engagement Strength",
	domain.CategoryGrowthMomentum:     "Growth Momentum",
	domain.CategoryMonetisation:       "Monetisation",
}

var improvementHints = map[domain.Category]string{
	domain.CategoryAudienceQuality:    "growing an audience in the target market would lift it",
	domain.CategoryContentRelevance:   "leaning into trending formats and niches would lift it",
	domain.CategoryContentQuality:     "more consistent production quality would lift it",
	domain.CategoryEngagementStrength: "steadier engagement across posts would lift it",
	domain.CategoryGrowthMomentum:     "a more regular posting cadence would lift it",
	domain.CategoryMonetisation:       "clearer brand-fit signals would lift it",
}

// buildSummary derives the short human-readable explanation from the
// computed numbers. Deterministic for fixed inputs: ties resolve by report
// order.
func buildSummary(profile *domain.Profile, composite float64, categories []domain.CategoryScore) string {
	if len(categories) == 0 {
		return ""
	}

	best, worst := categories[0], categories[0]
	for _, c := range categories[1:] {
		if c.Score > best.Score {
			best = c
		}
		if c.Score < worst.Score {
			worst = c
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "@%s scores %.0f/100 (%s).", profile.Username, composite, GradeFor(composite))
	fmt.Fprintf(&b, " %s is the strongest area at %.0f.", categoryTitles[best.Category], best.Score)
	if worst.Category != best.Category {
		fmt.Fprintf(&b, " %s trails at %.0f; %s.",
			categoryTitles[worst.Category], worst.Score, improvementHints[worst.Category])
	}
	return b.String()
}
