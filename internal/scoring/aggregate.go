package scoring

import (
	"math"
	"time"

	"creatorscore/internal/domain"
)

// GradeTier maps a composite-score lower bound to a grade label.
type GradeTier struct {
	Bound float64
	Grade string
}

// GradeTiers is the composite grade ladder.
var GradeTiers = []GradeTier{
	{Bound: 75, Grade: "Strong"},
	{Bound: 50, Grade: "Good"},
	{Bound: 25, Grade: "Average"},
	{Bound: math.Inf(-1), Grade: "Weak"},
}

// GradeFor returns the grade label for a 0..100 composite score.
func GradeFor(score float64) string {
	for _, t := range GradeTiers {
		if score >= t.Bound {
			return t.Grade
		}
	}
	return GradeTiers[len(GradeTiers)-1].Grade
}

// aggregate joins the six category results into the composite report. The
// composite is the arithmetic mean: categories weigh equally, unlike the
// weighted sub-metrics inside each category. WeeklyDelta stays 0 until
// score-history storage exists.
func aggregate(profileID string, categories []domain.CategoryScore, sig *signals, now time.Time) *domain.ProfileScore {
	var sum float64
	for _, c := range categories {
		sum += c.Score
	}
	composite := round2(sum / float64(len(categories)))

	return &domain.ProfileScore{
		ProfileID:   profileID,
		Score:       composite,
		Grade:       GradeFor(composite),
		WeeklyDelta: 0,
		Categories:  categories,
		Summary:     buildSummary(sig.profile, composite, categories),
		ComputedAt:  now,
	}
}
