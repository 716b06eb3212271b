package scoring

import (
	"fmt"

	"creatorscore/internal/domain"
)

// Audience Quality: follower authenticity 65%, demographics stability 20%,
// geo relevance 15%.
func (e *Engine) scoreAudienceQuality(sig *signals) domain.CategoryScore {
	metrics := []domain.Metric{
		e.followerAuthenticity(sig),
		e.demographicsStability(sig),
		e.geoRelevance(sig),
	}
	return finalize(domain.CategoryAudienceQuality, metrics)
}

// followerAuthenticity scores 25%+ active followers as full. When the
// platform API cannot report authenticity there is no negative evidence, so
// the metric awards full trust.
func (e *Engine) followerAuthenticity(sig *signals) domain.Metric {
	m := domain.Metric{Name: "follower_authenticity", Weight: 65}

	if sig.snapshot == nil || sig.snapshot.AuthenticityPct == nil {
		m.Score = 10
		m.Detail = domain.AuthenticityDetail{Reported: false}
		m.Message = "authenticity not reported by the platform; full trust assumed"
		return m
	}

	pct := *sig.snapshot.AuthenticityPct
	m.Score = round2(clamp(pct/25*10, 0, 10))
	m.Detail = domain.AuthenticityDetail{Reported: true, AuthenticityPct: pct}
	return m
}

// demographicsStability measures how much the age/gender breakdowns move
// across analyzed snapshots. A profile without enough history cannot be
// penalized yet and scores full.
func (e *Engine) demographicsStability(sig *signals) domain.Metric {
	m := domain.Metric{Name: "demographics_stability", Weight: 20}

	var history []domain.Snapshot
	for _, snap := range sig.history {
		if snap.HasDemographics() {
			history = append(history, snap)
		}
	}
	if len(history) < 2 {
		m.Score = 10
		m.Detail = domain.StabilityDetail{SnapshotsUsed: len(history)}
		m.Message = "not enough demographic history to assess stability"
		return m
	}

	segments := make(map[string][]float64)
	for _, snap := range history {
		for _, s := range snap.Demographics.Age {
			segments["age:"+s.Label] = append(segments["age:"+s.Label], s.Pct)
		}
		for _, s := range snap.Demographics.Gender {
			segments["gender:"+s.Label] = append(segments["gender:"+s.Label], s.Pct)
		}
	}

	var sum float64
	var counted int
	for _, values := range segments {
		if len(values) < 2 {
			continue
		}
		// Normalize the per-segment deviation into [0,1].
		sum += clamp(stdDev(values)/10, 0, 1)
		counted++
	}

	varianceIndex := 0.0
	if counted > 0 {
		varianceIndex = sum / float64(counted)
	}
	m.Score = round2((1 - varianceIndex) * 10)
	m.Detail = domain.StabilityDetail{SnapshotsUsed: len(history), VarianceIndex: round2(varianceIndex)}
	return m
}

// geoRelevance scores the audience share located in the target country.
func (e *Engine) geoRelevance(sig *signals) domain.Metric {
	m := domain.Metric{Name: "geo_relevance", Weight: 15}

	detail := domain.GeoDetail{
		TargetCountry: sig.targetCountry,
		PageConnected: sig.snapshot.PageConnected(),
	}
	if sig.snapshot == nil || len(sig.snapshot.Demographics.Country) == 0 {
		m.Detail = detail
		m.Message = "no geographic audience data"
		return m
	}

	for _, s := range sig.snapshot.Demographics.Country {
		if s.Label == sig.targetCountry {
			detail.AudiencePct = s.Pct
			break
		}
	}
	m.Score = round2(clamp(detail.AudiencePct/100*10, 0, 10))
	m.Detail = detail
	if detail.AudiencePct == 0 {
		m.Message = fmt.Sprintf("no audience reported in %s", sig.targetCountry)
	}
	return m
}
