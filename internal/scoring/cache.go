package scoring

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"creatorscore/internal/domain"
	"creatorscore/internal/providers/ai"
)

// Gate decides whether an AI judgment is served from the snapshot's cache or
// computed fresh against the provider. The validity key is the snapshot id
// plus the cache generation timestamp; a judgment cached on the latest
// snapshot stays valid until the next snapshot replaces it.
//
// The gate never writes back. One-time cache population of the next snapshot
// belongs to the surrounding platform. Concurrent requests for the same
// profile may both miss and issue duplicate provider calls; the computations
// are idempotent so the duplication is accepted.
type Gate struct {
	analyzer ai.Analyzer
	timeout  time.Duration
	log      zerolog.Logger
}

// NewGate constructs the cache gate.
func NewGate(analyzer ai.Analyzer, timeout time.Duration, log zerolog.Logger) *Gate {
	if timeout <= 0 {
		timeout = 12 * time.Second
	}
	return &Gate{analyzer: analyzer, timeout: timeout, log: log}
}

// insight resolves one AI-backed metric. The cached value wins when the
// snapshot carries one; otherwise compute runs under the gate's timeout. A
// missing, failing or unavailable provider resolves to fallback and the
// second return value reports false so the calculator can attach its
// degradation message.
func insight[T any](
	ctx context.Context,
	g *Gate,
	snap *domain.Snapshot,
	metric string,
	cached func(*domain.AIInsights) (T, bool),
	compute func(context.Context, ai.Analyzer) (T, error),
	fallback T,
) (T, bool) {
	if snap != nil && snap.AI != nil {
		if v, ok := cached(snap.AI); ok {
			g.log.Debug().
				Str("metric", metric).
				Str("snapshot_id", snap.ID).
				Time("generated_at", snap.AI.GeneratedAt).
				Msg("ai cache hit")
			return v, true
		}
	}

	if g.analyzer == nil || !g.analyzer.Available() {
		g.log.Debug().Str("metric", metric).Msg("ai unavailable, applying fallback")
		return fallback, false
	}

	g.log.Debug().Str("metric", metric).Msg("ai cache miss")
	cctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	v, err := compute(cctx, g.analyzer)
	if err != nil {
		g.log.Warn().Err(err).Str("metric", metric).Msg("ai call failed, applying fallback")
		return fallback, false
	}
	return v, true
}
