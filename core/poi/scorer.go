package poi

import (
	"math"

	"github.com/netchain-network/netchain-go/config"
)

// Scorer maps raw node metrics to a normalized importance score in [0, 1].
// Scoring is pure and total: every input produces a score in range, with no
// error conditions. The config is immutable for the epoch.
type Scorer struct {
	conf *config.PoiConfig
}

func NewScorer(conf *config.PoiConfig) *Scorer {
	return &Scorer{conf: conf}
}

// normalize maps value/max into [0, 1]. A non-positive max disables the
// factor. NaN and negative values clamp to 0 so a poisoned metric can never
// produce an out-of-range or non-deterministic score.
func normalize(value, max float64) float64 {
	if max <= 0 {
		return 0
	}
	n := value / max
	if math.IsNaN(n) || n < 0 {
		return 0
	}
	if n > 1 {
		return 1
	}
	return n
}

// invertNormalize is normalize for lower-is-better metrics such as latency.
// A NaN reading contributes 0 here too; without the check it would invert
// into a perfect factor.
func invertNormalize(value, max float64) float64 {
	if math.IsNaN(value) {
		return 0
	}
	return 1 - normalize(value, max)
}

// scoreScale fixes the score resolution at nine decimal places. The raw
// float sum of a weight set that adds up to 1 falls one ulp short of 1.0
// for a node at every threshold; rounding restores the exact endpoint.
const scoreScale = 1e9

// Score computes the importance score of a node. The weighted sum runs in a
// fixed term order (upload, download, latency, uptime, stability): float
// summation is not associative and the order is consensus-visible. The
// result is rounded at scoreScale and clamped to [0, 1] regardless of
// whether the weights sum to 1.
func (s *Scorer) Score(m *NodeMetrics) float64 {
	w, t := s.conf.Weights, s.conf.Thresholds

	score := w.Upload*normalize(m.UploadMbps, t.UploadMbps) +
		w.Download*normalize(m.DownloadMbps, t.DownloadMbps) +
		w.Latency*invertNormalize(m.LatencyMs, t.LatencyMs) +
		w.Uptime*normalize(m.UptimePercent, t.UptimePercent) +
		w.Stability*normalize(m.StabilityPercent, t.StabilityPercent)

	score = math.Round(score*scoreScale) / scoreScale

	if math.IsNaN(score) || score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

// UpdateEpoch rescores every node in the pool against the current config.
// The pool itself is not mutated; callers replace the pool wholesale when a
// new epoch's measurements arrive.
func (s *Scorer) UpdateEpoch(pool *Pool) map[string]float64 {
	scores := make(map[string]float64, pool.Size())
	for _, id := range pool.SortedIDs() {
		m, _ := pool.Get(id)
		scores[id] = s.Score(m)
	}
	return scores
}
