// Package poitest provides a stochastic validator selector for local
// experimentation and simulation. It must never be wired into the consensus
// path: production code imports core/poi only, and nothing in core/poi
// depends on this package, so the non-deterministic variant cannot be
// substituted for the seeded lottery by accident.
package poitest

import (
	"math/rand"

	"github.com/netchain-network/netchain-go/core/poi"
)

// RandomSelector draws the lottery target from an injected random source
// instead of a consensus seed. Identical weighting and tie-break rules to
// the deterministic selector.
type RandomSelector struct {
	scorer *poi.Scorer
	rnd    *rand.Rand
}

func NewRandomSelector(scorer *poi.Scorer, rnd *rand.Rand) *RandomSelector {
	return &RandomSelector{scorer: scorer, rnd: rnd}
}

// SelectValidator picks a node with probability proportional to its score.
// With an all-zero pool it falls back to the first id in sorted order.
func (s *RandomSelector) SelectValidator(pool *poi.Pool) (string, error) {
	if pool.Size() == 0 {
		return "", poi.EmptyPool
	}

	ids := pool.SortedIDs()

	cum := make([]float64, len(ids))
	totalWeight := 0.0
	for i, id := range ids {
		m, _ := pool.Get(id)
		totalWeight += s.scorer.Score(m)
		cum[i] = totalWeight
	}

	if totalWeight == 0 {
		return ids[0], nil
	}

	target := s.rnd.Float64() * totalWeight
	for i, c := range cum {
		if target < c {
			return ids[i], nil
		}
	}
	return ids[len(ids)-1], nil
}
