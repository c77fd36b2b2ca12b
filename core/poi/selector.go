package poi

import (
	"time"

	"github.com/netchain-network/netchain-go/log"
	"github.com/pkg/errors"
	"github.com/rcrowley/go-metrics"
)

var (
	EmptyPool = errors.New("validator pool is empty")

	selectionTimer = metrics.GetOrRegisterTimer("poi/selection", metrics.DefaultRegistry)
)

// floatEpsilon is the double-precision machine epsilon; cumulative totals at
// or below it are treated as an all-zero pool.
const floatEpsilon = 2.220446049250313e-16

// Selector runs the deterministic weighted lottery over a scored pool. This
// is the only selection mode permitted on the consensus path; the stochastic
// variant lives in the poitest subpackage and nothing here reaches it.
type Selector struct {
	scorer *Scorer
	log    log.Logger
}

func NewSelector(scorer *Scorer) *Selector {
	return &Selector{
		scorer: scorer,
		log:    log.New("component", "poi"),
	}
}

// SelectValidator picks the proposer for the round parameterized by seed.
// The cumulative weight sequence is built over node ids in lexicographic
// byte order; ids, not map iteration, define the order. If the total weight
// is zero the winner is sorted(ids)[seed mod n], so the pick stays
// deterministic even when every node scores zero.
func (s *Selector) SelectValidator(pool *Pool, seed Seed) (string, error) {
	defer selectionTimer.UpdateSince(time.Now())

	if pool.Size() == 0 {
		return "", EmptyPool
	}

	ids := pool.SortedIDs()

	cum := make([]float64, len(ids))
	totalWeight := 0.0
	for i, id := range ids {
		m, _ := pool.Get(id)
		totalWeight += s.scorer.Score(m)
		cum[i] = totalWeight
	}

	if totalWeight <= floatEpsilon {
		winner := ids[seed.Mod(len(ids))]
		s.log.Debug("zero-weight fallback pick", "winner", winner, "pool", len(ids))
		return winner, nil
	}

	target := seed.Fraction() * totalWeight

	// first node whose cumulative weight strictly exceeds the target; a
	// target exactly on a boundary resolves to the next node on every
	// implementation the same way
	for i, c := range cum {
		if target < c {
			return ids[i], nil
		}
	}

	// float rounding can leave target at or above the last cumulative
	// value; the final node owns the remainder of the interval
	return ids[len(ids)-1], nil
}
