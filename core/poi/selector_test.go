package poi

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func seedFromUint64s(hi, lo uint64) Seed {
	var s Seed
	binary.BigEndian.PutUint64(s[:8], hi)
	binary.BigEndian.PutUint64(s[8:], lo)
	return s
}

func testPool() *Pool {
	return NewPoolFromMetrics([]*NodeMetrics{
		{NodeID: "A", UploadMbps: 90, DownloadMbps: 900, LatencyMs: 5, UptimePercent: 99.9, StabilityPercent: 99.9},
		{NodeID: "B", UploadMbps: 40, DownloadMbps: 400, LatencyMs: 50, UptimePercent: 98, StabilityPercent: 97},
		{NodeID: "C", UploadMbps: 1, DownloadMbps: 10, LatencyMs: 180, UptimePercent: 80, StabilityPercent: 70},
	})
}

func TestSelector_Deterministic(t *testing.T) {
	require := require.New(t)
	selector := NewSelector(testScorer())
	pool := testPool()

	seed := seedFromUint64s(0, 0x123456789abcdef0)
	first, err := selector.SelectValidator(pool, seed)
	require.NoError(err)

	for i := 0; i < 20; i++ {
		winner, err := selector.SelectValidator(pool, seed)
		require.NoError(err)
		require.Equal(first, winner)
	}
}

func TestSelector_InsertionOrderIrrelevant(t *testing.T) {
	require := require.New(t)
	selector := NewSelector(testScorer())

	reversed := NewPool()
	for _, id := range []string{"C", "B", "A"} {
		m, _ := testPool().Get(id)
		reversed.Add(m)
	}

	seed := seedFromUint64s(0xdead000000000000, 0xbeef)
	w1, err := selector.SelectValidator(testPool(), seed)
	require.NoError(err)
	w2, err := selector.SelectValidator(reversed, seed)
	require.NoError(err)
	require.Equal(w1, w2)
}

// Golden picks: the cumulative interval over sorted ids (A, B, C) with the
// default config is [0, 0.9447), [0.9447, 1.5877), [1.5877, 1.8427).
func TestSelector_GoldenPicks(t *testing.T) {
	require := require.New(t)
	selector := NewSelector(testScorer())
	pool := testPool()

	cases := []struct {
		name   string
		seed   Seed
		winner string
	}{
		// tiny fraction lands in A's interval
		{"low seed", seedFromUint64s(0, 0x123456789abcdef0), "A"},
		// fraction 0.5 → target 0.92135 < 0.9447
		{"half range", seedFromUint64s(0x8000000000000000, 0), "A"},
		// fraction 0.7 → target 1.28989, inside B's interval
		{"upper middle", seedFromUint64s(0xb333333333333000, 0), "B"},
		// fraction ≈0.87 → target past A+B, lands in C
		{"high seed", seedFromUint64s(0xdead000000000000, 0xbeef), "C"},
	}
	for _, c := range cases {
		winner, err := selector.SelectValidator(pool, c.seed)
		require.NoError(err, c.name)
		require.Equal(c.winner, winner, c.name)
	}
}

func TestSelector_BoundaryTieGoesToNextNode(t *testing.T) {
	require := require.New(t)
	selector := NewSelector(testScorer())

	// identical metrics ⇒ identical scores s; fraction 1/2 makes the
	// target exactly s, the first node's cumulative weight. Strict
	// comparison hands the pick to the second node.
	m := NodeMetrics{UploadMbps: 40, DownloadMbps: 400, LatencyMs: 50, UptimePercent: 98, StabilityPercent: 97}
	a, b := m, m
	a.NodeID, b.NodeID = "a", "b"
	pool := NewPoolFromMetrics([]*NodeMetrics{&a, &b})

	winner, err := selector.SelectValidator(pool, seedFromUint64s(0x8000000000000000, 0))
	require.NoError(err)
	require.Equal("b", winner)
}

func TestSelector_ZeroWeightFallback(t *testing.T) {
	require := require.New(t)

	// metrics at or past the latency threshold with everything else zero
	// score exactly 0 under the default config
	pool := NewPoolFromMetrics([]*NodeMetrics{
		{NodeID: "x", LatencyMs: 1000},
		{NodeID: "y", LatencyMs: 1000},
	})
	selector := NewSelector(testScorer())

	winner, err := selector.SelectValidator(pool, seedFromUint64s(0, 42))
	require.NoError(err)
	require.Equal("x", winner) // 42 mod 2 == 0 → sorted(ids)[0]

	pool.Add(&NodeMetrics{NodeID: "w", LatencyMs: 1000})
	winner, err = selector.SelectValidator(pool, seedFromUint64s(0, 43))
	require.NoError(err)
	require.Equal("x", winner) // 43 mod 3 == 1 → sorted(ids)[1] of [w x y]
}

func TestSelector_EmptyPool(t *testing.T) {
	selector := NewSelector(testScorer())
	_, err := selector.SelectValidator(NewPool(), seedFromUint64s(0, 1))
	require.Equal(t, EmptyPool, err)
}

func TestPool_Membership(t *testing.T) {
	require := require.New(t)

	pool := testPool()
	require.True(pool.Contains("A"))
	require.False(pool.Contains("Z"))
	require.Equal(3, pool.Size())
	require.Equal([]string{"A", "B", "C"}, pool.SortedIDs())

	pool.Remove("B")
	require.False(pool.Contains("B"))
	require.Equal([]string{"A", "C"}, pool.SortedIDs())

	// replacing a record does not duplicate the id
	pool.Add(&NodeMetrics{NodeID: "A", UploadMbps: 1})
	require.Equal([]string{"A", "C"}, pool.SortedIDs())
	m, _ := pool.Get("A")
	require.Equal(1.0, m.UploadMbps)
}
