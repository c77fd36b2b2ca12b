// Package poi implements Proof-of-Importance: scoring nodes by measured
// network quality and deterministically selecting a block proposer from the
// scored pool.
package poi

import (
	"sort"

	mapset "github.com/deckarep/golang-set"
)

// NodeMetrics is one epoch's measurement record for a node, produced by an
// external measurement collaborator and consumed read-only here.
type NodeMetrics struct {
	NodeID           string  `json:"node_id"`
	UploadMbps       float64 `json:"upload_mbps"`
	DownloadMbps     float64 `json:"download_mbps"`
	LatencyMs        float64 `json:"latency_ms"`
	UptimePercent    float64 `json:"uptime_percent"`
	StabilityPercent float64 `json:"stability_percent"`
}

// Pool is the set of known nodes with their current epoch metrics. It is
// owned and passed explicitly by the caller; there is no process-wide pool.
// The caller must not mutate a pool while a selection over it is in flight.
type Pool struct {
	metrics map[string]*NodeMetrics
	nodes   mapset.Set
	sorted  *sortedIds
}

func NewPool() *Pool {
	return &Pool{
		metrics: make(map[string]*NodeMetrics),
		nodes:   mapset.NewSet(),
		sorted:  &sortedIds{},
	}
}

// NewPoolFromMetrics builds a pool from an epoch's metric records, keyed by
// NodeID.
func NewPoolFromMetrics(records []*NodeMetrics) *Pool {
	p := NewPool()
	for _, m := range records {
		p.Add(m)
	}
	return p
}

// Add inserts or replaces the metrics record of a node.
func (p *Pool) Add(m *NodeMetrics) {
	if _, ok := p.metrics[m.NodeID]; !ok {
		p.sorted.add(m.NodeID)
		p.nodes.Add(m.NodeID)
	}
	p.metrics[m.NodeID] = m
}

// Remove drops a node from the pool.
func (p *Pool) Remove(nodeID string) {
	if _, ok := p.metrics[nodeID]; !ok {
		return
	}
	delete(p.metrics, nodeID)
	p.sorted.remove(nodeID)
	p.nodes.Remove(nodeID)
}

// Get returns the metrics record of a node.
func (p *Pool) Get(nodeID string) (*NodeMetrics, bool) {
	m, ok := p.metrics[nodeID]
	return m, ok
}

func (p *Pool) Contains(nodeID string) bool {
	return p.nodes.Contains(nodeID)
}

func (p *Pool) Size() int {
	return len(p.metrics)
}

// SortedIDs returns the node ids in lexicographic byte order. Selection
// iterates in this order; map iteration order is never a source of
// consensus-visible behavior.
func (p *Pool) SortedIDs() []string {
	return append([]string(nil), p.sorted.list...)
}

// sortedIds keeps node ids ordered by lexicographic byte comparison.
type sortedIds struct {
	list []string
}

func (s *sortedIds) add(id string) {
	i := sort.SearchStrings(s.list, id)
	if i < len(s.list) && s.list[i] == id {
		return
	}
	s.list = append(s.list, "")
	copy(s.list[i+1:], s.list[i:])
	s.list[i] = id
}

func (s *sortedIds) remove(id string) {
	i := sort.SearchStrings(s.list, id)
	if i < len(s.list) && s.list[i] == id {
		copy(s.list[i:], s.list[i+1:])
		s.list = s.list[:len(s.list)-1]
	}
}
