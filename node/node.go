// Package node assembles the core components: genesis state, ledger and the
// PoI scoring/selection engine. Transport, persistence and the block loop
// are external concerns and are not wired here.
package node

import (
	"github.com/netchain-network/netchain-go/blockchain"
	"github.com/netchain-network/netchain-go/config"
	"github.com/netchain-network/netchain-go/core/poi"
	"github.com/netchain-network/netchain-go/core/state"
	"github.com/netchain-network/netchain-go/log"
	"github.com/pkg/errors"
)

type Node struct {
	config   *config.Config
	ledger   *blockchain.Ledger
	scorer   *poi.Scorer
	selector *poi.Selector
	pool     *poi.Pool
	epoch    uint64

	log log.Logger
}

func NewNode(cfg *config.Config) (*Node, error) {
	alloc, err := cfg.GenesisConf.BaseUnitsAlloc()
	if err != nil {
		return nil, errors.Wrap(err, "invalid genesis allocation")
	}

	scorer := poi.NewScorer(cfg.PoI)
	return &Node{
		config:   cfg,
		ledger:   blockchain.NewLedger(state.NewWithAlloc(alloc)),
		scorer:   scorer,
		selector: poi.NewSelector(scorer),
		pool:     poi.NewPool(),
		epoch:    cfg.Epoch,
		log:      log.New("component", "node"),
	}, nil
}

func (n *Node) Ledger() *blockchain.Ledger {
	return n.ledger
}

func (n *Node) Scorer() *poi.Scorer {
	return n.scorer
}

func (n *Node) Epoch() uint64 {
	return n.epoch
}

// SetEpochMetrics replaces the metrics pool wholesale with the new epoch's
// measurement records and advances the epoch counter.
func (n *Node) SetEpochMetrics(records []*poi.NodeMetrics) map[string]float64 {
	n.pool = poi.NewPoolFromMetrics(records)
	n.epoch++
	scores := n.scorer.UpdateEpoch(n.pool)
	n.log.Info("epoch metrics updated", "epoch", n.epoch, "nodes", n.pool.Size())
	return scores
}

// SelectProposer runs the deterministic lottery for the current epoch,
// seeded by the previous block hash.
func (n *Node) SelectProposer(previousBlockHash []byte) (string, error) {
	seed := poi.DeriveSeed(previousBlockHash, n.epoch)
	winner, err := n.selector.SelectValidator(n.pool, seed)
	if err != nil {
		return "", err
	}
	n.log.Info("proposer selected", "epoch", n.epoch, "seed", seed.Hex(), "proposer", winner)
	return winner, nil
}

func (n *Node) Start() {
	n.log.Info("netchain core initialized",
		"epoch", n.epoch,
		"accounts", len(n.ledger.State().Addresses()),
		"supply", n.ledger.State().TotalBalance())
}
