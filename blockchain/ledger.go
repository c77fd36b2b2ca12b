// Package blockchain implements the ledger state-transition function:
// validating signed transactions against the account table and applying
// them. Block assembly, gossip and persistence live outside this module;
// callers feed transactions (or ordered batches) directly.
package blockchain

import (
	"time"

	"github.com/netchain-network/netchain-go/blockchain/types"
	"github.com/netchain-network/netchain-go/blockchain/validation"
	"github.com/netchain-network/netchain-go/core/state"
	"github.com/netchain-network/netchain-go/log"
)

// Ledger is the exclusive mutator of its StateDB. Mutating calls (ApplyTx,
// ApplyTxs) must be serialized by the caller; validation and reads are safe
// to run concurrently against a quiescent state.
type Ledger struct {
	appState *state.StateDB

	log    log.Logger
	txslog log.ThrottlingLogger
}

func NewLedger(appState *state.StateDB) *Ledger {
	l := log.New("component", "ledger")
	return &Ledger{
		appState: appState,
		log:      l,
		txslog:   log.NewThrottlingLogger(l),
	}
}

func (l *Ledger) State() *state.StateDB {
	return l.appState
}

// ValidateTx checks tx against the current state without mutating it.
func (l *Ledger) ValidateTx(tx *types.SignedTransaction) error {
	return validation.ValidateTx(l.appState, tx)
}

// ApplyTx validates and applies a single transaction: the sender is debited
// amount+fee and its nonce incremented, the receiver credited with amount.
// The fee leaves circulation as far as this core is concerned; crediting it
// to a proposer or burn address is a block-assembly responsibility.
func (l *Ledger) ApplyTx(tx *types.SignedTransaction) error {
	if err := validation.ValidateTx(l.appState, tx); err != nil {
		rejectedTxsCounter.Inc(1)
		l.txslog.Debug("tx rejected", "hash", tx.HashHex(), "err", err)
		return err
	}

	l.applyOnState(l.appState, tx)

	appliedTxsCounter.Inc(1)
	burntFeesCounter.Inc(int64(tx.Tx.Fee))
	l.log.Debug("tx applied", "hash", tx.HashHex(), "from", tx.Tx.Sender, "to", tx.Tx.Receiver,
		"amount", tx.Tx.Amount, "fee", tx.Tx.Fee)
	return nil
}

// ApplyTxs applies an ordered batch all-or-nothing: the whole sequence is
// first validated and applied on a scratch copy of the state, and only if
// every transaction passes is it replayed on the live state. On the first
// failure the live state is untouched.
func (l *Ledger) ApplyTxs(txs []*types.SignedTransaction) error {
	defer appliedBatchTimer.UpdateSince(time.Now())

	check := l.appState.ForCheck()
	for _, tx := range txs {
		if err := validation.ValidateTx(check, tx); err != nil {
			rejectedTxsCounter.Inc(1)
			l.txslog.Warn("batch rejected", "hash", tx.HashHex(), "err", err)
			return err
		}
		l.applyOnState(check, tx)
	}

	for _, tx := range txs {
		l.applyOnState(l.appState, tx)
		appliedTxsCounter.Inc(1)
		burntFeesCounter.Inc(int64(tx.Tx.Fee))
	}
	l.log.Debug("batch applied", "txs", len(txs))
	return nil
}

// applyOnState performs the mutation after validation has passed. The cost
// cannot overflow here: validation already checked amount+fee.
func (l *Ledger) applyOnState(appState *state.StateDB, tx *types.SignedTransaction) {
	t := tx.Tx
	appState.SubBalance(t.Sender, t.Amount+t.Fee)
	appState.IncNonce(t.Sender)
	appState.AddBalance(t.Receiver, t.Amount)
}
