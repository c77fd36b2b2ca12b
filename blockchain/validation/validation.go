// Package validation holds the transaction admission rules of the ledger.
// Every check is read-only; state mutation happens in blockchain.Ledger only
// after the full rule set has passed.
package validation

import (
	"math/bits"

	"github.com/netchain-network/netchain-go/blockchain/types"
	"github.com/netchain-network/netchain-go/core/state"
	"github.com/pkg/errors"
)

var (
	InvalidSignature    = errors.New("invalid signature")
	ZeroAmount          = errors.New("amount can't be zero")
	SenderNotFound      = errors.New("sender account does not exist")
	InvalidNonce        = errors.New("invalid nonce")
	InsufficientBalance = errors.New("insufficient balance")
)

// ValidateTx checks a signed transaction against the current state without
// mutating it. Checks run in a fixed order; the first failure wins:
// signature, amount, sender existence, nonce, balance.
func ValidateTx(appState *state.StateDB, tx *types.SignedTransaction) error {
	if err := tx.Verify(); err != nil {
		return InvalidSignature
	}

	if tx.Tx.Amount == 0 {
		return ZeroAmount
	}

	sender, ok := appState.GetAccount(tx.Tx.Sender)
	if !ok {
		return SenderNotFound
	}

	// strict equality: replays and future nonces are both rejected,
	// nothing is queued
	if tx.Tx.AccountNonce != sender.Nonce {
		return InvalidNonce
	}

	cost, carry := bits.Add64(tx.Tx.Amount, tx.Tx.Fee, 0)
	if carry != 0 {
		// amount+fee overflows the integer domain; no balance can cover it
		return InsufficientBalance
	}
	if sender.Balance < cost {
		return InsufficientBalance
	}

	return nil
}
