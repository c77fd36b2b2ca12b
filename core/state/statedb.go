// Package state holds the account table of the ledger: balances and nonces
// keyed by opaque address strings. StateDB is a plain in-memory table; all
// transaction-level rules live in blockchain/validation and the exclusive
// mutator is blockchain.Ledger.
package state

import (
	"sort"
	"sync"

	"github.com/netchain-network/netchain-go/log"
)

// StateDB owns all accounts. Mutating calls must be serialized by the
// caller (single-writer discipline); readers may run concurrently with each
// other and observe either the pre- or post-state of an in-flight mutation,
// never a partially applied transaction.
type StateDB struct {
	accounts map[string]*stateAccount

	log  log.Logger
	lock sync.RWMutex
}

func NewStateDB() *StateDB {
	return &StateDB{
		accounts: make(map[string]*stateAccount),
		log:      log.New("component", "state"),
	}
}

// NewWithAlloc creates a state pre-populated with genesis balances. Each
// allocated account starts with nonce 0.
func NewWithAlloc(alloc map[string]uint64) *StateDB {
	s := NewStateDB()
	for addr, balance := range alloc {
		s.accounts[addr] = newAccountObject(addr, Account{Balance: balance})
	}
	return s
}

// GetBalance returns the balance of addr or 0 if the account does not exist.
func (s *StateDB) GetBalance(addr string) uint64 {
	s.lock.RLock()
	defer s.lock.RUnlock()

	if obj, ok := s.accounts[addr]; ok {
		return obj.Balance()
	}
	return 0
}

// GetNonce returns the nonce of addr or 0 if the account does not exist.
func (s *StateDB) GetNonce(addr string) uint64 {
	s.lock.RLock()
	defer s.lock.RUnlock()

	if obj, ok := s.accounts[addr]; ok {
		return obj.Nonce()
	}
	return 0
}

// Exists reports whether addr has ever been explicitly created, via genesis
// allocation or a prior credit. A zero implicit balance is not an account.
func (s *StateDB) Exists(addr string) bool {
	s.lock.RLock()
	defer s.lock.RUnlock()

	_, ok := s.accounts[addr]
	return ok
}

// GetAccount returns a copy of the account data of addr.
func (s *StateDB) GetAccount(addr string) (Account, bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	if obj, ok := s.accounts[addr]; ok {
		return obj.data, true
	}
	return Account{}, false
}

// AddBalance credits addr with amount, creating the account with balance 0
// first if absent.
func (s *StateDB) AddBalance(addr string, amount uint64) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.getOrNewAccountObject(addr).AddBalance(amount)
}

// SubBalance debits addr by amount. The caller must have checked the balance
// beforehand; debiting a missing or underfunded account is a programming
// error and is logged, not applied.
func (s *StateDB) SubBalance(addr string, amount uint64) {
	s.lock.Lock()
	defer s.lock.Unlock()

	obj, ok := s.accounts[addr]
	if !ok || obj.Balance() < amount {
		s.log.Error("refusing unchecked debit", "addr", addr, "amount", amount)
		return
	}
	obj.SubBalance(amount)
}

func (s *StateDB) SetNonce(addr string, nonce uint64) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.getOrNewAccountObject(addr).SetNonce(nonce)
}

// IncNonce increments the nonce of an existing account by 1.
func (s *StateDB) IncNonce(addr string) {
	s.lock.Lock()
	defer s.lock.Unlock()

	obj, ok := s.accounts[addr]
	if !ok {
		s.log.Error("refusing nonce bump of missing account", "addr", addr)
		return
	}
	obj.SetNonce(obj.Nonce() + 1)
}

// TotalBalance sums every account balance. The sum decreases by exactly the
// paid fee on each applied transaction; nothing in this core re-credits it.
func (s *StateDB) TotalBalance() uint64 {
	s.lock.RLock()
	defer s.lock.RUnlock()

	var total uint64
	for _, obj := range s.accounts {
		total += obj.Balance()
	}
	return total
}

// Addresses returns all known account addresses in lexicographic order.
func (s *StateDB) Addresses() []string {
	s.lock.RLock()
	defer s.lock.RUnlock()

	addrs := make([]string, 0, len(s.accounts))
	for addr := range s.accounts {
		addrs = append(addrs, addr)
	}
	sort.Strings(addrs)
	return addrs
}

// ForCheck returns a deep copy of the state for scratch validation runs.
// Batch application dry-runs the whole sequence on the copy before touching
// the live state.
func (s *StateDB) ForCheck() *StateDB {
	s.lock.RLock()
	defer s.lock.RUnlock()

	cpy := NewStateDB()
	for addr, obj := range s.accounts {
		cpy.accounts[addr] = newAccountObject(addr, obj.data)
	}
	return cpy
}

func (s *StateDB) getOrNewAccountObject(addr string) *stateAccount {
	if obj, ok := s.accounts[addr]; ok {
		return obj
	}
	obj := newAccountObject(addr, Account{})
	s.accounts[addr] = obj
	return obj
}
