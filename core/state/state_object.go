package state

// Account is the persisted per-address data. Nonce starts at 0 and is
// incremented once per applied transaction; accounts are never deleted, so a
// drained account keeps its nonce history.
type Account struct {
	Balance uint64
	Nonce   uint64
}

// stateAccount represents an account which is being modified.
type stateAccount struct {
	address string
	data    Account
}

func newAccountObject(address string, data Account) *stateAccount {
	return &stateAccount{
		address: address,
		data:    data,
	}
}

func (s *stateAccount) Address() string {
	return s.address
}

func (s *stateAccount) Balance() uint64 {
	return s.data.Balance
}

func (s *stateAccount) Nonce() uint64 {
	return s.data.Nonce
}

func (s *stateAccount) SetBalance(amount uint64) {
	s.data.Balance = amount
}

func (s *stateAccount) AddBalance(amount uint64) {
	s.SetBalance(s.data.Balance + amount)
}

func (s *stateAccount) SubBalance(amount uint64) {
	s.SetBalance(s.data.Balance - amount)
}

func (s *stateAccount) SetNonce(nonce uint64) {
	s.data.Nonce = nonce
}
