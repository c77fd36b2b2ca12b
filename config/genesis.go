package config

import (
	"github.com/netchain-network/netchain-go/common/math"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// GenesisConf describes the initial ledger allocation. Amounts are whole
// coins in decimal string form; they are converted to uint64 base units when
// the state is built.
type GenesisConf struct {
	Alloc map[string]string `json:"alloc"`
}

// BaseUnitsAlloc converts the allocation into ledger base units.
func (g *GenesisConf) BaseUnitsAlloc() (map[string]uint64, error) {
	alloc := make(map[string]uint64, len(g.Alloc))
	for addr, amount := range g.Alloc {
		d, err := decimal.NewFromString(amount)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid genesis amount for %s", addr)
		}
		units, err := math.ToBaseUnits(d)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid genesis amount for %s", addr)
		}
		alloc[addr] = units
	}
	return alloc, nil
}
