package blockchain

import (
	"github.com/rcrowley/go-metrics"
)

var (
	appliedTxsCounter  = metrics.GetOrRegisterCounter("ledger/txs/applied", metrics.DefaultRegistry)
	rejectedTxsCounter = metrics.GetOrRegisterCounter("ledger/txs/rejected", metrics.DefaultRegistry)
	burntFeesCounter   = metrics.GetOrRegisterCounter("ledger/fees/burnt", metrics.DefaultRegistry)
	appliedBatchTimer  = metrics.GetOrRegisterTimer("ledger/batch/apply", metrics.DefaultRegistry)
)
