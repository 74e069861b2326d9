// SPDX-License-Identifier: MIT

// Package enginesim drives a toy engine model from an ignition timing
// table, the demo workload for lookup tables.
//
// DefaultTimingTable builds a 12×12 map over rpm and manifold pressure;
// LoadOrCreate persists it on first use. An Engine reads advance values
// from the table with bilinear Lookup and feeds them back into rpm and
// manifold pressure:
//
//	tbl, _, err := enginesim.LoadOrCreate("timing.tbl")
//	eng, err := enginesim.NewEngine(tbl, enginesim.WithMaxSteps(100))
//	err = eng.Run(ctx)
//
// Run paces steps with a ticker (WithInterval) and stops on MaxSteps or
// context cancellation. Logging goes through zap (WithLogger); each engine
// tags its entries with a random run_id.
package enginesim
