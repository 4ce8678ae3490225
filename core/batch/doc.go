// Package batch provides chunking of large key sets into bounded-size
// batches for query-size-limited lookups.
//
// The chunk size is always supplied by the caller; each consumer picks
// the size that its target table tolerates (registry reconciliation uses
// 400, debt aggregation 500, coordinate lookup 1000).
package batch
