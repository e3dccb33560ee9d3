// Package binit aligns and bins one-dimensional timestamp sequences against
// a reference sequence of event times or bin edges. It answers two questions
// for every input timestamp: how long after (or before) the nearest reference
// event did it occur, and which discrete time bin does it belong to.
//
// Typical usage looks like:
//   - Align spike or log timestamps to trial starts with Align, optionally
//     attributing timestamps shortly before an event to that event (Lookback)
//     and discarding stragglers (MaxLatency)
//   - Map timestamps onto bin edges with WhichBin or WhichBinIndex
//   - Collect per-bin latency groups with GroupByBin
//   - Count occurrences in fixed windows around events with CountAroundEvents,
//     or against explicit edges with BinCounts and BinRegular
//
// All operations are pure: they allocate fresh outputs, never mutate their
// inputs, and hold no package state, so they may be called from any number of
// goroutines without coordination. Missing results are reported as NaN (or
// NoBin for integer indices), never silently coerced to zero.
//
// The examples/ directory contains a runnable peristimulus histogram workflow
// that exercises the API in a small domain.
package binit
