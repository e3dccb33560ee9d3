package binit

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// WhichBin returns, for each timestamp, the edge value of the bin it falls
// into, where an edge at e opens the half-open interval [e, next edge). A
// timestamp attaching to no bin under opt yields NaN.
//
// binEdges must be sorted ascending and non-empty; this mirrors Align, with
// opt.MaxLatency bounding how far past its edge a timestamp may occur and
// opt.Lookback admitting timestamps shortly before an edge into that bin
func WhichBin(timestamps, binEdges any, opt BinOptions) (Series, error) {
	ts, edges, err := alignable(timestamps, binEdges)
	if err != nil {
		return nil, err
	}
	res := make(Series, len(ts))
	for i, j := range assignBins(ts, edges, opt) {
		if j == NoBin {
			res[i] = math.NaN()
			continue
		}
		res[i] = edges[j]
	}
	return res, nil
}

// WhichBinIndex is WhichBin reporting zero-based edge indices, with NoBin in
// place of NaN
func WhichBinIndex(timestamps, binEdges any, opt BinOptions) ([]int, error) {
	ts, edges, err := alignable(timestamps, binEdges)
	if err != nil {
		return nil, err
	}
	return assignBins(ts, edges, opt), nil
}

// assignBins resolves each timestamp to an edge index via the alignment
// core, then voids assignments whose latency exceeds the cutoff
func assignBins(ts, edges Series, opt BinOptions) []int {
	res := alignIndex(ts, edges, opt.Lookback)
	if opt.MaxLatency > 0 {
		for i, j := range res {
			if j != NoBin && ts[i]-edges[j] > opt.MaxLatency {
				res[i] = NoBin
			}
		}
	}
	return res
}

// CountAroundEvents returns, for each event, how many timestamps fall in the
// half-open window [event, event+windowSize). Overlapping windows are counted
// independently, so a timestamp contributes to every window containing it
func CountAroundEvents(
	timestamps, eventTimes any, windowSize float64,
) ([]int, error) {
	ts, events, err := coercePair(timestamps, eventTimes)
	if err != nil {
		return nil, err
	}
	if windowSize <= 0 {
		return nil, fmt.Errorf(
			"%w: window size must be positive, got %v",
			ErrInvalidArgument, windowSize,
		)
	}

	sorted := append(Series{}, ts...)
	sort.Float64s(sorted)

	res := make([]int, len(events))
	for i, ev := range events {
		res[i] = lowerBound(sorted, ev+windowSize) - lowerBound(sorted, ev)
	}
	return res, nil
}

// BinCounts histograms timestamps against the provided ascending bin edges.
// It returns the trailing edge of each bin alongside its count; timestamps
// outside the edge range are ignored
func BinCounts(timestamps, binEdges any) (Series, []int, error) {
	ts, edges, err := coercePair(timestamps, binEdges)
	if err != nil {
		return nil, nil, err
	}
	if len(edges) < 2 {
		return nil, nil, fmt.Errorf(
			"%w: at least two bin edges are required", ErrInvalidArgument,
		)
	}
	return append(Series{}, edges[1:]...), histogram(ts, edges), nil
}

// BinRegular histograms timestamps against evenly spaced edges of width
// binWidth covering [Start, Stop]. Unset bounds come from the data, and an
// empty input with unset bounds produces empty outputs
func BinRegular(
	timestamps any, binWidth float64, opt RegularBinOptions,
) (Series, []int, error) {
	ts, err := AsSeries(timestamps)
	if err != nil {
		return nil, nil, err
	}
	if binWidth <= 0 {
		return nil, nil, fmt.Errorf(
			"%w: bin width must be positive, got %v",
			ErrInvalidArgument, binWidth,
		)
	}

	start, stop := opt.Start, opt.Stop
	if math.IsNaN(start) || math.IsNaN(stop) {
		if len(ts) == 0 {
			return Series{}, []int{}, nil
		}
		if math.IsNaN(start) {
			start = floats.Min(ts)
		}
		if math.IsNaN(stop) {
			stop = floats.Max(ts)
		}
	}
	if math.IsNaN(start) || math.IsNaN(stop) {
		return nil, nil, fmt.Errorf(
			"%w: cannot derive a bin range from missing values",
			ErrInvalidArgument,
		)
	}
	if stop < start {
		return nil, nil, fmt.Errorf(
			"%w: stop %v precedes start %v", ErrInvalidArgument, stop, start,
		)
	}

	bins := int(math.Floor((stop-start)/binWidth)) + 1
	edges := make(Series, bins+1)
	floats.Span(edges, start, start+float64(bins)*binWidth)
	return edges[1:], histogram(ts, edges), nil
}

// Binarize replaces non-zero values with 1 and keeps zeroes as 0. NaN marks
// a missing value and is propagated untouched
func Binarize(v any) (Series, error) {
	s, err := AsSeries(v)
	if err != nil {
		return nil, err
	}
	res := make(Series, len(s))
	for i, e := range s {
		switch {
		case math.IsNaN(e):
			res[i] = e
		case e != 0:
			res[i] = 1
		}
	}
	return res, nil
}

// histogram counts timestamps into the half-open bins described by edges,
// ignoring values outside [edges[0], edges[last]). The input is sorted and
// range-clipped on a copy to satisfy the gonum histogram primitive
func histogram(ts, edges Series) []int {
	sorted := append(Series{}, ts...)
	sort.Float64s(sorted)
	lo := lowerBound(sorted, edges[0])
	hi := lowerBound(sorted, edges[len(edges)-1])

	counts := make([]float64, len(edges)-1)
	stat.Histogram(counts, edges, sorted[lo:hi], nil)

	res := make([]int, len(counts))
	for i, c := range counts {
		res[i] = int(c)
	}
	return res
}
