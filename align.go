package binit

import (
	"math"
	"sort"
)

// Align computes, for each element of toAlign, its signed latency to the
// nearest element of alignTo. By default a timestamp attaches to the closest
// preceding reference event, yielding a non-negative latency; a timestamp
// occurring before every event yields NaN. When opt.Lookback is positive, a
// timestamp within that window before the next event attaches to that event
// instead, yielding a latency in [-Lookback, 0]. A timestamp equal to an
// event always attaches to it with latency zero.
//
// alignTo must be sorted ascending; this is not checked. Both operands must
// be one-dimensional sequences, and alignTo must be non-empty.
func Align(toAlign, alignTo any, opt AlignOptions) (Series, error) {
	ts, ref, err := alignable(toAlign, alignTo)
	if err != nil {
		return nil, err
	}

	res := make(Series, len(ts))
	for i, j := range alignIndex(ts, ref, opt.Lookback) {
		if j == NoBin {
			res[i] = math.NaN()
			continue
		}
		lat := ts[i] - ref[j]
		if opt.MaxLatency > 0 && lat > opt.MaxLatency {
			lat = math.NaN()
		}
		res[i] = lat
	}

	if opt.Drop {
		res = res.DropMissing()
	}
	return res, nil
}

// alignIndex returns, for each timestamp, the index of the reference element
// it attaches to, or NoBin when none qualifies. The caller applies any
// latency cutoff on top of the returned assignment
func alignIndex(ts, ref Series, lookback float64) []int {
	res := make([]int, len(ts))
	for i, x := range ts {
		j := upperBound(ref, x) - 1
		if lookback > 0 {
			if k := lowerBound(ref, x); k < len(ref) && x-ref[k] >= -lookback {
				j = k
			}
		}
		if j < 0 {
			j = NoBin
		}
		res[i] = j
	}
	return res
}

// lowerBound returns the index of the first element >= x
func lowerBound(s Series, x float64) int {
	return sort.SearchFloat64s(s, x)
}

// upperBound returns the index of the first element > x
func upperBound(s Series, x float64) int {
	return sort.Search(len(s), func(i int) bool {
		return s[i] > x
	})
}
