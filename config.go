package binit

import "math"

type (
	// AlignOptions adjusts how timestamps attach to reference events. The
	// zero value aligns every timestamp to its nearest preceding event with
	// no cutoff
	AlignOptions struct {
		// Lookback reassigns a timestamp to the next event when the
		// timestamp falls within this window before it. Zero or negative
		// disables the backward pass
		Lookback float64

		// MaxLatency replaces latencies above this value with NaN. Zero or
		// negative disables the cutoff
		MaxLatency float64

		// Drop removes NaN entries from the result
		Drop bool
	}

	// BinOptions adjusts how timestamps attach to bin edges, with the same
	// Lookback and MaxLatency semantics as AlignOptions
	BinOptions struct {
		Lookback   float64
		MaxLatency float64
	}

	// RegularBinOptions positions the evenly spaced edges built by
	// BinRegular. A NaN bound is derived from the data
	RegularBinOptions struct {
		// Start positions the leading edge of the first bin. NaN uses the
		// smallest timestamp
		Start float64

		// Stop is the last instant the bins must cover. NaN uses the
		// largest timestamp
		Stop float64
	}
)

func DefaultRegularBinOptions() RegularBinOptions {
	return RegularBinOptions{
		Start: math.NaN(),
		Stop:  math.NaN(),
	}
}
