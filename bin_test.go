package binit_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kode4food/binit"
)

func TestWhichBin(t *testing.T) {
	res, err := binit.WhichBin(
		[]float64{5, 15, 25, 10}, []float64{0, 10, 20}, binit.BinOptions{},
	)
	assert.NoError(t, err)
	assert.Equal(t, binit.Series{0, 10, 20, 10}, res)
}

func TestWhichBinBeforeFirstEdge(t *testing.T) {
	res, err := binit.WhichBin(
		[]float64{-5}, []float64{0, 10}, binit.BinOptions{},
	)
	assert.NoError(t, err)
	assert.True(t, math.IsNaN(res[0]))
}

func TestWhichBinLookback(t *testing.T) {
	res, err := binit.WhichBin(
		[]float64{8.5, 7.9}, []float64{0, 10}, binit.BinOptions{Lookback: 2},
	)
	assert.NoError(t, err)
	assert.Equal(t, binit.Series{10, 0}, res)
}

func TestWhichBinMaxLatency(t *testing.T) {
	res, err := binit.WhichBin(
		[]float64{12, 15}, []float64{0, 10}, binit.BinOptions{MaxLatency: 3},
	)
	assert.NoError(t, err)
	assert.Equal(t, 10.0, res[0])
	assert.True(t, math.IsNaN(res[1]))
}

func TestWhichBinIndex(t *testing.T) {
	res, err := binit.WhichBinIndex(
		[]float64{5, 15, -5}, []float64{0, 10, 20}, binit.BinOptions{},
	)
	assert.NoError(t, err)
	assert.Equal(t, []int{0, 1, binit.NoBin}, res)
}

func TestWhichBinIndexLookback(t *testing.T) {
	res, err := binit.WhichBinIndex(
		[]float64{9.5}, []float64{0, 10}, binit.BinOptions{Lookback: 1},
	)
	assert.NoError(t, err)
	assert.Equal(t, []int{1}, res)
}

func TestWhichBinIndexMonotonic(t *testing.T) {
	// Sorted timestamps must receive non-decreasing bin assignments
	ts := []float64{0.5, 1, 2.5, 7, 7, 19, 30}
	res, err := binit.WhichBinIndex(
		ts, []float64{0, 5, 10, 20}, binit.BinOptions{},
	)
	assert.NoError(t, err)
	for i := 1; i < len(res); i++ {
		assert.GreaterOrEqual(t, res[i], res[i-1])
	}
}

func TestWhichBinEmptyEdges(t *testing.T) {
	_, err := binit.WhichBin([]float64{1}, []float64{}, binit.BinOptions{})
	assert.ErrorIs(t, err, binit.ErrInvalidArgument)
}

func TestCountAroundEvents(t *testing.T) {
	res, err := binit.CountAroundEvents(
		[]float64{1, 2, 3, 10}, []float64{0, 9}, 5,
	)
	assert.NoError(t, err)
	assert.Equal(t, []int{3, 1}, res)
}

func TestCountAroundEventsHalfOpen(t *testing.T) {
	// The window start is included, the end is not
	res, err := binit.CountAroundEvents([]float64{0, 5}, []float64{0}, 5)
	assert.NoError(t, err)
	assert.Equal(t, []int{1}, res)
}

func TestCountAroundEventsOverlap(t *testing.T) {
	res, err := binit.CountAroundEvents([]float64{1}, []float64{0, 0.5}, 2)
	assert.NoError(t, err)
	assert.Equal(t, []int{1, 1}, res)
}

func TestCountAroundEventsUnsortedInput(t *testing.T) {
	res, err := binit.CountAroundEvents(
		[]float64{10, 3, 1, 2}, []float64{0, 9}, 5,
	)
	assert.NoError(t, err)
	assert.Equal(t, []int{3, 1}, res)
}

func TestCountAroundEventsNoEvents(t *testing.T) {
	res, err := binit.CountAroundEvents([]float64{1, 2}, []float64{}, 5)
	assert.NoError(t, err)
	assert.Empty(t, res)
}

func TestCountAroundEventsBadWindow(t *testing.T) {
	_, err := binit.CountAroundEvents([]float64{1}, []float64{0}, 0)
	assert.ErrorIs(t, err, binit.ErrInvalidArgument)
}

func TestBinCounts(t *testing.T) {
	edges, counts, err := binit.BinCounts(
		[]float64{0.5, 1.5, 1.6, 5, -3}, []float64{0, 1, 2},
	)
	assert.NoError(t, err)
	assert.Equal(t, binit.Series{1, 2}, edges)
	assert.Equal(t, []int{1, 2}, counts)
}

func TestBinCountsTooFewEdges(t *testing.T) {
	_, _, err := binit.BinCounts([]float64{1}, []float64{0})
	assert.ErrorIs(t, err, binit.ErrInvalidArgument)
}

func TestBinRegular(t *testing.T) {
	edges, counts, err := binit.BinRegular(
		[]float64{0.5, 1.5, 2.5}, 1, binit.DefaultRegularBinOptions(),
	)
	assert.NoError(t, err)
	assert.Equal(t, binit.Series{1.5, 2.5, 3.5}, edges)
	assert.Equal(t, []int{1, 1, 1}, counts)
}

func TestBinRegularExplicitRange(t *testing.T) {
	opt := binit.RegularBinOptions{Start: 0, Stop: 4}
	edges, counts, err := binit.BinRegular(
		[]float64{0, 1, 2, 3, 9}, 2, opt,
	)
	assert.NoError(t, err)
	assert.Equal(t, binit.Series{2, 4, 6}, edges)
	assert.Equal(t, []int{2, 2, 0}, counts)
}

func TestBinRegularEmptyInput(t *testing.T) {
	edges, counts, err := binit.BinRegular(
		[]float64{}, 1, binit.DefaultRegularBinOptions(),
	)
	assert.NoError(t, err)
	assert.Empty(t, edges)
	assert.Empty(t, counts)
}

func TestBinRegularBadWidth(t *testing.T) {
	_, _, err := binit.BinRegular(
		[]float64{1}, 0, binit.DefaultRegularBinOptions(),
	)
	assert.ErrorIs(t, err, binit.ErrInvalidArgument)
}

func TestBinarize(t *testing.T) {
	res, err := binit.Binarize([]float64{0, 3, -0.5, math.NaN()})
	assert.NoError(t, err)
	assert.Equal(t, binit.Series{0, 1, 1}, res[:3])
	assert.True(t, math.IsNaN(res[3]))
}
