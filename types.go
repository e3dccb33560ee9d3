package binit

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"time"
)

type (
	// Series is a one-dimensional sequence of timestamps or latencies. A NaN
	// element marks a value with no valid result
	Series []float64
)

// NoBin marks a timestamp that attaches to no bin or reference event when
// results are reported as integer indices
const NoBin = -1

var (
	// ErrInvalidArgument indicates an operand that is not a usable
	// one-dimensional numeric sequence
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidShape indicates a sequence nested more than one level deep
	ErrInvalidShape = errors.New("invalid shape")
)

// AsSeries coerces a supported numeric slice into a Series. Scalars and
// other non-sequence values fail with ErrInvalidArgument; slices of slices
// fail with ErrInvalidShape
func AsSeries(v any) (Series, error) {
	switch v := v.(type) {
	case Series:
		return v, nil
	case []float64:
		return v, nil
	case []float32:
		res := make(Series, len(v))
		for i, e := range v {
			res[i] = float64(e)
		}
		return res, nil
	case []int:
		res := make(Series, len(v))
		for i, e := range v {
			res[i] = float64(e)
		}
		return res, nil
	case []int64:
		res := make(Series, len(v))
		for i, e := range v {
			res[i] = float64(e)
		}
		return res, nil
	case []time.Duration:
		res := make(Series, len(v))
		for i, e := range v {
			res[i] = e.Seconds()
		}
		return res, nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice {
		return nil, fmt.Errorf(
			"%w: at least one argument must be an array-like, got %T",
			ErrInvalidArgument, v,
		)
	}
	if rv.Type().Elem().Kind() == reflect.Slice {
		return nil, fmt.Errorf(
			"%w: sequence must be one-dimensional, got %T", ErrInvalidShape, v,
		)
	}
	return nil, fmt.Errorf(
		"%w: unsupported element type in %T", ErrInvalidArgument, v,
	)
}

// DropMissing returns a copy of the Series with NaN entries removed,
// preserving the order of the remaining elements
func (s Series) DropMissing() Series {
	res := make(Series, 0, len(s))
	for _, e := range s {
		if !math.IsNaN(e) {
			res = append(res, e)
		}
	}
	return res
}

func coercePair(a, b any) (Series, Series, error) {
	as, err := AsSeries(a)
	if err != nil {
		return nil, nil, err
	}
	bs, err := AsSeries(b)
	if err != nil {
		return nil, nil, err
	}
	return as, bs, nil
}

// alignable coerces a timestamp/reference operand pair and enforces the
// non-empty reference precondition shared by the alignment operations
func alignable(a, b any) (Series, Series, error) {
	ts, ref, err := coercePair(a, b)
	if err != nil {
		return nil, nil, err
	}
	if len(ref) == 0 {
		return nil, nil, fmt.Errorf(
			"%w: reference must contain at least one element",
			ErrInvalidArgument,
		)
	}
	return ts, ref, nil
}
