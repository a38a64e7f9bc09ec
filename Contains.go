package gospace

import (
	"math"
	"reflect"

	"github.com/emer/etable/etensor"
	"gonum.org/v1/gonum/mat"
)

// Contains returns whether x is in the space. The argument may be a
// numeric or boolean scalar, a []float64, []int, or []bool, a
// [][]float64, a *mat.VecDense, or an etensor.Tensor.
//
// Contains is total: it never panics or returns an error. Values that
// cannot be coerced, ragged rows, and shape mismatches all yield
// false. Values carrying explicit dimensions (tensors, nested slices)
// must match Shape exactly; flat carriers match when their length
// equals the flattened size; bare scalars only match scalar spaces.
// Bounds are inclusive on both sides and NaN is never contained.
func (b *Box) Contains(x interface{}) bool {
	vals, dims, scalar, ok := coerce(x)
	if !ok {
		return false
	}

	switch {
	case scalar:
		if len(b.shape) != 0 {
			return false
		}
	case dims != nil:
		if !equalShape(dims, b.shape) {
			return false
		}
	default:
		if len(b.shape) == 0 || len(vals) != b.size {
			return false
		}
	}

	for i, v := range vals {
		if math.IsNaN(v) {
			return false
		}
		if b.low != nil && v < b.low.AtVec(i) {
			return false
		}
		if b.high != nil && v > b.high.AtVec(i) {
			return false
		}
	}
	return true
}

// coerce flattens x into float64 values. dims is non-nil only for
// carriers with explicit dimensions; scalar reports a bare scalar.
func coerce(x interface{}) (vals []float64, dims []int, scalar, ok bool) {
	if v, isScalar := scalarFloat(x); isScalar {
		return []float64{v}, nil, true, true
	}

	switch t := x.(type) {
	case []float64:
		return t, nil, false, true
	case []int:
		vals = make([]float64, len(t))
		for i, v := range t {
			vals[i] = float64(v)
		}
		return vals, nil, false, true
	case []bool:
		vals = make([]float64, len(t))
		for i, v := range t {
			if v {
				vals[i] = 1
			}
		}
		return vals, nil, false, true
	case [][]float64:
		if len(t) == 0 {
			return nil, []int{0, 0}, false, true
		}
		cols := len(t[0])
		vals = make([]float64, 0, len(t)*cols)
		for _, row := range t {
			if len(row) != cols {
				return nil, nil, false, false // ragged
			}
			vals = append(vals, row...)
		}
		return vals, []int{len(t), cols}, false, true
	case *mat.VecDense:
		if t == nil {
			return nil, nil, false, false
		}
		return t.RawVector().Data, nil, false, true
	case etensor.Tensor:
		if isNilTensor(t) {
			return nil, nil, false, false
		}
		vals = make([]float64, t.Len())
		for i := range vals {
			vals[i] = t.FloatVal1D(i)
		}
		dims = t.Shapes()
		if dims == nil {
			dims = []int{}
		}
		return vals, dims, false, true
	default:
		return nil, nil, false, false
	}
}

// scalarFloat converts a bare numeric or boolean scalar to float64.
func scalarFloat(x interface{}) (float64, bool) {
	switch v := x.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case int32:
		return float64(v), true
	case int16:
		return float64(v), true
	case int8:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint64:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint8:
		return float64(v), true
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

// isNilTensor reports whether t is nil or a typed-nil pointer boxed in
// a non-nil interface, which a plain == nil comparison misses.
func isNilTensor(t etensor.Tensor) bool {
	if t == nil {
		return true
	}
	v := reflect.ValueOf(t)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

func equalShape(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
