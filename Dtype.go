package gospace

import (
	"fmt"
	"math"

	"github.com/emer/etable/etensor"
)

// category partitions the supported element types. The set is closed:
// bound inference and sampling dispatch exhaustively over it, and
// anything outside it is rejected at construction.
type category int

const (
	catInvalid category = iota
	catFloat
	catInt
	catUint
	catBool
)

func dtypeCategory(t etensor.Type) category {
	switch t {
	case etensor.FLOAT64, etensor.FLOAT32:
		return catFloat
	case etensor.INT64, etensor.INT32, etensor.INT16, etensor.INT8:
		return catInt
	case etensor.UINT64, etensor.UINT32, etensor.UINT16, etensor.UINT8:
		return catUint
	case etensor.BOOL:
		return catBool
	default:
		return catInvalid
	}
}

// dtypeDefaults returns the per-element bounds inferred for an element
// type when the caller omits them: the full representable range for
// fixed-width integers, an unbounded interval for floating points, and
// {false, true} for booleans.
func dtypeDefaults(t etensor.Type) (low, high float64, err error) {
	switch t {
	case etensor.FLOAT64, etensor.FLOAT32:
		return math.Inf(-1), math.Inf(1), nil
	case etensor.INT64:
		return math.MinInt64, math.MaxInt64, nil
	case etensor.INT32:
		return math.MinInt32, math.MaxInt32, nil
	case etensor.INT16:
		return math.MinInt16, math.MaxInt16, nil
	case etensor.INT8:
		return math.MinInt8, math.MaxInt8, nil
	case etensor.UINT64:
		return 0, math.MaxUint64, nil
	case etensor.UINT32:
		return 0, math.MaxUint32, nil
	case etensor.UINT16:
		return 0, math.MaxUint16, nil
	case etensor.UINT8:
		return 0, math.MaxUint8, nil
	case etensor.BOOL:
		return 0, 1, nil
	default:
		return 0, 0, &UnsupportedTypeError{Dtype: t, Op: "inferBounds"}
	}
}

func dtypeName(t etensor.Type) string {
	switch t {
	case etensor.FLOAT64:
		return "float64"
	case etensor.FLOAT32:
		return "float32"
	case etensor.INT64:
		return "int64"
	case etensor.INT32:
		return "int32"
	case etensor.INT16:
		return "int16"
	case etensor.INT8:
		return "int8"
	case etensor.UINT64:
		return "uint64"
	case etensor.UINT32:
		return "uint32"
	case etensor.UINT16:
		return "uint16"
	case etensor.UINT8:
		return "uint8"
	case etensor.BOOL:
		return "bool"
	default:
		return fmt.Sprintf("type(%d)", int(t))
	}
}

// newTensor allocates an empty tensor of the given element type and
// shape. Only the supported element types are constructible.
func newTensor(t etensor.Type, shape []int) (etensor.Tensor, error) {
	switch t {
	case etensor.FLOAT64:
		return etensor.NewFloat64(shape, nil, nil), nil
	case etensor.FLOAT32:
		return etensor.NewFloat32(shape, nil, nil), nil
	case etensor.INT64:
		return etensor.NewInt64(shape, nil, nil), nil
	case etensor.INT32:
		return etensor.NewInt32(shape, nil, nil), nil
	case etensor.INT16:
		return etensor.NewInt16(shape, nil, nil), nil
	case etensor.INT8:
		return etensor.NewInt8(shape, nil, nil), nil
	case etensor.UINT64:
		return etensor.NewUint64(shape, nil, nil), nil
	case etensor.UINT32:
		return etensor.NewUint32(shape, nil, nil), nil
	case etensor.UINT16:
		return etensor.NewUint16(shape, nil, nil), nil
	case etensor.UINT8:
		return etensor.NewUint8(shape, nil, nil), nil
	case etensor.BOOL:
		return etensor.NewBits(shape, nil, nil), nil
	default:
		return nil, &UnsupportedTypeError{Dtype: t, Op: "newTensor"}
	}
}

// satInt64 converts a float64 bound to an int64, saturating at the
// representable range. float64 cannot hold MaxInt64 exactly, so the
// default 64-bit bounds round outward; saturation brings them back in.
func satInt64(f float64) int64 {
	switch {
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	default:
		return int64(f)
	}
}

// satUint64 is the unsigned counterpart of satInt64.
func satUint64(f float64) uint64 {
	switch {
	case f >= math.MaxUint64:
		return math.MaxUint64
	case f <= 0:
		return 0
	default:
		return uint64(f)
	}
}
