package gospace

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/exp/rand"

	"github.com/emer/etable/etensor"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"
	"gonum.org/v1/gonum/stat/distmv"
)

// Box represents a (possibly unbounded) box of values of a single
// element type. Specifically, a Box represents the Cartesian product
// of n closed intervals. Each interval has the form of one of [a, b],
// (-∞, b], [a, ∞), or (-∞, ∞) for a, b ϵ R. Discrete element types
// (integer and boolean) make the box a finite grid of values.
//
// A Box is immutable after construction: no method mutates its shape,
// element type, or bounds. Seed replaces only the source of
// randomness used by Sample and must not be called concurrently with
// it; everything else is safe for concurrent use.
type Box struct {
	dtype    etensor.Type
	shape    []int
	size     int
	discrete bool

	// Bounds are stored flat in row-major order, one entry per
	// element, regardless of shape. Nil only for zero-size shapes.
	low, high                  *mat.VecDense
	boundedBelow, boundedAbove []bool

	src rand.Source
	rng *distmv.Uniform // fully bounded floating boxes only
}

// New returns a Box over elements of the given type and shape. A nil
// or empty shape denotes a scalar space.
//
// Each bound may be nil, a numeric or boolean scalar, a []float64,
// []int, or []bool, a *mat.VecDense, or an etensor.Tensor. Scalars are
// broadcast to every element; array-like bounds must have exactly one
// entry per element or construction fails with a BroadcastError. A nil
// bound is inferred from the element type: ±∞ for floating points, the
// full representable range for fixed-width integers, and {false, true}
// for booleans.
//
// Element types outside the floating/integer/boolean set fail with an
// UnsupportedTypeError, and bounds with low > high at any element fail
// construction.
func New(dtype etensor.Type, shape []int, low, high interface{}) (*Box, error) {
	cat := dtypeCategory(dtype)
	if cat == catInvalid {
		return nil, &UnsupportedTypeError{Dtype: dtype, Op: "new"}
	}

	shp := make([]int, len(shape))
	size := 1
	for i, d := range shape {
		if d < 0 {
			return nil, fmt.Errorf("new: negative dimension %v in shape %v",
				d, shape)
		}
		shp[i] = d
		size *= d
	}

	goLow, err := broadcastBound(dtype, shp, size, low, false)
	if err != nil {
		return nil, fmt.Errorf("new: could not compute lower bound: %w", err)
	}
	goHigh, err := broadcastBound(dtype, shp, size, high, true)
	if err != nil {
		return nil, fmt.Errorf("new: could not compute upper bound: %w", err)
	}

	// Bounds of a float32 space are held at float32 precision. A
	// float64 bound like 0.1 sits below its nearest float32, so a
	// sample stored in a float32 tensor could round past it and fall
	// outside the space it was drawn from.
	if dtype == etensor.FLOAT32 {
		for i := range goLow {
			goLow[i] = float64(float32(goLow[i]))
			goHigh[i] = float64(float32(goHigh[i]))
		}
	}

	for i := range goLow {
		if goLow[i] > goHigh[i] {
			return nil, fmt.Errorf("new: inverted bounds at element %d: "+
				"%v > %v", i, goLow[i], goHigh[i])
		}
	}

	boundedBelow := make([]bool, size)
	for i := range boundedBelow {
		boundedBelow[i] = math.Inf(-1) < goLow[i]
	}

	boundedAbove := make([]bool, size)
	for i := range boundedAbove {
		boundedAbove[i] = math.Inf(1) > goHigh[i]
	}

	b := &Box{
		dtype:        dtype,
		shape:        shp,
		size:         size,
		discrete:     cat != catFloat,
		boundedBelow: boundedBelow,
		boundedAbove: boundedAbove,
	}
	if size > 0 {
		b.low = mat.NewVecDense(size, goLow)
		b.high = mat.NewVecDense(size, goHigh)
	}
	b.Seed(uint64(time.Now().UnixNano()))
	return b, nil
}

// broadcastBound normalizes one bound to a flat per-element slice. A
// nil bound is inferred from the element type's defaults, taking the
// lower or upper default depending on which side is being filled.
func broadcastBound(dtype etensor.Type, shape []int, size int,
	bound interface{}, upper bool) ([]float64, error) {
	out := make([]float64, size)

	if bound == nil {
		lo, hi, err := dtypeDefaults(dtype)
		if err != nil {
			return nil, err
		}
		v := lo
		if upper {
			v = hi
		}
		for i := range out {
			out[i] = v
		}
		return out, nil
	}

	if v, ok := scalarFloat(bound); ok {
		for i := range out {
			out[i] = v
		}
		return out, nil
	}

	var vals []float64
	switch x := bound.(type) {
	case []float64:
		vals = x
	case []int:
		vals = make([]float64, len(x))
		for i, v := range x {
			vals[i] = float64(v)
		}
	case []bool:
		vals = make([]float64, len(x))
		for i, v := range x {
			if v {
				vals[i] = 1
			}
		}
	case *mat.VecDense:
		if x == nil {
			return nil, &BroadcastError{Value: bound, Shape: shape}
		}
		vals = x.RawVector().Data
	case etensor.Tensor:
		if isNilTensor(x) {
			return nil, &BroadcastError{Value: bound, Shape: shape}
		}
		vals = make([]float64, x.Len())
		for i := range vals {
			vals[i] = x.FloatVal1D(i)
		}
	default:
		return nil, &BroadcastError{Value: bound, Shape: shape}
	}

	if len(vals) != size {
		return nil, &BroadcastError{Value: bound, Shape: shape}
	}
	copy(out, vals)
	return out, nil
}

// Shape returns the dimension sizes of the space. An empty shape
// denotes a scalar space.
func (b *Box) Shape() []int {
	shp := make([]int, len(b.shape))
	copy(shp, b.shape)
	return shp
}

// Dtype returns the element type of the space.
func (b *Box) Dtype() etensor.Type {
	return b.dtype
}

// Len returns the number of elements in the space: the product of the
// shape's dimensions, or 1 for a scalar space.
func (b *Box) Len() int {
	return b.size
}

// Discrete returns whether the space holds a finite set of values.
// It is true exactly when the element type is integer or boolean.
func (b *Box) Discrete() bool {
	return b.discrete
}

// Low returns the lower bound of the space. For scalar spaces the bare
// scalar is returned — a float64, int64, uint64, or bool depending on
// the element type — rather than a length-1 vector; all other shapes
// yield a copy of the per-element bound vector.
func (b *Box) Low() interface{} {
	return b.bound(b.low)
}

// High returns the upper bound of the space, with the same scalar
// unwrapping as Low.
func (b *Box) High() interface{} {
	return b.bound(b.high)
}

func (b *Box) bound(v *mat.VecDense) interface{} {
	if v == nil {
		return nil
	}
	if len(b.shape) == 0 {
		x := v.AtVec(0)
		switch dtypeCategory(b.dtype) {
		case catInt:
			return satInt64(x)
		case catUint:
			return satUint64(x)
		case catBool:
			return x != 0
		default:
			return x
		}
	}
	return mat.VecDenseCopyOf(v)
}

// LowVec returns a copy of the flat per-element lower bounds.
func (b *Box) LowVec() *mat.VecDense {
	if b.low == nil {
		return nil
	}
	return mat.VecDenseCopyOf(b.low)
}

// HighVec returns a copy of the flat per-element upper bounds.
func (b *Box) HighVec() *mat.VecDense {
	if b.high == nil {
		return nil
	}
	return mat.VecDenseCopyOf(b.high)
}

// BoundedBelow returns whether each element of the space is bounded
// below.
func (b *Box) BoundedBelow() []bool {
	out := make([]bool, len(b.boundedBelow))
	copy(out, b.boundedBelow)
	return out
}

// BoundedAbove returns whether each element of the space is bounded
// above.
func (b *Box) BoundedAbove() []bool {
	out := make([]bool, len(b.boundedAbove))
	copy(out, b.boundedAbove)
	return out
}

func (b *Box) bounded() bool {
	for i := range b.boundedBelow {
		if !b.boundedBelow[i] || !b.boundedAbove[i] {
			return false
		}
	}
	return true
}

// Seed seeds the sampler for the space. The bounds are unaffected.
func (b *Box) Seed(seed uint64) {
	b.src = rand.NewSource(seed)
	b.rng = nil
	if dtypeCategory(b.dtype) == catFloat && b.size > 0 && b.bounded() {
		bounds := make([]r1.Interval, b.size)
		for i := range bounds {
			bounds[i] = r1.Interval{Min: b.low.AtVec(i), Max: b.high.AtVec(i)}
		}
		b.rng = distmv.NewUniform(bounds, b.src)
	}
}

// Clip clamps x elementwise into the bounds of the space. The length
// of x must equal Len.
func (b *Box) Clip(x []float64) ([]float64, error) {
	if len(x) != b.size {
		return nil, fmt.Errorf("clip: got %v values for a space of %v "+
			"elements", len(x), b.size)
	}
	out := make([]float64, len(x))
	for i := range x {
		out[i] = math.Min(math.Max(x[i], b.low.AtVec(i)), b.high.AtVec(i))
	}
	return out, nil
}

// Rescale affinely maps x from the bounds of b into the bounds of to,
// so that b's low maps to to's low and b's high to to's high. Both
// spaces must be fully bounded and have the same number of elements.
func (b *Box) Rescale(x []float64, to *Box) ([]float64, error) {
	if len(x) != b.size || to.size != b.size {
		return nil, fmt.Errorf("rescale: size mismatch: len(x)=%v, from=%v, "+
			"to=%v elements", len(x), b.size, to.size)
	}
	if !b.bounded() || !to.bounded() {
		return nil, fmt.Errorf("rescale: both spaces must be fully bounded")
	}
	out := make([]float64, len(x))
	for i := range x {
		lo, hi := b.low.AtVec(i), b.high.AtVec(i)
		toLo, toHi := to.low.AtVec(i), to.high.AtVec(i)
		out[i] = toLo + (x[i]-lo)*(toHi-toLo)/(hi-lo)
	}
	return out, nil
}

// String returns a diagnostic rendering of the space. Non-scalar
// shapes summarize the bounds as min(low) and max(high) rather than
// printing the full arrays.
func (b *Box) String() string {
	if len(b.shape) == 0 {
		return fmt.Sprintf("Space(%v, size=%v, low=%v, high=%v)",
			dtypeName(b.dtype), b.shape, b.Low(), b.High())
	}
	if b.size == 0 {
		return fmt.Sprintf("Space(%v, size=%v, low=[], high=[])",
			dtypeName(b.dtype), b.shape)
	}
	return fmt.Sprintf("Space(%v, size=%v, low=%v, high=%v)",
		dtypeName(b.dtype), b.shape,
		floats.Min(b.low.RawVector().Data),
		floats.Max(b.high.RawVector().Data))
}
