package gospace

import (
	"golang.org/x/exp/rand"

	"github.com/emer/etable/etensor"
	"gonum.org/v1/gonum/stat/distuv"
)

// Sample takes a sample from within the space's bounds, returned as a
// one-element slice holding a tensor of the space's element type and
// shape. Every element is drawn independently and uniformly from its
// own inclusive bound interval.
//
// Floating dimensions without finite bounds have no uniform
// distribution to draw from; they fall back to the scheme gym uses:
// unbounded on both sides draws a standard normal, bounded on one
// side draws a unit exponential away from the finite bound.
func (b *Box) Sample() ([]etensor.Tensor, error) {
	t, err := newTensor(b.dtype, b.shape)
	if err != nil {
		return nil, err
	}

	switch dtypeCategory(b.dtype) {
	case catFloat:
		b.sampleFloat(t)
	case catInt:
		b.sampleInt(t)
	case catUint:
		b.sampleUint(t)
	case catBool:
		b.sampleBool(t)
	default:
		return nil, &UnsupportedTypeError{Dtype: b.dtype, Op: "sample"}
	}
	return []etensor.Tensor{t}, nil
}

func (b *Box) sampleFloat(t etensor.Tensor) {
	if b.size == 0 {
		return
	}
	if b.rng != nil {
		for i, v := range b.rng.Rand(nil) {
			t.SetFloat1D(i, v)
		}
		return
	}
	for i := 0; i < b.size; i++ {
		lo, hi := b.low.AtVec(i), b.high.AtVec(i)
		var v float64
		switch {
		case b.boundedBelow[i] && b.boundedAbove[i]:
			v = distuv.Uniform{Min: lo, Max: hi, Src: b.src}.Rand()
		case b.boundedBelow[i]:
			v = lo + distuv.Exponential{Rate: 1, Src: b.src}.Rand()
		case b.boundedAbove[i]:
			v = hi - distuv.Exponential{Rate: 1, Src: b.src}.Rand()
		default:
			v = distuv.Normal{Mu: 0, Sigma: 1, Src: b.src}.Rand()
		}
		t.SetFloat1D(i, v)
	}
}

func (b *Box) sampleInt(t etensor.Tensor) {
	rng := rand.New(b.src)
	for i := 0; i < b.size; i++ {
		lo := satInt64(b.low.AtVec(i))
		hi := satInt64(b.high.AtVec(i))
		// width is exact in uint64 even when hi-lo overflows int64
		width := uint64(hi) - uint64(lo)
		var v int64
		if width+1 == 0 {
			v = int64(rng.Uint64())
		} else {
			v = lo + int64(rng.Uint64n(width+1))
		}
		setInt(t, i, v)
	}
}

func (b *Box) sampleUint(t etensor.Tensor) {
	rng := rand.New(b.src)
	for i := 0; i < b.size; i++ {
		lo := satUint64(b.low.AtVec(i))
		hi := satUint64(b.high.AtVec(i))
		width := hi - lo
		var v uint64
		if width+1 == 0 {
			v = rng.Uint64()
		} else {
			v = lo + rng.Uint64n(width+1)
		}
		setUint(t, i, v)
	}
}

func (b *Box) sampleBool(t etensor.Tensor) {
	d := distuv.Bernoulli{P: 0.5, Src: b.src}
	for i := 0; i < b.size; i++ {
		t.SetFloat1D(i, d.Rand())
	}
}

// setInt stores a signed sample without a float64 round trip, which
// would lose precision near the 64-bit extremes.
func setInt(t etensor.Tensor, i int, v int64) {
	switch tt := t.(type) {
	case *etensor.Int64:
		tt.Values[i] = v
	case *etensor.Int32:
		tt.Values[i] = int32(v)
	case *etensor.Int16:
		tt.Values[i] = int16(v)
	case *etensor.Int8:
		tt.Values[i] = int8(v)
	default:
		t.SetFloat1D(i, float64(v))
	}
}

func setUint(t etensor.Tensor, i int, v uint64) {
	switch tt := t.(type) {
	case *etensor.Uint64:
		tt.Values[i] = v
	case *etensor.Uint32:
		tt.Values[i] = uint32(v)
	case *etensor.Uint16:
		tt.Values[i] = uint16(v)
	case *etensor.Uint8:
		tt.Values[i] = uint8(v)
	default:
		t.SetFloat1D(i, float64(v))
	}
}
