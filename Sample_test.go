package gospace_test

import (
	"math"
	"testing"

	"github.com/emer/etable/etensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samuelfneumann/gospace"
)

const sampleTrials = 100

func TestSampleIsContained(t *testing.T) {
	tests := []struct {
		name  string
		dtype etensor.Type
		shape []int
		low   interface{}
		high  interface{}
	}{
		{"bounded float vector", etensor.FLOAT64, []int{3}, -1.0, 1.0},
		{"bounded float matrix", etensor.FLOAT64, []int{2, 2}, 0.0, 5.0},
		{"float32", etensor.FLOAT32, []int{4}, -2.0, 2.0},
		{"int64 range", etensor.INT64, []int{3}, -5, 5},
		{"int64 per-element ranges", etensor.INT64, []int{3},
			[]int{0, 10, -3}, []int{1, 20, 3}},
		{"uint8 full range", etensor.UINT8, []int{2}, nil, nil},
		{"bool", etensor.BOOL, []int{2, 2}, nil, nil},
		{"scalar float", etensor.FLOAT64, nil, 0.0, 1.0},
		{"scalar int", etensor.INT64, nil, 0, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := gospace.New(tt.dtype, tt.shape, tt.low, tt.high)
			require.NoError(t, err)
			b.Seed(42)

			for i := 0; i < sampleTrials; i++ {
				sample, err := b.Sample()
				require.NoError(t, err)
				require.Len(t, sample, 1)

				got := sample[0]
				assert.Equal(t, tt.dtype, got.DataType())
				assert.Equal(t, len(tt.shape), got.NumDims())
				assert.Equal(t, b.Len(), got.Len())
				assert.True(t, b.Contains(got), "sample %v not in %v", got,
					b)
			}
		})
	}
}

func TestSampleShape(t *testing.T) {
	b, err := gospace.New(etensor.FLOAT64, []int{2, 3}, 0.0, 1.0)
	require.NoError(t, err)

	sample, err := b.Sample()
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, sample[0].Shapes())
}

func TestSampleUnboundedFloatFallback(t *testing.T) {
	b, err := gospace.New(etensor.FLOAT64, []int{3},
		[]float64{math.Inf(-1), 0, math.Inf(-1)},
		[]float64{math.Inf(1), math.Inf(1), 0})
	require.NoError(t, err)
	b.Seed(7)

	for i := 0; i < sampleTrials; i++ {
		sample, err := b.Sample()
		require.NoError(t, err)

		got := sample[0]
		for j := 0; j < got.Len(); j++ {
			v := got.FloatVal1D(j)
			assert.False(t, math.IsNaN(v))
			assert.False(t, math.IsInf(v, 0))
		}
		// one-sided dimensions stay on the bounded side
		assert.True(t, got.FloatVal1D(1) >= 0)
		assert.True(t, got.FloatVal1D(2) <= 0)
		assert.True(t, b.Contains(got))
	}
}

func TestSampleDeterministicWithSeed(t *testing.T) {
	a, err := gospace.New(etensor.FLOAT64, []int{3}, -1.0, 1.0)
	require.NoError(t, err)
	b, err := gospace.New(etensor.FLOAT64, []int{3}, -1.0, 1.0)
	require.NoError(t, err)

	a.Seed(13)
	b.Seed(13)

	for i := 0; i < 10; i++ {
		sa, err := a.Sample()
		require.NoError(t, err)
		sb, err := b.Sample()
		require.NoError(t, err)

		for j := 0; j < sa[0].Len(); j++ {
			assert.Equal(t, sa[0].FloatVal1D(j), sb[0].FloatVal1D(j))
		}
	}
}

func TestSampleFloat32UnrepresentableBound(t *testing.T) {
	// 0.1 has no exact float32; the stored sample must not round past
	// the space's upper bound.
	b, err := gospace.New(etensor.FLOAT32, []int{4}, 0.0, 0.1)
	require.NoError(t, err)
	b.Seed(29)

	for i := 0; i < sampleTrials; i++ {
		sample, err := b.Sample()
		require.NoError(t, err)
		assert.True(t, b.Contains(sample[0]))
	}
}

func TestSampleDegenerateInterval(t *testing.T) {
	b, err := gospace.New(etensor.INT64, []int{2}, 3, 3)
	require.NoError(t, err)

	sample, err := b.Sample()
	require.NoError(t, err)
	assert.Equal(t, 3.0, sample[0].FloatVal1D(0))
	assert.Equal(t, 3.0, sample[0].FloatVal1D(1))
}

func TestSampleZeroSizeShape(t *testing.T) {
	b, err := gospace.New(etensor.FLOAT64, []int{0}, nil, nil)
	require.NoError(t, err)

	sample, err := b.Sample()
	require.NoError(t, err)
	assert.Equal(t, 0, sample[0].Len())
}
