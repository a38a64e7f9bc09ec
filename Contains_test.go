package gospace_test

import (
	"math"
	"testing"

	"github.com/emer/etable/etensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/gospace"
)

func TestContainsBounds(t *testing.T) {
	b, err := gospace.New(etensor.FLOAT64, []int{2}, -1.0, 1.0)
	require.NoError(t, err)

	tests := []struct {
		name string
		in   interface{}
		want bool
	}{
		{"inside", []float64{0, 0.5}, true},
		{"lower edge inclusive", []float64{-1, -1}, true},
		{"upper edge inclusive", []float64{1, 1}, true},
		{"below", []float64{-1.5, 0}, false},
		{"above", []float64{0, 1.5}, false},
		{"nan", []float64{math.NaN(), 0}, false},
		{"vec dense", mat.NewVecDense(2, []float64{0.1, -0.1}), true},
		{"int slice", []int{0, 1}, true},
		{"wrong length", []float64{1, 2, 3}, false},
		{"scalar against vector space", 0.5, false},
		{"string", "hello", false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.Contains(tt.in))
		})
	}
}

func TestContainsScalarSpace(t *testing.T) {
	b, err := gospace.New(etensor.INT64, nil, 0, 10)
	require.NoError(t, err)

	assert.True(t, b.Contains(0))
	assert.True(t, b.Contains(10))
	assert.True(t, b.Contains(int64(7)))
	assert.False(t, b.Contains(11))
	assert.False(t, b.Contains(-1))
	assert.False(t, b.Contains([]float64{5}))
}

func TestContainsBoolSpace(t *testing.T) {
	b, err := gospace.New(etensor.BOOL, []int{2}, nil, nil)
	require.NoError(t, err)

	assert.True(t, b.Contains([]bool{true, false}))
	assert.False(t, b.Contains([]float64{0, 2}))
}

func TestContainsTensor(t *testing.T) {
	b, err := gospace.New(etensor.FLOAT64, []int{2, 2}, 0.0, 1.0)
	require.NoError(t, err)

	in := etensor.NewFloat64([]int{2, 2}, nil, nil)
	for i := 0; i < 4; i++ {
		in.SetFloat1D(i, 0.25)
	}
	assert.True(t, b.Contains(in))

	// same element count, wrong dimensions
	flat := etensor.NewFloat64([]int{4}, nil, nil)
	assert.False(t, b.Contains(flat))
}

func TestContainsNestedSlices(t *testing.T) {
	b, err := gospace.New(etensor.FLOAT64, []int{2, 2}, 0.0, 1.0)
	require.NoError(t, err)

	assert.True(t, b.Contains([][]float64{{0, 1}, {0.5, 0.5}}))
	assert.False(t, b.Contains([][]float64{{0, 1, 0}, {0.5}})) // ragged
	assert.False(t, b.Contains([][]float64{{0, 1}}))
}

func TestContainsNeverPanics(t *testing.T) {
	b, err := gospace.New(etensor.FLOAT64, []int{2}, -1.0, 1.0)
	require.NoError(t, err)

	var nilVec *mat.VecDense
	var nilTsr etensor.Tensor

	assert.NotPanics(t, func() {
		assert.False(t, b.Contains(nilVec))
		assert.False(t, b.Contains(nilTsr))
		// typed-nil pointer boxed in a non-nil interface
		assert.False(t, b.Contains((*etensor.Float64)(nil)))
		assert.False(t, b.Contains((*etensor.Bits)(nil)))
		assert.False(t, b.Contains(struct{ A int }{1}))
		assert.False(t, b.Contains(map[string]interface{}{"a": 1}))
	})
}
