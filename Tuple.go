package gospace

import (
	"fmt"

	"github.com/emer/etable/etensor"
)

// TupleSpace implements a tuple (i.e., product) of simpler spaces.
//
// A TupleSpace treats all the spaces it contains in a recursive
// manner. For example, when calling the Sample() method, the
// TupleSpace calls each of its contained spaces' Sample() methods and
// returns the resulting tensors *in recursive order*.
type TupleSpace struct {
	spaces []Space
}

// NewTupleSpace returns a TupleSpace over the given sub-spaces.
func NewTupleSpace(spaces ...Space) *TupleSpace {
	t := &TupleSpace{spaces: make([]Space, len(spaces))}
	copy(t.spaces, spaces)
	return t
}

// Seed seeds the RNG for all sub-spaces recursively
func (t *TupleSpace) Seed(seed uint64) {
	for _, space := range t.spaces {
		space.Seed(seed)
	}
}

// Sample takes a sample from within the space bounds of each space in
// the tuple space. If a composite space exists in the TupleSpace,
// then its Sample() method is (possibly recursively) called, and all
// samples are placed in the returned slice in sequential order.
func (t *TupleSpace) Sample() ([]etensor.Tensor, error) {
	sample := make([]etensor.Tensor, 0, t.Len())

	for i, space := range t.spaces {
		s, err := space.Sample()
		if err != nil {
			return nil, fmt.Errorf("sample: space at index %v: %w", i, err)
		}
		sample = append(sample, s...)
	}
	return sample, nil
}

// Contains returns whether in is in the space. The argument in must
// be a []interface{}. Each element of in must be compatible with the
// corresponding space in the tuple space: a value coercible by a Box
// for a Box, a map[string]interface{} for a DictSpace, and so on.
func (t *TupleSpace) Contains(in interface{}) bool {
	x, ok := in.([]interface{})
	if !ok {
		return false
	}

	if len(x) != t.Len() {
		return false
	}

	for i := range x {
		if !t.spaces[i].Contains(x[i]) {
			return false
		}
	}
	return true
}

// Len returns the number of sub-spaces in the space
func (t *TupleSpace) Len() int {
	return len(t.spaces)
}

// At returns the Space in the TupleSpace at index i
func (t *TupleSpace) At(i int) Space {
	return t.spaces[i]
}
