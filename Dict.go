package gospace

import (
	"fmt"

	"github.com/emer/etable/etensor"
)

// DictSpace implements an ordered dictionary of simpler spaces.
//
// A DictSpace treats all the spaces it contains in a recursive manner.
// For example, when calling the Sample() method, the DictSpace calls
// each of its contained spaces' Sample() methods and returns the
// resulting tensors *in recursive order*.
type DictSpace struct {
	keys   []string
	values []Space
}

// NewDictSpace returns a DictSpace pairing each key with the space at
// the same index. Key order is preserved.
func NewDictSpace(keys []string, values []Space) (*DictSpace, error) {
	if len(keys) != len(values) {
		return nil, fmt.Errorf("newDictSpace: got %v keys for %v spaces",
			len(keys), len(values))
	}
	seen := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		if _, ok := seen[key]; ok {
			return nil, fmt.Errorf("newDictSpace: duplicate key %q", key)
		}
		seen[key] = struct{}{}
	}

	d := &DictSpace{
		keys:   make([]string, len(keys)),
		values: make([]Space, len(values)),
	}
	copy(d.keys, keys)
	copy(d.values, values)
	return d, nil
}

// Seed seeds the RNG for all sub-spaces recursively
func (d *DictSpace) Seed(seed uint64) {
	for _, space := range d.values {
		space.Seed(seed)
	}
}

// Sample takes a sample from within the space bounds. If a composite
// space exists in the DictSpace, then its Sample() method is
// recursively called, and all samples are placed in the returned
// slice sequentially.
func (d *DictSpace) Sample() ([]etensor.Tensor, error) {
	sample := make([]etensor.Tensor, 0, d.Len())

	for i, space := range d.values {
		s, err := space.Sample()
		if err != nil {
			return nil, fmt.Errorf("sample: space at key %q: %w", d.keys[i],
				err)
		}
		sample = append(sample, s...)
	}
	return sample, nil
}

// Contains returns whether in is in the space. The argument in must
// be a map[string]interface{} with exactly the DictSpace's keys, and
// each value must be contained in the space at its key.
func (d *DictSpace) Contains(in interface{}) bool {
	x, ok := in.(map[string]interface{})
	if !ok {
		return false
	}

	if len(x) != d.Len() {
		return false
	}

	for i, key := range d.keys {
		val, ok := x[key]
		if !ok {
			return false
		}
		if !d.values[i].Contains(val) {
			return false
		}
	}
	return true
}

// Len returns the number of sub-spaces in the space
func (d *DictSpace) Len() int {
	return len(d.keys)
}

// Keys returns the keys of the space, in order
func (d *DictSpace) Keys() []string {
	keys := make([]string, len(d.keys))
	copy(keys, d.keys)
	return keys
}

// At returns the sub-space stored at key
func (d *DictSpace) At(key string) (Space, bool) {
	for i, k := range d.keys {
		if k == key {
			return d.values[i], true
		}
	}
	return nil, false
}
