// Package gospace describes spaces of actions, observations, and other
// bounded values. A space pairs a scalar element type with a shape and
// per-element inclusive bounds, and supports membership testing and
// uniform random sampling. It is the Go equivalent of a description of
// the gym.spaces package, without any attached environment.
package gospace

import (
	"github.com/emer/etable/etensor"
)

// Space describes a space of actions, observations, etc. The simple
// space is Box; DictSpace and TupleSpace compose simpler spaces.
type Space interface {
	// Sample takes a sample from within the space's bounds. Composite
	// spaces return one tensor per contained simple space, in
	// recursive order.
	Sample() ([]etensor.Tensor, error)

	// Contains returns whether x is in the space
	Contains(x interface{}) bool

	// Seed seeds the sampler for the space
	Seed(uint64)
}
