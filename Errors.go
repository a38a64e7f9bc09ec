package gospace

import (
	"fmt"

	"github.com/emer/etable/etensor"
)

// BroadcastError indicates that a bound supplied at construction could
// not be broadcast to the shape of the space.
type BroadcastError struct {
	Value interface{}
	Shape []int
}

func (e *BroadcastError) Error() string {
	return fmt.Sprintf("cannot broadcast %v to shape %v", e.Value, e.Shape)
}

// UnsupportedTypeError indicates that bound inference or sampling was
// requested for an element type outside the supported set of floating
// point, fixed-width integer, and boolean types.
type UnsupportedTypeError struct {
	Dtype etensor.Type
	Op    string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("%v: unsupported element type %v", e.Op,
		dtypeName(e.Dtype))
}
