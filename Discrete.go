package gospace

import (
	"fmt"

	"github.com/emer/etable/etensor"
)

// NewDiscrete returns a scalar space of discrete numbers
// (0, 1, 2, ..., n-1).
func NewDiscrete(n int) (*Box, error) {
	if n <= 0 {
		return nil, fmt.Errorf("newDiscrete: n must be positive, got %v", n)
	}
	return New(etensor.INT64, nil, 0, n-1)
}
