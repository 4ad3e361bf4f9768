// Package river places an unbounded field of roughly parallel north-south
// rivers, each crossable only at sparse bridges.
package river

import (
	"github.com/KirkDiggler/rpg-world/internal/errors"
	"github.com/KirkDiggler/rpg-world/internal/generators/intset"
	"github.com/KirkDiggler/rpg-world/internal/pkg/random"
)

// Bridge spacing along a river
const (
	MinBridgeDistance = 4
	MaxBridgeDistance = 20
)

// River is a single river line. Every y along it is water except bridges.
type River struct {
	x       int
	bridges *intset.Set
}

// NewRiver creates the river running along x
func NewRiver(x int, source *random.Source) (*River, error) {
	bridges, err := intset.New(MinBridgeDistance, MaxBridgeDistance, source)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create bridges for river at x=%d", x)
	}
	return &River{x: x, bridges: bridges}, nil
}

// X returns the column the river runs along
func (r *River) X() int {
	return r.x
}

// IsBridge expands the bridges toward y and reports whether y is one
func (r *River) IsBridge(y int) (bool, error) {
	if _, err := r.bridges.Expand(y); err != nil {
		return false, errors.Wrapf(err, "failed to expand bridges of river at x=%d", r.x)
	}
	return r.bridges.Contains(y), nil
}

// Bridges returns the bridge positions generated so far
func (r *River) Bridges() []int {
	return r.bridges.Values()
}
