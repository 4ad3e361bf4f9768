package testutils

import (
	"slices"

	"github.com/KirkDiggler/rpg-world/internal/entities"
	"github.com/KirkDiggler/rpg-world/internal/errors"
)

// MapGrid is a bare entities.Grid for generator tests
type MapGrid struct {
	Cells map[entities.Point]*entities.Location
}

// NewMapGrid creates an empty grid
func NewMapGrid() *MapGrid {
	return &MapGrid{Cells: make(map[entities.Point]*entities.Location)}
}

var _ entities.Grid = (*MapGrid)(nil)

// AlreadyHasLocationAt reports whether point is populated
func (g *MapGrid) AlreadyHasLocationAt(point entities.Point) bool {
	_, exists := g.Cells[point]
	return exists
}

// AddLocation stores location, rejecting occupied points
func (g *MapGrid) AddLocation(location *entities.Location) error {
	if _, exists := g.Cells[location.Point]; exists {
		return errors.AlreadyExistsf("location already exists at %s", location.Point)
	}
	g.Cells[location.Point] = location
	return nil
}

// At returns the location at point or nil
func (g *MapGrid) At(point entities.Point) *entities.Location {
	return g.Cells[point]
}

// Points returns every populated point in point order
func (g *MapGrid) Points() []entities.Point {
	out := make([]entities.Point, 0, len(g.Cells))
	for p := range g.Cells {
		out = append(out, p)
	}
	slices.SortFunc(out, entities.Point.Compare)
	return out
}

// Clone returns a grid holding the same locations
func (g *MapGrid) Clone() *MapGrid {
	c := NewMapGrid()
	for p, loc := range g.Cells {
		c.Cells[p] = loc
	}
	return c
}
