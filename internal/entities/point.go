// Package entities provides the core data structures of the generated world.
package entities

import "fmt"

// Point is a cell of the world grid. Z == 0 is the surface; negative Z is
// underground and only dungeons reach it.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

// NewPoint creates a point
func NewPoint(x, y, z int) Point {
	return Point{X: x, Y: y, Z: z}
}

// Origin is the surface cell at (0, 0, 0)
var Origin = Point{}

// Add returns the point one step away in direction d
func (p Point) Add(d Direction) Point {
	offset := d.Offset()
	return Point{X: p.X + offset.X, Y: p.Y + offset.Y, Z: p.Z + offset.Z}
}

// IsSurface reports whether p lies on the surface plane
func (p Point) IsSurface() bool {
	return p.Z == 0
}

// Less orders points by z, then x, then y
func (p Point) Less(other Point) bool {
	if p.Z != other.Z {
		return p.Z < other.Z
	}
	if p.X != other.X {
		return p.X < other.X
	}
	return p.Y < other.Y
}

// Compare returns -1, 0 or 1 following Less
func (p Point) Compare(other Point) int {
	switch {
	case p == other:
		return 0
	case p.Less(other):
		return -1
	default:
		return 1
	}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d, %d)", p.X, p.Y, p.Z)
}
