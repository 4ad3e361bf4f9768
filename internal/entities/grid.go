package entities

// Grid is the sparse location map generators write into. Implementations
// must reject a second location at an occupied point.
type Grid interface {
	// AlreadyHasLocationAt reports whether point is populated, without
	// triggering any generation
	AlreadyHasLocationAt(point Point) bool

	// AddLocation stores location at location.Point
	AddLocation(location *Location) error
}
