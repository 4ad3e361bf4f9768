package entities

import (
	"strings"

	"github.com/KirkDiggler/rpg-world/internal/errors"
)

// Direction is one of the six unit moves on the grid. The declaration order
// is load bearing: Invert relies on opposite directions being three apart.
type Direction int

// Directions in ordinal order
const (
	Up Direction = iota
	North
	East
	Down
	South
	West
)

var directionData = [...]struct {
	name   string
	abbrev string
	offset Point
}{
	Up:    {"Up", "U", Point{0, 0, 1}},
	North: {"North", "N", Point{0, 1, 0}},
	East:  {"East", "E", Point{1, 0, 0}},
	Down:  {"Down", "D", Point{0, 0, -1}},
	South: {"South", "S", Point{0, -1, 0}},
	West:  {"West", "W", Point{-1, 0, 0}},
}

// AllDirections returns every direction in ordinal order
func AllDirections() []Direction {
	return []Direction{Up, North, East, Down, South, West}
}

// HorizontalDirections returns the four directions on a z-layer
func HorizontalDirections() []Direction {
	return []Direction{North, East, South, West}
}

// IsValid returns true for the six declared directions
func (d Direction) IsValid() bool {
	return d >= Up && d <= West
}

// Offset returns the unit vector of d
func (d Direction) Offset() Point {
	if !d.IsValid() {
		return Point{}
	}
	return directionData[d].offset
}

// Invert returns the opposite direction
func (d Direction) Invert() Direction {
	n := Direction(len(directionData))
	return (d + n/2) % n
}

// Abbreviation returns the one letter form, such as "N"
func (d Direction) Abbreviation() string {
	if !d.IsValid() {
		return "?"
	}
	return directionData[d].abbrev
}

func (d Direction) String() string {
	if !d.IsValid() {
		return "Unknown"
	}
	return directionData[d].name
}

// MarshalText encodes the direction by name
func (d Direction) MarshalText() ([]byte, error) {
	if !d.IsValid() {
		return nil, errors.InvalidArgumentf("invalid direction %d", int(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText accepts a name or an abbreviation
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseDirection matches a direction name or abbreviation, ignoring case
func ParseDirection(s string) (Direction, error) {
	s = strings.TrimSpace(s)
	for _, d := range AllDirections() {
		data := directionData[d]
		if strings.EqualFold(s, data.name) || strings.EqualFold(s, data.abbrev) {
			return d, nil
		}
	}
	return 0, errors.InvalidArgumentf("unknown direction %q", s)
}
