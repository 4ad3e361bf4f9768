package entities

import (
	"slices"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/zyedidia/generic/mapset"
)

// Location is one generated cell of the world
type Location struct {
	ID                string
	PresetID          string
	Type              PresetType
	Name              string
	Point             Point
	LightPermittivity float64
	Tags              []string
	GeneratedAt       time.Time

	blocked mapset.Set[Direction]
}

var _ core.Entity = (*Location)(nil)

// NewLocation instantiates preset at point. The location starts with its own
// copy of the preset's blocked entrances.
func NewLocation(preset *LocationPreset, point Point) *Location {
	loc := &Location{
		PresetID:          preset.ID,
		Type:              preset.Type,
		Name:              preset.Name,
		Point:             point,
		LightPermittivity: preset.LightPermittivity,
		Tags:              slices.Clone(preset.Tags),
		blocked:           mapset.New[Direction](),
	}
	for _, d := range preset.Blocked {
		loc.blocked.Put(d)
	}
	return loc
}

// GetID implements core.Entity
func (l *Location) GetID() string {
	return l.ID
}

// GetType implements core.Entity
func (l *Location) GetType() string {
	return "location"
}

// Block closes the entrance in direction d. It returns false if d was
// already blocked.
func (l *Location) Block(d Direction) bool {
	if l.blocked.Has(d) {
		return false
	}
	l.blocked.Put(d)
	return true
}

// IsBlocked reports whether the entrance toward d is closed
func (l *Location) IsBlocked(d Direction) bool {
	return l.blocked.Has(d)
}

// BlockedDirections returns the closed entrances in direction order
func (l *Location) BlockedDirections() []Direction {
	out := make([]Direction, 0, l.blocked.Size())
	for _, d := range AllDirections() {
		if l.blocked.Has(d) {
			out = append(out, d)
		}
	}
	return out
}
