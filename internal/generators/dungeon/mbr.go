// Package dungeon places dungeons below the surface: the distributor decides
// where an entrance may go and the creator carves the rooms beneath it.
package dungeon

import (
	"github.com/KirkDiggler/rpg-world/internal/entities"
)

// MinimumBoundingRectangle is the largest footprint a single dungeon can
// occupy on one z level
type MinimumBoundingRectangle struct {
	Width  int
	Height int
}

// DefaultMBR covers a straight line of three rooms joined by two corridors
var DefaultMBR = MinimumBoundingRectangle{Width: 5, Height: 1}

// Doubled returns the rectangle with both sides doubled. Two dungeons whose
// entrances are outside each other's doubled rectangle cannot touch.
func (m MinimumBoundingRectangle) Doubled() MinimumBoundingRectangle {
	return MinimumBoundingRectangle{Width: m.Width * 2, Height: m.Height * 2}
}

// NoEntranceZone lists every point within [-Width, Width] x [-Height, Height]
// of point on the same z level, excluding point itself
func NoEntranceZone(point entities.Point, mbr MinimumBoundingRectangle) []entities.Point {
	zone := make([]entities.Point, 0, (2*mbr.Width+1)*(2*mbr.Height+1)-1)
	for dx := -mbr.Width; dx <= mbr.Width; dx++ {
		for dy := -mbr.Height; dy <= mbr.Height; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			zone = append(zone, entities.NewPoint(point.X+dx, point.Y+dy, point.Z))
		}
	}
	return zone
}
