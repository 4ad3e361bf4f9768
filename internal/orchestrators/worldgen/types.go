package worldgen

import (
	"github.com/KirkDiggler/rpg-world/internal/entities"
)

// ExpandInput defines the request for expanding the world around a point
type ExpandInput struct {
	Grid  entities.Grid
	Point entities.Point
}

// ExpandOutput summarises one expansion
type ExpandOutput struct {
	// Chunk is the surface corner of the generated chunk
	Chunk entities.Point

	// Placed counts the river, bridge and land cells added directly
	Placed int

	// Skipped counts cells that already held a location
	Skipped int

	// Dungeons counts dungeons started in this chunk
	Dungeons int
}
