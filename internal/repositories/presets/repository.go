// Package presets provides the store of location blueprints the world
// generators instantiate, keyed by preset ID and by category.
package presets

//go:generate mockgen -destination=mock/mock_repository.go -package=presetsmock github.com/KirkDiggler/rpg-world/internal/repositories/presets Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-world/internal/entities"
)

// Repository defines the lookup interface for location presets
type Repository interface {
	// Get retrieves a preset by ID
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// ListByType returns every preset of a category in catalog order
	ListByType(ctx context.Context, input *ListByTypeInput) (*ListByTypeOutput, error)

	// Add stores a new preset, rejecting repeated IDs
	Add(ctx context.Context, input *AddInput) (*AddOutput, error)
}

// GetInput defines the request for retrieving a preset
type GetInput struct {
	ID string
}

// GetOutput defines the response for retrieving a preset
type GetOutput struct {
	Preset *entities.LocationPreset
}

// ListByTypeInput defines the request for listing a category
type ListByTypeInput struct {
	Type entities.PresetType
}

// ListByTypeOutput defines the response for listing a category
type ListByTypeOutput struct {
	Presets []*entities.LocationPreset
}

// AddInput defines the request for adding a preset
type AddInput struct {
	Preset *entities.LocationPreset
}

// AddOutput defines the response for adding a preset
type AddOutput struct {
	Preset *entities.LocationPreset
}
