package presets

import (
	"context"
	"slices"
	"sync"

	"github.com/KirkDiggler/rpg-world/internal/entities"
	"github.com/KirkDiggler/rpg-world/internal/errors"
)

// InMemoryRepository implements Repository over maps
type InMemoryRepository struct {
	mu     sync.RWMutex
	byID   map[string]*entities.LocationPreset
	byType map[entities.PresetType][]*entities.LocationPreset
}

// NewInMemory creates an empty in-memory preset store
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		byID:   make(map[string]*entities.LocationPreset),
		byType: make(map[entities.PresetType][]*entities.LocationPreset),
	}
}

var _ Repository = (*InMemoryRepository)(nil)

// Get retrieves a preset by ID
func (r *InMemoryRepository) Get(_ context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ID == "" {
		return nil, errors.InvalidArgument("preset ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	preset, exists := r.byID[input.ID]
	if !exists {
		return nil, errors.NotFoundf("preset %q not found", input.ID)
	}

	return &GetOutput{Preset: preset}, nil
}

// ListByType returns every preset of a category. An empty category is
// NotFound since the generators cannot place anything from it.
func (r *InMemoryRepository) ListByType(_ context.Context, input *ListByTypeInput) (*ListByTypeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !input.Type.IsValid() {
		return nil, errors.InvalidArgumentf("unknown preset type %q", input.Type)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	list := r.byType[input.Type]
	if len(list) == 0 {
		return nil, errors.NotFoundf("no presets of type %s", input.Type)
	}

	return &ListByTypeOutput{Presets: slices.Clone(list)}, nil
}

// Add stores a new preset
func (r *InMemoryRepository) Add(_ context.Context, input *AddInput) (*AddOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := input.Preset.Validate(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[input.Preset.ID]; exists {
		return nil, errors.AlreadyExistsf("preset %q already exists", input.Preset.ID).
			WithMeta("preset_id", input.Preset.ID)
	}

	r.byID[input.Preset.ID] = input.Preset
	r.byType[input.Preset.Type] = append(r.byType[input.Preset.Type], input.Preset)

	return &AddOutput{Preset: input.Preset}, nil
}

// Size returns the number of stored presets
func (r *InMemoryRepository) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}

// Types returns the categories that have at least one preset
func (r *InMemoryRepository) Types() []entities.PresetType {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []entities.PresetType
	for _, t := range entities.AllPresetTypes() {
		if len(r.byType[t]) > 0 {
			out = append(out, t)
		}
	}
	return out
}
