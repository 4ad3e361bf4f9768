package locations

import (
	"context"
	"sync"

	"github.com/KirkDiggler/rpg-world/internal/entities"
	"github.com/KirkDiggler/rpg-world/internal/errors"
	"github.com/KirkDiggler/rpg-world/internal/pkg/clock"
)

// InMemoryRepository keeps snapshots in process memory
type InMemoryRepository struct {
	mu     sync.RWMutex
	clock  clock.Clock
	worlds map[string]map[entities.Point]Record
}

// NewInMemory creates an empty in-memory snapshot store. A nil clock uses
// the system clock.
func NewInMemory(c clock.Clock) *InMemoryRepository {
	if c == nil {
		c = clock.New()
	}
	return &InMemoryRepository{
		clock:  c,
		worlds: make(map[string]map[entities.Point]Record),
	}
}

var _ Repository = (*InMemoryRepository)(nil)

// Save writes locations into the world's snapshot
func (r *InMemoryRepository) Save(_ context.Context, input *SaveInput) (*SaveOutput, error) {
	if err := validateSave(input); err != nil {
		return nil, err
	}

	now := r.clock.Now()

	r.mu.Lock()
	defer r.mu.Unlock()

	world, exists := r.worlds[input.WorldID]
	if !exists {
		world = make(map[entities.Point]Record)
		r.worlds[input.WorldID] = world
	}
	for _, loc := range input.Locations {
		record := NewRecord(loc)
		record.SavedAt = now
		world[loc.Point] = *record
	}

	return &SaveOutput{Saved: len(input.Locations)}, nil
}

// Get retrieves the record at one point
func (r *InMemoryRepository) Get(_ context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.WorldID == "" {
		return nil, errors.InvalidArgument(errWorldIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	record, exists := r.worlds[input.WorldID][input.Point]
	if !exists {
		return nil, errors.NotFoundf("no location at %s in world %s", input.Point, input.WorldID)
	}

	return &GetOutput{Record: &record}, nil
}

// List returns every record of a world ordered by point
func (r *InMemoryRepository) List(_ context.Context, input *ListInput) (*ListOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.WorldID == "" {
		return nil, errors.InvalidArgument(errWorldIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	world := r.worlds[input.WorldID]
	records := make([]*Record, 0, len(world))
	for _, record := range world {
		records = append(records, &record)
	}
	sortRecords(records)

	return &ListOutput{Records: records}, nil
}
