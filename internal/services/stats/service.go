// Package stats keeps world statistics, fed by the world's location events.
package stats

//go:generate mockgen -destination=mock/mock_service.go -package=statsmock github.com/KirkDiggler/rpg-world/internal/services/stats Service

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-world/internal/entities"
	"github.com/KirkDiggler/rpg-world/internal/errors"
	"github.com/KirkDiggler/rpg-world/internal/world"
)

// Service defines the interface for reading world statistics
type Service interface {
	GetWorldStatistics(ctx context.Context, input *GetWorldStatisticsInput) (*GetWorldStatisticsOutput, error)
}

// GetWorldStatisticsInput defines the request for world statistics
type GetWorldStatisticsInput struct {
	// Limit caps the number of names returned; zero returns all
	Limit int
}

// GetWorldStatisticsOutput defines the response for world statistics
type GetWorldStatisticsOutput struct {
	LocationCount int
	ByName        []NameCount
	ByType        map[entities.PresetType]int
}

// NameCount is how many locations of one name were generated
type NameCount struct {
	Name  string
	Count int
}

// Config holds the dependencies for the statistics tracker
type Config struct {
	EventBus events.EventBus
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	return vb.Build()
}

// Tracker counts generated locations as they are published
type Tracker struct {
	bus            events.EventBus
	subscriptionID string

	mu     sync.RWMutex
	total  int
	byName map[string]int
	byType map[entities.PresetType]int
}

var _ Service = (*Tracker)(nil)

// New creates a tracker subscribed to the bus
func New(cfg *Config) (*Tracker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	t := &Tracker{
		bus:    cfg.EventBus,
		byName: make(map[string]int),
		byType: make(map[entities.PresetType]int),
	}
	t.subscriptionID = cfg.EventBus.SubscribeFunc(world.EventLocationGenerated, 0, t.handle)
	return t, nil
}

// Close stops tracking
func (t *Tracker) Close() error {
	if err := t.bus.Unsubscribe(t.subscriptionID); err != nil {
		return errors.Wrap(err, "failed to unsubscribe statistics tracker")
	}
	return nil
}

func (t *Tracker) handle(_ context.Context, event events.Event) error {
	loc, ok := event.Source().(*entities.Location)
	if !ok {
		return errors.InvalidArgumentf("unexpected event source %T", event.Source())
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.total++
	t.byName[loc.Name]++
	t.byType[loc.Type]++
	return nil
}

// GetWorldStatistics returns the counts so far, most common names first
func (t *Tracker) GetWorldStatistics(_ context.Context, input *GetWorldStatisticsInput) (*GetWorldStatisticsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Limit < 0 {
		return nil, errors.InvalidArgument("limit cannot be negative")
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	names := make([]NameCount, 0, len(t.byName))
	for name, count := range t.byName {
		names = append(names, NameCount{Name: name, Count: count})
	}
	slices.SortFunc(names, func(a, b NameCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	if input.Limit > 0 && len(names) > input.Limit {
		names = names[:input.Limit]
	}

	byType := make(map[entities.PresetType]int, len(t.byType))
	for k, v := range t.byType {
		byType[k] = v
	}

	return &GetWorldStatisticsOutput{
		LocationCount: t.total,
		ByName:        names,
		ByType:        byType,
	}, nil
}
