// Package world holds the sparse map of generated locations. Looking up a
// cell that has not been generated yet expands the world around it.
package world

import (
	"context"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-world/internal/entities"
	"github.com/KirkDiggler/rpg-world/internal/errors"
	"github.com/KirkDiggler/rpg-world/internal/orchestrators/worldgen"
	"github.com/KirkDiggler/rpg-world/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-world/internal/pkg/idgen"
)

// EventLocationGenerated is published once for every new location. The event
// source is the *entities.Location.
const EventLocationGenerated = "world.location.generated"

// Config holds the dependencies for a World
type Config struct {
	Generator worldgen.Service

	// EventBus is optional; without one no events are published
	EventBus events.EventBus

	// IDGenerator defaults to UUIDs prefixed with "loc"
	IDGenerator idgen.Generator

	// Clock defaults to the system clock
	Clock clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.Generator == nil {
		vb.RequiredField("Generator")
	}
	return vb.Build()
}

// World is the generated map. It is safe for concurrent use; lookups and
// generation are serialised by one mutex. Event handlers run after the
// mutex is released and may call back into the World.
type World struct {
	generator worldgen.Service
	bus       events.EventBus
	idGen     idgen.Generator
	clock     clock.Clock

	mu        sync.Mutex
	locations map[entities.Point]*entities.Location
}

var _ entities.Grid = (*World)(nil)

// New creates an empty world
func New(cfg *Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	w := &World{
		generator: cfg.Generator,
		bus:       cfg.EventBus,
		idGen:     cfg.IDGenerator,
		clock:     cfg.Clock,
		locations: make(map[entities.Point]*entities.Location),
	}
	if w.idGen == nil {
		w.idGen = idgen.NewUUID("loc")
	}
	if w.clock == nil {
		w.clock = clock.New()
	}
	return w, nil
}

// GetLocation returns the location at point, generating the surrounding
// chunk first if needed. Points nothing ever generates, such as
// underground cells outside any dungeon, are NotFound.
func (w *World) GetLocation(ctx context.Context, point entities.Point) (*entities.Location, error) {
	loc, added, err := w.lookup(ctx, point, true)
	w.publish(ctx, added)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, errors.NotFoundf("no location at %s", point).
			WithMeta("point", point.String())
	}
	return loc, nil
}

// HasLocationAt reports whether there is a location at point. Only surface
// points trigger generation.
func (w *World) HasLocationAt(ctx context.Context, point entities.Point) (bool, error) {
	loc, added, err := w.lookup(ctx, point, point.IsSurface())
	w.publish(ctx, added)
	if err != nil {
		return false, err
	}
	return loc != nil, nil
}

// AlreadyHasLocationAt reports whether point is populated without
// generating anything
func (w *World) AlreadyHasLocationAt(point entities.Point) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	_, exists := w.locations[point]
	return exists
}

// AddLocation stores a location directly. Adding to an occupied point is
// an AlreadyExists error.
func (w *World) AddLocation(location *entities.Location) error {
	w.mu.Lock()
	err := w.addLocked(location)
	w.mu.Unlock()

	if err != nil {
		return err
	}
	w.publish(context.Background(), []*entities.Location{location})
	return nil
}

// Locations returns every location ordered by z, then x, then y
func (w *World) Locations() []*entities.Location {
	w.mu.Lock()
	defer w.mu.Unlock()

	points := slices.SortedFunc(maps.Keys(w.locations), entities.Point.Compare)
	out := make([]*entities.Location, len(points))
	for i, p := range points {
		out[i] = w.locations[p]
	}
	return out
}

// Size returns the number of generated locations
func (w *World) Size() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.locations)
}

// lookup returns the location at point, expanding on a miss when asked to.
// It also returns the locations generated along the way.
func (w *World) lookup(ctx context.Context, point entities.Point, expand bool) (*entities.Location, []*entities.Location, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if loc, exists := w.locations[point]; exists {
		return loc, nil, nil
	}
	if !expand {
		return nil, nil, nil
	}

	g := &expansionGrid{world: w}
	out, err := w.generator.Expand(ctx, &worldgen.ExpandInput{Grid: g, Point: point})
	if err != nil {
		return nil, g.added, errors.Wrapf(err, "failed to expand world at %s", point)
	}

	slog.Debug("World expanded",
		"point", point.String(),
		"chunk", out.Chunk.String(),
		"generated", len(g.added),
		"size", len(w.locations))

	return w.locations[point], g.added, nil
}

func (w *World) addLocked(location *entities.Location) error {
	if location == nil {
		return errors.InvalidArgument("location is required")
	}
	if _, exists := w.locations[location.Point]; exists {
		return errors.AlreadyExistsf("location already exists at %s", location.Point).
			WithMeta("point", location.Point.String())
	}

	if location.ID == "" {
		location.ID = w.idGen.Generate()
	}
	if location.GeneratedAt.IsZero() {
		location.GeneratedAt = w.clock.Now()
	}
	w.locations[location.Point] = location
	return nil
}

func (w *World) publish(ctx context.Context, added []*entities.Location) {
	if w.bus == nil {
		return
	}
	for _, loc := range added {
		event := events.NewGameEvent(EventLocationGenerated, loc, nil)
		if err := w.bus.Publish(ctx, event); err != nil {
			slog.Warn("Failed to publish location event",
				"point", loc.Point.String(),
				"error", err)
		}
	}
}

// expansionGrid lets the generator write into the world while lookup holds
// the mutex
type expansionGrid struct {
	world *World
	added []*entities.Location
}

func (g *expansionGrid) AlreadyHasLocationAt(point entities.Point) bool {
	_, exists := g.world.locations[point]
	return exists
}

func (g *expansionGrid) AddLocation(location *entities.Location) error {
	if err := g.world.addLocked(location); err != nil {
		return err
	}
	g.added = append(g.added, location)
	return nil
}
