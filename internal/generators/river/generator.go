package river

import (
	"maps"
	"slices"

	"github.com/KirkDiggler/rpg-world/internal/entities"
	"github.com/KirkDiggler/rpg-world/internal/errors"
	"github.com/KirkDiggler/rpg-world/internal/generators/intset"
	"github.com/KirkDiggler/rpg-world/internal/pkg/random"
)

//go:generate mockgen -destination=mock/mock_generator.go -package=rivermock github.com/KirkDiggler/rpg-world/internal/generators/river Generator

// River line spacing and the distance from the origin before rivers appear
const (
	MinRiverDistance = 6
	MaxRiverDistance = 11
	Start            = 10
)

// Generator decides which surface cells are river and which are bridges
type Generator interface {
	// Expand makes sure every column in [point.X - chunkSide, point.X + chunkSide]
	// is either a known river line or known not to be one
	Expand(point entities.Point, chunkSide int) error

	// IsRiver reports whether point is water
	IsRiver(point entities.Point) (bool, error)

	// IsBridge reports whether point is a bridge over a river
	IsBridge(point entities.Point) (bool, error)

	// Lines returns the x of every materialized river in ascending order
	Lines() []int
}

// Config holds the dependencies for the river generator
type Config struct {
	Source *random.Source
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.Source == nil {
		vb.RequiredField("Source")
	}
	return vb.Build()
}

type generator struct {
	source *random.Source
	lines  *intset.Set
	rivers map[int]*River
}

// NewGenerator creates a river generator
func NewGenerator(cfg *Config) (Generator, error) {
	return newGenerator(cfg)
}

func newGenerator(cfg *Config) (*generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	lines, err := intset.New(MinRiverDistance, MaxRiverDistance, cfg.Source)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create river lines")
	}

	return &generator{
		source: cfg.Source,
		lines:  lines,
		rivers: make(map[int]*River),
	}, nil
}

// Expand grows the line set toward both edges of the span and materializes a
// River for every new line far enough from the origin.
func (g *generator) Expand(point entities.Point, chunkSide int) error {
	for _, target := range []int{point.X - chunkSide, point.X + chunkSide} {
		added, err := g.lines.Expand(target)
		if err != nil {
			return errors.Wrapf(err, "failed to expand river lines toward x=%d", target)
		}
		for _, x := range added {
			if abs(x) < Start {
				continue
			}
			r, err := NewRiver(x, g.source)
			if err != nil {
				return err
			}
			g.rivers[x] = r
		}
	}
	return nil
}

func (g *generator) IsRiver(point entities.Point) (bool, error) {
	r, ok := g.rivers[point.X]
	if !ok {
		return false, nil
	}
	bridge, err := r.IsBridge(point.Y)
	if err != nil {
		return false, err
	}
	return !bridge, nil
}

func (g *generator) IsBridge(point entities.Point) (bool, error) {
	r, ok := g.rivers[point.X]
	if !ok {
		return false, nil
	}
	return r.IsBridge(point.Y)
}

func (g *generator) Lines() []int {
	return slices.Sorted(maps.Keys(g.rivers))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
