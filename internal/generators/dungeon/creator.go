package dungeon

//go:generate mockgen -destination=mock/mock_creator.go -package=dungeonmock github.com/KirkDiggler/rpg-world/internal/generators/dungeon Creator

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-world/internal/entities"
	"github.com/KirkDiggler/rpg-world/internal/errors"
	"github.com/KirkDiggler/rpg-world/internal/pkg/random"
	"github.com/KirkDiggler/rpg-world/internal/repositories/presets"
)

// ExpansionChance is the percent chance the main room extends to each side
const ExpansionChance = 50

// Creator carves one dungeon below a chosen entrance
type Creator interface {
	// CreateDungeon places the entrance, stairway and rooms into grid and
	// registers the entrance. The entrance point must be empty.
	CreateDungeon(ctx context.Context, grid entities.Grid, entrance entities.Point) error
}

// CreatorConfig configures the default creator
type CreatorConfig struct {
	Distributor Distributor
	Presets     presets.Repository
	Source      *random.Source
}

// Validate validates the config
func (c *CreatorConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.Distributor == nil {
		vb.RequiredField("Distributor")
	}
	if c.Presets == nil {
		vb.RequiredField("Presets")
	}
	if c.Source == nil {
		vb.RequiredField("Source")
	}

	return vb.Build()
}

type creator struct {
	distributor Distributor
	presets     presets.Repository
	source      *random.Source
}

// NewCreator creates a dungeon creator
func NewCreator(cfg *CreatorConfig) (Creator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &creator{
		distributor: cfg.Distributor,
		presets:     cfg.Presets,
		source:      cfg.Source,
	}, nil
}

// blocked entrances added on top of the preset's for each cell kind
var (
	stairwayBlocked = entities.HorizontalDirections()
	mainRoomBlocked = []entities.Direction{entities.North, entities.South, entities.Down}
	passageBlocked  = []entities.Direction{entities.Up, entities.Down, entities.North, entities.South}
)

func (c *creator) CreateDungeon(ctx context.Context, grid entities.Grid, entrance entities.Point) error {
	if grid == nil {
		return errors.InvalidArgument("grid is required")
	}
	if grid.AlreadyHasLocationAt(entrance) {
		return errors.FailedPreconditionf("cannot create dungeon at %s: location already exists", entrance).
			WithMeta("point", entrance.String())
	}

	if _, err := c.place(ctx, grid, entities.PresetTypeDungeonEntrance, entrance); err != nil {
		return err
	}

	stairway := entrance.Add(entities.Down)
	if _, err := c.place(ctx, grid, entities.PresetTypeDungeonStairway, stairway, stairwayBlocked...); err != nil {
		return err
	}

	mainPoint := stairway.Add(entities.Down)
	mainRoom, err := c.place(ctx, grid, entities.PresetTypeDungeonRoom, mainPoint, mainRoomBlocked...)
	if err != nil {
		return err
	}

	rooms := 1
	for _, dir := range []entities.Direction{entities.East, entities.West} {
		extend, err := c.source.Chance(ExpansionChance)
		if err != nil {
			return errors.Wrapf(err, "failed to roll %s expansion", dir)
		}

		if !extend {
			if mainRoom != nil {
				mainRoom.Block(dir)
			}
			continue
		}

		corridor := mainPoint.Add(dir)
		if _, err := c.place(ctx, grid, entities.PresetTypeDungeonCorridor, corridor, passageBlocked...); err != nil {
			return err
		}

		roomBlocked := append(append([]entities.Direction{}, passageBlocked...), dir.Invert())
		if _, err := c.place(ctx, grid, entities.PresetTypeDungeonRoom, corridor.Add(dir), roomBlocked...); err != nil {
			return err
		}
		rooms++
	}

	if err := c.distributor.RegisterDungeonEntrance(entrance); err != nil {
		return errors.Wrap(err, "failed to register dungeon entrance")
	}

	slog.Info("Created dungeon",
		"entrance", entrance.String(),
		"rooms", rooms)

	return nil
}

// place instantiates a random preset of kind at point with extra blocked
// entrances. An occupied point is adopted as is and place returns nil.
func (c *creator) place(
	ctx context.Context,
	grid entities.Grid,
	kind entities.PresetType,
	point entities.Point,
	blocked ...entities.Direction,
) (*entities.Location, error) {
	if grid.AlreadyHasLocationAt(point) {
		slog.Warn("Dungeon cell already populated, keeping existing location",
			"point", point.String(),
			"type", kind)
		return nil, nil
	}

	out, err := c.presets.ListByType(ctx, &presets.ListByTypeInput{Type: kind})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s presets", kind)
	}

	preset, err := random.Select(c.source, out.Presets)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to select %s preset", kind)
	}

	loc := entities.NewLocation(preset, point)
	for _, d := range blocked {
		loc.Block(d)
	}

	if err := grid.AddLocation(loc); err != nil {
		return nil, errors.Wrapf(err, "failed to add %s at %s", kind, point)
	}

	return loc, nil
}
