package dungeon

//go:generate mockgen -destination=mock/mock_distributor.go -package=dungeonmock github.com/KirkDiggler/rpg-world/internal/generators/dungeon Distributor

import (
	"slices"

	"github.com/zyedidia/generic/mapset"

	"github.com/KirkDiggler/rpg-world/internal/entities"
	"github.com/KirkDiggler/rpg-world/internal/errors"
	"github.com/KirkDiggler/rpg-world/internal/pkg/random"
)

// DungeonChance is the percent chance an isolated surface cell gets a dungeon
const DungeonChance = 2

// Distributor decides where dungeon entrances may be placed and keeps the
// registry of the ones that were
type Distributor interface {
	// RollForDungeon reports whether a dungeon should start at point
	RollForDungeon(point entities.Point) (bool, error)

	// IsIsolatedEnough reports whether no registered entrance lies in the
	// exclusion zone around point
	IsIsolatedEnough(point entities.Point) bool

	// RegisterDungeonEntrance records point as an entrance. Registering a
	// point twice is an AlreadyExists error.
	RegisterDungeonEntrance(point entities.Point) error

	// Entrances returns the registered entrances in point order
	Entrances() []entities.Point
}

// DistributorConfig configures the default distributor
type DistributorConfig struct {
	Source *random.Source

	// MBR defaults to DefaultMBR when zero
	MBR MinimumBoundingRectangle

	// Chance defaults to DungeonChance when zero
	Chance int
}

// Validate validates the config
func (c *DistributorConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.Source == nil {
		vb.RequiredField("Source")
	}
	if c.MBR.Width < 0 || c.MBR.Height < 0 {
		vb.Field("MBR", "dimensions cannot be negative")
	}
	errors.ValidateRange("Chance", c.Chance, 0, 100, vb)

	return vb.Build()
}

type distributor struct {
	source    *random.Source
	zone      MinimumBoundingRectangle
	chance    int
	entrances mapset.Set[entities.Point]
}

// NewDistributor creates a distributor with an empty entrance registry
func NewDistributor(cfg *DistributorConfig) (Distributor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	mbr := cfg.MBR
	if mbr == (MinimumBoundingRectangle{}) {
		mbr = DefaultMBR
	}
	chance := cfg.Chance
	if chance == 0 {
		chance = DungeonChance
	}

	return &distributor{
		source:    cfg.Source,
		zone:      mbr.Doubled(),
		chance:    chance,
		entrances: mapset.New[entities.Point](),
	}, nil
}

func (d *distributor) RollForDungeon(point entities.Point) (bool, error) {
	if !d.IsIsolatedEnough(point) {
		return false, nil
	}

	ok, err := d.source.Chance(d.chance)
	if err != nil {
		return false, errors.Wrap(err, "failed to roll for dungeon")
	}
	return ok, nil
}

func (d *distributor) IsIsolatedEnough(point entities.Point) bool {
	for _, p := range NoEntranceZone(point, d.zone) {
		if d.entrances.Has(p) {
			return false
		}
	}
	return true
}

func (d *distributor) RegisterDungeonEntrance(point entities.Point) error {
	if d.entrances.Has(point) {
		return errors.AlreadyExistsf("dungeon entrance already registered at %s", point).
			WithMeta("point", point.String())
	}
	d.entrances.Put(point)
	return nil
}

func (d *distributor) Entrances() []entities.Point {
	out := make([]entities.Point, 0, d.entrances.Size())
	d.entrances.Each(func(p entities.Point) {
		out = append(out, p)
	})
	slices.SortFunc(out, entities.Point.Compare)
	return out
}
