package worldgen

import (
	"github.com/KirkDiggler/rpg-world/internal/errors"
	"github.com/KirkDiggler/rpg-world/internal/generators/dungeon"
	"github.com/KirkDiggler/rpg-world/internal/generators/river"
	"github.com/KirkDiggler/rpg-world/internal/pkg/random"
	"github.com/KirkDiggler/rpg-world/internal/repositories/presets"
)

// DefaultConfig builds a Config with the standard river and dungeon
// generators, all drawing from source
func DefaultConfig(chunkSide int, repo presets.Repository, source *random.Source) (*Config, error) {
	if repo == nil {
		return nil, errors.InvalidArgument("preset repository is required")
	}
	if source == nil {
		return nil, errors.InvalidArgument("random source is required")
	}

	rivers, err := river.NewGenerator(&river.Config{Source: source})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create river generator")
	}

	distributor, err := dungeon.NewDistributor(&dungeon.DistributorConfig{Source: source})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create dungeon distributor")
	}

	creator, err := dungeon.NewCreator(&dungeon.CreatorConfig{
		Distributor: distributor,
		Presets:     repo,
		Source:      source,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create dungeon creator")
	}

	return &Config{
		ChunkSide:   chunkSide,
		Rivers:      rivers,
		Distributor: distributor,
		Creator:     creator,
		Presets:     repo,
		Source:      source,
	}, nil
}
