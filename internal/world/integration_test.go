package world_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-world/internal/entities"
	"github.com/KirkDiggler/rpg-world/internal/orchestrators/worldgen"
	"github.com/KirkDiggler/rpg-world/internal/pkg/random"
	"github.com/KirkDiggler/rpg-world/internal/repositories/presets"
	"github.com/KirkDiggler/rpg-world/internal/world"
)

func newSeededWorld(t *testing.T, seed uint64) *world.World {
	t.Helper()

	repo, err := presets.NewDefault()
	require.NoError(t, err)
	cfg, err := worldgen.DefaultConfig(5, repo, random.NewSeeded(seed))
	require.NoError(t, err)
	gen, err := worldgen.New(cfg)
	require.NoError(t, err)
	w, err := world.New(&world.Config{Generator: gen})
	require.NoError(t, err)
	return w
}

func TestDungeonShapes(t *testing.T) {
	ctx := context.Background()

	for seed := uint64(1); seed <= 10; seed++ {
		w := newSeededWorld(t, seed)
		for x := -100; x < 100; x += 3 {
			for y := -30; y < 30; y += 3 {
				_, err := w.GetLocation(ctx, entities.NewPoint(x, y, 0))
				require.NoError(t, err)
			}
		}

		var entrances []entities.Point
		for _, loc := range w.Locations() {
			if loc.Type != entities.PresetTypeDungeonEntrance {
				continue
			}
			entrances = append(entrances, loc.Point)

			stair, err := w.GetLocation(ctx, loc.Point.Add(entities.Down))
			require.NoError(t, err)
			assert.Equal(t, entities.PresetTypeDungeonStairway, stair.Type)

			hall, err := w.GetLocation(ctx, stair.Point.Add(entities.Down))
			require.NoError(t, err)
			assert.True(t, hall.IsBlocked(entities.North))
			assert.True(t, hall.IsBlocked(entities.South))
			assert.True(t, hall.IsBlocked(entities.Down))

			for _, dir := range []entities.Direction{entities.East, entities.West} {
				corridorPoint := hall.Point.Add(dir)
				if hall.IsBlocked(dir) {
					has, err := w.HasLocationAt(ctx, corridorPoint)
					require.NoError(t, err)
					assert.False(t, has, "seed %d: blocked side %s of %s leads somewhere", seed, dir, hall.Point)
					continue
				}

				corridor, err := w.GetLocation(ctx, corridorPoint)
				require.NoError(t, err)
				assert.Equal(t, entities.PresetTypeDungeonCorridor, corridor.Type)

				room, err := w.GetLocation(ctx, corridorPoint.Add(dir))
				require.NoError(t, err)
				assert.Equal(t, entities.PresetTypeDungeonRoom, room.Type)
				assert.True(t, room.IsBlocked(dir.Invert()))
			}
		}

		for i, a := range entrances {
			for _, b := range entrances[i+1:] {
				dx, dy := a.X-b.X, a.Y-b.Y
				assert.False(t, dx >= -10 && dx <= 10 && dy >= -2 && dy <= 2,
					"seed %d: entrances %s and %s too close", seed, a, b)
			}
		}
	}
}

func TestLookupIsIdempotent(t *testing.T) {
	ctx := context.Background()
	w := newSeededWorld(t, 5)

	first, err := w.GetLocation(ctx, entities.NewPoint(33, -7, 0))
	require.NoError(t, err)
	size := w.Size()

	again, err := w.GetLocation(ctx, entities.NewPoint(33, -7, 0))
	require.NoError(t, err)
	assert.Same(t, first, again)
	assert.Equal(t, size, w.Size())
}
