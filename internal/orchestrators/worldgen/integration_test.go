package worldgen

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-world/internal/entities"
	"github.com/KirkDiggler/rpg-world/internal/generators/dungeon"
	"github.com/KirkDiggler/rpg-world/internal/pkg/random"
	"github.com/KirkDiggler/rpg-world/internal/repositories/presets"
	"github.com/KirkDiggler/rpg-world/internal/testutils"
)

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestGeneratedRegion(t *testing.T) {
	ctx := context.Background()
	repo, err := presets.NewDefault()
	require.NoError(t, err)

	for _, seed := range []uint64{1, 2, 3, 42, 1234} {
		cfg, err := DefaultConfig(5, repo, random.NewSeeded(seed))
		require.NoError(t, err)
		svc, err := New(cfg)
		require.NoError(t, err)

		grid := testutils.NewMapGrid()
		expandRegion := func() {
			for x := -80; x < 80; x += 5 {
				for y := -25; y < 25; y += 5 {
					_, err := svc.Expand(ctx, &ExpandInput{Grid: grid, Point: entities.NewPoint(x, y, 0)})
					require.NoError(t, err, "seed %d at (%d, %d)", seed, x, y)
				}
			}
		}

		expandRegion()

		for x := -80; x < 80; x++ {
			for y := -25; y < 25; y++ {
				require.True(t, grid.AlreadyHasLocationAt(entities.NewPoint(x, y, 0)), "seed %d: hole at (%d, %d)", seed, x, y)
			}
		}

		for _, loc := range grid.Cells {
			if loc.Type == entities.PresetTypeRiver || loc.Type == entities.PresetTypeBridge {
				assert.GreaterOrEqual(t, abs(loc.Point.X), 10, "seed %d: water at %s", seed, loc.Point)
			}
			if loc.Point.Z < 0 {
				assert.GreaterOrEqual(t, loc.Point.Z, -2)
			}
		}

		entrances := cfg.Distributor.Entrances()
		zone := dungeon.DefaultMBR.Doubled()
		for i, a := range entrances {
			entrance := grid.At(a)
			require.NotNil(t, entrance)
			assert.Equal(t, entities.PresetTypeDungeonEntrance, entrance.Type)
			assert.NotNil(t, grid.At(a.Add(entities.Down)), "seed %d: no stairway below %s", seed, a)

			for _, b := range entrances[i+1:] {
				tooClose := abs(a.X-b.X) <= zone.Width && abs(a.Y-b.Y) <= zone.Height
				assert.False(t, tooClose, "seed %d: entrances %s and %s overlap", seed, a, b)
			}
		}

		size := len(grid.Cells)
		expandRegion()
		assert.Len(t, grid.Cells, size, "seed %d: second pass changed the map", seed)
	}
}

func TestRiversSplitTheSurface(t *testing.T) {
	ctx := context.Background()
	repo, err := presets.NewDefault()
	require.NoError(t, err)

	cfg, err := DefaultConfig(5, repo, random.NewSeeded(99))
	require.NoError(t, err)
	svc, err := New(cfg)
	require.NoError(t, err)

	grid := testutils.NewMapGrid()
	for x := 0; x < 40; x += 5 {
		for y := -50; y < 50; y += 5 {
			_, err := svc.Expand(ctx, &ExpandInput{Grid: grid, Point: entities.NewPoint(x, y, 0)})
			require.NoError(t, err)
		}
	}

	// the line set guarantees at least one river column in [10, 40)
	var column int
	for _, x := range cfg.Rivers.Lines() {
		if x >= 10 && x < 40 {
			column = x
			break
		}
	}
	require.NotZero(t, column)

	for y := -50; y < 50; y++ {
		loc := grid.At(entities.NewPoint(column, y, 0))
		require.NotNil(t, loc)
		assert.Contains(t, []entities.PresetType{entities.PresetTypeRiver, entities.PresetTypeBridge}, loc.Type)
	}
}
