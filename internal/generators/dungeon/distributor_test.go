package dungeon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-world/internal/entities"
	"github.com/KirkDiggler/rpg-world/internal/errors"
	"github.com/KirkDiggler/rpg-world/internal/pkg/random"
	"github.com/KirkDiggler/rpg-world/internal/testutils"
)

func TestMinimumBoundingRectangle(t *testing.T) {
	assert.Equal(t, MinimumBoundingRectangle{Width: 10, Height: 2}, DefaultMBR.Doubled())

	zone := NoEntranceZone(entities.NewPoint(3, -1, 0), MinimumBoundingRectangle{Width: 1, Height: 1})
	assert.Len(t, zone, 8)
	assert.NotContains(t, zone, entities.NewPoint(3, -1, 0))
	assert.Contains(t, zone, entities.NewPoint(2, -2, 0))
	assert.Contains(t, zone, entities.NewPoint(4, 0, 0))

	assert.Len(t, NoEntranceZone(entities.Origin, DefaultMBR.Doubled()), 21*5-1)
}

func TestNewDistributor(t *testing.T) {
	t.Run("requires source", func(t *testing.T) {
		_, err := NewDistributor(&DistributorConfig{})
		require.Error(t, err)
		assert.True(t, errors.IsInvalidArgument(err))
	})

	t.Run("nil config", func(t *testing.T) {
		_, err := NewDistributor(nil)
		require.Error(t, err)
	})

	t.Run("chance out of range", func(t *testing.T) {
		_, err := NewDistributor(&DistributorConfig{Source: random.NewSeeded(1), Chance: 101})
		require.Error(t, err)
	})

	t.Run("defaults", func(t *testing.T) {
		d, err := NewDistributor(&DistributorConfig{Source: random.NewSeeded(1)})
		require.NoError(t, err)
		impl := d.(*distributor)
		assert.Equal(t, DefaultMBR.Doubled(), impl.zone)
		assert.Equal(t, DungeonChance, impl.chance)
	})
}

func newTestDistributor(t *testing.T, roller *testutils.ScriptedRoller) Distributor {
	t.Helper()
	d, err := NewDistributor(&DistributorConfig{Source: random.New(roller)})
	require.NoError(t, err)
	return d
}

func TestIsIsolatedEnough(t *testing.T) {
	d := newTestDistributor(t, testutils.LowRoller())
	require.NoError(t, d.RegisterDungeonEntrance(entities.Origin))

	testCases := []struct {
		name     string
		point    entities.Point
		isolated bool
	}{
		{name: "zone corner", point: entities.NewPoint(10, 2, 0), isolated: false},
		{name: "zone opposite corner", point: entities.NewPoint(-10, -2, 0), isolated: false},
		{name: "neighbour", point: entities.NewPoint(1, 0, 0), isolated: false},
		{name: "just outside east", point: entities.NewPoint(11, 0, 0), isolated: true},
		{name: "just outside north", point: entities.NewPoint(0, 3, 0), isolated: true},
		{name: "other level", point: entities.NewPoint(1, 0, -1), isolated: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.isolated, d.IsIsolatedEnough(tc.point))
		})
	}
}

func TestRollForDungeon(t *testing.T) {
	t.Run("isolated and lucky", func(t *testing.T) {
		d := newTestDistributor(t, testutils.LowRoller())
		ok, err := d.RollForDungeon(entities.NewPoint(12, 0, 0))
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("isolated and unlucky", func(t *testing.T) {
		roller := testutils.NewScriptedRoller(DungeonChance + 1)
		d := newTestDistributor(t, roller)
		ok, err := d.RollForDungeon(entities.NewPoint(12, 0, 0))
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, []int{100}, roller.Calls())
	})

	t.Run("not isolated does not roll", func(t *testing.T) {
		roller := testutils.LowRoller()
		d := newTestDistributor(t, roller)
		require.NoError(t, d.RegisterDungeonEntrance(entities.Origin))

		ok, err := d.RollForDungeon(entities.NewPoint(5, 1, 0))
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, roller.Calls())
	})

	t.Run("roller failure", func(t *testing.T) {
		d, err := NewDistributor(&DistributorConfig{
			Source: random.New(&testutils.FailingRoller{Err: assert.AnError}),
		})
		require.NoError(t, err)

		_, err = d.RollForDungeon(entities.Origin)
		require.Error(t, err)
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestRegisterDungeonEntrance(t *testing.T) {
	d := newTestDistributor(t, testutils.LowRoller())

	require.NoError(t, d.RegisterDungeonEntrance(entities.NewPoint(30, 0, 0)))
	require.NoError(t, d.RegisterDungeonEntrance(entities.NewPoint(-30, 4, 0)))

	err := d.RegisterDungeonEntrance(entities.NewPoint(30, 0, 0))
	require.Error(t, err)
	assert.True(t, errors.IsAlreadyExists(err))
	assert.True(t, errors.IsFatal(err))

	assert.Equal(t, []entities.Point{
		entities.NewPoint(-30, 4, 0),
		entities.NewPoint(30, 0, 0),
	}, d.Entrances())
}
