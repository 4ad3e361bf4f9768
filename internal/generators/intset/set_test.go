package intset

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-world/internal/errors"
	"github.com/KirkDiggler/rpg-world/internal/pkg/random"
	"github.com/KirkDiggler/rpg-world/internal/testutils"
)

func TestNew_RejectsInvalidDifferences(t *testing.T) {
	testCases := []struct {
		name     string
		min, max int
	}{
		{"zero minimum", 0, 5},
		{"negative minimum", -2, 5},
		{"maximum equal to minimum", 4, 4},
		{"maximum below minimum", 6, 3},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := New(tc.min, tc.max, random.New(testutils.LowRoller()))
			assert.Nil(t, s)
			assert.True(t, errors.IsInvalidArgument(err))
		})
	}

	t.Run("missing source", func(t *testing.T) {
		_, err := New(1, 2, nil)
		assert.True(t, errors.IsInvalidArgument(err))
	})
}

func TestNew_SeedsBelowMinimumDifference(t *testing.T) {
	for seed := uint64(0); seed < 50; seed++ {
		s, err := New(6, 11, random.NewSeeded(seed))
		require.NoError(t, err)
		require.Equal(t, 1, s.Len())
		assert.GreaterOrEqual(t, s.Min(), 0)
		assert.Less(t, s.Min(), 6)
	}
}

func TestExpand_ScriptedGaps(t *testing.T) {
	// seed: d4 -> 3 gives 2; gaps are 4 + (d16 - 1)
	roller := testutils.NewScriptedRoller(3, 1, 16, 5)
	s, err := New(4, 20, random.New(roller))
	require.NoError(t, err)
	assert.Equal(t, []int{2}, s.Values())

	added, err := s.Expand(10)
	require.NoError(t, err)
	assert.Equal(t, []int{6, 25}, added)

	added, err = s.Expand(-5)
	require.NoError(t, err)
	assert.Equal(t, []int{-6}, added)
	assert.Equal(t, []int{-6, 2, 6, 25}, s.Values())
	assert.Equal(t, 0, roller.Remaining())
}

func TestExpand_IsNoOpInsideCoveredRange(t *testing.T) {
	s, err := New(4, 20, random.NewSeeded(7))
	require.NoError(t, err)

	_, err = s.Expand(100)
	require.NoError(t, err)
	_, err = s.Expand(-100)
	require.NoError(t, err)
	before := s.Values()

	for _, target := range []int{-50, 0, 3, 42, 99} {
		added, err := s.Expand(target)
		require.NoError(t, err)
		assert.Empty(t, added)
	}
	assert.Equal(t, before, s.Values())
}

func TestExpand_SpacingInvariant(t *testing.T) {
	pairs := []struct{ min, max int }{
		{1, 2},
		{4, 20},
		{6, 11},
		{3, 4},
	}

	for _, pair := range pairs {
		for seed := uint64(1); seed <= 20; seed++ {
			s, err := New(pair.min, pair.max, random.NewSeeded(seed))
			require.NoError(t, err)

			for target := 0; target <= 200; target += 7 {
				_, err := s.Expand(target)
				require.NoError(t, err)
				assert.Greater(t, s.Max(), target)
			}
			for target := 0; target >= -200; target -= 13 {
				_, err := s.Expand(target)
				require.NoError(t, err)
				assert.Less(t, s.Min(), target)
			}

			values := s.Values()
			for i := 1; i < len(values); i++ {
				gap := values[i] - values[i-1]
				require.GreaterOrEqual(t, gap, pair.min, "values %v", values)
				require.Less(t, gap, pair.max, "values %v", values)
			}
		}
	}
}

func TestExpand_ReturnsEveryNewElement(t *testing.T) {
	s, err := New(2, 5, random.NewSeeded(3))
	require.NoError(t, err)

	seen := map[int]bool{s.Min(): true}
	for _, target := range []int{10, -10, 30, -30} {
		added, err := s.Expand(target)
		require.NoError(t, err)
		for _, v := range added {
			assert.False(t, seen[v], "value %d reported twice", v)
			seen[v] = true
		}
	}
	assert.Len(t, seen, s.Len())
	for v := range seen {
		assert.True(t, s.Contains(v))
	}
}

func TestContains_DoesNotExpand(t *testing.T) {
	s, err := New(4, 20, random.New(testutils.NewScriptedRoller(1)))
	require.NoError(t, err)

	assert.True(t, s.Contains(0))
	assert.False(t, s.Contains(1000))
	assert.Equal(t, 1, s.Len())
}

func TestExpand_PropagatesRollerFailure(t *testing.T) {
	roller := testutils.NewScriptedRoller(1)
	s, err := New(4, 20, random.New(roller))
	require.NoError(t, err)

	s.source = random.New(&testutils.FailingRoller{Err: stderrors.New("dice lost")})
	_, err = s.Expand(50)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dice lost")
	assert.Equal(t, []int{0}, s.Values())
}
