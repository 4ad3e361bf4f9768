package river

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-world/internal/entities"
	"github.com/KirkDiggler/rpg-world/internal/errors"
	"github.com/KirkDiggler/rpg-world/internal/pkg/random"
	"github.com/KirkDiggler/rpg-world/internal/testutils"
)

type GeneratorTestSuite struct {
	suite.Suite
}

func TestGeneratorSuite(t *testing.T) {
	suite.Run(t, new(GeneratorTestSuite))
}

func (s *GeneratorTestSuite) TestNewGeneratorValidatesConfig() {
	_, err := NewGenerator(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = NewGenerator(&Config{})
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "Source: is required")

	g, err := NewGenerator(&Config{Source: random.NewSeeded(1)})
	s.NoError(err)
	s.NotNil(g)
}

func (s *GeneratorTestSuite) TestNoRiverNearOrigin() {
	for seed := uint64(1); seed <= 30; seed++ {
		g, err := newGenerator(&Config{Source: random.NewSeeded(seed)})
		s.Require().NoError(err)

		s.Require().NoError(g.Expand(entities.Origin, 5))
		s.Require().NoError(g.Expand(entities.NewPoint(-300, 0, 0), 5))
		s.Require().NoError(g.Expand(entities.NewPoint(300, 0, 0), 5))

		lines := g.Lines()
		s.NotEmpty(lines)
		for i, x := range lines {
			s.GreaterOrEqual(abs(x), Start, "river at x=%d", x)
			if i > 0 {
				s.GreaterOrEqual(x-lines[i-1], MinRiverDistance)
			}
		}

		for x := -Start + 1; x < Start; x++ {
			isRiver, err := g.IsRiver(entities.NewPoint(x, 0, 0))
			s.Require().NoError(err)
			s.False(isRiver)
		}
	}
}

func (s *GeneratorTestSuite) TestExpandCoversSpan() {
	g, err := newGenerator(&Config{Source: random.NewSeeded(9)})
	s.Require().NoError(err)

	s.Require().NoError(g.Expand(entities.NewPoint(40, 0, 0), 5))
	s.Greater(g.lines.Max(), 45)
	s.Less(g.lines.Min(), MinRiverDistance)

	s.Require().NoError(g.Expand(entities.NewPoint(-40, 0, 0), 5))
	s.Less(g.lines.Min(), -45)
}

func (s *GeneratorTestSuite) TestRiverAndBridgeAreExclusive() {
	g, err := newGenerator(&Config{Source: random.NewSeeded(4)})
	s.Require().NoError(err)
	s.Require().NoError(g.Expand(entities.NewPoint(60, 0, 0), 5))

	lines := g.Lines()
	s.Require().NotEmpty(lines)
	x := lines[0]

	bridges := 0
	for y := -100; y <= 100; y++ {
		p := entities.NewPoint(x, y, 0)
		isRiver, err := g.IsRiver(p)
		s.Require().NoError(err)
		isBridge, err := g.IsBridge(p)
		s.Require().NoError(err)

		s.NotEqual(isRiver, isBridge, "point %s", p)
		if isBridge {
			bridges++
		}
	}
	s.Positive(bridges)

	// a column without a river is neither
	notRiver := entities.NewPoint(x+1, 0, 0)
	isRiver, err := g.IsRiver(notRiver)
	s.Require().NoError(err)
	isBridge, err := g.IsBridge(notRiver)
	s.Require().NoError(err)
	s.False(isRiver)
	s.False(isBridge)
}

func (s *GeneratorTestSuite) TestScriptedLines() {
	// line seed d6 -> 1 gives 0; line gaps are 6 + (d5 - 1); every new River
	// rolls a d4 to seed its first bridge
	roller := testutils.NewScriptedRoller(
		1,    // line seed: 0
		5,    // gap 10 downward: -10
		2,    // bridge seed of the river at -10
		1,    // gap 6 upward: 6, too close to the origin for a river
		5, 3, // gap 10 upward: 16, and its bridge seed
	)
	g, err := newGenerator(&Config{Source: random.New(roller)})
	s.Require().NoError(err)

	s.Require().NoError(g.Expand(entities.Origin, 5))
	s.Equal([]int{-10, 0, 6}, g.lines.Values())
	s.Equal([]int{-10}, g.Lines())

	s.Require().NoError(g.Expand(entities.NewPoint(10, 0, 0), 5))
	s.Equal([]int{-10, 0, 6, 16}, g.lines.Values())
	s.Equal([]int{-10, 16}, g.Lines())
	s.Equal(0, roller.Remaining())
}
