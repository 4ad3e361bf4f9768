package presets_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-world/internal/entities"
	"github.com/KirkDiggler/rpg-world/internal/errors"
	"github.com/KirkDiggler/rpg-world/internal/repositories/presets"
)

type InMemoryRepositoryTestSuite struct {
	suite.Suite
	ctx  context.Context
	repo *presets.InMemoryRepository
}

func (s *InMemoryRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = presets.NewInMemory()
}

func (s *InMemoryRepositoryTestSuite) meadow() *entities.LocationPreset {
	return &entities.LocationPreset{
		ID:                "meadow",
		Type:              entities.PresetTypeLand,
		Name:              "Meadow",
		BlobSize:          3,
		LightPermittivity: 1,
	}
}

func (s *InMemoryRepositoryTestSuite) TestAddAndGet() {
	_, err := s.repo.Add(s.ctx, &presets.AddInput{Preset: s.meadow()})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, &presets.GetInput{ID: "meadow"})
	s.Require().NoError(err)
	s.Equal("Meadow", out.Preset.Name)
	s.Equal(1, s.repo.Size())
}

func (s *InMemoryRepositoryTestSuite) TestAddRejectsRepeatedID() {
	_, err := s.repo.Add(s.ctx, &presets.AddInput{Preset: s.meadow()})
	s.Require().NoError(err)

	again := s.meadow()
	again.Name = "Other Meadow"
	_, err = s.repo.Add(s.ctx, &presets.AddInput{Preset: again})
	s.Require().Error(err)
	s.True(errors.IsAlreadyExists(err))

	out, err := s.repo.Get(s.ctx, &presets.GetInput{ID: "meadow"})
	s.Require().NoError(err)
	s.Equal("Meadow", out.Preset.Name)
}

func (s *InMemoryRepositoryTestSuite) TestAddRejectsInvalidPreset() {
	bad := s.meadow()
	bad.BlobSize = 0
	_, err := s.repo.Add(s.ctx, &presets.AddInput{Preset: bad})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Add(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *InMemoryRepositoryTestSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, &presets.GetInput{ID: "nope"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Get(s.ctx, &presets.GetInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *InMemoryRepositoryTestSuite) TestListByTypeKeepsInsertionOrder() {
	second := s.meadow()
	second.ID = "forest"
	second.Name = "Forest"

	for _, p := range []*entities.LocationPreset{s.meadow(), second} {
		_, err := s.repo.Add(s.ctx, &presets.AddInput{Preset: p})
		s.Require().NoError(err)
	}

	out, err := s.repo.ListByType(s.ctx, &presets.ListByTypeInput{Type: entities.PresetTypeLand})
	s.Require().NoError(err)
	s.Require().Len(out.Presets, 2)
	s.Equal("meadow", out.Presets[0].ID)
	s.Equal("forest", out.Presets[1].ID)

	// callers cannot reorder the store through the returned slice
	out.Presets[0] = nil
	again, err := s.repo.ListByType(s.ctx, &presets.ListByTypeInput{Type: entities.PresetTypeLand})
	s.Require().NoError(err)
	s.NotNil(again.Presets[0])
}

func (s *InMemoryRepositoryTestSuite) TestListByTypeEmptyCategory() {
	_, err := s.repo.ListByType(s.ctx, &presets.ListByTypeInput{Type: entities.PresetTypeRiver})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.ListByType(s.ctx, &presets.ListByTypeInput{Type: "LAVA"})
	s.True(errors.IsInvalidArgument(err))
}

func (s *InMemoryRepositoryTestSuite) TestDefaultCatalogServesEveryType() {
	repo, err := presets.NewDefault()
	s.Require().NoError(err)
	s.Equal(entities.AllPresetTypes(), repo.Types())
	s.Require().NoError(presets.RequireTypes(s.ctx, repo))

	out, err := repo.ListByType(s.ctx, &presets.ListByTypeInput{Type: entities.PresetTypeDungeonStairway})
	s.Require().NoError(err)
	stairway := out.Presets[0]
	s.Equal([]entities.Direction{
		entities.North, entities.East, entities.South, entities.West,
	}, stairway.Blocked)
}

func (s *InMemoryRepositoryTestSuite) TestNewFromYAML() {
	doc := `
presets:
  - id: cliff
    type: land
    name: Cliff
    blob_size: 2
    blocked: [up, Down]
    light_permittivity: 0.5
`
	repo, err := presets.NewFromYAML(strings.NewReader(doc))
	s.Require().NoError(err)

	out, err := repo.Get(s.ctx, &presets.GetInput{ID: "cliff"})
	s.Require().NoError(err)
	s.Equal(entities.PresetTypeLand, out.Preset.Type)
	s.Equal([]entities.Direction{entities.Up, entities.Down}, out.Preset.Blocked)
}

func (s *InMemoryRepositoryTestSuite) TestNewFromYAMLFailures() {
	testCases := []struct {
		name string
		doc  string
	}{
		{name: "unknown field", doc: "presets:\n  - id: a\n    colour: red\n"},
		{name: "bad direction", doc: "presets:\n  - id: a\n    type: LAND\n    name: A\n    blob_size: 1\n    blocked: [sideways]\n"},
		{name: "duplicate id", doc: "presets:\n  - {id: a, type: RIVER, name: A}\n  - {id: a, type: RIVER, name: B}\n"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := presets.NewFromYAML(strings.NewReader(tc.doc))
			s.Error(err)
		})
	}
}

func TestInMemoryRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(InMemoryRepositoryTestSuite))
}
