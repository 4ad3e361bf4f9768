package presets

import (
	"context"
	"embed"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-world/internal/entities"
	"github.com/KirkDiggler/rpg-world/internal/errors"
)

//go:embed catalog/locations.yaml
var catalogFS embed.FS

const defaultCatalog = "catalog/locations.yaml"

type catalogFile struct {
	Presets []*entities.LocationPreset `yaml:"presets"`
}

// NewFromYAML loads a catalog document into a new in-memory store
func NewFromYAML(r io.Reader) (*InMemoryRepository, error) {
	var file catalogFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode preset catalog")
	}

	repo := NewInMemory()
	for _, preset := range file.Presets {
		if _, err := repo.Add(context.Background(), &AddInput{Preset: preset}); err != nil {
			return nil, errors.Wrap(err, "failed to load preset catalog")
		}
	}
	return repo, nil
}

// NewDefault loads the catalog shipped with the engine
func NewDefault() (*InMemoryRepository, error) {
	f, err := catalogFS.Open(defaultCatalog)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open default preset catalog")
	}
	defer f.Close()

	return NewFromYAML(f)
}

// RequireTypes checks that repo can serve every category the generators use
func RequireTypes(ctx context.Context, repo Repository, types ...entities.PresetType) error {
	if len(types) == 0 {
		types = entities.AllPresetTypes()
	}
	for _, t := range types {
		if _, err := repo.ListByType(ctx, &ListByTypeInput{Type: t}); err != nil {
			return errors.Wrapf(err, "preset store cannot serve %s", t)
		}
	}
	return nil
}
