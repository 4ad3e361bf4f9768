// Package worldgen fills chunks of the surface with rivers, bridges, dungeon
// entrances and land, delegating each concern to its generator.
package worldgen

//go:generate mockgen -destination=mock/mock_service.go -package=worldgenmock github.com/KirkDiggler/rpg-world/internal/orchestrators/worldgen Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-world/internal/entities"
	"github.com/KirkDiggler/rpg-world/internal/errors"
	"github.com/KirkDiggler/rpg-world/internal/generators/dungeon"
	"github.com/KirkDiggler/rpg-world/internal/generators/river"
	"github.com/KirkDiggler/rpg-world/internal/pkg/random"
	"github.com/KirkDiggler/rpg-world/internal/repositories/presets"
)

// DefaultChunkSide is the side of the square generated per expansion
const DefaultChunkSide = 5

// Service defines the interface for world generation
type Service interface {
	// Expand generates the chunk containing input.Point. Cells that already
	// hold a location are skipped, so repeated calls are harmless.
	Expand(ctx context.Context, input *ExpandInput) (*ExpandOutput, error)
}

// Config holds the dependencies for the world generator
type Config struct {
	// ChunkSide defaults to DefaultChunkSide when zero
	ChunkSide int

	Rivers      river.Generator
	Distributor dungeon.Distributor
	Creator     dungeon.Creator
	Presets     presets.Repository
	Source      *random.Source
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.ChunkSide < 0 {
		vb.Field("ChunkSide", "cannot be negative")
	}
	if c.Rivers == nil {
		vb.RequiredField("Rivers")
	}
	if c.Distributor == nil {
		vb.RequiredField("Distributor")
	}
	if c.Creator == nil {
		vb.RequiredField("Creator")
	}
	if c.Presets == nil {
		vb.RequiredField("Presets")
	}
	if c.Source == nil {
		vb.RequiredField("Source")
	}

	return vb.Build()
}

type orchestrator struct {
	chunkSide   int
	rivers      river.Generator
	distributor dungeon.Distributor
	creator     dungeon.Creator
	presets     presets.Repository
	source      *random.Source
}

// landBlob tracks the land preset being laid down within one expansion
type landBlob struct {
	preset    *entities.LocationPreset
	remaining int
}

// New creates a world generator with the provided dependencies
func New(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	chunkSide := cfg.ChunkSide
	if chunkSide == 0 {
		chunkSide = DefaultChunkSide
	}

	return &orchestrator{
		chunkSide:   chunkSide,
		rivers:      cfg.Rivers,
		distributor: cfg.Distributor,
		creator:     cfg.Creator,
		presets:     cfg.Presets,
		source:      cfg.Source,
	}, nil
}

// ChunkOrigin returns the surface corner with the lowest x and y of the
// chunk containing point. Negative coordinates round toward negative infinity.
func ChunkOrigin(point entities.Point, side int) entities.Point {
	return entities.NewPoint(chunkStart(point.X, side), chunkStart(point.Y, side), 0)
}

func chunkStart(v, side int) int {
	if v < 0 {
		return side * (((v + 1) / side) - 1)
	}
	return side * (v / side)
}

func (o *orchestrator) Expand(ctx context.Context, input *ExpandInput) (*ExpandOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Grid == nil {
		return nil, errors.InvalidArgument("grid is required")
	}

	if err := o.rivers.Expand(input.Point, o.chunkSide); err != nil {
		return nil, errors.Wrapf(err, "failed to expand rivers around %s", input.Point)
	}

	origin := ChunkOrigin(input.Point, o.chunkSide)
	output := &ExpandOutput{Chunk: origin}
	blob := &landBlob{}

	for x := origin.X; x < origin.X+o.chunkSide; x++ {
		for y := origin.Y; y < origin.Y+o.chunkSide; y++ {
			point := entities.NewPoint(x, y, 0)
			if input.Grid.AlreadyHasLocationAt(point) {
				output.Skipped++
				continue
			}
			if err := o.generateCell(ctx, input.Grid, point, blob, output); err != nil {
				return nil, err
			}
		}
	}

	slog.Debug("Expanded chunk",
		"point", input.Point.String(),
		"chunk", origin.String(),
		"placed", output.Placed,
		"skipped", output.Skipped,
		"dungeons", output.Dungeons)

	return output, nil
}

// generateCell fills one empty surface cell. Rivers win over bridges, bridges
// over dungeons and dungeons over land.
func (o *orchestrator) generateCell(
	ctx context.Context,
	grid entities.Grid,
	point entities.Point,
	blob *landBlob,
	output *ExpandOutput,
) error {
	isRiver, err := o.rivers.IsRiver(point)
	if err != nil {
		return errors.Wrapf(err, "failed to check river at %s", point)
	}
	if isRiver {
		return o.placeRandom(ctx, grid, entities.PresetTypeRiver, point, output)
	}

	isBridge, err := o.rivers.IsBridge(point)
	if err != nil {
		return errors.Wrapf(err, "failed to check bridge at %s", point)
	}
	if isBridge {
		return o.placeRandom(ctx, grid, entities.PresetTypeBridge, point, output)
	}

	isDungeon, err := o.distributor.RollForDungeon(point)
	if err != nil {
		return errors.Wrapf(err, "failed to roll for dungeon at %s", point)
	}
	if isDungeon {
		if err := o.creator.CreateDungeon(ctx, grid, point); err != nil {
			return errors.Wrapf(err, "failed to create dungeon at %s", point)
		}
		output.Dungeons++
		return nil
	}

	preset, err := o.nextLandPreset(ctx, blob)
	if err != nil {
		return err
	}
	return o.place(grid, preset, point, output)
}

// nextLandPreset returns the current blob's preset, rolling a new one once
// the blob is used up
func (o *orchestrator) nextLandPreset(ctx context.Context, blob *landBlob) (*entities.LocationPreset, error) {
	if blob.preset == nil || blob.remaining == 0 {
		preset, err := o.selectPreset(ctx, entities.PresetTypeLand)
		if err != nil {
			return nil, err
		}
		blob.preset = preset
		blob.remaining = preset.BlobSize
	}

	blob.remaining--
	return blob.preset, nil
}

func (o *orchestrator) placeRandom(ctx context.Context, grid entities.Grid, kind entities.PresetType, point entities.Point, output *ExpandOutput) error {
	preset, err := o.selectPreset(ctx, kind)
	if err != nil {
		return err
	}
	return o.place(grid, preset, point, output)
}

func (o *orchestrator) selectPreset(ctx context.Context, kind entities.PresetType) (*entities.LocationPreset, error) {
	out, err := o.presets.ListByType(ctx, &presets.ListByTypeInput{Type: kind})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s presets", kind)
	}

	preset, err := random.Select(o.source, out.Presets)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to select %s preset", kind)
	}
	return preset, nil
}

func (o *orchestrator) place(grid entities.Grid, preset *entities.LocationPreset, point entities.Point, output *ExpandOutput) error {
	if err := grid.AddLocation(entities.NewLocation(preset, point)); err != nil {
		return errors.Wrapf(err, "failed to add %s at %s", preset.Type, point)
	}
	output.Placed++
	return nil
}
