package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-world/internal/config"
	"github.com/KirkDiggler/rpg-world/internal/errors"
	"github.com/KirkDiggler/rpg-world/internal/orchestrators/worldgen"
	"github.com/KirkDiggler/rpg-world/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-world/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-world/internal/pkg/random"
	"github.com/KirkDiggler/rpg-world/internal/redis"
	"github.com/KirkDiggler/rpg-world/internal/repositories/locations"
	"github.com/KirkDiggler/rpg-world/internal/repositories/presets"
	"github.com/KirkDiggler/rpg-world/internal/services/stats"
	"github.com/KirkDiggler/rpg-world/internal/world"
)

// app wires one world with its statistics
type app struct {
	cfg     *config.Config
	presets *presets.InMemoryRepository
	world   *world.World
	stats   *stats.Tracker
}

func loadPresets(path string) (*presets.InMemoryRepository, error) {
	if path == "" {
		return presets.NewDefault()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to open preset catalog")
	}
	defer f.Close()

	return presets.NewFromYAML(f)
}

func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	repo, err := loadPresets(cfg.Catalog)
	if err != nil {
		return nil, err
	}
	if err := presets.RequireTypes(ctx, repo); err != nil {
		return nil, err
	}

	source := random.New(nil)
	if cfg.Seed != 0 {
		source = random.NewSeeded(cfg.Seed)
	}

	genCfg, err := worldgen.DefaultConfig(cfg.ChunkSide, repo, source)
	if err != nil {
		return nil, err
	}
	gen, err := worldgen.New(genCfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create world generator")
	}

	bus := events.NewBus()
	tracker, err := stats.New(&stats.Config{EventBus: bus})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create statistics tracker")
	}

	w, err := world.New(&world.Config{
		Generator:   gen,
		EventBus:    bus,
		IDGenerator: idgen.NewUUID("loc"),
		Clock:       clock.New(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create world")
	}

	return &app{
		cfg:     cfg,
		presets: repo,
		world:   w,
		stats:   tracker,
	}, nil
}

// snapshot writes every generated location to Redis when addresses are set
func (a *app) snapshot(ctx context.Context) (int, error) {
	if len(a.cfg.RedisAddrs) == 0 {
		return 0, nil
	}

	client, err := redis.Connect(ctx, a.cfg.RedisAddrs, nil)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to connect to redis")
	}
	defer client.Close()

	repo, err := locations.NewRedisRepository(&locations.Config{Client: client, Clock: clock.New()})
	if err != nil {
		return 0, err
	}
	return saveSnapshot(ctx, repo, a.cfg.WorldID, a.world)
}

func saveSnapshot(ctx context.Context, repo locations.Repository, worldID string, w *world.World) (int, error) {
	out, err := repo.Save(ctx, &locations.SaveInput{
		WorldID:   worldID,
		Locations: w.Locations(),
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to save world snapshot")
	}

	slog.Info("Saved world snapshot",
		"world_id", worldID,
		"locations", out.Saved)

	return out.Saved, nil
}
