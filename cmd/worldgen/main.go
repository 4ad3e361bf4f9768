// Package main is the entry point for the worldgen CLI
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-world/internal/config"
)

var (
	cfg *config.Config

	chunkSide int
	seed      uint64
	logLevel  string
	catalog   string
)

var rootCmd = &cobra.Command{
	Use:   "worldgen",
	Short: "Lazy procedural world generator",
	Long: `worldgen generates an unbounded world of locations on demand: rivers with
bridges, isolated dungeons and contiguous patches of land.

Settings come from WORLDGEN_* environment variables; flags override them.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.IntVar(&chunkSide, "chunk-side", 5, "side of the square generated per expansion")
	flags.Uint64Var(&seed, "seed", 0, "seed for a repeatable world (0 picks a random one)")
	flags.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	flags.StringVar(&catalog, "catalog", "", "path to a preset catalog YAML file (default: built-in catalog)")

	rootCmd.AddCommand(exploreCmd)
	rootCmd.AddCommand(presetsCmd)
}

func loadConfig(cmd *cobra.Command, _ []string) error {
	loaded := &config.Config{}
	if err := config.ParseEnv(loaded); err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("chunk-side") {
		loaded.ChunkSide = chunkSide
	}
	if flags.Changed("seed") {
		loaded.Seed = seed
	}
	if flags.Changed("log-level") {
		loaded.LogLevel = logLevel
	}
	if flags.Changed("catalog") {
		loaded.Catalog = catalog
	}
	if flags.Changed("redis-addrs") {
		loaded.RedisAddrs = redisAddrs
	}
	if flags.Changed("world-id") {
		loaded.WorldID = worldID
	}

	if err := loaded.Validate(); err != nil {
		return err
	}

	level, err := loaded.Level()
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg = loaded
	return nil
}
