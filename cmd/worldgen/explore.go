package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-world/internal/entities"
	"github.com/KirkDiggler/rpg-world/internal/errors"
	"github.com/KirkDiggler/rpg-world/internal/services/stats"
	"github.com/KirkDiggler/rpg-world/internal/world"
)

var (
	redisAddrs []string
	worldID    string
	statsLimit int
)

var exploreCmd = &cobra.Command{
	Use:   "explore [directions...]",
	Short: "Walk the world from the origin",
	Long: `Walk from (0, 0, 0) along a path of directions, generating the world as it is
seen. Directions are names or abbreviations (U N E D S W) and may be run
together, e.g. "explore NNEE d".

Closed entrances and rivers stop a step; the walk carries on with the next
direction. When redis addresses are set the generated world is saved as a
snapshot at the end.`,
	RunE: runExplore,
}

func init() {
	exploreCmd.Flags().StringSliceVar(&redisAddrs, "redis-addrs", nil, "redis endpoints for the snapshot (several select cluster mode)")
	exploreCmd.Flags().StringVar(&worldID, "world-id", "default", "snapshot world ID")
	exploreCmd.Flags().IntVar(&statsLimit, "stats-limit", 10, "number of location names in the summary (0 for all)")
}

func runExplore(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	path, err := parsePath(args)
	if err != nil {
		return err
	}

	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	e := newExplorer(a.world)
	if err := e.walk(ctx, out, path); err != nil {
		return err
	}

	if err := printStatistics(ctx, out, a.stats, statsLimit); err != nil {
		return err
	}

	saved, err := a.snapshot(ctx)
	if err != nil {
		return err
	}
	if saved > 0 {
		fmt.Fprintf(out, "Saved %d locations to world %q\n", saved, cfg.WorldID)
	}
	return nil
}

// parsePath reads directions from names or runs of abbreviations
func parsePath(args []string) ([]entities.Direction, error) {
	var path []entities.Direction
	for _, arg := range args {
		if d, err := entities.ParseDirection(arg); err == nil {
			path = append(path, d)
			continue
		}

		for _, r := range arg {
			d, err := entities.ParseDirection(string(r))
			if err != nil {
				return nil, errors.InvalidArgumentf("unknown direction %q in %q", string(r), arg)
			}
			path = append(path, d)
		}
	}
	return path, nil
}

// Step outcomes
const (
	outcomeMoved   = "moved"
	outcomeBlocked = "blocked"
	outcomeRiver   = "river"
	outcomeNothing = "nothing"
)

type step struct {
	direction entities.Direction
	from      entities.Point
	location  *entities.Location
	outcome   string
}

type explorer struct {
	world    *world.World
	position entities.Point
}

func newExplorer(w *world.World) *explorer {
	return &explorer{world: w, position: entities.Origin}
}

func (e *explorer) current(ctx context.Context) (*entities.Location, error) {
	return e.world.GetLocation(ctx, e.position)
}

// move tries one step. The explorer stays put unless the outcome is moved.
func (e *explorer) move(ctx context.Context, dir entities.Direction) (*step, error) {
	here, err := e.current(ctx)
	if err != nil {
		return nil, err
	}

	s := &step{direction: dir, from: e.position, location: here}
	if here.IsBlocked(dir) {
		s.outcome = outcomeBlocked
		return s, nil
	}

	dest, err := e.world.GetLocation(ctx, e.position.Add(dir))
	switch {
	case errors.IsNotFound(err):
		s.outcome = outcomeNothing
		return s, nil
	case err != nil:
		return nil, err
	}

	switch {
	case dest.Type == entities.PresetTypeRiver:
		s.outcome = outcomeRiver
	case dest.IsBlocked(dir.Invert()):
		s.outcome = outcomeBlocked
	default:
		s.outcome = outcomeMoved
		s.location = dest
		e.position = dest.Point
	}
	return s, nil
}

func (e *explorer) walk(ctx context.Context, out io.Writer, path []entities.Direction) error {
	here, err := e.current(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Start: %s %s\n", here.Name, here.Point)

	for _, dir := range path {
		s, err := e.move(ctx, dir)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, describe(s))
	}
	return nil
}

func describe(s *step) string {
	switch s.outcome {
	case outcomeMoved:
		return fmt.Sprintf("%-5s -> %s %s", s.direction, s.location.Name, s.location.Point)
	case outcomeRiver:
		return fmt.Sprintf("%-5s xx a river blocks the way from %s", s.direction, s.from)
	case outcomeNothing:
		return fmt.Sprintf("%-5s xx there is nothing %s of %s", s.direction, strings.ToLower(s.direction.String()), s.from)
	default:
		return fmt.Sprintf("%-5s xx the way is closed at %s", s.direction, s.from)
	}
}

func printStatistics(ctx context.Context, out io.Writer, svc stats.Service, limit int) error {
	st, err := svc.GetWorldStatistics(ctx, &stats.GetWorldStatisticsInput{Limit: limit})
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\nGenerated %d locations\n", st.LocationCount)
	for _, nc := range st.ByName {
		fmt.Fprintf(out, "  %-20s %d\n", nc.Name, nc.Count)
	}
	return nil
}
