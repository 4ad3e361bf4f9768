// Package random adapts an rpg-toolkit dice.Roller into the draws the world
// generators need: bounded integers, percentage chances and selections.
package random

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-world/internal/errors"
)

// Source draws random values from a dice roller. A Source is not safe for
// concurrent use unless its roller is.
type Source struct {
	roller dice.Roller
}

// New creates a source over roller. A nil roller falls back to dice.DefaultRoller.
func New(roller dice.Roller) *Source {
	if roller == nil {
		roller = dice.DefaultRoller
	}
	return &Source{roller: roller}
}

// NewSeeded creates a source over a seeded roller so a run can be repeated.
func NewSeeded(seed uint64) *Source {
	return New(NewSeededRoller(seed))
}

// Intn returns a value in [0, n).
func (s *Source) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, errors.InvalidArgumentf("bound must be positive, got %d", n)
	}
	if n == 1 {
		return 0, nil
	}

	v, err := s.roller.Roll(n)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to roll d%d", n)
	}
	if v < 1 || v > n {
		return 0, errors.Internalf("roller returned %d for d%d", v, n)
	}
	return v - 1, nil
}

// Between returns a value in [minimum, maximum).
func (s *Source) Between(minimum, maximum int) (int, error) {
	if minimum >= maximum {
		return 0, errors.InvalidArgumentf("minimum %d must be less than maximum %d", minimum, maximum)
	}

	v, err := s.Intn(maximum - minimum)
	if err != nil {
		return 0, err
	}
	return minimum + v, nil
}

// Chance succeeds with the given percent probability.
func (s *Source) Chance(percent int) (bool, error) {
	if percent < 0 || percent > 100 {
		return false, errors.OutOfRangef("percent must be between 0 and 100, got %d", percent)
	}
	if percent == 0 {
		return false, nil
	}
	if percent == 100 {
		return true, nil
	}

	v, err := s.roller.Roll(100)
	if err != nil {
		return false, errors.Wrap(err, "failed to roll d100")
	}
	return v <= percent, nil
}

// Select returns a uniformly chosen element of items.
func Select[T any](s *Source, items []T) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, errors.InvalidArgument("cannot select from an empty list")
	}

	i, err := s.Intn(len(items))
	if err != nil {
		return zero, err
	}
	return items[i], nil
}
