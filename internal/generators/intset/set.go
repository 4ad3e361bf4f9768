// Package intset provides a sorted integer set that grows outward in both
// directions with randomized, bounded spacing between neighbours.
package intset

import (
	"fmt"
	"slices"

	"github.com/KirkDiggler/rpg-world/internal/errors"
	"github.com/KirkDiggler/rpg-world/internal/pkg/random"
)

// Set is a strictly increasing sequence in which every pair of adjacent
// elements differs by a value drawn uniformly from [minDifference, maxDifference).
type Set struct {
	minDifference int
	maxDifference int
	source        *random.Source

	// values is kept sorted; growth only happens at either end
	values []int
}

// New creates a set seeded with one element drawn from [0, minDifference).
func New(minDifference, maxDifference int, source *random.Source) (*Set, error) {
	if minDifference < 1 {
		return nil, errors.InvalidArgumentf("minimum difference must be at least 1, got %d", minDifference)
	}
	if maxDifference <= minDifference {
		return nil, errors.InvalidArgumentf(
			"maximum difference %d must exceed minimum difference %d", maxDifference, minDifference)
	}
	if source == nil {
		return nil, errors.InvalidArgument("random source is required")
	}

	seed, err := source.Intn(minDifference)
	if err != nil {
		return nil, errors.Wrap(err, "failed to seed integer set")
	}

	return &Set{
		minDifference: minDifference,
		maxDifference: maxDifference,
		source:        source,
		values:        []int{seed},
	}, nil
}

// Expand grows the set until it has an element above and below target. It
// returns the newly inserted elements in insertion order: upward growth
// first, then downward.
func (s *Set) Expand(target int) ([]int, error) {
	var added []int

	for last := s.Max(); last <= target; last = s.Max() {
		gap, err := s.source.Between(s.minDifference, s.maxDifference)
		if err != nil {
			return added, errors.Wrap(err, "failed to expand integer set upward")
		}
		s.values = append(s.values, last+gap)
		added = append(added, last+gap)
	}

	var lower []int
	for first := s.Min(); first >= target; {
		gap, err := s.source.Between(s.minDifference, s.maxDifference)
		if err != nil {
			s.prepend(lower)
			return added, errors.Wrap(err, "failed to expand integer set downward")
		}
		first -= gap
		lower = append(lower, first)
		added = append(added, first)
	}
	s.prepend(lower)

	return added, nil
}

// prepend inserts descending values ahead of the current minimum
func (s *Set) prepend(descending []int) {
	if len(descending) == 0 {
		return
	}
	head := slices.Clone(descending)
	slices.Reverse(head)
	s.values = append(head, s.values...)
}

// Contains reports membership. It never expands, so a value outside the
// covered range is simply absent.
func (s *Set) Contains(value int) bool {
	_, found := slices.BinarySearch(s.values, value)
	return found
}

// Min returns the smallest element
func (s *Set) Min() int {
	return s.values[0]
}

// Max returns the largest element
func (s *Set) Max() int {
	return s.values[len(s.values)-1]
}

// Len returns the number of elements
func (s *Set) Len() int {
	return len(s.values)
}

// Values returns a sorted copy of the elements
func (s *Set) Values() []int {
	return slices.Clone(s.values)
}

func (s *Set) String() string {
	return fmt.Sprintf("intset%v", s.values)
}
