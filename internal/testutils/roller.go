package testutils

import (
	"fmt"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"
)

// ScriptedRoller replays queued die results in order. Once the queue is empty
// it returns Fallback clamped to the die size, or 1 when Fallback is zero.
type ScriptedRoller struct {
	mu       sync.Mutex
	results  []int
	Fallback int
	calls    []int
}

// NewScriptedRoller creates a roller that replays results
func NewScriptedRoller(results ...int) *ScriptedRoller {
	return &ScriptedRoller{results: results}
}

var _ dice.Roller = (*ScriptedRoller)(nil)

// Push appends more results to the queue
func (r *ScriptedRoller) Push(results ...int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = append(r.results, results...)
}

// Roll returns the next queued result
func (r *ScriptedRoller) Roll(size int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if size <= 0 {
		return 0, fmt.Errorf("invalid die size %d", size)
	}
	r.calls = append(r.calls, size)

	if len(r.results) > 0 {
		v := r.results[0]
		r.results = r.results[1:]
		return v, nil
	}

	v := r.Fallback
	if v <= 0 {
		v = 1
	}
	return min(v, size), nil
}

// RollN rolls count dice through Roll
func (r *ScriptedRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Calls returns the die sizes requested so far
func (r *ScriptedRoller) Calls() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int(nil), r.calls...)
}

// Remaining returns how many queued results have not been consumed
func (r *ScriptedRoller) Remaining() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.results)
}

// LowRoller always rolls 1: every chance succeeds and every draw is the minimum.
func LowRoller() *ScriptedRoller {
	return &ScriptedRoller{Fallback: 1}
}

// HighRoller always rolls the die size: every chance below 100 fails and
// every draw is the maximum.
func HighRoller() *ScriptedRoller {
	return &ScriptedRoller{Fallback: 1 << 30}
}

// FailingRoller returns err from every roll
type FailingRoller struct {
	Err error
}

// Roll returns the configured error
func (r *FailingRoller) Roll(_ int) (int, error) { return 0, r.Err }

// RollN returns the configured error
func (r *FailingRoller) RollN(_, _ int) ([]int, error) { return nil, r.Err }
