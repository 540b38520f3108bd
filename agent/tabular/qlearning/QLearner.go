package qlearning

import (
	"fmt"
	"io"
	"os"

	mapset "github.com/deckarep/golang-set"
	"github.com/samuelfneumann/smartcab/agent/tabular/policy"
	"github.com/samuelfneumann/smartcab/timestep"
	"github.com/samuelfneumann/smartcab/utils/floatutils"
	"github.com/samuelfneumann/smartcab/valuetable"
)

// visit is a single (state, action) pair in the visited set
type visit[S, A comparable] struct {
	state  S
	action A
}

// QLearner implements the update functionality for the Q-Learning
// algorithm.
//
// The first update of a (state, action) pair replaces the initial
// value with the update target outright. Every later update moves the
// value toward the target by the learning rate.
type QLearner[S, A comparable] struct {
	table        *valuetable.Table[S, A]
	target       *policy.Greedy[S, A]
	discount     float64
	learningRate float64

	firstTouch FirstTouch
	visited    mapset.Set // nil unless firstTouch == TrackedFirstTouch

	warnings io.Writer
}

// NewQLearner creates a new QLearner struct
//
// table holds the values to learn, and target is the policy whose
// action values in the next state are bootstrapped from. The target
// policy should read from table.
func NewQLearner[S, A comparable](table *valuetable.Table[S, A],
	target *policy.Greedy[S, A], config Config) (*QLearner[S, A], error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("newQLearner: %w", err)
	}
	if table.InitialValue() != config.InitialValue {
		return nil, fmt.Errorf("newQLearner: %w: table initial value %v "+
			"does not match configured initial value %v",
			valuetable.ErrConfiguration, table.InitialValue(),
			config.InitialValue)
	}

	q := &QLearner[S, A]{
		table:        table,
		target:       target,
		discount:     config.DiscountFactor,
		learningRate: config.LearningRate,
		firstTouch:   config.firstTouch(),
		warnings:     os.Stderr,
	}
	if q.firstTouch == TrackedFirstTouch {
		q.visited = mapset.NewThreadUnsafeSet()
	}

	return q, nil
}

// Update learns from taking action in state, which lead to nextState
// and produced reward. All arguments are checked before the table is
// touched, so a failed Update leaves the table unchanged.
func (q *QLearner[S, A]) Update(state S, action A, nextState S,
	reward float64) error {
	i, err := q.check(state, action, nextState, reward)
	if err != nil {
		return fmt.Errorf("update: %w", err)
	}

	target, err := q.updateTarget(nextState, reward)
	if err != nil {
		return fmt.Errorf("update: %w", err)
	}

	row, err := q.table.RowFor(state)
	if err != nil {
		return fmt.Errorf("update: %w", err)
	}
	current := row.At(i)

	if q.firstTouched(state, action, current) {
		row.SetAt(i, target)
		return nil
	}

	updated := current + q.learningRate*(target-current)
	row.SetAt(i, updated)

	if q.firstTouch == SentinelFirstTouch &&
		updated == q.table.InitialValue() {
		fmt.Fprintf(q.warnings, "Warning: value of (%v, %v) was updated "+
			"to exactly the initial value %v, its next update will be "+
			"treated as a first update\n", state, action, updated)
	}
	return nil
}

// Observe learns from a single transition
func (q *QLearner[S, A]) Observe(t timestep.Transition[S, A]) error {
	return q.Update(t.State, t.Action, t.NextState, t.Reward)
}

// TdError returns the TD error on a transition. Rows are created for
// unseen states, but no value is changed.
func (q *QLearner[S, A]) TdError(t timestep.Transition[S, A]) (float64,
	error) {
	i, err := q.check(t.State, t.Action, t.NextState, t.Reward)
	if err != nil {
		return 0, fmt.Errorf("tdError: %w", err)
	}

	target, err := q.updateTarget(t.NextState, t.Reward)
	if err != nil {
		return 0, fmt.Errorf("tdError: %w", err)
	}

	row, err := q.table.RowFor(t.State)
	if err != nil {
		return 0, fmt.Errorf("tdError: %w", err)
	}
	return target - row.At(i), nil
}

// check validates the arguments of an update and returns the position
// of action in the configured action order
func (q *QLearner[S, A]) check(state S, action A, nextState S,
	reward float64) (int, error) {
	if !floatutils.Finite(reward) {
		return -1, fmt.Errorf("%w: %v", valuetable.ErrInvalidReward, reward)
	}
	i, err := q.table.Actions().Index(action)
	if err != nil {
		return -1, err
	}
	if err := q.table.Validate(state); err != nil {
		return -1, err
	}
	if err := q.table.Validate(nextState); err != nil {
		return -1, err
	}
	return i, nil
}

// updateTarget returns reward + γ * Q(nextState, a*) where a* is the
// target policy's action in nextState
func (q *QLearner[S, A]) updateTarget(nextState S, reward float64) (float64,
	error) {
	bootstrap, err := q.target.Value(nextState)
	if err != nil {
		return 0, err
	}
	return reward + q.discount*bootstrap, nil
}

// firstTouched reports whether this is the first update of the pair
// and records the visit
func (q *QLearner[S, A]) firstTouched(state S, action A,
	current float64) bool {
	if q.firstTouch == TrackedFirstTouch {
		return q.visited.Add(visit[S, A]{state, action})
	}
	return current == q.table.InitialValue()
}
