// Package valuetable implements a lazily populated table of action
// values for tabular reinforcement learning.
//
// A Table maps each state to a Row holding one value per action. Rows
// are created on first reference to a state with every action set to
// the table's optimistic initial value, and are never removed. A
// Table is not safe for concurrent use: it is meant to be owned by
// exactly one Policy/Learner pair acting for a single agent.
package valuetable

import (
	"fmt"

	"github.com/samuelfneumann/smartcab/utils/floatutils"
)

// Table maps states to complete rows of action values
type Table[S comparable, A comparable] struct {
	actions *Actions[A]
	initial float64
	rows    map[S]*Row[A]
}

// New returns an empty Table over the given action set. Every row
// created by the table starts with each action valued at initial.
func New[S comparable, A comparable](actions *Actions[A],
	initial float64) (*Table[S, A], error) {
	if actions == nil || actions.Len() == 0 {
		return nil, fmt.Errorf("new: %w: empty action set", ErrConfiguration)
	}
	if !floatutils.Finite(initial) {
		return nil, fmt.Errorf("new: %w: initial value must be finite "+
			"(initial = %v)", ErrConfiguration, initial)
	}

	return &Table[S, A]{
		actions: actions,
		initial: initial,
		rows:    make(map[S]*Row[A]),
	}, nil
}

// RowFor returns the row of state, creating and storing it first if
// state has never been referenced. If the state reports itself as
// malformed through Validator, nothing is stored and an error
// wrapping ErrMalformedState is returned.
func (t *Table[S, A]) RowFor(state S) (*Row[A], error) {
	if row, ok := t.rows[state]; ok {
		return row, nil
	}

	if err := t.Validate(state); err != nil {
		return nil, fmt.Errorf("rowFor: %w", err)
	}

	row := newRow(t.actions, t.initial)
	t.rows[state] = row
	return row, nil
}

// Validate checks state without touching the table
func (t *Table[S, A]) Validate(state S) error {
	v, ok := any(state).(Validator)
	if !ok {
		return nil
	}
	if err := v.Validate(); err != nil {
		return fmt.Errorf("%w: %v: %v", ErrMalformedState, state, err)
	}
	return nil
}

// Lookup returns a copy of the values stored for state and whether
// state has a row. Lookup never creates a row.
func (t *Table[S, A]) Lookup(state S) ([]float64, bool) {
	row, ok := t.rows[state]
	if !ok {
		return nil, false
	}
	return row.Values(), true
}

// Len returns the number of states with a row
func (t *Table[S, A]) Len() int {
	return len(t.rows)
}

// Actions returns the table's action set
func (t *Table[S, A]) Actions() *Actions[A] {
	return t.actions
}

// InitialValue returns the optimistic initial value of new rows
func (t *Table[S, A]) InitialValue() float64 {
	return t.initial
}

func (t *Table[S, A]) String() string {
	str := "ValueTable | States: %d  |  Actions: %v  |  Initial Value: %v"
	return fmt.Sprintf(str, t.Len(), t.actions.ordered, t.initial)
}
