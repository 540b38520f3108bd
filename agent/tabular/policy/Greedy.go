// Package policy implements policies over tabular action values
package policy

import (
	"fmt"

	"github.com/samuelfneumann/smartcab/utils/floatutils"
	"github.com/samuelfneumann/smartcab/valuetable"
)

// Greedy implements a greedy policy over a value table. Ties between
// maximal actions are broken toward the action that comes first in
// the table's configured action order.
//
// Greedy performs no explicit exploration. When the table is
// initialized optimistically, untried actions keep the high initial
// value and are therefore preferred over tried ones, first in action
// order.
type Greedy[S, A comparable] struct {
	table *valuetable.Table[S, A]
}

// NewGreedy creates a new Greedy policy reading from table
func NewGreedy[S, A comparable](table *valuetable.Table[S, A]) *Greedy[S, A] {
	return &Greedy[S, A]{table}
}

// SelectAction selects the greedy action in state. A row is created
// for state if it has not been seen before.
func (p *Greedy[S, A]) SelectAction(state S) (A, error) {
	i, _, err := p.selectIndex(state)
	if err != nil {
		var zero A
		return zero, fmt.Errorf("selectAction: %w", err)
	}
	return p.table.Actions().At(i), nil
}

// selectIndex returns the position of the greedy action in the
// configured action order, along with the row of state
func (p *Greedy[S, A]) selectIndex(state S) (int, *valuetable.Row[A], error) {
	row, err := p.table.RowFor(state)
	if err != nil {
		return -1, nil, err
	}

	_, indices := floatutils.MaxSlice(row.Values())
	return indices[0], row, nil
}

// Value returns the value of the greedy action in state
func (p *Greedy[S, A]) Value(state S) (float64, error) {
	i, row, err := p.selectIndex(state)
	if err != nil {
		return 0, fmt.Errorf("value: %w", err)
	}
	return row.At(i), nil
}
