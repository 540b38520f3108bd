package valuetable

import (
	"fmt"

	"github.com/samuelfneumann/smartcab/utils/matutils"
	"gonum.org/v1/gonum/mat"
)

// Row holds the estimated value of every configured action in a
// single state. A Row is always complete: it has exactly one value per
// action in the table's action set.
type Row[A comparable] struct {
	actions *Actions[A]
	values  *mat.VecDense
}

// newRow returns a Row with every action valued at initial
func newRow[A comparable](actions *Actions[A], initial float64) *Row[A] {
	values := matutils.VecOnes(actions.Len())
	values.ScaleVec(initial, values)
	return &Row[A]{actions, values}
}

// Len returns the number of actions in the row
func (r *Row[A]) Len() int {
	return r.values.Len()
}

// At returns the value of the action at position i in the configured
// action order
func (r *Row[A]) At(i int) float64 {
	return r.values.AtVec(i)
}

// SetAt sets the value of the action at position i in the configured
// action order
func (r *Row[A]) SetAt(i int, value float64) {
	r.values.SetVec(i, value)
}

// Value returns the value of action
func (r *Row[A]) Value(action A) (float64, error) {
	i, err := r.actions.Index(action)
	if err != nil {
		return 0, fmt.Errorf("value: %w", err)
	}
	return r.At(i), nil
}

// Set sets the value of action
func (r *Row[A]) Set(action A, value float64) error {
	i, err := r.actions.Index(action)
	if err != nil {
		return fmt.Errorf("set: %w", err)
	}
	r.SetAt(i, value)
	return nil
}

// Values returns a copy of the row's values in configured action order
func (r *Row[A]) Values() []float64 {
	return mat.Col(nil, 0, r.values)
}

func (r *Row[A]) String() string {
	return fmt.Sprintf("Row | Actions: %v  |  Values: %v", r.actions.ordered,
		matutils.Format(r.values.T()))
}
