// Package qlearning implements the tabular Q-Learning algorithm with a
// greedy policy over optimistically initialized action values.
//
// Exploration comes only from the optimistic initial value: an action
// that has never been updated in a state keeps that value, so the
// greedy policy keeps choosing untried actions, first in action order,
// until their values drop below the best tried one.
package qlearning

import (
	"fmt"

	"github.com/samuelfneumann/smartcab/agent"
	"github.com/samuelfneumann/smartcab/agent/tabular/policy"
	"github.com/samuelfneumann/smartcab/valuetable"
)

var (
	_ agent.TdErrorer[string, string] = (*QLearning[string, string])(nil)
	_ agent.Agent[string, string]     = (*QLearning[string, string])(nil)
	_ agent.ConfigList                = ConfigList{}
)

// QLearning implements the Q-Learning algorithm. The embedded policy
// and learner share a single value table.
type QLearning[S, A comparable] struct {
	*QLearner[S, A]
	*policy.Greedy[S, A]
	table  *valuetable.Table[S, A]
	config Config
}

// New creates a new QLearning struct acting over actions, in the given
// order. Ties between action values are broken toward earlier actions.
func New[S, A comparable](actions []A, config Config) (*QLearning[S, A],
	error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("qlearning: invalid config: %w", err)
	}

	set, err := valuetable.NewActions(actions...)
	if err != nil {
		return nil, fmt.Errorf("qlearning: invalid actions: %w", err)
	}

	table, err := valuetable.New[S](set, config.InitialValue)
	if err != nil {
		return nil, fmt.Errorf("qlearning: could not create table: %w", err)
	}

	greedy := policy.NewGreedy(table)
	learner, err := NewQLearner(table, greedy, config)
	if err != nil {
		return nil, fmt.Errorf("qlearning: could not create learner: %w",
			err)
	}

	return &QLearning[S, A]{learner, greedy, table, config}, nil
}

// Values returns a copy of the action values of state, in action order,
// and whether state has been seen. Values never adds a state.
func (q *QLearning[S, A]) Values(state S) ([]float64, bool) {
	return q.table.Lookup(state)
}

// States returns the number of states seen so far
func (q *QLearning[S, A]) States() int {
	return q.table.Len()
}

// Actions returns the configured actions in order
func (q *QLearning[S, A]) Actions() []A {
	return q.table.Actions().Slice()
}

// Config returns the configuration the agent was created with
func (q *QLearning[S, A]) Config() Config {
	return q.config
}

func (q *QLearning[S, A]) String() string {
	return fmt.Sprintf("QLearning | %v  |  Discount: %.2f  |  "+
		"Learning Rate: %.2f  |  First Touch: %v", q.table,
		q.config.DiscountFactor, q.config.LearningRate,
		q.config.firstTouch())
}
