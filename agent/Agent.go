// Package agent defines an agent interface
package agent

import "github.com/samuelfneumann/smartcab/timestep"

// Agent determines the implementation details of an agent or algorithm
//
// An Agent is composed of a Learner, which learns action values, and a
// Policy which chooses actions in each state. The Policy chooses which
// actions are taken, and the Learner uses these actions to update the
// values the Policy reads.
type Agent[S, A comparable] interface {
	Learner[S, A]
	Policy[S, A]
}

// Learner implements a learning algorithm that defines how action
// values are updated.
type Learner[S, A comparable] interface {
	// Update learns from taking action in state, which lead to
	// nextState and produced reward
	Update(state S, action A, nextState S, reward float64) error

	// Observe learns from a single recorded transition
	Observe(t timestep.Transition[S, A]) error
}

// TdErrorer is a Learner that can return the TdError of some transition
type TdErrorer[S, A comparable] interface {
	Learner[S, A]

	// TdError returns the TD error on a transition
	TdError(t timestep.Transition[S, A]) (float64, error)
}

// Policy represents a policy that an agent can have.
//
// Policies determine how agents select actions. For a given agent, the
// Policy and Learner should share the same value table so that any
// changes the learner makes are reflected in the actions the Policy
// chooses.
type Policy[S, A comparable] interface {
	SelectAction(state S) (A, error)
}
