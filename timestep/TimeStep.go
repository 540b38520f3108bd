// Package timestep implements timesteps of the agent-environment interaction
package timestep

import "fmt"

// Transition packages together a single step of experience: taking
// Action in State produced Reward and lead to NextState. Number is the
// step number within the learning session.
type Transition[S, A comparable] struct {
	State     S
	Action    A
	Reward    float64
	NextState S
	Number    int
}

// New returns a new Transition
func New[S, A comparable](state S, action A, reward float64, next S,
	n int) Transition[S, A] {
	return Transition[S, A]{state, action, reward, next, n}
}

func (t Transition[S, A]) String() string {
	str := "Transition | State: %v  |  Action: %v  |  Reward:  %.2f  |  " +
		"Next State: %v  |  Step Number:  %v"

	return fmt.Sprintf(str, t.State, t.Action, t.Reward, t.NextState,
		t.Number)
}
