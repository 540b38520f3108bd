// Package smartcab implements a learning taxi agent driving through a
// grid of intersections.
//
// The agent conditions on the heading its route planner suggests, the
// traffic light and oncoming traffic, and learns which move to make
// with tabular Q-Learning. The simulated world and the route planner
// are collaborators supplied by the caller.
package smartcab

import (
	"fmt"
	"math"

	"github.com/samuelfneumann/smartcab/agent/tabular/qlearning"
	"github.com/samuelfneumann/smartcab/timestep"
)

// Location is an intersection on the grid
type Location struct {
	X, Y int
}

// Environment is the simulated world the agent drives in
type Environment interface {
	// Sense returns the readings at the agent's intersection
	Sense(a *Agent) Inputs

	// Act performs action for the agent and returns its reward
	Act(a *Agent, action Direction) float64
}

// Planner plans a route to the destination and suggests a heading
type Planner interface {
	RouteTo(destination Location)
	NextWaypoint() Direction
}

// DefaultConfig returns the learner configuration of the agent: no
// discounting, a full learning rate, and the largest int64 as the
// optimistic initial value.
func DefaultConfig() qlearning.Config {
	return qlearning.Config{
		DiscountFactor: 0.0,
		LearningRate:   1.0,
		InitialValue:   float64(math.MaxInt64),
		FirstTouch:     qlearning.SentinelFirstTouch,
	}
}

// Agent is a smartcab that learns to drive. An Agent and its value
// table are used by a single simulation loop at a time.
type Agent struct {
	env     Environment
	planner Planner
	learner *qlearning.QLearning[State, Direction]

	steps   int
	reward  float64
	lastObs timestep.Transition[State, Direction]
}

// New creates a new Agent in env, following the route of planner and
// learning with the given configuration
func New(env Environment, planner Planner, config qlearning.Config) (*Agent,
	error) {
	if env == nil {
		return nil, fmt.Errorf("new: no environment")
	}
	if planner == nil {
		return nil, fmt.Errorf("new: no planner")
	}

	learner, err := qlearning.New[State](ValidActions, config)
	if err != nil {
		return nil, fmt.Errorf("new: %w", err)
	}

	return &Agent{env: env, planner: planner, learner: learner}, nil
}

// Reset starts a new trip to destination. The learned values are kept.
func (a *Agent) Reset(destination Location) {
	a.planner.RouteTo(destination)
	a.steps = 0
	a.reward = 0
}

// Update runs a single step of the agent at simulation time t: sense
// the state, choose the greedy action, act, sense the resulting state
// and learn from the transition.
func (a *Agent) Update(t int) error {
	state := NewState(a.planner.NextWaypoint(), a.env.Sense(a))

	action, err := a.learner.SelectAction(state)
	if err != nil {
		return fmt.Errorf("update: t = %d: %w", t, err)
	}

	reward := a.env.Act(a, action)
	next := NewState(a.planner.NextWaypoint(), a.env.Sense(a))

	a.steps++
	a.reward += reward

	obs := timestep.New(state, action, reward, next, t)
	if err := a.learner.Observe(obs); err != nil {
		return fmt.Errorf("update: t = %d: %w", t, err)
	}
	a.lastObs = obs
	return nil
}

// Steps returns the number of steps taken since the last Reset
func (a *Agent) Steps() int {
	return a.steps
}

// Return returns the reward accumulated since the last Reset
func (a *Agent) Return() float64 {
	return a.reward
}

// Last returns the most recent transition the agent learned from
func (a *Agent) Last() timestep.Transition[State, Direction] {
	return a.lastObs
}

// Learner returns the agent's learner
func (a *Agent) Learner() *qlearning.QLearning[State, Direction] {
	return a.learner
}

func (a *Agent) String() string {
	str := "Smartcab | Steps: %d  |  Return: %.2f  |  States Seen: %d"
	return fmt.Sprintf(str, a.steps, a.reward, a.learner.States())
}
