package valuetable

import "fmt"

// Actions is a fixed, finite, ordered and closed set of actions. The
// order given at construction is the order in which ties between
// action values are broken: the first action wins.
type Actions[A comparable] struct {
	ordered []A
	index   map[A]int
}

// NewActions returns a new action set holding actions in the given
// order. At least one action is required and actions may not repeat.
func NewActions[A comparable](actions ...A) (*Actions[A], error) {
	if len(actions) == 0 {
		return nil, fmt.Errorf("newActions: %w: empty action set",
			ErrConfiguration)
	}

	ordered := make([]A, len(actions))
	index := make(map[A]int, len(actions))
	for i, a := range actions {
		if j, ok := index[a]; ok {
			return nil, fmt.Errorf("newActions: %w: action %v repeated "+
				"at positions %d and %d", ErrConfiguration, a, j, i)
		}
		index[a] = i
		ordered[i] = a
	}

	return &Actions[A]{ordered, index}, nil
}

// Len returns the number of actions in the set
func (a *Actions[A]) Len() int {
	return len(a.ordered)
}

// At returns the action at position i in the configured order
func (a *Actions[A]) At(i int) A {
	return a.ordered[i]
}

// Index returns the position of action in the configured order
func (a *Actions[A]) Index(action A) (int, error) {
	i, ok := a.index[action]
	if !ok {
		return -1, fmt.Errorf("index: %w: %v", ErrInvalidAction, action)
	}
	return i, nil
}

// Contains returns whether action is a member of the set
func (a *Actions[A]) Contains(action A) bool {
	_, ok := a.index[action]
	return ok
}

// Slice returns a copy of the actions in their configured order
func (a *Actions[A]) Slice() []A {
	out := make([]A, len(a.ordered))
	copy(out, a.ordered)
	return out
}
