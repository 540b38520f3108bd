package smartcab

import "fmt"

// Direction is a heading at an intersection. Directions are used both
// as the agent's actions and as sensor readings of other traffic,
// where None means no car is present.
type Direction int

const (
	None Direction = iota
	Forward
	Left
	Right
)

// ValidActions are the actions of the agent, in tie-break order
var ValidActions = []Direction{None, Forward, Left, Right}

func (d Direction) String() string {
	switch d {
	case None:
		return "None"
	case Forward:
		return "forward"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// valid returns whether d is a known direction
func (d Direction) valid() bool {
	return d >= None && d <= Right
}

// Light is the phase of the traffic light facing the agent
type Light int

const (
	Red Light = iota
	Green
)

func (l Light) String() string {
	switch l {
	case Red:
		return "red"
	case Green:
		return "green"
	default:
		return fmt.Sprintf("Light(%d)", int(l))
	}
}

func (l Light) valid() bool {
	return l == Red || l == Green
}

// Inputs are the readings the environment reports to the agent at its
// current intersection. Oncoming, Left and Right give the heading of
// the car approaching from that side, or None.
type Inputs struct {
	Light    Light
	Oncoming Direction
	Left     Direction
	Right    Direction
}

// State is everything the agent's policy conditions on
type State struct {
	Waypoint Direction // heading suggested by the planner
	Light    Light
	Oncoming Direction
}

// NewState assembles a State from the planner's next waypoint and the
// sensed inputs. Oncoming traffic turning right never crosses the
// agent's path, so it is recorded as no traffic. Traffic from the left
// and right is not part of the state.
func NewState(waypoint Direction, inputs Inputs) State {
	oncoming := inputs.Oncoming
	if oncoming == Right {
		oncoming = None
	}
	return State{waypoint, inputs.Light, oncoming}
}

// Validate returns an error if any component of the state is outside
// its discrete domain
func (s State) Validate() error {
	if !s.Waypoint.valid() {
		return fmt.Errorf("unknown waypoint %v", s.Waypoint)
	}
	if !s.Light.valid() {
		return fmt.Errorf("unknown light %v", s.Light)
	}
	if !s.Oncoming.valid() {
		return fmt.Errorf("unknown oncoming traffic %v", s.Oncoming)
	}
	if s.Oncoming == Right {
		return fmt.Errorf("oncoming traffic turning right is not tracked")
	}
	return nil
}

func (s State) String() string {
	return fmt.Sprintf("(%v, %v, %v)", s.Waypoint, s.Light, s.Oncoming)
}
