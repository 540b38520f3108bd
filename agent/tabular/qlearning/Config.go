package qlearning

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/samuelfneumann/smartcab/agent"
	"github.com/samuelfneumann/smartcab/utils/floatutils"
	"github.com/samuelfneumann/smartcab/valuetable"
	"gonum.org/v1/gonum/spatial/r1"
)

// FirstTouch determines how the learner decides that a (state, action)
// pair is updated for the first time
type FirstTouch string

const (
	// SentinelFirstTouch treats a pair whose value equals the initial
	// value as never updated. A blended update that lands exactly on
	// the initial value makes the next update a first touch again.
	SentinelFirstTouch FirstTouch = "Sentinel"

	// TrackedFirstTouch records updated pairs in a visited set, so
	// only the very first update of a pair is a first touch.
	TrackedFirstTouch FirstTouch = "Tracked"
)

// unit is the range allowed for the discount factor and learning rate
var unit = r1.Interval{Min: 0.0, Max: 1.0}

// Config represents a configuration for the QLearning agent
type Config struct {
	DiscountFactor float64 // γ, weight on the next state's value
	LearningRate   float64 // α, step size after the first touch

	// InitialValue is the optimistic value of every action in a newly
	// seen state
	InitialValue float64

	// FirstTouch defaults to SentinelFirstTouch when empty
	FirstTouch FirstTouch
}

// DefaultConfig returns a Config that bootstraps fully from the next
// state (γ = 1), replaces values with each new target (α = 1), and
// starts every action at 0. The zero Config instead has α = 0, which
// freezes a value after its first update.
func DefaultConfig() Config {
	return Config{
		DiscountFactor: 1.0,
		LearningRate:   1.0,
		InitialValue:   0.0,
		FirstTouch:     SentinelFirstTouch,
	}
}

// Validate ensures that the Config is valid
func (c Config) Validate() error {
	if !floatutils.InInterval(c.DiscountFactor, unit) {
		return fmt.Errorf("validate: %w: discount factor must be in "+
			"[%v, %v] (discount = %v)", valuetable.ErrConfiguration, unit.Min,
			unit.Max, c.DiscountFactor)
	}
	if !floatutils.InInterval(c.LearningRate, unit) {
		return fmt.Errorf("validate: %w: learning rate must be in "+
			"[%v, %v] (learning rate = %v)", valuetable.ErrConfiguration,
			unit.Min, unit.Max, c.LearningRate)
	}
	if !floatutils.Finite(c.InitialValue) {
		return fmt.Errorf("validate: %w: initial value must be finite "+
			"(initial value = %v)", valuetable.ErrConfiguration,
			c.InitialValue)
	}

	switch c.FirstTouch {
	case "", SentinelFirstTouch, TrackedFirstTouch:
	default:
		return fmt.Errorf("validate: %w: no such first touch mode %q",
			valuetable.ErrConfiguration, c.FirstTouch)
	}
	return nil
}

// Type returns the type of the agent constructed by the Config
func (c Config) Type() agent.Type {
	return agent.GreedyQLearningTabular
}

// firstTouch returns the first touch mode, applying the default
func (c Config) firstTouch() FirstTouch {
	if c.FirstTouch == "" {
		return SentinelFirstTouch
	}
	return c.FirstTouch
}

// ConfigList implements functionality for storing a number of Config's
// in a simple manner. Instead of storing a slice of Configs, the
// ConfigList stores each field's values and constructs the list by
// every combination of field values.
//
// An empty FirstTouch list stands for the default mode only.
type ConfigList struct {
	DiscountFactor []float64
	LearningRate   []float64
	InitialValue   []float64
	FirstTouch     []FirstTouch
}

// NewConfigList returns a new ConfigList holding every combination of
// the argument values
func NewConfigList(discount, learningRate, initialValue []float64,
	firstTouch ...FirstTouch) ConfigList {
	return ConfigList{
		DiscountFactor: discount,
		LearningRate:   learningRate,
		InitialValue:   initialValue,
		FirstTouch:     firstTouch,
	}
}

// LoadConfigList decodes a JSON encoded ConfigList from r
func LoadConfigList(r io.Reader) (ConfigList, error) {
	var c ConfigList

	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		return ConfigList{}, fmt.Errorf("loadConfigList: could not decode "+
			"config list: %v", err)
	}
	return c, nil
}

// Len returns the number of Configs stored by the list
func (c ConfigList) Len() int {
	return len(c.DiscountFactor) * len(c.LearningRate) *
		len(c.InitialValue) * len(c.firstTouches())
}

// At returns the Config at index i. The last field varies fastest:
// consecutive indices differ in FirstTouch first, DiscountFactor last.
func (c ConfigList) At(i int) agent.Config {
	if i < 0 || i >= c.Len() {
		panic(fmt.Sprintf("at: index %d out of range [0, %d)", i, c.Len()))
	}

	modes := c.firstTouches()
	config := Config{}

	config.FirstTouch = modes[i%len(modes)]
	i /= len(modes)

	config.InitialValue = c.InitialValue[i%len(c.InitialValue)]
	i /= len(c.InitialValue)

	config.LearningRate = c.LearningRate[i%len(c.LearningRate)]
	i /= len(c.LearningRate)

	config.DiscountFactor = c.DiscountFactor[i]
	return config
}

// Type returns the type of agent that can be constructed by Config's
// stored by the list
func (c ConfigList) Type() agent.Type {
	return agent.GreedyQLearningTabular
}

func (c ConfigList) firstTouches() []FirstTouch {
	if len(c.FirstTouch) == 0 {
		return []FirstTouch{SentinelFirstTouch}
	}
	return c.FirstTouch
}
