package agent

// Type represents a specific type of an agent Config.
// Config's with this type can create Agents of the corresponding type.
type Type string

const (
	// Tabular methods
	GreedyQLearningTabular Type = "GreedyQLearning-Tabular"
)

// Config represents a configuration for creating an agent
type Config interface {
	// Validate returns an error describing whether or not the
	// configuration is valid or not.
	Validate() error

	// Type returns the type of agent the Config describes
	Type() Type
}

// ConfigList stores a number of Configs by storing the values of each
// field separately. The list holds every combination of field values.
type ConfigList interface {
	// Len returns the number of Configs in the list
	Len() int

	// At returns the Config at index i
	At(i int) Config

	// Type returns the type of agent the stored Configs describe
	Type() Type
}
