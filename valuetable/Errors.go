package valuetable

import "errors"

// Errors returned by the value table and the learners built on it.
// Callers should test for them with errors.Is, since they are always
// wrapped with the context of the failing call.
var (
	// ErrInvalidAction indicates an action outside the configured
	// action set
	ErrInvalidAction = errors.New("invalid action")

	// ErrMalformedState indicates a state that failed its own
	// validation
	ErrMalformedState = errors.New("malformed state")

	// ErrInvalidReward indicates a reward that is NaN or infinite
	ErrInvalidReward = errors.New("invalid reward")

	// ErrConfiguration indicates an unusable construction argument
	ErrConfiguration = errors.New("configuration error")
)

// Validator is implemented by states which can detect an impossible
// shape, such as a component outside its discrete domain. States
// that do not implement Validator are assumed to be well formed.
type Validator interface {
	Validate() error
}
