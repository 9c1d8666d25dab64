package engine

import (
	"errors"
	"fmt"
)

// ErrNoSession means there is no usable record yet; callers should run onboarding.
var ErrNoSession = errors.New("no session: run onboarding first")

// ErrGoalNotFound is returned by operations that must name an existing goal.
var ErrGoalNotFound = errors.New("goal not found")

// ValidationError rejects user input. It should be shown to the user.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
