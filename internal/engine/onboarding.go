package engine

import "time"

type OnboardInput struct {
	Name  string
	Path  Path
	Class Class
	Goals []NewGoalInput
}

// NewState builds the record created at the end of onboarding.
func NewState(in OnboardInput, now time.Time) (State, error) {
	name, err := normalizeTitle(in.Name)
	if err != nil {
		return State{}, ValidationError{Field: "name", Reason: "name is required"}
	}
	if !in.Path.IsValid() {
		return State{}, ValidationError{Field: "path", Reason: string(in.Path)}
	}
	if !in.Class.IsValid() {
		return State{}, ValidationError{Field: "class", Reason: string(in.Class)}
	}

	goals := make([]Goal, 0, len(in.Goals))
	for _, gi := range in.Goals {
		g, err := NewGoal(gi, now)
		if err != nil {
			return State{}, err
		}
		goals = append(goals, g)
	}

	return State{
		SchemaVersion:       CurrentSchemaVersion,
		Name:                name,
		Path:                in.Path,
		Character:           NewCharacter(in.Class),
		Goals:               goals,
		AuraLevel:           0,
		Streak:              0,
		LastCompletedDate:   "",
		TotalGoalsCompleted: 0,
		OnboardingCompleted: true,
	}, nil
}
