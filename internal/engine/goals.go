package engine

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

type NewGoalInput struct {
	Title        string
	Category     Category
	Frequency    Frequency
	SpecificDays []int
}

func normalizeTitle(title string) (string, error) {
	t := strings.TrimSpace(title)
	if t == "" {
		return "", ValidationError{Field: "title", Reason: "title is required"}
	}
	return t, nil
}

func normalizeDays(days []int) ([]int, error) {
	seen := map[int]bool{}
	var out []int
	for _, d := range days {
		if d < int(time.Sunday) || d > int(time.Saturday) {
			return nil, ValidationError{Field: "days", Reason: "weekday must be between 0 (Sunday) and 6 (Saturday)"}
		}
		if seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	sort.Ints(out)
	return out, nil
}

// NewGoal validates in and builds an uncompleted goal with a fresh id.
// Weekday sets are kept only for specific-days goals and are required there.
func NewGoal(in NewGoalInput, now time.Time) (Goal, error) {
	title, err := normalizeTitle(in.Title)
	if err != nil {
		return Goal{}, err
	}
	if !in.Category.IsValid() {
		return Goal{}, ValidationError{Field: "category", Reason: string(in.Category)}
	}
	if !in.Frequency.IsValid() {
		return Goal{}, ValidationError{Field: "frequency", Reason: string(in.Frequency)}
	}

	var days []int
	if in.Frequency == FrequencySpecificDays {
		days, err = normalizeDays(in.SpecificDays)
		if err != nil {
			return Goal{}, err
		}
		if len(days) == 0 {
			return Goal{}, ValidationError{Field: "days", Reason: "pick at least one weekday"}
		}
	}

	return Goal{
		ID:           uuid.NewString(),
		Title:        title,
		Category:     in.Category,
		Frequency:    in.Frequency,
		SpecificDays: days,
		Completed:    false,
		CreatedAt:    now,
	}, nil
}

// AddGoal appends a goal and refreshes the aura for now.
func AddGoal(st State, g Goal, now time.Time) State {
	next := st.Clone()
	next.Goals = append(next.Goals, g)
	next.AuraLevel = Today(next, now).AuraLevel
	return next
}

// RemoveGoal drops the goal with id. Counters and rewards are untouched.
func RemoveGoal(st State, id string, now time.Time) (State, error) {
	idx := st.FindGoal(id)
	if idx < 0 {
		return st, ErrGoalNotFound
	}
	next := st.Clone()
	next.Goals = append(next.Goals[:idx], next.Goals[idx+1:]...)
	next.AuraLevel = Today(next, now).AuraLevel
	return next, nil
}

// ResolveGoalID matches ref against goal ids, accepting a unique prefix.
func ResolveGoalID(st State, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", ErrGoalNotFound
	}
	if st.FindGoal(ref) >= 0 {
		return ref, nil
	}
	match := ""
	for _, g := range st.Goals {
		if strings.HasPrefix(g.ID, ref) {
			if match != "" {
				return "", ValidationError{Field: "goal", Reason: "ambiguous id prefix " + ref}
			}
			match = g.ID
		}
	}
	if match == "" {
		return "", ErrGoalNotFound
	}
	return match, nil
}
