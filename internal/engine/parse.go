package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseCategory parses user input to a Category. A few synonyms are accepted.
func ParseCategory(input string) (Category, error) {
	switch strings.TrimSpace(strings.ToLower(input)) {
	case "exercise", "exercises", "workout", "fitness":
		return CategoryExercise, nil
	case "health":
		return CategoryHealth, nil
	case "productivity", "work":
		return CategoryProductivity, nil
	case "study", "studies", "learning":
		return CategoryStudy, nil
	case "wellbeing", "well-being", "mindfulness":
		return CategoryWellbeing, nil
	default:
		return "", ValidationError{Field: "category", Reason: fmt.Sprintf("%q", input)}
	}
}

// ParseFrequency accepts daily, weekly and specific-days (alias: days).
func ParseFrequency(input string) (Frequency, error) {
	switch strings.TrimSpace(strings.ToLower(input)) {
	case "", "daily":
		return FrequencyDaily, nil
	case "weekly":
		return FrequencyWeekly, nil
	case "specific-days", "days", "weekdays":
		return FrequencySpecificDays, nil
	default:
		return "", ValidationError{Field: "frequency", Reason: fmt.Sprintf("%q", input)}
	}
}

func ParseClass(input string) (Class, error) {
	c := Class(strings.TrimSpace(strings.ToLower(input)))
	if !c.IsValid() {
		return "", ValidationError{Field: "class", Reason: fmt.Sprintf("%q", input)}
	}
	return c, nil
}

func ParsePath(input string) (Path, error) {
	p := Path(strings.TrimSpace(strings.ToLower(input)))
	if !p.IsValid() {
		return "", ValidationError{Field: "path", Reason: fmt.Sprintf("%q", input)}
	}
	return p, nil
}

var weekdayNames = map[string]int{
	"sun": 0, "sunday": 0,
	"mon": 1, "monday": 1,
	"tue": 2, "tuesday": 2,
	"wed": 3, "wednesday": 3,
	"thu": 4, "thursday": 4,
	"fri": 5, "friday": 5,
	"sat": 6, "saturday": 6,
}

// ParseWeekdays parses a comma separated list of weekday numbers (0=Sunday)
// or names ("mon,wed,fri").
func ParseWeekdays(input string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(input, ",") {
		p := strings.TrimSpace(strings.ToLower(part))
		if p == "" {
			continue
		}
		if d, ok := weekdayNames[p]; ok {
			out = append(out, d)
			continue
		}
		d, err := strconv.Atoi(p)
		if err != nil || d < 0 || d > 6 {
			return nil, ValidationError{Field: "days", Reason: fmt.Sprintf("unknown weekday %q", part)}
		}
		out = append(out, d)
	}
	return out, nil
}

// ParseGoalSpec parses "title|category|frequency|days", where frequency and
// days are optional.
func ParseGoalSpec(spec string) (NewGoalInput, error) {
	parts := strings.Split(spec, "|")
	if len(parts) < 2 {
		return NewGoalInput{}, ValidationError{Field: "goal", Reason: fmt.Sprintf("expected title|category[|frequency[|days]], got %q", spec)}
	}
	in := NewGoalInput{Title: parts[0]}
	var err error
	if in.Category, err = ParseCategory(parts[1]); err != nil {
		return NewGoalInput{}, err
	}
	freq := ""
	if len(parts) > 2 {
		freq = parts[2]
	}
	if in.Frequency, err = ParseFrequency(freq); err != nil {
		return NewGoalInput{}, err
	}
	if len(parts) > 3 {
		if in.SpecificDays, err = ParseWeekdays(parts[3]); err != nil {
			return NewGoalInput{}, err
		}
	}
	return in, nil
}
