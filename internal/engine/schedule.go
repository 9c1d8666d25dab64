package engine

import (
	"math"
	"time"
)

// IsActiveOn reports whether g is due on weekday.
// Weekly goals are due every day, exactly like daily goals.
func IsActiveOn(g Goal, weekday time.Weekday) bool {
	switch g.Frequency {
	case FrequencyDaily, FrequencyWeekly:
		return true
	case FrequencySpecificDays:
		for _, d := range g.SpecificDays {
			if d == int(weekday) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// ActiveToday filters goals down to the ones due on now's weekday (0=Sunday).
// It is evaluated on every read; nothing is cached across days.
func ActiveToday(goals []Goal, now time.Time) []Goal {
	weekday := now.Weekday()
	var out []Goal
	for _, g := range goals {
		if IsActiveOn(g, weekday) {
			out = append(out, g)
		}
	}
	return out
}

// CountCompleted returns how many goals are completed.
func CountCompleted(goals []Goal) int {
	n := 0
	for _, g := range goals {
		if g.Completed {
			n++
		}
	}
	return n
}

// AuraLevel is the completed share of active goals as a rounded percentage.
func AuraLevel(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(completed) / float64(total)))
}
