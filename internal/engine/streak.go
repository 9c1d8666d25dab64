package engine

import "time"

// DateLayout is the day-granularity format used for LastCompletedDate.
const DateLayout = "2006-01-02"

// DateKey formats t's calendar date in t's own location.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// Streak is the consecutive full-day completion counter.
type Streak struct {
	Count         int
	LastCompleted string // DateLayout, empty when never
}

// UpdateStreak records a full-day completion on now's calendar date.
// Same day: unchanged. Previous day: incremented. Anything else: reset to 1.
func UpdateStreak(s Streak, now time.Time) Streak {
	today := DateKey(now)
	if s.LastCompleted == today {
		return s
	}
	yesterday := DateKey(now.AddDate(0, 0, -1))
	if s.LastCompleted == yesterday {
		return Streak{Count: s.Count + 1, LastCompleted: today}
	}
	return Streak{Count: 1, LastCompleted: today}
}

type Milestone struct {
	Days        int
	Title       string
	Description string
}

var streakMilestones = []Milestone{
	{100, "Eternal Flame", "100 days of evolution"},
	{60, "Unstoppable", "60 days of discipline"},
	{30, "Inner Guardian", "30 days of evolution"},
	{7, "Awakened Aura", "7 days of discipline"},
	{1, "First Spark", "First step taken"},
}

// StreakMilestone returns the highest milestone reached by streak.
func StreakMilestone(streak int) (Milestone, bool) {
	for _, m := range streakMilestones {
		if streak >= m.Days {
			return m, true
		}
	}
	return Milestone{}, false
}

var dailyMessages = []string{
	"Your aura grows with every finished action.",
	"Discipline is evolution.",
	"You are the protagonist. Keep going.",
	"Today is a good day to evolve.",
	"The power is in your hands.",
	"Every goal is a step toward legend.",
}

// DailyMessage picks the motivational line for now's day of month.
func DailyMessage(now time.Time) string {
	return dailyMessages[now.Day()%len(dailyMessages)]
}
