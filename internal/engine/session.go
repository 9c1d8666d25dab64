package engine

import "time"

// ToggleResult describes what a toggle did, for callers that drive feedback.
type ToggleResult struct {
	GoalID    string
	Found     bool
	Completed bool // goal state after the toggle

	XPGained        int
	AttributeGains  []AttributeGain
	LevelBefore     int
	LevelAfter      int
	LevelUp         bool
	NewAchievements []Achievement

	ActiveTotal     int
	ActiveCompleted int
	AuraLevel       int

	// DayCompleted is set when every active goal is done after the toggle.
	DayCompleted bool
	StreakBefore int
	StreakAfter  int
}

// ToggleGoal flips a goal's completion and derives the next state.
//
// Completing awards GoalCompletionXP and GoalCompletionPoints to the goal's
// category attributes and bumps the lifetime counter. Un-completing only
// decrements the counter (never below zero); experience, level, attributes and
// achievements already granted stay. Achievements are evaluated before the
// streak update, so a streak threshold reached by this toggle unlocks on the
// next evaluation. An unknown goal id returns the state unchanged.
func ToggleGoal(st State, goalID string, now time.Time) (State, ToggleResult) {
	idx := st.FindGoal(goalID)
	res := ToggleResult{
		GoalID:       goalID,
		LevelBefore:  st.Character.Level,
		LevelAfter:   st.Character.Level,
		StreakBefore: st.Streak,
		StreakAfter:  st.Streak,
		AuraLevel:    st.AuraLevel,
	}
	if idx < 0 {
		return st, res
	}

	next := st.Clone()
	goal := &next.Goals[idx]
	wasCompleted := goal.Completed
	goal.Completed = !wasCompleted
	res.Found = true
	res.Completed = goal.Completed

	active := ActiveToday(next.Goals, now)
	res.ActiveTotal = len(active)
	res.ActiveCompleted = CountCompleted(active)
	next.AuraLevel = AuraLevel(res.ActiveCompleted, res.ActiveTotal)
	res.AuraLevel = next.AuraLevel

	if !wasCompleted {
		before := next.Character.Attributes
		ch, _ := AddExperience(next.Character, GoalCompletionXP)
		ch.Attributes = ApplyPoints(ch.Attributes, goal.Category, GoalCompletionPoints)
		next.Character = ch
		next.TotalGoalsCompleted++

		res.XPGained = GoalCompletionXP
		res.AttributeGains = AttributeDiff(before, ch.Attributes)
	} else if next.TotalGoalsCompleted > 0 {
		next.TotalGoalsCompleted--
	}
	res.LevelAfter = next.Character.Level
	res.LevelUp = res.LevelAfter > res.LevelBefore

	unlocked := EvaluateAchievements(next.Character, next.TotalGoalsCompleted, next.Streak, now)
	if len(unlocked) > 0 {
		next.Character.Achievements = append(next.Character.Achievements, unlocked...)
		res.NewAchievements = unlocked
	}

	if res.ActiveTotal > 0 && res.ActiveCompleted == res.ActiveTotal {
		s := UpdateStreak(Streak{Count: next.Streak, LastCompleted: next.LastCompletedDate}, now)
		next.Streak = s.Count
		next.LastCompletedDate = s.LastCompleted
		res.DayCompleted = true
	}
	res.StreakAfter = next.Streak

	return next, res
}

// TodayView is the derived read model for the current day.
type TodayView struct {
	Goals     []Goal
	Completed int
	AuraLevel int
}

// Today derives the active goal list and aura for now.
func Today(st State, now time.Time) TodayView {
	active := ActiveToday(st.Goals, now)
	done := CountCompleted(active)
	return TodayView{
		Goals:     active,
		Completed: done,
		AuraLevel: AuraLevel(done, len(active)),
	}
}
