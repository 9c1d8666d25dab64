package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"levelingking/internal/engine"
)

var now = time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)

func loadedModel(t *testing.T) boardModel {
	t.Helper()
	st := engine.State{
		Name:      "Ana",
		Path:      engine.PathFocus,
		Character: engine.NewCharacter(engine.ClassPaladin),
		Goals: []engine.Goal{
			{ID: "g1", Title: "Run", Category: engine.CategoryExercise, Frequency: engine.FrequencyDaily},
			{ID: "g2", Title: "Gym", Category: engine.CategoryExercise, Frequency: engine.FrequencySpecificDays, SpecificDays: []int{3}},
			{ID: "g3", Title: "Read", Category: engine.CategoryStudy, Frequency: engine.FrequencyDaily, Completed: true},
		},
		OnboardingCompleted: true,
	}
	m := newBoardModel(context.Background(), nil)
	next, cmd := m.Update(loadedMsg{state: &st, today: engine.Today(st, now), now: now})
	assert.Nil(t, cmd)
	return next.(boardModel)
}

func key(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestBoardLoadAndView(t *testing.T) {
	m := loadedModel(t)
	assert.False(t, m.loading)
	require.Len(t, m.goals(), 2, "Gym is not due on Monday")

	view := m.View()
	assert.Contains(t, view, "Ana the Paladin")
	assert.Contains(t, view, "Aura 50%")
	assert.Contains(t, view, "> [ ] Run")
	assert.NotContains(t, view, "Gym")
}

func TestBoardNavigation(t *testing.T) {
	m := loadedModel(t)

	next, _ := m.Update(key("j"))
	m = next.(boardModel)
	assert.Equal(t, 1, m.selected)

	next, _ = m.Update(key("j"))
	m = next.(boardModel)
	assert.Equal(t, 1, m.selected, "selection stops at the last goal")

	next, _ = m.Update(key("a"))
	m = next.(boardModel)
	assert.Len(t, m.goals(), 3)
	assert.Contains(t, m.View(), "Gym")

	next, _ = m.Update(key("k"))
	m = next.(boardModel)
	assert.Equal(t, 0, m.selected)
}

func TestBoardToggleFeedback(t *testing.T) {
	m := loadedModel(t)

	next, cmd := m.Update(key(" "))
	m = next.(boardModel)
	assert.NotNil(t, cmd)
	assert.Equal(t, "Toggling Run…", m.lastLog)

	res := &engine.ToggleResult{
		GoalID:          "g1",
		Found:           true,
		Completed:       true,
		XPGained:        engine.GoalCompletionXP,
		AttributeGains:  []engine.AttributeGain{{Attribute: engine.AttributeStrength, Delta: 2}},
		NewAchievements: []engine.Achievement{{ID: "first-step", Title: "First Step"}},
		DayCompleted:    true,
		StreakBefore:    0,
		StreakAfter:     1,
	}
	st := m.state
	next, cmd = m.Update(toggledMsg{state: st, res: res})
	m = next.(boardModel)
	assert.NotNil(t, cmd, "a toggle triggers a reload")
	assert.Contains(t, m.lastLog, "Done Run: +50 XP")
	assert.Contains(t, m.lastLog, "STR +2")
	assert.Contains(t, m.lastLog, "Achievement: First Step")
	assert.Contains(t, m.lastLog, "Streak 1")
}

func TestToggleLogUndo(t *testing.T) {
	got := toggleLog(nil, &engine.ToggleResult{GoalID: "g9", Found: true, AuraLevel: 0})
	assert.Equal(t, "Undid g9. Aura 0%.", got)
	assert.Equal(t, "Goal not found.", toggleLog(nil, &engine.ToggleResult{}))
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "ab  ", padRight("ab", 4))
	assert.Equal(t, "abc", padRight("abcdef", 3))
}

func TestBoardRefusesGoalNotDue(t *testing.T) {
	m := loadedModel(t)

	next, _ := m.Update(key("a"))
	m = next.(boardModel)
	assert.Contains(t, m.View(), "Gym (exercise, wed) not today")

	m.selected = 1
	next, cmd := m.Update(key("c"))
	m = next.(boardModel)
	assert.Nil(t, cmd)
	assert.Equal(t, "Gym is not due today.", m.lastLog)
}
