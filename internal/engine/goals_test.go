package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGoal(t *testing.T) {
	g, err := NewGoal(NewGoalInput{Title: " Stretch ", Category: CategoryHealth, Frequency: FrequencyDaily, SpecificDays: []int{3}}, monday)
	require.NoError(t, err)
	assert.Equal(t, "Stretch", g.Title)
	assert.Nil(t, g.SpecificDays, "days are only kept for specific-days goals")
	assert.False(t, g.Completed)
	assert.Len(t, g.ID, 36)

	_, err = NewGoal(NewGoalInput{Title: "x", Category: "cooking", Frequency: FrequencyDaily}, monday)
	assert.Error(t, err)
	_, err = NewGoal(NewGoalInput{Title: "x", Category: CategoryHealth, Frequency: "hourly"}, monday)
	assert.Error(t, err)
	_, err = NewGoal(NewGoalInput{Title: "x", Category: CategoryHealth, Frequency: FrequencySpecificDays, SpecificDays: []int{7}}, monday)
	assert.Error(t, err)
}

func TestAddRemoveGoalRefreshAura(t *testing.T) {
	done := goal("a", CategoryHealth, FrequencyDaily)
	done.Completed = true
	st := testState(done)

	st = AddGoal(st, goal("b", CategoryHealth, FrequencyDaily), monday)
	assert.Equal(t, 50, st.AuraLevel)

	st, err := RemoveGoal(st, "b", monday)
	require.NoError(t, err)
	assert.Equal(t, 100, st.AuraLevel)

	_, err = RemoveGoal(st, "b", monday)
	assert.ErrorIs(t, err, ErrGoalNotFound)
}

func TestResolveGoalID(t *testing.T) {
	st := testState(goal("abc123", CategoryHealth, FrequencyDaily), goal("abd456", CategoryHealth, FrequencyDaily))

	id, err := ResolveGoalID(st, "abc")
	require.NoError(t, err)
	assert.Equal(t, "abc123", id)

	_, err = ResolveGoalID(st, "ab")
	var ve ValidationError
	assert.ErrorAs(t, err, &ve)

	_, err = ResolveGoalID(st, "zzz")
	assert.ErrorIs(t, err, ErrGoalNotFound)
}

func TestChangeClassPenalty(t *testing.T) {
	c := NewCharacter(ClassMage)
	c.Level = 3
	c.Power = 20
	c.Achievements = []Achievement{{ID: "first-step"}}

	got, res, err := ChangeClass(c, ClassRogue)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Level) // floor(2.4)
	assert.Equal(t, 15, got.Power)
	assert.Equal(t, ExperienceRequired(3), got.ExperienceToNextLevel)
	assert.Equal(t, BaseAttributes(ClassRogue), got.Attributes)
	assert.Equal(t, []Achievement{{ID: "first-step"}}, got.Achievements)
	assert.Equal(t, ClassMage, res.From)

	low := NewCharacter(ClassMage)
	got, _, err = ChangeClass(low, ClassPaladin)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Level)
	assert.Equal(t, MinPower, got.Power)

	_, _, err = ChangeClass(low, "bard")
	assert.Error(t, err)
}

func TestParseGoalSpec(t *testing.T) {
	in, err := ParseGoalSpec("Gym|exercise|days|mon,wed,5")
	require.NoError(t, err)
	assert.Equal(t, "Gym", in.Title)
	assert.Equal(t, CategoryExercise, in.Category)
	assert.Equal(t, FrequencySpecificDays, in.Frequency)
	assert.Equal(t, []int{1, 3, 5}, in.SpecificDays)

	in, err = ParseGoalSpec("Read|study")
	require.NoError(t, err)
	assert.Equal(t, FrequencyDaily, in.Frequency)

	_, err = ParseGoalSpec("no category")
	assert.Error(t, err)
	_, err = ParseGoalSpec("x|study|days|funday")
	assert.Error(t, err)
}
