package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttributesForCategoryCoversAll(t *testing.T) {
	covered := map[Attribute]bool{}
	for _, c := range Categories() {
		attrs := AttributesForCategory(c)
		require.NotEmpty(t, attrs, "category %s", c)
		require.LessOrEqual(t, len(attrs), 3)
		for _, a := range attrs {
			require.True(t, a.IsValid())
			covered[a] = true
		}
		if len(attrs) == 1 {
			assert.NotEqual(t, AttributeCharisma, attrs[0])
		}
	}
	assert.Len(t, covered, 6)
	assert.Nil(t, AttributesForCategory("cooking"))
}

func TestApplyPoints(t *testing.T) {
	base := BaseAttributes(ClassMage)
	got := ApplyPoints(base, CategoryStudy, 2)

	assert.Equal(t, base.Intelligence+2, got.Intelligence)
	assert.Equal(t, base.Wisdom+2, got.Wisdom)
	assert.Equal(t, base.Strength, got.Strength)
	assert.Equal(t, base.Charisma, got.Charisma)

	// Repeated application keeps adding.
	again := ApplyPoints(got, CategoryStudy, 2)
	assert.Equal(t, base.Intelligence+4, again.Intelligence)
}

func TestApplyPointsClamps(t *testing.T) {
	start := Attributes{Strength: 99, Intelligence: 100, Agility: 0, Endurance: 150, Wisdom: -5, Charisma: 50}
	for _, c := range Categories() {
		for _, pts := range []int{-10, 0, 1, 2, 500} {
			got := ApplyPoints(start, c, pts)
			for _, v := range got.Values() {
				require.GreaterOrEqual(t, v, AttributeMin)
				require.LessOrEqual(t, v, AttributeMax)
			}
		}
	}
	got := ApplyPoints(start, CategoryExercise, 2)
	assert.Equal(t, 100, got.Strength)
	assert.Equal(t, 100, got.Endurance)
	assert.Equal(t, 2, got.Agility)
}

func TestAttributeDiff(t *testing.T) {
	before := Attributes{Strength: 99, Agility: 10, Endurance: 10}
	after := ApplyPoints(before, CategoryExercise, 2)
	assert.Equal(t, []AttributeGain{
		{AttributeStrength, 1},
		{AttributeAgility, 2},
		{AttributeEndurance, 2},
	}, AttributeDiff(before, after))
}

func TestAttributePower(t *testing.T) {
	assert.Equal(t, 6, AttributePower(BaseAttributes(ClassMage))) // 37/6
	assert.Equal(t, 100, AttributePower(Attributes{100, 100, 100, 100, 100, 100}))
}

func TestClassTableIsComplete(t *testing.T) {
	for _, c := range Classes() {
		info, ok := ClassInfoFor(c)
		require.True(t, ok, "class %s", c)
		assert.Equal(t, c, info.Class)
		assert.NotEmpty(t, info.Name)
		require.Len(t, info.Abilities, 4)
		for i := 1; i < len(info.Abilities); i++ {
			assert.Less(t, info.Abilities[i-1].Level, info.Abilities[i].Level)
		}
		for _, v := range info.BaseAttributes.Values() {
			assert.Greater(t, v, 0)
		}
	}
	_, ok := ClassInfoFor("bard")
	assert.False(t, ok)
	assert.Equal(t, DefaultClass, Classes()[0])
}

func TestUnlockedAbilities(t *testing.T) {
	assert.Len(t, UnlockedAbilities(ClassArcher, 1), 1)
	assert.Len(t, UnlockedAbilities(ClassArcher, 9), 2)
	assert.Len(t, UnlockedAbilities(ClassArcher, 20), 4)
	assert.Empty(t, UnlockedAbilities("bard", 50))

	next, ok := NextAbility(ClassArcher, 5)
	require.True(t, ok)
	assert.Equal(t, LevelThirdAbility, next.Level)
	_, ok = NextAbility(ClassArcher, 20)
	assert.False(t, ok)
}
