package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(as []Achievement) []string {
	out := make([]string, 0, len(as))
	for _, a := range as {
		out = append(out, a.ID)
	}
	return out
}

func TestCatalogShape(t *testing.T) {
	cat := AchievementCatalog()
	require.Len(t, cat, 20)

	seen := map[string]bool{}
	kinds := map[RequirementKind]bool{}
	for _, d := range cat {
		assert.False(t, seen[d.ID], "duplicate id %s", d.ID)
		seen[d.ID] = true
		assert.True(t, d.Rarity.IsValid(), d.ID)
		kinds[d.Requirement.Kind] = true
		if d.Requirement.Kind == RequireAttribute {
			assert.True(t, d.Requirement.Attribute.IsValid(), d.ID)
		}
	}
	assert.Len(t, kinds, 6)
	assert.Equal(t, "first-step", cat[0].ID)
	assert.Equal(t, "omnipotent", cat[len(cat)-1].ID)
}

func TestFirstStepUnlocksOnce(t *testing.T) {
	now := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	c := NewCharacter(ClassMage)

	assert.Empty(t, EvaluateAchievements(c, 0, 0, now))

	got := EvaluateAchievements(c, 1, 0, now)
	require.Equal(t, []string{"first-step"}, ids(got))
	assert.Equal(t, now, got[0].UnlockedAt)
	assert.Equal(t, RarityCommon, got[0].Rarity)

	c.Achievements = append(c.Achievements, got...)
	assert.Empty(t, EvaluateAchievements(c, 5, 0, now))
}

func TestEvaluateFollowsCatalogOrder(t *testing.T) {
	now := time.Now()
	c := NewCharacter(ClassBerserker)
	c.Level = 10
	c.Attributes.Strength = 50

	got := EvaluateAchievements(c, 1, 7, now)
	assert.Equal(t, []string{"first-step", "newbie-warrior", "week-streak", "strong-warrior", "rising-hero"}, ids(got))
}

func TestRequirementKinds(t *testing.T) {
	p := Progress{
		Level:      20,
		TotalGoals: 100,
		Streak:     30,
		Attributes: Attributes{Strength: 100, Intelligence: 30, Agility: 30, Endurance: 30, Wisdom: 30, Charisma: 30},
	}
	assert.True(t, Requirement{Kind: RequireLevel, Count: 20}.Met(p))
	assert.False(t, Requirement{Kind: RequireLevel, Count: 21}.Met(p))
	assert.True(t, Requirement{Kind: RequireGoals, Count: 100}.Met(p))
	assert.True(t, Requirement{Kind: RequireStreak, Count: 30}.Met(p))
	assert.False(t, Requirement{Kind: RequireStreak, Count: 60}.Met(p))
	assert.True(t, Requirement{Kind: RequireAttribute, Attribute: AttributeStrength, Count: 80}.Met(p))
	assert.False(t, Requirement{Kind: RequireAttribute, Attribute: AttributeIntelligence, Count: 80}.Met(p))
	assert.True(t, Requirement{Kind: RequireBalanced, Count: 30}.Met(p))
	assert.False(t, Requirement{Kind: RequireBalanced, Count: 100}.Met(p))
	assert.True(t, Requirement{Kind: RequireMaxAttribute, Count: 100}.Met(p))
	assert.False(t, Requirement{Kind: "mystery", Count: 0}.Met(p))
}

func TestAchievementBoard(t *testing.T) {
	c := NewCharacter(ClassMage)
	def, ok := AchievementDefFor("wise-sage")
	require.True(t, ok)
	c.Achievements = append(c.Achievements, def.Record(time.Now()))

	board := AchievementBoard(c)
	require.Len(t, board, len(AchievementCatalog()))
	unlocked := 0
	for _, st := range board {
		if st.Unlocked != nil {
			unlocked++
			assert.Equal(t, "wise-sage", st.Def.ID)
		}
	}
	assert.Equal(t, 1, unlocked)
}

func TestRarityRank(t *testing.T) {
	assert.Less(t, RarityCommon.Rank(), RarityRare.Rank())
	assert.Less(t, RarityRare.Rank(), RarityEpic.Rank())
	assert.Less(t, RarityEpic.Rank(), RarityLegendary.Rank())
	assert.False(t, Rarity("mythic").IsValid())
}
