package engine

import "time"

type RequirementKind string

const (
	RequireLevel        RequirementKind = "level"
	RequireGoals        RequirementKind = "goals"
	RequireStreak       RequirementKind = "streak"
	RequireAttribute    RequirementKind = "attribute"
	RequireBalanced     RequirementKind = "balanced"
	RequireMaxAttribute RequirementKind = "max-attribute"
)

// Requirement is the unlock predicate of an achievement definition.
// Attribute is only read for RequireAttribute.
type Requirement struct {
	Kind      RequirementKind
	Attribute Attribute
	Count     int
}

// Progress is the state an achievement predicate is tested against.
type Progress struct {
	Level      int
	Attributes Attributes
	TotalGoals int
	Streak     int
}

// Met reports whether p satisfies r. Unknown kinds never match.
func (r Requirement) Met(p Progress) bool {
	switch r.Kind {
	case RequireLevel:
		return p.Level >= r.Count
	case RequireGoals:
		return p.TotalGoals >= r.Count
	case RequireStreak:
		return p.Streak >= r.Count
	case RequireAttribute:
		return p.Attributes.Get(r.Attribute) >= r.Count
	case RequireBalanced:
		for _, v := range p.Attributes.Values() {
			if v < r.Count {
				return false
			}
		}
		return true
	case RequireMaxAttribute:
		for _, v := range p.Attributes.Values() {
			if v >= r.Count {
				return true
			}
		}
		return false
	default:
		return false
	}
}

type AchievementDef struct {
	ID          string
	Title       string
	Description string
	Icon        string
	Rarity      Rarity
	Requirement Requirement
}

// Record stamps def as unlocked at the given time.
func (d AchievementDef) Record(at time.Time) Achievement {
	return Achievement{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Icon:        d.Icon,
		Rarity:      d.Rarity,
		UnlockedAt:  at,
	}
}

var achievementCatalog = []AchievementDef{
	{"first-step", "First Step", "Complete your first goal", "⭐", RarityCommon, Requirement{Kind: RequireGoals, Count: 1}},
	{"newbie-warrior", "Newbie Warrior", "Reach level 5", "⚔️", RarityCommon, Requirement{Kind: RequireLevel, Count: 5}},
	{"week-streak", "Flame of Determination", "Keep a 7 day streak", "🔥", RarityRare, Requirement{Kind: RequireStreak, Count: 7}},
	{"strong-warrior", "Strong Warrior", "Reach 50 Strength", "💪", RarityRare, Requirement{Kind: RequireAttribute, Attribute: AttributeStrength, Count: 50}},
	{"wise-sage", "Enlightened Sage", "Reach 50 Wisdom", "🧙", RarityRare, Requirement{Kind: RequireAttribute, Attribute: AttributeWisdom, Count: 50}},

	{"rising-hero", "Rising Hero", "Reach level 10", "🌟", RarityRare, Requirement{Kind: RequireLevel, Count: 10}},
	{"goal-master", "Goal Master", "Complete 50 goals", "🎯", RarityRare, Requirement{Kind: RequireGoals, Count: 50}},
	{"month-warrior", "Warrior of the Month", "Keep a 30 day streak", "👑", RarityEpic, Requirement{Kind: RequireStreak, Count: 30}},
	{"balanced-hero", "Balanced Hero", "Have every attribute at 30 or more", "⚖️", RarityEpic, Requirement{Kind: RequireBalanced, Count: 30}},

	{"elite-fighter", "Elite Fighter", "Reach level 20", "⚡", RarityEpic, Requirement{Kind: RequireLevel, Count: 20}},
	{"century-goals", "Centurion", "Complete 100 goals", "💯", RarityEpic, Requirement{Kind: RequireGoals, Count: 100}},
	{"unstoppable", "Unstoppable", "Keep a 60 day streak", "🔱", RarityEpic, Requirement{Kind: RequireStreak, Count: 60}},
	{"master-strength", "Master of Strength", "Reach 80 Strength", "🏋️", RarityEpic, Requirement{Kind: RequireAttribute, Attribute: AttributeStrength, Count: 80}},
	{"genius-mind", "Genius Mind", "Reach 80 Intelligence", "🧠", RarityEpic, Requirement{Kind: RequireAttribute, Attribute: AttributeIntelligence, Count: 80}},

	{"legendary-hero", "Legendary Hero", "Reach level 50", "👹", RarityLegendary, Requirement{Kind: RequireLevel, Count: 50}},
	{"goal-legend", "Goal Legend", "Complete 500 goals", "🏆", RarityLegendary, Requirement{Kind: RequireGoals, Count: 500}},
	{"eternal-flame", "Eternal Flame", "Keep a 100 day streak", "🔥", RarityLegendary, Requirement{Kind: RequireStreak, Count: 100}},
	{"ultimate-power", "Ultimate Power", "Reach level 100", "💫", RarityLegendary, Requirement{Kind: RequireLevel, Count: 100}},
	{"perfect-balance", "Perfect Balance", "Have every attribute at the maximum (100)", "☯️", RarityLegendary, Requirement{Kind: RequireBalanced, Count: 100}},
	{"omnipotent", "Omnipotent", "Reach 100 in any attribute", "🌌", RarityLegendary, Requirement{Kind: RequireMaxAttribute, Count: 100}},
}

// AchievementCatalog returns a copy of the ordered achievement definitions.
func AchievementCatalog() []AchievementDef {
	return append([]AchievementDef(nil), achievementCatalog...)
}

// AchievementDefFor looks up a definition by id.
func AchievementDefFor(id string) (AchievementDef, bool) {
	for _, d := range achievementCatalog {
		if d.ID == id {
			return d, true
		}
	}
	return AchievementDef{}, false
}

// EvaluateAchievements returns the achievements newly unlocked by the current state,
// in catalog order. Ids already present on the character are skipped; nothing is
// ever revoked.
func EvaluateAchievements(c Character, totalGoals, streak int, now time.Time) []Achievement {
	p := Progress{
		Level:      c.Level,
		Attributes: c.Attributes,
		TotalGoals: totalGoals,
		Streak:     streak,
	}
	var out []Achievement
	for _, def := range achievementCatalog {
		if c.HasAchievement(def.ID) {
			continue
		}
		if def.Requirement.Met(p) {
			out = append(out, def.Record(now))
		}
	}
	return out
}

// AchievementStatus pairs a definition with its unlock record, if any.
type AchievementStatus struct {
	Def      AchievementDef
	Unlocked *Achievement
}

// AchievementBoard lists the full catalog with the character's unlock state.
func AchievementBoard(c Character) []AchievementStatus {
	byID := make(map[string]Achievement, len(c.Achievements))
	for _, a := range c.Achievements {
		byID[a.ID] = a
	}
	out := make([]AchievementStatus, 0, len(achievementCatalog))
	for _, def := range achievementCatalog {
		st := AchievementStatus{Def: def}
		if a, ok := byID[def.ID]; ok {
			st.Unlocked = &a
		}
		out = append(out, st)
	}
	return out
}
