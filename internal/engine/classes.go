package engine

type Class string

const (
	ClassMage      Class = "mage"
	ClassArcher    Class = "archer"
	ClassBerserker Class = "berserker"
	ClassRogue     Class = "rogue"
	ClassPaladin   Class = "paladin"
)

// DefaultClass is used when a stored record has no usable class.
const DefaultClass Class = ClassMage

// Classes lists every class in selection order. The first entry is DefaultClass.
func Classes() []Class {
	return []Class{ClassMage, ClassArcher, ClassBerserker, ClassRogue, ClassPaladin}
}

func (c Class) IsValid() bool {
	switch c {
	case ClassMage, ClassArcher, ClassBerserker, ClassRogue, ClassPaladin:
		return true
	default:
		return false
	}
}

// Ability is a flavour perk that unlocks at a class level.
type Ability struct {
	Level       int
	Name        string
	Description string
	Icon        string
}

type ClassInfo struct {
	Class          Class
	Name           string
	Description    string
	Color          string // hex
	BaseAttributes Attributes
	Abilities      []Ability // ordered by Level
}

// Ability unlock levels shared by every class.
const (
	LevelFirstAbility  = 1
	LevelSecondAbility = 5
	LevelThirdAbility  = 10
	LevelFinalAbility  = 20
)

// ClassInfoFor returns the immutable table entry for c. ok is false for unknown classes.
func ClassInfoFor(c Class) (ClassInfo, bool) {
	switch c {
	case ClassMage:
		return ClassInfo{
			Class:       ClassMage,
			Name:        "Mage",
			Description: "Master of wisdom and arcane knowledge",
			Color:       "#8B5CF6",
			BaseAttributes: Attributes{
				Strength: 3, Intelligence: 10, Agility: 4, Endurance: 5, Wisdom: 9, Charisma: 6,
			},
			Abilities: []Ability{
				{LevelFirstAbility, "Brilliant Mind", "+10% XP on Study goals", "🧠"},
				{LevelSecondAbility, "Arcane Focus", "+5% XP on all goals", "✨"},
				{LevelThirdAbility, "Ancestral Wisdom", "+15% XP on Study and Wellbeing goals", "📚"},
				{LevelFinalAbility, "Arcane Master", "+20% XP on all goals", "🔮"},
			},
		}, true
	case ClassArcher:
		return ClassInfo{
			Class:       ClassArcher,
			Name:        "Archer",
			Description: "Precise and focused, never misses the mark",
			Color:       "#10B981",
			BaseAttributes: Attributes{
				Strength: 6, Intelligence: 6, Agility: 10, Endurance: 7, Wisdom: 5, Charisma: 5,
			},
			Abilities: []Ability{
				{LevelFirstAbility, "Eagle Eye", "+10% XP on Productivity goals", "🎯"},
				{LevelSecondAbility, "Deadly Precision", "+5% XP on all goals", "🏹"},
				{LevelThirdAbility, "Absolute Focus", "+15% XP on Productivity and Exercise goals", "👁️"},
				{LevelFinalAbility, "Master Archer", "+20% XP on all goals", "🎖️"},
			},
		}, true
	case ClassBerserker:
		return ClassInfo{
			Class:       ClassBerserker,
			Name:        "Berserker",
			Description: "Raw strength and unshakable resolve",
			Color:       "#EF4444",
			BaseAttributes: Attributes{
				Strength: 10, Intelligence: 3, Agility: 6, Endurance: 9, Wisdom: 4, Charisma: 5,
			},
			Abilities: []Ability{
				{LevelFirstAbility, "Untamed Fury", "+10% XP on Exercise goals", "💪"},
				{LevelSecondAbility, "Brutal Endurance", "+5% XP on all goals", "🛡️"},
				{LevelThirdAbility, "Titanic Strength", "+15% XP on Exercise and Health goals", "⚡"},
				{LevelFinalAbility, "Supreme Berserker", "+20% XP on all goals", "👹"},
			},
		}, true
	case ClassRogue:
		return ClassInfo{
			Class:       ClassRogue,
			Name:        "Rogue",
			Description: "Agile and strategic, always one step ahead",
			Color:       "#F59E0B",
			BaseAttributes: Attributes{
				Strength: 5, Intelligence: 7, Agility: 10, Endurance: 6, Wisdom: 6, Charisma: 8,
			},
			Abilities: []Ability{
				{LevelFirstAbility, "Stealthy Shadows", "+10% XP on Wellbeing goals", "🌙"},
				{LevelSecondAbility, "Supreme Agility", "+5% XP on all goals", "💨"},
				{LevelThirdAbility, "Shadow Master", "+15% XP on Wellbeing and Productivity goals", "🗡️"},
				{LevelFinalAbility, "Legendary Rogue", "+20% XP on all goals", "👤"},
			},
		}, true
	case ClassPaladin:
		return ClassInfo{
			Class:       ClassPaladin,
			Name:        "Paladin",
			Description: "Guardian of discipline and honor",
			Color:       "#3B82F6",
			BaseAttributes: Attributes{
				Strength: 8, Intelligence: 6, Agility: 5, Endurance: 9, Wisdom: 7, Charisma: 9,
			},
			Abilities: []Ability{
				{LevelFirstAbility, "Divine Light", "+10% XP on Health goals", "✨"},
				{LevelSecondAbility, "Sacred Shield", "+5% XP on all goals", "🛡️"},
				{LevelThirdAbility, "Holy Guardian", "+15% XP on Health and Exercise goals", "⚔️"},
				{LevelFinalAbility, "Divine Paladin", "+20% XP on all goals", "👼"},
			},
		}, true
	default:
		return ClassInfo{}, false
	}
}

// BaseAttributes returns the starting vector for c, falling back to DefaultClass.
func BaseAttributes(c Class) Attributes {
	info, ok := ClassInfoFor(c)
	if !ok {
		info, _ = ClassInfoFor(DefaultClass)
	}
	return info.BaseAttributes
}

// UnlockedAbilities returns the class abilities available at level, in unlock order.
func UnlockedAbilities(c Class, level int) []Ability {
	info, ok := ClassInfoFor(c)
	if !ok {
		return nil
	}
	var out []Ability
	for _, a := range info.Abilities {
		if level >= a.Level {
			out = append(out, a)
		}
	}
	return out
}

// NextAbility returns the first ability still locked at level.
func NextAbility(c Class, level int) (Ability, bool) {
	info, ok := ClassInfoFor(c)
	if !ok {
		return Ability{}, false
	}
	for _, a := range info.Abilities {
		if level < a.Level {
			return a, true
		}
	}
	return Ability{}, false
}
