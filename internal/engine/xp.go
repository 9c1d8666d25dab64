package engine

import "math"

const (
	// ExperienceBase and ExperienceGrowth define the per-level threshold:
	// floor(ExperienceBase * ExperienceGrowth^(level-1)).
	ExperienceBase   = 100.0
	ExperienceGrowth = 1.5

	// GoalCompletionXP and GoalCompletionPoints are awarded per false→true toggle.
	GoalCompletionXP     = 50
	GoalCompletionPoints = 2

	PowerPerLevel = 5
	StartingPower = 10
	MinPower      = 10
)

// ExperienceRequired returns the experience threshold for level. Levels below 1 are treated as 1.
// Save data depends on the exact rounding, so keep the floor.
func ExperienceRequired(level int) int {
	if level < 1 {
		level = 1
	}
	f := math.Floor(ExperienceBase * math.Pow(ExperienceGrowth, float64(level-1)))
	// Past level 97 the curve no longer fits in an int; the threshold saturates.
	if f >= float64(math.MaxInt) {
		return math.MaxInt
	}
	return int(f)
}

// NewCharacter returns a level 1 character of class c with its base attributes.
func NewCharacter(c Class) Character {
	if !c.IsValid() {
		c = DefaultClass
	}
	return Character{
		Class:                 c,
		Level:                 1,
		Experience:            0,
		ExperienceToNextLevel: ExperienceRequired(2),
		Power:                 StartingPower,
		Attributes:            BaseAttributes(c),
		Achievements:          []Achievement{},
	}
}

// AddExperience adds xp and applies every level-up it pays for. After each
// level-up the threshold becomes ExperienceRequired(newLevel+1), so one large
// award can cascade through several levels. Power grows by PowerPerLevel per level
// gained. Non-positive xp is a no-op.
func AddExperience(c Character, xp int) (Character, int) {
	if xp <= 0 {
		return c, 0
	}
	out := c
	if out.Level < 1 {
		out.Level = 1
	}
	if out.ExperienceToNextLevel <= 0 {
		out.ExperienceToNextLevel = ExperienceRequired(out.Level + 1)
	}

	out.Experience += xp
	gained := 0
	for out.Experience >= out.ExperienceToNextLevel {
		out.Experience -= out.ExperienceToNextLevel
		out.Level++
		gained++
		out.ExperienceToNextLevel = ExperienceRequired(out.Level + 1)
	}
	out.Power += gained * PowerPerLevel
	return out, gained
}

// LevelProgress returns experience as a 0..1 fraction of the current threshold.
func LevelProgress(c Character) float64 {
	if c.ExperienceToNextLevel <= 0 {
		return 0
	}
	p := float64(c.Experience) / float64(c.ExperienceToNextLevel)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
