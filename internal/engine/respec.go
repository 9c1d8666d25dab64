package engine

// RespecResult summarises a class change.
type RespecResult struct {
	From        Class
	To          Class
	LevelBefore int
	LevelAfter  int
	PowerBefore int
	PowerAfter  int
}

// ChangeClass switches class at a cost: level drops to floor(level*0.8) (min 1),
// experience resets, power loses PowerPerLevel per level lost (min MinPower),
// and attributes reset to the new class's base vector. Achievements are kept.
func ChangeClass(c Character, to Class) (Character, RespecResult, error) {
	if !to.IsValid() {
		return c, RespecResult{}, ValidationError{Field: "class", Reason: string(to)}
	}
	if c.Class == to {
		return c, RespecResult{}, ValidationError{Field: "class", Reason: "already a " + string(to)}
	}

	newLevel := c.Level * 4 / 5
	if newLevel < 1 {
		newLevel = 1
	}
	lost := c.Level - newLevel
	if lost < 0 {
		lost = 0
	}
	power := c.Power - lost*PowerPerLevel
	if power < MinPower {
		power = MinPower
	}

	out := c
	out.Class = to
	out.Level = newLevel
	out.Experience = 0
	out.ExperienceToNextLevel = ExperienceRequired(newLevel + 1)
	out.Power = power
	out.Attributes = BaseAttributes(to)
	if c.Achievements != nil {
		out.Achievements = append([]Achievement(nil), c.Achievements...)
	}

	return out, RespecResult{
		From:        c.Class,
		To:          to,
		LevelBefore: c.Level,
		LevelAfter:  newLevel,
		PowerBefore: c.Power,
		PowerAfter:  power,
	}, nil
}
