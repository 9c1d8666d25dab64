package engine

type Attribute string

const (
	AttributeStrength     Attribute = "strength"
	AttributeIntelligence Attribute = "intelligence"
	AttributeAgility      Attribute = "agility"
	AttributeEndurance    Attribute = "endurance"
	AttributeWisdom       Attribute = "wisdom"
	AttributeCharisma     Attribute = "charisma"
)

const (
	AttributeMin = 0
	AttributeMax = 100
)

// AllAttributes lists the six attributes in display order.
func AllAttributes() []Attribute {
	return []Attribute{
		AttributeStrength,
		AttributeIntelligence,
		AttributeAgility,
		AttributeEndurance,
		AttributeWisdom,
		AttributeCharisma,
	}
}

func (a Attribute) IsValid() bool {
	switch a {
	case AttributeStrength, AttributeIntelligence, AttributeAgility,
		AttributeEndurance, AttributeWisdom, AttributeCharisma:
		return true
	default:
		return false
	}
}

// Attributes is the six-dimensional character stat vector. Values stay in [0, 100].
type Attributes struct {
	Strength     int `json:"strength"`
	Intelligence int `json:"intelligence"`
	Agility      int `json:"agility"`
	Endurance    int `json:"endurance"`
	Wisdom       int `json:"wisdom"`
	Charisma     int `json:"charisma"`
}

func (a Attributes) Get(attr Attribute) int {
	switch attr {
	case AttributeStrength:
		return a.Strength
	case AttributeIntelligence:
		return a.Intelligence
	case AttributeAgility:
		return a.Agility
	case AttributeEndurance:
		return a.Endurance
	case AttributeWisdom:
		return a.Wisdom
	case AttributeCharisma:
		return a.Charisma
	default:
		return 0
	}
}

func (a *Attributes) set(attr Attribute, v int) {
	v = clampAttribute(v)
	switch attr {
	case AttributeStrength:
		a.Strength = v
	case AttributeIntelligence:
		a.Intelligence = v
	case AttributeAgility:
		a.Agility = v
	case AttributeEndurance:
		a.Endurance = v
	case AttributeWisdom:
		a.Wisdom = v
	case AttributeCharisma:
		a.Charisma = v
	}
}

// Values returns the vector in AllAttributes order.
func (a Attributes) Values() []int {
	out := make([]int, 0, 6)
	for _, attr := range AllAttributes() {
		out = append(out, a.Get(attr))
	}
	return out
}

// Clamped returns a copy with every value forced into [0, 100].
func (a Attributes) Clamped() Attributes {
	out := a
	for _, attr := range AllAttributes() {
		out.set(attr, a.Get(attr))
	}
	return out
}

func clampAttribute(v int) int {
	if v < AttributeMin {
		return AttributeMin
	}
	if v > AttributeMax {
		return AttributeMax
	}
	return v
}

// AttributesForCategory returns the attributes a goal category trains.
// Categories overlap; charisma is never trained alone.
func AttributesForCategory(c Category) []Attribute {
	switch c {
	case CategoryExercise:
		return []Attribute{AttributeStrength, AttributeAgility, AttributeEndurance}
	case CategoryStudy:
		return []Attribute{AttributeIntelligence, AttributeWisdom}
	case CategoryProductivity:
		return []Attribute{AttributeIntelligence, AttributeAgility, AttributeCharisma}
	case CategoryHealth:
		return []Attribute{AttributeEndurance, AttributeWisdom}
	case CategoryWellbeing:
		return []Attribute{AttributeWisdom, AttributeCharisma, AttributeEndurance}
	default:
		return nil
	}
}

// AttributeGain is one attribute's change after a completion.
type AttributeGain struct {
	Attribute Attribute
	Delta     int
}

// ApplyPoints adds points to every attribute the category trains, saturating at 100.
// Non-positive points leave the vector unchanged; attributes never decrease here.
func ApplyPoints(attrs Attributes, c Category, points int) Attributes {
	out := attrs.Clamped()
	if points <= 0 {
		return out
	}
	for _, attr := range AttributesForCategory(c) {
		out.set(attr, out.Get(attr)+points)
	}
	return out
}

// AttributeDiff lists attributes that grew from before to after, in display order.
func AttributeDiff(before, after Attributes) []AttributeGain {
	var gains []AttributeGain
	for _, attr := range AllAttributes() {
		if d := after.Get(attr) - before.Get(attr); d > 0 {
			gains = append(gains, AttributeGain{Attribute: attr, Delta: d})
		}
	}
	return gains
}

// AttributePower is the average of all six attributes, rounded down.
func AttributePower(a Attributes) int {
	sum := 0
	for _, v := range a.Values() {
		sum += v
	}
	return sum / 6
}
