package engine

import "time"

type Category string

const (
	CategoryExercise     Category = "exercise"
	CategoryHealth       Category = "health"
	CategoryProductivity Category = "productivity"
	CategoryStudy        Category = "study"
	CategoryWellbeing    Category = "wellbeing"
)

// Categories lists every goal category in display order.
func Categories() []Category {
	return []Category{CategoryExercise, CategoryHealth, CategoryProductivity, CategoryStudy, CategoryWellbeing}
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryExercise, CategoryHealth, CategoryProductivity, CategoryStudy, CategoryWellbeing:
		return true
	default:
		return false
	}
}

type Frequency string

const (
	FrequencyDaily        Frequency = "daily"
	FrequencyWeekly       Frequency = "weekly"
	FrequencySpecificDays Frequency = "specific-days"
)

func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencySpecificDays:
		return true
	default:
		return false
	}
}

// Path is the cosmetic theme picked at onboarding. It has no mechanical effect.
type Path string

const (
	PathDiscipline Path = "discipline"
	PathFocus      Path = "focus"
	PathSerenity   Path = "serenity"
)

func Paths() []Path {
	return []Path{PathDiscipline, PathFocus, PathSerenity}
}

func (p Path) IsValid() bool {
	switch p {
	case PathDiscipline, PathFocus, PathSerenity:
		return true
	default:
		return false
	}
}

type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Rank orders rarities from 0 (common) to 3 (legendary). Unknown values rank -1.
func (r Rarity) Rank() int {
	switch r {
	case RarityCommon:
		return 0
	case RarityRare:
		return 1
	case RarityEpic:
		return 2
	case RarityLegendary:
		return 3
	default:
		return -1
	}
}

func (r Rarity) IsValid() bool {
	return r.Rank() >= 0
}

type Goal struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Category     Category  `json:"category"`
	Frequency    Frequency `json:"frequency"`
	SpecificDays []int     `json:"specificDays,omitempty"` // 0=Sunday .. 6=Saturday
	Completed    bool      `json:"completed"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Achievement struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Rarity      Rarity    `json:"rarity"`
	UnlockedAt  time.Time `json:"unlockedAt"`
}

type Character struct {
	Class                 Class         `json:"class"`
	Level                 int           `json:"level"`
	Experience            int           `json:"experience"`
	ExperienceToNextLevel int           `json:"experienceToNextLevel"`
	Power                 int           `json:"power"`
	Attributes            Attributes    `json:"attributes"`
	Achievements          []Achievement `json:"achievements"`
}

// HasAchievement reports whether id is already unlocked.
func (c Character) HasAchievement(id string) bool {
	for _, a := range c.Achievements {
		if a.ID == id {
			return true
		}
	}
	return false
}

// State is the whole persisted user record. Every mutation reads one State,
// derives a new one and writes it back in full.
type State struct {
	SchemaVersion       int       `json:"schemaVersion"`
	Name                string    `json:"name"`
	Path                Path      `json:"path"`
	Character           Character `json:"character"`
	Goals               []Goal    `json:"goals"`
	AuraLevel           int       `json:"auraLevel"`
	Streak              int       `json:"streak"`
	LastCompletedDate   string    `json:"lastCompletedDate"` // YYYY-MM-DD, empty when never
	TotalGoalsCompleted int       `json:"totalGoalsCompleted"`
	OnboardingCompleted bool      `json:"onboardingCompleted"`
}

// Clone returns a deep copy so pure transforms never alias the caller's slices.
func (s State) Clone() State {
	out := s
	if s.Goals != nil {
		out.Goals = make([]Goal, len(s.Goals))
		for i, g := range s.Goals {
			if g.SpecificDays != nil {
				g.SpecificDays = append([]int(nil), g.SpecificDays...)
			}
			out.Goals[i] = g
		}
	}
	if s.Character.Achievements != nil {
		out.Character.Achievements = append([]Achievement(nil), s.Character.Achievements...)
	}
	return out
}

// FindGoal returns the index of the goal with id, or -1.
func (s State) FindGoal(id string) int {
	for i := range s.Goals {
		if s.Goals[i].ID == id {
			return i
		}
	}
	return -1
}
