package engine

import (
	"encoding/json"
	"fmt"
	"time"
)

// CurrentSchemaVersion is written on every save.
// v1 had no character; v2 added character attributes and the version field.
const CurrentSchemaVersion = 2

type storedRecord struct {
	SchemaVersion       int              `json:"schemaVersion"`
	Name                string           `json:"name"`
	Path                Path             `json:"path"`
	Character           *storedCharacter `json:"character"`
	Goals               []Goal           `json:"goals"`
	AuraLevel           int              `json:"auraLevel"`
	Streak              int              `json:"streak"`
	LastCompletedDate   string           `json:"lastCompletedDate"`
	TotalGoalsCompleted int              `json:"totalGoalsCompleted"`
	OnboardingCompleted bool             `json:"onboardingCompleted"`
}

type storedCharacter struct {
	Class                 Class         `json:"class"`
	Level                 int           `json:"level"`
	Experience            int           `json:"experience"`
	ExperienceToNextLevel int           `json:"experienceToNextLevel"`
	Power                 int           `json:"power"`
	Attributes            *Attributes   `json:"attributes"`
	Achievements          []Achievement `json:"achievements"`
}

// UpgradeRecord decodes a persisted record and fills every field a legacy
// version may lack. repairs names every field that was filled or fixed; a
// non-empty list means the record must be written back. Only undecodable JSON
// is an error.
func UpgradeRecord(data []byte, loc *time.Location) (State, []string, error) {
	var rec storedRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return State{}, nil, fmt.Errorf("decode record: %w", err)
	}
	if loc == nil {
		loc = time.Local
	}

	var repairs []string
	repair := func(what string) { repairs = append(repairs, what) }

	if rec.SchemaVersion < CurrentSchemaVersion {
		repair(fmt.Sprintf("schema v%d -> v%d", rec.SchemaVersion, CurrentSchemaVersion))
	}

	var ch Character
	if rec.Character == nil {
		ch = NewCharacter(DefaultClass)
		repair("character")
	} else {
		sc := rec.Character
		ch = Character{
			Class:                 sc.Class,
			Level:                 sc.Level,
			Experience:            sc.Experience,
			ExperienceToNextLevel: sc.ExperienceToNextLevel,
			Power:                 sc.Power,
			Achievements:          sc.Achievements,
		}
		if !ch.Class.IsValid() {
			ch.Class = DefaultClass
			repair("character.class")
		}
		if sc.Attributes == nil {
			ch.Attributes = BaseAttributes(ch.Class)
			repair("character.attributes")
		} else {
			ch.Attributes = sc.Attributes.Clamped()
			if ch.Attributes != *sc.Attributes {
				repair("character.attributes range")
			}
		}
		if ch.Level < 1 {
			ch.Level = 1
			repair("character.level")
		}
		if ch.ExperienceToNextLevel <= 0 {
			ch.ExperienceToNextLevel = ExperienceRequired(ch.Level + 1)
			repair("character.experienceToNextLevel")
		}
		if ch.Experience < 0 {
			ch.Experience = 0
			repair("character.experience")
		}
		if ch.Power < 0 {
			ch.Power = 0
			repair("character.power")
		}
	}
	if ch.Achievements == nil {
		ch.Achievements = []Achievement{}
	}

	goals := rec.Goals
	if goals == nil {
		goals = []Goal{}
	}

	last, ok := normalizeDate(rec.LastCompletedDate, loc)
	if !ok {
		repair("lastCompletedDate")
	}

	st := State{
		SchemaVersion:       CurrentSchemaVersion,
		Name:                rec.Name,
		Path:                rec.Path,
		Character:           ch,
		Goals:               goals,
		AuraLevel:           rec.AuraLevel,
		Streak:              rec.Streak,
		LastCompletedDate:   last,
		TotalGoalsCompleted: rec.TotalGoalsCompleted,
		OnboardingCompleted: rec.OnboardingCompleted,
	}
	if st.Streak < 0 {
		st.Streak = 0
		repair("streak")
	}
	if st.TotalGoalsCompleted < 0 {
		st.TotalGoalsCompleted = 0
		repair("totalGoalsCompleted")
	}
	return st, repairs, nil
}

// legacyDateLayout is the "Sun Oct 18 2026" form older records were written with.
const legacyDateLayout = "Mon Jan 02 2006"

// normalizeDate accepts DateLayout, legacyDateLayout or an RFC 3339 timestamp and returns the
// DateLayout form. ok is false when the input had to be changed or dropped.
func normalizeDate(s string, loc *time.Location) (string, bool) {
	if s == "" {
		return "", true
	}
	if _, err := time.ParseInLocation(DateLayout, s, loc); err == nil {
		return s, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return DateKey(t.In(loc)), false
	}
	if t, err := time.ParseInLocation(legacyDateLayout, s, loc); err == nil {
		return DateKey(t), false
	}
	return "", false
}
