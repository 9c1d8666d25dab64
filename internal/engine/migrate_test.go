package engine

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const legacyNoCharacter = `{
	"name": "Ana",
	"path": "focus",
	"goals": [{"id": "1", "title": "Run", "category": "exercise", "frequency": "daily", "completed": false, "createdAt": "2026-01-01T10:00:00Z"}],
	"auraLevel": 0,
	"streak": 3,
	"lastCompletedDate": "2026-10-18T23:10:00Z",
	"totalGoalsCompleted": 12,
	"onboardingCompleted": true
}`

func TestUpgradeSynthesizesCharacter(t *testing.T) {
	st, repairs, err := UpgradeRecord([]byte(legacyNoCharacter), time.UTC)
	require.NoError(t, err)
	assert.NotEmpty(t, repairs)

	assert.Equal(t, CurrentSchemaVersion, st.SchemaVersion)
	assert.Equal(t, DefaultClass, st.Character.Class)
	assert.Equal(t, 1, st.Character.Level)
	assert.Zero(t, st.Character.Experience)
	assert.Equal(t, BaseAttributes(DefaultClass), st.Character.Attributes)
	assert.Empty(t, st.Character.Achievements)
	assert.NotNil(t, st.Character.Achievements)
	assert.Equal(t, "2026-10-18", st.LastCompletedDate)
	assert.Equal(t, 12, st.TotalGoalsCompleted)
}

func TestUpgradeFillsMissingAttributes(t *testing.T) {
	raw := `{"schemaVersion": 1, "name": "Bia", "character": {"class": "berserker", "level": 4, "experience": 30, "experienceToNextLevel": 506, "power": 25, "achievements": []}, "onboardingCompleted": true}`
	st, repairs, err := UpgradeRecord([]byte(raw), time.UTC)
	require.NoError(t, err)
	assert.Contains(t, repairs, "character.attributes")
	assert.Equal(t, BaseAttributes(ClassBerserker), st.Character.Attributes)
	assert.Equal(t, 4, st.Character.Level)
	assert.Equal(t, 25, st.Character.Power)
	assert.NotNil(t, st.Goals)
}

func TestUpgradeCurrentRecordIsUntouched(t *testing.T) {
	st := testState(goal("a", CategoryHealth, FrequencyDaily))
	st.LastCompletedDate = "2026-10-18"
	data, err := json.Marshal(st)
	require.NoError(t, err)

	got, repairs, err := UpgradeRecord(data, time.UTC)
	require.NoError(t, err)
	assert.Empty(t, repairs)
	assert.Equal(t, st.Character, got.Character)
	assert.Equal(t, st.LastCompletedDate, got.LastCompletedDate)
}

func TestUpgradeUnknownClassFallsBack(t *testing.T) {
	raw := `{"schemaVersion": 2, "character": {"class": "bard", "level": 0, "attributes": {"strength": 120}}}`
	st, repairs, err := UpgradeRecord([]byte(raw), time.UTC)
	require.NoError(t, err)
	assert.Equal(t, DefaultClass, st.Character.Class)
	assert.Equal(t, 1, st.Character.Level)
	assert.Equal(t, 100, st.Character.Attributes.Strength)
	assert.Equal(t, ExperienceRequired(2), st.Character.ExperienceToNextLevel)
	assert.Contains(t, repairs, "character.class")
}

func TestUpgradeRejectsGarbage(t *testing.T) {
	_, _, err := UpgradeRecord([]byte("[1,2"), time.UTC)
	assert.Error(t, err)
}

func TestLoadPersistsUpgrade(t *testing.T) {
	svc, store, _ := newTestService(t)
	store.data[StorageKey] = []byte(legacyNoCharacter)

	st, err := svc.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, DefaultClass, st.Character.Class)
	assert.Equal(t, 1, store.puts)

	// Already upgraded: no further writes.
	_, err = svc.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, store.puts)
}

func TestLoadNotOnboarded(t *testing.T) {
	svc, store, _ := newTestService(t)
	store.data[StorageKey] = []byte(`{"schemaVersion": 2, "name": "x", "character": {"class": "mage", "level": 1, "experienceToNextLevel": 150, "power": 10, "attributes": {}, "achievements": []}, "goals": [], "onboardingCompleted": false}`)

	_, err := svc.Load(context.Background())
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestUpgradeNormalizesLegacyDates(t *testing.T) {
	west := time.FixedZone("UTC-3", -3*60*60)
	cases := []struct {
		name string
		in   string
		loc  *time.Location
		want string
	}{
		{"date string", "Sun Oct 18 2026", time.UTC, "2026-10-18"},
		{"date string padded day", "Thu Oct 08 2026", west, "2026-10-08"},
		{"rfc3339 utc", "2026-10-18T23:10:00Z", time.UTC, "2026-10-18"},
		{"rfc3339 shifted to zone", "2026-10-19T01:30:00Z", west, "2026-10-18"},
		{"current layout", "2026-10-18", time.UTC, "2026-10-18"},
		{"garbage", "yesterday-ish", time.UTC, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			raw := `{"schemaVersion": 2, "lastCompletedDate": "` + tc.in + `", "onboardingCompleted": true}`
			st, repairs, err := UpgradeRecord([]byte(raw), tc.loc)
			require.NoError(t, err)
			assert.Equal(t, tc.want, st.LastCompletedDate)
			if tc.in == tc.want {
				assert.NotContains(t, repairs, "lastCompletedDate")
			} else {
				assert.Contains(t, repairs, "lastCompletedDate")
			}
		})
	}
}

func TestLegacyDateKeepsStreakGoing(t *testing.T) {
	raw := `{
		"name": "Ana",
		"goals": [{"id": "run", "title": "Run", "category": "exercise", "frequency": "daily", "completed": false, "createdAt": "2026-10-01T10:00:00Z"}],
		"streak": 4,
		"lastCompletedDate": "Sun Oct 18 2026",
		"onboardingCompleted": true
	}`
	st, _, err := UpgradeRecord([]byte(raw), time.UTC)
	require.NoError(t, err)

	next, res := ToggleGoal(st, "run", monday)
	assert.True(t, res.DayCompleted)
	assert.Equal(t, 5, next.Streak)
	assert.Equal(t, "2026-10-19", next.LastCompletedDate)
}
