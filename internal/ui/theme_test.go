package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"levelingking/internal/engine"
)

func TestBar(t *testing.T) {
	assert.Equal(t, "[----------]", Bar(0, 100, 10))
	assert.Equal(t, "[#####-----]", Bar(50, 100, 10))
	assert.Equal(t, "[##########]", Bar(150, 100, 10))
	assert.Equal(t, "[---]", Bar(-5, 0, 1))
}

func TestAttributeLabels(t *testing.T) {
	seen := map[string]bool{}
	for _, a := range engine.AllAttributes() {
		l := AttributeLabel(a)
		assert.Len(t, l, 3)
		assert.False(t, seen[l], "duplicate label %s", l)
		seen[l] = true
		assert.NotEqual(t, "•", AttributeIcon(a))
	}
}

func TestCategoryIcons(t *testing.T) {
	for _, c := range engine.Categories() {
		assert.NotEqual(t, "•", CategoryIcon(c), c)
	}
}

func TestFrequencyText(t *testing.T) {
	g := engine.Goal{Frequency: engine.FrequencySpecificDays, SpecificDays: []int{1, 3, 5}}
	assert.Equal(t, "mon,wed,fri", FrequencyText(g))
	assert.Equal(t, "daily", FrequencyText(engine.Goal{Frequency: engine.FrequencyDaily}))
}
