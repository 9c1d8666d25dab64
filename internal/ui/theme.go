package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"levelingking/internal/engine"
)

// Leveling King theme (CLI + TUI).

const (
	IconCrown   = "👑"
	IconSparkle = "✨"
	IconPlus    = "➕"
	IconDone    = "✅"
	IconTodo    = "⬜"
	IconTrophy  = "🏆"
	IconBolt    = "⚡"
	IconFire    = "🔥"
	IconInfo    = "ℹ️"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconUndo    = "↩️"
	IconLock    = "🔒"
	IconTrash   = "🗑️"
	IconSwap    = "🔄"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
	cPurple  = lipgloss.Color("135")
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)

	BadgeLevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// RarityStyle colors achievement names by rarity.
func RarityStyle(r engine.Rarity) lipgloss.Style {
	switch r {
	case engine.RarityLegendary:
		return Gold
	case engine.RarityEpic:
		return lipgloss.NewStyle().Bold(true).Foreground(cPurple)
	case engine.RarityRare:
		return H2
	default:
		return lipgloss.NewStyle().Bold(true)
	}
}

// ClassStyle uses the class table color.
func ClassStyle(c engine.Class) lipgloss.Style {
	info, ok := engine.ClassInfoFor(c)
	if !ok || info.Color == "" {
		return Title
	}
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(info.Color))
}

func ClassName(c engine.Class) string {
	info, ok := engine.ClassInfoFor(c)
	if !ok {
		return string(c)
	}
	return ClassStyle(c).Render(info.Name)
}

func PathStyle(p engine.Path) lipgloss.Style {
	switch p {
	case engine.PathDiscipline:
		return Bad
	case engine.PathFocus:
		return H2
	case engine.PathSerenity:
		return Good
	default:
		return Muted
	}
}

func AttributeIcon(a engine.Attribute) string {
	switch a {
	case engine.AttributeStrength:
		return "💪"
	case engine.AttributeIntelligence:
		return "🧠"
	case engine.AttributeAgility:
		return "🏃"
	case engine.AttributeEndurance:
		return "🛡️"
	case engine.AttributeWisdom:
		return "🦉"
	case engine.AttributeCharisma:
		return "🎭"
	default:
		return "•"
	}
}

// AttributeLabel is the three-letter short form, e.g. STR.
func AttributeLabel(a engine.Attribute) string {
	s := strings.ToUpper(string(a))
	if len(s) > 3 {
		s = s[:3]
	}
	return s
}

func CategoryIcon(c engine.Category) string {
	switch c {
	case engine.CategoryExercise:
		return "🏋️"
	case engine.CategoryHealth:
		return "🍎"
	case engine.CategoryProductivity:
		return "📈"
	case engine.CategoryStudy:
		return "📚"
	case engine.CategoryWellbeing:
		return "🧘"
	default:
		return "•"
	}
}

// CheckIcon renders a goal's completion mark.
func CheckIcon(done bool) string {
	if done {
		return IconDone
	}
	return IconTodo
}

// Bar renders value/total as a fixed-width text bar.
func Bar(value int, total int, width int) string {
	if total <= 0 {
		total = 1
	}
	if width <= 3 {
		width = 3
	}
	if value < 0 {
		value = 0
	}
	if value > total {
		value = total
	}
	filled := value * width / total
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

// AuraText colors the aura percentage.
func AuraText(aura int) string {
	s := fmt.Sprintf("%d%%", aura)
	switch {
	case aura >= 100:
		return Gold.Render(s)
	case aura >= 50:
		return Good.Render(s)
	case aura > 0:
		return Warn.Render(s)
	default:
		return Muted.Render(s)
	}
}

// FrequencyText describes when a goal is due.
func FrequencyText(g engine.Goal) string {
	if g.Frequency != engine.FrequencySpecificDays {
		return string(g.Frequency)
	}
	names := make([]string, 0, len(g.SpecificDays))
	for _, d := range g.SpecificDays {
		if d >= 0 && d <= 6 {
			names = append(names, weekdayShort[d])
		}
	}
	return strings.Join(names, ",")
}

var weekdayShort = [7]string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}
