package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"levelingking/internal/engine"
	"levelingking/internal/ui"
)

type boardModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	state *engine.State
	today engine.TodayView
	now   time.Time

	showAll  bool
	selected int

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	state *engine.State
	today engine.TodayView
	now   time.Time
	err   error
}

type toggledMsg struct {
	state *engine.State
	res   *engine.ToggleResult
	err   error
}

func newBoardModel(ctx context.Context, svc *engine.Service) boardModel {
	return boardModel{
		ctx:     ctx,
		svc:     svc,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		st, today, err := m.svc.Today(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{state: st, today: today, now: m.svc.Now()}
	}
}

func (m boardModel) toggleCmd(id string) tea.Cmd {
	return func() tea.Msg {
		st, res, err := m.svc.ToggleGoal(m.ctx, id)
		return toggledMsg{state: st, res: res, err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.state = msg.state
		m.today = msg.today
		m.now = msg.now
		m.clampSelection()
		if m.lastLog == "" || m.lastLog == "Refreshing…" {
			m.lastLog = fmt.Sprintf("Refreshed at %s.", m.now.Format("15:04:05"))
		}
		return m, nil
	case toggledMsg:
		if msg.err != nil {
			m.lastLog = "Toggle failed: " + msg.err.Error()
			return m, nil
		}
		m.lastLog = toggleLog(msg.state, msg.res)
		return m, m.loadCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "a":
			m.showAll = !m.showAll
			m.clampSelection()
			return m, nil
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.goals())-1 {
				m.selected++
			}
			return m, nil
		case "c", " ", "enter":
			goals := m.goals()
			if m.selected < 0 || m.selected >= len(goals) {
				return m, nil
			}
			g := goals[m.selected]
			if !g.Completed && !engine.IsActiveOn(g, m.now.Weekday()) {
				m.lastLog = fmt.Sprintf("%s is not due today.", g.Title)
				return m, nil
			}
			m.lastLog = fmt.Sprintf("Toggling %s…", g.Title)
			return m, m.toggleCmd(g.ID)
		}
	}
	return m, nil
}

// goals returns the visible list: today's goals, or every goal in "all" mode.
func (m boardModel) goals() []engine.Goal {
	if m.showAll && m.state != nil {
		return m.state.Goals
	}
	return m.today.Goals
}

func (m *boardModel) clampSelection() {
	n := len(m.goals())
	if m.selected >= n {
		m.selected = n - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func toggleLog(st *engine.State, res *engine.ToggleResult) string {
	if res == nil || !res.Found {
		return "Goal not found."
	}
	title := res.GoalID
	if st != nil {
		if i := st.FindGoal(res.GoalID); i >= 0 {
			title = st.Goals[i].Title
		}
	}
	if !res.Completed {
		return fmt.Sprintf("Undid %s. Aura %d%%.", title, res.AuraLevel)
	}

	parts := []string{fmt.Sprintf("Done %s: +%d XP", title, res.XPGained)}
	for _, g := range res.AttributeGains {
		parts = append(parts, fmt.Sprintf("%s +%d", ui.AttributeLabel(g.Attribute), g.Delta))
	}
	if res.LevelUp {
		parts = append(parts, fmt.Sprintf("LEVEL UP %d → %d", res.LevelBefore, res.LevelAfter))
	}
	for _, a := range res.NewAchievements {
		parts = append(parts, "Achievement: "+a.Title)
	}
	if res.DayCompleted && res.StreakAfter != res.StreakBefore {
		parts = append(parts, fmt.Sprintf("Day complete! Streak %d", res.StreakAfter))
	}
	return strings.Join(parts, " | ")
}

func (m boardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}

	header := m.renderHeader()
	sidebar := m.renderSidebar()
	main := m.renderMain()
	footer := m.renderFooter()

	// Simple 2-column layout.
	leftW := 30
	if m.width > 0 {
		maxLeft := m.width / 2
		if maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 20 {
			leftW = 20
		}
	}

	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	rows := len(linesLeft)
	if len(linesRight) > rows {
		rows = len(linesRight)
	}

	var body strings.Builder
	for i := 0; i < rows; i++ {
		l := ""
		r := ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n" + body.String() + footer
}

func (m boardModel) renderHeader() string {
	if m.state == nil {
		return "Leveling King | loading…"
	}
	ch := m.state.Character
	name := string(ch.Class)
	if info, ok := engine.ClassInfoFor(ch.Class); ok {
		name = info.Name
	}
	bar := ui.Bar(ch.Experience, ch.ExperienceToNextLevel, 24)
	return fmt.Sprintf("Leveling King | %s the %s | Level %d | XP %d/%d %s | Power %d",
		m.state.Name, name, ch.Level, ch.Experience, ch.ExperienceToNextLevel, bar, ch.Power)
}

func (m boardModel) renderSidebar() string {
	if m.state == nil {
		return "Attributes\n\nLoading…"
	}
	lines := []string{"Attributes"}
	for _, a := range engine.AllAttributes() {
		v := m.state.Character.Attributes.Get(a)
		lines = append(lines, fmt.Sprintf("- %s %3d %s", ui.AttributeLabel(a), v, ui.Bar(v, engine.AttributeMax, 12)))
	}
	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("Streak: %d day(s)", m.state.Streak))
	if ms, ok := engine.StreakMilestone(m.state.Streak); ok {
		lines = append(lines, "  "+ms.Title)
	}
	lines = append(lines, fmt.Sprintf("Achievements: %d/%d", len(m.state.Character.Achievements), len(engine.AchievementCatalog())))
	lines = append(lines, "")
	lines = append(lines, "Keys")
	lines = append(lines, "- ↑/↓ or j/k: move")
	lines = append(lines, "- c/space: toggle")
	lines = append(lines, "- a: today/all")
	lines = append(lines, "- r: refresh")
	lines = append(lines, "- q: quit")
	return strings.Join(lines, "\n")
}

func (m boardModel) renderMain() string {
	if m.loading {
		return "Loading…"
	}
	var out []string
	out = append(out, fmt.Sprintf("Aura %d%% %s (%d/%d today)", m.today.AuraLevel, ui.Bar(m.today.AuraLevel, 100, 20), m.today.Completed, len(m.today.Goals)))
	if !m.now.IsZero() {
		out = append(out, engine.DailyMessage(m.now))
	}
	out = append(out, "")
	if m.showAll {
		out = append(out, "All goals")
	} else {
		out = append(out, "Today")
	}

	goals := m.goals()
	if len(goals) == 0 {
		out = append(out, "(no goals)")
		return strings.Join(out, "\n")
	}
	for i, g := range goals {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		mark := "[ ]"
		if g.Completed {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s%s %s (%s, %s)", cursor, mark, g.Title, g.Category, ui.FrequencyText(g))
		if m.showAll && !engine.IsActiveOn(g, m.now.Weekday()) {
			line += " not today"
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

func (m boardModel) renderFooter() string {
	return "\n" + m.lastLog
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
