package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/habitgrid/internal/dateutil"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateAddHabit:
		content = m.form.View()
	case StateConfirmDelete:
		content = m.viewConfirmDelete()
	default:
		content = m.viewGrid()
	}

	sections := []string{
		titleStyle.Render("habitgrid"),
		content,
	}
	if m.statusMsg != "" {
		sections = append(sections, dangerStyle.Render(m.statusMsg))
	}
	sections = append(sections, m.help.View(m.keys))

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) viewGrid() string {
	all := m.repo.Habits()
	if len(all) == 0 {
		return "No habits yet. Press 'a' to add one."
	}

	allStats := m.repo.AllStats()

	nameWidth := 12
	for _, h := range all {
		if len(h.Name) > nameWidth {
			nameWidth = len(h.Name)
		}
	}

	var b strings.Builder

	// Day header
	b.WriteString(strings.Repeat(" ", nameWidth+5))
	for di, day := range m.days {
		label := m.dayLabel(day)
		switch {
		case di == m.dayCursor:
			b.WriteString(cursorStyle.Render(label))
		case dateutil.IsToday(day):
			b.WriteString(todayStyle.Render(label))
		default:
			b.WriteString(headerStyle.Render(label))
		}
		b.WriteString(" ")
	}
	b.WriteString("\n\n")

	for hi, h := range all {
		name := fmt.Sprintf("%s %-*s ", h.Emoji, nameWidth, h.Name)
		if hi == m.cursor {
			b.WriteString(selectedStyle.Render(name))
		} else {
			b.WriteString(name)
		}

		for di, day := range m.days {
			var cell string
			if h.Completions[day] {
				cell = doneStyle.Render("  ✓ ")
			} else {
				cell = missedStyle.Render("  · ")
			}
			if hi == m.cursor && di == m.dayCursor {
				cell = cursorStyle.Render(cell)
			}
			b.WriteString(cell)
			b.WriteString(" ")
		}

		s := allStats[h.ID]
		b.WriteString(statsStyle.Render(fmt.Sprintf("  streak %d · best %d · %.0f%%",
			s.CurrentStreak, s.LongestStreak, s.CompletionRate)))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewConfirmDelete() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		dangerStyle.Render("Are you sure you want to delete this habit?"),
		"",
		"[y] Yes",
		"[n] No",
	)
}

func (m Model) dayLabel(day string) string {
	t, err := time.ParseInLocation(dateutil.DayFormat, day, time.Local)
	if err != nil {
		return "  ? "
	}
	return fmt.Sprintf("%s %02d", t.Weekday().String()[:1], t.Day())
}
