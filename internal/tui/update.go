package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	switch m.state {
	case StateAddHabit:
		return m.updateAddHabit(msg)
	case StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	}

	return m.updateGrid(msg)
}

func (m Model) updateGrid(msg tea.Msg) (tea.Model, tea.Cmd) {
	all := m.repo.Habits()

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(all)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Left):
			if m.dayCursor > 0 {
				m.dayCursor--
			}
		case key.Matches(msg, m.keys.Right):
			if m.dayCursor < len(m.days)-1 {
				m.dayCursor++
			}
		case key.Matches(msg, m.keys.Toggle):
			if m.cursor < len(all) {
				habit := all[m.cursor]
				day := m.days[m.dayCursor]
				if err := m.repo.ToggleCompletion(habit.ID, day); err != nil {
					m.statusMsg = "Save failed: " + err.Error()
				} else {
					m.statusMsg = ""
				}
			}
		case key.Matches(msg, m.keys.Add):
			m.habitForm = &HabitFormModel{Emoji: "✅", Color: "#22c55e"}
			m.form = newHabitForm(m.habitForm)
			m.state = StateAddHabit
			return m, m.form.Init()
		case key.Matches(msg, m.keys.Delete):
			if m.cursor < len(all) {
				m.habitToDeleteID = all[m.cursor].ID
				m.state = StateConfirmDelete
			}
		}
	}

	return m, nil
}

func (m Model) updateAddHabit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = StateGrid
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		if _, err := m.repo.AddHabit(m.habitForm.Name, m.habitForm.Emoji, m.habitForm.Color); err != nil {
			// Stay in form state on error to allow retry
			m.form.State = huh.StateNormal
			m.statusMsg = "Save failed: " + err.Error()
		} else {
			m.statusMsg = ""
			m.state = StateGrid
		}
	case huh.StateAborted:
		m.state = StateGrid
	}

	return m, tea.Batch(cmds...)
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "y", "Y":
			if err := m.repo.DeleteHabit(m.habitToDeleteID); err != nil {
				m.statusMsg = "Save failed: " + err.Error()
			}
			if n := len(m.repo.Habits()); m.cursor >= n && n > 0 {
				m.cursor = n - 1
			}
			m.habitToDeleteID = ""
			m.state = StateGrid
		case "n", "N", "esc", "q":
			m.habitToDeleteID = ""
			m.state = StateGrid
		}
	}

	return m, nil
}
