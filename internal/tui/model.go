package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/habitgrid/internal/dateutil"
	"github.com/julianstephens/habitgrid/internal/habits"
)

type SessionState int

const (
	StateGrid SessionState = iota
	StateAddHabit
	StateConfirmDelete
)

// gridDays is the width of the rolling completion grid.
const gridDays = 7

type HabitFormModel struct {
	Name  string
	Emoji string
	Color string
}

type Model struct {
	repo            *habits.Repository
	state           SessionState
	keys            KeyMap
	help            help.Model
	days            []string
	cursor          int
	dayCursor       int
	form            *huh.Form
	habitForm       *HabitFormModel
	habitToDeleteID string
	statusMsg       string
	quitting        bool
	width           int
	height          int
}

func NewModel(repo *habits.Repository) Model {
	return Model{
		repo:      repo,
		state:     StateGrid,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		days:      dateutil.DayRange(gridDays),
		dayCursor: gridDays - 1, // start on today
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func newHabitForm(fm *HabitFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit Name").
				Value(&fm.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("habit name cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Emoji").
				Value(&fm.Emoji),
			huh.NewInput().
				Title("Color").
				Value(&fm.Color),
		),
	).WithTheme(huh.ThemeDracula())
}
