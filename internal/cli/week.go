package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/habitgrid/internal/dateutil"
	"github.com/julianstephens/habitgrid/internal/models"
)

var (
	gridHeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	gridTodayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	gridDoneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	gridMissedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

type WeekCmd struct {
	Days int    `short:"n" help:"Number of days to show." default:"7"`
	End  string `help:"Last day of the grid (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *WeekCmd) Validate() error {
	if c.Days < 1 {
		return fmt.Errorf("days must be at least 1")
	}
	return nil
}

func (c *WeekCmd) Run(ctx *Context) error {
	if err := ctx.Repo.Load(); err != nil {
		return err
	}

	end, err := resolveDay(c.End)
	if err != nil {
		return err
	}

	days, err := dateutil.DayRangeFrom(end, c.Days)
	if err != nil {
		return err
	}

	all := ctx.Repo.Habits()
	if len(all) == 0 {
		fmt.Println("No habits found")
		return nil
	}

	fmt.Println(RenderGrid(days, all))
	return nil
}

// RenderGrid lays out one row per habit and one column per day, headed by
// weekday initial and day of month. Today's column is highlighted.
func RenderGrid(days []string, all []models.Habit) string {
	var b strings.Builder

	nameWidth := 12
	for _, h := range all {
		if len(h.Name) > nameWidth {
			nameWidth = len(h.Name)
		}
	}

	// Header
	b.WriteString(strings.Repeat(" ", nameWidth+4))
	for _, day := range days {
		label := dayLabel(day)
		if dateutil.IsToday(day) {
			b.WriteString(gridTodayStyle.Render(label))
		} else {
			b.WriteString(gridHeaderStyle.Render(label))
		}
		b.WriteString(" ")
	}
	b.WriteString("\n")

	for _, h := range all {
		fmt.Fprintf(&b, "%s %-*s ", h.Emoji, nameWidth, h.Name)
		for _, day := range days {
			if h.Completions[day] {
				b.WriteString(gridDoneStyle.Render("  ✓  "))
			} else {
				b.WriteString(gridMissedStyle.Render("  ·  "))
			}
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// dayLabel renders a day as "M 02": weekday initial plus day of month.
func dayLabel(day string) string {
	t, err := time.ParseInLocation(dateutil.DayFormat, day, time.Local)
	if err != nil {
		return "  ?  "
	}
	return fmt.Sprintf("%s %02d", t.Weekday().String()[:2], t.Day())
}
