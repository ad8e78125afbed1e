package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/tuncdemir/rutin/internal/constants"
	"github.com/tuncdemir/rutin/internal/models"
	"github.com/tuncdemir/rutin/internal/stats"
	"github.com/tuncdemir/rutin/internal/utils"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case constants.StateToday:
		content = m.viewToday()
	case constants.StateHabits:
		content = m.viewHabits()
	case constants.StateCalendar:
		content = m.viewCalendar()
	case constants.StateSettings:
		content = m.viewSettings()
	case constants.StateAddHabit:
		content = m.form.View()
	case constants.StateEditNote:
		content = m.viewEditNote()
	case constants.StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	var status string
	if m.statusMsg != "" {
		if m.statusIsError {
			status = m.styles.Danger.Render(m.statusMsg)
		} else {
			status = m.styles.Muted.Render(m.statusMsg)
		}
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		m.styles.Doc.Render(content),
		status,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	tabTitles := []string{"Today", "Habits", "Calendar", "Settings"}
	for i, title := range tabTitles {
		if m.state == constants.SessionState(i) {
			tabs = append(tabs, m.styles.ActiveTab.Render(title))
		} else {
			tabs = append(tabs, m.styles.InactiveTab.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewToday() string {
	var b strings.Builder

	heading := m.day
	if m.day == utils.Today() {
		heading += " (today)"
	}
	b.WriteString(m.styles.Title.Render(heading))
	b.WriteString("\n\n")

	if len(m.habits) == 0 {
		b.WriteString(m.styles.Muted.Render("No habits yet. Press 'a' on the Habits tab to add one."))
		return b.String()
	}

	done := make(map[string]bool)
	for _, r := range m.records {
		if r.Date == m.day {
			done[r.HabitID] = r.Completed
		}
	}

	weekday, _ := utils.Weekday(m.day)
	for i, habit := range m.habits {
		box := "[ ]"
		if done[habit.ID] {
			box = "[x]"
		}
		streak := stats.Streak(habit, m.records, m.day)
		line := fmt.Sprintf("%s %s %s", box, habit.Emoji, habit.Name)
		if streak > 0 {
			line += fmt.Sprintf("  🔥%d", streak)
		}
		if !habit.Frequency.AppliesTo(weekday) {
			line = m.styles.Muted.Render(line + "  (not due)")
		} else if done[habit.ID] {
			line = m.styles.Done.Render(line)
		}
		if i == m.cursor {
			line = m.styles.Selected.Render("› ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	percent := m.dayPercent(m.day)
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %d%%\n", renderProgress(percent, 24), percent))

	if note, ok := m.notes[m.day]; ok && note.Text != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Note.Render("✎ " + note.Text))
	}

	return b.String()
}

func (m Model) dayPercent(day string) int {
	var dayRecords []models.Record
	for _, r := range m.records {
		if r.Date == day {
			dayRecords = append(dayRecords, r)
		}
	}
	return stats.DayCompletion(len(m.habits), dayRecords, day)
}

func renderProgress(percent, width int) string {
	filled := percent * width / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func (m Model) viewHabits() string {
	if len(m.habits) == 0 {
		return m.styles.Muted.Render("No habits yet. Press 'a' to add one.")
	}

	var b strings.Builder
	today := utils.Today()
	for i, habit := range m.habits {
		streak := stats.Streak(habit, m.records, today)
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(habit.Color)).Render("●")
		line := fmt.Sprintf("%s %s %s  %s/%s  🔥%d", swatch, habit.Emoji, habit.Name, habit.Type, habit.Frequency, streak)
		if habit.Penalty != "" {
			line += m.styles.Muted.Render("  penalty: " + habit.Penalty)
		}
		if i == m.cursor {
			line = m.styles.Selected.Render("› ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewCalendar() string {
	first, err := time.Parse(constants.MonthFormat, m.month)
	if err != nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(first.Format("January 2006")))
	b.WriteString("\n\n Mo  Tu  We  Th  Fr  Sa  Su\n")

	offset := (int(first.Weekday()) + 6) % 7
	b.WriteString(strings.Repeat("    ", offset))

	days, _ := utils.DaysInMonth(m.month)
	today := utils.Today()
	col := offset
	for _, day := range days {
		percent := m.dayPercent(day)
		cell := fmt.Sprintf("%3s", strings.TrimPrefix(day[len(day)-2:], "0"))
		if note, ok := m.notes[day]; ok && note.Text != "" {
			cell += "•"
		} else {
			cell += " "
		}

		switch {
		case day == today:
			cell = m.styles.Selected.Render(cell)
		case percent >= 100:
			cell = m.styles.Done.Render(cell)
		case percent == 0:
			cell = m.styles.Muted.Render(cell)
		}
		b.WriteString(cell)

		col++
		if col%7 == 0 {
			b.WriteString("\n")
		}
	}
	if col%7 != 0 {
		b.WriteString("\n")
	}

	summary := stats.MonthCompletion(len(m.habits), m.records, m.month, today)
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Month completion: %d%%", summary))

	return b.String()
}

func (m Model) viewSettings() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Settings"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Theme:    %s  %s\n", m.theme, m.styles.Muted.Render("(t to toggle)")))
	b.WriteString(fmt.Sprintf("Store:    %s\n", m.store.SnapshotPath()))
	b.WriteString(fmt.Sprintf("Version:  %s\n", constants.Version))
	return b.String()
}

func (m Model) viewEditNote() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.styles.Title.Render("Note for "+m.day),
		"",
		m.noteInput.View(),
		"",
		m.styles.Muted.Render("enter to save, esc to cancel"),
	)
}

func (m Model) viewConfirmDelete() string {
	name := m.habitToDelete
	for _, h := range m.habits {
		if h.ID == m.habitToDelete {
			name = h.Name
			break
		}
	}
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			m.styles.Danger.Render(fmt.Sprintf("Delete habit %q and all its records?", name)),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
