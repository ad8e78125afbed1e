package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/tuncdemir/rutin/internal/backup"
	"github.com/tuncdemir/rutin/internal/constants"
	"github.com/tuncdemir/rutin/internal/logger"
	"github.com/tuncdemir/rutin/internal/models"
	"github.com/tuncdemir/rutin/internal/utils"
	"github.com/tuncdemir/rutin/internal/validation"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	switch m.state {
	case constants.StateAddHabit:
		return m.updateAddHabit(msg)
	case constants.StateEditNote:
		return m.updateEditNote(msg)
	case constants.StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	m.statusMsg = ""

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Tab):
		m.state = nextView(m.state)
		return m, nil
	case key.Matches(keyMsg, m.keys.ShiftTab):
		m.state = prevView(m.state)
		return m, nil
	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch m.state {
	case constants.StateToday:
		return m.updateToday(keyMsg)
	case constants.StateHabits:
		return m.updateHabits(keyMsg)
	case constants.StateCalendar:
		return m.updateCalendar(keyMsg)
	case constants.StateSettings:
		return m.updateSettings(keyMsg)
	}
	return m, nil
}

func nextView(s constants.SessionState) constants.SessionState {
	switch s {
	case constants.StateToday:
		return constants.StateHabits
	case constants.StateHabits:
		return constants.StateCalendar
	case constants.StateCalendar:
		return constants.StateSettings
	default:
		return constants.StateToday
	}
}

func prevView(s constants.SessionState) constants.SessionState {
	switch s {
	case constants.StateToday:
		return constants.StateSettings
	case constants.StateHabits:
		return constants.StateToday
	case constants.StateCalendar:
		return constants.StateHabits
	default:
		return constants.StateCalendar
	}
}

func (m Model) updateToday(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.habits)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Left):
		if prev, err := utils.PrevDay(m.day); err == nil {
			m.day = prev
		}
	case key.Matches(msg, m.keys.Right):
		if next, err := utils.NextDay(m.day); err == nil {
			m.day = next
		}
	case key.Matches(msg, m.keys.Toggle):
		habit, ok := m.selectedHabit()
		if !ok {
			return m, nil
		}
		if _, err := m.store.ToggleRecord(habit.ID, m.day); err != nil {
			m.setError(err)
			return m, nil
		}
		m.refresh()
	case key.Matches(msg, m.keys.Note):
		input := textinput.New()
		input.Placeholder = "How did the day go?"
		input.CharLimit = 500
		if note, ok := m.notes[m.day]; ok {
			input.SetValue(note.Text)
		}
		input.Focus()
		m.noteInput = input
		m.previousState = m.state
		m.state = constants.StateEditNote
		return m, textinput.Blink
	}
	return m, nil
}

func (m Model) updateHabits(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.habits)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Add):
		m.habitForm = &HabitFormModel{
			Type:      string(models.HabitBuild),
			Frequency: string(models.FrequencyDaily),
		}
		m.form = newHabitForm(m.habitForm)
		m.previousState = m.state
		m.state = constants.StateAddHabit
		return m, m.form.Init()
	case key.Matches(msg, m.keys.Delete):
		habit, ok := m.selectedHabit()
		if !ok {
			return m, nil
		}
		m.habitToDelete = habit.ID
		m.previousState = m.state
		m.state = constants.StateConfirmDelete
	}
	return m, nil
}

func (m Model) updateCalendar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Left):
		m.month = shiftMonth(m.month, -1)
	case key.Matches(msg, m.keys.Right):
		m.month = shiftMonth(m.month, 1)
	}
	return m, nil
}

func shiftMonth(month string, delta int) string {
	t, err := time.Parse(constants.MonthFormat, month)
	if err != nil {
		return month
	}
	return t.AddDate(0, delta, 0).Format(constants.MonthFormat)
}

func (m Model) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Theme) {
		next := models.ThemeDark
		if m.theme == models.ThemeDark {
			next = models.ThemeLight
		}
		if err := m.store.SetTheme(next); err != nil {
			m.setError(err)
			return m, nil
		}
		m.theme = next
		m.styles = newStyles(next)
	}
	return m, nil
}

func (m Model) updateAddHabit(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		fields := models.HabitFields{
			Name:      m.habitForm.Name,
			Type:      models.HabitType(m.habitForm.Type),
			Frequency: models.Frequency(m.habitForm.Frequency),
			Emoji:     m.habitForm.Emoji,
			Penalty:   m.habitForm.Penalty,
		}
		if fields.Emoji == "" {
			fields.Emoji = constants.DefaultEmoji
		}
		fields.Color = constants.PastelPalette[len(m.habits)%len(constants.PastelPalette)]
		if err := validation.ValidateHabitFields(fields); err != nil {
			m.setError(err)
		} else if _, err := m.store.AddHabit(fields); err != nil {
			m.setError(err)
		} else {
			m.setStatus("Habit added")
			m.refresh()
		}
		m.form = nil
		m.habitForm = nil
		m.state = m.previousState
		return m, nil
	case huh.StateAborted:
		m.form = nil
		m.habitForm = nil
		m.state = m.previousState
		return m, nil
	}

	return m, cmd
}

func (m Model) updateEditNote(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			if err := m.store.SetNote(m.day, m.noteInput.Value()); err != nil {
				m.setError(err)
			} else {
				m.setStatus("Note saved")
				m.refresh()
			}
			m.state = m.previousState
			return m, nil
		case "esc":
			m.state = m.previousState
			return m, nil
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.noteInput, cmd = m.noteInput.Update(msg)
	return m, cmd
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y", "Y":
		mgr := backup.NewManager(m.store.SnapshotPath())
		if _, err := mgr.Create(); err != nil {
			logger.Warn("Automatic backup failed", "error", err)
		}
		if err := m.store.DeleteHabit(m.habitToDelete); err != nil {
			m.setError(err)
		} else {
			m.setStatus("Habit deleted")
			m.refresh()
		}
		m.habitToDelete = ""
		m.state = m.previousState
	case "n", "N", "esc":
		m.habitToDelete = ""
		m.state = m.previousState
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func newHabitForm(data *HabitFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&data.Name).
				Validate(func(s string) error {
					return validation.ValidateHabitName(s)
				}),
			huh.NewSelect[string]().
				Title("Type").
				Options(
					huh.NewOption("Build", string(models.HabitBuild)),
					huh.NewOption("Break", string(models.HabitBreak)),
				).
				Value(&data.Type),
			huh.NewSelect[string]().
				Title("Frequency").
				Options(
					huh.NewOption("Daily", string(models.FrequencyDaily)),
					huh.NewOption("Weekly", string(models.FrequencyWeekly)),
					huh.NewOption("Weekdays", string(models.FrequencyWeekdays)),
					huh.NewOption("Weekends", string(models.FrequencyWeekends)),
				).
				Value(&data.Frequency),
			huh.NewInput().
				Title("Emoji").
				Placeholder(constants.DefaultEmoji).
				Value(&data.Emoji),
			huh.NewInput().
				Title("Penalty").
				Placeholder("Optional consequence").
				Value(&data.Penalty),
		),
	)
}
