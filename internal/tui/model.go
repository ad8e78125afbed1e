package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/tuncdemir/rutin/internal/constants"
	"github.com/tuncdemir/rutin/internal/models"
	"github.com/tuncdemir/rutin/internal/storage"
	"github.com/tuncdemir/rutin/internal/utils"
)

// HabitFormModel backs the add-habit form.
type HabitFormModel struct {
	Name      string
	Type      string
	Frequency string
	Emoji     string
	Penalty   string
}

type Model struct {
	store         storage.Store
	state         constants.SessionState
	previousState constants.SessionState
	keys          KeyMap
	help          help.Model
	styles        Styles

	habits  []models.Habit
	records []models.Record
	notes   map[string]models.DayNote
	theme   models.Theme

	day      string // selected day on the today view
	month    string // selected month on the calendar view
	cursor   int    // selected habit index
	quitting bool
	width    int
	height   int

	form          *huh.Form
	habitForm     *HabitFormModel
	noteInput     textinput.Model
	habitToDelete string
	statusMsg     string
	statusIsError bool
}

func NewModel(store storage.Store) Model {
	m := Model{
		store: store,
		state: constants.StateToday,
		keys:  DefaultKeyMap(),
		help:  help.New(),
		day:   utils.Today(),
		month: utils.MonthOf(utils.Today()),
		notes: map[string]models.DayNote{},
	}
	m.refresh()
	m.styles = newStyles(m.theme)
	return m
}

// refresh reloads the cached state from the store.
func (m *Model) refresh() {
	habits, err := m.store.Habits()
	if err != nil {
		m.setError(err)
		return
	}
	records, err := m.store.Records()
	if err != nil {
		m.setError(err)
		return
	}
	notes, err := m.store.Notes()
	if err != nil {
		m.setError(err)
		return
	}
	theme, err := m.store.Theme()
	if err != nil {
		m.setError(err)
		return
	}

	m.habits = habits
	m.records = records
	m.notes = make(map[string]models.DayNote, len(notes))
	for _, n := range notes {
		m.notes[n.Date] = n
	}
	m.theme = theme
	if m.cursor >= len(m.habits) {
		m.cursor = len(m.habits) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) setError(err error) {
	m.statusMsg = fmt.Sprintf("Error: %v", err)
	m.statusIsError = true
}

func (m *Model) setStatus(msg string) {
	m.statusMsg = msg
	m.statusIsError = false
}

func (m Model) selectedHabit() (models.Habit, bool) {
	if len(m.habits) == 0 || m.cursor >= len(m.habits) {
		return models.Habit{}, false
	}
	return m.habits[m.cursor], true
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit}
	switch m.state {
	case constants.StateToday:
		keys = append(keys, m.keys.Toggle, m.keys.Left, m.keys.Right, m.keys.Note)
	case constants.StateHabits:
		keys = append(keys, m.keys.Add, m.keys.Delete)
	case constants.StateCalendar:
		keys = append(keys, m.keys.Left, m.keys.Right)
	case constants.StateSettings:
		keys = append(keys, m.keys.Theme)
	}
	keys = append(keys, m.keys.Help)
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Left, m.keys.Right}

	var actions []key.Binding
	switch m.state {
	case constants.StateToday:
		actions = []key.Binding{m.keys.Toggle, m.keys.Note}
	case constants.StateHabits:
		actions = []key.Binding{m.keys.Add, m.keys.Delete}
	case constants.StateSettings:
		actions = []key.Binding{m.keys.Theme}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Run starts the interactive session on the given store.
func Run(store storage.Store) error {
	p := tea.NewProgram(NewModel(store), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run tui: %w", err)
	}
	return nil
}
