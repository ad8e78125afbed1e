package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/tuncdemir/rutin/internal/models"
)

// snapshot is the serialized shape of the whole store: one blob holding
// every collection plus the theme. Records and notes are keyed maps so the
// one-per-key invariants hold structurally.
type snapshot struct {
	Version int                       `json:"version"`
	Habits  []models.Habit            `json:"habits"`
	Records map[string]models.Record  `json:"records"`
	Notes   map[string]models.DayNote `json:"notes"`
	Theme   models.Theme              `json:"theme"`
}

func newSnapshot() *snapshot {
	return &snapshot{
		Version: 1,
		Habits:  []models.Habit{},
		Records: make(map[string]models.Record),
		Notes:   make(map[string]models.DayNote),
		Theme:   models.DefaultTheme,
	}
}

func (s *snapshot) clone() *snapshot {
	c := &snapshot{
		Version: s.Version,
		Habits:  make([]models.Habit, len(s.Habits)),
		Records: make(map[string]models.Record, len(s.Records)),
		Notes:   make(map[string]models.DayNote, len(s.Notes)),
		Theme:   s.Theme,
	}
	copy(c.Habits, s.Habits)
	for k, v := range s.Records {
		c.Records[k] = v
	}
	for k, v := range s.Notes {
		c.Notes[k] = v
	}
	return c
}

// JSONStore persists the whole store as a single JSON file, rewritten on
// every mutation.
type JSONStore struct {
	path string
	snap *snapshot
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.snap = newSnapshot()
	return s.save()
}

// Load reads the last written snapshot. A missing file is not an error: the
// store starts with empty collections and the default theme, and the file is
// created on the first mutation.
func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.snap = newSnapshot()
			return nil
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.snap = &snapshot{}
	if err := json.Unmarshal(data, s.snap); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	// Absent fields on load default per the snapshot contract
	if s.snap.Habits == nil {
		s.snap.Habits = []models.Habit{}
	}
	if s.snap.Records == nil {
		s.snap.Records = make(map[string]models.Record)
	}
	if s.snap.Notes == nil {
		s.snap.Notes = make(map[string]models.DayNote)
	}
	if s.snap.Theme == "" {
		s.snap.Theme = models.DefaultTheme
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(s.snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

// mutate applies fn to the snapshot and persists the result. If the write
// fails the previous state is restored so memory and disk never diverge.
func (s *JSONStore) mutate(fn func(*snapshot)) error {
	if s.snap == nil {
		return fmt.Errorf("storage not loaded")
	}

	prev := s.snap.clone()
	fn(s.snap)
	if err := s.save(); err != nil {
		s.snap = prev
		return err
	}
	return nil
}

func (s *JSONStore) Habits() ([]models.Habit, error) {
	if s.snap == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	habits := make([]models.Habit, len(s.snap.Habits))
	copy(habits, s.snap.Habits)
	return habits, nil
}

func (s *JSONStore) Habit(id string) (models.Habit, error) {
	if s.snap == nil {
		return models.Habit{}, fmt.Errorf("storage not loaded")
	}

	for _, h := range s.snap.Habits {
		if h.ID == id {
			return h, nil
		}
	}
	return models.Habit{}, fmt.Errorf("habit not found: %s", id)
}

func (s *JSONStore) Records() ([]models.Record, error) {
	if s.snap == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	records := make([]models.Record, 0, len(s.snap.Records))
	for _, r := range s.snap.Records {
		records = append(records, r)
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].Date != records[j].Date {
			return records[i].Date < records[j].Date
		}
		return records[i].HabitID < records[j].HabitID
	})
	return records, nil
}

func (s *JSONStore) RecordFor(habitID, date string) (models.Record, bool, error) {
	if s.snap == nil {
		return models.Record{}, false, fmt.Errorf("storage not loaded")
	}

	r, ok := s.snap.Records[models.RecordKey(habitID, date)]
	return r, ok, nil
}

func (s *JSONStore) RecordsForDay(date string) ([]models.Record, error) {
	if s.snap == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	var records []models.Record
	for _, r := range s.snap.Records {
		if r.Date == date {
			records = append(records, r)
		}
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].HabitID < records[j].HabitID
	})
	return records, nil
}

func (s *JSONStore) Notes() ([]models.DayNote, error) {
	if s.snap == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	notes := make([]models.DayNote, 0, len(s.snap.Notes))
	for _, n := range s.snap.Notes {
		notes = append(notes, n)
	}
	sort.Slice(notes, func(i, j int) bool {
		return notes[i].Date < notes[j].Date
	})
	return notes, nil
}

func (s *JSONStore) NoteFor(date string) (models.DayNote, bool, error) {
	if s.snap == nil {
		return models.DayNote{}, false, fmt.Errorf("storage not loaded")
	}

	n, ok := s.snap.Notes[date]
	return n, ok, nil
}

func (s *JSONStore) Theme() (models.Theme, error) {
	if s.snap == nil {
		return "", fmt.Errorf("storage not loaded")
	}
	return s.snap.Theme, nil
}

func (s *JSONStore) AddHabit(fields models.HabitFields) (models.Habit, error) {
	habit := models.Habit{
		ID:        uuid.New().String(),
		Name:      fields.Name,
		Type:      fields.Type,
		Frequency: fields.Frequency,
		Emoji:     fields.Emoji,
		Color:     fields.Color,
		Penalty:   fields.Penalty,
		CreatedAt: time.Now(),
	}

	err := s.mutate(func(snap *snapshot) {
		snap.Habits = append(snap.Habits, habit)
	})
	if err != nil {
		return models.Habit{}, err
	}
	return habit, nil
}

func (s *JSONStore) UpdateHabit(id string, patch models.HabitPatch) error {
	if s.snap == nil {
		return fmt.Errorf("storage not loaded")
	}

	idx := -1
	for i, h := range s.snap.Habits {
		if h.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		// Unknown id: silent no-op
		return nil
	}

	return s.mutate(func(snap *snapshot) {
		patch.Apply(&snap.Habits[idx])
	})
}

func (s *JSONStore) DeleteHabit(id string) error {
	if s.snap == nil {
		return fmt.Errorf("storage not loaded")
	}

	found := false
	for _, h := range s.snap.Habits {
		if h.ID == id {
			found = true
			break
		}
	}
	if !found {
		return nil
	}

	return s.mutate(func(snap *snapshot) {
		habits := snap.Habits[:0]
		for _, h := range snap.Habits {
			if h.ID != id {
				habits = append(habits, h)
			}
		}
		snap.Habits = habits

		// Cascade: no orphaned records
		for key, r := range snap.Records {
			if r.HabitID == id {
				delete(snap.Records, key)
			}
		}
	})
}

func (s *JSONStore) ToggleRecord(habitID, date string) (models.Record, error) {
	if s.snap == nil {
		return models.Record{}, fmt.Errorf("storage not loaded")
	}

	key := models.RecordKey(habitID, date)
	record, ok := s.snap.Records[key]
	if ok {
		record.Completed = !record.Completed
	} else {
		record = models.Record{HabitID: habitID, Date: date, Completed: true}
	}

	err := s.mutate(func(snap *snapshot) {
		snap.Records[key] = record
	})
	if err != nil {
		return models.Record{}, err
	}
	return record, nil
}

func (s *JSONStore) SetNote(date, text string) error {
	return s.mutate(func(snap *snapshot) {
		snap.Notes[date] = models.DayNote{Date: date, Text: text}
	})
}

func (s *JSONStore) SetTheme(theme models.Theme) error {
	return s.mutate(func(snap *snapshot) {
		snap.Theme = theme
	})
}

func (s *JSONStore) SnapshotPath() string {
	return s.path
}
