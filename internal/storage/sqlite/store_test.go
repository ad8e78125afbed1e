package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/tuncdemir/rutin/internal/models"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore(filepath.Join(t.TempDir(), "rutin.db"))
	if err := store.Load(); err != nil {
		t.Fatalf("failed to load test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func addTestHabit(t *testing.T, store *Store, name string) models.Habit {
	t.Helper()
	habit, err := store.AddHabit(models.HabitFields{
		Name:      name,
		Type:      models.HabitBuild,
		Frequency: models.FrequencyDaily,
		Emoji:     "💧",
		Color:     "#BAE1FF",
	})
	if err != nil {
		t.Fatalf("failed to add habit: %v", err)
	}
	return habit
}

func TestFreshDatabaseDefaults(t *testing.T) {
	store := setupTestStore(t)

	habits, err := store.Habits()
	if err != nil {
		t.Fatalf("Habits() returned error: %v", err)
	}
	if len(habits) != 0 {
		t.Errorf("fresh store has %d habits, want 0", len(habits))
	}

	theme, err := store.Theme()
	if err != nil {
		t.Fatalf("Theme() returned error: %v", err)
	}
	if theme != models.ThemeDark {
		t.Errorf("fresh store theme = %q, want dark", theme)
	}
}

func TestHabitRoundTrip(t *testing.T) {
	store := setupTestStore(t)
	habit := addTestHabit(t, store, "Su İçmek")

	got, err := store.Habit(habit.ID)
	if err != nil {
		t.Fatalf("Habit() returned error: %v", err)
	}
	if got.Name != habit.Name || got.Type != habit.Type || got.Emoji != habit.Emoji {
		t.Errorf("habit fields changed across round trip: %+v", got)
	}
	// RFC3339 storage keeps second precision
	if got.CreatedAt.Unix() != habit.CreatedAt.Unix() {
		t.Errorf("created_at changed across round trip: %v != %v", got.CreatedAt, habit.CreatedAt)
	}
}

func TestHabitsOrderedByInsertion(t *testing.T) {
	store := setupTestStore(t)
	a := addTestHabit(t, store, "Su İçmek")
	b := addTestHabit(t, store, "Spor")
	c := addTestHabit(t, store, "Okumak")

	habits, err := store.Habits()
	if err != nil {
		t.Fatalf("Habits() returned error: %v", err)
	}
	if len(habits) != 3 {
		t.Fatalf("got %d habits, want 3", len(habits))
	}
	for i, want := range []string{a.ID, b.ID, c.ID} {
		if habits[i].ID != want {
			t.Errorf("habits[%d].ID = %q, want %q", i, habits[i].ID, want)
		}
	}
}

func TestUpdateHabitPatch(t *testing.T) {
	store := setupTestStore(t)
	habit := addTestHabit(t, store, "Spor")

	name := "Koşu"
	freq := models.FrequencyWeekdays
	if err := store.UpdateHabit(habit.ID, models.HabitPatch{Name: &name, Frequency: &freq}); err != nil {
		t.Fatalf("UpdateHabit returned error: %v", err)
	}

	got, _ := store.Habit(habit.ID)
	if got.Name != "Koşu" || got.Frequency != models.FrequencyWeekdays {
		t.Errorf("patch not applied: %+v", got)
	}
	if got.Color != habit.Color {
		t.Error("patch touched unpatched fields")
	}

	// Unknown id is a silent no-op
	if err := store.UpdateHabit("no-such-id", models.HabitPatch{Name: &name}); err != nil {
		t.Errorf("UpdateHabit on unknown id returned error: %v", err)
	}
}

func TestToggleRecordSequence(t *testing.T) {
	store := setupTestStore(t)
	habit := addTestHabit(t, store, "Su İçmek")
	day := "2024-05-01"

	r, err := store.ToggleRecord(habit.ID, day)
	if err != nil {
		t.Fatalf("ToggleRecord returned error: %v", err)
	}
	if !r.Completed {
		t.Error("first toggle did not create a completed record")
	}

	r, _ = store.ToggleRecord(habit.ID, day)
	if r.Completed {
		t.Error("second toggle did not flip to incomplete")
	}
	if _, ok, _ := store.RecordFor(habit.ID, day); !ok {
		t.Error("second toggle deleted the record")
	}

	r, _ = store.ToggleRecord(habit.ID, day)
	if !r.Completed {
		t.Error("third toggle did not flip back to completed")
	}

	records, _ := store.Records()
	if len(records) != 1 {
		t.Errorf("got %d records for one (habit, day) pair, want 1", len(records))
	}
}

func TestDeleteHabitCascades(t *testing.T) {
	store := setupTestStore(t)
	a := addTestHabit(t, store, "Su İçmek")
	b := addTestHabit(t, store, "Spor")

	store.ToggleRecord(a.ID, "2024-05-01")
	store.ToggleRecord(a.ID, "2024-05-02")
	store.ToggleRecord(b.ID, "2024-05-01")

	if err := store.DeleteHabit(a.ID); err != nil {
		t.Fatalf("DeleteHabit returned error: %v", err)
	}

	if _, err := store.Habit(a.ID); err == nil {
		t.Error("deleted habit still queryable")
	}

	records, _ := store.Records()
	for _, r := range records {
		if r.HabitID == a.ID {
			t.Errorf("orphaned record after cascade: %+v", r)
		}
	}
	if len(records) != 1 {
		t.Errorf("got %d records after cascade, want 1", len(records))
	}
}

func TestNotesUpsert(t *testing.T) {
	store := setupTestStore(t)
	day := "2024-05-01"

	if err := store.SetNote(day, "good day"); err != nil {
		t.Fatalf("SetNote returned error: %v", err)
	}
	if err := store.SetNote(day, "rough day"); err != nil {
		t.Fatalf("SetNote returned error: %v", err)
	}

	note, ok, err := store.NoteFor(day)
	if err != nil || !ok {
		t.Fatalf("NoteFor failed: ok=%v err=%v", ok, err)
	}
	if note.Text != "rough day" {
		t.Errorf("note text = %q, want %q", note.Text, "rough day")
	}

	// Empty text keeps the note row
	if err := store.SetNote(day, ""); err != nil {
		t.Fatalf("SetNote returned error: %v", err)
	}
	note, ok, _ = store.NoteFor(day)
	if !ok || note.Text != "" {
		t.Errorf("empty note not kept: ok=%v text=%q", ok, note.Text)
	}

	notes, _ := store.Notes()
	if len(notes) != 1 {
		t.Errorf("got %d notes for one day, want 1", len(notes))
	}
}

func TestThemePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rutin.db")

	store := NewStore(path)
	if err := store.Load(); err != nil {
		t.Fatalf("failed to load store: %v", err)
	}
	if err := store.SetTheme(models.ThemeLight); err != nil {
		t.Fatalf("SetTheme returned error: %v", err)
	}
	store.Close()

	reloaded := NewStore(path)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("failed to reload store: %v", err)
	}
	defer reloaded.Close()

	theme, err := reloaded.Theme()
	if err != nil {
		t.Fatalf("Theme() returned error: %v", err)
	}
	if theme != models.ThemeLight {
		t.Errorf("theme = %q, want light", theme)
	}
}
