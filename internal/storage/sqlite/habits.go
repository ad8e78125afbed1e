package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tuncdemir/rutin/internal/models"
)

func scanHabit(row interface{ Scan(...any) error }) (models.Habit, error) {
	var h models.Habit
	var createdAt string

	err := row.Scan(&h.ID, &h.Name, &h.Type, &h.Frequency, &h.Emoji, &h.Color, &h.Penalty, &createdAt)
	if err != nil {
		return models.Habit{}, err
	}

	h.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.Habit{}, fmt.Errorf("failed to parse created_at for habit %s: %w", h.ID, err)
	}
	return h, nil
}

func (s *Store) Habits() ([]models.Habit, error) {
	rows, err := s.db.Query(`
		SELECT id, name, type, frequency, emoji, color, penalty, created_at
		FROM habits ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	habits := []models.Habit{}
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}
	return habits, rows.Err()
}

func (s *Store) Habit(id string) (models.Habit, error) {
	row := s.db.QueryRow(`
		SELECT id, name, type, frequency, emoji, color, penalty, created_at
		FROM habits WHERE id = ?`, id)

	h, err := scanHabit(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Habit{}, fmt.Errorf("habit not found: %s", id)
	}
	return h, err
}

func (s *Store) AddHabit(fields models.HabitFields) (models.Habit, error) {
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

	_, err := s.db.Exec(`
		INSERT INTO habits (id, name, type, frequency, emoji, color, penalty, created_at, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, (SELECT COALESCE(MAX(position), 0) + 1 FROM habits))`,
		habit.ID, habit.Name, string(habit.Type), string(habit.Frequency),
		habit.Emoji, habit.Color, habit.Penalty, habit.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return models.Habit{}, err
	}
	return habit, nil
}

func (s *Store) UpdateHabit(id string, patch models.HabitPatch) error {
	habit, err := s.Habit(id)
	if err != nil {
		// Unknown id: silent no-op
		return nil
	}

	patch.Apply(&habit)

	_, err = s.db.Exec(`
		UPDATE habits SET name = ?, type = ?, frequency = ?, emoji = ?, color = ?, penalty = ?
		WHERE id = ?`,
		habit.Name, string(habit.Type), string(habit.Frequency),
		habit.Emoji, habit.Color, habit.Penalty, id)
	return err
}

// DeleteHabit removes the habit and its records in one transaction so the
// cascade is atomic.
func (s *Store) DeleteHabit(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	if _, err := tx.Exec("DELETE FROM records WHERE habit_id = ?", id); err != nil {
		_ = tx.Rollback()
		return err
	}
	if _, err := tx.Exec("DELETE FROM habits WHERE id = ?", id); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}
