package sqlite

import (
	"database/sql"
	"errors"

	"github.com/tuncdemir/rutin/internal/models"
)

func (s *Store) Notes() ([]models.DayNote, error) {
	rows, err := s.db.Query("SELECT date, text FROM notes ORDER BY date")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []models.DayNote
	for rows.Next() {
		var n models.DayNote
		if err := rows.Scan(&n.Date, &n.Text); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

func (s *Store) NoteFor(date string) (models.DayNote, bool, error) {
	var n models.DayNote
	err := s.db.QueryRow("SELECT date, text FROM notes WHERE date = ?", date).Scan(&n.Date, &n.Text)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.DayNote{}, false, nil
		}
		return models.DayNote{}, false, err
	}
	return n, true, nil
}

func (s *Store) SetNote(date, text string) error {
	_, err := s.db.Exec(`
		INSERT INTO notes (date, text) VALUES (?, ?)
		ON CONFLICT(date) DO UPDATE SET text = excluded.text`,
		date, text)
	return err
}
