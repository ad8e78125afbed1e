package sqlite

import (
	"database/sql"
	"errors"

	"github.com/tuncdemir/rutin/internal/models"
)

func (s *Store) Records() ([]models.Record, error) {
	rows, err := s.db.Query(`
		SELECT habit_id, date, completed FROM records ORDER BY date, habit_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectRecords(rows)
}

func (s *Store) RecordsForDay(date string) ([]models.Record, error) {
	rows, err := s.db.Query(`
		SELECT habit_id, date, completed FROM records WHERE date = ? ORDER BY habit_id`, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectRecords(rows)
}

func collectRecords(rows *sql.Rows) ([]models.Record, error) {
	var records []models.Record
	for rows.Next() {
		var r models.Record
		if err := rows.Scan(&r.HabitID, &r.Date, &r.Completed); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func (s *Store) RecordFor(habitID, date string) (models.Record, bool, error) {
	row := s.db.QueryRow(`
		SELECT habit_id, date, completed FROM records WHERE habit_id = ? AND date = ?`,
		habitID, date)

	var r models.Record
	err := row.Scan(&r.HabitID, &r.Date, &r.Completed)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Record{}, false, nil
		}
		return models.Record{}, false, err
	}
	return r, true, nil
}

// ToggleRecord reads and flips inside one transaction so the check and the
// write are a single step.
func (s *Store) ToggleRecord(habitID, date string) (models.Record, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return models.Record{}, err
	}

	record := models.Record{HabitID: habitID, Date: date}

	var completed bool
	err = tx.QueryRow(`
		SELECT completed FROM records WHERE habit_id = ? AND date = ?`,
		habitID, date).Scan(&completed)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		record.Completed = true
		_, err = tx.Exec(`
			INSERT INTO records (habit_id, date, completed) VALUES (?, ?, 1)`,
			habitID, date)
	case err == nil:
		record.Completed = !completed
		_, err = tx.Exec(`
			UPDATE records SET completed = ? WHERE habit_id = ? AND date = ?`,
			record.Completed, habitID, date)
	}
	if err != nil {
		_ = tx.Rollback()
		return models.Record{}, err
	}

	if err := tx.Commit(); err != nil {
		return models.Record{}, err
	}
	return record, nil
}
