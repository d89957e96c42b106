package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-supaplex/internal/core"
)

// ResultEntry is one stored level attempt.
type ResultEntry struct {
	ID        int64
	LevelID   string
	LevelName string
	Status    string
	Ticks     uint64
	RedDisks  int
	CreatedAt time.Time
}

const resultColumns = `id, level_id, level_name, status, ticks, red_disks, created_at`

// SaveResult records how a level attempt ended.
func (s *Store) SaveResult(r core.LevelResult) (int64, error) {
	id, err := s.insert(
		`INSERT INTO level_results (level_id, level_name, status, ticks, red_disks)
		 VALUES (?, ?, ?, ?, ?)`,
		r.LevelID, r.LevelName, r.Status, int64(r.Ticks), r.RedDisks,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}
	return id, nil
}

// LevelResults returns the most recent attempts, newest first. An empty
// levelID returns attempts on every level.
func (s *Store) LevelResults(levelID string, limit int) ([]ResultEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT ` + resultColumns + ` FROM level_results`
	args := []any{}
	if levelID != "" {
		query += ` WHERE level_id = ?`
		args = append(args, levelID)
	}
	query += ` ORDER BY id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.Query(s.rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var entries []ResultEntry
	for rows.Next() {
		e, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// BestResult returns the fastest finished attempt on a level, or nil if
// the level was never finished.
func (s *Store) BestResult(levelID string) (*ResultEntry, error) {
	row := s.db.QueryRow(s.rebind(
		`SELECT `+resultColumns+`
		 FROM level_results
		 WHERE level_id = ? AND status = 'finished'
		 ORDER BY ticks ASC, id ASC
		 LIMIT 1`),
		levelID,
	)

	e, err := scanResult(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// CompletedLevels returns the IDs of every level finished at least once,
// sorted.
func (s *Store) CompletedLevels() ([]string, error) {
	rows, err := s.db.Query(
		`SELECT DISTINCT level_id FROM level_results WHERE status = 'finished' ORDER BY level_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query completed levels: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return ids, nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanResult(row scanner) (ResultEntry, error) {
	var e ResultEntry
	var ticks int64
	var createdAt any
	err := row.Scan(&e.ID, &e.LevelID, &e.LevelName, &e.Status, &ticks, &e.RedDisks, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return e, err
	}
	if err != nil {
		return e, fmt.Errorf("storage: cannot scan result: %w", err)
	}
	e.Ticks = uint64(ticks)
	e.CreatedAt = parseTime(createdAt)
	return e, nil
}

// ClearResults deletes the recorded attempts on a level, or on every level
// when levelID is empty.
func (s *Store) ClearResults(levelID string) error {
	var err error
	if levelID == "" {
		_, err = s.db.Exec("DELETE FROM level_results")
	} else {
		_, err = s.db.Exec(s.rebind("DELETE FROM level_results WHERE level_id = ?"), levelID)
	}
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}
