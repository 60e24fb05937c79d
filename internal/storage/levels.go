package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/iceslide/internal/games/iceslide/puzzle"
)

// ErrLevelNotFound is returned when no saved level has the requested name.
var ErrLevelNotFound = errors.New("storage: level not found")

// SavedLevel is a board layout kept in the level library.
type SavedLevel struct {
	ID         int64
	Name       string
	Difficulty string
	MinMoves   int
	Layout     puzzle.Layout
	CreatedAt  time.Time
}

// SaveLevel stores a layout under name, replacing any level with the same
// name. The layout is validated first so the library only holds playable
// boards.
func (s *Store) SaveLevel(name, difficulty string, layout puzzle.Layout) (int64, error) {
	if name == "" {
		return 0, fmt.Errorf("storage: level name is empty")
	}
	if err := layout.Validate(); err != nil {
		return 0, fmt.Errorf("storage: refusing to save level %q: %w", name, err)
	}

	data, err := json.Marshal(layout)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot encode level: %w", err)
	}

	result, err := s.db.Exec(
		`INSERT INTO levels (name, difficulty, rows, cols, min_moves, layout)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET
			difficulty = excluded.difficulty,
			rows = excluded.rows,
			cols = excluded.cols,
			min_moves = excluded.min_moves,
			layout = excluded.layout,
			created_at = CURRENT_TIMESTAMP`,
		name, difficulty, layout.Rows, layout.Cols, len(layout.Solution), string(data),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save level: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// GetLevel loads a saved level by name.
func (s *Store) GetLevel(name string) (*SavedLevel, error) {
	row := s.db.QueryRow(
		`SELECT id, name, difficulty, min_moves, layout, created_at
		 FROM levels WHERE name = ?`,
		name,
	)
	lvl, err := scanLevel(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %q", ErrLevelNotFound, name)
	}
	if err != nil {
		return nil, err
	}
	return lvl, nil
}

// ListLevels returns saved levels, optionally filtered by difficulty,
// oldest first.
func (s *Store) ListLevels(difficulty string) ([]SavedLevel, error) {
	query := `SELECT id, name, difficulty, min_moves, layout, created_at FROM levels`
	var args []any
	if difficulty != "" {
		query += ` WHERE difficulty = ?`
		args = append(args, difficulty)
	}
	query += ` ORDER BY id ASC`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query levels: %w", err)
	}
	defer rows.Close()

	var levels []SavedLevel
	for rows.Next() {
		lvl, err := scanLevel(rows)
		if err != nil {
			return nil, err
		}
		levels = append(levels, *lvl)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return levels, nil
}

// DeleteLevel removes a saved level.
func (s *Store) DeleteLevel(name string) error {
	result, err := s.db.Exec("DELETE FROM levels WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("storage: cannot delete level: %w", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %q", ErrLevelNotFound, name)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLevel(r rowScanner) (*SavedLevel, error) {
	var lvl SavedLevel
	var data string
	var createdAt any
	if err := r.Scan(&lvl.ID, &lvl.Name, &lvl.Difficulty, &lvl.MinMoves, &data, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("storage: cannot scan level: %w", err)
	}
	if err := json.Unmarshal([]byte(data), &lvl.Layout); err != nil {
		return nil, fmt.Errorf("storage: level %q has a corrupt layout: %w", lvl.Name, err)
	}
	lvl.CreatedAt = parseTime(createdAt)
	return &lvl, nil
}
