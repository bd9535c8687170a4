package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	_ "modernc.org/sqlite"

	"svw.info/squaredaway/internal/domain"
)

// SQLite stores puzzles in a single-file database. Searchable columns
// are broken out; the full puzzle travels as a JSON payload.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens (or creates) the database and migrates the schema.
func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *SQLite) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS puzzles (
		id         TEXT PRIMARY KEY,
		name       TEXT,
		width      INTEGER NOT NULL,
		height     INTEGER NOT NULL,
		seed       INTEGER,
		created_at INTEGER NOT NULL,
		payload    TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_puzzles_created ON puzzles(created_at);
	CREATE INDEX IF NOT EXISTS idx_puzzles_size ON puzzles(width, height);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) Save(ctx context.Context, p *domain.Puzzle) error {
	if p == nil || p.ID == "" {
		return errors.New("invalid puzzle: missing ID")
	}
	payload, err := json.Marshal(p)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO puzzles (id, name, width, height, seed, created_at, payload)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			width = excluded.width,
			height = excluded.height,
			seed = excluded.seed,
			created_at = excluded.created_at,
			payload = excluded.payload`,
		p.ID, p.Name, p.Width, p.Height, p.Seed, p.CreatedAt, string(payload))
	if err != nil {
		return fmt.Errorf("save puzzle %s: %w", p.ID, err)
	}
	return nil
}

func (s *SQLite) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM puzzles WHERE id = ?`, id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, os.ErrNotExist
	}
	if err != nil {
		return nil, fmt.Errorf("load puzzle %s: %w", id, err)
	}
	var p domain.Puzzle
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		return nil, fmt.Errorf("decode puzzle %s: %w", id, err)
	}
	return &p, nil
}

func (s *SQLite) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, width, height, created_at
		FROM puzzles ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list puzzles: %w", err)
	}
	defer rows.Close()

	var out []domain.PuzzleMeta
	for rows.Next() {
		var m domain.PuzzleMeta
		var name sql.NullString
		if err := rows.Scan(&m.ID, &name, &m.Width, &m.Height, &m.CreatedAt); err != nil {
			return nil, err
		}
		m.Name = name.String
		out = append(out, m)
	}
	return out, rows.Err()
}
