package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Solve is one recorded solver run.
type Solve struct {
	SolveID    string
	CreatedAt  time.Time
	InputPath  string
	OutputPath *string
	Solution   string
	MoveCount  int
	Iterations int
	DurationMs int64
}

// ErrSolveNotFound indicates an unknown solve ID.
var ErrSolveNotFound = errors.New("storage: solve not found")

// SolveRepository provides CRUD operations for solve records.
type SolveRepository struct {
	db *DB
}

// NewSolveRepository creates a new solve repository.
func NewSolveRepository(db *DB) *SolveRepository {
	return &SolveRepository{db: db}
}

// Create records a solve and returns its ID.
func (r *SolveRepository) Create(inputPath, outputPath, solution string, moveCount, iterations int, duration time.Duration) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	var outputPtr *string
	if outputPath != "" {
		outputPtr = &outputPath
	}

	_, err := r.db.Exec(`
		INSERT INTO solves (solve_id, created_at, input_path, output_path, solution, move_count, iterations, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, id, createdAt.Format(time.RFC3339Nano), inputPath, outputPtr, solution, moveCount, iterations, duration.Milliseconds())
	if err != nil {
		return "", fmt.Errorf("failed to create solve record: %w", err)
	}

	return id, nil
}

// List returns the most recent solves, newest first.
func (r *SolveRepository) List(limit int) ([]Solve, error) {
	rows, err := r.db.Query(`
		SELECT solve_id, created_at, input_path, output_path, solution, move_count, iterations, duration_ms
		FROM solves
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list solves: %w", err)
	}
	defer rows.Close()

	var solves []Solve
	for rows.Next() {
		s, err := scanSolve(rows)
		if err != nil {
			return nil, err
		}
		solves = append(solves, s)
	}
	return solves, rows.Err()
}

// Get returns a single solve by ID. A unique ID prefix is accepted.
func (r *SolveRepository) Get(id string) (Solve, error) {
	row := r.db.QueryRow(`
		SELECT solve_id, created_at, input_path, output_path, solution, move_count, iterations, duration_ms
		FROM solves
		WHERE solve_id LIKE ? || '%'
		ORDER BY solve_id
		LIMIT 1
	`, id)

	s, err := scanSolve(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Solve{}, ErrSolveNotFound
	}
	return s, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSolve(row rowScanner) (Solve, error) {
	var s Solve
	var createdAt string
	err := row.Scan(&s.SolveID, &createdAt, &s.InputPath, &s.OutputPath, &s.Solution, &s.MoveCount, &s.Iterations, &s.DurationMs)
	if err != nil {
		return Solve{}, err
	}
	s.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return Solve{}, fmt.Errorf("failed to parse solve timestamp: %w", err)
	}
	return s, nil
}
