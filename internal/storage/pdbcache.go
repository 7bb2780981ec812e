package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SeamusWaldron/cubesolve"
	"github.com/SeamusWaldron/cubesolve/internal/pdb"
)

// ErrNoCache indicates no pattern database has been cached yet.
var ErrNoCache = errors.New("storage: no pattern database cached")

// SavePDB writes the pattern database to the cache tables, replacing any
// previous cache.
func SavePDB(db *DB, database *pdb.Database) error {
	return db.Transaction(func(tx *sql.Tx) error {
		if _, err := tx.Exec("DELETE FROM pdb_entries"); err != nil {
			return fmt.Errorf("failed to clear cache: %w", err)
		}
		if _, err := tx.Exec("DELETE FROM pdb_meta"); err != nil {
			return fmt.Errorf("failed to clear cache meta: %w", err)
		}

		stmt, err := tx.Prepare("INSERT INTO pdb_entries (state_key, depth, path) VALUES (?, ?, ?)")
		if err != nil {
			return fmt.Errorf("failed to prepare insert: %w", err)
		}
		defer stmt.Close()

		var walkErr error
		database.Walk(func(key string, e pdb.Entry) {
			if walkErr != nil {
				return
			}
			if _, err := stmt.Exec(key, e.Depth, encodePath(e.Path)); err != nil {
				walkErr = fmt.Errorf("failed to insert entry: %w", err)
			}
		})
		if walkErr != nil {
			return walkErr
		}

		_, err = tx.Exec(
			"INSERT INTO pdb_meta (id, depth_limit, entry_count, built_at) VALUES (1, ?, ?, ?)",
			database.DepthLimit(), database.Len(), time.Now().UTC().Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("failed to write cache meta: %w", err)
		}
		return nil
	})
}

// LoadPDB reads the cached pattern database. It returns ErrNoCache when
// the cache is empty and a descriptive error when the cache does not
// match its metadata; callers fall back to rebuilding in either case.
func LoadPDB(db *DB) (*pdb.Database, error) {
	var depthLimit, entryCount int
	err := db.QueryRow("SELECT depth_limit, entry_count FROM pdb_meta WHERE id = 1").
		Scan(&depthLimit, &entryCount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoCache
	}
	if err != nil {
		return nil, fmt.Errorf("storage: pattern database cache unreadable: %w", err)
	}

	rows, err := db.Query("SELECT state_key, depth, path FROM pdb_entries")
	if err != nil {
		return nil, fmt.Errorf("storage: pattern database cache unreadable: %w", err)
	}
	defer rows.Close()

	entries := make(map[string]pdb.Entry, entryCount)
	for rows.Next() {
		var key, path string
		var depth int
		if err := rows.Scan(&key, &depth, &path); err != nil {
			return nil, fmt.Errorf("storage: pattern database cache unreadable: %w", err)
		}
		moves, err := decodePath(path)
		if err != nil {
			return nil, fmt.Errorf("storage: pattern database cache corrupt: %w", err)
		}
		if len(key) != 54 || depth < 0 || depth > depthLimit || len(moves) != depth {
			return nil, fmt.Errorf("storage: pattern database cache corrupt: entry %q", path)
		}
		entries[key] = pdb.Entry{Depth: depth, Path: moves}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: pattern database cache unreadable: %w", err)
	}
	if len(entries) != entryCount {
		return nil, fmt.Errorf("storage: pattern database cache corrupt: %d entries, meta says %d", len(entries), entryCount)
	}

	return pdb.FromEntries(depthLimit, entries), nil
}

// encodePath joins move tokens with '|' so token boundaries survive the
// round trip regardless of grouping.
func encodePath(path []cubesolve.Move) string {
	tokens := make([]string, len(path))
	for i, m := range path {
		tokens[i] = m.Notation()
	}
	return strings.Join(tokens, "|")
}

func decodePath(s string) ([]cubesolve.Move, error) {
	if s == "" {
		return nil, nil
	}
	tokens := strings.Split(s, "|")
	moves := make([]cubesolve.Move, len(tokens))
	for i, tok := range tokens {
		m, err := cubesolve.ParseMove(tok)
		if err != nil {
			return nil, err
		}
		moves[i] = m
	}
	return moves, nil
}
