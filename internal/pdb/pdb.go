// Package pdb implements the solver's pattern database: a precomputed
// table of every cube state within a bounded number of moves from solved,
// keyed by canonical grid encoding.
package pdb

import (
	"github.com/SeamusWaldron/cubesolve"
)

// DepthLimit is the BFS radius of the full database. Depth 4 keeps the
// build bounded while still catching the tail end of most searches.
const DepthLimit = 4

// Entry records how a state was first reached from the solved cube.
// Because the 18-move generator set is closed under inversion, Depth is
// also the minimum number of moves from the state back to solved.
type Entry struct {
	Depth int
	Path  []cubesolve.Move // moves from solved to this state
}

// Database is an immutable mapping from canonical state key to Entry.
// Build it once (or load it from cache) and share it read-only.
type Database struct {
	entries    map[string]Entry
	depthLimit int
}

type buildNode struct {
	cube  *cubesolve.Cube
	depth int
	path  []cubesolve.Move
}

// Build constructs the database by breadth-first search from the solved
// state out to DepthLimit.
func Build() *Database {
	return BuildToDepth(DepthLimit)
}

// BuildToDepth constructs a database with a custom BFS radius. BFS order
// guarantees the first path recorded for a state is shortest; once a key
// is inserted it is never overwritten.
func BuildToDepth(limit int) *Database {
	solved := cubesolve.NewCube()
	entries := map[string]Entry{
		solved.Key(): {Depth: 0, Path: nil},
	}

	queue := []buildNode{{cube: solved, depth: 0, path: nil}}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current.depth >= limit {
			continue
		}

		for _, move := range cubesolve.AllMoves {
			if cubesolve.IsRedundant(current.path, move) {
				continue
			}

			next := current.cube.Clone()
			next.ApplyMove(move)

			key := next.Key()
			if _, seen := entries[key]; seen {
				continue
			}

			path := make([]cubesolve.Move, len(current.path)+1)
			copy(path, current.path)
			path[len(current.path)] = move

			entries[key] = Entry{Depth: current.depth + 1, Path: path}
			queue = append(queue, buildNode{cube: next, depth: current.depth + 1, path: path})
		}
	}

	return &Database{entries: entries, depthLimit: limit}
}

// FromEntries wraps an already-built entry map, typically one loaded from
// the cache.
func FromEntries(depthLimit int, entries map[string]Entry) *Database {
	return &Database{entries: entries, depthLimit: depthLimit}
}

// Lookup returns the entry for a cube state, if present.
func (d *Database) Lookup(c *cubesolve.Cube) (Entry, bool) {
	e, ok := d.entries[c.Key()]
	return e, ok
}

// DepthOf returns the recorded distance from solved, or -1 if the state
// is not in the database.
func (d *Database) DepthOf(c *cubesolve.Cube) int {
	if e, ok := d.Lookup(c); ok {
		return e.Depth
	}
	return -1
}

// PathOf returns the recorded move path from solved, or nil if the state
// is not in the database.
func (d *Database) PathOf(c *cubesolve.Cube) []cubesolve.Move {
	if e, ok := d.Lookup(c); ok {
		return e.Path
	}
	return nil
}

// Len returns the number of states in the database.
func (d *Database) Len() int {
	return len(d.entries)
}

// DepthLimit returns the BFS radius this database was built with.
func (d *Database) DepthLimit() int {
	return d.depthLimit
}

// Walk calls fn for every entry. Iteration order is unspecified.
func (d *Database) Walk(fn func(key string, e Entry)) {
	for k, e := range d.entries {
		fn(k, e)
	}
}
