// Package search implements the solver's best-first search over cube
// states, ranked by f = g + h with a pattern-database early exit.
package search

import (
	"container/heap"
	"errors"
	"fmt"

	"github.com/SeamusWaldron/cubesolve"
	"github.com/SeamusWaldron/cubesolve/internal/heuristic"
	"github.com/SeamusWaldron/cubesolve/internal/pdb"
)

// Sentinel errors for terminal non-success outcomes.
var (
	ErrBudgetExceeded = errors.New("search: iteration budget exceeded")
	ErrNoSolution     = errors.New("search: frontier exhausted without a solution")
)

// DefaultBudget is the hard cap on search-loop iterations.
const DefaultBudget = 7000

// Status is a progress snapshot handed to the Progress callback.
type Status struct {
	Iterations int
	Frontier   int
	Path       []cubesolve.Move
	G, H, F    int
}

// Driver runs the search. DB and Estimator are treated as read-only
// shared state; everything else is owned by the running search.
type Driver struct {
	DB        *pdb.Database
	Estimator *heuristic.Estimator

	// Budget caps loop iterations; zero means DefaultBudget.
	Budget int

	// Progress, if set, is called every 100 iterations.
	Progress func(Status)
}

// Result is a successful search outcome.
type Result struct {
	Moves      []cubesolve.Move
	Iterations int
}

// Solution returns the flat separator-free move string.
func (r *Result) Solution() string {
	return cubesolve.FormatMoves(r.Moves)
}

// New creates a Driver with the default budget.
func New(db *pdb.Database, est *heuristic.Estimator) *Driver {
	return &Driver{DB: db, Estimator: est, Budget: DefaultBudget}
}

// node is a frontier entry. seq is the insertion sequence number used to
// break f ties first-in first-out, keeping results reproducible.
type node struct {
	cube *cubesolve.Cube
	path []cubesolve.Move
	g    int
	h    int
	seq  int
}

func (n *node) f() int { return n.g + n.h }

type frontier []*node

func (f frontier) Len() int { return len(f) }
func (f frontier) Less(i, j int) bool {
	if f[i].f() != f[j].f() {
		return f[i].f() < f[j].f()
	}
	return f[i].seq < f[j].seq
}
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }
func (f *frontier) Push(x any)   { *f = append(*f, x.(*node)) }
func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]
	return item
}

// Solve searches for a move sequence taking start to the solved state.
// It terminates on an exact solved state, on a pattern-database hit
// (splicing in the inverted stored path), on budget exhaustion or on an
// empty frontier. The frontier tolerates stale duplicate entries; they
// are detected against the closed set and skipped at pop time.
func (d *Driver) Solve(start *cubesolve.Cube) (*Result, error) {
	budget := d.Budget
	if budget <= 0 {
		budget = DefaultBudget
	}

	closed := make(map[string]int)
	open := &frontier{}
	heap.Init(open)

	seq := 0
	push := func(c *cubesolve.Cube, path []cubesolve.Move, g int) {
		heap.Push(open, &node{
			cube: c,
			path: path,
			g:    g,
			h:    d.Estimator.Estimate(c),
			seq:  seq,
		})
		seq++
	}

	closed[start.Key()] = 0
	push(start, nil, 0)

	iterations := 0
	for open.Len() > 0 {
		iterations++
		if iterations > budget {
			return nil, fmt.Errorf("%w after %d iterations", ErrBudgetExceeded, iterations-1)
		}

		current := heap.Pop(open).(*node)
		key := current.cube.Key()

		// Lazy deletion: a cheaper route to this state was expanded since
		// this entry was queued.
		if best, seen := closed[key]; seen && best < current.g {
			continue
		}

		if d.Progress != nil && iterations%100 == 0 {
			d.Progress(Status{
				Iterations: iterations,
				Frontier:   open.Len(),
				Path:       current.path,
				G:          current.g,
				H:          current.h,
				F:          current.f(),
			})
		}

		// The database stores the path from solved to this state; the
		// remaining solution is that path inverted.
		if entry, ok := d.DB.Lookup(current.cube); ok {
			moves := append(append([]cubesolve.Move{}, current.path...), cubesolve.InvertPath(entry.Path)...)
			return &Result{Moves: moves, Iterations: iterations}, nil
		}

		if current.cube.IsSolved() {
			return &Result{Moves: current.path, Iterations: iterations}, nil
		}

		closed[key] = current.g

		for _, move := range cubesolve.AllMoves {
			if cubesolve.IsRedundant(current.path, move) {
				continue
			}

			next := current.cube.Clone()
			next.ApplyMove(move)

			nextKey := next.Key()
			nextG := current.g + 1
			if best, seen := closed[nextKey]; seen && best <= nextG {
				continue
			}
			closed[nextKey] = nextG

			path := make([]cubesolve.Move, len(current.path)+1)
			copy(path, current.path)
			path[len(current.path)] = move
			push(next, path, nextG)
		}
	}

	return nil, fmt.Errorf("%w after %d iterations", ErrNoSolution, iterations)
}
