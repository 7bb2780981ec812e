// Package heuristic estimates how many moves a cube state is from solved.
//
// The estimate is exact for states found in the pattern database and a
// composite of handcrafted corner, edge and sticker-pattern metrics
// otherwise. The composite deliberately trades admissibility for search
// speed: its correction terms can overestimate, so the surrounding search
// is best-effort rather than move-optimal.
package heuristic

import (
	"github.com/SeamusWaldron/cubesolve"
	"github.com/SeamusWaldron/cubesolve/internal/pdb"
)

// Estimator scores cube states for the search's f = g + h ranking.
// It holds a read-only pattern database and is safe to reuse across
// searches.
type Estimator struct {
	db     *pdb.Database
	simple bool
}

// Option configures an Estimator.
type Option func(*Estimator)

// WithSimpleDistance switches the fallback metric to the cheaper flat
// corner/edge distance instead of the full composite.
func WithSimpleDistance(enabled bool) Option {
	return func(e *Estimator) {
		e.simple = enabled
	}
}

// New creates an Estimator backed by db.
func New(db *pdb.Database, opts ...Option) *Estimator {
	e := &Estimator{db: db}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Estimate returns a non-negative estimate of the moves left to solve c.
// Solved states score 0 and pattern-database hits score their exact
// recorded depth; everything else goes through the fallback metric.
func (e *Estimator) Estimate(c *cubesolve.Cube) int {
	if c.IsSolved() {
		return 0
	}
	if depth := e.db.DepthOf(c); depth >= 0 {
		return depth
	}
	if e.simple {
		return simpleDistance(c)
	}
	return Composite(c)
}

// Composite is the full fallback metric: a fast sticker-pattern tier
// first, then the corner/edge cubie evaluation with a correction term
// when both layers are badly disrupted at once.
func Composite(c *cubesolve.Cube) int {
	if c.IsSolved() {
		return 0
	}

	if score := patternScore(c); score >= 0 {
		return score
	}

	hCorners := cornerDistance(c)
	hEdges := edgeDistance(c)

	estimate := max(hCorners, hEdges)
	low := min(hCorners, hEdges)
	switch {
	case hCorners >= 8 && hEdges >= 8:
		estimate += low / 3
	case hCorners >= 5 && hEdges >= 5:
		estimate += low / 4
	}
	return estimate
}

// patternScore is the fast tier: count stickers that differ from the
// solved layout. Small counts map straight to small scores; if the top
// layer is already correct, remaining work is guessed from bottom-layer
// mismatches. Returns -1 when the tier has nothing useful to say.
func patternScore(c *cubesolve.Cube) int {
	mismatches := 0
	for r := 0; r < cubesolve.GridRows; r++ {
		for col := 0; col < cubesolve.GridCols; col++ {
			expected, ok := cubesolve.SolvedColorAt(r, col)
			if !ok {
				continue
			}
			if c.At(r, col) != expected {
				mismatches++
			}
		}
	}

	switch {
	case mismatches == 0:
		return 0
	case mismatches <= 3:
		return 1
	case mismatches <= 6:
		return 2
	case mismatches <= 9:
		return 3
	}

	topSolved := true
	for r := 0; r <= 2 && topSolved; r++ {
		for col := 3; col <= 5; col++ {
			if c.At(r, col) != cubesolve.ColorOrange {
				topSolved = false
				break
			}
		}
	}
	if topSolved {
		bottomErrors := 0
		for r := 6; r <= 8; r++ {
			for col := 3; col <= 5; col++ {
				if c.At(r, col) != cubesolve.ColorRed {
					bottomErrors++
				}
			}
		}
		return max(1, bottomErrors/3)
	}

	return -1
}
