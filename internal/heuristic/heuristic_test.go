package heuristic

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/SeamusWaldron/cubesolve"
	"github.com/SeamusWaldron/cubesolve/internal/pdb"
)

func scrambled(t *testing.T, s string) *cubesolve.Cube {
	t.Helper()
	moves, err := cubesolve.ParseMoves(s)
	if err != nil {
		t.Fatal(err)
	}
	c := cubesolve.NewCube()
	c.ApplyMoves(moves)
	return c
}

func TestEstimateSolvedIsZero(t *testing.T) {
	est := New(pdb.BuildToDepth(1))
	if got := est.Estimate(cubesolve.NewCube()); got != 0 {
		t.Errorf("estimate(solved) = %d, want 0", got)
	}
}

func TestEstimateUsesExactDatabaseDepth(t *testing.T) {
	est := New(pdb.BuildToDepth(2))

	if got := est.Estimate(scrambled(t, "F")); got != 1 {
		t.Errorf("estimate one move from solved = %d, want 1", got)
	}
	if got := est.Estimate(scrambled(t, "RU")); got != 2 {
		t.Errorf("estimate two moves from solved = %d, want 2", got)
	}
}

func TestEstimateNonNegative(t *testing.T) {
	db := pdb.BuildToDepth(1)
	estimators := map[string]*Estimator{
		"composite": New(db),
		"simple":    New(db, WithSimpleDistance(true)),
	}

	rng := rand.New(rand.NewSource(7))
	for name, est := range estimators {
		for i := 0; i < 50; i++ {
			c := cubesolve.NewCube()
			for j := 0; j < 10+rng.Intn(10); j++ {
				c.ApplyMove(cubesolve.AllMoves[rng.Intn(len(cubesolve.AllMoves))])
			}
			if got := est.Estimate(c); got < 0 {
				t.Fatalf("%s estimate = %d on scramble %d, want >= 0", name, got, i)
			}
		}
	}
}

func TestPatternTierOnNearSolvedGrid(t *testing.T) {
	// Two swapped stickers keep color counts legal and give the pattern
	// tier its smallest non-zero score.
	text := cubesolve.NewCube().String()
	text = strings.Replace(text, "OOO", "WOO", 1)       // (0,3) O -> W
	text = strings.Replace(text, "GGGWWW", "GGGOWW", 1) // (3,3) W -> O
	c, err := cubesolve.Parse(text)
	if err != nil {
		t.Fatal(err)
	}
	if got := Composite(c); got != 1 {
		t.Errorf("Composite with two mismatched stickers = %d, want 1", got)
	}
}

func TestCompositeSingleTurn(t *testing.T) {
	// One F turn disturbs four corners and four edges; the composite
	// deliberately overestimates the single remaining move.
	if got := Composite(scrambled(t, "F")); got != 4 {
		t.Errorf("Composite one turn from solved = %d, want 4", got)
	}
}

func TestSimpleDistanceSingleTurn(t *testing.T) {
	est := New(pdb.BuildToDepth(0), WithSimpleDistance(true))
	if got := est.Estimate(scrambled(t, "F")); got != 4 {
		t.Errorf("simple estimate one turn from solved = %d, want 4", got)
	}
}
