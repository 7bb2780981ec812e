package pdb

import (
	"sync"
	"testing"

	"github.com/SeamusWaldron/cubesolve"
)

var (
	fullOnce sync.Once
	fullDB   *Database
)

// fullDatabase builds the depth-4 database once for the whole package.
func fullDatabase() *Database {
	fullOnce.Do(func() {
		fullDB = Build()
	})
	return fullDB
}

func TestSolvedStateEntry(t *testing.T) {
	db := fullDatabase()
	solved := cubesolve.NewCube()

	entry, ok := db.Lookup(solved)
	if !ok {
		t.Fatal("solved state must be in the database")
	}
	if entry.Depth != 0 || len(entry.Path) != 0 {
		t.Errorf("solved entry = depth %d, path %v", entry.Depth, entry.Path)
	}
}

func TestSingleMoveStates(t *testing.T) {
	db := fullDatabase()
	for _, m := range cubesolve.AllMoves {
		c := cubesolve.NewCube()
		c.ApplyMove(m)

		entry, ok := db.Lookup(c)
		if !ok {
			t.Fatalf("state after %v missing from database", m)
		}
		if entry.Depth != 1 {
			t.Errorf("state after %v has depth %d, want 1", m, entry.Depth)
		}
		if len(entry.Path) != 1 || entry.Path[0] != m {
			t.Errorf("state after %v has path %v", m, entry.Path)
		}
	}
}

func TestRoundTripWithinRadius(t *testing.T) {
	db := fullDatabase()

	scrambles := []string{"F", "FF", "RU", "RUF", "FFUD", "LLUU", "BDRU"}
	for _, s := range scrambles {
		moves, err := cubesolve.ParseMoves(s)
		if err != nil {
			t.Fatal(err)
		}
		c := cubesolve.NewCube()
		c.ApplyMoves(moves)

		entry, ok := db.Lookup(c)
		if !ok {
			t.Errorf("scramble %q: state missing from database", s)
			continue
		}
		if entry.Depth > DepthLimit {
			t.Errorf("scramble %q: depth %d exceeds limit", s, entry.Depth)
		}
		if len(entry.Path) != entry.Depth {
			t.Errorf("scramble %q: path length %d, depth %d", s, len(entry.Path), entry.Depth)
		}

		// Applying the inverted stored path must solve the state in
		// exactly Depth moves.
		c.ApplyMoves(cubesolve.InvertPath(entry.Path))
		if !c.IsSolved() {
			t.Errorf("scramble %q: inverted path does not solve", s)
		}
	}
}

func TestFirstDiscoveredPathIsShortest(t *testing.T) {
	db := fullDatabase()

	// FF then FF cancels; the state is solved and must keep depth 0.
	c := cubesolve.NewCube()
	c.ApplyMoves([]cubesolve.Move{{Face: cubesolve.FaceF, Turns: 2}, {Face: cubesolve.FaceF, Turns: 2}})
	if db.DepthOf(c) != 0 {
		t.Errorf("solved state reached a second way has depth %d", db.DepthOf(c))
	}

	// F B reaches the same state as B F; whichever order BFS found it,
	// the depth is the minimal 2.
	c = cubesolve.NewCube()
	c.ApplyMoves([]cubesolve.Move{{Face: cubesolve.FaceB, Turns: 1}, {Face: cubesolve.FaceF, Turns: 1}})
	if db.DepthOf(c) != 2 {
		t.Errorf("two-move state has depth %d, want 2", db.DepthOf(c))
	}
}

func TestBuildToDepthBounds(t *testing.T) {
	if got := BuildToDepth(0).Len(); got != 1 {
		t.Errorf("depth 0 database has %d states, want 1", got)
	}
	// Solved plus one state per move: F, FF and FFF are distinct grids.
	if got := BuildToDepth(1).Len(); got != 19 {
		t.Errorf("depth 1 database has %d states, want 19", got)
	}
}

func TestAccessorsOnMiss(t *testing.T) {
	db := BuildToDepth(0)

	c := cubesolve.NewCube()
	c.ApplyMove(cubesolve.Move{Face: cubesolve.FaceR, Turns: 1})
	if db.DepthOf(c) != -1 {
		t.Error("DepthOf should be -1 for an absent state")
	}
	if db.PathOf(c) != nil {
		t.Error("PathOf should be nil for an absent state")
	}
}
