package cubesolve

import (
	"errors"
	"strings"
	"testing"
)

const solvedKey = "OOOOOOOOO" +
	"GGGWWWBBBYYY" + "GGGWWWBBBYYY" + "GGGWWWBBBYYY" +
	"RRRRRRRRR"

func TestNewCubeIsSolved(t *testing.T) {
	c := NewCube()
	if !c.IsSolved() {
		t.Error("new cube should be solved")
	}
	if got := c.Key(); got != solvedKey {
		t.Errorf("solved key = %q, want %q", got, solvedKey)
	}
}

func TestSingleMoveBreaksSolved(t *testing.T) {
	c := NewCube()
	c.ApplyMove(Move{FaceR, 1})
	if c.IsSolved() {
		t.Error("cube should not be solved after R")
	}
}

func TestMoveFourTimesIsIdentity(t *testing.T) {
	scramble := []Move{{FaceR, 1}, {FaceU, 2}, {FaceF, 3}}
	for _, m := range AllMoves {
		c := NewCube()
		c.ApplyMoves(scramble)
		before := c.Key()
		for i := 0; i < 4; i++ {
			c.ApplyMove(m)
		}
		if c.Key() != before {
			t.Errorf("%v applied four times should be the identity", m)
		}
	}
}

func TestMoveThenInverseIsIdentity(t *testing.T) {
	for _, m := range AllMoves {
		c := NewCube()
		c.ApplyMove(m)
		c.ApplyMove(m.Inverse())
		if !c.IsSolved() {
			t.Errorf("%v then %v should return to solved", m, m.Inverse())
		}
	}
}

func TestSexyMoveSixTimesReturnsToSolved(t *testing.T) {
	// (R U R' U') x 6 = identity
	c := NewCube()
	for i := 0; i < 6; i++ {
		c.ApplyMoves([]Move{{FaceR, 1}, {FaceU, 1}, {FaceR, 3}, {FaceU, 3}})
	}
	if !c.IsSolved() {
		t.Error("sexy move x 6 should return to solved")
		t.Log(c.String())
	}
}

func TestGroupedVsCharacterReplay(t *testing.T) {
	const flat = "FFURRRDDBLLLUU"

	grouped, err := ParseMoves(flat)
	if err != nil {
		t.Fatal(err)
	}
	a := NewCube()
	a.ApplyMoves(grouped)

	b := NewCube()
	for i := 0; i < len(flat); i++ {
		b.ApplyMove(Move{Face: Face(flat[i]), Turns: 1})
	}

	if a.Key() != b.Key() {
		t.Error("grouped and per-character replay should reach the same grid")
	}
}

func TestCloneIndependence(t *testing.T) {
	c := NewCube()
	before := c.Key()

	clone := c.Clone()
	clone.ApplyMove(Move{FaceU, 1})

	if c.Key() != before {
		t.Error("mutating a clone must not touch the original")
	}
	if clone.Key() == before {
		t.Error("clone should have changed")
	}
}

func TestKeyEquality(t *testing.T) {
	moves := []Move{{FaceL, 1}, {FaceD, 2}, {FaceB, 3}}

	a := NewCube()
	a.ApplyMoves(moves)
	b := NewCube()
	b.ApplyMoves(moves)
	if a.Key() != b.Key() {
		t.Error("equal grids must have equal keys")
	}

	b.ApplyMove(Move{FaceF, 1})
	if a.Key() == b.Key() {
		t.Error("unequal grids must have unequal keys")
	}
}

func TestParseRoundTrip(t *testing.T) {
	c := NewCube()
	c.ApplyMoves([]Move{{FaceF, 1}, {FaceR, 2}, {FaceU, 3}})

	parsed, err := Parse(c.String())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if parsed.Key() != c.Key() {
		t.Error("Parse(String()) should reproduce the grid")
	}
}

func TestParseErrors(t *testing.T) {
	solved := NewCube().String()

	tests := []struct {
		name string
		text string
	}{
		{"too few lines", "OOO\nOOO\n"},
		{"short row", strings.Replace(solved, "OOO", "OO", 1)},
		{"unknown color", strings.Replace(solved, "O", "Q", 1)},
		{"unbalanced colors", strings.Replace(solved, "W", "Y", 1)},
	}
	for _, tt := range tests {
		if _, err := Parse(tt.text); !errors.Is(err, ErrInvalidFormat) {
			t.Errorf("%s: expected ErrInvalidFormat, got %v", tt.name, err)
		}
	}
}

func TestIsSolvedRequiresDistinctFaceColors(t *testing.T) {
	// Uniform faces are not enough; all six colors must differ.
	c := &Cube{}
	for r := 0; r < GridRows; r++ {
		for col := 0; col < GridCols; col++ {
			if _, ok := SolvedColorAt(r, col); ok {
				c.grid[r][col] = ColorWhite
			}
		}
	}
	if c.IsSolved() {
		t.Error("an all-white grid must not count as solved")
	}
}

func TestFaceWindowsOnNet(t *testing.T) {
	for face, window := range faceWindows {
		seen := make(map[cell]bool)
		for i, pos := range window {
			if _, ok := SolvedColorAt(pos.row, pos.col); !ok {
				t.Errorf("face %v cell %d (%d,%d) is off the net", face, i, pos.row, pos.col)
			}
			if seen[pos] {
				t.Errorf("face %v cell (%d,%d) listed twice", face, pos.row, pos.col)
			}
			seen[pos] = true
		}
	}
}
