package cubesolve

import (
	"fmt"
	"strings"
)

// Face identifies one of the six physical faces of the cube.
// This is distinct from Color: a face letter names a side, a color letter
// names a sticker.
type Face byte

const (
	FaceF Face = 'F' // Front
	FaceB Face = 'B' // Back
	FaceL Face = 'L' // Left
	FaceR Face = 'R' // Right
	FaceU Face = 'U' // Up
	FaceD Face = 'D' // Down
)

// Opposite returns the face on the other side of the cube.
func (f Face) Opposite() Face {
	switch f {
	case FaceF:
		return FaceB
	case FaceB:
		return FaceF
	case FaceL:
		return FaceR
	case FaceR:
		return FaceL
	case FaceU:
		return FaceD
	case FaceD:
		return FaceU
	default:
		return f
	}
}

// Valid reports whether f is one of the six face letters.
func (f Face) Valid() bool {
	switch f {
	case FaceF, FaceB, FaceL, FaceR, FaceU, FaceD:
		return true
	}
	return false
}

func (f Face) String() string {
	return string(f)
}

// Move is a clockwise turn of one face. Turns is the number of quarter
// turns, 1 to 3; three clockwise quarter turns equal one counter-clockwise
// turn, so the move set is closed under inversion.
type Move struct {
	Face  Face
	Turns int
}

// Notation returns the repeated-letter token for this move.
// Examples: F, FF, FFF.
func (m Move) Notation() string {
	return strings.Repeat(string(m.Face), m.Turns)
}

// Inverse returns the move that undoes this one.
// A quarter turn inverts to three quarter turns and vice versa; a half
// turn is its own inverse.
func (m Move) Inverse() Move {
	if m.Turns == 2 {
		return m
	}
	return Move{Face: m.Face, Turns: 4 - m.Turns}
}

// String returns the notation token (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// ParseMove parses a single repeated-letter token such as "F", "FF" or
// "FFF". All characters must be the same valid face letter.
func ParseMove(s string) (Move, error) {
	if len(s) < 1 || len(s) > 3 {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}
	face := Face(s[0])
	if !face.Valid() {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
		}
	}
	return Move{Face: face, Turns: len(s)}, nil
}

// ParseMoves parses a flat string of face letters, the same format the
// solver writes. Runs of the same letter are grouped into tokens of at
// most three quarter turns; replaying the grouped moves is exactly
// equivalent to replaying the string one character at a time.
func ParseMoves(s string) ([]Move, error) {
	var moves []Move
	for i := 0; i < len(s); {
		face := Face(s[i])
		if !face.Valid() {
			return nil, fmt.Errorf("%w: %q at position %d", ErrInvalidNotation, s[i], i)
		}
		run := 0
		for i < len(s) && Face(s[i]) == face && run < 3 {
			run++
			i++
		}
		moves = append(moves, Move{Face: face, Turns: run})
	}
	return moves, nil
}

// FormatMoves renders a move sequence as a flat separator-free string.
func FormatMoves(moves []Move) string {
	var b strings.Builder
	for _, m := range moves {
		b.WriteString(m.Notation())
	}
	return b.String()
}

// InvertPath returns the sequence that undoes path: moves in reverse
// order, each inverted.
func InvertPath(path []Move) []Move {
	inv := make([]Move, 0, len(path))
	for i := len(path) - 1; i >= 0; i-- {
		inv = append(inv, path[i].Inverse())
	}
	return inv
}

// IsRedundant reports whether appending next to history would produce a
// move sequence an equivalent shorter sequence also produces. Two rules,
// shared by the pattern-database build and the live search:
//
//  1. next is on the same face as the last move and together they make at
//     least a full rotation (a no-op, or a turn expressible more cheaply);
//  2. next is on a face already turned just before a run of moves on the
//     geometrically opposite face only (opposite faces commute, so the two
//     turns could have been merged).
func IsRedundant(history []Move, next Move) bool {
	if len(history) == 0 {
		return false
	}
	last := history[len(history)-1]
	if last.Face == next.Face && last.Turns+next.Turns >= 4 {
		return true
	}
	if last.Face != next.Face.Opposite() {
		return false
	}
	for i := len(history) - 2; i >= 0; i-- {
		switch history[i].Face {
		case next.Face.Opposite():
			continue
		case next.Face:
			return true
		default:
			return false
		}
	}
	return false
}
