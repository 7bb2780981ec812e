package cubesolve

import (
	"fmt"
	"strings"
)

// Color represents a sticker color. The zero value marks grid cells that
// lie outside the unfolded net.
type Color byte

const (
	ColorWhite  Color = 'W' // Front face when solved
	ColorYellow Color = 'Y' // Back face when solved
	ColorGreen  Color = 'G' // Left face when solved
	ColorBlue   Color = 'B' // Right face when solved
	ColorOrange Color = 'O' // Up face when solved
	ColorRed    Color = 'R' // Down face when solved
)

// Valid reports whether c is one of the six sticker colors.
func (c Color) Valid() bool {
	switch c {
	case ColorWhite, ColorYellow, ColorGreen, ColorBlue, ColorOrange, ColorRed:
		return true
	}
	return false
}

func (c Color) String() string {
	if c == 0 {
		return "."
	}
	return string(c)
}

// Grid dimensions of the unfolded net.
const (
	GridRows = 9
	GridCols = 12
)

// Cube represents a 3x3 Rubik's cube as an unfolded net on a 9x12 grid:
//
//	cols:     0-2   3-5   6-8   9-11
//	rows 0-2:        U
//	rows 3-5:  L     F     R     B
//	rows 6-8:        D
//
// Exactly 54 cells are meaningful; the rest stay at the zero Color.
type Cube struct {
	grid [GridRows][GridCols]Color
}

// SolvedColorAt returns the color a sticker at (row, col) has in the
// solved cube, and whether the cell lies on the net at all.
func SolvedColorAt(row, col int) (Color, bool) {
	switch {
	case row >= 0 && row <= 2 && col >= 3 && col <= 5:
		return ColorOrange, true // Up
	case row >= 3 && row <= 5 && col >= 0 && col <= 2:
		return ColorGreen, true // Left
	case row >= 3 && row <= 5 && col >= 3 && col <= 5:
		return ColorWhite, true // Front
	case row >= 3 && row <= 5 && col >= 6 && col <= 8:
		return ColorBlue, true // Right
	case row >= 3 && row <= 5 && col >= 9 && col <= 11:
		return ColorYellow, true // Back
	case row >= 6 && row <= 8 && col >= 3 && col <= 5:
		return ColorRed, true // Down
	}
	return 0, false
}

// NewCube creates a solved cube.
func NewCube() *Cube {
	c := &Cube{}
	for r := 0; r < GridRows; r++ {
		for col := 0; col < GridCols; col++ {
			if color, ok := SolvedColorAt(r, col); ok {
				c.grid[r][col] = color
			}
		}
	}
	return c
}

// Parse reads a textual cube description: nine lines matching the net
// layout, whitespace within a line ignored. Rows 0-2 and 6-8 carry the
// three stickers of the up and down faces, rows 3-5 carry twelve stickers
// spanning left, front, right and back. Every sticker must be one of the
// six color letters and each color must appear exactly nine times.
func Parse(text string) (*Cube, error) {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) != GridRows {
		return nil, fmt.Errorf("%w: expected %d lines, got %d", ErrInvalidFormat, GridRows, len(lines))
	}

	c := &Cube{}
	counts := make(map[Color]int)
	for r, line := range lines {
		stripped := strings.Join(strings.Fields(line), "")
		want := 3
		startCol := 3
		if r >= 3 && r <= 5 {
			want = 12
			startCol = 0
		}
		if len(stripped) != want {
			return nil, fmt.Errorf("%w: line %d has %d stickers, expected %d", ErrInvalidFormat, r+1, len(stripped), want)
		}
		for i := 0; i < want; i++ {
			color := Color(stripped[i])
			if !color.Valid() {
				return nil, fmt.Errorf("%w: unknown color %q on line %d", ErrInvalidFormat, stripped[i], r+1)
			}
			c.grid[r][startCol+i] = color
			counts[color]++
		}
	}
	for _, color := range []Color{ColorWhite, ColorYellow, ColorGreen, ColorBlue, ColorOrange, ColorRed} {
		if counts[color] != 9 {
			return nil, fmt.Errorf("%w: color %s appears %d times, expected 9", ErrInvalidFormat, color, counts[color])
		}
	}
	return c, nil
}

// At returns the sticker color at (row, col), or the zero Color for cells
// off the net.
func (c *Cube) At(row, col int) Color {
	return c.grid[row][col]
}

// Clone creates a deep copy sharing no storage with the original.
func (c *Cube) Clone() *Cube {
	clone := &Cube{}
	clone.grid = c.grid
	return clone
}

// IsSolved reports whether every face is a single color and the six face
// colors are pairwise distinct.
func (c *Cube) IsSolved() bool {
	blocks := [6][2]int{
		{0, 3}, // U
		{3, 0}, // L
		{3, 3}, // F
		{3, 6}, // R
		{3, 9}, // B
		{6, 3}, // D
	}
	seen := make(map[Color]bool, 6)
	for _, b := range blocks {
		color := c.grid[b[0]][b[1]]
		for r := b[0]; r < b[0]+3; r++ {
			for col := b[1]; col < b[1]+3; col++ {
				if c.grid[r][col] != color {
					return false
				}
			}
		}
		if seen[color] {
			return false
		}
		seen[color] = true
	}
	return true
}

// Key returns the canonical encoding of the grid: the 54 meaningful cells
// in row-major order. Two cubes are equal iff their keys are equal.
func (c *Cube) Key() string {
	buf := make([]byte, 0, 54)
	for r := 0; r < GridRows; r++ {
		for col := 0; col < GridCols; col++ {
			if _, ok := SolvedColorAt(r, col); ok {
				buf = append(buf, byte(c.grid[r][col]))
			}
		}
	}
	return string(buf)
}

// ApplyMove applies a move as a sequence of single quarter turns of the
// identified face. Replaying a flat move string one character at a time
// therefore reaches exactly the same grid as replaying grouped tokens.
func (c *Cube) ApplyMove(m Move) {
	for i := 0; i < m.Turns; i++ {
		c.rotateFace(m.Face)
	}
}

// ApplyMoves applies a sequence of moves in order.
func (c *Cube) ApplyMoves(moves []Move) {
	for _, m := range moves {
		c.ApplyMove(m)
	}
}

// String returns a text rendering of the net, parseable by Parse.
func (c *Cube) String() string {
	var b strings.Builder
	for r := 0; r < GridRows; r++ {
		start, end := 3, 6
		if r >= 3 && r <= 5 {
			start, end = 0, 12
		} else {
			b.WriteString("   ")
		}
		for col := start; col < end; col++ {
			b.WriteByte(byte(c.grid[r][col]))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
