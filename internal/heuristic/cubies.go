package heuristic

import (
	"github.com/SeamusWaldron/cubesolve"
)

// Cubie target tables: the net coordinates of every corner and edge
// piece's stickers and the colors they carry when solved. Coordinates
// index the 9x12 net grid directly.

type gridPos struct{ row, col int }

type cornerTarget struct {
	cells  [3]gridPos
	colors [3]cubesolve.Color
}

type edgeTarget struct {
	cells  [2]gridPos
	colors [2]cubesolve.Color
}

var cornerTargets = [8]cornerTarget{
	{[3]gridPos{{2, 3}, {3, 2}, {3, 3}}, [3]cubesolve.Color{'O', 'G', 'W'}},
	{[3]gridPos{{2, 5}, {3, 5}, {3, 6}}, [3]cubesolve.Color{'O', 'W', 'B'}},
	{[3]gridPos{{0, 3}, {3, 11}, {3, 0}}, [3]cubesolve.Color{'O', 'Y', 'G'}},
	{[3]gridPos{{0, 5}, {3, 8}, {3, 9}}, [3]cubesolve.Color{'O', 'B', 'Y'}},
	{[3]gridPos{{6, 3}, {5, 2}, {5, 3}}, [3]cubesolve.Color{'R', 'G', 'W'}},
	{[3]gridPos{{6, 5}, {5, 5}, {5, 6}}, [3]cubesolve.Color{'R', 'W', 'B'}},
	{[3]gridPos{{8, 3}, {5, 11}, {5, 0}}, [3]cubesolve.Color{'R', 'Y', 'G'}},
	{[3]gridPos{{8, 5}, {5, 8}, {5, 9}}, [3]cubesolve.Color{'R', 'B', 'Y'}},
}

var edgeTargets = [12]edgeTarget{
	{[2]gridPos{{2, 4}, {3, 4}}, [2]cubesolve.Color{'O', 'W'}},
	{[2]gridPos{{1, 5}, {3, 7}}, [2]cubesolve.Color{'O', 'B'}},
	{[2]gridPos{{0, 4}, {3, 10}}, [2]cubesolve.Color{'O', 'Y'}},
	{[2]gridPos{{1, 3}, {3, 1}}, [2]cubesolve.Color{'O', 'G'}},
	{[2]gridPos{{4, 2}, {4, 3}}, [2]cubesolve.Color{'G', 'W'}},
	{[2]gridPos{{4, 5}, {4, 6}}, [2]cubesolve.Color{'W', 'B'}},
	{[2]gridPos{{4, 11}, {4, 0}}, [2]cubesolve.Color{'Y', 'G'}},
	{[2]gridPos{{4, 8}, {4, 9}}, [2]cubesolve.Color{'B', 'Y'}},
	{[2]gridPos{{5, 4}, {6, 4}}, [2]cubesolve.Color{'W', 'R'}},
	{[2]gridPos{{5, 7}, {7, 5}}, [2]cubesolve.Color{'B', 'R'}},
	{[2]gridPos{{5, 10}, {8, 4}}, [2]cubesolve.Color{'Y', 'R'}},
	{[2]gridPos{{5, 1}, {7, 3}}, [2]cubesolve.Color{'G', 'R'}},
}

// cornerDistance scores the 8 corner cubies. A corner costs 0 when placed
// and oriented, 2 otherwise; the count of disturbed corners feeds an
// extra penalty on top of the averaged score.
func cornerDistance(c *cubesolve.Cube) int {
	sum := 0
	disturbed := 0
	for _, target := range cornerTargets {
		score := scoreCorner(c, target)
		sum += score
		if score > 0 {
			disturbed++
		}
	}

	final := sum / 4
	switch {
	case disturbed >= 4:
		final += 2
	case disturbed >= 2:
		final += 1
	}
	return final
}

func scoreCorner(c *cubesolve.Cube, target cornerTarget) int {
	var found [3]cubesolve.Color
	for i, pos := range target.cells {
		found[i] = c.At(pos.row, pos.col)
	}
	if !sameColorSet3(found, target.colors) {
		return 2 // wrong piece in this slot
	}
	if found == target.colors {
		return 0
	}
	return 2 // right piece, twisted
}

// edgeDistance scores the 12 edge cubies: 0 placed and oriented, 1
// flipped in place, 2 wrong piece. The count of wrong pieces feeds the
// extra penalty.
func edgeDistance(c *cubesolve.Cube) int {
	sum := 0
	misplaced := 0
	for _, target := range edgeTargets {
		score := scoreEdge(c, target)
		sum += score
		if score == 2 {
			misplaced++
		}
	}

	final := sum / 4
	switch {
	case misplaced >= 4:
		final += 2
	case misplaced >= 2:
		final += 1
	}
	return final
}

func scoreEdge(c *cubesolve.Cube, target edgeTarget) int {
	c1 := c.At(target.cells[0].row, target.cells[0].col)
	c2 := c.At(target.cells[1].row, target.cells[1].col)

	if !sameColorSet2([2]cubesolve.Color{c1, c2}, target.colors) {
		return 2
	}
	if c1 == target.colors[0] && c2 == target.colors[1] {
		return 0
	}
	return 1 // flipped
}

func sameColorSet3(a, b [3]cubesolve.Color) bool {
	sort3(&a)
	sort3(&b)
	return a == b
}

func sameColorSet2(a, b [2]cubesolve.Color) bool {
	if a[0] > a[1] {
		a[0], a[1] = a[1], a[0]
	}
	if b[0] > b[1] {
		b[0], b[1] = b[1], b[0]
	}
	return a == b
}

func sort3(s *[3]cubesolve.Color) {
	if s[0] > s[1] {
		s[0], s[1] = s[1], s[0]
	}
	if s[1] > s[2] {
		s[1], s[2] = s[2], s[1]
	}
	if s[0] > s[1] {
		s[0], s[1] = s[1], s[0]
	}
}
