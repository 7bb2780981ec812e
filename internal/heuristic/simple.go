package heuristic

import (
	"github.com/SeamusWaldron/cubesolve"
)

// The simple metric is a flat per-cubie distance: no orientation bonuses,
// just a fixed cost per misplaced or twisted piece, summed and scaled.
// Cheaper per node than Composite and correspondingly less informed.

var simpleCornerTargets = [8]cornerTarget{
	{[3]gridPos{{2, 3}, {3, 2}, {3, 3}}, [3]cubesolve.Color{'O', 'G', 'W'}},
	{[3]gridPos{{2, 5}, {3, 5}, {3, 6}}, [3]cubesolve.Color{'O', 'W', 'B'}},
	{[3]gridPos{{0, 3}, {3, 11}, {3, 0}}, [3]cubesolve.Color{'O', 'Y', 'G'}},
	{[3]gridPos{{0, 5}, {3, 8}, {3, 9}}, [3]cubesolve.Color{'O', 'B', 'Y'}},
	{[3]gridPos{{5, 2}, {5, 3}, {6, 3}}, [3]cubesolve.Color{'G', 'W', 'R'}},
	{[3]gridPos{{5, 5}, {5, 6}, {6, 5}}, [3]cubesolve.Color{'W', 'B', 'R'}},
	{[3]gridPos{{5, 11}, {5, 0}, {8, 3}}, [3]cubesolve.Color{'Y', 'G', 'R'}},
	{[3]gridPos{{5, 8}, {5, 9}, {8, 5}}, [3]cubesolve.Color{'B', 'Y', 'R'}},
}

// simpleDistance sums flat corner and edge costs and scales the total
// down to a move estimate.
func simpleDistance(c *cubesolve.Cube) int {
	if c.IsSolved() {
		return 0
	}
	return (simpleCornerSum(c) + simpleEdgeSum(c)) / 8
}

func simpleCornerSum(c *cubesolve.Cube) int {
	sum := 0
	for _, target := range simpleCornerTargets {
		var found [3]cubesolve.Color
		for i, pos := range target.cells {
			found[i] = c.At(pos.row, pos.col)
		}
		switch {
		case !sameColorSet3(found, target.colors):
			sum += 5
		case found == target.colors:
			// in place
		default:
			sum += 3
		}
	}
	return sum
}

func simpleEdgeSum(c *cubesolve.Cube) int {
	sum := 0
	for _, target := range edgeTargets {
		c1 := c.At(target.cells[0].row, target.cells[0].col)
		c2 := c.At(target.cells[1].row, target.cells[1].col)
		switch {
		case !sameColorSet2([2]cubesolve.Color{c1, c2}, target.colors):
			sum += 4
		case c1 == target.colors[0] && c2 == target.colors[1]:
			// in place
		default:
			sum += 3
		}
	}
	return sum
}
