package cubesolve

// The rotation engine works on a 7x3 local view of the grid: rows 0-2 are
// the turning face's own 3x3 block, rows 3-6 are the four 3-sticker border
// strips borrowed from the adjacent faces, listed in the cyclic order they
// rotate into. One quarter turn is extract, rotate, write back.

type cell struct{ row, col int }

// faceWindows maps each face to the grid coordinates of its 21-cell local
// view. The tables encode the physical adjacency of faces on the unfolded
// net and must not be reordered.
var faceWindows = map[Face][21]cell{
	FaceF: {
		{3, 3}, {3, 4}, {3, 5}, {4, 3}, {4, 4}, {4, 5}, {5, 3}, {5, 4}, {5, 5},
		{2, 3}, {2, 4}, {2, 5},
		{3, 6}, {4, 6}, {5, 6},
		{6, 5}, {6, 4}, {6, 3},
		{5, 2}, {4, 2}, {3, 2},
	},
	FaceB: {
		{3, 9}, {3, 10}, {3, 11}, {4, 9}, {4, 10}, {4, 11}, {5, 9}, {5, 10}, {5, 11},
		{0, 5}, {0, 4}, {0, 3},
		{3, 0}, {4, 0}, {5, 0},
		{8, 3}, {8, 4}, {8, 5},
		{5, 8}, {4, 8}, {3, 8},
	},
	FaceR: {
		{3, 6}, {3, 7}, {3, 8}, {4, 6}, {4, 7}, {4, 8}, {5, 6}, {5, 7}, {5, 8},
		{2, 5}, {1, 5}, {0, 5},
		{3, 9}, {4, 9}, {5, 9},
		{8, 5}, {7, 5}, {6, 5},
		{5, 5}, {4, 5}, {3, 5},
	},
	FaceL: {
		{3, 0}, {3, 1}, {3, 2}, {4, 0}, {4, 1}, {4, 2}, {5, 0}, {5, 1}, {5, 2},
		{0, 3}, {1, 3}, {2, 3},
		{3, 3}, {4, 3}, {5, 3},
		{6, 3}, {7, 3}, {8, 3},
		{5, 11}, {4, 11}, {3, 11},
	},
	FaceU: {
		{0, 3}, {0, 4}, {0, 5}, {1, 3}, {1, 4}, {1, 5}, {2, 3}, {2, 4}, {2, 5},
		{3, 11}, {3, 10}, {3, 9},
		{3, 8}, {3, 7}, {3, 6},
		{3, 5}, {3, 4}, {3, 3},
		{3, 2}, {3, 1}, {3, 0},
	},
	FaceD: {
		{6, 3}, {6, 4}, {6, 5}, {7, 3}, {7, 4}, {7, 5}, {8, 3}, {8, 4}, {8, 5},
		{5, 3}, {5, 4}, {5, 5},
		{5, 6}, {5, 7}, {5, 8},
		{5, 9}, {5, 10}, {5, 11},
		{5, 0}, {5, 1}, {5, 2},
	},
}

// rotateFace turns a face 90 degrees clockwise: the 3x3 block rotates in
// place and each border strip advances one strip position, wrapping the
// last strip back to the first.
func (c *Cube) rotateFace(f Face) {
	window := faceWindows[f]

	var view [7][3]Color
	for i, pos := range window {
		view[i/3][i%3] = c.grid[pos.row][pos.col]
	}

	var rotated [7][3]Color
	for r := 0; r < 7; r++ {
		for col := 0; col < 3; col++ {
			if r < 3 {
				rotated[col][2-r] = view[r][col]
			} else {
				next := r + 1
				if next > 6 {
					next = 3
				}
				rotated[next][col] = view[r][col]
			}
		}
	}

	for i, pos := range window {
		c.grid[pos.row][pos.col] = rotated[i/3][i%3]
	}
}
