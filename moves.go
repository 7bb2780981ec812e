package cubesolve

// AllMoves is the full 18-move generator set: 6 faces times 1, 2 or 3
// clockwise quarter turns. Both the pattern-database build and the search
// expand states in this order, which keeps results reproducible.
var AllMoves = []Move{
	// Quarter turns
	{FaceF, 1}, {FaceB, 1}, {FaceL, 1}, {FaceR, 1}, {FaceU, 1}, {FaceD, 1},
	// Half turns
	{FaceF, 2}, {FaceB, 2}, {FaceL, 2}, {FaceR, 2}, {FaceU, 2}, {FaceD, 2},
	// Counter-clockwise quarter turns (three clockwise quarters)
	{FaceF, 3}, {FaceB, 3}, {FaceL, 3}, {FaceR, 3}, {FaceU, 3}, {FaceD, 3},
}

// AllFaces lists the six face letters in the same order AllMoves uses.
var AllFaces = []Face{FaceF, FaceB, FaceL, FaceR, FaceU, FaceD}
