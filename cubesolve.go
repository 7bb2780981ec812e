// Package cubesolve provides a 3x3 Rubik's Cube model and solver primitives.
//
// The cube is modeled as an unfolded net on a 9x12 sticker grid, the same
// layout used by the solver's heuristic tables:
//
//	      U
//	L  F  R  B
//	      D
//
// Moves use repeated-letter notation: F is a 90 degree clockwise turn of the
// front face, FF is 180 degrees, FFF is 270 degrees (one counter-clockwise
// quarter turn). A solution is a flat string of face letters that can be
// replayed one character at a time.
//
// # Quick start
//
//	cube, err := cubesolve.Parse(input)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cube.ApplyMoves(moves)
//	fmt.Println("Solved:", cube.IsSolved())
//
// The search driver, heuristic estimator and pattern database live under
// internal/ and are wired together by the cubesolve CLI.
package cubesolve
