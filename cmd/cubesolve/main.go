// cubesolve - CLI solver for the 3x3 Rubik's Cube.
package main

import (
	"github.com/SeamusWaldron/cubesolve/internal/cli"
)

func main() {
	cli.Execute()
}
