package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/cubesolve"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	solutionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

// stickerStyles maps each sticker color to a terminal cell style.
var stickerStyles = map[cubesolve.Color]lipgloss.Style{
	cubesolve.ColorWhite:  lipgloss.NewStyle().Background(lipgloss.Color("15")).Foreground(lipgloss.Color("0")),
	cubesolve.ColorYellow: lipgloss.NewStyle().Background(lipgloss.Color("11")).Foreground(lipgloss.Color("0")),
	cubesolve.ColorGreen:  lipgloss.NewStyle().Background(lipgloss.Color("10")).Foreground(lipgloss.Color("0")),
	cubesolve.ColorBlue:   lipgloss.NewStyle().Background(lipgloss.Color("12")).Foreground(lipgloss.Color("15")),
	cubesolve.ColorOrange: lipgloss.NewStyle().Background(lipgloss.Color("208")).Foreground(lipgloss.Color("0")),
	cubesolve.ColorRed:    lipgloss.NewStyle().Background(lipgloss.Color("9")).Foreground(lipgloss.Color("15")),
}

// renderNet renders the cube net with colored sticker cells.
func renderNet(c *cubesolve.Cube) string {
	out := ""
	for r := 0; r < cubesolve.GridRows; r++ {
		line := ""
		for col := 0; col < cubesolve.GridCols; col++ {
			color := c.At(r, col)
			if color == 0 {
				line += "  "
				continue
			}
			line += stickerStyles[color].Render(string(color) + " ")
		}
		out += line + "\n"
	}
	return out
}
