package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/cubedrag"
)

// Shared styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	progressStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	selectedCellStyle = lipgloss.NewStyle().
				Bold(true).
				Underline(true)
)

// stickerStyles maps each sticker color to a lipgloss style. Background
// colors are chosen to read well on both dark and light terminals.
var stickerStyles = map[cubedrag.Color]lipgloss.Style{
	cubedrag.White:  lipgloss.NewStyle().Background(lipgloss.Color("255")).Foreground(lipgloss.Color("232")),
	cubedrag.Yellow: lipgloss.NewStyle().Background(lipgloss.Color("226")).Foreground(lipgloss.Color("232")),
	cubedrag.Green:  lipgloss.NewStyle().Background(lipgloss.Color("34")).Foreground(lipgloss.Color("255")),
	cubedrag.Blue:   lipgloss.NewStyle().Background(lipgloss.Color("21")).Foreground(lipgloss.Color("255")),
	cubedrag.Red:    lipgloss.NewStyle().Background(lipgloss.Color("196")).Foreground(lipgloss.Color("255")),
	cubedrag.Orange: lipgloss.NewStyle().Background(lipgloss.Color("208")).Foreground(lipgloss.Color("232")),
}

// colorBlock renders one sticker as a colored two-character cell.
func colorBlock(c cubedrag.Color) string {
	style, ok := stickerStyles[c]
	if !ok {
		return "??"
	}
	return style.Render(" " + c.String())
}

// renderNet draws the cube as an unfolded net:
//
//	    U
//	L F R B
//	    D
//
// highlight, when valid, marks the face currently under the pointer.
func renderNet(state *cubedrag.CubeState, highlight cubedrag.Face, hasHighlight bool) string {
	var b strings.Builder

	up := state.Face(cubedrag.FaceUp)
	down := state.Face(cubedrag.FaceDown)
	front := state.Face(cubedrag.FaceFront)
	back := state.Face(cubedrag.FaceBack)
	right := state.Face(cubedrag.FaceRight)
	left := state.Face(cubedrag.FaceLeft)

	renderRow := func(face cubedrag.FaceState, row int) string {
		var cells [3]string
		for col := 0; col < 3; col++ {
			cell := colorBlock(face.Colors[row*3+col])
			if hasHighlight && face.Position == highlight {
				cell = selectedCellStyle.Render(cell)
			}
			cells[col] = cell
		}
		return cells[0] + cells[1] + cells[2]
	}

	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		b.WriteString(renderRow(up, row))
		b.WriteString("\n")
	}
	for row := 0; row < 3; row++ {
		b.WriteString(renderRow(left, row))
		b.WriteString(renderRow(front, row))
		b.WriteString(renderRow(right, row))
		b.WriteString(renderRow(back, row))
		b.WriteString("\n")
	}
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		b.WriteString(renderRow(down, row))
		b.WriteString("\n")
	}

	return b.String()
}

// renderHistory shows the most recent moves, newest last.
func renderHistory(state *cubedrag.CubeState, max int) string {
	history := state.MoveHistory()
	if len(history) == 0 {
		return statusStyle.Render("(no moves yet)")
	}
	if len(history) > max {
		history = history[len(history)-max:]
	}
	return moveStyle.Render(cubedrag.FormatMoves(history))
}

// renderProgress shows the solving progress line.
func renderProgress(state *cubedrag.CubeState) string {
	p := cubedrag.DetectProgress(state)
	line := fmt.Sprintf("Progress: %s", progressStyle.Render(p.DisplayName()))
	if state.IsSolved() && state.MoveCount() > 0 {
		line += "  " + progressStyle.Render("*")
	}
	return line
}
