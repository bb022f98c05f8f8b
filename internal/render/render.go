package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vancomm/minesweeper-engine/internal/mines"
)

// Board is the read-only view the renderer needs.
type Board interface {
	PlayerGrid() mines.Grid
	RowCount() int
	ColCount() int
	MinesRemaining() int
	State() mines.State
	Settings() mines.Settings
}

var numberColors = [9]string{
	1: "12", // blue
	2: "2",  // green
	3: "9",  // red
	4: "4",  // navy
	5: "1",  // maroon
	6: "6",  // teal
	7: "0",  // black
	8: "245",
}

type styles struct {
	numbers    [9]lipgloss.Style
	hidden     lipgloss.Style
	flag       lipgloss.Style
	question   lipgloss.Style
	mine       lipgloss.Style
	exploded   lipgloss.Style
	wrongFlag  lipgloss.Style
	label      lipgloss.Style
	won, lost  lipgloss.Style
	statusText lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	var s styles
	for i, color := range numberColors {
		s.numbers[i] = r.NewStyle()
		if color != "" {
			s.numbers[i] = s.numbers[i].Foreground(lipgloss.Color(color)).Bold(true)
		}
	}
	s.numbers[0] = r.NewStyle().Faint(true)
	s.hidden = r.NewStyle().Foreground(lipgloss.Color("245"))
	s.flag = r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	s.question = r.NewStyle().Foreground(lipgloss.Color("11"))
	s.mine = r.NewStyle().Bold(true)
	s.exploded = r.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("1")).Bold(true)
	s.wrongFlag = r.NewStyle().Foreground(lipgloss.Color("208")).Strikethrough(true)
	s.label = r.NewStyle().Foreground(lipgloss.Color("8"))
	s.won = r.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	s.lost = r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	s.statusText = r.NewStyle()
	return s
}

// Renderer draws boards as text. With color off it produces plain ASCII and
// the output does not depend on the terminal.
type Renderer struct {
	color  bool
	styles styles
}

func New(w io.Writer, color bool) *Renderer {
	return &Renderer{
		color:  color,
		styles: newStyles(lipgloss.NewRenderer(w)),
	}
}

func (r *Renderer) paint(style lipgloss.Style, s string) string {
	if !r.color {
		return s
	}
	return style.Render(s)
}

func (r *Renderer) cell(s mines.CellState) string {
	text := s.String()
	switch s {
	case mines.Unknown:
		return r.paint(r.styles.hidden, text)
	case mines.Flagged, mines.CorrectlyFlagged:
		return r.paint(r.styles.flag, text)
	case mines.Question:
		return r.paint(r.styles.question, text)
	case mines.UnflaggedMine:
		return r.paint(r.styles.mine, text)
	case mines.ExplodedMine:
		return r.paint(r.styles.exploded, text)
	case mines.FalselyFlagged:
		return r.paint(r.styles.wrongFlag, text)
	}
	if n, ok := s.Number(); ok {
		return r.paint(r.styles.numbers[n], text)
	}
	return text
}

func pad(s string, width int) string {
	return strings.Repeat(" ", max(0, width-len(s))) + s
}

// Board draws the grid with row and column indices.
//
//	   0 1 2
//	0  . 1 -
//	1  . 1 F
func (r *Renderer) Board(b Board) string {
	rows, cols := b.RowCount(), b.ColCount()
	rowWidth := len(strconv.Itoa(rows - 1))
	colWidth := len(strconv.Itoa(cols - 1))
	grid := b.PlayerGrid()

	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", rowWidth+1))
	for col := range cols {
		sb.WriteString(" ")
		sb.WriteString(r.paint(r.styles.label, pad(strconv.Itoa(col), colWidth)))
	}
	sb.WriteString("\n")

	for row := range rows {
		sb.WriteString(r.paint(r.styles.label, pad(strconv.Itoa(row), rowWidth)))
		sb.WriteString(" ")
		for col := range cols {
			s := grid[row*cols+col]
			sb.WriteString(" ")
			sb.WriteString(strings.Repeat(" ", colWidth-1))
			sb.WriteString(r.cell(s))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// Status is the one-line summary under the board: the mines-remaining
// counter, the outcome and the settings needed to replay the game.
func (r *Renderer) Status(b Board) string {
	state := b.State()
	var outcome string
	switch {
	case state.Won:
		outcome = r.paint(r.styles.won, "won")
	case state.Lost:
		outcome = r.paint(r.styles.lost, "lost")
	case state.FirstReveal:
		outcome = "ready"
	default:
		outcome = "playing"
	}
	return r.paint(r.styles.statusText, fmt.Sprintf("mines left: %d  |  ", b.MinesRemaining())) +
		outcome +
		r.paint(r.styles.statusText, "  |  "+b.Settings().String())
}
