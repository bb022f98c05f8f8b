package mines

import (
	"slices"
	"strconv"
	"strings"
)

// CellState is what the player is allowed to know about a cell.
type CellState int8

// Values 0 to 8 are an open cell showing its neighbor mine count. The rest
// are below.
const (
	Flagged  CellState = -1 - iota // hidden, flagged
	Unknown                        // hidden, unmarked
	Question                       // hidden, question mark
)

// States only a decided game shows.
const (
	CorrectlyFlagged CellState = 64 + iota // flag on a mine after a loss
	ExplodedMine                           // the mine that ended the game
	FalselyFlagged                         // flag on a safe cell after a loss
	UnflaggedMine                          // mine disclosed by a loss
)

func (s CellState) String() string {
	switch {
	case s == Question:
		return "?"
	case s == Unknown:
		return "-"
	case s == Flagged, s == CorrectlyFlagged:
		return "F"
	case s == ExplodedMine:
		return "X"
	case s == FalselyFlagged:
		return "x"
	case s == UnflaggedMine:
		return "*"
	case s == 0:
		return "."
	case 0 < s && s <= 8:
		return strconv.Itoa(int(s))
	default:
		return "!"
	}
}

func (s CellState) Number() (int, bool) {
	return int(s), 0 <= s && s <= 8
}

type Grid []CellState

// Format lays the grid out width cells to a line, one symbol per cell.
func (g Grid) Format(width int) string {
	if width < 1 {
		return ""
	}
	var sb strings.Builder
	for row := range slices.Chunk(g, width) {
		for i, s := range row {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(s.String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (b *Board) stateOf(cell Cell) CellState {
	switch {
	case cell.Revealed && cell.EndReason:
		return ExplodedMine
	case cell.Revealed && cell.Mine:
		return UnflaggedMine
	case cell.Revealed && cell.Marked:
		return FalselyFlagged
	case cell.Revealed:
		return CellState(cell.Adjacent)
	case cell.Marked && cell.Mine && b.state.Lost:
		return CorrectlyFlagged
	case cell.Marked:
		return Flagged
	case cell.Question:
		return Question
	default:
		return Unknown
	}
}

// PlayerGrid is the row-major view of the board a renderer may show.
func (b *Board) PlayerGrid() Grid {
	grid := make(Grid, len(b.cells))
	for i, cell := range b.cells {
		grid[i] = b.stateOf(cell)
	}
	return grid
}

// StateAt is the player view of a single cell.
func (b *Board) StateAt(c Coord) (CellState, error) {
	if err := b.check(c); err != nil {
		return Unknown, err
	}
	return b.stateOf(*b.cell(c)), nil
}
