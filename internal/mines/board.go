package mines

import (
	"fmt"
	"hash/maphash"
	"iter"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

type Coord struct {
	Row, Col int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// Neighbor scan order. Chord picks the first unmarked mine found in this
// order as the cause of a loss.
var neighborOffsets = [8]Coord{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, +1},
	{+1, -1}, {+1, 0}, {+1, 1},
}

type Cell struct {
	Mine      bool
	Revealed  bool
	Marked    bool
	Question  bool
	EndReason bool // the mine that lost the game
	Adjacent  int
}

func (c Cell) Mark() MarkState {
	switch {
	case c.Marked:
		return MarkFlag
	case c.Question:
		return MarkQuestion
	default:
		return Unmarked
	}
}

type State struct {
	Lost, Won   bool
	FirstReveal bool
}

// Over reports whether the game has been decided.
func (s State) Over() bool {
	return s.Lost || s.Won
}

// Board is a single game of minesweeper. It is not safe for concurrent use:
// the owner must serialize calls to Reveal, Mark and Forfeit.
type Board struct {
	settings Settings
	cells    []Cell /* row-major */
	state    State
	flags    int
}

// RandomSeed draws a seed from the runtime's per-process entropy.
func RandomSeed() uint64 {
	return new(maphash.Hash).Sum64()
}

// New allocates an empty board. Mines are placed on the first Reveal so
// that the first-click policy can be honored. A nil Seed is replaced with
// RandomSeed and kept in Settings so the game can be replayed.
func New(settings Settings) (*Board, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	var seed uint64
	if settings.Seed != nil {
		seed = *settings.Seed
	} else {
		seed = RandomSeed()
	}
	settings.Seed = &seed

	b := &Board{
		settings: settings,
		cells:    make([]Cell, settings.Rows*settings.Cols),
		state:    State{FirstReveal: true},
	}
	Log.WithFields(logrus.Fields{
		"settings": settings.String(),
	}).Debug("new board")
	return b, nil
}

func (b *Board) RowCount() int {
	return b.settings.Rows
}

func (b *Board) ColCount() int {
	return b.settings.Cols
}

// Settings returns a copy of the board settings, including the seed in use.
func (b *Board) Settings() Settings {
	s := b.settings
	seed := *b.settings.Seed
	s.Seed = &seed
	return s
}

func (b *Board) State() State {
	return b.state
}

// Flags is the number of cells currently flagged.
func (b *Board) Flags() int {
	return b.flags
}

// MinesRemaining is the classic counter: mines minus flags. It goes
// negative when the player over-flags.
func (b *Board) MinesRemaining() int {
	return b.settings.Mines - b.flags
}

func (b *Board) Contains(c Coord) bool {
	return 0 <= c.Row && c.Row < b.settings.Rows &&
		0 <= c.Col && c.Col < b.settings.Cols
}

func (b *Board) check(c Coord) error {
	if !b.Contains(c) {
		return &CoordError{Coord: c, Rows: b.settings.Rows, Cols: b.settings.Cols}
	}
	return nil
}

func (b *Board) index(c Coord) int {
	return c.Row*b.settings.Cols + c.Col
}

func (b *Board) coord(i int) Coord {
	return Coord{Row: i / b.settings.Cols, Col: i % b.settings.Cols}
}

func (b *Board) cell(c Coord) *Cell {
	return &b.cells[b.index(c)]
}

// CellAt returns a copy of the cell at c.
func (b *Board) CellAt(c Coord) (Cell, error) {
	if err := b.check(c); err != nil {
		return Cell{}, err
	}
	return *b.cell(c), nil
}

// All yields every cell in row-major order.
func (b *Board) All() iter.Seq2[Coord, Cell] {
	return func(yield func(Coord, Cell) bool) {
		for i, cell := range b.cells {
			if !yield(b.coord(i), cell) {
				return
			}
		}
	}
}

// neighbors yields the in-bounds 8-neighbors of c in neighborOffsets order.
func (b *Board) neighbors(c Coord) iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		for _, d := range neighborOffsets {
			n := Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
			if b.Contains(n) && !yield(n) {
				return
			}
		}
	}
}
