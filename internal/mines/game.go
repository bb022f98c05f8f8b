package mines

import (
	"github.com/sirupsen/logrus"
)

type MarkState uint8

const (
	Unmarked MarkState = iota
	MarkFlag
	MarkQuestion
)

func (m MarkState) String() string {
	switch m {
	case MarkFlag:
		return "flagged"
	case MarkQuestion:
		return "questioned"
	default:
		return "unmarked"
	}
}

// Reveal opens the cell at c. On a hidden cell it flood fills; on an
// already revealed number it chords. The first reveal of a game places the
// mines. Calls on a decided game or a flagged cell change nothing.
func (b *Board) Reveal(c Coord) (State, error) {
	if err := b.check(c); err != nil {
		return b.state, err
	}
	if b.state.Over() || b.cell(c).Marked {
		return b.state, nil
	}

	if b.state.FirstReveal {
		b.generate(c)
	}

	cell := b.cell(c)
	switch {
	case cell.Mine:
		b.lose(&c)
	case !cell.Revealed:
		b.floodFill(c)
	default:
		if hit, mined := b.chord(c); mined {
			b.lose(&hit)
		}
	}

	if !b.state.Lost && b.IsWin() {
		b.win()
	}
	b.state.FirstReveal = false

	return b.state, nil
}

func (b *Board) open(c Coord) {
	cell := b.cell(c)
	cell.Revealed = true
	cell.Question = false
}

// floodFill reveals start and, breadth first, every cell reachable through
// zero-count cells. Numbers bound the fill; mines and flags are never
// opened by it. start itself must not be a mine.
func (b *Board) floodFill(start Coord) {
	b.open(start)
	queue := []Coord{start}
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		if b.cell(curr).Adjacent > 0 {
			continue
		}
		for n := range b.neighbors(curr) {
			cell := b.cell(n)
			if cell.Mine || cell.Revealed || cell.Marked {
				continue
			}
			b.open(n)
			queue = append(queue, n)
		}
	}
}

// chord opens the unflagged neighbors of a revealed number once the player
// has placed exactly as many flags around it as the number says. It trusts
// the flag count, not the flags. If an unflagged neighbor is a mine, the
// first one in scan order is returned and safe neighbors are opened without
// flood filling.
func (b *Board) chord(c Coord) (hit Coord, mined bool) {
	flags := 0
	for n := range b.neighbors(c) {
		cell := b.cell(n)
		if cell.Marked {
			flags++
		} else if cell.Mine && !mined {
			hit, mined = n, true
		}
	}

	if flags != b.cell(c).Adjacent {
		return Coord{}, false
	}

	for n := range b.neighbors(c) {
		cell := b.cell(n)
		switch {
		case cell.Marked, cell.Mine:
			continue
		case mined:
			b.open(n)
		default:
			b.floodFill(n)
		}
	}
	return hit, mined
}

func (b *Board) lose(end *Coord) {
	b.state.Lost = true
	b.revealMines(end)
	fields := logrus.Fields{
		"settings": b.settings.String(),
		"grid":     b.PlayerGrid().Format(b.settings.Cols),
	}
	if end != nil {
		fields["end"] = end.String()
	}
	Log.WithFields(fields).Debug("game lost")
}

// revealMines discloses the board after a loss: the fatal mine is marked
// as the end reason, unflagged mines and wrong flags are revealed, correct
// flags are left alone.
func (b *Board) revealMines(end *Coord) {
	for i := range b.cells {
		cell := &b.cells[i]
		switch {
		case end != nil && i == b.index(*end):
			cell.Revealed = true
			cell.EndReason = true
		case cell.Mine && !cell.Marked:
			cell.Revealed = true
		case cell.Marked && !cell.Mine:
			cell.Revealed = true
		}
	}
}

// win flags every mine, so the mines-remaining counter ends at zero.
func (b *Board) win() {
	b.state.Won = true
	for i := range b.cells {
		cell := &b.cells[i]
		if cell.Mine && !cell.Marked {
			cell.Marked = true
			cell.Question = false
			b.flags++
		}
	}
	Log.WithField("settings", b.settings.String()).Debug("game won")
}

// IsWin reports whether every safe cell is revealed and no mine is.
func (b *Board) IsWin() bool {
	for _, cell := range b.cells {
		if cell.Revealed == cell.Mine {
			return false
		}
	}
	return true
}

// Mark cycles the mark on a hidden cell: unmarked, flagged, and back, with
// a questioned step before unmarked when question mode is on. Revealed
// cells and decided games are left as they are. The resulting mark is
// returned either way.
func (b *Board) Mark(c Coord) (MarkState, error) {
	if err := b.check(c); err != nil {
		return Unmarked, err
	}
	cell := b.cell(c)
	if cell.Revealed || b.state.Over() {
		return cell.Mark(), nil
	}

	switch {
	case cell.Marked:
		cell.Marked = false
		cell.Question = b.settings.QuestionMode
		b.flags--
	case cell.Question:
		cell.Question = false
	default:
		cell.Marked = true
		b.flags++
	}
	return cell.Mark(), nil
}

// Forfeit ends an undecided game as lost and discloses the board without
// an end reason.
func (b *Board) Forfeit() {
	if b.state.Over() {
		return
	}
	b.lose(nil)
}
