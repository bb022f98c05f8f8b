package mines

import (
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

// Second PCG word, so that a single user-visible seed fills both halves.
const seedStream uint64 = 0x9e3779b97f4a7c15

func (b *Board) rand() *rand.Rand {
	seed := *b.settings.Seed
	return rand.New(rand.NewPCG(seed, seed^seedStream))
}

// GenerateMines places the mines, keeping the cells excluded by the
// first-click policy around guarantee clear, and recomputes every adjacency
// count. The layout depends only on the settings (seed included) and
// guarantee, and the next Reveal plays on it instead of placing its own.
//
// It may be called again to replace the layout until a cell has been
// revealed; after that, or once the game is decided, it returns
// ErrGameStarted and leaves the board alone.
func (b *Board) GenerateMines(guarantee Coord) error {
	if err := b.check(guarantee); err != nil {
		return err
	}
	if b.started() {
		return ErrGameStarted
	}
	b.generate(guarantee)
	b.state.FirstReveal = false
	return nil
}

// started reports whether the layout is in play: a cell is open or the game
// is over.
func (b *Board) started() bool {
	if b.state.Over() {
		return true
	}
	for i := range b.cells {
		if b.cells[i].Revealed {
			return true
		}
	}
	return false
}

func (b *Board) generate(guarantee Coord) {
	b.placeMines(guarantee)
	b.countAdjacent()
	Log.WithFields(logrus.Fields{
		"settings":  b.settings.String(),
		"guarantee": guarantee.String(),
	}).Debug("mines generated")
}

func (b *Board) candidates(guarantee Coord, policy FirstClickPolicy) []int {
	candidates := make([]int, 0, len(b.cells))
	for i := range b.cells {
		if !policy.excludes(guarantee, b.coord(i)) {
			candidates = append(candidates, i)
		}
	}
	return candidates
}

// panics [AssertionError]
func (b *Board) placeMines(guarantee Coord) {
	for i := range b.cells {
		b.cells[i].Mine = false
	}

	/*
	 * Write down the list of possible mine locations. A 3x3 clear zone
	 * may not leave room for every mine on a dense board, in which case
	 * only the guarantee cell itself is kept clear.
	 */
	candidates := b.candidates(guarantee, b.settings.Policy)
	if len(candidates) < b.settings.Mines && b.settings.Policy == ClearZone {
		Log.WithFields(logrus.Fields{
			"candidates": len(candidates),
			"mines":      b.settings.Mines,
		}).Warn("clear zone leaves too few cells, keeping only the first cell safe")
		candidates = b.candidates(guarantee, SafeCell)
	}
	if len(candidates) < b.settings.Mines {
		panic(AssertionError{"not enough cells to place mines"})
	}

	/*
	 * Now pick n off the list at random.
	 */
	r := b.rand()
	k := len(candidates)
	for range b.settings.Mines {
		i := r.IntN(k)
		b.cells[candidates[i]].Mine = true
		k--
		candidates[i] = candidates[k]
	}
}

func (b *Board) countAdjacent() {
	for i := range b.cells {
		n := 0
		for c := range b.neighbors(b.coord(i)) {
			if b.cell(c).Mine {
				n++
			}
		}
		b.cells[i].Adjacent = n
	}
}
