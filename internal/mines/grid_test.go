package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerGridLost(t *testing.T) {
	b := newTestBoard(t, 3, 3, Coord{0, 0}, Coord{0, 2}, Coord{2, 2})
	b.settings.QuestionMode = true
	mark(t, b, Coord{0, 2}, Coord{1, 0})
	mark(t, b, Coord{2, 0}, Coord{2, 0})
	reveal(t, b, Coord{1, 1})

	grid := b.PlayerGrid()
	assert.Equal(t, ""+
		"- - F\n"+
		"F 3 -\n"+
		"? - -\n", grid.Format(b.ColCount()))

	reveal(t, b, Coord{0, 0})
	grid = b.PlayerGrid()
	assert.Equal(t, ""+
		"X - F\n"+
		"x 3 -\n"+
		"? - *\n", grid.Format(b.ColCount()))

	assert.Equal(t, CorrectlyFlagged, grid[2])
	assert.Equal(t, FalselyFlagged, grid[3])

	state, err := b.StateAt(Coord{2, 2})
	require.NoError(t, err)
	assert.Equal(t, UnflaggedMine, state)
}

func TestPlayerGridWon(t *testing.T) {
	b := newTestBoard(t, 3, 3, Coord{0, 0})
	require.True(t, reveal(t, b, Coord{2, 2}).Won)

	assert.Equal(t, ""+
		"F 1 .\n"+
		"1 1 .\n"+
		". . .\n", b.PlayerGrid().Format(b.ColCount()))
}

func TestGridFormat(t *testing.T) {
	g := Grid{0, 1, Flagged, Unknown, Question, UnflaggedMine, ExplodedMine}
	assert.Equal(t, ". 1 F\n- ? *\nX\n", g.Format(3))
	assert.Equal(t, ". 1 F - ? * X\n", g.Format(10))
	assert.Empty(t, g.Format(0))
	assert.Equal(t, CellState(-1), Flagged)
	assert.Equal(t, CellState(-2), Unknown)
	assert.Equal(t, CellState(-3), Question)
	assert.Equal(t, CellState(67), UnflaggedMine)
}

func TestCellStateNumber(t *testing.T) {
	n, ok := CellState(3).Number()
	assert.True(t, ok)
	assert.Equal(t, 3, n)

	for _, s := range []CellState{Question, Unknown, Flagged, ExplodedMine, UnflaggedMine} {
		_, ok := s.Number()
		assert.False(t, ok, s.String())
	}
	assert.Equal(t, "!", CellState(9).String())
}

func TestStateAtOutOfBounds(t *testing.T) {
	b := newTestBoard(t, 2, 2)
	_, err := b.StateAt(Coord{2, 0})
	assert.ErrorIs(t, err, ErrOutOfBounds)
}
