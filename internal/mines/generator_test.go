package mines

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countMines(b *Board) (n int) {
	for _, cell := range b.All() {
		if cell.Mine {
			n++
		}
	}
	return
}

func naiveAdjacent(b *Board, row, col int) (n int) {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			r, c := row+dr, col+dc
			if (dr == 0 && dc == 0) || r < 0 || c < 0 || r >= b.RowCount() || c >= b.ColCount() {
				continue
			}
			if b.cells[r*b.ColCount()+c].Mine {
				n++
			}
		}
	}
	return
}

func TestGenerateMines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		settings Settings
	}{
		{name: "9x9(10)", settings: Beginner},
		{name: "16x16(40)", settings: Intermediate},
		{name: "16x30(99)", settings: Expert},
		{name: "9x9(35) clear", settings: Settings{Rows: 9, Cols: 9, Mines: 35, Policy: ClearZone}},
		{name: "5x5(24) safe", settings: Settings{Rows: 5, Cols: 5, Mines: 24, Policy: SafeCell}},
		{name: "4x4(15) none", settings: Settings{Rows: 4, Cols: 4, Mines: 15, Policy: None}},
		{name: "1x1(0)", settings: Settings{Rows: 1, Cols: 1, Mines: 0, Policy: ClearZone}},
		{name: "1x10(3) clear", settings: Settings{Rows: 1, Cols: 10, Mines: 3, Policy: ClearZone}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			b, err := New(test.settings.WithSeed(1))
			require.NoError(t, err)

			for row := range b.RowCount() {
				for col := range b.ColCount() {
					guarantee := Coord{row, col}
					require.NoError(t, b.GenerateMines(guarantee))

					assert.Equal(t, test.settings.Mines, countMines(b), "mine count @ %s", guarantee)
					for c, cell := range b.All() {
						require.Equal(t, naiveAdjacent(b, c.Row, c.Col), cell.Adjacent,
							"adjacent count of %s @ %s", c, guarantee)
					}
				}
			}
		})
	}
}

func TestGenerateMinesPolicies(t *testing.T) {
	for seed := range uint64(50) {
		guarantee := Coord{int(seed % 9), int(seed / 9 % 9)}

		safe, err := New(Settings{Rows: 9, Cols: 9, Mines: 70, Policy: SafeCell}.WithSeed(seed))
		require.NoError(t, err)
		require.NoError(t, safe.GenerateMines(guarantee))
		assert.False(t, safe.cell(guarantee).Mine, "safe cell @ %s seed %d", guarantee, seed)

		cleared, err := New(Settings{Rows: 9, Cols: 9, Mines: 60, Policy: ClearZone}.WithSeed(seed))
		require.NoError(t, err)
		require.NoError(t, cleared.GenerateMines(guarantee))
		assert.Equal(t, 60, countMines(cleared))
		assert.False(t, cleared.cell(guarantee).Mine)
		assert.Zero(t, cleared.cell(guarantee).Adjacent, "clear zone @ %s seed %d", guarantee, seed)
		for n := range cleared.neighbors(guarantee) {
			assert.False(t, cleared.cell(n).Mine, "clear zone neighbor %s seed %d", n, seed)
		}
	}
}

func TestGenerateMinesNonePolicyMayMineFirstCell(t *testing.T) {
	// 8 mines on 9 cells: with no policy the guarantee cell is hit for
	// some seed.
	hit := false
	for seed := range uint64(100) {
		b, err := New(Settings{Rows: 3, Cols: 3, Mines: 8, Policy: None}.WithSeed(seed))
		require.NoError(t, err)
		require.NoError(t, b.GenerateMines(Coord{1, 1}))
		if b.cell(Coord{1, 1}).Mine {
			hit = true
			break
		}
	}
	assert.True(t, hit)
}

func TestGenerateMinesClearZoneFallback(t *testing.T) {
	b, err := New(Settings{Rows: 3, Cols: 3, Mines: 8, Policy: ClearZone}.WithSeed(3))
	require.NoError(t, err)
	require.NoError(t, b.GenerateMines(Coord{1, 1}))

	assert.Equal(t, 8, countMines(b))
	assert.False(t, b.cell(Coord{1, 1}).Mine)
	assert.Equal(t, 8, b.cell(Coord{1, 1}).Adjacent)
}

func TestGenerateMinesIsDeterministic(t *testing.T) {
	layout := func(seed uint64) string {
		b, err := New(Intermediate.WithSeed(seed))
		require.NoError(t, err)
		require.NoError(t, b.GenerateMines(Coord{8, 8}))
		return fmt.Sprint(snapshot(b))
	}

	assert.Equal(t, layout(2189302816385926607), layout(2189302816385926607))
	assert.NotEqual(t, layout(1), layout(2))
}

func TestGenerateMinesReplacesLayout(t *testing.T) {
	b, err := New(Settings{Rows: 6, Cols: 6, Mines: 10, Policy: SafeCell}.WithSeed(5))
	require.NoError(t, err)

	require.NoError(t, b.GenerateMines(Coord{0, 0}))
	require.NoError(t, b.GenerateMines(Coord{5, 5}))
	assert.Equal(t, 10, countMines(b))
	assert.False(t, b.cell(Coord{5, 5}).Mine)
}

func TestGenerateMinesIsKeptByReveal(t *testing.T) {
	for seed := range uint64(50) {
		b, err := New(Settings{Rows: 9, Cols: 9, Mines: 30, Policy: SafeCell}.WithSeed(seed))
		require.NoError(t, err)
		require.NoError(t, b.GenerateMines(Coord{0, 0}))
		assert.False(t, b.State().FirstReveal)
		before := snapshot(b)

		state := reveal(t, b, Coord{8, 8})
		assert.Equal(t, before[b.index(Coord{8, 8})].Mine, state.Lost, "seed %d", seed)
		for i, cell := range b.cells {
			require.Equal(t, before[i].Mine, cell.Mine, "%s seed %d", b.coord(i), seed)
			require.Equal(t, before[i].Adjacent, cell.Adjacent, "%s seed %d", b.coord(i), seed)
		}
	}
}

func TestGenerateMinesRefusedOnceStarted(t *testing.T) {
	for seed := range uint64(50) {
		b, err := New(Settings{Rows: 9, Cols: 9, Mines: 30, Policy: SafeCell}.WithSeed(seed))
		require.NoError(t, err)
		reveal(t, b, Coord{8, 8})
		before := snapshot(b)

		assert.ErrorIs(t, b.GenerateMines(Coord{0, 0}), ErrGameStarted, "seed %d", seed)
		assert.Equal(t, before, snapshot(b), "seed %d", seed)
	}

	b, err := New(Beginner.WithSeed(1))
	require.NoError(t, err)
	b.Forfeit()
	assert.ErrorIs(t, b.GenerateMines(Coord{4, 4}), ErrGameStarted)
	assert.Zero(t, countMines(b))
}

func TestGenerateMinesOutOfBounds(t *testing.T) {
	b, err := New(Beginner)
	require.NoError(t, err)
	require.ErrorIs(t, b.GenerateMines(Coord{9, 0}), ErrOutOfBounds)
	assert.Zero(t, countMines(b))
}
