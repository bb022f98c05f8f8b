package mines

import (
	"math/bits"
	"slices"
)

/*
 * The deducer works on what the player can see. It keeps a collection
 * of small localised sets, each a 3x3 window of hidden cells with a
 * known mine count, and derives new sets from overlapping pairs until
 * some set is all mines or all clear.
 *
 * A window is stored as its top-left anchor plus a 9-bit mask read
 * row by row:
 *
 *	  1   2   4
 *	  8  16  32
 *	 64 128 256
 */

// Deduction lists the hidden cells whose content follows from the visible
// numbers and the total mine count.
type Deduction struct {
	Safe  []Coord
	Mines []Coord
}

const (
	leftCol   = 1 | 8 | 64
	rightCol  = 4 | 32 | 256
	topRow    = 1 | 2 | 4
	bottomRow = 64 | 128 | 256
	fullMask  = 511
)

type set struct {
	anchor  Coord
	mask    uint16
	mines   int
	removed bool
}

func (s *set) size() int {
	return bits.OnesCount16(s.mask)
}

type setKey struct {
	anchor Coord
	mask   uint16
}

type setStore struct {
	sets map[setKey]*set
	todo []*set
}

func newSetStore() *setStore {
	return &setStore{sets: make(map[setKey]*set)}
}

// add normalises the window so that the anchor is the bounding corner and
// queues the set unless it is already known.
func (ss *setStore) add(anchor Coord, mask uint16, mines int) {
	if mask == 0 {
		panic(AssertionError{"empty set"})
	}
	for mask&leftCol == 0 {
		mask >>= 1
		anchor.Col++
	}
	for mask&topRow == 0 {
		mask >>= 3
		anchor.Row++
	}

	key := setKey{anchor, mask}
	if _, ok := ss.sets[key]; ok {
		return
	}
	s := &set{anchor: anchor, mask: mask, mines: mines}
	ss.sets[key] = s
	ss.todo = append(ss.todo, s)
}

func (ss *setStore) remove(s *set) {
	delete(ss.sets, setKey{s.anchor, s.mask})
	s.removed = true
}

func (ss *setStore) next() *set {
	for len(ss.todo) > 0 {
		s := ss.todo[0]
		ss.todo = ss.todo[1:]
		if !s.removed {
			return s
		}
	}
	return nil
}

// overlap returns every stored set sharing a cell with the given window,
// in anchor then mask order.
func (ss *setStore) overlap(anchor Coord, mask uint16) []*set {
	var ret []*set
	for _, s := range ss.sets {
		if munge(anchor, mask, s.anchor, s.mask, false) != 0 {
			ret = append(ret, s)
		}
	}
	slices.SortFunc(ret, func(a, b *set) int {
		switch {
		case a.anchor.Row != b.anchor.Row:
			return a.anchor.Row - b.anchor.Row
		case a.anchor.Col != b.anchor.Col:
			return a.anchor.Col - b.anchor.Col
		default:
			return int(a.mask) - int(b.mask)
		}
	})
	return ret
}

// munge returns the first window's mask intersected with the second, or
// with its complement when diff is set.
func munge(a1 Coord, mask1 uint16, a2 Coord, mask2 uint16, diff bool) uint16 {
	if absDiff(a2.Col, a1.Col) >= 3 || absDiff(a2.Row, a1.Row) >= 3 {
		mask2 = 0
	} else {
		for ; a2.Col > a1.Col; a2.Col-- {
			mask2 = (mask2 &^ rightCol) << 1
		}
		for ; a2.Col < a1.Col; a2.Col++ {
			mask2 = (mask2 &^ leftCol) >> 1
		}
		for ; a2.Row > a1.Row; a2.Row-- {
			mask2 = (mask2 &^ bottomRow) << 3
		}
		for ; a2.Row < a1.Row; a2.Row++ {
			mask2 = (mask2 &^ topRow) >> 3
		}
	}
	if diff {
		mask2 ^= fullMask
	}
	return mask1 & mask2
}

type knowledge int8

const (
	hidden knowledge = iota
	knownClear
	knownMine
)

type deducer struct {
	rows, cols int
	grid       Grid
	know       []knowledge
	queue      []int /* cells that just became known */
	ss         *setStore
}

func (d *deducer) contains(c Coord) bool {
	return 0 <= c.Row && c.Row < d.rows && 0 <= c.Col && c.Col < d.cols
}

// learn marks every hidden cell of the window as a mine or as clear.
func (d *deducer) learn(anchor Coord, mask uint16, mine bool) {
	for bit := range 9 {
		if mask&(1<<bit) == 0 {
			continue
		}
		c := Coord{anchor.Row + bit/3, anchor.Col + bit%3}
		if !d.contains(c) {
			panic(AssertionError{"set reaches outside the board"})
		}
		i := c.Row*d.cols + c.Col
		if d.know[i] != hidden {
			continue
		}
		if mine {
			d.know[i] = knownMine
		} else {
			d.know[i] = knownClear
		}
		d.queue = append(d.queue, i)
	}
}

// settle turns a newly known cell into a set when it shows a number and
// strips it out of every set that still counts it as hidden.
func (d *deducer) settle(i int) {
	c := Coord{i / d.cols, i % d.cols}

	if n, ok := d.grid[i].Number(); ok {
		var mask uint16
		for bit := range 9 {
			nc := Coord{c.Row - 1 + bit/3, c.Col - 1 + bit%3}
			if nc == c || !d.contains(nc) {
				continue
			}
			switch d.know[nc.Row*d.cols+nc.Col] {
			case knownMine:
				n--
			case hidden:
				mask |= 1 << bit
			}
		}
		if mask != 0 {
			d.ss.add(Coord{c.Row - 1, c.Col - 1}, mask, n)
		}
	}

	for _, s := range d.ss.overlap(c, 1) {
		mask := munge(s.anchor, s.mask, c, 1, true)
		mines := s.mines
		if d.know[i] == knownMine {
			mines--
		}
		if mask != 0 {
			d.ss.add(s.anchor, mask, mines)
		}
		d.ss.remove(s)
	}
}

// examine tries the local rules on one set: all clear, all mines, and the
// comparisons with each overlapping set.
func (d *deducer) examine(s *set) {
	if s.mines == 0 || s.mines == s.size() {
		d.learn(s.anchor, s.mask, s.mines != 0)
		return
	}

	for _, s2 := range d.ss.overlap(s.anchor, s.mask) {
		if s2 == s {
			continue
		}
		/*
		 * The wings are the parts of each set outside the other. If
		 * one set has as many extra mines as its wing has cells, its
		 * wing is all mines and the other wing is all clear.
		 */
		swing := munge(s.anchor, s.mask, s2.anchor, s2.mask, true)
		s2wing := munge(s2.anchor, s2.mask, s.anchor, s.mask, true)
		swc := bits.OnesCount16(swing)
		s2wc := bits.OnesCount16(s2wing)

		if swc == s.mines-s2.mines || s2wc == s2.mines-s.mines {
			if swing != 0 {
				d.learn(s.anchor, swing, swc == s.mines-s2.mines)
			}
			if s2wing != 0 {
				d.learn(s2.anchor, s2wing, s2wc == s2.mines-s.mines)
			}
			continue
		}

		/*
		 * Failing that, a subset splits the larger set's count between
		 * itself and the rest.
		 */
		if swc == 0 && s2wc != 0 {
			d.ss.add(s2.anchor, s2wing, s2.mines-s.mines)
		} else if s2wc == 0 && swc != 0 {
			d.ss.add(s.anchor, swing, s.mines-s2.mines)
		}
	}
}

// global applies the total mine count: once every remaining mine is known
// the rest is clear, and when the hidden cells number exactly the mines
// left they are all mines.
func (d *deducer) global(total int) bool {
	left, cells := total, 0
	for _, k := range d.know {
		switch k {
		case knownMine:
			left--
		case hidden:
			cells++
		}
	}
	if cells == 0 || (left != 0 && left != cells) {
		return false
	}
	for i, k := range d.know {
		if k == hidden {
			d.learn(Coord{i / d.cols, i % d.cols}, 1, left != 0)
		}
	}
	return true
}

// Deduce works out which hidden cells of a player grid are certainly safe
// and which are certainly mines. Flags are not trusted: a flagged cell is
// treated as hidden. A negative total skips the mine-count rule.
func Deduce(grid Grid, rows, cols, total int) Deduction {
	d := &deducer{
		rows: rows,
		cols: cols,
		grid: grid,
		know: make([]knowledge, len(grid)),
		ss:   newSetStore(),
	}
	for i, s := range grid {
		switch {
		case s == UnflaggedMine, s == ExplodedMine, s == CorrectlyFlagged:
			d.know[i] = knownMine
			d.queue = append(d.queue, i)
		case s == FalselyFlagged:
			d.know[i] = knownClear
			d.queue = append(d.queue, i)
		default:
			if _, ok := s.Number(); ok {
				d.know[i] = knownClear
				d.queue = append(d.queue, i)
			}
		}
	}
	initial := slices.Clone(d.know)

	for {
		if len(d.queue) > 0 {
			i := d.queue[0]
			d.queue = d.queue[1:]
			d.settle(i)
			continue
		}
		if s := d.ss.next(); s != nil {
			d.examine(s)
			continue
		}
		if total >= 0 && d.global(total) {
			continue
		}
		break
	}

	var ded Deduction
	for i, k := range d.know {
		if initial[i] != hidden {
			continue
		}
		c := Coord{i / cols, i % cols}
		switch k {
		case knownClear:
			ded.Safe = append(ded.Safe, c)
		case knownMine:
			ded.Mines = append(ded.Mines, c)
		}
	}
	return ded
}

// Hint returns a hidden cell the player can prove safe from what is on
// screen, preferring cells next to revealed numbers. It reports false
// before the first reveal, once the game is decided, or when no cell can
// be proven safe.
func (b *Board) Hint() (Coord, bool) {
	if b.state.FirstReveal || b.state.Over() {
		return Coord{}, false
	}
	ded := Deduce(b.PlayerGrid(), b.settings.Rows, b.settings.Cols, b.settings.Mines)
	if len(ded.Safe) == 0 {
		return Coord{}, false
	}
	for _, c := range ded.Safe {
		for n := range b.neighbors(c) {
			if b.cell(n).Revealed {
				return c, true
			}
		}
	}
	return ded.Safe[0], true
}
