package mines

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type FirstClickPolicy uint8

const (
	// None lets any cell, the first one included, hold a mine.
	None FirstClickPolicy = iota
	// SafeCell keeps the first revealed cell free of mines.
	SafeCell
	// ClearZone keeps the 3x3 block around the first revealed cell free.
	ClearZone
)

func (p FirstClickPolicy) String() string {
	switch p {
	case None:
		return "none"
	case SafeCell:
		return "safe"
	case ClearZone:
		return "clear"
	default:
		return "policy(" + strconv.Itoa(int(p)) + ")"
	}
}

func ParsePolicy(s string) (FirstClickPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "off":
		return None, nil
	case "safe", "safe-cell", "safecell":
		return SafeCell, nil
	case "clear", "clear-zone", "clearzone", "3x3":
		return ClearZone, nil
	default:
		return None, &SettingsError{Field: "policy", Reason: fmt.Sprintf("unknown value %q", s)}
	}
}

// [FirstClickPolicy] implements [encoding.TextMarshaler]
func (p FirstClickPolicy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *FirstClickPolicy) UnmarshalText(text []byte) error {
	v, err := ParsePolicy(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// excludes reports whether c must stay free of mines when the first reveal
// happens at guarantee.
func (p FirstClickPolicy) excludes(guarantee, c Coord) bool {
	switch p {
	case SafeCell:
		return c == guarantee
	case ClearZone:
		return absDiff(c.Row, guarantee.Row) <= 1 && absDiff(c.Col, guarantee.Col) <= 1
	default:
		return false
	}
}

// MaxCells bounds the size of a board.
const MaxCells = 1 << 24

type Settings struct {
	Rows, Cols, Mines int
	Policy            FirstClickPolicy
	QuestionMode      bool
	Seed              *uint64 /* nil: drawn when the board is created */
}

func (s Settings) Cells() int {
	return s.Rows * s.Cols
}

func (s Settings) WithSeed(seed uint64) Settings {
	s.Seed = &seed
	return s
}

func (s Settings) Validate() error {
	switch {
	case s.Rows < 1:
		return &SettingsError{Field: "rows", Reason: "must be positive"}
	case s.Cols < 1:
		return &SettingsError{Field: "cols", Reason: "must be positive"}
	case s.Rows > MaxCells/s.Cols:
		return &SettingsError{
			Field:  "rows",
			Reason: fmt.Sprintf("times cols must not exceed %d cells", MaxCells),
		}
	case s.Mines < 0:
		return &SettingsError{Field: "mines", Reason: "must not be negative"}
	case s.Mines >= s.Cells():
		return &SettingsError{
			Field:  "mines",
			Reason: fmt.Sprintf("must be less than the cell count %d", s.Cells()),
		}
	case s.Policy > ClearZone:
		return &SettingsError{Field: "policy", Reason: "unknown value " + s.Policy.String()}
	}
	return nil
}

// Limits are the bounds an options dialog enforces before settings reach
// the engine.
type Limits struct {
	MinSize, MaxSize   int
	MinMines, MaxMines int
	MaxDensity         float64
	MaxSeed            uint64
}

var DefaultLimits = Limits{
	MinSize:    9,
	MaxSize:    60,
	MinMines:   9,
	MaxMines:   499,
	MaxDensity: 0.4,
	MaxSeed:    math.MaxUint32 - 1,
}

// MaxMinesFor is the highest mine count allowed on a rows x cols board.
func (l Limits) MaxMinesFor(rows, cols int) int {
	n := int(l.MaxDensity * float64(rows*cols))
	if l.MaxMines > 0 {
		n = min(n, l.MaxMines)
	}
	return n
}

// Clamp pulls every field into the range allowed by l. The density cap is
// applied last, so it wins over MinMines on tiny boards.
func (s Settings) Clamp(l Limits) Settings {
	s.Rows = clamp(s.Rows, l.MinSize, l.MaxSize)
	s.Cols = clamp(s.Cols, l.MinSize, l.MaxSize)
	s.Mines = clamp(s.Mines, l.MinMines, l.MaxMines)
	if maxMines := l.MaxMinesFor(s.Rows, s.Cols); s.Mines > maxMines {
		s.Mines = maxMines
	}
	if s.Seed != nil && *s.Seed > l.MaxSeed {
		s = s.WithSeed(l.MaxSeed)
	}
	return s
}

// String encodes the settings as rows:cols:mines:policy[:q][#seed].
func (s Settings) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d:%d:%d:%s", s.Rows, s.Cols, s.Mines, s.Policy)
	if s.QuestionMode {
		b.WriteString(":q")
	}
	if s.Seed != nil {
		fmt.Fprintf(&b, "#%d", *s.Seed)
	}
	return b.String()
}

func ParseSettings(str string) (Settings, error) {
	var s Settings

	body, seedStr, hasSeed := strings.Cut(strings.TrimSpace(str), "#")
	parts := strings.Split(body, ":")
	if len(parts) < 3 || len(parts) > 5 {
		return s, fmt.Errorf(`%w: malformed descriptor "%s"`, ErrInvalidSettings, str)
	}

	fields := []*int{&s.Rows, &s.Cols, &s.Mines}
	names := []string{"rows", "cols", "mines"}
	for i, field := range fields {
		n, err := strconv.Atoi(parts[i])
		if err != nil {
			return s, &SettingsError{Field: names[i], Reason: fmt.Sprintf("not an integer: %q", parts[i])}
		}
		*field = n
	}

	if len(parts) > 3 {
		policy, err := ParsePolicy(parts[3])
		if err != nil {
			return s, err
		}
		s.Policy = policy
	}
	if len(parts) > 4 {
		if parts[4] != "q" {
			return s, &SettingsError{Field: "question mode", Reason: fmt.Sprintf("unknown flag %q", parts[4])}
		}
		s.QuestionMode = true
	}

	if hasSeed {
		seed, err := strconv.ParseUint(seedStr, 10, 64)
		if err != nil {
			return s, &SettingsError{Field: "seed", Reason: fmt.Sprintf("not an unsigned integer: %q", seedStr)}
		}
		s.Seed = &seed
	}

	return s, s.Validate()
}
