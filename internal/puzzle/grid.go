package puzzle

// Cell is one square of the grid.
type Cell struct {
	Letter   string // Expected letter, empty for unused cells
	WordIDs  []int  // Words passing through this cell, in list order
	Editable bool
}

// Grid is the N×N matrix derived from the word list. It is never mutated
// after BuildGrid returns.
type Grid struct {
	size  int
	cells [][]Cell
}

// BuildGrid lays every word onto a size×size grid. Letters falling outside
// the grid are skipped. When words disagree on a shared cell the later word
// in the list wins; config validation rejects such lists up front.
func BuildGrid(words []Word, size int) *Grid {
	if size < 0 {
		size = 0
	}
	cells := make([][]Cell, size)
	for r := range cells {
		cells[r] = make([]Cell, size)
	}

	g := &Grid{size: size, cells: cells}
	for _, w := range words {
		for i, letter := range w.Letters() {
			p := w.PositionAt(i)
			if !g.InBounds(p) {
				continue
			}
			c := &g.cells[p.Row][p.Col]
			c.Letter = letter
			c.WordIDs = append(c.WordIDs, w.ID)
			c.Editable = true
		}
	}
	return g
}

// Size returns the grid dimension.
func (g *Grid) Size() int {
	return g.size
}

// InBounds reports whether p lies inside the grid.
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Col >= 0 && p.Row < g.size && p.Col < g.size
}

// At returns the cell at p. Out-of-bounds positions yield an empty,
// non-editable cell.
func (g *Grid) At(p Position) Cell {
	if !g.InBounds(p) {
		return Cell{}
	}
	return g.cells[p.Row][p.Col]
}

// Editable reports whether p is an in-bounds cell owned by some word.
func (g *Grid) Editable(p Position) bool {
	return g.InBounds(p) && g.cells[p.Row][p.Col].Editable
}

// Contains reports whether the cell at p belongs to the word with id.
func (g *Grid) Contains(p Position, id int) bool {
	for _, wid := range g.At(p).WordIDs {
		if wid == id {
			return true
		}
	}
	return false
}

// NextEditable finds the first editable cell strictly after p in
// row-major order. It never wraps back to the start of the grid.
func (g *Grid) NextEditable(p Position) (Position, bool) {
	for r := p.Row; r < g.size; r++ {
		start := 0
		if r == p.Row {
			start = p.Col + 1
		}
		for c := start; c < g.size; c++ {
			if g.cells[r][c].Editable {
				return Position{Row: r, Col: c}, true
			}
		}
	}
	return Position{}, false
}

// Answers holds what the player has typed, indexed [row][col].
// An empty string means the cell is unfilled.
type Answers [][]string

// NewAnswers returns an all-empty answer grid of the given size.
func NewAnswers(size int) Answers {
	a := make(Answers, size)
	for r := range a {
		a[r] = make([]string, size)
	}
	return a
}

// Get returns the answer at p, or "" when p is out of bounds.
func (a Answers) Get(p Position) string {
	if p.Row < 0 || p.Row >= len(a) || p.Col < 0 || p.Col >= len(a[p.Row]) {
		return ""
	}
	return a[p.Row][p.Col]
}

// With returns a copy of a with p set to v. Only the touched row is
// reallocated; other rows are shared since answers are never written
// in place.
func (a Answers) With(p Position, v string) Answers {
	if p.Row < 0 || p.Row >= len(a) || p.Col < 0 || p.Col >= len(a[p.Row]) {
		return a
	}
	cp := make(Answers, len(a))
	copy(cp, a)
	row := make([]string, len(a[p.Row]))
	copy(row, a[p.Row])
	row[p.Col] = v
	cp[p.Row] = row
	return cp
}
