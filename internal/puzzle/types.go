// Package puzzle provides the crossword core: grid construction from word
// placements, the input reducer, completion checking and cell classification.
package puzzle

import "fmt"

// Direction is the orientation of a word on the grid.
type Direction string

const (
	Across Direction = "across" // Column increases with each letter
	Down   Direction = "down"   // Row increases with each letter
)

// Arrow returns the glyph shown next to a clue number.
func (d Direction) Arrow() string {
	if d == Down {
		return "↓"
	}
	return "→"
}

// Position is a (row, col) grid coordinate.
type Position struct {
	Row int
	Col int
}

func (p Position) String() string {
	return fmt.Sprintf("%d-%d", p.Row, p.Col)
}

// Word is a single crossword entry. Words are immutable once loaded.
type Word struct {
	ID        int       `yaml:"id" validate:"required,gt=0"`
	Text      string    `yaml:"word" validate:"required"`
	Clue      string    `yaml:"clue" validate:"required"`
	Row       int       `yaml:"row" validate:"gte=0"`
	Col       int       `yaml:"col" validate:"gte=0"`
	Direction Direction `yaml:"direction" validate:"required,oneof=across down"`
	Rule      string    `yaml:"rule"` // Orthographic rule shown on hover
}

// Letters returns the word split into single-letter strings.
// Text is indexed by rune so nasal vowels like Ą count as one letter.
func (w Word) Letters() []string {
	runes := []rune(w.Text)
	letters := make([]string, len(runes))
	for i, r := range runes {
		letters[i] = string(r)
	}
	return letters
}

// Len returns the number of letters in the word.
func (w Word) Len() int {
	return len([]rune(w.Text))
}

// PositionAt returns the grid position of the i-th letter.
func (w Word) PositionAt(i int) Position {
	if w.Direction == Down {
		return Position{Row: w.Row + i, Col: w.Col}
	}
	return Position{Row: w.Row, Col: w.Col + i}
}

// Positions returns the positions of every letter, including any that fall
// outside the grid.
func (w Word) Positions() []Position {
	n := w.Len()
	out := make([]Position, n)
	for i := 0; i < n; i++ {
		out[i] = w.PositionAt(i)
	}
	return out
}

// Config is the injected puzzle definition.
type Config struct {
	Title    string `yaml:"title,omitempty"`
	Subtitle string `yaml:"subtitle,omitempty"`
	GridSize int    `yaml:"grid_size" validate:"gte=1,lte=40"`
	Words    []Word `yaml:"words" validate:"required,min=1,dive"`
}

// WordByID returns the word with the given id.
func (c *Config) WordByID(id int) (Word, bool) {
	for _, w := range c.Words {
		if w.ID == id {
			return w, true
		}
	}
	return Word{}, false
}
