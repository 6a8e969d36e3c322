package config

import (
	"errors"
	"fmt"

	"github.com/f3rmion/nosines/internal/puzzle"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks cfg before any grid is built. Field rules come from the
// struct tags on puzzle.Config and puzzle.Word; on top of those every word
// must fit the grid, use only Alphabet letters, have a unique id and agree
// with every crossing word on shared cells.
//
// All problems are reported together, wrapped in ErrInvalidPuzzle.
func Validate(cfg *puzzle.Config) error {
	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("%w: %v", ErrInvalidPuzzle, err)
		}
		problems := make([]error, 0, len(verrs))
		for _, fe := range verrs {
			problems = append(problems, fmt.Errorf("%s: failed %q (%v)", fe.Namespace(), fe.Tag(), fe.Value()))
		}
		return fmt.Errorf("%w: %w", ErrInvalidPuzzle, errors.Join(problems...))
	}

	var problems []error
	seen := make(map[int]bool, len(cfg.Words))
	type owner struct {
		letter string
		id     int
	}
	cells := make(map[puzzle.Position]owner)

	for _, w := range cfg.Words {
		if seen[w.ID] {
			problems = append(problems, fmt.Errorf("word %d: duplicate id", w.ID))
		}
		seen[w.ID] = true

		for i, letter := range w.Letters() {
			p := w.PositionAt(i)
			if !puzzle.IsLetter(letter) {
				problems = append(problems, fmt.Errorf("word %d (%s): letter %q is not an uppercase puzzle letter", w.ID, w.Text, letter))
			}
			if p.Row >= cfg.GridSize || p.Col >= cfg.GridSize {
				problems = append(problems, fmt.Errorf("word %d (%s): letter %d at %s is outside the %dx%d grid",
					w.ID, w.Text, i+1, p, cfg.GridSize, cfg.GridSize))
				continue
			}
			if prev, ok := cells[p]; ok && prev.letter != letter {
				problems = append(problems, fmt.Errorf("cell %s: word %d expects %q but word %d expects %q",
					p, prev.id, prev.letter, w.ID, letter))
				continue
			}
			cells[p] = owner{letter: letter, id: w.ID}
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidPuzzle, errors.Join(problems...))
	}
	return nil
}
