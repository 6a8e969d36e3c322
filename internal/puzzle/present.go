package puzzle

// Class is the visual classification of a cell.
type Class int

const (
	ClassBlocked  Class = iota // Not part of any word
	ClassEmpty                 // Editable, nothing typed
	ClassFilled                // Editable, typed letter is not the expected one
	ClassCorrect               // Typed letter matches the expected one
	ClassHovered               // Belongs to the hovered word
	ClassSelected              // The selected cell
	ClassSuccess               // Success marker showing
	ClassError                 // Error marker showing
)

var classNames = map[Class]string{
	ClassBlocked:  "blocked",
	ClassEmpty:    "empty",
	ClassFilled:   "filled",
	ClassCorrect:  "correct",
	ClassHovered:  "hovered",
	ClassSelected: "selected",
	ClassSuccess:  "success",
	ClassError:    "error",
}

func (c Class) String() string {
	if n, ok := classNames[c]; ok {
		return n
	}
	return "unknown"
}

// Classify maps a cell to its style class. Precedence, highest first:
// feedback marker, selection, hovered word, per-cell correctness, then the
// plain editable/blocked colouring. Blocked cells are never highlighted.
func (s State) Classify(p Position) Class {
	cell := s.grid.At(p)
	if !cell.Editable {
		return ClassBlocked
	}

	switch s.feedback.Cells[p] {
	case MarkerSuccess:
		return ClassSuccess
	case MarkerError:
		return ClassError
	}

	if s.hasSelected && s.selected == p {
		return ClassSelected
	}
	if s.hasHovered && s.grid.Contains(p, s.hovered) {
		return ClassHovered
	}

	switch answer := s.answers.Get(p); {
	case answer == "":
		return ClassEmpty
	case answer == cell.Letter:
		return ClassCorrect
	default:
		return ClassFilled
	}
}
