package puzzle

// Key identifies a keyboard key relevant to the puzzle.
type Key int

const (
	KeyOther Key = iota
	KeyRune
	KeyBackspace
	KeyDelete
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// Event is an input the reducer understands.
type Event interface {
	event()
}

// Click is a pointer press on a grid cell.
type Click struct {
	Pos Position
}

// KeyPress is a key stroke. Text carries the typed character for KeyRune.
type KeyPress struct {
	Key  Key
	Text string
}

// HoverWord marks a word as hovered, or unsets hover when Clear is true.
type HoverWord struct {
	ID    int
	Clear bool
}

// ClearFeedback expires the overlay of the given generation.
type ClearFeedback struct {
	Generation uint64
}

// Reset wipes answers, selection and feedback. Hover is pointer state and
// survives.
type Reset struct{}

func (Click) event()         {}
func (KeyPress) event()      {}
func (HoverWord) event()     {}
func (ClearFeedback) event() {}
func (Reset) event()         {}

// Effect describes what the caller has to do after a transition.
type Effect struct {
	// Handled is true when the event was recognised and its default
	// behaviour (scrolling, focus moves) should be suppressed.
	Handled bool
	// ScheduleClear is non-zero when a ClearFeedback for this generation
	// should be delivered after the feedback delay.
	ScheduleClear uint64
	// Report is set when a completion check ran.
	Report *Report
	// Stale is true for a ClearFeedback that was superseded.
	Stale bool
}

// Apply returns the state that results from ev.
func (s State) Apply(ev Event) (State, Effect) {
	switch ev := ev.(type) {
	case Click:
		return s.click(ev.Pos)
	case KeyPress:
		return s.key(ev)
	case HoverWord:
		if ev.Clear {
			s.hovered, s.hasHovered = 0, false
		} else {
			s.hovered, s.hasHovered = ev.ID, true
		}
		return s, Effect{Handled: true}
	case ClearFeedback:
		if ev.Generation != s.feedback.Generation {
			return s, Effect{Stale: true}
		}
		s.feedback = Feedback{Generation: s.feedback.Generation}
		return s, Effect{Handled: true}
	case Reset:
		next := New(s.cfg)
		next.hovered, next.hasHovered = s.hovered, s.hasHovered
		next.feedback.Generation = s.feedback.Generation + 1
		return next, Effect{Handled: true}
	}
	return s, Effect{}
}

func (s State) click(p Position) (State, Effect) {
	if !s.grid.Editable(p) {
		return s, Effect{}
	}
	s.selected, s.hasSelected = p, true
	return s, Effect{Handled: true}
}

func (s State) key(ev KeyPress) (State, Effect) {
	if !s.hasSelected {
		return s, Effect{}
	}
	cur := s.selected

	switch ev.Key {
	case KeyRune:
		letter, ok := NormalizeLetter(ev.Text)
		if !ok {
			return s, Effect{}
		}
		var eff Effect
		s.answers = s.answers.With(cur, letter)
		s, eff = s.recheck(true)
		if next, ok := s.grid.NextEditable(cur); ok {
			s.selected = next
		}
		return s, eff

	case KeyBackspace, KeyDelete:
		s.answers = s.answers.With(cur, "")
		s.feedback = Feedback{Generation: s.feedback.Generation + 1}
		return s.recheck(false)

	case KeyUp, KeyDown, KeyLeft, KeyRight:
		next := step(cur, ev.Key, s.grid.Size())
		if s.grid.Editable(next) {
			s.selected = next
		}
		return s, Effect{Handled: true}
	}
	return s, Effect{}
}

// step moves one cell in the given direction, clamped to the grid.
func step(p Position, k Key, size int) Position {
	switch k {
	case KeyUp:
		p.Row = max(0, p.Row-1)
	case KeyDown:
		p.Row = min(size-1, p.Row+1)
	case KeyLeft:
		p.Col = max(0, p.Col-1)
	case KeyRight:
		p.Col = min(size-1, p.Col+1)
	}
	return p
}

// recheck recomputes the completion set. With withFeedback, every attempted
// word gets a success or error marker on all its cells and a verdict, and
// the overlay moves to a new generation.
func (s State) recheck(withFeedback bool) (State, Effect) {
	rep := Check(s.cfg.Words, s.grid, s.answers)
	s.correct = rep.Correct
	eff := Effect{Handled: true, Report: &rep}
	if !withFeedback {
		return s, eff
	}

	cells := make(map[Position]Marker)
	words := make(map[int]Verdict, len(s.feedback.Words))
	for id, v := range s.feedback.Words {
		words[id] = v
	}
	for _, w := range s.cfg.Words {
		if !rep.Attempted.Has(w.ID) {
			continue
		}
		marker, verdict := MarkerError, VerdictIncorrect
		if rep.Correct.Has(w.ID) {
			marker, verdict = MarkerSuccess, VerdictCorrect
		}
		for _, p := range w.Positions() {
			cells[p] = marker
		}
		words[w.ID] = verdict
	}

	gen := s.feedback.Generation
	if len(rep.Attempted) > 0 {
		gen++
		eff.ScheduleClear = gen
	}
	s.feedback = Feedback{Cells: cells, Words: words, Generation: gen}
	return s, eff
}
