package puzzle

// Marker is a transient per-cell animation.
type Marker string

const (
	MarkerSuccess Marker = "success"
	MarkerError   Marker = "error"
)

// Verdict is the transient per-word feedback flag.
type Verdict string

const (
	VerdictCorrect   Verdict = "correct"
	VerdictIncorrect Verdict = "incorrect"
)

// Feedback is the short-lived overlay produced by a completion check.
// Generation increases whenever a new overlay is produced or the overlay
// is wiped, so a pending clear for an older generation can be discarded.
type Feedback struct {
	Cells      map[Position]Marker
	Words      map[int]Verdict
	Generation uint64
}

// Active reports whether any marker or verdict is showing.
func (f Feedback) Active() bool {
	return len(f.Cells) > 0 || len(f.Words) > 0
}

// State is an immutable snapshot of a puzzle in play. Every transition goes
// through Apply, which returns a new State and leaves the receiver intact.
type State struct {
	cfg     *Config
	grid    *Grid
	answers Answers

	selected    Position
	hasSelected bool
	hovered     int
	hasHovered  bool

	correct  WordSet
	feedback Feedback
}

// New builds the grid for cfg and returns the initial state: empty answers,
// no selection, no hover.
func New(cfg *Config) State {
	return State{
		cfg:      cfg,
		grid:     BuildGrid(cfg.Words, cfg.GridSize),
		answers:  NewAnswers(cfg.GridSize),
		correct:  WordSet{},
		feedback: Feedback{},
	}
}

// Config returns the puzzle definition.
func (s State) Config() *Config { return s.cfg }

// Grid returns the static grid.
func (s State) Grid() *Grid { return s.grid }

// Words returns the word list.
func (s State) Words() []Word { return s.cfg.Words }

// Answer returns the player's letter at p.
func (s State) Answer(p Position) string { return s.answers.Get(p) }

// Answers returns the answer grid. Callers must not modify it.
func (s State) Answers() Answers { return s.answers }

// Selected returns the selected cell, if any.
func (s State) Selected() (Position, bool) { return s.selected, s.hasSelected }

// Hovered returns the hovered word id, if any.
func (s State) Hovered() (int, bool) { return s.hovered, s.hasHovered }

// Correct returns the completion set.
func (s State) Correct() WordSet { return s.correct }

// Feedback returns the current transient overlay.
func (s State) Feedback() Feedback { return s.feedback }

// Solved reports whether every word is correctly filled.
func (s State) Solved() bool {
	return len(s.correct) == len(s.cfg.Words)
}

// Progress returns the number of correct words and the total.
func (s State) Progress() (int, int) {
	return len(s.correct), len(s.cfg.Words)
}
