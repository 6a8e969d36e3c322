package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testConfig is a corner of the built-in puzzle: SĄVOKA runs down column 3
// crossing DRĄSA at its S and ĮKA at its K.
func testConfig() *Config {
	return &Config{
		GridSize: 15,
		Words: []Word{
			{ID: 1, Text: "DRĄSA", Clue: "Nebijojimas, narsa", Row: 0, Col: 0, Direction: Across},
			{ID: 3, Text: "ĮKA", Clue: "Paprotys, įpratimas", Row: 4, Col: 2, Direction: Across},
			{ID: 5, Text: "SĄVOKA", Clue: "Supratimas, samprata", Row: 0, Col: 3, Direction: Down},
		},
	}
}

func apply(t *testing.T, s State, ev Event) State {
	t.Helper()
	next, _ := s.Apply(ev)
	return next
}

func typeWord(t *testing.T, s State, start Position, letters ...string) State {
	t.Helper()
	s, _ = s.Apply(Click{Pos: start})
	for _, l := range letters {
		var eff Effect
		s, eff = s.Apply(KeyPress{Key: KeyRune, Text: l})
		require.True(t, eff.Handled, "letter %q should be handled", l)
	}
	return s
}

func TestBuildGridPlacesEveryLetter(t *testing.T) {
	cfg := testConfig()
	g := BuildGrid(cfg.Words, cfg.GridSize)

	require.Equal(t, 15, g.Size())
	for _, w := range cfg.Words {
		for i, letter := range w.Letters() {
			c := g.At(w.PositionAt(i))
			assert.True(t, c.Editable, "word %d letter %d", w.ID, i)
			assert.Equal(t, letter, c.Letter, "word %d letter %d", w.ID, i)
			assert.Contains(t, c.WordIDs, w.ID)
		}
	}

	assert.False(t, g.Editable(Position{Row: 14, Col: 14}))
	assert.Equal(t, "", g.At(Position{Row: 14, Col: 14}).Letter)
}

func TestBuildGridSharedCell(t *testing.T) {
	cfg := testConfig()
	g := BuildGrid(cfg.Words, cfg.GridSize)

	top := g.At(Position{Row: 0, Col: 3})
	assert.Equal(t, "S", top.Letter)
	assert.Equal(t, []int{1, 5}, top.WordIDs)

	k := g.At(Position{Row: 4, Col: 3})
	assert.Equal(t, "K", k.Letter)
	assert.Equal(t, []int{3, 5}, k.WordIDs)
}

func TestBuildGridConflictLastWriteWins(t *testing.T) {
	words := []Word{
		{ID: 1, Text: "DRĄSA", Row: 0, Col: 1, Direction: Across},
		{ID: 5, Text: "SĄVOKA", Row: 0, Col: 1, Direction: Down},
	}
	g := BuildGrid(words, 15)
	assert.Equal(t, "S", g.At(Position{Row: 0, Col: 1}).Letter)

	words[0], words[1] = words[1], words[0]
	g = BuildGrid(words, 15)
	assert.Equal(t, "D", g.At(Position{Row: 0, Col: 1}).Letter)
}

func TestBuildGridSkipsOutOfBounds(t *testing.T) {
	words := []Word{{ID: 1, Text: "ŽĄSIS", Row: 1, Col: 2, Direction: Across}}
	g := BuildGrid(words, 4)

	assert.True(t, g.Editable(Position{Row: 1, Col: 2}))
	assert.True(t, g.Editable(Position{Row: 1, Col: 3}))
	assert.False(t, g.InBounds(Position{Row: 1, Col: 4}))
	assert.False(t, g.Editable(Position{Row: 1, Col: 4}))
}

func TestBuildGridIsDeterministic(t *testing.T) {
	cfg := testConfig()
	assert.Equal(t, BuildGrid(cfg.Words, cfg.GridSize), BuildGrid(cfg.Words, cfg.GridSize))
}

func TestNextEditableDoesNotWrap(t *testing.T) {
	cfg := testConfig()
	g := BuildGrid(cfg.Words, cfg.GridSize)

	next, ok := g.NextEditable(Position{Row: 0, Col: 4})
	require.True(t, ok)
	assert.Equal(t, Position{Row: 1, Col: 3}, next)

	next, ok = g.NextEditable(Position{Row: 4, Col: 4})
	require.True(t, ok)
	assert.Equal(t, Position{Row: 5, Col: 3}, next)

	_, ok = g.NextEditable(Position{Row: 5, Col: 3})
	assert.False(t, ok)
}

func TestNormalizeLetter(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"a", "A", true},
		{"ą", "Ą", true},
		{"Į", "Į", true},
		{"ž", "Ž", true},
		{"ė", "Ė", true},
		{"1", "", false},
		{"ß", "", false},
		{"ab", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := NormalizeLetter(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestClickNonEditableKeepsSelection(t *testing.T) {
	s := New(testConfig())

	s, eff := s.Apply(Click{Pos: Position{Row: 10, Col: 10}})
	assert.False(t, eff.Handled)
	_, ok := s.Selected()
	assert.False(t, ok)

	s, _ = s.Apply(Click{Pos: Position{Row: 4, Col: 2}})
	s, _ = s.Apply(Click{Pos: Position{Row: 10, Col: 10}})
	sel, ok := s.Selected()
	require.True(t, ok)
	assert.Equal(t, Position{Row: 4, Col: 2}, sel)
}

func TestKeysIgnoredWithoutSelection(t *testing.T) {
	s := New(testConfig())

	next, eff := s.Apply(KeyPress{Key: KeyRune, Text: "a"})
	assert.False(t, eff.Handled)
	assert.Equal(t, s.Answers(), next.Answers())

	_, eff = s.Apply(KeyPress{Key: KeyDown})
	assert.False(t, eff.Handled)
}

func TestTypingCompletesWord(t *testing.T) {
	s := New(testConfig())
	s = typeWord(t, s, Position{Row: 4, Col: 2}, "į", "k", "a")

	assert.Equal(t, "Į", s.Answer(Position{Row: 4, Col: 2}))
	assert.Equal(t, "K", s.Answer(Position{Row: 4, Col: 3}))
	assert.Equal(t, "A", s.Answer(Position{Row: 4, Col: 4}))
	assert.True(t, s.Correct().Has(3))
	assert.Equal(t, VerdictCorrect, s.Feedback().Words[3])
	assert.Equal(t, ClassSuccess, s.Classify(Position{Row: 4, Col: 3}))
}

func TestTypingWrongLetterIsAttemptedNotCorrect(t *testing.T) {
	s := New(testConfig())
	s = apply(t, s, Click{Pos: Position{Row: 4, Col: 2}})
	s = apply(t, s, KeyPress{Key: KeyRune, Text: "Į"})
	s = apply(t, s, KeyPress{Key: KeyRune, Text: "K"})

	s, eff := s.Apply(KeyPress{Key: KeyRune, Text: "B"})
	require.NotNil(t, eff.Report)
	assert.True(t, eff.Report.Attempted.Has(3))
	assert.False(t, eff.Report.Correct.Has(3))
	assert.Equal(t, []int{3}, eff.Report.Incorrect())
	assert.False(t, s.Correct().Has(3))
	assert.Equal(t, VerdictIncorrect, s.Feedback().Words[3])
	assert.Equal(t, ClassError, s.Classify(Position{Row: 4, Col: 4}))
}

func TestTypingWritesOnlySelectedCell(t *testing.T) {
	s := New(testConfig())
	s = apply(t, s, Click{Pos: Position{Row: 4, Col: 3}})
	s = apply(t, s, KeyPress{Key: KeyRune, Text: "k"})

	for r := 0; r < 15; r++ {
		for c := 0; c < 15; c++ {
			p := Position{Row: r, Col: c}
			if p == (Position{Row: 4, Col: 3}) {
				assert.Equal(t, "K", s.Answer(p))
				continue
			}
			assert.Equal(t, "", s.Answer(p), p.String())
		}
	}
	sel, _ := s.Selected()
	assert.Equal(t, Position{Row: 4, Col: 4}, sel)
}

func TestApplyDoesNotMutatePreviousState(t *testing.T) {
	before := New(testConfig())
	before = apply(t, before, Click{Pos: Position{Row: 4, Col: 2}})
	after := apply(t, before, KeyPress{Key: KeyRune, Text: "į"})

	assert.Equal(t, "", before.Answer(Position{Row: 4, Col: 2}))
	assert.Equal(t, "Į", after.Answer(Position{Row: 4, Col: 2}))
}

func TestTypingAtLastCellKeepsSelection(t *testing.T) {
	s := New(testConfig())
	last := Position{Row: 5, Col: 3}
	s = apply(t, s, Click{Pos: last})
	s = apply(t, s, KeyPress{Key: KeyRune, Text: "a"})

	sel, ok := s.Selected()
	require.True(t, ok)
	assert.Equal(t, last, sel)
}

func TestInvalidKeysIgnored(t *testing.T) {
	s := New(testConfig())
	s = apply(t, s, Click{Pos: Position{Row: 4, Col: 2}})

	for _, ev := range []KeyPress{
		{Key: KeyRune, Text: "7"},
		{Key: KeyRune, Text: "?"},
		{Key: KeyOther},
	} {
		next, eff := s.Apply(ev)
		assert.False(t, eff.Handled)
		assert.Equal(t, "", next.Answer(Position{Row: 4, Col: 2}))
	}
}

func TestBackspaceClearsCellAndFeedback(t *testing.T) {
	s := New(testConfig())
	s = typeWord(t, s, Position{Row: 4, Col: 2}, "Į", "K", "A")
	require.True(t, s.Correct().Has(3))
	require.True(t, s.Feedback().Active())
	gen := s.Feedback().Generation

	s = apply(t, s, Click{Pos: Position{Row: 4, Col: 3}})
	s, eff := s.Apply(KeyPress{Key: KeyBackspace})

	assert.True(t, eff.Handled)
	assert.Equal(t, "", s.Answer(Position{Row: 4, Col: 3}))
	assert.Equal(t, "Į", s.Answer(Position{Row: 4, Col: 2}))
	assert.False(t, s.Correct().Has(3))
	assert.False(t, s.Feedback().Active())
	assert.Greater(t, s.Feedback().Generation, gen)

	sel, _ := s.Selected()
	assert.Equal(t, Position{Row: 4, Col: 3}, sel, "delete does not move selection")
}

func TestDeleteOnEmptyCell(t *testing.T) {
	s := New(testConfig())
	s = apply(t, s, Click{Pos: Position{Row: 4, Col: 2}})
	s, eff := s.Apply(KeyPress{Key: KeyDelete})

	assert.True(t, eff.Handled)
	assert.Equal(t, "", s.Answer(Position{Row: 4, Col: 2}))
	assert.Empty(t, s.Correct())
}

func TestArrowMovesOnlyToEditableNeighbour(t *testing.T) {
	s := New(testConfig())
	s = apply(t, s, Click{Pos: Position{Row: 4, Col: 2}})

	s, eff := s.Apply(KeyPress{Key: KeyRight})
	assert.True(t, eff.Handled)
	sel, _ := s.Selected()
	assert.Equal(t, Position{Row: 4, Col: 3}, sel)

	// Up from the shared K stays on SĄVOKA.
	s = apply(t, s, KeyPress{Key: KeyUp})
	sel, _ = s.Selected()
	assert.Equal(t, Position{Row: 3, Col: 3}, sel)
	s = apply(t, s, KeyPress{Key: KeyDown})
	s = apply(t, s, KeyPress{Key: KeyRight})

	// Above (4,4) is blank: selection stays.
	s, eff = s.Apply(KeyPress{Key: KeyUp})
	assert.True(t, eff.Handled)
	sel, _ = s.Selected()
	assert.Equal(t, Position{Row: 4, Col: 4}, sel)

	// (4,5) is blank and there is no skipping across gaps.
	s = apply(t, s, KeyPress{Key: KeyRight})
	sel, _ = s.Selected()
	assert.Equal(t, Position{Row: 4, Col: 4}, sel)

	s = apply(t, s, KeyPress{Key: KeyLeft})
	s = apply(t, s, KeyPress{Key: KeyLeft})
	s = apply(t, s, KeyPress{Key: KeyLeft})
	sel, _ = s.Selected()
	assert.Equal(t, Position{Row: 4, Col: 2}, sel)
}

func TestArrowClampsToGrid(t *testing.T) {
	cfg := &Config{GridSize: 3, Words: []Word{{ID: 1, Text: "ABC", Row: 0, Col: 0, Direction: Across}}}
	s := New(cfg)
	s = apply(t, s, Click{Pos: Position{Row: 0, Col: 0}})

	s = apply(t, s, KeyPress{Key: KeyUp})
	s = apply(t, s, KeyPress{Key: KeyLeft})
	sel, _ := s.Selected()
	assert.Equal(t, Position{Row: 0, Col: 0}, sel)

	s = apply(t, s, Click{Pos: Position{Row: 0, Col: 2}})
	s = apply(t, s, KeyPress{Key: KeyRight})
	sel, _ = s.Selected()
	assert.Equal(t, Position{Row: 0, Col: 2}, sel)
}

func TestStaleClearIsIgnored(t *testing.T) {
	s := New(testConfig())
	s = typeWord(t, s, Position{Row: 4, Col: 2}, "Į", "K")

	s, eff := s.Apply(KeyPress{Key: KeyRune, Text: "A"})
	first := eff.ScheduleClear
	require.NotZero(t, first)

	// Editing DRĄSA rechecks; ĮKA is still filled so feedback is renewed.
	s = apply(t, s, Click{Pos: Position{Row: 0, Col: 1}})
	s, eff = s.Apply(KeyPress{Key: KeyRune, Text: "R"})
	second := eff.ScheduleClear
	require.Greater(t, second, first)

	s, eff = s.Apply(ClearFeedback{Generation: first})
	assert.True(t, eff.Stale)
	assert.True(t, s.Feedback().Active())

	s, eff = s.Apply(ClearFeedback{Generation: second})
	assert.False(t, eff.Stale)
	assert.False(t, s.Feedback().Active())
	assert.True(t, s.Correct().Has(3), "clearing feedback keeps the completion set")
}

func TestClearAfterBackspaceIsStale(t *testing.T) {
	s := New(testConfig())
	s = typeWord(t, s, Position{Row: 4, Col: 2}, "Į", "K")
	s, eff := s.Apply(KeyPress{Key: KeyRune, Text: "B"})
	pending := eff.ScheduleClear

	s = apply(t, s, Click{Pos: Position{Row: 4, Col: 4}})
	s = apply(t, s, KeyPress{Key: KeyBackspace})
	s = apply(t, s, KeyPress{Key: KeyRune, Text: "A"})

	s, eff = s.Apply(ClearFeedback{Generation: pending})
	assert.True(t, eff.Stale)
	assert.Equal(t, VerdictCorrect, s.Feedback().Words[3])
}

func TestNoFeedbackWithoutAttemptedWord(t *testing.T) {
	s := New(testConfig())
	s = apply(t, s, Click{Pos: Position{Row: 4, Col: 2}})
	s, eff := s.Apply(KeyPress{Key: KeyRune, Text: "Į"})

	assert.Zero(t, eff.ScheduleClear)
	assert.False(t, s.Feedback().Active())
}

func TestSolved(t *testing.T) {
	cfg := &Config{
		GridSize: 5,
		Words: []Word{
			{ID: 1, Text: "ŽĄS", Row: 0, Col: 0, Direction: Across},
			{ID: 2, Text: "ŽUV", Row: 0, Col: 0, Direction: Down},
		},
	}
	s := New(cfg)
	assert.False(t, s.Solved())

	s = typeWord(t, s, Position{Row: 0, Col: 0}, "ž", "ą", "s")
	done, total := s.Progress()
	assert.Equal(t, 1, done)
	assert.Equal(t, 2, total)
	assert.False(t, s.Solved())

	s = typeWord(t, s, Position{Row: 1, Col: 0}, "u")
	s = apply(t, s, Click{Pos: Position{Row: 2, Col: 0}})
	s = apply(t, s, KeyPress{Key: KeyRune, Text: "v"})
	assert.True(t, s.Solved())
	assert.Equal(t, []int{1, 2}, s.Correct().IDs())
}

func TestCheckRequiresExactMatch(t *testing.T) {
	cfg := testConfig()
	g := BuildGrid(cfg.Words, cfg.GridSize)
	a := NewAnswers(cfg.GridSize)
	for i, l := range cfg.Words[1].Letters() {
		a = a.With(cfg.Words[1].PositionAt(i), l)
	}

	rep := Check(cfg.Words, g, a)
	assert.True(t, rep.Correct.Has(3))
	assert.False(t, rep.Correct.Has(1))

	a = a.With(Position{Row: 4, Col: 2}, "I")
	rep = Check(cfg.Words, g, a)
	assert.False(t, rep.Correct.Has(3))
	assert.True(t, rep.Attempted.Has(3))
}

func TestCheckOutOfBoundsWordNeverComplete(t *testing.T) {
	words := []Word{{ID: 7, Text: "ĄS", Row: 0, Col: 1, Direction: Across}}
	g := BuildGrid(words, 2)
	a := NewAnswers(2).With(Position{Row: 0, Col: 1}, "Ą")

	rep := Check(words, g, a)
	assert.False(t, rep.Correct.Has(7))
	assert.False(t, rep.Attempted.Has(7))
}

func TestClassifyPrecedence(t *testing.T) {
	s := New(testConfig())
	ika := Position{Row: 4, Col: 2}

	assert.Equal(t, ClassBlocked, s.Classify(Position{Row: 9, Col: 9}))
	assert.Equal(t, ClassEmpty, s.Classify(ika))

	s = apply(t, s, HoverWord{ID: 3})
	assert.Equal(t, ClassHovered, s.Classify(ika))
	assert.Equal(t, ClassHovered, s.Classify(Position{Row: 4, Col: 4}))
	assert.Equal(t, ClassEmpty, s.Classify(Position{Row: 0, Col: 2}))

	s = apply(t, s, Click{Pos: ika})
	assert.Equal(t, ClassSelected, s.Classify(ika))

	s = apply(t, s, KeyPress{Key: KeyRune, Text: "į"})
	s = apply(t, s, HoverWord{Clear: true})
	assert.Equal(t, ClassCorrect, s.Classify(ika))

	s = apply(t, s, KeyPress{Key: KeyRune, Text: "x"})
	s = apply(t, s, Click{Pos: ika})
	assert.Equal(t, ClassFilled, s.Classify(Position{Row: 4, Col: 3}))
}

func TestHoverHighlightsSharedCells(t *testing.T) {
	s := New(testConfig())
	s = apply(t, s, HoverWord{ID: 5})

	for _, p := range []Position{{Row: 0, Col: 3}, {Row: 3, Col: 3}, {Row: 4, Col: 3}, {Row: 5, Col: 3}} {
		assert.Equal(t, ClassHovered, s.Classify(p), p.String())
	}
	assert.Equal(t, ClassEmpty, s.Classify(Position{Row: 0, Col: 2}))
}

func TestResetKeepsHover(t *testing.T) {
	s := New(testConfig())
	s = apply(t, s, HoverWord{ID: 1})
	s = typeWord(t, s, Position{Row: 4, Col: 2}, "Į", "K", "A")

	s, eff := s.Apply(Reset{})
	assert.True(t, eff.Handled)
	assert.Empty(t, s.Correct())
	assert.False(t, s.Feedback().Active())
	_, ok := s.Selected()
	assert.False(t, ok)
	id, ok := s.Hovered()
	assert.True(t, ok)
	assert.Equal(t, 1, id)
}
