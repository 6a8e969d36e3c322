package puzzle

import "sort"

// WordSet is a set of word ids.
type WordSet map[int]struct{}

// Has reports whether id is in the set.
func (s WordSet) Has(id int) bool {
	_, ok := s[id]
	return ok
}

// IDs returns the members in ascending order.
func (s WordSet) IDs() []int {
	ids := make([]int, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Report is the outcome of checking every word against the answers.
type Report struct {
	Correct   WordSet // Every cell matches the expected letter
	Attempted WordSet // Every cell is non-empty, right or wrong
}

// Incorrect returns attempted words that are not correct, ascending.
func (r Report) Incorrect() []int {
	var ids []int
	for _, id := range r.Attempted.IDs() {
		if !r.Correct.Has(id) {
			ids = append(ids, id)
		}
	}
	return ids
}

// Check evaluates every word from scratch. A word with letters outside
// the grid can never be filled, so it is neither attempted nor correct.
func Check(words []Word, g *Grid, answers Answers) Report {
	rep := Report{Correct: WordSet{}, Attempted: WordSet{}}
	for _, w := range words {
		attempted, correct := true, true
		for i, letter := range w.Letters() {
			p := w.PositionAt(i)
			if !g.InBounds(p) {
				attempted, correct = false, false
				break
			}
			got := answers.Get(p)
			if got == "" {
				attempted = false
			}
			if got != letter {
				correct = false
			}
		}
		if attempted {
			rep.Attempted[w.ID] = struct{}{}
		}
		if correct {
			rep.Correct[w.ID] = struct{}{}
		}
	}
	return rep
}
