package tui

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/nosines/internal/clipboard"
	"github.com/f3rmion/nosines/internal/puzzle"
	"github.com/rs/zerolog/log"
)

// DefaultFeedbackDelay is how long success/error markers stay visible.
const DefaultFeedbackDelay = 1500 * time.Millisecond

// feedbackExpiredMsg asks the model to clear the overlay of a generation.
type feedbackExpiredMsg struct {
	generation uint64
}

// statusExpiredMsg clears the status line if it is still the same one.
type statusExpiredMsg struct {
	id int
}

func clearFeedbackAfter(d time.Duration, generation uint64) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return feedbackExpiredMsg{generation: generation}
	})
}

func clearStatusAfter(d time.Duration, id int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return statusExpiredMsg{id: id}
	})
}

// Options tweaks the model.
type Options struct {
	FeedbackDelay time.Duration
	Source        string // Where the puzzle was loaded from, for the footer
}

// Model is the crossword TUI.
type Model struct {
	state  puzzle.State
	delay  time.Duration
	source string

	keys keyMap
	help help.Model

	width  int
	height int

	status      string
	statusErr   bool
	statusID    int
	statusDelay time.Duration

	// copyRule is clipboard.WriteRule; tests replace it.
	copyRule func(puzzle.Word) error
}

// New creates the model for cfg.
func New(cfg *puzzle.Config, opts Options) Model {
	delay := opts.FeedbackDelay
	if delay <= 0 {
		delay = DefaultFeedbackDelay
	}
	return Model{
		state:       puzzle.New(cfg),
		delay:       delay,
		source:      opts.Source,
		keys:        defaultKeyMap(),
		help:        help.New(),
		copyRule:    clipboard.WriteRule,
		statusDelay: 2 * time.Second,
	}
}

// State returns the current puzzle snapshot.
func (m Model) State() puzzle.State {
	return m.state
}

// Init sets the terminal title.
func (m Model) Init() tea.Cmd {
	if title := m.state.Config().Title; title != "" {
		return tea.SetWindowTitle(title)
	}
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case feedbackExpiredMsg:
		return m.apply(puzzle.ClearFeedback{Generation: msg.generation})

	case statusExpiredMsg:
		if msg.id == m.statusID {
			m.status = ""
			m.statusErr = false
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Reset):
			log.Debug().Msg("puzzle reset")
			return m.apply(puzzle.Reset{})
		case key.Matches(msg, m.keys.CopyRule):
			return m.copyActiveRule()
		}
		return m.apply(puzzleKey(msg))

	case tea.MouseMsg:
		return m.mouse(msg)
	}

	return m, nil
}

// mouse routes clicks to grid cells and pointer motion to clue hover.
func (m Model) mouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	hit := m.layout().hitTest(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft && hit.kind == hitCell {
			return m.apply(puzzle.Click{Pos: hit.pos})
		}
	case tea.MouseActionMotion:
		hovered, hovering := m.state.Hovered()
		if hit.kind == hitClue {
			if !hovering || hovered != hit.wordID {
				return m.apply(puzzle.HoverWord{ID: hit.wordID})
			}
		} else if hovering {
			return m.apply(puzzle.HoverWord{Clear: true})
		}
	}
	return m, nil
}

// apply runs ev through the reducer and turns its effect into commands.
func (m Model) apply(ev puzzle.Event) (tea.Model, tea.Cmd) {
	prev := m.state
	next, eff := prev.Apply(ev)
	m.state = next

	if eff.Stale {
		log.Debug().Uint64("generation", ev.(puzzle.ClearFeedback).Generation).
			Uint64("current", next.Feedback().Generation).
			Msg("dropped stale feedback clear")
	}
	if eff.Report != nil {
		logReport(prev, next, *eff.Report)
	}
	if !prev.Solved() && next.Solved() {
		log.Info().Int("words", len(next.Words())).Msg("puzzle solved")
	}

	if eff.ScheduleClear != 0 {
		return m, clearFeedbackAfter(m.delay, eff.ScheduleClear)
	}
	return m, nil
}

func logReport(prev, next puzzle.State, rep puzzle.Report) {
	for _, id := range rep.Correct.IDs() {
		if !prev.Correct().Has(id) {
			log.Debug().Int("word", id).Msg("word completed")
		}
	}
	for _, id := range rep.Incorrect() {
		log.Debug().Int("word", id).Msg("word filled incorrectly")
	}
	done, total := next.Progress()
	log.Debug().Int("correct", done).Int("total", total).Msg("checked words")
}

// activeWord is the hovered word, or else the first word through the
// selected cell.
func (m Model) activeWord() (puzzle.Word, bool) {
	cfg := m.state.Config()
	if id, ok := m.state.Hovered(); ok {
		return cfg.WordByID(id)
	}
	if pos, ok := m.state.Selected(); ok {
		if ids := m.state.Grid().At(pos).WordIDs; len(ids) > 0 {
			return cfg.WordByID(ids[0])
		}
	}
	return puzzle.Word{}, false
}

func (m Model) copyActiveRule() (tea.Model, tea.Cmd) {
	w, ok := m.activeWord()
	if !ok {
		return m.setStatus("Pasirinkite žodį", true)
	}
	if err := m.copyRule(w); err != nil {
		log.Warn().Err(err).Int("word", w.ID).Msg("copy rule")
		if errors.Is(err, clipboard.ErrUnavailable) {
			return m.setStatus("Iškarpinė nepasiekiama", true)
		}
		return m.setStatus("Nepavyko nukopijuoti", true)
	}
	return m.setStatus("Taisyklė nukopijuota", false)
}

func (m Model) setStatus(text string, isErr bool) (tea.Model, tea.Cmd) {
	m.statusID++
	m.status = text
	m.statusErr = isErr
	return m, clearStatusAfter(m.statusDelay, m.statusID)
}
