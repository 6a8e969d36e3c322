package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/nosines/internal/puzzle"
	"github.com/f3rmion/nosines/internal/tui/bigchar"
	"github.com/mattn/go-runewidth"
)

const (
	headerHeight     = 3 // Title, subtitle, blank line
	panelGap         = 2
	defaultClueWidth = 48
	minClueWidth     = 20
	bigLetterCols    = 12
	bigLetterRows    = 6
)

type hitKind int

const (
	hitNone hitKind = iota
	hitCell
	hitClue
)

type hit struct {
	kind   hitKind
	pos    puzzle.Position
	wordID int
}

// layout holds screen coordinates of the interactive regions. View and
// the mouse handler both derive from it so clicks line up with drawing.
type layout struct {
	size      int
	gridTop   int
	gridLeft  int
	clueTop   int
	clueLeft  int
	clueWidth int
	wordIDs   []int
}

// layout returns the regions as they appear on screen. The renderer keeps
// only the last m.height lines of a taller view, so the drawn grid moves up
// by the overflow.
func (m Model) layout() layout {
	lay := m.baseLayout()
	if m.height <= 0 {
		return lay
	}
	if over := lipgloss.Height(m.render(lay)) - m.height; over > 0 {
		lay.gridTop -= over
		lay.clueTop -= over
	}
	return lay
}

// baseLayout positions the regions as if the whole view fits the terminal.
func (m Model) baseLayout() layout {
	size := m.state.Grid().Size()
	clueLeft := size*cellWidth + 2 + panelGap

	clueWidth := defaultClueWidth
	if m.width > 0 {
		clueWidth = max(m.width-clueLeft, minClueWidth)
	}

	words := m.state.Words()
	ids := make([]int, len(words))
	for i, w := range words {
		ids[i] = w.ID
	}

	return layout{
		size:      size,
		gridTop:   headerHeight + 1,
		gridLeft:  1,
		clueTop:   headerHeight + 1,
		clueLeft:  clueLeft,
		clueWidth: clueWidth,
		wordIDs:   ids,
	}
}

// cellOrigin returns the top-left screen coordinate of a cell.
func (l layout) cellOrigin(p puzzle.Position) (x, y int) {
	return l.gridLeft + p.Col*cellWidth, l.gridTop + p.Row
}

func (l layout) hitTest(x, y int) hit {
	if x >= l.gridLeft && x < l.gridLeft+l.size*cellWidth && y >= l.gridTop && y < l.gridTop+l.size {
		return hit{
			kind: hitCell,
			pos:  puzzle.Position{Row: y - l.gridTop, Col: (x - l.gridLeft) / cellWidth},
		}
	}
	if x >= l.clueLeft && x < l.clueLeft+l.clueWidth && y >= l.clueTop && y < l.clueTop+len(l.wordIDs) {
		return hit{kind: hitClue, wordID: l.wordIDs[y-l.clueTop]}
	}
	return hit{}
}

// View renders the UI
func (m Model) View() string {
	return m.render(m.baseLayout())
}

func (m Model) render(lay layout) string {
	cfg := m.state.Config()

	var sections []string
	sections = append(sections,
		TitleStyle.Render(cfg.Title),
		SubtitleStyle.Render(m.fit(cfg.Subtitle)),
		"",
	)

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderGrid(),
		strings.Repeat(" ", panelGap),
		m.renderPanel(lay),
	)
	sections = append(sections, body, "", m.renderProgress())

	if m.state.Solved() {
		sections = append(sections, renderBanner())
	}
	if m.status != "" {
		style := StatusStyle
		if m.statusErr {
			style = ErrorStyle
		}
		sections = append(sections, style.Render(m.status))
	}
	sections = append(sections, m.help.View(m.keys))

	return strings.Join(sections, "\n")
}

// fit truncates a single line to the terminal width.
func (m Model) fit(s string) string {
	if m.width <= 0 {
		return s
	}
	return runewidth.Truncate(s, m.width, "…")
}

func (m Model) renderGrid() string {
	size := m.state.Grid().Size()
	rows := make([]string, size)
	for r := 0; r < size; r++ {
		var b strings.Builder
		for c := 0; c < size; c++ {
			p := puzzle.Position{Row: r, Col: c}
			class := m.state.Classify(p)
			b.WriteString(cellStyles[class].Render(m.state.Answer(p)))
		}
		rows[r] = b.String()
	}
	return GridBoxStyle.Render(strings.Join(rows, "\n"))
}

func (m Model) renderPanel(lay layout) string {
	lines := []string{ClueHeaderStyle.Render("Užuominos:")}
	hovered, hovering := m.state.Hovered()
	verdicts := m.state.Feedback().Words

	for _, w := range m.state.Words() {
		text := fmt.Sprintf("%2d. %s %s", w.ID, w.Direction.Arrow(), w.Clue)
		style := ClueStyle
		switch {
		case m.state.Correct().Has(w.ID):
			text += " ✓"
			style = ClueDoneStyle
		case verdicts[w.ID] == puzzle.VerdictIncorrect:
			text += " ✗"
			style = ClueWrongStyle
		}
		if hovering && hovered == w.ID {
			style = ClueHoveredStyle
		}
		lines = append(lines, style.Render(runewidth.Truncate(text, lay.clueWidth, "…")))
	}

	if w, ok := m.activeWord(); ok && w.Rule != "" {
		lines = append(lines, "", RuleBoxStyle.Width(max(lay.clueWidth-2, minClueWidth)).Render(w.Rule))
	}

	if pos, ok := m.state.Selected(); ok {
		if art := bigchar.Render(m.state.Answer(pos), bigLetterCols, bigLetterRows); art != "" {
			lines = append(lines, "", BigLetterStyle.Render(art))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) renderProgress() string {
	done, total := m.state.Progress()
	text := fmt.Sprintf("Teisingai: %d/%d", done, total)
	if m.source != "" {
		text += "  ·  " + m.source
	}
	return ProgressStyle.Render(m.fit(text))
}

func renderBanner() string {
	return BannerStyle.Render(
		BannerTitleStyle.Render("Sveikiname! 🎉") + "\n" +
			"Jūs sėkmingai išsprendėte kryžiažodį!",
	)
}
