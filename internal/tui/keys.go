package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/nosines/internal/puzzle"
)

type keyMap struct {
	Letter   key.Binding
	Move     key.Binding
	Erase    key.Binding
	CopyRule key.Binding
	Reset    key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		// Letter and Move are listed for the help footer only; the grid
		// handles them through puzzleKey.
		Letter: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a–ž", "rašyti"),
		),
		Move: key.NewBinding(
			key.WithKeys("up", "down", "left", "right"),
			key.WithHelp("←↑↓→", "judėti"),
		),
		Erase: key.NewBinding(
			key.WithKeys("backspace", "delete"),
			key.WithHelp("⌫", "trinti"),
		),
		CopyRule: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "kopijuoti taisyklę"),
		),
		Reset: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "iš naujo"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "išeiti"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Letter, k.Move, k.Erase, k.CopyRule, k.Reset, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Letter, k.Move, k.Erase},
		{k.CopyRule, k.Reset, k.Quit},
	}
}

// puzzleKey translates a terminal key into a puzzle key press.
func puzzleKey(msg tea.KeyMsg) puzzle.KeyPress {
	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) == 1 && !msg.Alt {
			return puzzle.KeyPress{Key: puzzle.KeyRune, Text: string(msg.Runes)}
		}
	case tea.KeyBackspace:
		return puzzle.KeyPress{Key: puzzle.KeyBackspace}
	case tea.KeyDelete:
		return puzzle.KeyPress{Key: puzzle.KeyDelete}
	case tea.KeyUp:
		return puzzle.KeyPress{Key: puzzle.KeyUp}
	case tea.KeyDown:
		return puzzle.KeyPress{Key: puzzle.KeyDown}
	case tea.KeyLeft:
		return puzzle.KeyPress{Key: puzzle.KeyLeft}
	case tea.KeyRight:
		return puzzle.KeyPress{Key: puzzle.KeyRight}
	}
	return puzzle.KeyPress{Key: puzzle.KeyOther}
}
