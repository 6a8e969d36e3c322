// Package clipboard copies puzzle text to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/f3rmion/nosines/internal/puzzle"
)

// ErrUnavailable is returned when no clipboard backend is installed
// (pbcopy, xclip, xsel, wl-copy or the Windows clipboard).
var ErrUnavailable = errors.New("clipboard unavailable")

// write is swapped out in tests.
var write = clipboard.WriteAll

// Available reports whether a clipboard backend was found.
func Available() bool {
	return !clipboard.Unsupported
}

// FormatRule renders a word's rule the way it is copied.
func FormatRule(w puzzle.Word) string {
	if w.Rule == "" {
		return w.Text
	}
	return fmt.Sprintf("%s – %s", w.Text, w.Rule)
}

// WriteRule copies the word and its spelling rule.
func WriteRule(w puzzle.Word) error {
	if !Available() {
		return ErrUnavailable
	}
	if err := write(FormatRule(w)); err != nil {
		return fmt.Errorf("copying rule: %w", err)
	}
	return nil
}
