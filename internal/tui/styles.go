// Package tui provides the interactive terminal crossword.
package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/nosines/internal/puzzle"
)

// Color palette
var (
	ColorPrimary   = lipgloss.Color("#FF6B6B") // Red - titles, errors
	ColorSecondary = lipgloss.Color("#4ecdc4") // Teal - clue numbers, hover
	ColorAccent    = lipgloss.Color("#ffe66d") // Yellow - selection
	ColorMuted     = lipgloss.Color("#666666") // Gray - help text
	ColorSuccess   = lipgloss.Color("#a8e6cf") // Green - correct letters
	ColorText      = lipgloss.Color("#f1faee") // Light text
	ColorBg        = lipgloss.Color("#1a1a2e") // Dark background
	ColorBgAlt     = lipgloss.Color("#2d3436") // Editable cell background
	ColorBorder    = lipgloss.Color("#3d5a80") // Border color
	ColorCorrectBg = lipgloss.Color("#1f4037") // Correct cell background
	ColorHoverBg   = lipgloss.Color("#244b5a") // Hovered word background
)

// cellWidth is the number of terminal columns per grid cell.
const cellWidth = 3

var cellBase = lipgloss.NewStyle().
	Width(cellWidth).
	Align(lipgloss.Center)

// cellStyles maps each presentation class to its look.
var cellStyles = map[puzzle.Class]lipgloss.Style{
	puzzle.ClassBlocked: cellBase.
		Background(ColorBg),
	puzzle.ClassEmpty: cellBase.
		Foreground(ColorMuted).
		Background(ColorBgAlt),
	puzzle.ClassFilled: cellBase.
		Foreground(ColorText).
		Background(ColorBgAlt),
	puzzle.ClassCorrect: cellBase.
		Foreground(ColorSuccess).
		Background(ColorCorrectBg).
		Bold(true),
	puzzle.ClassHovered: cellBase.
		Foreground(ColorText).
		Background(ColorHoverBg),
	puzzle.ClassSelected: cellBase.
		Foreground(ColorBg).
		Background(ColorAccent).
		Bold(true),
	puzzle.ClassSuccess: cellBase.
		Foreground(ColorBg).
		Background(ColorSuccess).
		Bold(true),
	puzzle.ClassError: cellBase.
		Foreground(ColorText).
		Background(ColorPrimary).
		Bold(true),
}

// Header styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Background(ColorBg).
			Padding(0, 1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)
)

// Grid and clue panel styles
var (
	GridBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)

	ClueHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText)

	ClueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	ClueHoveredStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary).
				Bold(true)

	ClueDoneStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	ClueWrongStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary)

	RuleBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorSecondary).
			Foreground(ColorText).
			Padding(0, 1)

	BigLetterStyle = lipgloss.NewStyle().
			Foreground(ColorAccent)
)

// Status styles
var (
	ProgressStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	BannerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorSuccess).
			Foreground(ColorSuccess).
			Padding(0, 2).
			Align(lipgloss.Center)

	BannerTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorSuccess)

	StatusStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)
)
