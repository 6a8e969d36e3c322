package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/nosines/internal/config"
	"github.com/f3rmion/nosines/internal/tui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var playCmd = &cobra.Command{
	Use:     "play",
	Aliases: []string{"p", "ui"},
	Short:   "Start the crossword",
	Long: `Start the interactive crossword.

Controls:
  Click         Select a cell
  Letters       Fill the selected cell and move on
  Arrows        Move between cells
  Backspace     Erase the selected cell
  Hover clue    Highlight the word and show its rule
  Ctrl+Y        Copy the active word's rule
  Ctrl+R        Start over
  Esc           Quit`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, source, err := config.Resolve(viper.GetString("puzzle"), getConfigDir())
	if err != nil {
		return err
	}
	if source == "" {
		source = "built-in"
	}

	log.Info().Str("source", source).Int("words", len(cfg.Words)).Int("grid", cfg.GridSize).Msg("starting puzzle")

	p := tea.NewProgram(
		tui.New(cfg, tui.Options{
			FeedbackDelay: viper.GetDuration("feedback_delay"),
			Source:        source,
		}),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}
