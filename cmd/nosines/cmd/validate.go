package cmd

import (
	"fmt"

	"github.com/f3rmion/nosines/internal/config"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check a puzzle file",
	Long: `Check a puzzle file for missing fields, letters outside the alphabet,
words that leave the grid and crossing words that disagree on a cell.

Without a file, the puzzle that 'nosines' would start is checked.

Example:
  nosines validate puzzle.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := viper.GetString("puzzle")
	if len(args) == 1 {
		path = args[0]
	}

	cfg, source, err := config.Resolve(path, getConfigDir())
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("invalid puzzle")
		return err
	}
	if source == "" {
		source = "built-in puzzle"
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d words, %dx%d grid)\n", source, len(cfg.Words), cfg.GridSize, cfg.GridSize)
	return nil
}
