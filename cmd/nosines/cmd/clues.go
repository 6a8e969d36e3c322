package cmd

import (
	"fmt"
	"io"

	"github.com/f3rmion/nosines/internal/config"
	"github.com/f3rmion/nosines/internal/puzzle"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cluesCmd = &cobra.Command{
	Use:   "clues [file]",
	Short: "Print the clue list",
	Long: `Print the clues of a puzzle with each word's starting cell and length.

Example:
  nosines clues
  nosines clues --answers puzzle.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runClues,
}

func init() {
	rootCmd.AddCommand(cluesCmd)
	cluesCmd.Flags().Bool("answers", false, "also print answers and rules")
}

func runClues(cmd *cobra.Command, args []string) error {
	answers, _ := cmd.Flags().GetBool("answers")

	path := viper.GetString("puzzle")
	if len(args) == 1 {
		path = args[0]
	}

	cfg, _, err := config.Resolve(path, getConfigDir())
	if err != nil {
		return err
	}

	printClues(cmd.OutOrStdout(), cfg, answers)
	return nil
}

func printClues(w io.Writer, cfg *puzzle.Config, answers bool) {
	if cfg.Title != "" {
		fmt.Fprintln(w, cfg.Title)
		fmt.Fprintln(w)
	}

	for _, word := range cfg.Words {
		fmt.Fprintf(w, "%2d. %s %s (%s, %d)\n", word.ID, word.Direction.Arrow(), word.Clue, puzzle.Position{Row: word.Row, Col: word.Col}, word.Len())
		if !answers {
			continue
		}
		fmt.Fprintf(w, "    %s\n", word.Text)
		if word.Rule != "" {
			fmt.Fprintf(w, "    %s\n", word.Rule)
		}
	}
}
