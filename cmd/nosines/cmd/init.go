package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/f3rmion/nosines/internal/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Write the built-in puzzle to the config directory",
	Long: `Write the built-in puzzle as puzzle.yaml so it can be edited.

The file goes to the given directory, or to the config directory when
none is given. 'nosines' picks it up from the config directory on the
next start.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "overwrite an existing puzzle.yaml")
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")

	dir := getConfigDir()
	if len(args) == 1 {
		dir = args[0]
	}
	if dir == "" {
		return fmt.Errorf("no config directory, pass one explicitly")
	}

	path := filepath.Join(dir, config.PuzzleFile)
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("puzzle already exists: %s\nUse --force to overwrite", path)
	}

	if err := config.EnsureConfigDir(dir); err != nil {
		return err
	}
	if err := config.Save(path, config.Default()); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
	return nil
}
