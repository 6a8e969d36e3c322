// Package cmd contains all CLI commands for nosines.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/f3rmion/nosines/internal/config"
	"github.com/f3rmion/nosines/internal/tui"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgDir  string
	logFile io.Closer
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "nosines",
	Short: "Lithuanian nasal vowel crossword",
	Long: `nosines is a terminal crossword for practising the Lithuanian nasal
vowels ą, ę, į and ų.

Click a cell to select it, type letters to fill it in and hover a clue to
highlight its word and show the spelling rule behind it.

Running 'nosines' without arguments starts the puzzle. The puzzle is read
from --puzzle, then from puzzle.yaml in the config directory, and falls
back to the built-in one.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
	RunE:              runPlay,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// cobra skips post-run hooks when a command fails, so the debug log is
// closed here.
func Execute() error {
	err := rootCmd.Execute()
	if cerr := closeLogging(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgDir, "config", "", "config directory (default is $HOME/.config/nosines)")
	flags.String("puzzle", "", "puzzle YAML file")
	flags.String("debug-log", "", "write debug logs to this file")
	flags.String("log-level", "debug", "log level (trace, debug, info, warn, error)")
	flags.Duration("feedback-delay", tui.DefaultFeedbackDelay, "how long success and error markers stay visible")

	viper.BindPFlag("puzzle", flags.Lookup("puzzle"))
	viper.BindPFlag("debug_log", flags.Lookup("debug-log"))
	viper.BindPFlag("log_level", flags.Lookup("log-level"))
	viper.BindPFlag("feedback_delay", flags.Lookup("feedback-delay"))
}

// initConfig reads in ENV variables if set.
func initConfig() {
	if cfgDir != "" {
		viper.Set("config_dir", cfgDir)
	} else if dir, err := config.GetConfigDir(); err == nil {
		viper.Set("config_dir", dir)
	}

	viper.SetEnvPrefix("NOSINES")
	viper.AutomaticEnv()
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	return viper.GetString("config_dir")
}

// setupLogging points the global logger at the debug log file. Without
// one, logs are discarded since the TUI owns the terminal.
func setupLogging(cmd *cobra.Command, args []string) error {
	log.Logger = zerolog.Nop()

	path := viper.GetString("debug_log")
	if path == "" {
		return nil
	}

	level, err := zerolog.ParseLevel(viper.GetString("log_level"))
	if err != nil {
		return fmt.Errorf("parsing log level: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("opening debug log: %w", err)
	}
	logFile = f

	log.Logger = zerolog.New(f).Level(level).With().Timestamp().Str("cmd", cmd.Name()).Logger()
	return nil
}

func closeLogging() error {
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	log.Logger = zerolog.Nop()
	return err
}
