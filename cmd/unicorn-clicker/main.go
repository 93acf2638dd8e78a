// Command unicorn-clicker runs the tap game in a terminal, or headless on a virtual clock.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lixenwraith/unicorn-clicker/config"
	"github.com/lixenwraith/unicorn-clicker/constants"
	"github.com/lixenwraith/unicorn-clicker/logging"
	"github.com/lixenwraith/unicorn-clicker/tables"
)

var (
	// Flags override the matching UNICORN_* variables when set
	debug      bool
	tablesPath string
	noAudio    bool

	cfg      *config.Config
	logger   *zap.Logger
	closeLog func()
)

var rootCmd = &cobra.Command{
	Use:   constants.AppName,
	Short: "Tap the unicorn, collect emojis, climb levels",
	Long: `Unicorn Clicker is a terminal tap game.

Every tap counts. Awards unlock at exact tap counts, levels advance at
fixed goals, and banners and emoji rain announce each milestone.

Run without arguments to play.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		flags := cmd.Flags()
		if flags.Changed("debug") {
			cfg.Debug = debug
		}
		if flags.Changed("tables") {
			cfg.TablesPath = tablesPath
		}
		if flags.Changed("no-audio") {
			cfg.AudioEnabled = !noAudio
		}

		logger, closeLog, err = logging.New(cfg.Debug, cfg.LogDir)
		if err != nil {
			return err
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if closeLog != nil {
			closeLog()
		}
	},
	RunE: runPlay,
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play interactively in the terminal",
	RunE:  runPlay,
}

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a scripted tap sequence on a virtual clock and print the trace",
	Long: `Taps the unicorn N times, advancing a virtual clock by --step between taps,
then prints every progression event, the final state and the effect counters.

Example:
  unicorn-clicker simulate --taps 60 --step 250ms`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVar(&debug, "debug", false, "write debug logs under the log directory")
	pf.StringVar(&tablesPath, "tables", "", "YAML file replacing the built-in award and level tables")
	pf.BoolVar(&noAudio, "no-audio", false, "disable sound")

	simulateCmd.Flags().IntVar(&simTaps, "taps", 60, "number of taps")
	simulateCmd.Flags().DurationVar(&simStep, "step", defaultSimStep, "virtual time between taps")
	simulateCmd.Flags().BoolVar(&simQuiet, "quiet", false, "print only the final state")

	rootCmd.AddCommand(playCmd, simulateCmd)
}

// loadTables returns the configured tables, or the built-in ones
func loadTables() (*tables.Tables, error) {
	if cfg == nil || cfg.TablesPath == "" {
		return tables.Default(), nil
	}
	t, err := tables.Load(cfg.TablesPath)
	if err != nil {
		return nil, err
	}
	logger.Info("tables loaded",
		zap.String("path", cfg.TablesPath),
		zap.Int("awards", t.AwardCount()),
		zap.Int("levels", t.LevelCount()))
	return t, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
