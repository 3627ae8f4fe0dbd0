// rpgplatformer is a side-scrolling platformer with three switchable heroes.
//
// Usage:
//
//	rpgplatformer              - Play from the first level
//	rpgplatformer levels       - List and validate the built-in levels
//	rpgplatformer runs         - Show the best recorded runs
//
// Flags:
//
//	--config <path>  - Config file (default: search ~/.rpgplatformer and ./configs)
//	--level <name>   - Start level name or level file
//	--debug          - Debug logging, collider overlay and prefab hot reload
//	--db <path>      - Run database path (default from config)
//	--no-store       - Do not record runs
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/milk9111/rpgplatformer/config"
	"github.com/milk9111/rpgplatformer/storage"
)

var (
	flagConfig  string
	flagLevel   string
	flagDebug   bool
	flagDBPath  string
	flagNoStore bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "rpgplatformer",
	Short:         "Platformer with an archer, a knight and a wizard",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging and overlays")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to run database (overrides config)")
	rootCmd.Flags().StringVar(&flagLevel, "level", "", "Level to start on (name from config or a level file)")
	rootCmd.Flags().BoolVar(&flagNoStore, "no-store", false, "Do not record finished runs")

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		setupLogger(flagDebug)
	}

	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(runsCmd)
}

func setupLogger(debug bool) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "rpgplatformer",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	log.SetDefault(logger)
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	var store *storage.Store
	if cfg.Storage.Enabled && !flagNoStore {
		store, err = openStore(cfg)
		if err != nil {
			log.Warn("could not open run database", "err", err)
		} else {
			defer store.Close()
		}
	}

	game, err := NewGame(cfg, GameOptions{Level: flagLevel, Debug: flagDebug, Store: store})
	if err != nil {
		return err
	}
	defer game.Close()

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	return ebiten.RunGame(game)
}

// openStore opens the run database named by --db or the config.
func openStore(cfg config.Config) (*storage.Store, error) {
	path := cfg.Storage.Path
	if flagDBPath != "" {
		path = flagDBPath
	}
	expanded, err := config.ExpandHome(path)
	if err != nil {
		return nil, err
	}
	return storage.Open(expanded)
}
