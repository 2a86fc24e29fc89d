// Package cmd implements the blockdeck command-line interface. Every command
// operates on the persisted history snapshot; executing commands and feeding
// their output into blocks is the embedding application's job.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zjrosen/blockdeck/internal/block"
	"github.com/zjrosen/blockdeck/internal/config"
	"github.com/zjrosen/blockdeck/internal/history"
	"github.com/zjrosen/blockdeck/internal/log"
	"github.com/zjrosen/blockdeck/internal/storage"
)

var (
	configPath  string
	historyPath string

	cfg        config.Config
	logCleanup func()
)

var rootCmd = &cobra.Command{
	Use:   "blockdeck",
	Short: "Command-block history for terminal applications",
	Long: `blockdeck records executed commands as blocks (command, output, exit
status, timing, directory) and keeps a bounded, searchable, bookmarkable
history of them. The CLI inspects and exports a saved history snapshot.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}

		if historyPath == "" {
			if cfg.History.Path != "" {
				historyPath = cfg.History.Path
			} else {
				historyPath = config.HistoryPath(configPath)
			}
		}

		cleanup, err := log.Init(cfg.LogPath(historyPath))
		if err != nil {
			// Logging is best-effort; the CLI still works without it.
			return nil
		}
		logCleanup = cleanup
		log.SetMinLevel(log.ParseLevel(cfg.Log.Level))
		log.Debug(log.CatCLI, "Config loaded", "configPath", configPath, "historyPath", historyPath)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&historyPath, "history", "", "history snapshot path")
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	defer func() {
		if logCleanup != nil {
			logCleanup()
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}

// loadManager loads the history snapshot into a fresh manager. A missing
// snapshot file yields an empty history.
func loadManager() (*history.Manager, error) {
	m := history.NewManager(cfg.History.MaxSize)

	blocks, err := storage.Load(historyPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Debug(log.CatStorage, "No history snapshot yet", "path", historyPath)
			return m, nil
		}
		return nil, err
	}

	for _, b := range blocks {
		m.AddBlock(b)
	}
	log.Debug(log.CatStorage, "History loaded", "path", historyPath, "blocks", len(blocks))
	return m, nil
}

// saveManager writes the manager's blocks back to the snapshot.
func saveManager(m *history.Manager) error {
	if err := storage.Save(m.Blocks(), historyPath, storage.FormatJSON); err != nil {
		return err
	}
	log.Debug(log.CatStorage, "History saved", "path", historyPath, "blocks", len(m.Blocks()))
	return nil
}

// resolveBlock finds a block by full ID or unique ID prefix.
func resolveBlock(m *history.Manager, id string) (*block.Block, error) {
	if b := m.Get(id); b != nil {
		return b, nil
	}

	var match *block.Block
	for _, b := range m.Blocks() {
		if strings.HasPrefix(b.ID, id) {
			if match != nil {
				return nil, fmt.Errorf("ambiguous block id prefix %q", id)
			}
			match = b
		}
	}
	if match == nil {
		return nil, fmt.Errorf("%w: %s", history.ErrBlockNotFound, id)
	}
	return match, nil
}
