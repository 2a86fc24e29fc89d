package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zjrosen/blockdeck/internal/block"
	"github.com/zjrosen/blockdeck/internal/blockops"
)

var (
	scriptBookmarked bool
	scriptOut        string
)

var scriptCmd = &cobra.Command{
	Use:   "script",
	Short: "Generate a shell script replaying the history",
	RunE:  runScript,
}

func init() {
	scriptCmd.Flags().BoolVar(&scriptBookmarked, "bookmarked", false, "only bookmarked blocks")
	scriptCmd.Flags().StringVar(&scriptOut, "out", "", "write to file instead of stdout")
	rootCmd.AddCommand(scriptCmd)
}

func runScript(cmd *cobra.Command, args []string) error {
	m, err := loadManager()
	if err != nil {
		return err
	}

	var blocks []*block.Block
	if scriptBookmarked {
		blocks = m.Bookmarked()
	} else {
		blocks = m.Blocks()
	}

	script := blockops.ShellScript(blocks)
	if scriptOut == "" {
		fmt.Print(script)
		return nil
	}

	if err := os.WriteFile(scriptOut, []byte(script), 0o750); err != nil {
		return fmt.Errorf("writing script: %w", err)
	}
	fmt.Printf("Wrote %d commands to %s\n", len(blocks), scriptOut)
	return nil
}
