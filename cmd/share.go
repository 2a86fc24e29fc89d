package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/blockdeck/internal/blockops"
)

var shareCmd = &cobra.Command{
	Use:   "share <block-id>",
	Short: "Print a share link for a block",
	Args:  cobra.ExactArgs(1),
	RunE:  runShare,
}

func init() {
	rootCmd.AddCommand(shareCmd)
}

func runShare(cmd *cobra.Command, args []string) error {
	m, err := loadManager()
	if err != nil {
		return err
	}

	b, err := resolveBlock(m, args[0])
	if err != nil {
		return err
	}

	fmt.Println(blockops.ShareLink(b, cfg.Share.BaseURL))
	return nil
}
