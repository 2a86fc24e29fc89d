package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/blockdeck/internal/block"
	"github.com/zjrosen/blockdeck/internal/render"
)

var (
	listBookmarked bool
	listLimit      int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List blocks in history order",
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listBookmarked, "bookmarked", false, "only bookmarked blocks")
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 0, "show at most N newest blocks (0 = all)")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	m, err := loadManager()
	if err != nil {
		return err
	}

	var blocks []*block.Block
	if listBookmarked {
		blocks = m.Bookmarked()
	} else {
		blocks = m.Blocks()
	}

	if listLimit > 0 && len(blocks) > listLimit {
		blocks = blocks[len(blocks)-listLimit:]
	}

	if len(blocks) == 0 {
		fmt.Println("No blocks recorded.")
		return nil
	}

	fmt.Print(render.List(blocks))
	return nil
}
