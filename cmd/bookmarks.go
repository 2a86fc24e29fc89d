package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/blockdeck/internal/log"
	"github.com/zjrosen/blockdeck/internal/render"
)

var bookmarksCmd = &cobra.Command{
	Use:   "bookmarks",
	Short: "List bookmarked blocks",
	RunE:  runBookmarks,
}

var bookmarksToggleCmd = &cobra.Command{
	Use:   "toggle <block-id>",
	Short: "Toggle a block's bookmark flag",
	Args:  cobra.ExactArgs(1),
	RunE:  runBookmarksToggle,
}

func init() {
	bookmarksCmd.AddCommand(bookmarksToggleCmd)
	rootCmd.AddCommand(bookmarksCmd)
}

func runBookmarks(cmd *cobra.Command, args []string) error {
	m, err := loadManager()
	if err != nil {
		return err
	}

	marked := m.Bookmarked()
	if len(marked) == 0 {
		fmt.Println("No bookmarked blocks.")
		return nil
	}

	fmt.Print(render.List(marked))
	return nil
}

func runBookmarksToggle(cmd *cobra.Command, args []string) error {
	m, err := loadManager()
	if err != nil {
		return err
	}

	b, err := resolveBlock(m, args[0])
	if err != nil {
		return err
	}

	if err := m.ToggleBookmark(b.ID); err != nil {
		return err
	}
	if err := saveManager(m); err != nil {
		return err
	}

	log.Debug(log.CatHistory, "Bookmark toggled", "id", b.ID, "bookmarked", b.IsBookmarked())
	if b.IsBookmarked() {
		fmt.Printf("Bookmarked %s\n", b.ID)
	} else {
		fmt.Printf("Removed bookmark from %s\n", b.ID)
	}
	return nil
}
