package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/blockdeck/internal/render"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search history by command substring",
	Long:  `List the blocks whose command contains the query as a case-sensitive substring, in history order.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	m, err := loadManager()
	if err != nil {
		return err
	}

	matches := m.Search(args[0])
	if len(matches) == 0 {
		fmt.Printf("No blocks match %q.\n", args[0])
		return nil
	}

	fmt.Print(render.List(matches))
	return nil
}
