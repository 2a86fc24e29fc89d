package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/blockdeck/internal/render"
)

var showCmd = &cobra.Command{
	Use:   "show <block-id>",
	Short: "Show one block in detail",
	Long:  `Display the full bordered view of a block. The ID may be abbreviated to any unique prefix.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	m, err := loadManager()
	if err != nil {
		return err
	}

	b, err := resolveBlock(m, args[0])
	if err != nil {
		return err
	}

	fmt.Print(render.Detailed(b))
	return nil
}
