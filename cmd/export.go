package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/blockdeck/internal/log"
	"github.com/zjrosen/blockdeck/internal/storage"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export history to a file",
	Long: `Write the history to a file in one of three formats. JSON is
full-fidelity and can be loaded back; CSV and text are write-only exports.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "output format: json, csv, or text")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "destination file (required)")
	_ = exportCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	format, err := storage.ParseFormat(exportFormat)
	if err != nil {
		return err
	}

	m, err := loadManager()
	if err != nil {
		return err
	}

	blocks := m.Blocks()
	if err := storage.Save(blocks, exportOut, format); err != nil {
		return err
	}

	log.Debug(log.CatStorage, "History exported", "path", exportOut, "format", format.String(), "blocks", len(blocks))
	fmt.Printf("Exported %d blocks to %s (%s)\n", len(blocks), exportOut, format)
	return nil
}
