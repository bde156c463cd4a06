package command

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dentalanalytics/clinicas/clinicas"
	"github.com/dentalanalytics/clinicas/clinicas/report"
	"github.com/dentalanalytics/clinicas/store"
)

var (
	exportSearch string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export clinicas to a spreadsheet",
	Long:  "The export command writes every clinica matching the search to an xlsx file, one column per field",
	RunE:  func(cmd *cobra.Command, args []string) error { return Run(exportClinicas) },
}

func exportClinicas(service clinicas.Service, logger *zap.SugaredLogger) error {
	ctx, cancel := store.NewDbContext()
	defer cancel()

	list, err := service.List(ctx, searchFilter(exportSearch))
	if err != nil {
		return err
	}

	file, err := report.NewReport(list).Generate()
	if err != nil {
		return fmt.Errorf("unable to generate report: %w", err)
	}
	if err := file.Save(exportOutput); err != nil {
		return fmt.Errorf("unable to write report to %q: %w", exportOutput, err)
	}

	logger.Infow("exported clinicas", "count", len(list), "output", exportOutput)
	return nil
}

func init() {
	exportCmd.Flags().StringVarP(&exportSearch, "search", "s", "", "Case-insensitive pattern matched against the name and the tax id")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "clinicas.xlsx", "Path of the generated spreadsheet")
	rootCmd.AddCommand(exportCmd)
}
