package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dentalanalytics/clinicas/clinicas"
	"github.com/dentalanalytics/clinicas/store"
)

var listSearch string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List clinicas",
	Long:  "The list command prints the id, name and tax id of every clinica matching the search",
	RunE:  func(cmd *cobra.Command, args []string) error { return Run(listClinicas) },
}

func listClinicas(service clinicas.Service) error {
	ctx, cancel := store.NewDbContext()
	defer cancel()

	list, err := service.List(ctx, searchFilter(listSearch))
	if err != nil {
		return err
	}

	for _, clinica := range list {
		fmt.Printf("%s %s %s\n",
			clinica.String(clinicas.FieldId),
			clinica.String(clinicas.FieldName),
			clinica.String(clinicas.FieldTaxId),
		)
	}
	fmt.Printf("Found %v clinicas\n", len(list))

	return nil
}

func searchFilter(search string) *clinicas.Filter {
	filter := &clinicas.Filter{}
	if search != "" {
		filter.Search = &search
	}
	return filter
}

func init() {
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "Case-insensitive pattern matched against the name and the tax id")
	rootCmd.AddCommand(listCmd)
}
