package report

import (
	"sort"

	"github.com/tealeg/xlsx/v3"

	"github.com/dentalanalytics/clinicas/clinicas"
)

const SheetName = "Clinicas"

var leadingColumns = []string{clinicas.FieldId, clinicas.FieldName, clinicas.FieldTaxId}

// Report lays out a list of clinicas on a single sheet, one row per clinica
// and one column per top level field present in any of them.
type Report struct {
	list []clinicas.Clinica
}

func NewReport(list []clinicas.Clinica) Report {
	return Report{list: list}
}

func (r Report) Generate() (*xlsx.File, error) {
	report := xlsx.NewFile()
	sh, err := report.AddSheet(SheetName)
	if err != nil {
		return nil, err
	}

	columns := r.Columns()
	header := sh.AddRow()
	for _, column := range columns {
		header.AddCell().SetString(column)
	}

	for _, clinica := range r.list {
		row := sh.AddRow()
		for _, column := range columns {
			row.AddCell().SetString(clinica.String(column))
		}
	}

	return report, nil
}

// Columns returns the id, name and tax id columns followed by the remaining
// fields in alphabetical order.
func (r Report) Columns() []string {
	seen := map[string]struct{}{}
	for _, column := range leadingColumns {
		seen[column] = struct{}{}
	}

	var rest []string
	for _, clinica := range r.list {
		for field := range clinica {
			if _, ok := seen[field]; !ok {
				seen[field] = struct{}{}
				rest = append(rest, field)
			}
		}
	}
	sort.Strings(rest)

	return append(append([]string{}, leadingColumns...), rest...)
}
