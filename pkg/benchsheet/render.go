package benchsheet

import (
	"github.com/ukaji3/benchsheet-go/pkg/benchsheet/models"
	"github.com/ukaji3/benchsheet-go/pkg/benchsheet/scoring"
	"github.com/ukaji3/benchsheet-go/pkg/benchsheet/xlsx"
)

// Render converts a report into worksheets with localized headers. The
// benchmark weighted total becomes a formula over the six score cells when
// all of them are numeric.
func Render(report *models.Report, opts Options) []xlsx.Sheet {
	catalog := opts.catalog()
	sheets := make([]xlsx.Sheet, 0, len(report.Sheets))
	for _, sd := range report.Sheets {
		layout := models.Layouts[sd.Kind]
		sheet := xlsx.Sheet{
			Name:   sd.Title,
			Widths: layout.Widths,
			Header: make([]string, len(layout.Columns)),
			Rows:   make([][]xlsx.Cell, len(sd.Rows)),
		}
		for i, col := range layout.Columns {
			sheet.Header[i] = catalog.Header(report.Language, col)
		}
		for r, row := range sd.Rows {
			cells := make([]xlsx.Cell, len(layout.Columns))
			for i, col := range layout.Columns {
				cells[i] = xlsx.CellOf(row.Get(col))
			}
			if sd.Kind == models.SheetBenchmark {
				if composite, ok := scoring.Composite(row, opts.Weights); ok {
					expr := scoring.Formula(opts.Weights, layout, r+2)
					cells[layout.Index(models.ColWeightedTotal)] = xlsx.FormulaCellWithValue(expr, composite)
				}
			}
			sheet.Rows[r] = cells
		}
		sheets = append(sheets, sheet)
	}
	return sheets
}

// Assemble renders report and packs it into a workbook package.
func Assemble(report *models.Report, opts Options) (*xlsx.Package, error) {
	created := opts.now()
	return xlsx.Assemble(Render(report, opts), xlsx.Meta{
		Application: opts.Application,
		Language:    report.Language,
		Created:     created,
		Modified:    created,
	})
}
