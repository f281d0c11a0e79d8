// Package report renders query results as a single PDF table.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-pdf/fpdf"

	"hospitalinventory/m/domain"
)

// Table is a titled grid of text cells. Every row should have one cell per
// column.
type Table struct {
	Title   string
	Columns []string
	Rows    [][]string
}

const (
	pageMargin = 10.0
	rowHeight  = 7.0
)

// WritePDF renders t on landscape A4 pages, repeating the header row when
// the table breaks across pages.
func WritePDF(w io.Writer, t Table) error {
	if len(t.Columns) == 0 {
		return fmt.Errorf("report %q has no columns", t.Title)
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.SetTitle(t.Title, true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageWidth, pageHeight := pdf.GetPageSize()
	colWidth := (pageWidth - 2*pageMargin) / float64(len(t.Columns))

	header := func() {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetFillColor(230, 230, 230)
		for _, col := range t.Columns {
			pdf.CellFormat(colWidth, rowHeight, tr(col), "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 10)
	}

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, tr(t.Title), "", 1, "L", false, 0, "")
	pdf.Ln(2)
	header()

	for _, row := range t.Rows {
		if pdf.GetY()+rowHeight > pageHeight-pageMargin {
			pdf.AddPage()
			header()
		}
		for i := range t.Columns {
			var cell string
			if i < len(row) {
				cell = row[i]
			}
			pdf.CellFormat(colWidth, rowHeight, tr(cell), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}

// InventoryTable lays out report rows with the same columns the preview
// returns.
func InventoryTable(filter domain.ReportFilter, rows []domain.ReportRow) Table {
	t := Table{
		Title:   fmt.Sprintf("%s report %s to %s", filter.ResourceName, filter.Start, filter.End),
		Columns: []string{"name", "stock_count", "deduction", "date", "section"},
		Rows:    make([][]string, 0, len(rows)),
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{
			r.Name,
			strconv.FormatInt(r.StockCount, 10),
			strconv.FormatInt(r.Deduction, 10),
			r.Date.String(),
			r.Section,
		})
	}
	return t
}

// AssetTable lays out asset search results.
func AssetTable(assetName string, rows []domain.AssetSearchRow) Table {
	t := Table{
		Title:   assetName + " report",
		Columns: []string{"asset_name", "resource_name", "stock_count", "deduction", "date", "section"},
		Rows:    make([][]string, 0, len(rows)),
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{
			r.AssetName,
			r.ResourceName,
			strconv.FormatInt(r.StockCount, 10),
			strconv.FormatInt(r.Deduction, 10),
			r.Date.String(),
			r.Section,
		})
	}
	return t
}
