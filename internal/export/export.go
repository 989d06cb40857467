// Package export writes the lead log as CSV or XLSX.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/roofquote/internal/model"
)

// Formats accepted by Write.
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// SheetName is the worksheet written by WriteXLSX.
const SheetName = "Leads"

// Header is the column order of every export.
var Header = []string{
	"id", "created_at", "name", "email", "phone", "address", "source",
	"region", "region_name", "material", "low_estimate", "high_estimate", "currency",
	"roof_area_sqft", "roof_source", "deliveries", "failed",
}

// Row flattens one lead record in Header order.
func Row(rec model.LeadRecord) []string {
	l := rec.Lead
	row := []string{
		l.ID,
		l.CreatedAt.UTC().Format(time.RFC3339),
		l.Name,
		l.Email,
		l.Phone,
		l.Address,
		l.Source,
		"", "", "", "", "", "",
		"", "",
		strconv.Itoa(len(rec.Deliveries)),
		strconv.Itoa(rec.Failed()),
	}
	if q := l.Quote; q != nil {
		row[7] = q.Region
		row[8] = q.RegionName
		row[9] = q.Material.Name
		if !q.UnableToPrice {
			row[10] = strconv.FormatInt(q.LowEstimate, 10)
			row[11] = strconv.FormatInt(q.HighEstimate, 10)
		}
		row[12] = q.Currency
	}
	if a := l.Analysis; a != nil {
		row[13] = fmt.Sprintf("%.0f", a.RoofAreaSqFt)
		row[14] = a.Source
	}
	return row
}

// Write writes recs to w in format.
func Write(w io.Writer, format string, recs []model.LeadRecord) error {
	switch format {
	case FormatCSV:
		return WriteCSV(w, recs)
	case FormatXLSX:
		return WriteXLSX(w, recs)
	default:
		return eris.Errorf("export: unsupported format %q", format)
	}
}

// WriteCSV writes a header row followed by one row per record.
func WriteCSV(w io.Writer, recs []model.LeadRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return eris.Wrap(err, "export: write CSV header")
	}
	for _, rec := range recs {
		if err := cw.Write(Row(rec)); err != nil {
			return eris.Wrap(err, "export: write CSV row")
		}
	}
	cw.Flush()
	return eris.Wrap(cw.Error(), "export: flush CSV")
}

// WriteXLSX writes a single-sheet workbook. Estimate and area columns are
// numeric cells.
func WriteXLSX(w io.Writer, recs []model.LeadRecord) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet(SheetName)
	if err != nil {
		return eris.Wrap(err, "export: add sheet")
	}

	header := sheet.AddRow()
	for _, h := range Header {
		header.AddCell().SetString(h)
	}

	for _, rec := range recs {
		row := sheet.AddRow()
		for i, v := range Row(rec) {
			cell := row.AddCell()
			if n, err := strconv.ParseInt(v, 10, 64); err == nil && isNumericColumn(i) {
				cell.SetInt64(n)
				continue
			}
			cell.SetString(v)
		}
	}

	if err := f.Write(w); err != nil {
		return eris.Wrap(err, "export: write xlsx")
	}
	return nil
}

func isNumericColumn(i int) bool {
	switch Header[i] {
	case "low_estimate", "high_estimate", "roof_area_sqft", "deliveries", "failed":
		return true
	}
	return false
}

