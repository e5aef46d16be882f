package stockman

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
)

// DefaultReportFile is the report path used when the caller does not
// supply one.
const DefaultReportFile = "report.csv"

// SummaryRow is the per-category aggregate derived from a consolidated
// table.
type SummaryRow struct {
	Category      string
	TotalQuantity int64
	AveragePrice  Price
}

// Summarize groups the table's records by category and computes, for
// each category, the total quantity and the arithmetic mean price
// rounded to 2 decimal places.
//
// The result is sorted by category name. A category only appears when
// at least one record carries it, so the mean is always well defined.
func (t *Table) Summarize() []SummaryRow {
	type acc struct {
		count    int64
		quantity int64
		price    Price
	}
	groups := make(map[string]*acc)
	for _, rec := range t.records {
		g, ok := groups[rec.Category]
		if !ok {
			g = &acc{}
			groups[rec.Category] = g
		}
		g.count++
		g.quantity += rec.Quantity
		g.price = g.price.Add(rec.Price)
	}

	rows := make([]SummaryRow, 0, len(groups))
	for category, g := range groups {
		rows = append(rows, SummaryRow{
			Category:      category,
			TotalQuantity: g.quantity,
			AveragePrice:  g.price.Div(g.count).Round(2),
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Category < rows[j].Category })
	return rows
}

// EncodeSummary writes summary rows to 'w' as a CSV report with header
// "category,total_quantity,average_price".
func EncodeSummary(w io.Writer, rows []SummaryRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"category", "total_quantity", "average_price"}); err != nil {
		return fmt.Errorf("cannot write report header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			row.Category,
			fmt.Sprintf("%d", row.TotalQuantity),
			row.AveragePrice.String(),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("cannot write report row for category %q: %w", row.Category, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// DecodeSummary reads a summary report back from 'r'.
func DecodeSummary(r io.Reader) ([]SummaryRow, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("cannot read report header: %w", err)
	}
	if len(header) != 3 || header[0] != "category" || header[1] != "total_quantity" || header[2] != "average_price" {
		return nil, fmt.Errorf("unexpected report header %v", header)
	}

	var rows []SummaryRow
	line := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("cannot read report line %d: %w", line, err)
		}
		quantity, err := ParseQuantity(record[1])
		if err != nil {
			return nil, fmt.Errorf("report line %d: %w", line, err)
		}
		price, err := ParsePrice(record[2])
		if err != nil {
			return nil, fmt.Errorf("report line %d: %w", line, err)
		}
		rows = append(rows, SummaryRow{
			Category:      record[0],
			TotalQuantity: quantity,
			AveragePrice:  price,
		})
	}
	return rows, nil
}

// SaveSummary writes the report to a file at 'path', creating or
// truncating it.
func SaveSummary(path string, rows []SummaryRow) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot write report to %q: %w", path, err)
	}
	if err := EncodeSummary(f, rows); err != nil {
		f.Close()
		return fmt.Errorf("cannot write report to %q: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("cannot write report to %q: %w", path, err)
	}
	return nil
}
