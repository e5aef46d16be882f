// Package renderer turns tables and reports into markdown for
// terminal display.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"text/template"

	"github.com/merigot/stockman"
)

//go:embed *.md
var templates embed.FS

// recordRow is the display-ready form of one stock record.
type recordRow struct {
	Name     string
	Quantity string
	Price    string
	Category string
}

// Records renders stock records as a markdown table. 'currency' is an
// optional ISO 4217 code used to format prices; empty means plain
// numbers.
func Records(title string, records []stockman.Record, currency string) string {
	data := struct {
		Title string
		Rows  []recordRow
	}{Title: title}

	for _, rec := range records {
		data.Rows = append(data.Rows, recordRow{
			Name:     rec.Name,
			Quantity: strconv.FormatInt(rec.Quantity, 10),
			Price:    rec.Price.Format(currency),
			Category: rec.Category,
		})
	}
	return renderTemplate("records", "records.md", data)
}

// summaryRow is the display-ready form of one report row.
type summaryRow struct {
	Category      string
	TotalQuantity string
	AveragePrice  string
}

// Summary renders a per-category report as a markdown table.
func Summary(rows []stockman.SummaryRow, currency string) string {
	data := struct {
		Rows []summaryRow
	}{}

	for _, row := range rows {
		data.Rows = append(data.Rows, summaryRow{
			Category:      row.Category,
			TotalQuantity: strconv.FormatInt(row.TotalQuantity, 10),
			AveragePrice:  row.AveragePrice.Format(currency),
		})
	}
	return renderTemplate("summary", "summary.md", data)
}

// Consolidation renders the outcome of a consolidation run: the files
// read and the record count.
func Consolidation(t *stockman.Table) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Consolidation\n\n")
	for _, file := range t.Files() {
		fmt.Fprintf(&b, "- %s\n", file)
	}
	fmt.Fprintf(&b, "\n%d records consolidated from %d files.\n", t.Len(), len(t.Files()))
	if t.Skipped() > 0 {
		fmt.Fprintf(&b, "\n%d malformed rows were skipped (see warnings above).\n", t.Skipped())
	}
	return b.String()
}

// renderTemplate is a utility to render one embedded template file
// with the given data.
func renderTemplate(templateName, file string, data any) string {
	content, err := fs.ReadFile(templates, file)
	if err != nil {
		return fmt.Sprintf("error reading template %q: %v", file, err)
	}
	tmpl, err := template.New(templateName).Parse(string(content))
	if err != nil {
		return fmt.Sprintf("error parsing template %q: %v", file, err)
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
