package stockman

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
)

// This file contains the CSV codec for stock records.
//
// The format is deliberately loose on input: each file carries its own
// header row, the four required columns may appear in any order, and
// extra columns are ignored. Output is canonical: the four columns in
// a fixed order, nothing else.

// DecodeRecords reads stock records from 'r' in CSV format.
//
// The first row must be a header naming at least the four required
// columns. Rows that are malformed (missing a required cell,
// unparseable or negative quantity or price) are skipped with a warning
// naming 'filename' and the line number; the number of skipped rows is
// returned alongside the good records. filename is for messages only.
func DecodeRecords(r io.Reader, filename string) (records []Record, skipped int, err error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("cannot read header of %q: %w", filename, err)
	}

	// Map each required field to its column index in this file.
	index := make(map[Field]int, len(Fields))
	for i, col := range header {
		if f, err := ParseField(col); err == nil {
			index[f] = i
		}
		// extra columns are tolerated and ignored
	}
	for _, f := range Fields {
		if _, ok := index[f]; !ok {
			return nil, 0, fmt.Errorf("%q: missing required column %q", filename, f)
		}
	}

	line := 1 // header was line 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			log.Printf("warning: %s line %d: skipping malformed row: %v", filename, line, err)
			skipped++
			continue
		}
		rec, err := decodeRow(row, index)
		if err != nil {
			log.Printf("warning: %s line %d: skipping row: %v", filename, line, err)
			skipped++
			continue
		}
		records = append(records, rec)
	}
	return records, skipped, nil
}

// decodeRow converts one CSV row into a Record using the header's
// column index.
func decodeRow(row []string, index map[Field]int) (Record, error) {
	cell := func(f Field) (string, error) {
		i := index[f]
		if i >= len(row) || row[i] == "" {
			return "", fmt.Errorf("missing %q value", f)
		}
		return row[i], nil
	}

	var rec Record
	var err error
	if rec.Name, err = cell(FieldName); err != nil {
		return Record{}, err
	}
	if rec.Category, err = cell(FieldCategory); err != nil {
		return Record{}, err
	}

	q, err := cell(FieldQuantity)
	if err != nil {
		return Record{}, err
	}
	if rec.Quantity, err = ParseQuantity(q); err != nil {
		return Record{}, err
	}

	p, err := cell(FieldPrice)
	if err != nil {
		return Record{}, err
	}
	if rec.Price, err = ParsePrice(p); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// EncodeTable writes the consolidated table to 'w' as a single CSV
// file in the canonical column order.
func EncodeTable(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"name", "quantity", "price", "category"}); err != nil {
		return fmt.Errorf("cannot write header: %w", err)
	}
	for _, rec := range t.Records() {
		row := []string{
			rec.Name,
			fmt.Sprintf("%d", rec.Quantity),
			rec.Price.String(),
			rec.Category,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("cannot write record %q: %w", rec.Name, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
