package stockman

import (
	"bytes"
	"strings"
	"testing"
)

func TestDecodeRecordsColumnOrder(t *testing.T) {
	// columns shuffled and an extra one in the middle
	in := "category,price,sku,name,quantity\n" +
		"Electronics,999.99,SKU-1,Laptop,3\n"

	records, skipped, err := DecodeRecords(strings.NewReader(in), "stock.csv")
	if err != nil {
		t.Fatalf("DecodeRecords() returned error: %v", err)
	}
	if skipped != 0 {
		t.Errorf("DecodeRecords() skipped %d rows, want 0", skipped)
	}
	if len(records) != 1 {
		t.Fatalf("DecodeRecords() returned %d records, want 1", len(records))
	}

	rec := records[0]
	if rec.Name != "Laptop" || rec.Quantity != 3 || !rec.Price.Equal(P(999.99)) || rec.Category != "Electronics" {
		t.Errorf("DecodeRecords() = %+v", rec)
	}
}

func TestDecodeRecordsMissingColumn(t *testing.T) {
	in := "name,quantity,category\nLaptop,3,Electronics\n"

	_, _, err := DecodeRecords(strings.NewReader(in), "stock.csv")
	if err == nil {
		t.Fatal("DecodeRecords() without a price column should fail")
	}
	if !strings.Contains(err.Error(), "price") {
		t.Errorf("error %q should name the missing column", err)
	}
}

func TestDecodeRecordsSkipsShortRows(t *testing.T) {
	in := "name,quantity,price,category\n" +
		"Laptop,3,999.99,Electronics\n" +
		"Mouse,4\n"

	records, skipped, err := DecodeRecords(strings.NewReader(in), "stock.csv")
	if err != nil {
		t.Fatalf("DecodeRecords() returned error: %v", err)
	}
	if len(records) != 1 || skipped != 1 {
		t.Errorf("DecodeRecords() = %d records, %d skipped, want 1 and 1", len(records), skipped)
	}
}

func TestEncodeTableRoundTrip(t *testing.T) {
	table := NewTable(
		R("Laptop", 3, 999.99, "Electronics"),
		R("Chair", 12, 45.5, "Furniture"),
	)

	var b bytes.Buffer
	if err := EncodeTable(&b, table); err != nil {
		t.Fatalf("EncodeTable() returned error: %v", err)
	}

	records, skipped, err := DecodeRecords(&b, "combined.csv")
	if err != nil {
		t.Fatalf("DecodeRecords() returned error: %v", err)
	}
	if skipped != 0 {
		t.Errorf("round trip skipped %d rows", skipped)
	}
	if len(records) != table.Len() {
		t.Fatalf("round trip lost records: wrote %d, read %d", table.Len(), len(records))
	}
	for i, rec := range records {
		want := table.Records()[i]
		if rec.Name != want.Name || rec.Quantity != want.Quantity ||
			!rec.Price.Equal(want.Price) || rec.Category != want.Category {
			t.Errorf("record[%d] = %+v, want %+v", i, rec, want)
		}
	}
}
