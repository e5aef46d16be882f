package stockman

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSummarize(t *testing.T) {
	table := NewTable(
		R("a1", 10, 2.0, "A"),
		R("a2", 5, 4.0, "A"),
		R("b1", 3, 9.0, "B"),
	)

	rows := table.Summarize()
	if len(rows) != 2 {
		t.Fatalf("Summarize() returned %d rows, want 2", len(rows))
	}

	a, b := rows[0], rows[1]
	if a.Category != "A" || b.Category != "B" {
		t.Fatalf("Summarize() rows out of order: %q then %q", a.Category, b.Category)
	}
	if a.TotalQuantity != 15 || !a.AveragePrice.Equal(P(3.0)) {
		t.Errorf("category A = {total: %d, average: %v}, want {15, 3}", a.TotalQuantity, a.AveragePrice)
	}
	if b.TotalQuantity != 3 || !b.AveragePrice.Equal(P(9.0)) {
		t.Errorf("category B = {total: %d, average: %v}, want {3, 9}", b.TotalQuantity, b.AveragePrice)
	}
}

func TestSummarizeRoundsAverage(t *testing.T) {
	table := NewTable(
		R("x", 1, 1.0, "C"),
		R("y", 1, 1.0, "C"),
		R("z", 1, 2.0, "C"),
	)

	rows := table.Summarize()
	if len(rows) != 1 {
		t.Fatalf("Summarize() returned %d rows, want 1", len(rows))
	}
	// 4/3 rounded to 2 places
	if got, want := rows[0].AveragePrice, P(1.33); !got.Equal(want) {
		t.Errorf("average price = %v, want %v", got, want)
	}
}

func TestSummarizeEmptyTable(t *testing.T) {
	if rows := NewTable().Summarize(); len(rows) != 0 {
		t.Errorf("Summarize() of empty table returned %d rows, want 0", len(rows))
	}
}

func TestEncodeSummary(t *testing.T) {
	rows := []SummaryRow{
		{Category: "Electronics", TotalQuantity: 245, AveragePrice: P(699.99)},
		{Category: "Furniture", TotalQuantity: 17, AveragePrice: P(82.75)},
	}

	var b bytes.Buffer
	if err := EncodeSummary(&b, rows); err != nil {
		t.Fatalf("EncodeSummary() returned error: %v", err)
	}

	want := "category,total_quantity,average_price\n" +
		"Electronics,245,699.99\n" +
		"Furniture,17,82.75\n"
	if b.String() != want {
		t.Errorf("EncodeSummary() wrote:\n%s\nwant:\n%s", b.String(), want)
	}
}

func TestSummaryRoundTrip(t *testing.T) {
	table := NewTable(
		R("Laptop", 3, 999.99, "Electronics"),
		R("Phone", 10, 550, "Electronics"),
		R("Chair", 12, 45.5, "Furniture"),
	)
	written := table.Summarize()

	path := filepath.Join(t.TempDir(), "report.csv")
	if err := SaveSummary(path, written); err != nil {
		t.Fatalf("SaveSummary() returned error: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	read, err := DecodeSummary(f)
	if err != nil {
		t.Fatalf("DecodeSummary() returned error: %v", err)
	}
	if len(read) != len(written) {
		t.Fatalf("round trip lost rows: wrote %d, read %d", len(written), len(read))
	}
	for i := range written {
		if read[i].Category != written[i].Category ||
			read[i].TotalQuantity != written[i].TotalQuantity ||
			!read[i].AveragePrice.Equal(written[i].AveragePrice) {
			t.Errorf("row[%d] = %+v, want %+v", i, read[i], written[i])
		}
	}
}

func TestSaveSummaryFailure(t *testing.T) {
	err := SaveSummary(filepath.Join(t.TempDir(), "missing", "report.csv"), nil)
	if err == nil {
		t.Fatal("SaveSummary() into a missing directory should fail")
	}
	if !strings.Contains(err.Error(), "report.csv") {
		t.Errorf("SaveSummary() error %q should name the report path", err)
	}
}
