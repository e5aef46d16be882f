package stockman

import "testing"

func searchFixture() *Table {
	return NewTable(
		R("Laptop", 3, 999.99, "Electronics"),
		R("Widget", 100, 2.5, "Widgets"),
		R("Table", 5, 120, "Furniture"),
		R("Gadget", 3, 2.5, "Widgets"),
	)
}

func TestSearch(t *testing.T) {
	testCases := []struct {
		name      string
		field     Field
		value     string
		wantNames []string
		expectErr bool
	}{
		{"by category", FieldCategory, "Widgets", []string{"Widget", "Gadget"}, false},
		{"by name", FieldName, "Table", []string{"Table"}, false},
		{"no match", FieldCategory, "Groceries", nil, false},
		{"case sensitive", FieldCategory, "widgets", nil, false},
		{"by quantity", FieldQuantity, "3", []string{"Laptop", "Gadget"}, false},
		{"by price numeric equality", FieldPrice, "2.50", []string{"Widget", "Gadget"}, false},
		{"by price integer form", FieldPrice, "120", []string{"Table"}, false},
		{"quantity not a number", FieldQuantity, "many", nil, true},
		{"price not a number", FieldPrice, "cheap", nil, true},
	}

	table := searchFixture()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := table.Search(tc.field, tc.value)
			hasErr := err != nil
			if hasErr != tc.expectErr {
				t.Fatalf("Search(%v, %q) returned error: %v, want error: %v", tc.field, tc.value, err, tc.expectErr)
			}
			if len(got) != len(tc.wantNames) {
				t.Fatalf("Search(%v, %q) returned %d records, want %d", tc.field, tc.value, len(got), len(tc.wantNames))
			}
			for i, rec := range got {
				if rec.Name != tc.wantNames[i] {
					t.Errorf("result[%d] = %q, want %q", i, rec.Name, tc.wantNames[i])
				}
			}
		})
	}
}

func TestSearchPreservesTableOrder(t *testing.T) {
	table := searchFixture()
	got, err := table.Search(FieldCategory, "Widgets")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].Name != "Widget" || got[1].Name != "Gadget" {
		t.Errorf("Search() did not preserve consolidation order: %+v", got)
	}
}
