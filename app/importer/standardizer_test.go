package importer

import (
	"testing"
)

func newTestTable(headers []string, rows [][]string) RawTable {
	all := append([][]string{headers}, rows...)
	return tableFromRows("test", all)
}

func TestStandardizer_AllRolesPresent(t *testing.T) {
	standardizer := NewStandardizer(NewMatcher())

	table := newTestTable(
		[]string{"Top queries", "Clicks", "Impressions", "CTR", "Position"},
		[][]string{
			{"running shoes", "1,200", "50,000", "2.4%", "4.1"},
		},
	)

	records, mapping, warnings := standardizer.Run(table, TableKeywords)

	if len(warnings) != 0 {
		t.Errorf("Expected no warnings, got %v", warnings)
	}
	if mapping.Name != "Top queries" || mapping.Clicks != "Clicks" {
		t.Errorf("Unexpected mapping: %+v", mapping)
	}
	if len(records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(records))
	}

	record := records[0]
	if record.Name != "running shoes" {
		t.Errorf("Expected name 'running shoes', got %q", record.Name)
	}
	if record.Clicks != 1200 {
		t.Errorf("Expected clicks 1200, got %d", record.Clicks)
	}
	if record.Impressions != 50000 {
		t.Errorf("Expected impressions 50000, got %d", record.Impressions)
	}
	if record.CTR == nil || *record.CTR != 2.4 {
		t.Errorf("Expected ctr 2.4, got %v", record.CTR)
	}
	if record.Position == nil || *record.Position != 4.1 {
		t.Errorf("Expected position 4.1, got %v", record.Position)
	}
}

func TestStandardizer_MissingNumericColumnsDefault(t *testing.T) {
	standardizer := NewStandardizer(NewMatcher())

	table := newTestTable(
		[]string{"Keyword"},
		[][]string{
			{"running shoes"},
			{"trail boots"},
		},
	)

	records, mapping, warnings := standardizer.Run(table, TableKeywords)

	if len(warnings) != 4 {
		t.Fatalf("Expected 4 warnings for the unmatched roles, got %d: %v", len(warnings), warnings)
	}
	warned := map[Role]bool{}
	for _, w := range warnings {
		warned[w.Role] = true
	}
	for _, role := range []Role{RoleClicks, RoleImpressions, RoleCTR, RolePosition} {
		if !warned[role] {
			t.Errorf("Expected warning for role %s", role)
		}
	}

	if mapping.Name != "Keyword" {
		t.Errorf("Expected name column 'Keyword', got %q", mapping.Name)
	}

	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}
	for _, record := range records {
		if record.Clicks != 0 || record.Impressions != 0 {
			t.Errorf("Expected zero clicks/impressions, got %+v", record)
		}
		if record.CTR != nil || record.Position != nil {
			t.Errorf("Expected nil ctr/position for missing columns, got %+v", record)
		}
	}
}

func TestStandardizer_DropsEmptyNames(t *testing.T) {
	standardizer := NewStandardizer(NewMatcher())

	table := newTestTable(
		[]string{"Query", "Clicks"},
		[][]string{
			{"shoes", "10"},
			{"   ", "20"},
			{"", "30"},
			{"boots", "40"},
		},
	)

	records, _, _ := standardizer.Run(table, TableKeywords)

	if len(records) != 2 {
		t.Fatalf("Expected 2 records after dropping empty names, got %d", len(records))
	}
	if records[0].Name != "shoes" || records[1].Name != "boots" {
		t.Errorf("Expected input order preserved, got %+v", records)
	}
}

func TestStandardizer_MalformedValuesDegrade(t *testing.T) {
	standardizer := NewStandardizer(NewMatcher())

	table := newTestTable(
		[]string{"Query", "Clicks", "CTR"},
		[][]string{
			{"shoes", "n/a", "garbage"},
		},
	)

	records, _, _ := standardizer.Run(table, TableKeywords)

	if len(records) != 1 {
		t.Fatalf("Expected the degraded record to survive, got %d records", len(records))
	}
	if records[0].Clicks != 0 {
		t.Errorf("Expected malformed clicks to fill 0, got %d", records[0].Clicks)
	}
	if records[0].CTR != nil {
		t.Errorf("Expected malformed ctr to stay nil, got %v", *records[0].CTR)
	}
}

func TestStandardizer_PageTable(t *testing.T) {
	standardizer := NewStandardizer(NewMatcher())

	table := newTestTable(
		[]string{"Top pages", "Clicks", "Impressions"},
		[][]string{
			{"https://example.com/shoes", "5", "100"},
		},
	)

	records, mapping, _ := standardizer.Run(table, TablePages)

	if mapping.Name != "Top pages" {
		t.Errorf("Expected page name column 'Top pages', got %q", mapping.Name)
	}
	if len(records) != 1 || records[0].Name != "https://example.com/shoes" {
		t.Errorf("Unexpected records: %+v", records)
	}
}

func TestStandardizer_NoNameColumnYieldsNoRecords(t *testing.T) {
	standardizer := NewStandardizer(NewMatcher())

	table := newTestTable(
		[]string{"Clicks", "Impressions"},
		[][]string{
			{"10", "100"},
		},
	)

	records, _, warnings := standardizer.Run(table, TableKeywords)

	if len(records) != 0 {
		t.Errorf("Expected no records without a name column, got %d", len(records))
	}

	warned := false
	for _, w := range warnings {
		if w.Role == RoleName {
			warned = true
		}
	}
	if !warned {
		t.Error("Expected a warning for the unmatched name role")
	}
}
