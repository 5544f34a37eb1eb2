package importer

import (
	"fmt"
	"strings"
)

// Standardizer builds canonical records from a raw table using the
// matcher's role-to-column mapping. It is a pure transform: problems
// degrade to defaults and warnings, never errors.
type Standardizer struct {
	matcher *Matcher
}

func NewStandardizer(matcher *Matcher) *Standardizer {
	return &Standardizer{matcher: matcher}
}

// Run standardizes one table. Missing clicks/impressions fill with 0;
// missing ctr/position stay nil. Rows whose entity name is empty after
// trimming are dropped. Output preserves input row order. One warning
// is emitted per role the matcher could not place.
func (s *Standardizer) Run(table RawTable, kind TableKind) ([]Record, ColumnMapping, []Warning) {
	headers := table.Headers()

	mapping := ColumnMapping{}
	var warnings []Warning

	match := func(role Role) string {
		name, ok := s.matcher.MatchColumn(headers, kind, role)
		if !ok {
			warnings = append(warnings, Warning{
				Role:    role,
				Message: fmt.Sprintf("no column matched role %q, using default", role),
			})
			return ""
		}
		return name
	}

	mapping.Name = match(RoleName)
	mapping.Clicks = match(RoleClicks)
	mapping.Impressions = match(RoleImpressions)
	mapping.CTR = match(RoleCTR)
	mapping.Position = match(RolePosition)

	names := table.column(mapping.Name)
	clicks := table.column(mapping.Clicks)
	impressions := table.column(mapping.Impressions)
	ctrs := table.column(mapping.CTR)
	positions := table.column(mapping.Position)

	records := make([]Record, 0, table.RowCount())
	for i := 0; i < table.RowCount(); i++ {
		name := strings.TrimSpace(cell(names, i))
		if name == "" {
			continue
		}

		record := Record{
			Name:        name,
			Clicks:      intOrZero(cell(clicks, i)),
			Impressions: intOrZero(cell(impressions, i)),
			CTR:         floatOrNil(cell(ctrs, i)),
			Position:    floatOrNil(cell(positions, i)),
		}
		records = append(records, record)
	}

	return records, mapping, warnings
}

// column returns the cells under the named header, or nil when the name
// is empty or absent; nil columns read as all-missing.
func (t RawTable) column(name string) []string {
	if name == "" {
		return nil
	}
	for _, col := range t.Columns {
		if col.Name == name {
			return col.Cells
		}
	}
	return nil
}

func cell(cells []string, i int) string {
	if i >= len(cells) {
		return ""
	}
	return cells[i]
}

func intOrZero(raw string) int {
	value, ok := CleanNumeric(raw)
	if !ok {
		return 0
	}
	return int(value)
}

func floatOrNil(raw string) *float64 {
	value, ok := CleanNumeric(raw)
	if !ok {
		return nil
	}
	return &value
}
