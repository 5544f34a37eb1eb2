package importer

// TableKind distinguishes the two metric tables an export can feed.
type TableKind string

const (
	TableKeywords TableKind = "keywords"
	TablePages    TableKind = "pages"
)

// Role is one of the canonical fields every import is normalized toward.
type Role string

const (
	RoleName        Role = "name"
	RoleClicks      Role = "clicks"
	RoleImpressions Role = "impressions"
	RoleCTR         Role = "ctr"
	RolePosition    Role = "position"
)

// Column is an ordered sequence of raw string cells under a named header.
type Column struct {
	Name  string
	Cells []string
}

// RawTable is the explicit tabular contract the pipeline operates over:
// an ordered list of named columns, all the same length. It is produced
// by the readers and consumed by the standardizer, so the matcher and
// cleaner never see a reader-specific structure.
type RawTable struct {
	Name    string
	Columns []Column
}

// Headers returns the column names in table order.
func (t RawTable) Headers() []string {
	headers := make([]string, 0, len(t.Columns))
	for _, col := range t.Columns {
		headers = append(headers, col.Name)
	}
	return headers
}

// RowCount returns the number of data rows in the table.
func (t RawTable) RowCount() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0].Cells)
}

// Record is one standardized entity observation, ready for persistence.
// CTR and Position stay nil when the source had no usable value: zero is
// a real rank and a real rate, so missing data must not collapse into it.
type Record struct {
	Name        string
	Clicks      int
	Impressions int
	CTR         *float64
	Position    *float64
}

// ColumnMapping records which source column served each canonical role.
// Empty string means the role went unmatched.
type ColumnMapping struct {
	Name        string `json:"name"`
	Clicks      string `json:"clicks"`
	Impressions string `json:"impressions"`
	CTR         string `json:"ctr"`
	Position    string `json:"position"`
}

// Warning describes a role the matcher could not place in the source table.
type Warning struct {
	Role    Role   `json:"role"`
	Message string `json:"message"`
}

// PortionReport describes the outcome of importing one portion (the
// keyword-like or page-like part) of an uploaded file.
type PortionReport struct {
	SourceName string        `json:"source_name"`
	Mapping    ColumnMapping `json:"mapping"`
	Warnings   []Warning     `json:"warnings"`
	RowsRead   int           `json:"rows_read"`
	RowsSaved  int           `json:"rows_saved"`
}

// ImportReport is the full outcome of one import run, including the
// debug surface (detected sheets, chosen columns) shown to the user.
type ImportReport struct {
	Period     string         `json:"period"`
	SheetNames []string       `json:"sheet_names,omitempty"`
	Keywords   *PortionReport `json:"keywords,omitempty"`
	Pages      *PortionReport `json:"pages,omitempty"`
}

// SavedTotal returns the number of rows persisted across both portions.
func (r *ImportReport) SavedTotal() int {
	total := 0
	if r.Keywords != nil {
		total += r.Keywords.RowsSaved
	}
	if r.Pages != nil {
		total += r.Pages.RowsSaved
	}
	return total
}
