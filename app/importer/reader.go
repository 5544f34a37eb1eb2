package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// xlsxMagic is the ZIP local-file-header signature; XLSX workbooks are
// ZIP containers.
var xlsxMagic = []byte{0x50, 0x4b, 0x03, 0x04}

// IsWorkbook reports whether the payload looks like an XLSX workbook,
// by extension or by content signature.
func IsWorkbook(filename string, data []byte) bool {
	lower := strings.ToLower(filename)
	if strings.HasSuffix(lower, ".xlsx") || strings.HasSuffix(lower, ".xlsm") {
		return true
	}
	return bytes.HasPrefix(data, xlsxMagic)
}

// ReadWorkbook reads every sheet of an XLSX workbook into raw tables,
// one per sheet in workbook order. The first row of each sheet is
// treated as the header row.
func ReadWorkbook(data []byte) ([]RawTable, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	var tables []RawTable
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
		}
		tables = append(tables, tableFromRows(sheet, rows))
	}

	return tables, nil
}

// ReadDelimited reads a delimited text export (comma, semicolon or tab
// separated) into a raw table. A UTF-8 byte-order mark is stripped and
// ragged rows are tolerated: short rows read as missing cells.
func ReadDelimited(name string, data []byte) (RawTable, error) {
	decoder := unicode.UTF8BOM.NewDecoder()
	stripped, err := io.ReadAll(transform.NewReader(bytes.NewReader(data), decoder))
	if err != nil {
		return RawTable{}, fmt.Errorf("failed to decode file: %w", err)
	}

	reader := csv.NewReader(bytes.NewReader(stripped))
	reader.Comma = sniffDelimiter(stripped)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return RawTable{}, fmt.Errorf("failed to parse delimited file: %w", err)
	}

	return tableFromRows(name, rows), nil
}

// sniffDelimiter picks the delimiter occurring most often in the header
// line, defaulting to comma.
func sniffDelimiter(data []byte) rune {
	header := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		header = data[:i]
	}

	best := ','
	bestCount := bytes.Count(header, []byte{','})
	for _, cand := range []byte{';', '\t'} {
		if count := bytes.Count(header, []byte{cand}); count > bestCount {
			best = rune(cand)
			bestCount = count
		}
	}
	return best
}

// tableFromRows builds a RawTable from a header row plus data rows.
// Cells beyond the header width are ignored; missing cells read empty.
func tableFromRows(name string, rows [][]string) RawTable {
	table := RawTable{Name: name}
	if len(rows) == 0 {
		return table
	}

	header := rows[0]
	data := rows[1:]

	table.Columns = make([]Column, len(header))
	for c, colName := range header {
		cells := make([]string, len(data))
		for r, row := range data {
			if c < len(row) {
				cells[r] = row[c]
			}
		}
		table.Columns[c] = Column{Name: colName, Cells: cells}
	}

	return table
}
