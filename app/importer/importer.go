package importer

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrUnrecognizedSchema is returned when neither a keyword-like nor a
// page-like portion could be located in an uploaded file.
var ErrUnrecognizedSchema = errors.New("no recognizable keyword or page data found")

// MetricStore is the append-only sink the importer writes standardized
// records into. Implemented by database.MetricRepository.
type MetricStore interface {
	Append(records []Record, period string) (int, error)
}

// Importer runs the full normalization pipeline for one uploaded file:
// period inference, sheet/column matching, standardization and the
// append to the store.
type Importer struct {
	matcher      *Matcher
	standardizer *Standardizer
	keywordStore MetricStore
	pageStore    MetricStore
}

func NewImporter(matcher *Matcher, keywordStore, pageStore MetricStore) *Importer {
	return &Importer{
		matcher:      matcher,
		standardizer: NewStandardizer(matcher),
		keywordStore: keywordStore,
		pageStore:    pageStore,
	}
}

// Run imports one export file. periodOverride, when non-empty, wins
// over the label inferred from the filename; fallback is the label used
// when the filename has no month token (callers typically pass the
// current month). A portion with no recognizable schema is skipped with
// a warning; the whole import fails only when no portion matched at all
// or when the store rejects a write.
func (i *Importer) Run(filename string, data []byte, periodOverride, fallback string) (*ImportReport, error) {
	period := periodOverride
	if period == "" {
		period = InferPeriod(filename, fallback)
	}

	report := &ImportReport{Period: period}

	if IsWorkbook(filename, data) {
		if err := i.runWorkbook(filename, data, period, report); err != nil {
			return nil, err
		}
	} else {
		if err := i.runDelimited(filename, data, period, report); err != nil {
			return nil, err
		}
	}

	if report.Keywords == nil && report.Pages == nil {
		return nil, fmt.Errorf("%w in %q", ErrUnrecognizedSchema, filename)
	}

	slog.Info("Import complete", "file", filename, "period", period, "rows_saved", report.SavedTotal())
	return report, nil
}

func (i *Importer) runWorkbook(filename string, data []byte, period string, report *ImportReport) error {
	tables, err := ReadWorkbook(data)
	if err != nil {
		return err
	}

	sheetNames := make([]string, 0, len(tables))
	byName := make(map[string]RawTable, len(tables))
	for _, table := range tables {
		sheetNames = append(sheetNames, table.Name)
		byName[table.Name] = table
	}
	report.SheetNames = sheetNames

	if sheet, ok := i.matcher.MatchSheet(sheetNames, TableKeywords); ok {
		portion, err := i.importPortion(byName[sheet], TableKeywords, period)
		if err != nil {
			return err
		}
		report.Keywords = portion
	} else {
		slog.Warn("No keyword sheet recognized", "file", filename, "sheets", sheetNames)
	}

	if sheet, ok := i.matcher.MatchSheet(sheetNames, TablePages); ok {
		portion, err := i.importPortion(byName[sheet], TablePages, period)
		if err != nil {
			return err
		}
		report.Pages = portion
	} else {
		slog.Warn("No page sheet recognized", "file", filename, "sheets", sheetNames)
	}

	return nil
}

// runDelimited imports a single-table text export. The table kind is
// decided by which entity-name role matches the header; keyword
// candidates are tried first, matching the workbook sheet order.
func (i *Importer) runDelimited(filename string, data []byte, period string, report *ImportReport) error {
	table, err := ReadDelimited(filename, data)
	if err != nil {
		return err
	}

	headers := table.Headers()

	if _, ok := i.matcher.MatchColumn(headers, TableKeywords, RoleName); ok {
		portion, err := i.importPortion(table, TableKeywords, period)
		if err != nil {
			return err
		}
		report.Keywords = portion
		return nil
	}

	if _, ok := i.matcher.MatchColumn(headers, TablePages, RoleName); ok {
		portion, err := i.importPortion(table, TablePages, period)
		if err != nil {
			return err
		}
		report.Pages = portion
		return nil
	}

	slog.Warn("No entity column recognized", "file", filename, "headers", headers)
	return nil
}

func (i *Importer) importPortion(table RawTable, kind TableKind, period string) (*PortionReport, error) {
	records, mapping, warnings := i.standardizer.Run(table, kind)

	store := i.keywordStore
	if kind == TablePages {
		store = i.pageStore
	}

	saved, err := store.Append(records, period)
	if err != nil {
		return nil, fmt.Errorf("failed to save %s rows: %w", kind, err)
	}

	return &PortionReport{
		SourceName: table.Name,
		Mapping:    mapping,
		Warnings:   warnings,
		RowsRead:   table.RowCount(),
		RowsSaved:  saved,
	}, nil
}
