package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/mvolkov/seo-tracker/app/importer"
)

// MetricRepository handles database operations for one metric table.
// The same type serves keywords and pages; the table is fixed at
// construction so callers can never mix the two by accident.
type MetricRepository struct {
	db    *DB
	table string
}

// NewMetricRepository creates a repository bound to the metric table
// for the given kind.
func NewMetricRepository(db *DB, kind importer.TableKind) *MetricRepository {
	table := "keyword_metrics"
	if kind == importer.TablePages {
		table = "page_metrics"
	}
	return &MetricRepository{db: db, table: table}
}

// Append tags every record with the period and inserts them. The whole
// batch commits or none of it does, so a failed import never leaves a
// partial row set behind. Returns the number of rows written; an empty
// input writes nothing and is not an error.
func (r *MetricRepository) Append(records []importer.Record, period string) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	tx, err := r.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(fmt.Sprintf(`
		INSERT INTO %s (name, clicks, impressions, ctr, position, period, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, r.table))
	if err != nil {
		return 0, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC()
	for _, record := range records {
		_, err := stmt.Exec(record.Name, record.Clicks, record.Impressions,
			nullableFloat(record.CTR), nullableFloat(record.Position), period, now)
		if err != nil {
			return 0, fmt.Errorf("failed to insert metric row: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit metric rows: %w", err)
	}

	return len(records), nil
}

// DistinctPeriods returns the period labels present in the table,
// lexically ordered.
func (r *MetricRepository) DistinctPeriods() ([]string, error) {
	rows, err := r.db.Query(fmt.Sprintf(`
		SELECT DISTINCT period FROM %s ORDER BY period
	`, r.table))
	if err != nil {
		return nil, fmt.Errorf("failed to get distinct periods: %w", err)
	}
	defer rows.Close()

	var periods []string
	for rows.Next() {
		var period string
		if err := rows.Scan(&period); err != nil {
			return nil, fmt.Errorf("failed to scan period row: %w", err)
		}
		periods = append(periods, period)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating period rows: %w", err)
	}

	return periods, nil
}

// RowsForPeriod returns all records for a period in insertion order.
func (r *MetricRepository) RowsForPeriod(period string) ([]MetricRecord, error) {
	return r.queryRecords(fmt.Sprintf(`
		SELECT id, name, clicks, impressions, ctr, position, period, created_at
		FROM %s
		WHERE period = $1
		ORDER BY id
	`, r.table), period)
}

// RowsForEntity returns all records for one entity name across periods,
// in insertion order. Used for history and comparison.
func (r *MetricRepository) RowsForEntity(name string) ([]MetricRecord, error) {
	return r.queryRecords(fmt.Sprintf(`
		SELECT id, name, clicks, impressions, ctr, position, period, created_at
		FROM %s
		WHERE name = $1
		ORDER BY id
	`, r.table), name)
}

// RowsForEntityPeriod returns the records for one entity in one period.
func (r *MetricRepository) RowsForEntityPeriod(name, period string) ([]MetricRecord, error) {
	return r.queryRecords(fmt.Sprintf(`
		SELECT id, name, clicks, impressions, ctr, position, period, created_at
		FROM %s
		WHERE name = $1 AND period = $2
		ORDER BY id
	`, r.table), name, period)
}

// RowCount returns the total number of rows in the table.
func (r *MetricRepository) RowCount() (int, error) {
	var count int
	err := r.db.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", r.table)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get row count: %w", err)
	}
	return count, nil
}

func (r *MetricRepository) queryRecords(query string, args ...interface{}) ([]MetricRecord, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query metric rows: %w", err)
	}
	defer rows.Close()

	var records []MetricRecord
	for rows.Next() {
		var record MetricRecord
		var ctr, position sql.NullFloat64
		err := rows.Scan(
			&record.ID, &record.Name, &record.Clicks, &record.Impressions,
			&ctr, &position, &record.Period, &record.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan metric row: %w", err)
		}
		if ctr.Valid {
			record.CTR = &ctr.Float64
		}
		if position.Valid {
			record.Position = &position.Float64
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating metric rows: %w", err)
	}

	return records, nil
}

func nullableFloat(value *float64) interface{} {
	if value == nil {
		return nil
	}
	return *value
}
