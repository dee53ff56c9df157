package postgres

import (
	"context"
	"database/sql/driver"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"car-price-service/internal/core/domain"
	"car-price-service/internal/core/ports/output"
)

type datasetRepo struct {
	pool    *pgxpool.Pool
	table   string
	orderBy string
	maxRows int
}

// NewDatasetRepository reads the car price table from Postgres. It only
// issues SELECTs. Rows are ordered by orderBy, or by the first column when
// it is empty, so previews are stable between requests.
func NewDatasetRepository(pool *pgxpool.Pool, table, orderBy string, maxRows int) ports.DatasetRepository {
	return &datasetRepo{pool: pool, table: table, orderBy: orderBy, maxRows: maxRows}
}

func (r *datasetRepo) Load(ctx context.Context) (*domain.DatasetTable, error) {
	query := buildSelect(r.table, r.orderBy, r.maxRows)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: query %s: %v", domain.ErrDatasetUnavailable, r.table, err)
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	columns := make([]string, len(fields))
	for i, f := range fields {
		columns[i] = f.Name
	}

	table := &domain.DatasetTable{Columns: columns, Rows: [][]string{}}
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("%w: scan row: %v", domain.ErrDatasetUnavailable, err)
		}
		table.Rows = append(table.Rows, formatRow(values))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate rows: %v", domain.ErrDatasetUnavailable, err)
	}

	return table, nil
}

// buildSelect quotes a possibly schema-qualified table name and the order column.
func buildSelect(table, orderBy string, maxRows int) string {
	ident := pgx.Identifier(strings.Split(table, "."))
	order := "1"
	if orderBy != "" {
		order = pgx.Identifier{orderBy}.Sanitize()
	}
	query := fmt.Sprintf("SELECT * FROM %s ORDER BY %s", ident.Sanitize(), order)
	if maxRows > 0 {
		query += fmt.Sprintf(" LIMIT %d", maxRows)
	}
	return query
}

func formatRow(values []any) []string {
	row := make([]string, len(values))
	for i, v := range values {
		// pgtype values such as Numeric render through their driver value.
		if valuer, ok := v.(driver.Valuer); ok {
			dv, err := valuer.Value()
			if err == nil {
				v = dv
			}
		}
		if v == nil {
			continue
		}
		row[i] = fmt.Sprint(v)
	}
	return row
}
