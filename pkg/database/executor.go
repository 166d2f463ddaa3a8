package database

import (
	"context"

	"sql-workbench-be/pkg/rowset"

	"gorm.io/gorm"
)

// Executor runs already-validated SQL and returns the raw result set.
// No retries, no added deadline; the driver's own timeout is the only
// bound, and driver errors propagate to the caller unchanged.
type Executor interface {
	Execute(ctx context.Context, sqlText string) (*rowset.RowSet, error)
}

type GormExecutor struct {
	db *gorm.DB
}

func NewExecutor(db *gorm.DB) Executor {
	return &GormExecutor{db: db}
}

func (e *GormExecutor) Execute(ctx context.Context, sqlText string) (*rowset.RowSet, error) {
	rows, err := e.db.WithContext(ctx).Raw(sqlText).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	rs := rowset.New(columns)
	values := make([]interface{}, len(columns))
	pointers := make([]interface{}, len(columns))
	for i := range values {
		pointers[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(pointers...); err != nil {
			return nil, err
		}

		row := make(rowset.Row, len(columns))
		for i, col := range columns {
			value := values[i]
			// drivers hand back []byte for text-ish columns
			if b, ok := value.([]byte); ok {
				value = string(b)
			}
			row[col] = value
		}
		rs.Append(row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return rs, nil
}
