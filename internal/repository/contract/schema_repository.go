package contract

import (
	"context"

	"sql-workbench-be/internal/entity"
)

// SchemaRepository reads table metadata from information_schema. Always
// queried fresh; schema metadata is never cached.
type SchemaRepository interface {
	ListTables(ctx context.Context) ([]string, error)
	TableExists(ctx context.Context, tableName string) (bool, error)
	Columns(ctx context.Context, tableName string) ([]entity.ColumnDescriptor, error)
	PrimaryKeys(ctx context.Context, tableName string) ([]string, error)
	ForeignKeys(ctx context.Context, tableName string) ([]entity.ForeignKeyEdge, error)
}
