package unitofwork

import (
	"context"

	"sql-workbench-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	QueryRecordRepository() contract.QueryRecordRepository
	SchemaRepository() contract.SchemaRepository
}
