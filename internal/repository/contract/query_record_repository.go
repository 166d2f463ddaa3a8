package contract

import (
	"context"

	"sql-workbench-be/internal/entity"
	"sql-workbench-be/internal/repository/specification"

	"github.com/google/uuid"
)

type QueryRecordRepository interface {
	Create(ctx context.Context, record *entity.QueryRecord) error
	Update(ctx context.Context, record *entity.QueryRecord) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.QueryRecord, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.QueryRecord, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
