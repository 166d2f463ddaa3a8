package implementation

import (
	"context"

	"sql-workbench-be/internal/entity"
	"sql-workbench-be/internal/repository/contract"

	"gorm.io/gorm"
)

type SchemaRepositoryImpl struct {
	db *gorm.DB
}

func NewSchemaRepository(db *gorm.DB) contract.SchemaRepository {
	return &SchemaRepositoryImpl{db: db}
}

func (r *SchemaRepositoryImpl) ListTables(ctx context.Context) ([]string, error) {
	var tables []string
	err := r.db.WithContext(ctx).Raw(`
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = 'public'
		  AND table_type = 'BASE TABLE'
		ORDER BY table_name
	`).Scan(&tables).Error
	if err != nil {
		return nil, err
	}
	return tables, nil
}

func (r *SchemaRepositoryImpl) TableExists(ctx context.Context, tableName string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM information_schema.tables
		WHERE table_schema = 'public'
		  AND table_name = ?
	`, tableName).Scan(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *SchemaRepositoryImpl) Columns(ctx context.Context, tableName string) ([]entity.ColumnDescriptor, error) {
	var columns []entity.ColumnDescriptor
	err := r.db.WithContext(ctx).Raw(`
		SELECT column_name, data_type, is_nullable, column_default
		FROM information_schema.columns
		WHERE table_schema = 'public'
		  AND table_name = ?
		ORDER BY ordinal_position
	`, tableName).Scan(&columns).Error
	if err != nil {
		return nil, err
	}
	return columns, nil
}

func (r *SchemaRepositoryImpl) PrimaryKeys(ctx context.Context, tableName string) ([]string, error) {
	var keys []string
	err := r.db.WithContext(ctx).Raw(`
		SELECT kcu.column_name
		FROM information_schema.table_constraints tc
		JOIN information_schema.key_column_usage kcu
		  ON tc.constraint_name = kcu.constraint_name
		WHERE tc.constraint_type = 'PRIMARY KEY'
		  AND tc.table_name = ?
	`, tableName).Scan(&keys).Error
	if err != nil {
		return nil, err
	}
	return keys, nil
}

func (r *SchemaRepositoryImpl) ForeignKeys(ctx context.Context, tableName string) ([]entity.ForeignKeyEdge, error) {
	var edges []entity.ForeignKeyEdge
	err := r.db.WithContext(ctx).Raw(`
		SELECT kcu.column_name,
		       ccu.table_name  AS foreign_table_name,
		       ccu.column_name AS foreign_column_name
		FROM information_schema.table_constraints tc
		JOIN information_schema.key_column_usage kcu
		  ON tc.constraint_name = kcu.constraint_name
		JOIN information_schema.constraint_column_usage ccu
		  ON ccu.constraint_name = tc.constraint_name
		WHERE tc.constraint_type = 'FOREIGN KEY'
		  AND tc.table_name = ?
	`, tableName).Scan(&edges).Error
	if err != nil {
		return nil, err
	}
	return edges, nil
}
