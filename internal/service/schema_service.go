package service

import (
	"context"
	"fmt"

	"sql-workbench-be/internal/dto"
	"sql-workbench-be/internal/pkg/serverutils"
	"sql-workbench-be/internal/repository/unitofwork"
	"sql-workbench-be/pkg/database"
)

const sampleRowLimit = 5

type ISchemaService interface {
	ListTables(ctx context.Context) (*dto.ListTablesResponse, error)
	GetTableSchema(ctx context.Context, tableName string) (*dto.TableSchemaResponse, error)
}

type schemaService struct {
	uowFactory unitofwork.RepositoryFactory
	executor   database.Executor
}

func NewSchemaService(uowFactory unitofwork.RepositoryFactory, executor database.Executor) ISchemaService {
	return &schemaService{
		uowFactory: uowFactory,
		executor:   executor,
	}
}

func (s *schemaService) ListTables(ctx context.Context) (*dto.ListTablesResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tables, err := uow.SchemaRepository().ListTables(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.ListTablesResponse{
		Message: "Tables retrieved successfully",
		Tables:  tables,
	}, nil
}

func (s *schemaService) GetTableSchema(ctx context.Context, tableName string) (*dto.TableSchemaResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.SchemaRepository()

	// The existence check against information_schema doubles as the
	// guard for the interpolated sample query below; unknown names never
	// reach it.
	exists, err := repo.TableExists(ctx, tableName)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, serverutils.NewNotFoundError("Table not found")
	}

	columns, err := repo.Columns(ctx, tableName)
	if err != nil {
		return nil, err
	}

	primaryKeys, err := repo.PrimaryKeys(ctx, tableName)
	if err != nil {
		return nil, err
	}

	foreignKeys, err := repo.ForeignKeys(ctx, tableName)
	if err != nil {
		return nil, err
	}

	sample, err := s.executor.Execute(ctx, fmt.Sprintf("SELECT * FROM %s LIMIT %d", tableName, sampleRowLimit))
	if err != nil {
		return nil, err
	}

	res := &dto.TableSchemaResponse{
		Message:     "Table schema retrieved successfully",
		Table:       tableName,
		Columns:     make([]dto.TableColumn, 0, len(columns)),
		PrimaryKeys: primaryKeys,
		ForeignKeys: make([]dto.TableForeignKey, 0, len(foreignKeys)),
		SampleData:  sample.Rows,
	}
	for _, col := range columns {
		res.Columns = append(res.Columns, dto.TableColumn{
			ColumnName:    col.ColumnName,
			DataType:      col.DataType,
			IsNullable:    col.IsNullable,
			ColumnDefault: col.ColumnDefault,
		})
	}
	for _, fk := range foreignKeys {
		res.ForeignKeys = append(res.ForeignKeys, dto.TableForeignKey{
			ColumnName:        fk.ColumnName,
			ForeignTableName:  fk.ForeignTableName,
			ForeignColumnName: fk.ForeignColumnName,
		})
	}

	return res, nil
}
