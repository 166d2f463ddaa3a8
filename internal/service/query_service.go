package service

import (
	"context"
	"fmt"
	"time"

	"sql-workbench-be/internal/dto"
	"sql-workbench-be/internal/entity"
	"sql-workbench-be/internal/pkg/logger"
	"sql-workbench-be/internal/pkg/serverutils"
	"sql-workbench-be/internal/repository/specification"
	"sql-workbench-be/internal/repository/unitofwork"
	"sql-workbench-be/pkg/cache"
	"sql-workbench-be/pkg/csvenc"
	"sql-workbench-be/pkg/database"
	"sql-workbench-be/pkg/sqlguard"

	"github.com/google/uuid"
)

type IQueryService interface {
	Execute(ctx context.Context, userId uuid.UUID, req *dto.ExecuteQueryRequest) (*dto.ExecuteQueryResponse, error)
	History(ctx context.Context, userId uuid.UUID) (*dto.QueryHistoryResponse, error)
	ToggleFavorite(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ToggleFavoriteResponse, error)
	RenameFavorite(ctx context.Context, userId uuid.UUID, id uuid.UUID, req *dto.RenameFavoriteRequest) error
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
	Download(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.DownloadQueryResponse, error)
}

type queryService struct {
	uowFactory  unitofwork.RepositoryFactory
	resultCache cache.Gateway
	executor    database.Executor
	logger      logger.ILogger
}

func NewQueryService(
	uowFactory unitofwork.RepositoryFactory,
	resultCache cache.Gateway,
	executor database.Executor,
	logger logger.ILogger,
) IQueryService {
	return &queryService{
		uowFactory:  uowFactory,
		resultCache: resultCache,
		executor:    executor,
		logger:      logger,
	}
}

// Execute runs the request path: classify, consult the cache, execute on
// a miss, then record history. Rejected and failed queries leave no
// history record. Two concurrent identical queries may both miss and
// both execute; there is no per-fingerprint dedup.
func (s *queryService) Execute(ctx context.Context, userId uuid.UUID, req *dto.ExecuteQueryRequest) (*dto.ExecuteQueryResponse, error) {
	verdict := sqlguard.Classify(req.Query)
	if !verdict.Allowed {
		return nil, serverutils.NewBadRequestError(verdict.Reason)
	}

	if rs, hit := s.resultCache.Lookup(ctx, userId, req.Query); hit {
		if err := s.record(ctx, userId, req.Query); err != nil {
			return nil, err
		}
		return &dto.ExecuteQueryResponse{
			Message: "Query executed successfully (cached)",
			Result:  rs.Rows,
			Cached:  true,
		}, nil
	}

	rs, err := s.executor.Execute(ctx, req.Query)
	if err != nil {
		// driver message propagates to the client as a 500
		return nil, err
	}

	// store failures are swallowed inside the gateway; a dead cache
	// must not fail the request
	s.resultCache.Store(ctx, userId, req.Query, rs)

	if err := s.record(ctx, userId, req.Query); err != nil {
		return nil, err
	}

	s.logger.Info("query", "Query executed", map[string]interface{}{
		"user_id": userId.String(),
		"rows":    rs.Len(),
	})

	return &dto.ExecuteQueryResponse{
		Message: "Query executed successfully",
		Result:  rs.Rows,
		Cached:  false,
	}, nil
}

func (s *queryService) record(ctx context.Context, userId uuid.UUID, sqlText string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	record := &entity.QueryRecord{
		Id:        uuid.New(),
		UserId:    userId,
		QueryText: sqlText,
		CreatedAt: time.Now(),
	}
	return uow.QueryRecordRepository().Create(ctx, record)
}

func (s *queryService) History(ctx context.Context, userId uuid.UUID) (*dto.QueryHistoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	records, err := uow.QueryRecordRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	history := make([]dto.QueryHistoryItem, 0, len(records))
	for _, record := range records {
		history = append(history, dto.QueryHistoryItem{
			Id:           record.Id,
			QueryText:    record.QueryText,
			IsFavorite:   record.IsFavorite,
			FavoriteName: record.FavoriteName,
			CreatedAt:    record.CreatedAt,
		})
	}

	return &dto.QueryHistoryResponse{
		Message: "Query history retrieved successfully",
		History: history,
	}, nil
}

func (s *queryService) findOwned(ctx context.Context, uow unitofwork.UnitOfWork, userId, id uuid.UUID) (*entity.QueryRecord, error) {
	record, err := uow.QueryRecordRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, serverutils.NewNotFoundError("Query not found")
	}
	return record, nil
}

func (s *queryService) ToggleFavorite(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ToggleFavoriteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	record, err := s.findOwned(ctx, uow, userId, id)
	if err != nil {
		return nil, err
	}

	record.IsFavorite = !record.IsFavorite
	if err := uow.QueryRecordRepository().Update(ctx, record); err != nil {
		return nil, err
	}

	message := "Query removed from favorites"
	if record.IsFavorite {
		message = "Query added to favorites"
	}

	return &dto.ToggleFavoriteResponse{
		Message:    message,
		IsFavorite: record.IsFavorite,
	}, nil
}

// RenameFavorite sets the label without touching the favorite flag; the
// two favorite mutations are independent and individually owner-checked.
func (s *queryService) RenameFavorite(ctx context.Context, userId uuid.UUID, id uuid.UUID, req *dto.RenameFavoriteRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	record, err := s.findOwned(ctx, uow, userId, id)
	if err != nil {
		return err
	}

	record.FavoriteName = &req.Name
	return uow.QueryRecordRepository().Update(ctx, record)
}

func (s *queryService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	record, err := s.findOwned(ctx, uow, userId, id)
	if err != nil {
		return err
	}

	return uow.QueryRecordRepository().Delete(ctx, record.Id)
}

// Download re-executes the stored query, bypassing the cache so the
// export reflects current data, and serializes the result as CSV.
func (s *queryService) Download(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.DownloadQueryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	record, err := s.findOwned(ctx, uow, userId, id)
	if err != nil {
		return nil, err
	}

	rs, err := s.executor.Execute(ctx, record.QueryText)
	if err != nil {
		return nil, err
	}

	return &dto.DownloadQueryResponse{
		Filename: fmt.Sprintf("query-%s.csv", record.Id),
		Content:  csvenc.Encode(rs),
	}, nil
}
