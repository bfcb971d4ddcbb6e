package repository

import (
	"context"

	"pharmashift/internal/domain/cancellation"
	"pharmashift/internal/infra"
	"pharmashift/internal/infra/repository/converter"
	sqlc "pharmashift/internal/infra/sqlc/generated"
)

//go:generate mockgen -source=cancellation.go -destination=../../../tests/mock/repository/cancellation.go -package=repositorymock

type CancellationWriteQueries interface {
	CreateCancellation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCancellationParams) error
}

type CancellationRepository struct {
	queries CancellationWriteQueries
	db      sqlc.DBTX
}

func NewCancellationRepository(queries CancellationWriteQueries, db sqlc.DBTX) *CancellationRepository {
	return &CancellationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CancellationRepository) Create(ctx context.Context, c *cancellation.Cancellation) error {
	if err := r.queries.CreateCancellation(ctx, r.db, converter.CancellationToCreateParams(c)); err != nil {
		return infra.WrapRepoErr("failed to record cancellation", err)
	}
	return nil
}
