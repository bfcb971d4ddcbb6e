package readstore

import (
	"context"

	"pharmashift/internal/infra"
	sqlc "pharmashift/internal/infra/sqlc/generated"
	"pharmashift/internal/pkg/pgconv"
	"pharmashift/internal/usecase/shared"

	"github.com/google/uuid"
)

type PaymentMethodReadQueries interface {
	GetDefaultPaymentMethod(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (sqlc.PaymentMethod, error)
}

type PaymentMethodReadStore struct {
	queries PaymentMethodReadQueries
	db      sqlc.DBTX
}

func NewPaymentMethodReadStore(queries PaymentMethodReadQueries, db sqlc.DBTX) *PaymentMethodReadStore {
	return &PaymentMethodReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *PaymentMethodReadStore) FindDefault(ctx context.Context, userID uuid.UUID) (*shared.PaymentMethodSnapshot, error) {
	row, err := r.queries.GetDefaultPaymentMethod(ctx, r.db, userID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("default payment method not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get default payment method", err)
	}
	return &shared.PaymentMethodSnapshot{
		ID:          row.ID,
		UserID:      row.UserID,
		ProviderRef: row.ProviderRef,
		Brand:       row.Brand,
		Last4:       row.Last4,
	}, nil
}
