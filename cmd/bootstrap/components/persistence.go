package components

import (
	"pharmashift/internal/infra/memstore"
	"pharmashift/internal/infra/readstore"
	sqlc "pharmashift/internal/infra/sqlc/generated"
	"pharmashift/internal/infra/uow"
	"pharmashift/internal/pkg/config"
	"pharmashift/internal/usecase/queries"
	"pharmashift/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// PersistenceModule binds the unit of work and the query-side read stores for the given driver.
func PersistenceModule(driver string) fx.Option {
	if driver == config.StoreDriverMemory {
		return memoryModule
	}
	return postgresModule
}

var postgresModule = fx.Module("persistence/postgres",
	fx.Provide(
		NewSQLQueries,
		NewDBTX,
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		// Invitation
		fx.Annotate(
			func(q *sqlc.Queries, db sqlc.DBTX) *readstore.InvitationReadStore {
				return readstore.NewInvitationReadStore(q, db)
			},
			fx.As(new(queries.InvitationReadStore)),
		),
		// Shift
		fx.Annotate(
			func(q *sqlc.Queries, db sqlc.DBTX) *readstore.ShiftReadStore {
				return readstore.NewShiftReadStore(q, db)
			},
			fx.As(new(queries.ShiftReadStore)),
		),
	),
)

var memoryModule = fx.Module("persistence/memory",
	fx.Provide(
		memstore.New,
		fx.Annotate(
			func(s *memstore.Store) *memstore.Store { return s },
			fx.As(new(shared.UnitOfWork)),
		),
		fx.Annotate(
			memstore.NewInvitationReadStore,
			fx.As(new(queries.InvitationReadStore)),
		),
		fx.Annotate(
			memstore.NewShiftReadStore,
			fx.As(new(queries.ShiftReadStore)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
