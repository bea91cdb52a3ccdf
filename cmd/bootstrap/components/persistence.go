package components

import (
	"barista-cafe-api/internal/infra/cache"
	"barista-cafe-api/internal/infra/db"
	"barista-cafe-api/internal/infra/readstore"
	sqlc "barista-cafe-api/internal/infra/sqlc/generated"
	"barista-cafe-api/internal/infra/uow"
	"barista-cafe-api/internal/pkg/config"
	"barista-cafe-api/internal/usecase/queries"
	"barista-cafe-api/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Booking
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingReadQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		// Menu
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.MenuReadQueries)),
		),
		readstore.NewMenuReadStore,
		NewCachedMenuStore,
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		NewUnitOfWork,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

// NewDBTX bounds every read-store statement by DB_QUERY_TIMEOUT.
func NewDBTX(pool *pgxpool.Pool, cfg config.Config) sqlc.DBTX {
	return db.NewDeadlineDBTX(pool, cfg.DB.QueryTimeout)
}

func NewUnitOfWork(pool *pgxpool.Pool, q *sqlc.Queries, cfg config.Config) shared.UnitOfWork {
	return uow.NewPostgresUoW(pool, q, cfg.DB.QueryTimeout)
}

func NewCachedMenuStore(store *readstore.MenuReadStore, rdb *redis.Client, cfg config.Config) queries.MenuReadStore {
	return cache.NewMenuStore(store, rdb, cfg.Cache.MenuTTL)
}
