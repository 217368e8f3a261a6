package components

import (
	"cuponera/internal/infra/db"
	"cuponera/internal/infra/readstore"
	"cuponera/internal/infra/uow"
	"cuponera/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewOfferReadStore,
			fx.As(new(queries.OfferReadStore)),
		),
		fx.Annotate(
			readstore.NewCouponReadStore,
			fx.As(new(queries.CouponReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewBusinessRequestReadStore,
			fx.As(new(queries.BusinessRequestReadStore)),
		),
		fx.Annotate(
			readstore.NewReportReadStore,
			fx.As(new(queries.ReportReadStore)),
		),
	),
)

// Write-side repositories are created per transaction by the unit of work,
// so only the UnitOfWork itself is wired here.
var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
