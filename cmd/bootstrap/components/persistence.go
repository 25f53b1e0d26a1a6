package components

import (
	"workshop-booking/internal/infra/db"
	"workshop-booking/internal/infra/readstore"
	"workshop-booking/internal/infra/uow"
	"workshop-booking/internal/usecase/queries"
	"workshop-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		fx.Annotate(
			readstore.NewSlotReadStore,
			fx.As(new(queries.SlotViewRepo)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingViewRepo)),
		),
		fx.Annotate(
			readstore.NewWorkshopReadStore,
			fx.As(new(queries.WorkshopOwnerRepo)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
