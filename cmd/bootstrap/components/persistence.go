package components

import (
	"hotel-backoffice/internal/infra/db"
	"hotel-backoffice/internal/infra/readstore"
	"hotel-backoffice/internal/infra/uow"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		readstore.NewRoomReadStore,
		readstore.NewVenueReadStore,
		readstore.NewRoomBookingReadStore,
		readstore.NewVenueBookingReadStore,
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
