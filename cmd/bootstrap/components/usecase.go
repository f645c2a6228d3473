package components

import (
	"hotel-backoffice/internal/pkg/clock"
	"hotel-backoffice/internal/usecase/commands"
	"hotel-backoffice/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewRoomCommands,
		commands.NewVenueCommands,
		commands.NewRoomBookingCommands,
		commands.NewVenueBookingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewRoomQueries,
		queries.NewVenueQueries,
		queries.NewRoomBookingQueries,
		queries.NewVenueBookingQueries,
	),
)
