package components

import (
	"workshop-booking/internal/pkg/clock"
	"workshop-booking/internal/usecase"
	"workshop-booking/internal/usecase/commands"
	"workshop-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	usecase.NewTokenValidator,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
		commands.NewSlotCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewSlotQueries,
		queries.NewAvailabilityQueries,
	),
)
