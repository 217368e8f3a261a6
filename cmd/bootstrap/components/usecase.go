package components

import (
	"cuponera/internal/pkg/clock"
	"cuponera/internal/usecase"
	"cuponera/internal/usecase/commands"
	"cuponera/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewOfferCommands,
		commands.NewPurchaseCommands,
		commands.NewOnboardingCommands,
		commands.NewAdminCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewOfferQueries,
		queries.NewCouponQueries,
		queries.NewUserQueries,
		queries.NewBusinessRequestQueries,
		queries.NewReportQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
