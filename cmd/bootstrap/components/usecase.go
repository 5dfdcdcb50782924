package components

import (
	"discount-hub/internal/pkg/clock"
	"discount-hub/internal/usecase"
	"discount-hub/internal/usecase/commands"
	"discount-hub/internal/usecase/queries"

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
		commands.NewClaimUseCase,
		commands.NewDiscountUseCase,
		commands.NewDirectoryUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewDiscountQueries,
		queries.NewClaimQueries,
		queries.NewUserQueries,
		queries.NewBrandQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
