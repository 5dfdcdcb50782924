package components

import (
	"discount-hub/internal/infra/dynconfig"
	"discount-hub/internal/infra/readstore"
	"discount-hub/internal/infra/repository"
	"discount-hub/internal/infra/sqldb"
	"discount-hub/internal/infra/uow"
	"discount-hub/internal/usecase/commands"
	"discount-hub/internal/usecase/queries"
	"discount-hub/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
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
	fx.Annotate(
		NewSQLQueries,
		fx.As(new(dynconfig.ConfigQueries)),
	),
	dynconfig.NewProvider,
	fx.Annotate(
		func(p *dynconfig.Provider) *dynconfig.Provider { return p },
		fx.As(new(commands.RuntimeConfig)),
	),
	fx.Annotate(
		func(p *dynconfig.Provider) *dynconfig.Provider { return p },
		fx.As(new(queries.PageSettings)),
	),
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Discount
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.DiscountViewQueries)),
		),
		fx.Annotate(
			readstore.NewDiscountReadStore,
			fx.As(new(queries.DiscountViewRepo)),
		),
		// Claim
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ClaimViewQueries)),
		),
		fx.Annotate(
			readstore.NewClaimReadStore,
			fx.As(new(queries.ClaimViewRepo)),
		),
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserViewQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserViewRepo)),
			fx.As(new(commands.UserAuthReadStore)),
		),
		// Brand
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BrandViewQueries)),
		),
		fx.Annotate(
			readstore.NewBrandReadStore,
			fx.As(new(queries.BrandViewRepo)),
			fx.As(new(commands.BrandAuthReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		// Discount
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.DiscountWriteQueries)),
		),
		fx.Annotate(
			repository.NewDiscountRepository,
			fx.As(new(shared.DiscountRepository)),
		),
		// Claim
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.ClaimWriteQueries)),
		),
		fx.Annotate(
			repository.NewClaimRepository,
			fx.As(new(shared.ClaimRepository)),
		),
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.UserWriteQueries)),
		),
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(shared.UserRepository)),
		),
		// Brand
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.BrandWriteQueries)),
		),
		fx.Annotate(
			repository.NewBrandRepository,
			fx.As(new(shared.BrandRepository)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqldb.Queries {
	return sqldb.New()
}

func NewDBTX(pool *pgxpool.Pool) sqldb.DBTX {
	return pool
}
