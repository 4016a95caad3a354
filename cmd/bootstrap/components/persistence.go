package components

import (
	"stamppass/internal/infra/readstore"
	"stamppass/internal/infra/redisstore"
	"stamppass/internal/infra/repository"
	"stamppass/internal/usecase/commands"
	"stamppass/internal/usecase/queries"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	readstoreModule,
	repositoryModule,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewIssuanceReadStore,
			fx.As(new(queries.IssuanceReadStore)),
		),
		fx.Annotate(
			readstore.NewWalletReadStore,
			fx.As(new(queries.WalletReadStore)),
		),
		fx.Annotate(
			readstore.NewMigrationReadStore,
			fx.As(new(queries.MigrationReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			repository.NewIssuanceRepository,
			fx.As(new(commands.IssuanceRepository)),
		),
		fx.Annotate(
			repository.NewWalletRepository,
			fx.As(new(commands.WalletRepository)),
		),
		fx.Annotate(
			repository.NewStoreRepository,
			fx.As(new(commands.StoreRepository)),
		),
		fx.Annotate(
			repository.NewMigrationRepository,
			fx.As(new(commands.MigrationRepository)),
		),
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
		fx.Annotate(
			repository.NewIdempotencyRepository,
			fx.As(new(commands.IdempotencyRepository)),
		),
		fx.Annotate(
			repository.NewNotificationRepository,
			fx.As(new(commands.NotificationRepository)),
		),
		fx.Annotate(
			redisstore.NewRedeemSessionStore,
			fx.As(new(commands.RedeemSessionStore)),
		),
	),
)
