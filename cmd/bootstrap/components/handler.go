package components

import (
	"stamppass/internal/handler"
	"stamppass/internal/handler/api"
	"stamppass/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewIssuanceHandler,
		api.NewRedemptionHandler,
		api.NewWalletHandler,
		api.NewMigrationHandler,
		api.NewTerminalHandler,
		middleware.NewAuthMiddleware,
		middleware.NewStoreAccessMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	issuance *api.IssuanceHandler,
	redemption *api.RedemptionHandler,
	wallet *api.WalletHandler,
	migration *api.MigrationHandler,
	terminal *api.TerminalHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:       auth,
		Issuance:   issuance,
		Redemption: redemption,
		Wallet:     wallet,
		Migration:  migration,
		Terminal:   terminal,
	}
}
