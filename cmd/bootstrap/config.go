package bootstrap

import (
	"stamppass/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.ProtocolConfig { return cfg.Protocol },
		func(cfg config.Config) config.CookieConfig { return cfg.Cookie },
	),
)
