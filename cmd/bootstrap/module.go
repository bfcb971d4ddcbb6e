package bootstrap

import (
	"pharmashift/cmd/bootstrap/components"
	"pharmashift/internal/pkg/config"

	"go.uber.org/fx"
)

// Module assembles the application for the configured store driver.
func Module(cfg config.Config) fx.Option {
	opts := []fx.Option{
		ConfigModule(cfg),
		JWTModule,
		RedisModule,
		MetricsModule,
	}
	if cfg.Store.Driver == config.StoreDriverPostgres {
		opts = append(opts, DBModule)
	}
	opts = append(opts,
		components.PersistenceModule(cfg.Store.Driver),
		components.InfraModule,
		components.UseCaseModule,
		components.HandlerModule,
		components.WorkerModule,
	)
	return fx.Options(opts...)
}
