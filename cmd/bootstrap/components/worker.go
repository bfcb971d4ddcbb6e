package components

import (
	"context"

	"pharmashift/internal/pkg/config"
	"pharmashift/internal/usecase/commands"
	"pharmashift/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(NewSweeper),
	fx.Invoke(startSweeper),
)

func NewSweeper(cfg config.Config, cmds commands.MaintenanceCommands) *worker.Sweeper {
	return worker.NewSweeper(cmds, cfg.Booking.SweepInterval)
}

func startSweeper(lc fx.Lifecycle, s *worker.Sweeper) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.Start()
			return nil
		},
		OnStop: s.Stop,
	})
}
