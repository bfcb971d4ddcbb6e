package components

import (
	"log/slog"

	"pharmashift/internal/domain/penalty"
	"pharmashift/internal/infra/notify"
	"pharmashift/internal/infra/payment"
	"pharmashift/internal/pkg/clock"
	"pharmashift/internal/pkg/config"
	"pharmashift/internal/usecase/shared"

	"go.uber.org/fx"
)

var InfraModule = fx.Module("infra",
	fx.Provide(
		clock.NewRealClock,
		NewPaymentGateway,
		fx.Annotate(
			notify.NewOutboxNotifier,
			fx.As(new(shared.Notifier)),
		),
		fx.Annotate(
			penalty.NewTieredCalculator,
			fx.As(new(penalty.Calculator)),
		),
	),
)

// NewPaymentGateway falls back to the sandbox when PAYMENT_GATEWAY_URL is empty.
func NewPaymentGateway(cfg config.Config) (shared.PaymentGateway, error) {
	if cfg.Payment.GatewayURL == "" {
		slog.Warn("PAYMENT_GATEWAY_URL not set, penalties are captured by the sandbox gateway")
		return payment.SandboxGateway{}, nil
	}
	return payment.NewHTTPGateway(cfg.Payment.GatewayURL, cfg.Payment.APIKey, cfg.Payment.Currency, cfg.Payment.Timeout)
}
