package notify

import (
	"context"
	"encoding/json"
	"log/slog"

	"pharmashift/internal/pkg/clock"
	"pharmashift/internal/pkg/errs"
	"pharmashift/internal/usecase/shared"

	"github.com/google/uuid"
)

const KindEmail = "email"

// Message is the payload persisted for the mail dispatcher.
type Message struct {
	Recipient uuid.UUID      `json:"recipient"`
	Template  string         `json:"template"`
	Data      map[string]any `json:"data"`
}

// OutboxNotifier enqueues notification jobs instead of sending mail inline.
type OutboxNotifier struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

var _ shared.Notifier = (*OutboxNotifier)(nil)

func NewOutboxNotifier(uow shared.UnitOfWork, clk clock.Clock) *OutboxNotifier {
	return &OutboxNotifier{uow: uow, clock: clk}
}

func (n *OutboxNotifier) Notify(ctx context.Context, recipient uuid.UUID, template string, payload map[string]any) error {
	body, err := json.Marshal(Message{Recipient: recipient, Template: template, Data: payload})
	if err != nil {
		return errs.Wrap(err, "encode notification")
	}

	err = n.uow.Direct(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Notifications().CreateJob(ctx, KindEmail, template, body, n.clock.Now())
	})
	if err != nil {
		return errs.Wrap(err, "enqueue notification")
	}

	slog.Debug("notification enqueued", "template", template, "recipient", recipient)
	return nil
}
