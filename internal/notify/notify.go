// Package notify dispatches order notifications to the shop operator.
package notify

import (
	"context"

	"zigueroutine/internal/model"

	"github.com/rs/zerolog"
)

// Notifier sends a notification for a freshly persisted order. There is no
// delivery receipt and no retry; a dispatch failure is the caller's to
// surface.
type Notifier interface {
	OrderPlaced(ctx context.Context, order *model.Order) error
}

// LogNotifier writes the notification to the log instead of sending email.
// Wired when NOTIFY_ENABLED is false, for local development and tests.
type LogNotifier struct {
	logger zerolog.Logger
}

// NewLogNotifier creates a log-only notifier.
func NewLogNotifier(logger zerolog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.With().Str("notifier", "log").Logger()}
}

// OrderPlaced logs the order summary and always succeeds.
func (n *LogNotifier) OrderPlaced(ctx context.Context, order *model.Order) error {
	n.logger.Info().
		Str("code", order.Code).
		Str("customer", order.CustomerName).
		Str("phone", order.Phone).
		Int("item_count", len(order.Items)).
		Float64("total", order.Total).
		Msg("order notification (email disabled)")
	return nil
}
