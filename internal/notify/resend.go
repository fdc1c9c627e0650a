package notify

import (
	"context"
	"fmt"

	"zigueroutine/internal/model"

	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
)

// ResendNotifier sends order notifications by email through the Resend API
// to a single fixed operator address.
type ResendNotifier struct {
	client *resend.Client
	from   string
	to     string
	logger zerolog.Logger
}

// NewResendNotifier creates a notifier using the given Resend API key.
func NewResendNotifier(apiKey, from, to string, logger zerolog.Logger) *ResendNotifier {
	return &ResendNotifier{
		client: resend.NewClient(apiKey),
		from:   from,
		to:     to,
		logger: logger.With().Str("notifier", "resend").Logger(),
	}
}

// OrderPlaced renders the order summary and dispatches it. The context
// bounds the API call; a send failure or timeout is returned to the caller.
func (n *ResendNotifier) OrderPlaced(ctx context.Context, order *model.Order) error {
	body, err := RenderBody(order)
	if err != nil {
		return err
	}

	params := &resend.SendEmailRequest{
		From:    n.from,
		To:      []string{n.to},
		Subject: Subject(order),
		Html:    body,
	}

	sent, err := n.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		n.logger.Error().Err(err).Str("code", order.Code).Msg("failed to send order email")
		return fmt.Errorf("failed to send order email: %w", err)
	}

	n.logger.Info().
		Str("code", order.Code).
		Str("email_id", sent.Id).
		Msg("order notification sent")
	return nil
}
