package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"zigueroutine/internal/model"
	"zigueroutine/internal/notify"
	"zigueroutine/internal/ordercode"
	"zigueroutine/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// orderService implements OrderService.
type orderService struct {
	repo          repository.OrderRepository
	notifier      notify.Notifier
	gen           *ordercode.Generator
	validate      *validator.Validate
	notifyTimeout time.Duration
	logger        zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(
	repo repository.OrderRepository,
	notifier notify.Notifier,
	notifyTimeout time.Duration,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		repo:          repo,
		notifier:      notifier,
		gen:           ordercode.New(),
		validate:      newValidator(),
		notifyTimeout: notifyTimeout,
		logger:        logger.With().Str("service", "order").Logger(),
	}
}

// newValidator builds the submission validator. The notblank rule rejects
// strings that are empty after trimming.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Registration only fails for empty tag names.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// PlaceOrder runs the intake flow: validate, allocate code, persist, notify.
// Each step strictly follows the previous; nothing is retried internally.
func (s *orderService) PlaceOrder(ctx context.Context, req *model.OrderRequest) (*model.OrderConfirmation, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	// The caller-computed total is trusted, not re-derived. A mismatch with
	// the item sum is worth knowing about, but does not reject the order.
	if sum := itemSum(req.Items); !sameCents(sum, req.Total) {
		s.logger.Warn().
			Float64("submitted_total", req.Total).
			Float64("item_sum", sum).
			Msg("submitted total disagrees with item sum")
	}

	order := &model.Order{
		CustomerName: strings.TrimSpace(req.CustomerName),
		Phone:        strings.TrimSpace(req.Phone),
		Items:        req.Items,
		Total:        req.Total,
	}

	if err := s.allocateAndPersist(ctx, order); err != nil {
		s.logger.Error().Err(err).Msg("failed to persist order")
		return nil, fmt.Errorf("failed to persist order: %w", err)
	}

	s.logger.Info().
		Str("code", order.Code).
		Str("customer", order.CustomerName).
		Int("item_count", len(order.Items)).
		Float64("total", order.Total).
		Msg("order persisted")

	// The order is already durable at this point. A dispatch failure is
	// surfaced regardless, so an order can exist in storage that the
	// operator was never told about; the caller sees NOTIFY_FAILED and the
	// record stays.
	notifyCtx, cancel := context.WithTimeout(ctx, s.notifyTimeout)
	defer cancel()

	if err := s.notifier.OrderPlaced(notifyCtx, order); err != nil {
		s.logger.Error().Err(err).Str("code", order.Code).Msg("order notification failed")
		return nil, model.ErrNotifyFailed
	}

	return &model.OrderConfirmation{Success: true, Code: order.Code}, nil
}

// allocateAndPersist assigns a code not used by any persisted order and
// writes the record. The enumeration pre-check keeps candidate generation
// away from used codes; the exclusive create backstops the window between
// enumeration and write, so two concurrent submissions can never share a
// code; the loser of the write race simply draws again.
func (s *orderService) allocateAndPersist(ctx context.Context, order *model.Order) error {
	codes, err := s.repo.ListCodes(ctx)
	if err != nil {
		return fmt.Errorf("failed to enumerate order codes: %w", err)
	}

	taken := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		taken[c] = struct{}{}
	}

	for {
		order.Code = s.gen.Unique(taken)
		order.CreatedAt = time.Now()

		err := s.repo.Create(ctx, order)
		if errors.Is(err, repository.ErrCodeExists) {
			taken[order.Code] = struct{}{}
			continue
		}
		return err
	}
}

// GetByCode retrieves a persisted order by its code.
func (s *orderService) GetByCode(ctx context.Context, code string) (*model.Order, error) {
	if !ordercode.Valid(code) {
		return nil, model.ErrOrderNotFound
	}

	order, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		s.logger.Error().Err(err).Str("code", code).Msg("failed to read order")
		return nil, fmt.Errorf("failed to read order: %w", err)
	}

	if order == nil {
		return nil, model.ErrOrderNotFound
	}
	return order, nil
}

// validateRequest maps validation failures onto the submission error codes.
// Item shape, price sign and total correctness are trusted from the caller.
func (s *orderService) validateRequest(req *model.OrderRequest) error {
	if req == nil {
		return model.ErrEmptyOrder
	}

	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("failed to validate order request: %w", err)
	}

	switch verrs[0].StructField() {
	case "CustomerName":
		return model.ErrInvalidCustomerName
	case "Phone":
		return model.ErrInvalidPhone
	default:
		return model.ErrEmptyOrder
	}
}

func itemSum(items []model.LineItem) float64 {
	var sum float64
	for _, it := range items {
		sum += it.Subtotal()
	}
	return sum
}

func sameCents(a, b float64) bool {
	return math.Round(a*100) == math.Round(b*100)
}
