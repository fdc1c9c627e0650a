package service

import (
	"context"
	"errors"
	"fmt"

	"zigueroutine/internal/cart"
	"zigueroutine/internal/catalog"
	"zigueroutine/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// cartService implements CartService on top of the in-memory cart store.
type cartService struct {
	store   *cart.Store
	catalog *catalog.Catalog
	pricing cart.Pricing
	orders  OrderService
	logger  zerolog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(
	store *cart.Store,
	c *catalog.Catalog,
	pricing cart.Pricing,
	orders OrderService,
	logger zerolog.Logger,
) CartService {
	return &cartService{
		store:   store,
		catalog: c,
		pricing: pricing,
		orders:  orders,
		logger:  logger.With().Str("service", "cart").Logger(),
	}
}

// Create creates a new empty cart.
func (s *cartService) Create(ctx context.Context) (*model.CartResponse, error) {
	c := s.store.Create()
	s.logger.Info().Str("cart_id", c.ID.String()).Msg("cart created")
	return s.respond(c), nil
}

// Get retrieves a cart with its computed totals.
func (s *cartService) Get(ctx context.Context, id uuid.UUID) (*model.CartResponse, error) {
	c, err := s.store.Get(id)
	if err != nil {
		return nil, s.mapErr(err, id)
	}
	return s.respond(c), nil
}

// AddItem adds qty units of the tire to the cart; a non-positive quantity
// adds a single unit, matching the storefront's add button.
func (s *cartService) AddItem(ctx context.Context, id uuid.UUID, tireID, qty int) (*model.CartResponse, error) {
	tire := s.catalog.GetByID(tireID)
	if tire == nil {
		return nil, model.ErrTireNotFound
	}

	if qty < 1 {
		qty = 1
	}

	c, err := s.store.AddItem(id, *tire, qty)
	if err != nil {
		return nil, s.mapErr(err, id)
	}

	s.logger.Debug().
		Str("cart_id", id.String()).
		Int("tire_id", tireID).
		Int("qty", qty).
		Msg("item added to cart")

	return s.respond(c), nil
}

// SetQty sets a line quantity; below one the line is removed.
func (s *cartService) SetQty(ctx context.Context, id uuid.UUID, tireID, qty int) (*model.CartResponse, error) {
	c, err := s.store.SetQty(id, tireID, qty)
	if err != nil {
		return nil, s.mapErr(err, id)
	}
	return s.respond(c), nil
}

// RemoveItem decrements a line by one, removing it at zero.
func (s *cartService) RemoveItem(ctx context.Context, id uuid.UUID, tireID int) (*model.CartResponse, error) {
	c, err := s.store.RemoveItem(id, tireID)
	if err != nil {
		return nil, s.mapErr(err, id)
	}
	return s.respond(c), nil
}

// Checkout builds an order submission from the cart and runs it through the
// order intake flow. The cart is cleared only after the order succeeds.
func (s *cartService) Checkout(ctx context.Context, id uuid.UUID, req *model.CheckoutRequest) (*model.OrderConfirmation, error) {
	c, err := s.store.Get(id)
	if err != nil {
		return nil, s.mapErr(err, id)
	}

	if len(c.Items) == 0 {
		return nil, model.ErrEmptyCart
	}

	items := make([]model.LineItem, len(c.Items))
	for i, it := range c.Items {
		items[i] = model.LineItem{
			Brand: it.Brand,
			Name:  it.Name,
			Price: it.Price,
			Qty:   it.Qty,
		}
	}

	conf, err := s.orders.PlaceOrder(ctx, &model.OrderRequest{
		CustomerName: req.CustomerName,
		Phone:        req.Phone,
		Items:        items,
		Total:        s.pricing.Totals(c.Items).Total,
	})
	if err != nil {
		return nil, err
	}

	if err := s.store.Clear(id); err != nil {
		// The order went through; a vanished cart only loses the cleanup.
		s.logger.Warn().Err(err).Str("cart_id", id.String()).Msg("failed to clear cart after checkout")
	}

	s.logger.Info().
		Str("cart_id", id.String()).
		Str("code", conf.Code).
		Msg("cart checked out")

	return conf, nil
}

func (s *cartService) respond(c *model.Cart) *model.CartResponse {
	return &model.CartResponse{
		Cart:   *c,
		Totals: s.pricing.Totals(c.Items),
	}
}

func (s *cartService) mapErr(err error, id uuid.UUID) error {
	if errors.Is(err, cart.ErrNotFound) {
		s.logger.Debug().Str("cart_id", id.String()).Msg("cart not found")
		return model.ErrCartNotFound
	}
	return fmt.Errorf("cart operation failed: %w", err)
}
