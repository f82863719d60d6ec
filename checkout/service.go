// Package checkout implements the order submission flow on top of the cart
// store: validate the form, simulate payment processing, then clear the
// cart and confirm. No real payment happens anywhere in this system.
package checkout

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/syedOmegaPrime/SolitudeFinalProject/apperror"
	"github.com/syedOmegaPrime/SolitudeFinalProject/cart"
	"github.com/syedOmegaPrime/SolitudeFinalProject/config"
	"github.com/syedOmegaPrime/SolitudeFinalProject/ident"
	"github.com/syedOmegaPrime/SolitudeFinalProject/notify"
)

// Service places orders against the injected cart store.
type Service struct {
	cart     *cart.Service
	notifier notify.Notifier
	cfg      config.CheckoutConfig
	logger   *slog.Logger
	validate *validator.Validate
}

// NewService creates a checkout Service.
func NewService(cartSvc *cart.Service, notifier notify.Notifier, cfg config.CheckoutConfig, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		cart:     cartSvc,
		notifier: notifier,
		cfg:      cfg,
		logger:   logger,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// PlaceOrder validates the form, simulates payment processing for the
// configured delay (ctx is the cancellation point), then clears the cart
// and returns a receipt snapshotting the purchased lines.
//
// An invalid form or an empty cart yields a ValidationError before any
// delay is incurred. Cancellation during the simulated processing leaves
// the cart untouched.
func (s *Service) PlaceOrder(ctx context.Context, form OrderForm) (*Receipt, error) {
	if err := s.validate.Struct(form); err != nil {
		return nil, apperror.NewValidationError("invalid order form", err)
	}

	items := s.cart.Items()
	if len(items) == 0 {
		return nil, apperror.NewValidationError("cannot check out an empty cart", nil)
	}
	total := s.cart.CartTotal()

	// Simulated payment processing; the UI shows its busy state here.
	if s.cfg.ProcessingDelay > 0 {
		timer := time.NewTimer(s.cfg.ProcessingDelay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	receipt := &Receipt{
		OrderID:  ident.New(ident.OrderPrefix),
		Items:    items,
		Total:    total,
		PlacedAt: time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.cart.ClearCart(); err != nil {
		return nil, err
	}

	s.notifier.Notify(notify.Notification{
		Title:       "Order Placed Successfully!",
		Description: "Thank you for your purchase. Your assets will be available shortly.",
	})
	s.logger.Info("order placed", "order", receipt.OrderID, "total", receipt.Total, "lines", len(receipt.Items))
	return receipt, nil
}
