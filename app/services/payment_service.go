// Package services holds the business flows that sit between controllers
// and repositories. Controllers translate HTTP, services decide.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/shashiranjanraj/bistro/app/models"
	"github.com/shashiranjanraj/bistro/app/repositories"
	"github.com/shashiranjanraj/bistro/pkg/logger"
	"github.com/shashiranjanraj/bistro/pkg/metrics"
	"github.com/shashiranjanraj/bistro/pkg/payments"
)

// ErrPartialSettlement reports that the payment document was stored but the
// matching cart items could not be removed. The payment id is preserved so
// callers can reconcile the leftover cart rows.
var ErrPartialSettlement = errors.New("payment recorded but cart cleanup failed")

// SettleResult carries both halves of a settlement back to the caller.
type SettleResult struct {
	Payment *repositories.InsertResult `json:"paymentResult"`
	Deleted *repositories.DeleteResult `json:"deleteResult"`
}

type PaymentService struct {
	payments repositories.PaymentRepository
	carts    repositories.CartRepository
	intents  payments.IntentClient
}

func NewPaymentService(p repositories.PaymentRepository, c repositories.CartRepository, i payments.IntentClient) *PaymentService {
	return &PaymentService{payments: p, carts: c, intents: i}
}

// CreateIntent registers a pending charge with the processor and returns the
// client secret the frontend needs to confirm it. Price arrives in dollars
// and is converted to integer minor units before it leaves the process.
func (s *PaymentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	amount := int64(price * 100)
	secret, err := s.intents.CreateIntent(ctx, amount, "usd")
	if err != nil {
		return "", fmt.Errorf("create payment intent: %w", err)
	}
	return secret, nil
}

// Settle records the payment and clears the purchased cart items. The two
// writes are not atomic: if the insert succeeds but the delete fails, the
// payment stands and ErrPartialSettlement is returned alongside the partial
// result so the cart rows can be cleaned up later.
func (s *PaymentService) Settle(ctx context.Context, p models.Payment) (*SettleResult, error) {
	ins, err := s.payments.Create(ctx, p)
	if err != nil {
		metrics.SettlementsTotal.WithLabelValues("failed").Inc()
		return nil, fmt.Errorf("record payment: %w", err)
	}

	del, err := s.carts.DeleteByIDs(ctx, p.CartIDs)
	if err != nil {
		metrics.SettlementsTotal.WithLabelValues("partial").Inc()
		logger.WithCtx(ctx).Error("cart cleanup failed after payment insert",
			"payment_id", ins.InsertedID, "cart_ids", p.CartIDs, "error", err)
		return &SettleResult{Payment: ins}, ErrPartialSettlement
	}

	metrics.SettlementsTotal.WithLabelValues("settled").Inc()
	metrics.SettlementAmount.Observe(p.Price)
	return &SettleResult{Payment: ins, Deleted: del}, nil
}

// History returns every payment recorded for the given email.
func (s *PaymentService) History(ctx context.Context, email string) ([]models.Payment, error) {
	return s.payments.FindByEmail(ctx, email)
}
