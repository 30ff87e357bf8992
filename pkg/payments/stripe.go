// Package payments wraps the external card processor behind a small
// interface so handlers and tests never depend on Stripe directly.
package payments

import (
	"context"
	"fmt"

	stripe "github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

// IntentClient turns an amount in minor units into a client-usable payment
// handle (the client secret the browser SDK confirms against).
type IntentClient interface {
	CreateIntent(ctx context.Context, amount int64, currency string) (clientSecret string, err error)
}

// Stripe implements IntentClient against the Stripe API.
type Stripe struct {
	api *client.API
}

// NewStripe builds a Stripe client from the account's secret key.
func NewStripe(secretKey string) *Stripe {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &Stripe{api: api}
}

func (s *Stripe) CreateIntent(ctx context.Context, amount int64, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := s.api.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("payments: create intent: %w", err)
	}
	return intent.ClientSecret, nil
}
