// Package payments wraps the external payment-intent provider.
package payments

import (
	"context"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// IntentCreator creates a payment intent for an amount in minor units and
// returns the provider's client secret.
type IntentCreator interface {
	CreateIntent(ctx context.Context, amountCents int64) (string, error)
}

type StripeClient struct {
	api *client.API
}

func NewStripeClient(secretKey string) *StripeClient {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeClient{api: api}
}

func (s *StripeClient) CreateIntent(ctx context.Context, amountCents int64) (string, error) {
	intent, err := s.api.PaymentIntents.New(&stripe.PaymentIntentParams{
		Params: stripe.Params{
			Context: ctx,
		},
		Amount:   stripe.Int64(amountCents),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{
			"card",
		}),
	})
	if err != nil {
		return "", err
	}
	return intent.ClientSecret, nil
}
