package payments

import (
	"context"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// Provider creates payment intents with an external processor and returns
// the client secret the frontend confirms the payment with.
type Provider interface {
	CreateIntent(ctx context.Context, amount int64) (clientSecret string, err error)
}

type StripeProvider struct {
	api *client.API
}

func NewStripeProvider(secretKey string) *StripeProvider {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeProvider{api: api}
}

// CreateIntent opens a card payment intent for amount in currency minor
// units (cents).
func (p *StripeProvider) CreateIntent(ctx context.Context, amount int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := p.api.PaymentIntents.New(params)
	if err != nil {
		return "", err
	}
	return intent.ClientSecret, nil
}
