package services

import (
	"math"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"
)

// PaymentService is the bridge to Stripe. It only creates charge intents;
// persistence happens separately through the /payments route and nothing
// links the two server-side.
type PaymentService struct{}

func NewPaymentService(apiKey string) *PaymentService {
	stripe.Key = apiKey
	return &PaymentService{}
}

// minorUnits converts major currency units to cents. Rounding, not float
// truncation: int64(19.99 * 100) would yield 1998.
func minorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}

// CreateChargeIntent creates a PaymentIntent for price in major currency
// units and returns the client secret unchanged.
func (s *PaymentService) CreateChargeIntent(price float64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(minorUnits(price)),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", err
	}
	return pi.ClientSecret, nil
}
