package handlers

import (
	"github.com/skillup-platform/skillup-api/internal/store"
)

// ChargeIntentCreator is the payment bridge the route layer depends on.
// Satisfied by services.PaymentService; tests substitute a fake.
type ChargeIntentCreator interface {
	CreateChargeIntent(price float64) (string, error)
}

type Handler struct {
	Store      *store.Store
	PaymentSvc ChargeIntentCreator
}

func NewHandler(s *store.Store, paymentSvc ChargeIntentCreator) *Handler {
	return &Handler{
		Store:      s,
		PaymentSvc: paymentSvc,
	}
}
