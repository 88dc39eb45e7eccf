package interfaces

import (
	"context"
	"laundry_pos/internal/domain/entities"
)

// IPaymentGateway abstracts the hosted-checkout provider (e.g. Mercado Pago).
//
// CreateCheckout registers the order with the provider and returns the URL
// the customer is redirected to; settlement is observed later through the
// backend's payment status endpoint, never synchronously.
type IPaymentGateway interface {
	CreateCheckout(ctx context.Context, order entities.Order, customer entities.Customer) (redirectURL string, preferenceID string, err error)
}
