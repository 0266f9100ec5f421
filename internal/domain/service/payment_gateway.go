package service

import "context"

// PaymentOrder is the gateway-side order a client pays against.
type PaymentOrder struct {
	OrderID  string  // Gateway order identifier.
	Amount   float64 // Order amount in major currency units.
	Currency string
}

// PaymentGateway defines the thin interface over the third-party payment
// provider. Protocol details stay behind this boundary; the use cases only
// create orders and verify callback signatures.
type PaymentGateway interface {
	// CreateOrder registers a new order with the gateway.
	CreateOrder(ctx context.Context, amount float64, currency, receipt string) (*PaymentOrder, error)

	// VerifySignature checks the gateway's HMAC signature over the
	// order/payment pair returned by the checkout callback.
	VerifySignature(orderID, paymentID, signature string) bool
}
