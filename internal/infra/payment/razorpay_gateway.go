// Package payment implements the payment gateway client against a
// Razorpay-compatible REST API with HMAC-SHA256 callback signatures.
package payment

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"time"

	"wellclub/config"
	"wellclub/internal/domain/service"
	"wellclub/internal/errors"
)

const (
	defaultBaseURL    = "https://api.razorpay.com/v1"
	requestTimeout    = 15 * time.Second
	minorUnitsPerUnit = 100
)

type razorpayGateway struct {
	keyID     string
	keySecret string
	baseURL   string
	client    *http.Client
}

// orderRequest is the gateway's order creation payload. Amounts are sent
// in minor currency units (paise for INR).
type orderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type orderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Status   string `json:"status"`
}

// NewRazorpayGateway is the constructor for razorpayGateway.
func NewRazorpayGateway(cfg *config.Config) (service.PaymentGateway, error) {
	if cfg.Payment == nil || cfg.Payment.KeyID == "" || cfg.Payment.KeySecret == "" {
		return nil, errors.New("payment gateway credentials must be provided")
	}

	baseURL := cfg.Payment.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &razorpayGateway{
		keyID:     cfg.Payment.KeyID,
		keySecret: cfg.Payment.KeySecret,
		baseURL:   baseURL,
		client:    &http.Client{Timeout: requestTimeout},
	}, nil
}

// CreateOrder registers a new order with the gateway.
func (g *razorpayGateway) CreateOrder(ctx context.Context, amount float64, currency, receipt string) (*service.PaymentOrder, error) {
	payload, err := json.Marshal(orderRequest{
		Amount:   int64(amount * minorUnitsPerUnit),
		Currency: currency,
		Receipt:  receipt,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal order request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/orders", bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, "failed to build order request")
	}
	req.SetBasicAuth(g.keyID, g.keySecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "gateway order request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("gateway order request returned status %d", resp.StatusCode)
	}

	var order orderResponse
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, errors.Wrap(err, "failed to decode gateway order response")
	}

	return &service.PaymentOrder{
		OrderID:  order.ID,
		Amount:   float64(order.Amount) / minorUnitsPerUnit,
		Currency: order.Currency,
	}, nil
}

// VerifySignature checks the gateway's HMAC-SHA256 signature over
// "orderID|paymentID", as sent by the checkout callback.
func (g *razorpayGateway) VerifySignature(orderID, paymentID, signature string) bool {
	if orderID == "" || paymentID == "" || signature == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(g.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
