package payments

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
	log "github.com/sirupsen/logrus"

	"laundry_pos/internal/domain/entities"
	"laundry_pos/internal/usecase/interfaces"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway creates hosted-checkout preferences: the customer pays
// on the provider's page and the backend observes settlement asynchronously.
//
// Mock mode (PAYMENT_GATEWAY_MOCK / MERCADOPAGO_MOCK) fabricates a redirect
// URL so the full checkout flow can run without provider credentials.
type MercadoPagoGateway struct {
	client     preference.Client
	currencyID string
	mockMode   bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	currencyID := getenvDefault("MERCADOPAGO_CURRENCY_ID", "BRL")

	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, currencyID: currencyID}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: preference.NewClient(cfg), currencyID: currencyID}, nil
}

func (g *MercadoPagoGateway) CreateCheckout(ctx context.Context, order entities.Order, customer entities.Customer) (string, string, error) {
	if g != nil && g.mockMode {
		id := fmt.Sprintf("mock-%d", time.Now().UTC().UnixNano())
		redirect := "https://checkout.example.test/pay/" + id
		log.Printf("[payment][gateway] mock checkout created order_id=%s preference_id=%s", order.ID, id)
		return redirect, id, nil
	}

	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return "", "", ErrMercadoPagoGatewayNotConfigured
	}

	items := make([]preference.ItemRequest, 0, len(order.Items))
	for _, it := range order.Items {
		items = append(items, preference.ItemRequest{
			ID:         it.ServiceID,
			Title:      it.ServiceName,
			Quantity:   it.Quantity,
			UnitPrice:  amountFromMinor(it.UnitPriceMinor, g.currencyID),
			CurrencyID: g.currencyID,
		})
	}

	req := preference.Request{
		Items: items,
		Payer: &preference.PayerRequest{
			Name:  customer.Name,
			Email: customer.Email,
			Phone: &preference.PhoneRequest{Number: customer.Phone},
		},
		// ExternalReference ties provider events back to the order.
		ExternalReference: order.ID,
	}

	log.Printf("[payment][gateway] create start order_id=%s items=%d amount=%d", order.ID, len(items), order.FinalAmountMinor)

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][gateway] sdk create failed order_id=%s err=%v", order.ID, err)
		return "", "", err
	}

	redirect := resp.InitPoint
	if redirect == "" {
		redirect = resp.SandboxInitPoint
	}
	log.Printf("[payment][gateway] create success order_id=%s preference_id=%s", order.ID, resp.ID)

	return redirect, resp.ID, nil
}

// zeroDecimalCurrencies holds currencies whose minor unit is the whole unit.
var zeroDecimalCurrencies = map[string]struct{}{
	"CLP": {},
	"IDR": {},
	"JPY": {},
	"PYG": {},
	"VND": {},
}

// amountFromMinor converts an internal minor-unit amount to the decimal
// amount the provider expects for the configured currency.
func amountFromMinor(minor int64, currencyID string) float64 {
	if _, ok := zeroDecimalCurrencies[currencyID]; ok {
		return float64(minor)
	}
	return float64(minor) / 100
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
