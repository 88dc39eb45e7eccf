package entities

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"
)

// PaymentMethod enumerates how an order can be settled at the counter.
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	// PaymentMethodGateway is the hosted-checkout flow: the customer pays on
	// the provider's page and settlement is observed asynchronously.
	PaymentMethodGateway PaymentMethod = "gateway"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodBankTransfer, PaymentMethodGateway:
		return true
	}
	return false
}

var (
	ErrInvalidDiscount       = errors.New("discount percent must be between 0 and 100")
	ErrInvalidPaymentMethod  = errors.New("unknown payment method")
	ErrNoCustomerSelected    = errors.New("no customer selected")
	ErrEmptyCart             = errors.New("cart is empty")
	ErrNoPaymentMethodChosen = errors.New("no payment method chosen")
	ErrInsufficientPayment   = errors.New("tendered amount is less than the total")
)

// LineItem is one row of the cart. Service name and unit price are copied at
// add time, so later catalog changes never touch an open draft.
//
// Invariant: SubtotalMinor == int64(Quantity) * UnitPriceMinor after every
// mutation; it is always recomputed, never patched independently.
type LineItem struct {
	ID             string `json:"id"`
	ServiceID      string `json:"service_id"`
	ServiceName    string `json:"service_name"`
	Quantity       int    `json:"quantity"`
	UnitPriceMinor int64  `json:"unit_price"`
	SubtotalMinor  int64  `json:"subtotal"`
}

// OrderDraft is the in-progress order owned by one POS session.
//
// Drafts are value snapshots: every mutation returns a new draft and leaves
// the receiver untouched, so callers can hold, compare and persist snapshots
// without defensive copying.
type OrderDraft struct {
	ID              string        `json:"id"`
	Customer        *Customer     `json:"customer,omitempty"`
	Items           []LineItem    `json:"items"`
	DiscountPercent int           `json:"discount"`
	Notes           string        `json:"notes"`
	PaymentMethod   PaymentMethod `json:"payment_method,omitempty"`
	TenderedAmount  string        `json:"tendered_amount,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// NewOrderDraft returns an empty draft for a fresh POS session.
func NewOrderDraft(id string, now time.Time) OrderDraft {
	return OrderDraft{ID: id, CreatedAt: now, UpdatedAt: now}
}

func (d OrderDraft) cloneItems() []LineItem {
	items := make([]LineItem, len(d.Items))
	copy(items, d.Items)
	return items
}

// AddItem puts a catalog service into the cart. Re-adding a service already
// present merges into the existing row (same line item id, quantity summed);
// otherwise a new row is appended with lineID. A non-positive quantity counts
// as 1.
func (d OrderDraft) AddItem(service ServiceItem, quantity int, lineID string) OrderDraft {
	if quantity <= 0 {
		quantity = 1
	}

	items := d.cloneItems()
	for i, it := range items {
		if it.ServiceID == service.ID {
			it.Quantity += quantity
			it.SubtotalMinor = int64(it.Quantity) * it.UnitPriceMinor
			items[i] = it
			d.Items = items
			return d
		}
	}

	items = append(items, LineItem{
		ID:             lineID,
		ServiceID:      service.ID,
		ServiceName:    service.Name,
		Quantity:       quantity,
		UnitPriceMinor: service.PriceMinor,
		SubtotalMinor:  service.PriceMinor * int64(quantity),
	})
	d.Items = items
	return d
}

// RemoveItem drops the matching row. Unknown ids are a no-op, not an error.
func (d OrderDraft) RemoveItem(lineID string) OrderDraft {
	items := make([]LineItem, 0, len(d.Items))
	for _, it := range d.Items {
		if it.ID != lineID {
			items = append(items, it)
		}
	}
	d.Items = items
	return d
}

// UpdateQuantity sets a row's quantity and recomputes its subtotal. A
// quantity of zero or less behaves exactly like RemoveItem. Unknown ids are a
// no-op.
func (d OrderDraft) UpdateQuantity(lineID string, quantity int) OrderDraft {
	if quantity <= 0 {
		return d.RemoveItem(lineID)
	}

	items := d.cloneItems()
	for i, it := range items {
		if it.ID == lineID {
			it.Quantity = quantity
			it.SubtotalMinor = int64(quantity) * it.UnitPriceMinor
			items[i] = it
			break
		}
	}
	d.Items = items
	return d
}

// WithDiscountPercent rejects values outside [0,100]; the backend depends on
// a bounded percentage.
func (d OrderDraft) WithDiscountPercent(percent int) (OrderDraft, error) {
	if percent < 0 || percent > 100 {
		return d, ErrInvalidDiscount
	}
	d.DiscountPercent = percent
	return d, nil
}

func (d OrderDraft) WithNotes(notes string) OrderDraft {
	d.Notes = notes
	return d
}

func (d OrderDraft) WithCustomer(c Customer) OrderDraft {
	d.Customer = &c
	return d
}

// WithPayment records the chosen method and, for cash, the tendered amount.
func (d OrderDraft) WithPayment(method PaymentMethod, tenderedAmount string) (OrderDraft, error) {
	if !method.Valid() {
		return d, ErrInvalidPaymentMethod
	}
	d.PaymentMethod = method
	d.TenderedAmount = tenderedAmount
	return d, nil
}

// SubtotalMinor is the pre-discount sum of all line subtotals.
func (d OrderDraft) SubtotalMinor() int64 {
	var sum int64
	for _, it := range d.Items {
		sum += it.SubtotalMinor
	}
	return sum
}

// TotalMinor is subtotal minus the percentage discount, rounded half-up to
// the minor unit exactly once. Rounding per line would accumulate drift.
func (d OrderDraft) TotalMinor() int64 {
	return divRoundHalfUp(d.SubtotalMinor()*int64(100-d.DiscountPercent), 100)
}

// TenderedMinor parses the tendered amount string. Unparseable or empty input
// counts as zero, which validation then reports as insufficient payment.
func (d OrderDraft) TenderedMinor() int64 {
	return parseAmountMinor(d.TenderedAmount)
}

// ChangeMinor may be negative; that is a validation signal, not an error.
func (d OrderDraft) ChangeMinor() int64 {
	return d.TenderedMinor() - d.TotalMinor()
}

// ValidateForCheckout gates submission. Checks run in a fixed order and the
// first failure wins: customer, cart, payment method, then cash coverage.
func (d OrderDraft) ValidateForCheckout() error {
	if d.Customer == nil {
		return ErrNoCustomerSelected
	}
	if len(d.Items) == 0 {
		return ErrEmptyCart
	}
	if d.PaymentMethod == "" {
		return ErrNoPaymentMethodChosen
	}
	if d.PaymentMethod == PaymentMethodCash && d.ChangeMinor() < 0 {
		return ErrInsufficientPayment
	}
	return nil
}

// Reset clears the session back to an empty draft, keeping the session id.
func (d OrderDraft) Reset(now time.Time) OrderDraft {
	return OrderDraft{ID: d.ID, CreatedAt: d.CreatedAt, UpdatedAt: now}
}

func divRoundHalfUp(numerator, denominator int64) int64 {
	return (numerator + denominator/2) / denominator
}

func parseAmountMinor(s string) int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return int64(math.Floor(f + 0.5))
}
