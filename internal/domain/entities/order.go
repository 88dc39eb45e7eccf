package entities

import "time"

// OrderStatus mirrors the lifecycle the backend reports for a submitted order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// PaymentStatus is the backend's view of settlement. PaymentStatusPaid is the
// terminal state the payment watcher waits for.
type PaymentStatus string

const (
	PaymentStatusUnpaid  PaymentStatus = "unpaid"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusPartial PaymentStatus = "partial"
	PaymentStatusPending PaymentStatus = "pending"
)

// SubmissionItem is one cart row as the order submission endpoint expects it.
type SubmissionItem struct {
	ServiceID      string `json:"serviceId"`
	ServiceName    string `json:"serviceName"`
	Quantity       int    `json:"quantity"`
	UnitPriceMinor int64  `json:"unitPrice"`
}

// OrderSubmission is the payload sent to the backend when a draft checks out.
// Totals are computed by the draft; the backend re-validates them.
type OrderSubmission struct {
	CustomerID       string           `json:"customerId"`
	Items            []SubmissionItem `json:"items"`
	TotalAmountMinor int64            `json:"totalAmount"`
	DiscountPercent  int              `json:"discount"`
	FinalAmountMinor int64            `json:"finalAmount"`
	PaymentMethod    PaymentMethod    `json:"paymentMethod"`
	Notes            string           `json:"notes,omitempty"`
	Status           OrderStatus      `json:"status"`
	PaymentStatus    PaymentStatus    `json:"paymentStatus"`
}

// Order is the record the backend returns. The POS treats it as opaque except
// for PaymentStatus, which drives the watcher.
type Order struct {
	ID               string        `json:"id"`
	CustomerID       string        `json:"customerId"`
	CustomerName     string        `json:"customerName"`
	Items            []LineItem    `json:"items"`
	TotalAmountMinor int64         `json:"totalAmount"`
	DiscountPercent  int           `json:"discount"`
	FinalAmountMinor int64         `json:"finalAmount"`
	Status           OrderStatus   `json:"status"`
	PaymentStatus    PaymentStatus `json:"paymentStatus"`
	PaymentMethod    PaymentMethod `json:"paymentMethod,omitempty"`
	Notes            string        `json:"notes,omitempty"`
	CreatedAt        time.Time     `json:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt"`
}

// Submission builds the backend payload from a validated draft. Cash sales
// settle at the counter; every other method starts out pending.
func (d OrderDraft) Submission() OrderSubmission {
	items := make([]SubmissionItem, 0, len(d.Items))
	for _, it := range d.Items {
		items = append(items, SubmissionItem{
			ServiceID:      it.ServiceID,
			ServiceName:    it.ServiceName,
			Quantity:       it.Quantity,
			UnitPriceMinor: it.UnitPriceMinor,
		})
	}

	paymentStatus := PaymentStatusPending
	if d.PaymentMethod == PaymentMethodCash {
		paymentStatus = PaymentStatusPaid
	}

	var customerID string
	if d.Customer != nil {
		customerID = d.Customer.ID
	}

	return OrderSubmission{
		CustomerID:       customerID,
		Items:            items,
		TotalAmountMinor: d.SubtotalMinor(),
		DiscountPercent:  d.DiscountPercent,
		FinalAmountMinor: d.TotalMinor(),
		PaymentMethod:    d.PaymentMethod,
		Notes:            d.Notes,
		Status:           OrderStatusPending,
		PaymentStatus:    paymentStatus,
	}
}
