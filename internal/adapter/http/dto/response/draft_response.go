package response

import (
	"laundry_pos/internal/domain/entities"
	"time"
)

type LineItemResponse struct {
	ID          string `json:"id"`
	ServiceID   string `json:"service_id"`
	ServiceName string `json:"service_name"`
	Quantity    int    `json:"quantity"`
	UnitPrice   int64  `json:"unit_price"`
	Subtotal    int64  `json:"subtotal"`
}

// DraftResponse is the full snapshot the screen renders after every cart
// mutation. Subtotal, total and change are derived here so the client never
// recomputes money.
type DraftResponse struct {
	ID             string             `json:"id"`
	Customer       *CustomerResponse  `json:"customer,omitempty"`
	Items          []LineItemResponse `json:"items"`
	Discount       int                `json:"discount"`
	Notes          string             `json:"notes,omitempty"`
	PaymentMethod  string             `json:"payment_method,omitempty"`
	TenderedAmount string             `json:"tendered_amount,omitempty"`
	Subtotal       int64              `json:"subtotal"`
	Total          int64              `json:"total"`
	Change         int64              `json:"change"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

func FromOrderDraft(d entities.OrderDraft) DraftResponse {
	items := make([]LineItemResponse, 0, len(d.Items))
	for _, it := range d.Items {
		items = append(items, LineItemResponse{
			ID:          it.ID,
			ServiceID:   it.ServiceID,
			ServiceName: it.ServiceName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPriceMinor,
			Subtotal:    it.SubtotalMinor,
		})
	}

	resp := DraftResponse{
		ID:             d.ID,
		Items:          items,
		Discount:       d.DiscountPercent,
		Notes:          d.Notes,
		PaymentMethod:  string(d.PaymentMethod),
		TenderedAmount: d.TenderedAmount,
		Subtotal:       d.SubtotalMinor(),
		Total:          d.TotalMinor(),
		Change:         d.ChangeMinor(),
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
	if d.Customer != nil {
		c := FromCustomer(*d.Customer)
		resp.Customer = &c
	}
	return resp
}
