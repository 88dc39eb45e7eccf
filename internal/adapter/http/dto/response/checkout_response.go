package response

import (
	"laundry_pos/internal/domain/entities"
	"laundry_pos/internal/usecase"
	"time"
)

type OrderResponse struct {
	ID            string             `json:"id"`
	CustomerID    string             `json:"customer_id"`
	CustomerName  string             `json:"customer_name,omitempty"`
	Items         []LineItemResponse `json:"items"`
	TotalAmount   int64              `json:"total_amount"`
	Discount      int                `json:"discount"`
	FinalAmount   int64              `json:"final_amount"`
	Status        string             `json:"status"`
	PaymentStatus string             `json:"payment_status"`
	PaymentMethod string             `json:"payment_method,omitempty"`
	Notes         string             `json:"notes,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// CheckoutResponse is the outcome of a submitted draft. Change is only
// meaningful for cash; payment_url only for the gateway flow.
type CheckoutResponse struct {
	Order      OrderResponse `json:"order"`
	Change     int64         `json:"change"`
	PaymentURL string        `json:"payment_url,omitempty"`
}

func FromOrder(o entities.Order) OrderResponse {
	items := make([]LineItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, LineItemResponse{
			ID:          it.ID,
			ServiceID:   it.ServiceID,
			ServiceName: it.ServiceName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPriceMinor,
			Subtotal:    it.SubtotalMinor,
		})
	}
	return OrderResponse{
		ID:            o.ID,
		CustomerID:    o.CustomerID,
		CustomerName:  o.CustomerName,
		Items:         items,
		TotalAmount:   o.TotalAmountMinor,
		Discount:      o.DiscountPercent,
		FinalAmount:   o.FinalAmountMinor,
		Status:        string(o.Status),
		PaymentStatus: string(o.PaymentStatus),
		PaymentMethod: string(o.PaymentMethod),
		Notes:         o.Notes,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

func FromCheckoutResult(r usecase.CheckoutResult) CheckoutResponse {
	return CheckoutResponse{
		Order:      FromOrder(r.Order),
		Change:     r.ChangeMinor,
		PaymentURL: r.PaymentURL,
	}
}
