package request

// Payloads for the draft (cart) endpoints. Quantities use pointers where zero
// is meaningful, so gin's required binding doesn't reject it.

type AddItemRequest struct {
	ServiceID string `json:"service_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

type DiscountRequest struct {
	Percent *int `json:"percent" binding:"required"`
}

type NotesRequest struct {
	Notes string `json:"notes"`
}

type SelectCustomerRequest struct {
	CustomerID string `json:"customer_id" binding:"required"`
}

type PaymentRequest struct {
	Method string `json:"method" binding:"required"`
	// TenderedAmount is a decimal string; only meaningful for cash.
	TenderedAmount string `json:"tendered_amount"`
}
