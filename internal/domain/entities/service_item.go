package entities

// ServiceItem is one entry of the laundry service catalog.
//
// The external backend owns the catalog; this service only reads it. Prices
// are carried in minor currency units (whole rupiah) so cart arithmetic stays
// integer end to end.

type ServiceItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category"`
	PriceMinor  int64  `json:"price"`
}
