package interfaces

import (
	"context"
	"laundry_pos/internal/domain/entities"
)

// Ports onto the external laundry backend API. All four are JSON-over-HTTP
// services; the contract is a given, not something this service designs.

// ICatalogSource reads the service catalog, already filtered to active items.
type ICatalogSource interface {
	ListServices(ctx context.Context) ([]entities.ServiceItem, error)
	GetServiceByID(ctx context.Context, id string) (entities.ServiceItem, error)
}

// ICustomerDirectory looks up and creates customers; ids are assigned by the
// directory.
type ICustomerDirectory interface {
	ListCustomers(ctx context.Context) ([]entities.Customer, error)
	SearchCustomers(ctx context.Context, term string) ([]entities.Customer, error)
	GetCustomerByID(ctx context.Context, id string) (entities.Customer, error)
	CreateCustomer(ctx context.Context, in entities.NewCustomerInput) (entities.Customer, error)
}

// IOrderSubmissionService accepts a checkout payload and returns the created
// order record.
type IOrderSubmissionService interface {
	SubmitOrder(ctx context.Context, sub entities.OrderSubmission) (entities.Order, error)
}

// IPaymentStatusSource reports the current settlement state of an order; the
// payment watcher queries it once per tick.
type IPaymentStatusSource interface {
	GetPaymentStatus(ctx context.Context, orderID string) (entities.PaymentStatus, error)
}
