package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"laundry_pos/internal/domain/entities"
	"laundry_pos/internal/usecase/interfaces"
)

var (
	ErrInvalidCustomerID      = errors.New("invalid customer id")
	ErrCustomerNotFound       = errors.New("customer not found")
	ErrCustomerCreationFailed = errors.New("customer creation failed")
)

// ICustomerUseCase fronts the external customer directory. Creation is
// validated locally first so no request is wasted on a form the cashier must
// fix anyway.

type ICustomerUseCase interface {
	List(ctx context.Context) ([]entities.Customer, error)
	Search(ctx context.Context, term string) ([]entities.Customer, error)
	Create(ctx context.Context, in entities.NewCustomerInput) (entities.Customer, error)
}

type CustomerUseCase struct {
	directory interfaces.ICustomerDirectory
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(directory interfaces.ICustomerDirectory) *CustomerUseCase {
	return &CustomerUseCase{directory: directory}
}

func (u *CustomerUseCase) List(ctx context.Context) ([]entities.Customer, error) {
	return u.directory.ListCustomers(ctx)
}

func (u *CustomerUseCase) Search(ctx context.Context, term string) ([]entities.Customer, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return u.directory.ListCustomers(ctx)
	}
	return u.directory.SearchCustomers(ctx, term)
}

func (u *CustomerUseCase) Create(ctx context.Context, in entities.NewCustomerInput) (entities.Customer, error) {
	in = in.Normalized()
	if err := in.Validate(); err != nil {
		log.Printf("[customer][usecase] create rejected by validation err=%v", err)
		return entities.Customer{}, err
	}

	created, err := u.directory.CreateCustomer(ctx, in)
	if err != nil {
		log.Printf("[customer][usecase] directory create failed name=%q err=%v", in.Name, err)
		return entities.Customer{}, fmt.Errorf("%w: %v", ErrCustomerCreationFailed, err)
	}
	log.Printf("[customer][usecase] create success customer_id=%s", created.ID)
	return created, nil
}
