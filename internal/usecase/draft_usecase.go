package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"laundry_pos/internal/domain/entities"
	"laundry_pos/internal/usecase/interfaces"
)

var (
	ErrInvalidDraftID    = errors.New("invalid draft id")
	ErrDraftNotFound     = errors.New("draft not found")
	ErrInvalidServiceID  = errors.New("invalid service id")
	ErrInvalidLineItemID = errors.New("invalid line item id")
	ErrServiceNotFound   = errors.New("service not found")
)

// IDraftUseCase is the order builder: every operation loads the session's
// draft, applies one pure transformation and persists the new snapshot. The
// returned draft is what the screen renders next.

type IDraftUseCase interface {
	StartDraft(ctx context.Context) (entities.OrderDraft, error)
	GetDraft(ctx context.Context, draftID string) (entities.OrderDraft, error)
	AddItem(ctx context.Context, draftID, serviceID string, quantity int) (entities.OrderDraft, error)
	RemoveItem(ctx context.Context, draftID, lineItemID string) (entities.OrderDraft, error)
	UpdateQuantity(ctx context.Context, draftID, lineItemID string, quantity int) (entities.OrderDraft, error)
	SetDiscount(ctx context.Context, draftID string, percent int) (entities.OrderDraft, error)
	SetNotes(ctx context.Context, draftID, notes string) (entities.OrderDraft, error)
	SelectCustomer(ctx context.Context, draftID, customerID string) (entities.OrderDraft, error)
	SetPayment(ctx context.Context, draftID, method, tenderedAmount string) (entities.OrderDraft, error)
	ResetDraft(ctx context.Context, draftID string) (entities.OrderDraft, error)
}

type DraftUseCase struct {
	repo      interfaces.IDraftRepository
	catalog   interfaces.ICatalogSource
	directory interfaces.ICustomerDirectory
}

var _ IDraftUseCase = (*DraftUseCase)(nil)

func NewDraftUseCase(repo interfaces.IDraftRepository, catalog interfaces.ICatalogSource, directory interfaces.ICustomerDirectory) *DraftUseCase {
	return &DraftUseCase{repo: repo, catalog: catalog, directory: directory}
}

func (u *DraftUseCase) StartDraft(ctx context.Context) (entities.OrderDraft, error) {
	d := entities.NewOrderDraft(uuid.NewString(), time.Now().UTC())
	log.Printf("[draft][usecase] start draft_id=%s", d.ID)
	return u.repo.Save(ctx, d)
}

func (u *DraftUseCase) GetDraft(ctx context.Context, draftID string) (entities.OrderDraft, error) {
	return u.load(ctx, draftID)
}

func (u *DraftUseCase) AddItem(ctx context.Context, draftID, serviceID string, quantity int) (entities.OrderDraft, error) {
	serviceID = strings.TrimSpace(serviceID)
	if serviceID == "" {
		return entities.OrderDraft{}, ErrInvalidServiceID
	}

	d, err := u.load(ctx, draftID)
	if err != nil {
		return entities.OrderDraft{}, err
	}

	svc, err := u.catalog.GetServiceByID(ctx, serviceID)
	if err != nil {
		log.Printf("[draft][usecase] catalog lookup failed draft_id=%s service_id=%s err=%v", draftID, serviceID, err)
		return entities.OrderDraft{}, err
	}
	if svc.ID == "" {
		return entities.OrderDraft{}, ErrServiceNotFound
	}

	d = d.AddItem(svc, quantity, uuid.NewString())
	log.Printf("[draft][usecase] add item draft_id=%s service_id=%s qty=%d subtotal=%d", d.ID, serviceID, quantity, d.SubtotalMinor())
	return u.save(ctx, d)
}

func (u *DraftUseCase) RemoveItem(ctx context.Context, draftID, lineItemID string) (entities.OrderDraft, error) {
	if strings.TrimSpace(lineItemID) == "" {
		return entities.OrderDraft{}, ErrInvalidLineItemID
	}

	d, err := u.load(ctx, draftID)
	if err != nil {
		return entities.OrderDraft{}, err
	}
	return u.save(ctx, d.RemoveItem(lineItemID))
}

func (u *DraftUseCase) UpdateQuantity(ctx context.Context, draftID, lineItemID string, quantity int) (entities.OrderDraft, error) {
	if strings.TrimSpace(lineItemID) == "" {
		return entities.OrderDraft{}, ErrInvalidLineItemID
	}

	d, err := u.load(ctx, draftID)
	if err != nil {
		return entities.OrderDraft{}, err
	}
	return u.save(ctx, d.UpdateQuantity(lineItemID, quantity))
}

func (u *DraftUseCase) SetDiscount(ctx context.Context, draftID string, percent int) (entities.OrderDraft, error) {
	d, err := u.load(ctx, draftID)
	if err != nil {
		return entities.OrderDraft{}, err
	}

	d, err = d.WithDiscountPercent(percent)
	if err != nil {
		return entities.OrderDraft{}, err
	}
	return u.save(ctx, d)
}

func (u *DraftUseCase) SetNotes(ctx context.Context, draftID, notes string) (entities.OrderDraft, error) {
	d, err := u.load(ctx, draftID)
	if err != nil {
		return entities.OrderDraft{}, err
	}
	return u.save(ctx, d.WithNotes(notes))
}

func (u *DraftUseCase) SelectCustomer(ctx context.Context, draftID, customerID string) (entities.OrderDraft, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return entities.OrderDraft{}, ErrInvalidCustomerID
	}

	d, err := u.load(ctx, draftID)
	if err != nil {
		return entities.OrderDraft{}, err
	}

	customer, err := u.directory.GetCustomerByID(ctx, customerID)
	if err != nil {
		log.Printf("[draft][usecase] directory lookup failed draft_id=%s customer_id=%s err=%v", draftID, customerID, err)
		return entities.OrderDraft{}, err
	}
	if customer.ID == "" {
		return entities.OrderDraft{}, ErrCustomerNotFound
	}

	log.Printf("[draft][usecase] select customer draft_id=%s customer_id=%s", d.ID, customer.ID)
	return u.save(ctx, d.WithCustomer(customer))
}

func (u *DraftUseCase) SetPayment(ctx context.Context, draftID, method, tenderedAmount string) (entities.OrderDraft, error) {
	d, err := u.load(ctx, draftID)
	if err != nil {
		return entities.OrderDraft{}, err
	}

	d, err = d.WithPayment(entities.PaymentMethod(strings.TrimSpace(method)), strings.TrimSpace(tenderedAmount))
	if err != nil {
		return entities.OrderDraft{}, err
	}
	return u.save(ctx, d)
}

func (u *DraftUseCase) ResetDraft(ctx context.Context, draftID string) (entities.OrderDraft, error) {
	d, err := u.load(ctx, draftID)
	if err != nil {
		return entities.OrderDraft{}, err
	}
	log.Printf("[draft][usecase] reset draft_id=%s", d.ID)
	return u.save(ctx, d.Reset(time.Now().UTC()))
}

func (u *DraftUseCase) load(ctx context.Context, draftID string) (entities.OrderDraft, error) {
	draftID = strings.TrimSpace(draftID)
	if draftID == "" {
		return entities.OrderDraft{}, ErrInvalidDraftID
	}

	d, err := u.repo.GetByID(ctx, draftID)
	if err != nil {
		return entities.OrderDraft{}, err
	}
	if d.ID == "" {
		return entities.OrderDraft{}, ErrDraftNotFound
	}
	return d, nil
}

func (u *DraftUseCase) save(ctx context.Context, d entities.OrderDraft) (entities.OrderDraft, error) {
	d.UpdatedAt = time.Now().UTC()
	return u.repo.Save(ctx, d)
}
