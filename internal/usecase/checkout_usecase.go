package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"laundry_pos/internal/domain/entities"
	"laundry_pos/internal/usecase/interfaces"
)

var (
	ErrGatewayNotConfigured  = errors.New("payment gateway not configured")
	ErrGatewayCheckoutFailed = errors.New("payment gateway checkout failed")
	ErrNoWatchedOrder        = errors.New("no watched order for this draft")
	ErrOrderSubmissionFailed = errors.New("order submission failed")
)

// CheckoutResult is what the screen needs after a successful submission: the
// backend's order record, the change due on a cash sale, and the redirect URL
// for the gateway flow.
type CheckoutResult struct {
	Order       entities.Order
	ChangeMinor int64
	PaymentURL  string
}

// ICheckoutUseCase submits a validated draft and manages the payment watch
// that follows a non-cash sale.

type ICheckoutUseCase interface {
	Checkout(ctx context.Context, draftID string) (CheckoutResult, error)
	CancelWatch(ctx context.Context, draftID string) error
}

type CheckoutUseCase struct {
	repo    interfaces.IDraftRepository
	orders  interfaces.IOrderSubmissionService
	gateway interfaces.IPaymentGateway
	watcher interfaces.IPaymentWatcher
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(repo interfaces.IDraftRepository, orders interfaces.IOrderSubmissionService, gateway interfaces.IPaymentGateway, watcher interfaces.IPaymentWatcher) *CheckoutUseCase {
	return &CheckoutUseCase{repo: repo, orders: orders, gateway: gateway, watcher: watcher}
}

// Checkout validates the draft, submits it and settles the after-effects per
// payment method. Validation runs before any network call; a draft the
// cashier must fix costs no I/O.
func (u *CheckoutUseCase) Checkout(ctx context.Context, draftID string) (CheckoutResult, error) {
	d, err := u.loadDraft(ctx, draftID)
	if err != nil {
		return CheckoutResult{}, err
	}

	if err := d.ValidateForCheckout(); err != nil {
		log.Printf("[checkout][usecase] validation failed draft_id=%s err=%v", d.ID, err)
		return CheckoutResult{}, err
	}

	log.Printf("[checkout][usecase] submit start draft_id=%s method=%s total=%d final=%d",
		d.ID, d.PaymentMethod, d.SubtotalMinor(), d.TotalMinor())

	order, err := u.orders.SubmitOrder(ctx, d.Submission())
	if err != nil {
		log.Printf("[checkout][usecase] submit failed draft_id=%s err=%v", d.ID, err)
		return CheckoutResult{}, fmt.Errorf("%w: %v", ErrOrderSubmissionFailed, err)
	}
	log.Printf("[checkout][usecase] submit success draft_id=%s order_id=%s", d.ID, order.ID)

	result := CheckoutResult{Order: order}

	switch d.PaymentMethod {
	case entities.PaymentMethodCash:
		// Settled at the counter: report change and clear the session.
		result.ChangeMinor = d.ChangeMinor()
		if _, err := u.repo.Save(ctx, d.Reset(time.Now().UTC())); err != nil {
			log.Printf("[checkout][usecase] reset after cash sale failed draft_id=%s err=%v", d.ID, err)
			return CheckoutResult{}, err
		}

	case entities.PaymentMethodGateway:
		if u.gateway == nil {
			return CheckoutResult{}, ErrGatewayNotConfigured
		}
		redirectURL, preferenceID, err := u.gateway.CreateCheckout(ctx, order, *d.Customer)
		if err != nil {
			log.Printf("[checkout][usecase] gateway checkout failed draft_id=%s order_id=%s err=%v", d.ID, order.ID, err)
			// The order is already at the backend; keep watching it so the
			// session still resolves if the payment lands another way.
			u.watcher.Watch(order.ID, d.ID)
			return CheckoutResult{}, fmt.Errorf("%w: %v", ErrGatewayCheckoutFailed, err)
		}
		log.Printf("[checkout][usecase] gateway checkout created order_id=%s preference_id=%s", order.ID, preferenceID)
		result.PaymentURL = redirectURL
		u.watcher.Watch(order.ID, d.ID)

	case entities.PaymentMethodBankTransfer:
		u.watcher.Watch(order.ID, d.ID)
	}

	return result, nil
}

// CancelWatch stops polling for the draft's pending order. The draft itself
// is kept; the cashier decides what happens to it next.
func (u *CheckoutUseCase) CancelWatch(ctx context.Context, draftID string) error {
	if _, err := u.loadDraft(ctx, draftID); err != nil {
		return err
	}
	if !u.watcher.CancelByDraftID(draftID) {
		return ErrNoWatchedOrder
	}
	log.Printf("[checkout][usecase] watch cancelled draft_id=%s", draftID)
	return nil
}

// HandlePaymentConfirmed is the watcher callback: a watched order reached the
// terminal paid state, so the session resets for the next sale.
func (u *CheckoutUseCase) HandlePaymentConfirmed(ctx context.Context, orderID, draftID string) {
	log.Printf("[checkout][usecase] payment confirmed order_id=%s draft_id=%s", orderID, draftID)

	d, err := u.repo.GetByID(ctx, draftID)
	if err != nil || d.ID == "" {
		log.Printf("[checkout][usecase] reset skipped, draft unavailable draft_id=%s err=%v", draftID, err)
		return
	}
	if _, err := u.repo.Save(ctx, d.Reset(time.Now().UTC())); err != nil {
		log.Printf("[checkout][usecase] reset after confirmation failed draft_id=%s err=%v", draftID, err)
	}
}

func (u *CheckoutUseCase) loadDraft(ctx context.Context, draftID string) (entities.OrderDraft, error) {
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
