package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"laundry_pos/internal/domain/entities"
	mock_interfaces "laundry_pos/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type checkoutFixture struct {
	repo    *mock_interfaces.MockIDraftRepository
	orders  *mock_interfaces.MockIOrderSubmissionService
	gateway *mock_interfaces.MockIPaymentGateway
	watcher *mock_interfaces.MockIPaymentWatcher
	uc      *CheckoutUseCase
}

func newCheckoutFixture(ctrl *gomock.Controller) checkoutFixture {
	f := checkoutFixture{
		repo:    mock_interfaces.NewMockIDraftRepository(ctrl),
		orders:  mock_interfaces.NewMockIOrderSubmissionService(ctrl),
		gateway: mock_interfaces.NewMockIPaymentGateway(ctrl),
		watcher: mock_interfaces.NewMockIPaymentWatcher(ctrl),
	}
	f.uc = NewCheckoutUseCase(f.repo, f.orders, f.gateway, f.watcher)
	return f
}

func checkoutDraft(method entities.PaymentMethod, tendered string) entities.OrderDraft {
	d := entities.NewOrderDraft("draft-1", time.Now().UTC().Add(-time.Minute)).
		WithCustomer(entities.Customer{ID: "cust-1", Name: "Ana", Phone: "11987654321", Address: "Rua 1"}).
		AddItem(entities.ServiceItem{ID: "svc-1", Name: "Wash & Fold", PriceMinor: 10000}, 2, "line-1")
	d, _ = d.WithPayment(method, tendered)
	return d
}

func TestCheckoutUseCase_Checkout(t *testing.T) {
	t.Run("invalid draft id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newCheckoutFixture(ctrl)

		_, err := f.uc.Checkout(context.Background(), "")
		if !errors.Is(err, ErrInvalidDraftID) {
			t.Fatalf("expected ErrInvalidDraftID, got %v", err)
		}
	})

	t.Run("draft not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newCheckoutFixture(ctrl)

		f.repo.EXPECT().GetByID(gomock.Any(), "draft-1").Return(entities.OrderDraft{}, nil)

		_, err := f.uc.Checkout(context.Background(), "draft-1")
		if !errors.Is(err, ErrDraftNotFound) {
			t.Fatalf("expected ErrDraftNotFound, got %v", err)
		}
	})

	t.Run("validation failure costs no network call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newCheckoutFixture(ctrl)

		empty := entities.NewOrderDraft("draft-1", time.Now().UTC())
		f.repo.EXPECT().GetByID(gomock.Any(), "draft-1").Return(empty, nil)

		_, err := f.uc.Checkout(context.Background(), "draft-1")
		if !errors.Is(err, entities.ErrNoCustomerSelected) {
			t.Fatalf("expected ErrNoCustomerSelected, got %v", err)
		}
	})

	t.Run("insufficient cash blocks submission", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newCheckoutFixture(ctrl)

		d := checkoutDraft(entities.PaymentMethodCash, "19999")
		f.repo.EXPECT().GetByID(gomock.Any(), "draft-1").Return(d, nil)

		_, err := f.uc.Checkout(context.Background(), "draft-1")
		if !errors.Is(err, entities.ErrInsufficientPayment) {
			t.Fatalf("expected ErrInsufficientPayment, got %v", err)
		}
	})

	t.Run("submission failure is wrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newCheckoutFixture(ctrl)

		d := checkoutDraft(entities.PaymentMethodCash, "20000")
		f.repo.EXPECT().GetByID(gomock.Any(), "draft-1").Return(d, nil)
		f.orders.EXPECT().SubmitOrder(gomock.Any(), gomock.Any()).Return(entities.Order{}, errors.New("503"))

		_, err := f.uc.Checkout(context.Background(), "draft-1")
		if !errors.Is(err, ErrOrderSubmissionFailed) {
			t.Fatalf("expected ErrOrderSubmissionFailed, got %v", err)
		}
	})

	t.Run("cash sale reports change and resets the session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newCheckoutFixture(ctrl)

		d := checkoutDraft(entities.PaymentMethodCash, "22000")
		f.repo.EXPECT().GetByID(gomock.Any(), "draft-1").Return(d, nil)
		f.orders.EXPECT().SubmitOrder(gomock.Any(), gomock.AssignableToTypeOf(entities.OrderSubmission{})).DoAndReturn(
			func(_ context.Context, sub entities.OrderSubmission) (entities.Order, error) {
				if sub.PaymentStatus != entities.PaymentStatusPaid {
					t.Fatalf("cash must submit as paid, got %q", sub.PaymentStatus)
				}
				return entities.Order{ID: "order-1", PaymentStatus: sub.PaymentStatus}, nil
			},
		)
		f.repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.OrderDraft{})).DoAndReturn(
			func(_ context.Context, saved entities.OrderDraft) (entities.OrderDraft, error) {
				if saved.ID != "draft-1" || len(saved.Items) != 0 {
					t.Fatalf("expected reset draft, got %+v", saved)
				}
				return saved, nil
			},
		)

		res, err := f.uc.Checkout(context.Background(), "draft-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Order.ID != "order-1" || res.ChangeMinor != 2000 || res.PaymentURL != "" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("gateway sale returns the redirect and starts a watch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newCheckoutFixture(ctrl)

		d := checkoutDraft(entities.PaymentMethodGateway, "")
		f.repo.EXPECT().GetByID(gomock.Any(), "draft-1").Return(d, nil)
		f.orders.EXPECT().SubmitOrder(gomock.Any(), gomock.Any()).Return(entities.Order{ID: "order-1"}, nil)
		f.gateway.EXPECT().CreateCheckout(gomock.Any(), gomock.Any(), gomock.Any()).
			Return("https://pay.example/redirect", "pref-1", nil)
		f.watcher.EXPECT().Watch("order-1", "draft-1")

		res, err := f.uc.Checkout(context.Background(), "draft-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.PaymentURL != "https://pay.example/redirect" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("gateway failure after submission still watches the order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newCheckoutFixture(ctrl)

		d := checkoutDraft(entities.PaymentMethodGateway, "")
		f.repo.EXPECT().GetByID(gomock.Any(), "draft-1").Return(d, nil)
		f.orders.EXPECT().SubmitOrder(gomock.Any(), gomock.Any()).Return(entities.Order{ID: "order-1"}, nil)
		f.gateway.EXPECT().CreateCheckout(gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", "", errors.New("provider down"))
		// The submitted order is pending at the backend, so a watch still
		// starts even though the checkout call fails.
		f.watcher.EXPECT().Watch("order-1", "draft-1")

		_, err := f.uc.Checkout(context.Background(), "draft-1")
		if !errors.Is(err, ErrGatewayCheckoutFailed) {
			t.Fatalf("expected ErrGatewayCheckoutFailed, got %v", err)
		}
	})

	t.Run("gateway method without a configured gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDraftRepository(ctrl)
		orders := mock_interfaces.NewMockIOrderSubmissionService(ctrl)
		watcher := mock_interfaces.NewMockIPaymentWatcher(ctrl)
		uc := NewCheckoutUseCase(repo, orders, nil, watcher)

		d := checkoutDraft(entities.PaymentMethodGateway, "")
		repo.EXPECT().GetByID(gomock.Any(), "draft-1").Return(d, nil)
		orders.EXPECT().SubmitOrder(gomock.Any(), gomock.Any()).Return(entities.Order{ID: "order-1"}, nil)

		_, err := uc.Checkout(context.Background(), "draft-1")
		if !errors.Is(err, ErrGatewayNotConfigured) {
			t.Fatalf("expected ErrGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("bank transfer starts a watch and keeps the draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newCheckoutFixture(ctrl)

		d := checkoutDraft(entities.PaymentMethodBankTransfer, "")
		f.repo.EXPECT().GetByID(gomock.Any(), "draft-1").Return(d, nil)
		f.orders.EXPECT().SubmitOrder(gomock.Any(), gomock.AssignableToTypeOf(entities.OrderSubmission{})).DoAndReturn(
			func(_ context.Context, sub entities.OrderSubmission) (entities.Order, error) {
				if sub.PaymentStatus != entities.PaymentStatusPending {
					t.Fatalf("bank transfer must submit as pending, got %q", sub.PaymentStatus)
				}
				return entities.Order{ID: "order-1"}, nil
			},
		)
		f.watcher.EXPECT().Watch("order-1", "draft-1")

		res, err := f.uc.Checkout(context.Background(), "draft-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ChangeMinor != 0 || res.PaymentURL != "" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestCheckoutUseCase_CancelWatch(t *testing.T) {
	t.Run("no watch registered", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newCheckoutFixture(ctrl)

		f.repo.EXPECT().GetByID(gomock.Any(), "draft-1").Return(checkoutDraft(entities.PaymentMethodBankTransfer, ""), nil)
		f.watcher.EXPECT().CancelByDraftID("draft-1").Return(false)

		if err := f.uc.CancelWatch(context.Background(), "draft-1"); !errors.Is(err, ErrNoWatchedOrder) {
			t.Fatalf("expected ErrNoWatchedOrder, got %v", err)
		}
	})

	t.Run("cancels an active watch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newCheckoutFixture(ctrl)

		f.repo.EXPECT().GetByID(gomock.Any(), "draft-1").Return(checkoutDraft(entities.PaymentMethodBankTransfer, ""), nil)
		f.watcher.EXPECT().CancelByDraftID("draft-1").Return(true)

		if err := f.uc.CancelWatch(context.Background(), "draft-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCheckoutUseCase_HandlePaymentConfirmed(t *testing.T) {
	t.Run("resets the draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newCheckoutFixture(ctrl)

		d := checkoutDraft(entities.PaymentMethodBankTransfer, "")
		f.repo.EXPECT().GetByID(gomock.Any(), "draft-1").Return(d, nil)
		f.repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.OrderDraft{})).DoAndReturn(
			func(_ context.Context, saved entities.OrderDraft) (entities.OrderDraft, error) {
				if len(saved.Items) != 0 || saved.PaymentMethod != "" {
					t.Fatalf("expected reset draft, got %+v", saved)
				}
				return saved, nil
			},
		)

		f.uc.HandlePaymentConfirmed(context.Background(), "order-1", "draft-1")
	})

	t.Run("missing draft is ignored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newCheckoutFixture(ctrl)

		f.repo.EXPECT().GetByID(gomock.Any(), "draft-1").Return(entities.OrderDraft{}, nil)

		f.uc.HandlePaymentConfirmed(context.Background(), "order-1", "draft-1")
	})
}
