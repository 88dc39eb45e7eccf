package entities

import (
	"errors"
	"testing"
	"time"
)

var (
	washFold = ServiceItem{ID: "svc-1", Name: "Wash & Fold", Category: "Washing", PriceMinor: 10000}
	ironing  = ServiceItem{ID: "svc-2", Name: "Ironing", Category: "Ironing", PriceMinor: 5000}
)

func TestOrderDraft_AddItem(t *testing.T) {
	now := time.Now()

	t.Run("appends a new row", func(t *testing.T) {
		d := NewOrderDraft("draft-1", now).AddItem(washFold, 2, "line-1")
		if len(d.Items) != 1 {
			t.Fatalf("expected 1 item, got %d", len(d.Items))
		}
		it := d.Items[0]
		if it.ID != "line-1" || it.ServiceID != "svc-1" || it.ServiceName != "Wash & Fold" {
			t.Fatalf("unexpected item: %+v", it)
		}
		if it.Quantity != 2 || it.UnitPriceMinor != 10000 || it.SubtotalMinor != 20000 {
			t.Fatalf("unexpected amounts: %+v", it)
		}
	})

	t.Run("re-adding merges into the existing row", func(t *testing.T) {
		d := NewOrderDraft("draft-1", now).
			AddItem(washFold, 2, "line-1").
			AddItem(washFold, 3, "line-ignored")
		if len(d.Items) != 1 {
			t.Fatalf("expected merged row, got %d items", len(d.Items))
		}
		it := d.Items[0]
		if it.ID != "line-1" {
			t.Fatalf("merge must keep the original line id, got %q", it.ID)
		}
		if it.Quantity != 5 || it.SubtotalMinor != 50000 {
			t.Fatalf("unexpected merge result: %+v", it)
		}
	})

	t.Run("non-positive quantity counts as one", func(t *testing.T) {
		d := NewOrderDraft("draft-1", now).AddItem(washFold, 0, "line-1")
		if d.Items[0].Quantity != 1 {
			t.Fatalf("expected quantity 1, got %d", d.Items[0].Quantity)
		}
		d = d.AddItem(ironing, -4, "line-2")
		if d.Items[1].Quantity != 1 {
			t.Fatalf("expected quantity 1, got %d", d.Items[1].Quantity)
		}
	})

	t.Run("does not mutate the receiver", func(t *testing.T) {
		base := NewOrderDraft("draft-1", now).AddItem(washFold, 1, "line-1")
		_ = base.AddItem(washFold, 9, "line-x")
		if base.Items[0].Quantity != 1 {
			t.Fatalf("receiver was mutated: %+v", base.Items[0])
		}
	})
}

func TestOrderDraft_RemoveItem(t *testing.T) {
	now := time.Now()
	d := NewOrderDraft("draft-1", now).
		AddItem(washFold, 1, "line-1").
		AddItem(ironing, 1, "line-2")

	t.Run("drops the matching row", func(t *testing.T) {
		got := d.RemoveItem("line-1")
		if len(got.Items) != 1 || got.Items[0].ID != "line-2" {
			t.Fatalf("unexpected items: %+v", got.Items)
		}
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		got := d.RemoveItem("nope")
		if len(got.Items) != 2 {
			t.Fatalf("expected 2 items, got %d", len(got.Items))
		}
	})
}

func TestOrderDraft_UpdateQuantity(t *testing.T) {
	now := time.Now()
	d := NewOrderDraft("draft-1", now).AddItem(washFold, 2, "line-1")

	t.Run("recomputes the subtotal", func(t *testing.T) {
		got := d.UpdateQuantity("line-1", 7)
		if got.Items[0].Quantity != 7 || got.Items[0].SubtotalMinor != 70000 {
			t.Fatalf("unexpected row: %+v", got.Items[0])
		}
	})

	t.Run("zero quantity removes the row", func(t *testing.T) {
		got := d.UpdateQuantity("line-1", 0)
		if len(got.Items) != 0 {
			t.Fatalf("expected empty cart, got %+v", got.Items)
		}
	})

	t.Run("negative quantity removes the row", func(t *testing.T) {
		got := d.UpdateQuantity("line-1", -3)
		if len(got.Items) != 0 {
			t.Fatalf("expected empty cart, got %+v", got.Items)
		}
	})
}

func TestOrderDraft_Totals(t *testing.T) {
	now := time.Now()

	t.Run("subtotal sums all rows", func(t *testing.T) {
		d := NewOrderDraft("draft-1", now).
			AddItem(washFold, 2, "line-1").
			AddItem(ironing, 3, "line-2")
		if got := d.SubtotalMinor(); got != 35000 {
			t.Fatalf("expected subtotal 35000, got %d", got)
		}
	})

	t.Run("discount applies once to the subtotal", func(t *testing.T) {
		d := NewOrderDraft("draft-1", now).AddItem(washFold, 2, "line-1")
		d, err := d.WithDiscountPercent(10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := d.TotalMinor(); got != 18000 {
			t.Fatalf("expected total 18000, got %d", got)
		}
	})

	t.Run("total rounds half-up", func(t *testing.T) {
		// 3 * 2499 = 7497; 15% off leaves 6372.45, rounding to 6372.
		odd := ServiceItem{ID: "svc-3", Name: "Dry Clean", PriceMinor: 2499}
		d := NewOrderDraft("draft-1", now).AddItem(odd, 3, "line-1")
		d, _ = d.WithDiscountPercent(15)
		if got := d.TotalMinor(); got != 6372 {
			t.Fatalf("expected total 6372, got %d", got)
		}
		// 1 * 2499 at 50% is 1249.5, which rounds up to 1250.
		d2 := NewOrderDraft("draft-2", now).AddItem(odd, 1, "line-1")
		d2, _ = d2.WithDiscountPercent(50)
		if got := d2.TotalMinor(); got != 1250 {
			t.Fatalf("expected total 1250, got %d", got)
		}
	})

	t.Run("discount bounds", func(t *testing.T) {
		d := NewOrderDraft("draft-1", now)
		if _, err := d.WithDiscountPercent(-1); !errors.Is(err, ErrInvalidDiscount) {
			t.Fatalf("expected ErrInvalidDiscount, got %v", err)
		}
		if _, err := d.WithDiscountPercent(101); !errors.Is(err, ErrInvalidDiscount) {
			t.Fatalf("expected ErrInvalidDiscount, got %v", err)
		}
		if _, err := d.WithDiscountPercent(100); err != nil {
			t.Fatalf("100 is a valid discount, got %v", err)
		}
	})
}

func TestOrderDraft_Tendered(t *testing.T) {
	now := time.Now()
	base := NewOrderDraft("draft-1", now).AddItem(washFold, 2, "line-1")

	t.Run("change for exact and over payment", func(t *testing.T) {
		d, _ := base.WithPayment(PaymentMethodCash, "22000")
		if got := d.ChangeMinor(); got != 2000 {
			t.Fatalf("expected change 2000, got %d", got)
		}
		d, _ = base.WithPayment(PaymentMethodCash, "20000")
		if got := d.ChangeMinor(); got != 0 {
			t.Fatalf("expected change 0, got %d", got)
		}
	})

	t.Run("unparseable tendered amount counts as zero", func(t *testing.T) {
		d, _ := base.WithPayment(PaymentMethodCash, "abc")
		if got := d.TenderedMinor(); got != 0 {
			t.Fatalf("expected 0, got %d", got)
		}
		if got := d.ChangeMinor(); got != -20000 {
			t.Fatalf("expected change -20000, got %d", got)
		}
	})

	t.Run("decimal input rounds to minor units", func(t *testing.T) {
		d, _ := base.WithPayment(PaymentMethodCash, "20000.6")
		if got := d.TenderedMinor(); got != 20001 {
			t.Fatalf("expected 20001, got %d", got)
		}
	})

	t.Run("unknown method rejected", func(t *testing.T) {
		if _, err := base.WithPayment("crypto", ""); !errors.Is(err, ErrInvalidPaymentMethod) {
			t.Fatalf("expected ErrInvalidPaymentMethod, got %v", err)
		}
	})
}

func TestOrderDraft_ValidateForCheckout(t *testing.T) {
	now := time.Now()
	customer := Customer{ID: "cust-1", Name: "Ana", Phone: "5511999999", Address: "Rua 1"}

	t.Run("missing customer wins over empty cart", func(t *testing.T) {
		d := NewOrderDraft("draft-1", now)
		if err := d.ValidateForCheckout(); !errors.Is(err, ErrNoCustomerSelected) {
			t.Fatalf("expected ErrNoCustomerSelected, got %v", err)
		}
	})

	t.Run("empty cart", func(t *testing.T) {
		d := NewOrderDraft("draft-1", now).WithCustomer(customer)
		if err := d.ValidateForCheckout(); !errors.Is(err, ErrEmptyCart) {
			t.Fatalf("expected ErrEmptyCart, got %v", err)
		}
	})

	t.Run("missing payment method", func(t *testing.T) {
		d := NewOrderDraft("draft-1", now).WithCustomer(customer).AddItem(washFold, 1, "line-1")
		if err := d.ValidateForCheckout(); !errors.Is(err, ErrNoPaymentMethodChosen) {
			t.Fatalf("expected ErrNoPaymentMethodChosen, got %v", err)
		}
	})

	t.Run("cash must cover the total", func(t *testing.T) {
		d := NewOrderDraft("draft-1", now).WithCustomer(customer).AddItem(washFold, 1, "line-1")
		d, _ = d.WithPayment(PaymentMethodCash, "9999")
		if err := d.ValidateForCheckout(); !errors.Is(err, ErrInsufficientPayment) {
			t.Fatalf("expected ErrInsufficientPayment, got %v", err)
		}
		d, _ = d.WithPayment(PaymentMethodCash, "10000")
		if err := d.ValidateForCheckout(); err != nil {
			t.Fatalf("expected valid draft, got %v", err)
		}
	})

	t.Run("non-cash ignores tendered amount", func(t *testing.T) {
		d := NewOrderDraft("draft-1", now).WithCustomer(customer).AddItem(washFold, 1, "line-1")
		d, _ = d.WithPayment(PaymentMethodBankTransfer, "")
		if err := d.ValidateForCheckout(); err != nil {
			t.Fatalf("expected valid draft, got %v", err)
		}
	})
}

func TestOrderDraft_Reset(t *testing.T) {
	created := time.Now().Add(-time.Hour)
	now := time.Now()
	customer := Customer{ID: "cust-1", Name: "Ana", Phone: "5511999999", Address: "Rua 1"}

	d := NewOrderDraft("draft-1", created).
		WithCustomer(customer).
		AddItem(washFold, 2, "line-1").
		WithNotes("deliver friday")
	d, _ = d.WithDiscountPercent(5)
	d, _ = d.WithPayment(PaymentMethodCash, "25000")

	got := d.Reset(now)
	if got.ID != "draft-1" || !got.CreatedAt.Equal(created) {
		t.Fatalf("reset must keep session identity, got %+v", got)
	}
	if got.Customer != nil || len(got.Items) != 0 || got.DiscountPercent != 0 ||
		got.Notes != "" || got.PaymentMethod != "" || got.TenderedAmount != "" {
		t.Fatalf("reset left state behind: %+v", got)
	}
	if !got.UpdatedAt.Equal(now) {
		t.Fatalf("expected UpdatedAt %v, got %v", now, got.UpdatedAt)
	}
}

func TestOrderDraft_Submission(t *testing.T) {
	now := time.Now()
	customer := Customer{ID: "cust-1", Name: "Ana", Phone: "5511999999", Address: "Rua 1"}

	base := NewOrderDraft("draft-1", now).
		WithCustomer(customer).
		AddItem(washFold, 2, "line-1").
		WithNotes("no starch")
	base, _ = base.WithDiscountPercent(10)

	t.Run("cash is paid immediately", func(t *testing.T) {
		d, _ := base.WithPayment(PaymentMethodCash, "20000")
		sub := d.Submission()
		if sub.CustomerID != "cust-1" || len(sub.Items) != 1 {
			t.Fatalf("unexpected submission: %+v", sub)
		}
		if sub.TotalAmountMinor != 20000 || sub.DiscountPercent != 10 || sub.FinalAmountMinor != 18000 {
			t.Fatalf("unexpected amounts: %+v", sub)
		}
		if sub.Status != OrderStatusPending || sub.PaymentStatus != PaymentStatusPaid {
			t.Fatalf("unexpected statuses: %+v", sub)
		}
	})

	t.Run("non-cash starts pending", func(t *testing.T) {
		d, _ := base.WithPayment(PaymentMethodGateway, "")
		sub := d.Submission()
		if sub.PaymentStatus != PaymentStatusPending {
			t.Fatalf("expected pending payment, got %q", sub.PaymentStatus)
		}
	})
}
