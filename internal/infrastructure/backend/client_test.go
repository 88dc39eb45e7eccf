package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"laundry_pos/internal/domain/entities"
)

func TestClient_ListServices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/services" || r.URL.Query().Get("active") != "true" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL)
		}
		_ = json.NewEncoder(w).Encode([]entities.ServiceItem{
			{ID: "svc-1", Name: "Wash & Fold", Category: "Washing", PriceMinor: 10000},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	services, err := c.ListServices(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(services) != 1 || services[0].PriceMinor != 10000 {
		t.Fatalf("unexpected services: %+v", services)
	}
}

func TestClient_GetServiceByID(t *testing.T) {
	t.Run("404 becomes a zero value", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}))
		defer srv.Close()

		c := NewClient(srv.URL)
		svc, err := c.GetServiceByID(context.Background(), "missing")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if svc.ID != "" {
			t.Fatalf("expected zero service, got %+v", svc)
		}
	})

	t.Run("found", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/services/svc-1" {
				t.Fatalf("unexpected path: %s", r.URL.Path)
			}
			_ = json.NewEncoder(w).Encode(entities.ServiceItem{ID: "svc-1", Name: "Wash & Fold", PriceMinor: 10000})
		}))
		defer srv.Close()

		c := NewClient(srv.URL)
		svc, err := c.GetServiceByID(context.Background(), "svc-1")
		if err != nil || svc.ID != "svc-1" {
			t.Fatalf("unexpected result: %+v %v", svc, err)
		}
	})
}

func TestClient_GetRetries(t *testing.T) {
	t.Run("5xx is retried", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) < 3 {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			_ = json.NewEncoder(w).Encode([]entities.Customer{{ID: "c-1"}})
		}))
		defer srv.Close()

		c := NewClient(srv.URL)
		customers, err := c.ListCustomers(context.Background())
		if err != nil {
			t.Fatalf("unexpected error after retries: %v", err)
		}
		if calls.Load() != 3 {
			t.Fatalf("expected 3 attempts, got %d", calls.Load())
		}
		if len(customers) != 1 {
			t.Fatalf("unexpected customers: %+v", customers)
		}
	})

	t.Run("4xx is permanent", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer srv.Close()

		c := NewClient(srv.URL)
		_, err := c.ListCustomers(context.Background())
		if !errors.Is(err, ErrBackendStatus) {
			t.Fatalf("expected ErrBackendStatus, got %v", err)
		}
		if calls.Load() != 1 {
			t.Fatalf("expected a single attempt, got %d", calls.Load())
		}
	})
}

func TestClient_CreateCustomer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/customers" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var payload map[string]string
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}
		if payload["name"] != "Maria Souza" || payload["phone"] != "11987654321" {
			t.Fatalf("unexpected payload: %v", payload)
		}
		if _, ok := payload["email"]; ok {
			t.Fatalf("empty email must be omitted, got %v", payload)
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(entities.Customer{ID: "c-9", Name: "Maria Souza"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	created, err := c.CreateCustomer(context.Background(), entities.NewCustomerInput{
		Name: "Maria Souza", Phone: "11987654321", Address: "Av. Paulista 1000",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != "c-9" {
		t.Fatalf("unexpected customer: %+v", created)
	}
}

func TestClient_SubmitOrder(t *testing.T) {
	t.Run("sends the submission payload", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost || r.URL.Path != "/orders" {
				t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
			}
			var sub map[string]any
			if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
				t.Fatalf("invalid payload: %v", err)
			}
			for _, key := range []string{"customerId", "items", "totalAmount", "discount", "finalAmount", "paymentMethod", "status", "paymentStatus"} {
				if _, ok := sub[key]; !ok {
					t.Fatalf("missing %q in payload: %v", key, sub)
				}
			}
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(entities.Order{ID: "order-1", FinalAmountMinor: 18000})
		}))
		defer srv.Close()

		c := NewClient(srv.URL)
		order, err := c.SubmitOrder(context.Background(), entities.OrderSubmission{
			CustomerID:       "cust-1",
			Items:            []entities.SubmissionItem{{ServiceID: "svc-1", Quantity: 2, UnitPriceMinor: 10000}},
			TotalAmountMinor: 20000,
			DiscountPercent:  10,
			FinalAmountMinor: 18000,
			PaymentMethod:    entities.PaymentMethodCash,
			Status:           entities.OrderStatusPending,
			PaymentStatus:    entities.PaymentStatusPaid,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.ID != "order-1" {
			t.Fatalf("unexpected order: %+v", order)
		}
	})

	t.Run("posts are not retried", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		c := NewClient(srv.URL)
		_, err := c.SubmitOrder(context.Background(), entities.OrderSubmission{})
		if !errors.Is(err, ErrBackendStatus) {
			t.Fatalf("expected ErrBackendStatus, got %v", err)
		}
		if calls.Load() != 1 {
			t.Fatalf("expected a single attempt, got %d", calls.Load())
		}
	})
}

func TestClient_GetPaymentStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/orders/order-1/payment-status" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"paymentStatus":"paid"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	status, err := c.GetPaymentStatus(context.Background(), "order-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != entities.PaymentStatusPaid {
		t.Fatalf("expected paid, got %q", status)
	}
}
