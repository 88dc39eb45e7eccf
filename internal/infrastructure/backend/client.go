package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"
	log "github.com/sirupsen/logrus"

	"laundry_pos/internal/domain/entities"
	"laundry_pos/internal/usecase/interfaces"
)

const (
	defaultBaseURL     = "http://localhost:8081/api"
	defaultHTTPTimeout = 10 * time.Second
	maxGetRetries      = 3
)

// ErrBackendStatus wraps any non-success reply from the laundry backend.
var ErrBackendStatus = errors.New("backend returned unexpected status")

// Client talks to the external laundry backend API. It implements every
// backend-facing port: catalog source, customer directory, order submission
// and payment status source.
//
// Idempotent GETs retry with exponential backoff; POSTs are sent once and the
// caller decides whether to repeat them.
type Client struct {
	baseURL string
	http    *http.Client
}

var (
	_ interfaces.ICatalogSource          = (*Client)(nil)
	_ interfaces.ICustomerDirectory      = (*Client)(nil)
	_ interfaces.IOrderSubmissionService = (*Client)(nil)
	_ interfaces.IPaymentStatusSource    = (*Client)(nil)
)

// NewClientFromEnv builds a client from POS_BACKEND_BASE_URL.
func NewClientFromEnv() *Client {
	base := os.Getenv("POS_BACKEND_BASE_URL")
	if base == "" {
		base = defaultBaseURL
	}
	log.Printf("[backend][client] configured base_url=%s", base)
	return NewClient(base)
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultHTTPTimeout},
	}
}

func (c *Client) ListServices(ctx context.Context) ([]entities.ServiceItem, error) {
	var services []entities.ServiceItem
	// The backend filters to active items for the POS.
	err := c.getJSON(ctx, "/services?active=true", &services)
	if err != nil {
		return nil, err
	}
	return services, nil
}

func (c *Client) GetServiceByID(ctx context.Context, id string) (entities.ServiceItem, error) {
	var svc entities.ServiceItem
	err := c.getJSON(ctx, "/services/"+url.PathEscape(id), &svc)
	if isNotFound(err) {
		return entities.ServiceItem{}, nil
	}
	if err != nil {
		return entities.ServiceItem{}, err
	}
	return svc, nil
}

func (c *Client) ListCustomers(ctx context.Context) ([]entities.Customer, error) {
	var customers []entities.Customer
	if err := c.getJSON(ctx, "/customers", &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

func (c *Client) SearchCustomers(ctx context.Context, term string) ([]entities.Customer, error) {
	var customers []entities.Customer
	if err := c.getJSON(ctx, "/customers/search?term="+url.QueryEscape(term), &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

func (c *Client) GetCustomerByID(ctx context.Context, id string) (entities.Customer, error) {
	var customer entities.Customer
	err := c.getJSON(ctx, "/customers/"+url.PathEscape(id), &customer)
	if isNotFound(err) {
		return entities.Customer{}, nil
	}
	if err != nil {
		return entities.Customer{}, err
	}
	return customer, nil
}

func (c *Client) CreateCustomer(ctx context.Context, in entities.NewCustomerInput) (entities.Customer, error) {
	payload := map[string]string{
		"name":    in.Name,
		"phone":   in.Phone,
		"address": in.Address,
	}
	if in.Email != "" {
		payload["email"] = in.Email
	}

	var created entities.Customer
	if err := c.postJSON(ctx, "/customers", payload, &created); err != nil {
		return entities.Customer{}, err
	}
	log.Printf("[backend][client] customer created customer_id=%s", created.ID)
	return created, nil
}

func (c *Client) SubmitOrder(ctx context.Context, sub entities.OrderSubmission) (entities.Order, error) {
	var order entities.Order
	if err := c.postJSON(ctx, "/orders", sub, &order); err != nil {
		return entities.Order{}, err
	}
	log.Printf("[backend][client] order submitted order_id=%s final=%d", order.ID, order.FinalAmountMinor)
	return order, nil
}

func (c *Client) GetPaymentStatus(ctx context.Context, orderID string) (entities.PaymentStatus, error) {
	var body struct {
		PaymentStatus entities.PaymentStatus `json:"paymentStatus"`
	}
	if err := c.getJSON(ctx, "/orders/"+url.PathEscape(orderID)+"/payment-status", &body); err != nil {
		return "", err
	}
	return body.PaymentStatus, nil
}

type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("%v: %d %s", ErrBackendStatus, e.code, e.body)
}

func (e *statusError) Unwrap() error {
	return ErrBackendStatus
}

func isNotFound(err error) bool {
	var se *statusError
	return errors.As(err, &se) && se.code == http.StatusNotFound
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	op := func() error {
		err := c.doJSON(ctx, http.MethodGet, path, nil, out)
		var se *statusError
		if errors.As(err, &se) && se.code < http.StatusInternalServerError {
			// Client-side statuses are not transient; don't retry them.
			return backoff.Permanent(err)
		}
		return err
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxGetRetries), ctx)
	return backoff.Retry(op, policy)
}

func (c *Client) postJSON(ctx context.Context, path string, in, out any) error {
	return c.doJSON(ctx, http.MethodPost, path, in, out)
}

func (c *Client) doJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &statusError{code: resp.StatusCode, body: string(bytes.TrimSpace(raw))}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
