package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	request "laundry_pos/internal/adapter/http/dto/request"
	response "laundry_pos/internal/adapter/http/dto/response"
	"laundry_pos/internal/domain/entities"
	"laundry_pos/internal/usecase"
	"laundry_pos/pkg"
)

var errInvalidDraftPayload = pkg.NewDomainErrorSimple("INVALID_DRAFT_INPUT", "Invalid draft payload", http.StatusBadRequest)

// PosHandler exposes the order builder: draft lifecycle, cart mutations and
// checkout. Every mutation answers with the fresh draft snapshot.

type PosHandler struct {
	drafts   usecase.IDraftUseCase
	checkout usecase.ICheckoutUseCase
}

func NewPosHandler(drafts usecase.IDraftUseCase, checkout usecase.ICheckoutUseCase) *PosHandler {
	return &PosHandler{drafts: drafts, checkout: checkout}
}

// CreateDraft opens a new empty POS session.
func (h *PosHandler) CreateDraft(c *gin.Context) {
	d, err := h.drafts.StartDraft(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromOrderDraft(d))
}

func (h *PosHandler) GetDraft(c *gin.Context) {
	d, err := h.drafts.GetDraft(c.Request.Context(), c.Param("draft_id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrderDraft(d))
}

// AddItem puts a catalog service into the cart, merging with an existing row
// for the same service.
func (h *PosHandler) AddItem(c *gin.Context) {
	var payload request.AddItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	}

	d, err := h.drafts.AddItem(c.Request.Context(), c.Param("draft_id"), payload.ServiceID, payload.Quantity)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrderDraft(d))
}

// UpdateItemQuantity sets a cart row's quantity; zero or less removes it.
func (h *PosHandler) UpdateItemQuantity(c *gin.Context) {
	var payload request.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Quantity == nil {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	}

	d, err := h.drafts.UpdateQuantity(c.Request.Context(), c.Param("draft_id"), c.Param("item_id"), *payload.Quantity)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrderDraft(d))
}

func (h *PosHandler) RemoveItem(c *gin.Context) {
	d, err := h.drafts.RemoveItem(c.Request.Context(), c.Param("draft_id"), c.Param("item_id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrderDraft(d))
}

func (h *PosHandler) SetDiscount(c *gin.Context) {
	var payload request.DiscountRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Percent == nil {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	}

	d, err := h.drafts.SetDiscount(c.Request.Context(), c.Param("draft_id"), *payload.Percent)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrderDraft(d))
}

func (h *PosHandler) SetNotes(c *gin.Context) {
	var payload request.NotesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	}

	d, err := h.drafts.SetNotes(c.Request.Context(), c.Param("draft_id"), payload.Notes)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrderDraft(d))
}

func (h *PosHandler) SelectCustomer(c *gin.Context) {
	var payload request.SelectCustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	}

	d, err := h.drafts.SelectCustomer(c.Request.Context(), c.Param("draft_id"), payload.CustomerID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrderDraft(d))
}

func (h *PosHandler) SetPayment(c *gin.Context) {
	var payload request.PaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	}

	d, err := h.drafts.SetPayment(c.Request.Context(), c.Param("draft_id"), payload.Method, payload.TenderedAmount)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrderDraft(d))
}

// Checkout validates and submits the draft to the backend.
func (h *PosHandler) Checkout(c *gin.Context) {
	draftID := c.Param("draft_id")
	log.Printf("[pos][handler] checkout start draft_id=%s", draftID)

	result, err := h.checkout.Checkout(c.Request.Context(), draftID)
	if err != nil {
		log.Printf("[pos][handler] checkout failed draft_id=%s err=%v", draftID, err)
		h.fail(c, err)
		return
	}
	log.Printf("[pos][handler] checkout success draft_id=%s order_id=%s", draftID, result.Order.ID)

	c.JSON(http.StatusCreated, response.FromCheckoutResult(result))
}

// CancelWatch stops the payment watch for a pending non-cash order.
func (h *PosHandler) CancelWatch(c *gin.Context) {
	if err := h.checkout.CancelWatch(c.Request.Context(), c.Param("draft_id")); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PosHandler) fail(c *gin.Context, err error) {
	appErr := mapDraftError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapDraftError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDraftID),
		errors.Is(err, usecase.ErrInvalidServiceID),
		errors.Is(err, usecase.ErrInvalidLineItemID),
		errors.Is(err, usecase.ErrInvalidCustomerID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidDiscount):
		return pkg.NewDomainErrorSimple("INVALID_DISCOUNT", "Discount must be between 0 and 100", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidPaymentMethod):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_METHOD", "Unknown payment method", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDraftNotFound):
		return pkg.NewDomainErrorSimple("DRAFT_NOT_FOUND", "Draft not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrNoCustomerSelected):
		return pkg.NewDomainErrorSimple("NO_CUSTOMER_SELECTED", "Select a customer first", http.StatusUnprocessableEntity)
	case errors.Is(err, entities.ErrEmptyCart):
		return pkg.NewDomainErrorSimple("EMPTY_CART", "Cart is empty", http.StatusUnprocessableEntity)
	case errors.Is(err, entities.ErrNoPaymentMethodChosen):
		return pkg.NewDomainErrorSimple("NO_PAYMENT_METHOD", "Choose a payment method", http.StatusUnprocessableEntity)
	case errors.Is(err, entities.ErrInsufficientPayment):
		return pkg.NewDomainErrorSimple("INSUFFICIENT_PAYMENT", "Tendered amount is less than the total", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrNoWatchedOrder):
		return pkg.NewDomainErrorSimple("WATCH_NOT_FOUND", "No watched order for this draft", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderSubmissionFailed):
		return pkg.NewDomainErrorSimple("ORDER_SUBMISSION_FAILED", "Failed to submit order to the backend", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrGatewayCheckoutFailed):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_ERROR", "Failed to create gateway checkout", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment gateway not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
