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

var errInvalidCustomerPayload = pkg.NewDomainErrorSimple("INVALID_CUSTOMER_INPUT", "Invalid customer payload", http.StatusBadRequest)

// CustomerHandler fronts the external customer directory for the POS screen.

type CustomerHandler struct {
	usecase usecase.ICustomerUseCase
}

func NewCustomerHandler(uc usecase.ICustomerUseCase) *CustomerHandler {
	return &CustomerHandler{usecase: uc}
}

func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	customers, err := h.usecase.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCustomers(customers))
}

// SearchCustomers matches on name or phone; the directory decides how.
func (h *CustomerHandler) SearchCustomers(c *gin.Context) {
	customers, err := h.usecase.Search(c.Request.Context(), c.Query("term"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCustomers(customers))
}

// CreateCustomer validates the form locally and answers with every invalid
// field before a single directory call is made.
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var payload request.CustomerCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCustomerPayload.HTTPStatus, errInvalidCustomerPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		var verr *entities.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusUnprocessableEntity, response.FromValidationError(verr))
			return
		}
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.FromCustomer(created))
}

func (h *CustomerHandler) fail(c *gin.Context, err error) {
	log.Printf("[customer][handler] request failed err=%v", err)
	appErr := mapCustomerError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapCustomerError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCustomerID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCustomerCreationFailed):
		return pkg.NewDomainErrorSimple("CUSTOMER_CREATE_FAILED", "Failed to create customer", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
