package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	response "laundry_pos/internal/adapter/http/dto/response"
	"laundry_pos/internal/usecase"
	"laundry_pos/pkg"
)

// CatalogHandler serves the service catalog, filtered and grouped by
// category the way the POS screen lays it out.

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// ListServices returns catalog groups matching the optional ?term= filter.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	term := c.Query("term")

	groups, err := h.usecase.ListGrouped(c.Request.Context(), term)
	if err != nil {
		log.Printf("[catalog][handler] list failed term=%q err=%v", term, err)
		appErr := pkg.NewDomainError("CATALOG_UNAVAILABLE", "Failed to load services", err, http.StatusBadGateway)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceGroups(groups))
}
