package routes

import (
	"laundry_pos/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathServices  = "/services"
	PathCustomers = "/customers"
	PathDrafts    = "/drafts"
)

func addPosRoutes(rg *gin.RouterGroup, posHandler *handlers.PosHandler, catalogHandler *handlers.CatalogHandler, customerHandler *handlers.CustomerHandler) {
	rg.GET(PathServices, catalogHandler.ListServices)

	customers := rg.Group(PathCustomers)
	{
		customers.GET("", customerHandler.ListCustomers)
		customers.GET("/search", customerHandler.SearchCustomers)
		customers.POST("", customerHandler.CreateCustomer)
	}

	drafts := rg.Group(PathDrafts)
	{
		drafts.POST("", posHandler.CreateDraft)
		drafts.GET("/:draft_id", posHandler.GetDraft)
		drafts.POST("/:draft_id/items", posHandler.AddItem)
		drafts.PATCH("/:draft_id/items/:item_id", posHandler.UpdateItemQuantity)
		drafts.DELETE("/:draft_id/items/:item_id", posHandler.RemoveItem)
		drafts.PATCH("/:draft_id/discount", posHandler.SetDiscount)
		drafts.PATCH("/:draft_id/notes", posHandler.SetNotes)
		drafts.PATCH("/:draft_id/customer", posHandler.SelectCustomer)
		drafts.PATCH("/:draft_id/payment", posHandler.SetPayment)
		drafts.POST("/:draft_id/checkout", posHandler.Checkout)
		drafts.DELETE("/:draft_id/watch", posHandler.CancelWatch)
	}
}
