package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"

	"kosht/internal/models/request_models"
	"kosht/internal/services"
	"kosht/pkg/utils"
)

type OrdersController struct {
	orderService services.OrderServiceInterface
}

func NewOrdersController(orderService services.OrderServiceInterface) *OrdersController {
	return &OrdersController{orderService: orderService}
}

// Donate creates a step-1 order and returns the checkout payload the client
// redirects the donor with.
func (o *OrdersController) Donate(c *gin.Context) {
	var request request_models.DonationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Missing or wrong donation field: "+err.Error())
		return
	}

	checkout, err := o.orderService.CreateDonation(c.Request.Context(), c.Param("project_id"), request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, checkout, "Donation order created successfully")
}

// Donated records the donor details entered on the provider page (step-2).
func (o *OrdersController) Donated(c *gin.Context) {
	var request request_models.DonorDetailsRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Missing or wrong order field: "+err.Error())
		return
	}

	if err := o.orderService.DonorDetails(c.Request.Context(), request); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Order updated successfully")
}

func (o *OrdersController) ListSubscriptions(c *gin.Context) {
	stats, err := o.orderService.SubscriptionStats(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stats, "Fetched subscriptions successfully")
}
