package controllers

import (
	"context"
	"errors"
	"github.com/gin-gonic/gin"
	"net/http"

	"kosht/internal/models/request_models"
	"kosht/internal/services"
	"kosht/pkg/utils"
)

type TransactionsController struct {
	transactionService services.TransactionServiceInterface
	paymentService     services.PaymentServiceInterface
}

func NewTransactionsController(
	transactionService services.TransactionServiceInterface,
	paymentService services.PaymentServiceInterface,
) *TransactionsController {
	return &TransactionsController{
		transactionService: transactionService,
		paymentService:     paymentService,
	}
}

func (t *TransactionsController) Create(c *gin.Context) {
	var request request_models.CreateTransactionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Missing or wrong transaction field: "+err.Error())
		return
	}

	transactionID, err := t.transactionService.CreateManual(c.Request.Context(), request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"transaction_id": transactionID}, "Transaction created successfully")
}

func (t *TransactionsController) Revoke(c *gin.Context) {
	t.toggle(c, t.transactionService.Revoke, "Transaction revoked successfully")
}

func (t *TransactionsController) Reaffirm(c *gin.Context) {
	t.toggle(c, t.transactionService.Reaffirm, "Transaction reaffirmed successfully")
}

func (t *TransactionsController) toggle(c *gin.Context, op func(ctx context.Context, id string) (bool, error), message string) {
	var request request_models.ToggleTransactionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Missing or wrong transaction ID.")
		return
	}

	changed, err := op(c.Request.Context(), request.ID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"changed": changed}, message)
}

func (t *TransactionsController) List(c *gin.Context) {
	transactions, err := t.transactionService.List(c.Request.Context(), c.Query("project_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"transactions": transactions}, "Fetched transactions successfully")
}

// Confirmation is the provider webhook. Every handled branch acknowledges
// with 200 so the provider stops redelivering; 400 is reserved for requests
// missing the data/signature fields entirely, and 500 for a storage failure
// while recording the transaction.
func (t *TransactionsController) Confirmation(c *gin.Context) {
	var request request_models.CallbackRequest
	if err := c.ShouldBind(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Missing data or signature.")
		return
	}

	result, err := t.paymentService.HandleCallback(c.Request.Context(), request.Data, request.Signature)
	if err != nil {
		if errors.Is(err, utils.ErrDatabaseError) {
			utils.RespondError(c, http.StatusInternalServerError, "Try again later.")
			return
		}
		utils.HandleServiceError(c, err)
		return
	}

	if !result.Ok {
		c.JSON(http.StatusOK, utils.APIResponse{
			Success: false,
			Code:    http.StatusOK,
			Error:   result.Message,
			TraceID: c.GetString("trace_id"),
		})
		return
	}

	utils.RespondSuccess(c, gin.H{"transaction_id": result.TransactionID}, result.Message)
}
