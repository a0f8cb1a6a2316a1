package utils

import (
	"errors"
	"github.com/gin-gonic/gin"
	"log"
	"net/http"
)

type APIResponse struct {
	Success bool        `json:"success"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Success: false,
		Code:    code,
		Error:   message,
		TraceID: c.GetString("trace_id"),
	})
}

func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrProjectNotFound):
		RespondError(c, http.StatusBadRequest, "Project with given ID can't be found.")
	case errors.Is(err, ErrProjectArchived):
		RespondError(c, http.StatusBadRequest, "The project no longer accepts donations.")
	case errors.Is(err, ErrOrderNotFound):
		RespondError(c, http.StatusNotFound, "Order with given ID can't be found.")
	case errors.Is(err, ErrTransactionNotFound):
		RespondError(c, http.StatusNotFound, "Transaction with given ID can't be found.")
	case errors.Is(err, ErrDuplicateTransaction):
		RespondError(c, http.StatusBadRequest, "Transaction with this payment ID already exists.")
	case errors.Is(err, ErrWrongCredentials):
		RespondError(c, http.StatusUnauthorized, "Wrong credentials.")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Operation can't be performed. Please, try again later.")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Operation can't be performed. Please, try again later.")
	}
}
