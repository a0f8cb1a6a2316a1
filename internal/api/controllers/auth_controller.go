package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"

	"kosht/internal/models/request_models"
	"kosht/internal/services"
	"kosht/pkg/utils"
)

type AuthController struct {
	authService services.AuthServiceInterface
}

func NewAuthController(authService services.AuthServiceInterface) *AuthController {
	return &AuthController{authService: authService}
}

func (a *AuthController) Login(c *gin.Context) {
	var request request_models.LoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	token, err := a.authService.Login(c.Request.Context(), request.Username, request.Password)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"token": token}, "Logged in successfully")
}
