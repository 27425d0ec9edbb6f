package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aydink/acadmin/internal/app/models/dto"
	"github.com/aydink/acadmin/internal/app/services"
	"github.com/aydink/acadmin/internal/middleware"
)

// AuthController handles authentication endpoints
type AuthController struct {
	authService services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Login authenticates a user for one of the four roles
// @Summary Log in
// @Description Checks credentials for the requested role and returns a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.Response{data=dto.LoginResponse} "Login successful"
// @Failure 400 {object} dto.Response "Missing field or invalid role"
// @Failure 401 {object} dto.Response "Credentials or role mismatch"
// @Failure 500 {object} dto.Response "Internal server error"
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !middleware.BindJSON(c, &req) {
		return
	}

	result, err := ctrl.authService.Login(c.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Response{
		Code: http.StatusOK,
		Msg:  "login successful",
		Data: result,
	})
}
