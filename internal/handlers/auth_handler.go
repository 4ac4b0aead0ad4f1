package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "stridelog/internal/errors"
	"stridelog/internal/middleware"
	"stridelog/internal/services"
)

// AuthHandler handles authentication-related requests
type AuthHandler struct {
	authService services.AuthServicer
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService services.AuthServicer) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the authentication response with token
type LoginResponse struct {
	Token   string `json:"token"`
	Created bool   `json:"created"`
}

// Login authenticates the journal owner
// @Summary     Log in
// @Description Authenticate with the journal password. The first login stores the password and creates the account.
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body LoginRequest true "Journal password"
// @Success     200 {object} LoginResponse "Authenticated; created is true when this login set up the account"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Incorrect password"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	created, err := h.authService.Login(req.Password)
	if err != nil {
		respondWithError(c, err)
		return
	}

	token, err := middleware.GenerateToken()
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	c.JSON(http.StatusOK, LoginResponse{Token: token, Created: created})
}
