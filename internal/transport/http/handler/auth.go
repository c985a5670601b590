package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobconnect/internal/app"
	"jobconnect/internal/transport/http/middleware"
	"jobconnect/internal/transport/http/response"
)

type AuthHandler struct {
	authService *app.AuthService
}

// LoginRequest authenticates by username. An earlier revision of the API
// accepted email here; username is the authoritative identity now.
type LoginRequest struct {
	Username string `json:"username" binding:"required,max=64"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func NewAuthHandler(authService *app.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) IssueToken(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Detail(c, http.StatusUnprocessableEntity, "invalid request payload")
		return
	}

	accessToken, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrUserNotFound):
			response.Detail(c, http.StatusUnauthorized, "User does not exist")
		case errors.Is(err, app.ErrIncorrectPassword):
			response.Detail(c, http.StatusUnauthorized, "Incorrect password")
		case errors.Is(err, app.ErrInvalidInput):
			response.Detail(c, http.StatusUnprocessableEntity, "invalid request payload")
		default:
			response.Detail(c, http.StatusInternalServerError, "login failed")
		}
		return
	}

	c.JSON(http.StatusOK, TokenResponse{AccessToken: accessToken, TokenType: "bearer"})
}

func (h *AuthHandler) RefreshToken(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Detail(c, http.StatusUnauthorized, "Bearer token required")
		return
	}

	accessToken, err := h.authService.Refresh(user)
	if err != nil {
		response.Detail(c, http.StatusInternalServerError, "refresh token failed")
		return
	}

	c.JSON(http.StatusOK, TokenResponse{AccessToken: accessToken, TokenType: "bearer"})
}
