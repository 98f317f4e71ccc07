package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MAHAK0804/QuoteAppAdmin/internal/adapters/http/dto"
	"github.com/MAHAK0804/QuoteAppAdmin/internal/app"
)

// AuthHandler handles the admin login session endpoints.
type AuthHandler struct {
	service *app.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(service *app.AuthService) *AuthHandler {
	return &AuthHandler{
		service: service,
	}
}

// LoginRequest carries admin credentials. Password length is checked
// locally so obviously-bad input never leaves the console.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=4"`
}

// SessionResponse reports the current session state.
type SessionResponse struct {
	Authenticated bool `json:"authenticated"`
}

// Login handles POST /api/v1/auth/login
// Exchanges credentials for a session token stored server-side.
//
// @Summary Admin login
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} SessionResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleBindingError(c, err)
		return
	}

	if err := h.service.Login(c.Request.Context(), req.Email, req.Password); err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, SessionResponse{Authenticated: true})
}

// Logout handles POST /api/v1/auth/logout
// Clears the stored session token. Safe to call when not logged in.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.service.Logout(c.Request.Context()); err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, SessionResponse{Authenticated: false})
}

// Session handles GET /api/v1/auth/session
// Reports whether a session token is present.
func (h *AuthHandler) Session(c *gin.Context) {
	c.JSON(http.StatusOK, SessionResponse{Authenticated: h.service.Authenticated()})
}

// RegisterAuthRoutes registers auth routes on the given router group.
// These stay outside the session guard.
func (h *AuthHandler) RegisterAuthRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	auth.POST("/login", h.Login)
	auth.POST("/logout", h.Logout)
	auth.GET("/session", h.Session)
}
