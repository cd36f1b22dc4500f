package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/primex-howard/tclass-gateway/internal/auth"
)

// AuthHandler owns the session lifecycle endpoints. Login itself happens
// upstream; the gateway only tears the cookie pair down.
type AuthHandler struct{}

// NewAuthHandler constructs handler.
func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

// Logout godoc
// @Summary Clear the session cookies and return to the login page
// @Tags Auth
// @Success 302
// @Router /logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	auth.ClearCookies(c.Writer)
	c.Redirect(http.StatusFound, auth.LoginPath)
}
