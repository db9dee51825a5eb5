// Package handlers contains the HTTP handlers, one file per resource. Each
// handler binds its input, performs one repository call, and serializes the
// result; failures map to the 400/401/403/404/500 taxonomy.
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"sharesurplus-backend/internal/middleware"
	"sharesurplus-backend/internal/token"
)

// AuthHandler issues and clears session cookies. It performs no credential
// check: authenticating the posted identity is the upstream provider's job,
// this layer only binds the email to a signed, time-limited cookie.
type AuthHandler struct {
	tokens     *token.Service
	logger     *slog.Logger
	production bool
}

// NewAuthHandler creates an auth handler. production selects the cross-site
// cookie policy (Secure, SameSite=None); otherwise SameSite=Strict.
func NewAuthHandler(tokens *token.Service, logger *slog.Logger, production bool) *AuthHandler {
	return &AuthHandler{tokens: tokens, logger: logger, production: production}
}

type identityRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// IssueSession handles POST /jwt.
func (h *AuthHandler) IssueSession(c *gin.Context) {
	var identity identityRequest
	if err := c.ShouldBindJSON(&identity); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	tokenStr, err := h.tokens.Issue(identity.Email)
	if err != nil {
		h.logger.Error("failed to sign session token", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	h.setSessionCookie(c, tokenStr, int(token.TTL.Seconds()))
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ClearSession handles POST /logout. Clearing an absent cookie still succeeds.
func (h *AuthHandler) ClearSession(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	if h.production {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteStrictMode)
	}
	c.SetCookie(middleware.CookieName, value, maxAge, "/", "", h.production, true)
}
