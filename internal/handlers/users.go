package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"sharesurplus-backend/internal/models"
	"sharesurplus-backend/internal/repository"
)

// UserHandler handles user routes.
type UserHandler struct {
	users  repository.UserRepository
	logger *slog.Logger
}

func NewUserHandler(users repository.UserRepository, logger *slog.Logger) *UserHandler {
	return &UserHandler{users: users, logger: logger}
}

// Register handles POST /users. A password, when supplied, is stored as a
// bcrypt hash; accounts from the federated login flow simply omit it.
func (h *UserHandler) Register(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	if user.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
		if err != nil {
			h.logger.Error("failed to hash password", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		user.Password = string(hashed)
	}

	id, err := h.users.Insert(c.Request.Context(), &user)
	if err != nil {
		h.logger.Error("failed to insert user", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	user.ID = id
	user.Password = "" // don't send back
	c.JSON(http.StatusOK, user)
}

// List handles GET /users.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.FindAll(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list users", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	for i := range users {
		users[i].Password = ""
	}
	c.JSON(http.StatusOK, users)
}
