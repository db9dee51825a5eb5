package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"sharesurplus-backend/internal/middleware"
	"sharesurplus-backend/internal/models"
	"sharesurplus-backend/internal/repository"
)

// RequestHandler handles food-request routes.
//
// Route params carry two different identities: GET /rqFoods/:id and
// PATCH /reqfoodstatus/:id take the referenced listing's id (matching the
// request's foodid field), DELETE /rqFoods/:id takes the request's own _id.
// The frontend depends on both conventions, so both are kept.
type RequestHandler struct {
	requests repository.RequestRepository
	logger   *slog.Logger
}

func NewRequestHandler(requests repository.RequestRepository, logger *slog.Logger) *RequestHandler {
	return &RequestHandler{requests: requests, logger: logger}
}

// Create handles POST /rqFoods.
func (h *RequestHandler) Create(c *gin.Context) {
	var request models.FoodRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	id, err := h.requests.Insert(c.Request.Context(), &request)
	if err != nil {
		h.logger.Error("failed to insert request", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	request.ID = id
	c.JSON(http.StatusOK, request)
}

// GetByListing handles GET /rqFoods/:id, returning the first request whose
// foodid field names the given listing.
func (h *RequestHandler) GetByListing(c *gin.Context) {
	foodID := c.Param("id")

	request, err := h.requests.FindByListing(c.Request.Context(), foodID)
	if errors.Is(err, repository.ErrRequestNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "request not found"})
		return
	}
	if err != nil {
		h.logger.Error("failed to get request", "foodid", foodID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, request)
}

// Mine handles GET /rqFoods. The email query parameter must match the
// verified identity; a mismatch rejects the request outright, no query runs.
func (h *RequestHandler) Mine(c *gin.Context) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}
	if c.Query("email") != claims.Email {
		c.JSON(http.StatusForbidden, gin.H{"error": "access forbidden"})
		return
	}

	requests, err := h.requests.FindByRequester(c.Request.Context(), claims.Email)
	if err != nil {
		h.logger.Error("failed to list requests", "email", claims.Email, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, requests)
}

// SetStatus handles PATCH /reqfoodstatus/:id, matching on the foodid field.
func (h *RequestHandler) SetStatus(c *gin.Context) {
	foodID := c.Param("id")
	var body statusUpdate
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	err := h.requests.SetStatusByListing(c.Request.Context(), foodID, body.FoodStatus)
	if errors.Is(err, repository.ErrRequestNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "request not found"})
		return
	}
	if err != nil {
		h.logger.Error("failed to update request status", "foodid", foodID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Delete handles DELETE /rqFoods/:id by the request's own id.
func (h *RequestHandler) Delete(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	count, err := h.requests.Delete(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("failed to delete request", "id", id.Hex(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": count})
}
