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

// FoodHandler handles food-listing routes.
type FoodHandler struct {
	listings repository.ListingRepository
	logger   *slog.Logger
}

func NewFoodHandler(listings repository.ListingRepository, logger *slog.Logger) *FoodHandler {
	return &FoodHandler{listings: listings, logger: logger}
}

// Create handles POST /foods.
func (h *FoodHandler) Create(c *gin.Context) {
	var listing models.FoodListing
	if err := c.ShouldBindJSON(&listing); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	id, err := h.listings.Insert(c.Request.Context(), &listing)
	if err != nil {
		h.logger.Error("failed to insert listing", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	listing.ID = id
	c.JSON(http.StatusOK, listing)
}

// List handles GET /foods. The optional s query narrows results to listings
// whose foodname contains it, case-insensitively.
func (h *FoodHandler) List(c *gin.Context) {
	listings, err := h.listings.Search(c.Request.Context(), c.Query("s"))
	if err != nil {
		h.logger.Error("failed to list foods", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, listings)
}

// Mine handles GET /myfoods. The email query parameter must match the
// verified identity; a mismatch rejects the request outright, no query runs.
func (h *FoodHandler) Mine(c *gin.Context) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}
	if c.Query("email") != claims.Email {
		c.JSON(http.StatusForbidden, gin.H{"error": "access forbidden"})
		return
	}

	listings, err := h.listings.FindByDonor(c.Request.Context(), claims.Email)
	if err != nil {
		h.logger.Error("failed to list donor foods", "email", claims.Email, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, listings)
}

// Get handles GET /foods/:id.
func (h *FoodHandler) Get(c *gin.Context) {
	id, ok := h.objectID(c)
	if !ok {
		return
	}

	listing, err := h.listings.FindByID(c.Request.Context(), id)
	if errors.Is(err, repository.ErrListingNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "food not found"})
		return
	}
	if err != nil {
		h.logger.Error("failed to get listing", "id", id.Hex(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, listing)
}

// Update handles PATCH /foodupdate/:id, replacing the full mutable field set
// with upsert semantics.
func (h *FoodHandler) Update(c *gin.Context) {
	id, ok := h.objectID(c)
	if !ok {
		return
	}
	var listing models.FoodListing
	if err := c.ShouldBindJSON(&listing); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	if err := h.listings.Update(c.Request.Context(), id, &listing); err != nil {
		h.logger.Error("failed to update listing", "id", id.Hex(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	listing.ID = id
	c.JSON(http.StatusOK, listing)
}

type statusUpdate struct {
	FoodStatus string `json:"foodstatus" binding:"required"`
}

// SetStatus handles PATCH /foodstatus/:id, touching foodstatus only so a
// status transition never clobbers unrelated fields.
func (h *FoodHandler) SetStatus(c *gin.Context) {
	id, ok := h.objectID(c)
	if !ok {
		return
	}
	var body statusUpdate
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	err := h.listings.SetStatus(c.Request.Context(), id, body.FoodStatus)
	if errors.Is(err, repository.ErrListingNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "food not found"})
		return
	}
	if err != nil {
		h.logger.Error("failed to update food status", "id", id.Hex(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

type requestTrackUpdate struct {
	FoodRequestTrack string `json:"foodrequesttrack" binding:"required"`
}

// SetRequestTrack handles PATCH /foodrequesttrack/:id.
func (h *FoodHandler) SetRequestTrack(c *gin.Context) {
	id, ok := h.objectID(c)
	if !ok {
		return
	}
	var body requestTrackUpdate
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	err := h.listings.SetRequestTrack(c.Request.Context(), id, body.FoodRequestTrack)
	if errors.Is(err, repository.ErrListingNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "food not found"})
		return
	}
	if err != nil {
		h.logger.Error("failed to update request track", "id", id.Hex(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Delete handles DELETE /foods/:id. No existence check: deleting an absent
// listing reports a zero count.
func (h *FoodHandler) Delete(c *gin.Context) {
	id, ok := h.objectID(c)
	if !ok {
		return
	}

	count, err := h.listings.Delete(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("failed to delete listing", "id", id.Hex(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": count})
}

func (h *FoodHandler) objectID(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return primitive.NilObjectID, false
	}
	return id, true
}
