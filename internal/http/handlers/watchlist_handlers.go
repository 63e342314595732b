package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jallichakravarthi/mern-watchlist/domain"
	"github.com/jallichakravarthi/mern-watchlist/internal/http/middleware"
)

// WatchlistHandlers handles watchlist HTTP requests
type WatchlistHandlers struct {
	watchlistSvc domain.WatchlistService
}

// NewWatchlistHandlers creates new watchlist handlers
func NewWatchlistHandlers(watchlistSvc domain.WatchlistService) *WatchlistHandlers {
	return &WatchlistHandlers{watchlistSvc: watchlistSvc}
}

// AddItemRequest represents an add-to-watchlist request
type AddItemRequest struct {
	Title  string `json:"title" binding:"required"`
	Genre  string `json:"genre" binding:"required"`
	Status string `json:"status,omitempty"`
}

// UpdateItemRequest represents a watchlist update request
type UpdateItemRequest struct {
	Title  string `json:"title,omitempty"`
	Genre  string `json:"genre,omitempty"`
	Status string `json:"status,omitempty"`
}

func itemJSON(item *domain.WatchlistItem) gin.H {
	return gin.H{
		"id":     item.ID,
		"userId": item.UserID,
		"title":  item.Title,
		"genre":  item.Genre,
		"status": item.Status,
	}
}

// Add handles adding an item to the caller's watchlist
func (h *WatchlistHandlers) Add(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and genre are required"})
		return
	}

	item, err := h.watchlistSvc.Add(c.Request.Context(), identity.ID, req.Title, req.Genre, req.Status)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status value"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Movie added to watchlist!", "movie": itemJSON(item)})
}

// List handles retrieving the caller's watchlist
func (h *WatchlistHandlers) List(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	items, err := h.watchlistSvc.List(c.Request.Context(), identity.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch watchlist"})
		return
	}

	list := make([]gin.H, 0, len(items))
	for i := range items {
		list = append(list, itemJSON(&items[i]))
	}

	message := "Watchlist retrieved"
	if len(list) == 0 {
		message = "No movies in your watchlist yet."
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": message, "watchlist": list})
}

// Update handles updating a watchlist item
func (h *WatchlistHandlers) Update(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	itemID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid movie ID"})
		return
	}

	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.watchlistSvc.Update(c.Request.Context(), identity.ID, uint(itemID), req.Title, req.Genre, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status value"})
		case errors.Is(err, domain.ErrItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Movie not found or unauthorized"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Movie updated!", "updatedMovie": itemJSON(item)})
}

// Remove handles deleting a watchlist item
func (h *WatchlistHandlers) Remove(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	itemID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid movie ID"})
		return
	}

	item, err := h.watchlistSvc.Remove(c.Request.Context(), identity.ID, uint(itemID))
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Movie not found or unauthorized"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Movie removed from watchlist!", "deletedMovie": itemJSON(item)})
}
