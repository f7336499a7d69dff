package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hostel-manager-backend/internal/httperr"
	"hostel-manager-backend/internal/store"
)

// hostelResponse represents the API response for a single hostel.
type hostelResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
}

// ListHostels handles GET /api/hostels.
func (h *Handler) ListHostels(c *gin.Context) {
	hostels, err := h.store.ListHostels(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "Failed to fetch hostels", err)
		return
	}

	responses := make([]hostelResponse, 0, len(hostels))
	for _, hostel := range hostels {
		responses = append(responses, hostelResponse{
			ID:        hostel.ID,
			Name:      hostel.Name,
			CreatedAt: hostel.CreatedAt.Format(store.DateLayout),
		})
	}
	c.JSON(http.StatusOK, responses)
}

type createHostelRequest struct {
	Name string `json:"name"`
}

// CreateHostel handles POST /api/hostels.
func (h *Handler) CreateHostel(c *gin.Context) {
	var req createHostelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Hostel name is required")
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		httperr.BadRequest(c, "Hostel name is required")
		return
	}

	hostel, err := h.store.CreateHostel(c.Request.Context(), name)
	if err != nil {
		httperr.Internal(c, "Failed to create hostel", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"hostel": gin.H{
			"id":   hostel.ID,
			"name": hostel.Name,
		},
	})
}

// DeleteHostel handles DELETE /api/hostels?id=. Deleting a hostel removes
// all of its rooms, customers and dues.
func (h *Handler) DeleteHostel(c *gin.Context) {
	id, ok := normalizeHostelID(c, c.Query("id"))
	if !ok {
		return
	}

	name, err := h.store.DeleteHostel(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httperr.NotFound(c, "Hostel not found")
			return
		}
		httperr.Internal(c, "Failed to delete hostel", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Hostel %q deleted successfully", name),
	})
}

// GetHostel handles GET /api/hostels/:hostelId.
func (h *Handler) GetHostel(c *gin.Context) {
	id, ok := normalizeHostelID(c, c.Param("hostelId"))
	if !ok {
		return
	}

	hostel, err := h.store.GetHostel(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httperr.NotFound(c, "Hostel not found")
			return
		}
		httperr.Internal(c, "Failed to fetch hostel", err)
		return
	}

	c.JSON(http.StatusOK, hostelResponse{
		ID:        hostel.ID,
		Name:      hostel.Name,
		CreatedAt: hostel.CreatedAt.Format(store.DateLayout),
	})
}
