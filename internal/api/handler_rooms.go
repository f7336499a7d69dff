package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hostel-manager-backend/internal/httperr"
)

// ListRooms handles GET /api/rooms?hostelId=. Every room of the hostel is
// returned with its current guests; vacant rooms appear with an empty
// guest list.
func (h *Handler) ListRooms(c *gin.Context) {
	hostelID, ok := normalizeHostelID(c, c.Query("hostelId"))
	if !ok {
		return
	}

	rooms, err := h.store.ListRoomsWithGuests(c.Request.Context(), hostelID)
	if err != nil {
		httperr.Internal(c, "Failed to fetch rooms", err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}
