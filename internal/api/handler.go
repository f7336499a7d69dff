package api

import (
	"time"

	"github.com/gin-gonic/gin"

	"hostel-manager-backend/internal/httperr"
	"hostel-manager-backend/internal/ident"
	"hostel-manager-backend/internal/store"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	store store.Store
}

// NewHandler creates a new API handler.
func NewHandler(s store.Store) *Handler {
	return &Handler{store: s}
}

// normalizeHostelID canonicalizes an externally supplied hostel id,
// writing a 400 response when the value is missing or malformed. The
// second return value reports whether the caller may proceed.
func normalizeHostelID(c *gin.Context, raw string) (string, bool) {
	if raw == "" {
		httperr.BadRequest(c, "Hostel ID is required")
		return "", false
	}
	id, err := ident.NormalizeHostelID(raw)
	if err != nil {
		httperr.BadRequest(c, "Invalid hostel ID")
		return "", false
	}
	return id, true
}

// parseDate parses a YYYY-MM-DD wire date.
func parseDate(s string) (time.Time, error) {
	return time.Parse(store.DateLayout, s)
}
