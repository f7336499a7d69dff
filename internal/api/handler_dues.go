package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hostel-manager-backend/internal/httperr"
	"hostel-manager-backend/internal/store"
)

// ListDues handles GET /api/dues?hostelId=.
func (h *Handler) ListDues(c *gin.Context) {
	hostelID, ok := normalizeHostelID(c, c.Query("hostelId"))
	if !ok {
		return
	}

	dues, err := h.store.ListDues(c.Request.Context(), hostelID)
	if err != nil {
		httperr.Internal(c, "Failed to fetch dues", err)
		return
	}
	c.JSON(http.StatusOK, dues)
}

type createDueRequest struct {
	CustomerID string  `json:"customerId"`
	Amount     float64 `json:"amount"`
	DueDate    string  `json:"dueDate"`
}

// CreateDue handles POST /api/dues. A missing amount takes the configured
// default due amount.
func (h *Handler) CreateDue(c *gin.Context) {
	var req createDueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid request body")
		return
	}

	if req.CustomerID == "" || req.DueDate == "" {
		httperr.BadRequest(c, "Customer ID and due date are required")
		return
	}
	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		httperr.BadRequest(c, "Invalid due date. Use YYYY-MM-DD")
		return
	}

	due, err := h.store.CreateDue(c.Request.Context(), req.CustomerID, req.Amount, dueDate)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httperr.NotFound(c, "Customer not found")
			return
		}
		httperr.Internal(c, "Failed to create due", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"due": gin.H{
			"id":         due.ID,
			"customerId": due.CustomerID,
			"amount":     due.Amount,
			"dueDate":    due.DueDate.Format(store.DateLayout),
			"paid":       due.Paid,
		},
	})
}

type updateDueRequest struct {
	DueID   string `json:"dueId"`
	Paid    *bool  `json:"paid"`
	DueDate string `json:"dueDate"`
}

// UpdateDue handles PUT /api/dues. At least one of paid/dueDate must be
// supplied.
func (h *Handler) UpdateDue(c *gin.Context) {
	var req updateDueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid request body")
		return
	}

	if req.DueID == "" {
		httperr.BadRequest(c, "Due ID is required")
		return
	}

	var dueDate *time.Time
	if req.DueDate != "" {
		parsed, err := parseDate(req.DueDate)
		if err != nil {
			httperr.BadRequest(c, "Invalid due date. Use YYYY-MM-DD")
			return
		}
		dueDate = &parsed
	}

	due, err := h.store.UpdateDue(c.Request.Context(), req.DueID, req.Paid, dueDate)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNoFields):
			httperr.BadRequest(c, "No fields to update")
		case errors.Is(err, store.ErrNotFound):
			httperr.NotFound(c, "Due record not found")
		default:
			httperr.Internal(c, "Failed to update due", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"due": gin.H{
			"id":      due.ID,
			"paid":    due.Paid,
			"dueDate": due.DueDate.Format(store.DateLayout),
		},
	})
}
