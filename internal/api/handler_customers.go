package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hostel-manager-backend/internal/httperr"
	"hostel-manager-backend/internal/store"
)

// ListCustomers handles GET /api/customers?hostelId=&search=. An empty
// search returns every customer of the hostel.
func (h *Handler) ListCustomers(c *gin.Context) {
	hostelID, ok := normalizeHostelID(c, c.Query("hostelId"))
	if !ok {
		return
	}

	rows, err := h.store.ListCustomers(c.Request.Context(), hostelID, c.Query("search"))
	if err != nil {
		httperr.Internal(c, "Failed to fetch customers", err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

type createCustomerRequest struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	FatherPhone  string `json:"fatherPhone"`
	College      string `json:"college"`
	Course       string `json:"course"`
	CheckinDate  string `json:"checkinDate"`
	CheckoutDate string `json:"checkoutDate"`
	DueDate      string `json:"dueDate"`
	RoomNo       string `json:"roomNo"`
	HostelID     string `json:"hostelId"`
}

// CreateCustomer handles POST /api/customers. The room is resolved or
// created from roomNo, and an initial due is recorded when dueDate is
// supplied; the whole write is one transaction.
func (h *Handler) CreateCustomer(c *gin.Context) {
	var req createCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid request body")
		return
	}

	hostelID, ok := normalizeHostelID(c, req.HostelID)
	if !ok {
		return
	}

	params, ok := customerParams(c, req.Name, req.Phone, req.FatherPhone,
		req.College, req.Course, req.CheckinDate, req.RoomNo, req.DueDate)
	if !ok {
		return
	}
	if req.CheckoutDate != "" {
		checkout, err := parseDate(req.CheckoutDate)
		if err != nil {
			httperr.BadRequest(c, "Invalid check-out date. Use YYYY-MM-DD")
			return
		}
		params.CheckoutDate = &checkout
	}

	customer, err := h.store.CreateCustomer(c.Request.Context(), hostelID, params)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httperr.NotFound(c, "Hostel not found")
			return
		}
		httperr.Internal(c, "Failed to create customer", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"customer": gin.H{
			"id":    customer.ID,
			"name":  customer.Name,
			"phone": customer.Phone,
		},
	})
}

type updateCustomerRequest struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	FatherPhone string `json:"fatherPhone"`
	College     string `json:"college"`
	Course      string `json:"course"`
	CheckinDate string `json:"checkinDate"`
	Room        string `json:"room"`
	DueDate     string `json:"dueDate"`
}

// UpdateCustomer handles PUT /api/customers/:customerId. A supplied room
// number reassigns the room; a supplied due date upserts the customer's
// due record.
func (h *Handler) UpdateCustomer(c *gin.Context) {
	customerID := c.Param("customerId")

	var req updateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid request body")
		return
	}

	params, ok := customerParams(c, req.Name, req.Phone, req.FatherPhone,
		req.College, req.Course, req.CheckinDate, req.Room, req.DueDate)
	if !ok {
		return
	}

	customer, err := h.store.UpdateCustomer(c.Request.Context(), customerID, params)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httperr.NotFound(c, "Customer not found")
			return
		}
		httperr.Internal(c, "Failed to update customer", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"customer": gin.H{
			"id":          customer.ID,
			"name":        customer.Name,
			"phone":       customer.Phone,
			"fatherPhone": customer.FatherPhone,
			"college":     customer.College,
			"course":      customer.Course,
			"checkinDate": customer.CheckinDate.Format(store.DateLayout),
			"room":        req.Room,
		},
	})
}

// DeleteCustomer handles DELETE /api/customers/:customerId. The
// customer's due record goes with it.
func (h *Handler) DeleteCustomer(c *gin.Context) {
	customerID := c.Param("customerId")

	if err := h.store.DeleteCustomer(c.Request.Context(), customerID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httperr.NotFound(c, "Customer not found")
			return
		}
		httperr.Internal(c, "Failed to delete customer", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Customer deleted successfully",
	})
}

// customerParams validates the shared create/update fields and reports
// whether the caller may proceed. Name and check-in date are required.
func customerParams(c *gin.Context, name, phone, fatherPhone, college, course,
	checkinDate, roomNumber, dueDate string) (store.CustomerParams, bool) {

	name = strings.TrimSpace(name)
	if name == "" || checkinDate == "" {
		httperr.BadRequest(c, "Name and check-in date are required")
		return store.CustomerParams{}, false
	}

	checkin, err := parseDate(checkinDate)
	if err != nil {
		httperr.BadRequest(c, "Invalid check-in date. Use YYYY-MM-DD")
		return store.CustomerParams{}, false
	}

	params := store.CustomerParams{
		Name:        name,
		Phone:       phone,
		FatherPhone: fatherPhone,
		College:     college,
		Course:      course,
		CheckinDate: checkin,
		RoomNumber:  strings.TrimSpace(roomNumber),
	}

	if dueDate != "" {
		due, err := parseDate(dueDate)
		if err != nil {
			httperr.BadRequest(c, "Invalid due date. Use YYYY-MM-DD")
			return store.CustomerParams{}, false
		}
		params.DueDate = &due
	}
	return params, true
}
