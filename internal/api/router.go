package api

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"hostel-manager-backend/config"
	"hostel-manager-backend/internal/mw"
	"hostel-manager-backend/internal/store"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(s store.Store, cfg *config.ServerConfig) *gin.Engine {
	r := gin.Default()

	handler := NewHandler(s)

	rateLimiter := mw.RateLimiter(
		rate.Limit(cfg.RateLimitPerSec),
		cfg.RateLimitBurst,
		cfg.RequestIPHeader,
	)

	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		api.GET("/hostels", handler.ListHostels)
		api.POST("/hostels", handler.CreateHostel)
		api.DELETE("/hostels", handler.DeleteHostel)
		api.GET("/hostels/:hostelId", handler.GetHostel)

		api.GET("/customers", handler.ListCustomers)
		api.POST("/customers", handler.CreateCustomer)
		api.PUT("/customers/:customerId", handler.UpdateCustomer)
		api.DELETE("/customers/:customerId", handler.DeleteCustomer)

		api.GET("/rooms", handler.ListRooms)

		api.GET("/dues", handler.ListDues)
		api.POST("/dues", handler.CreateDue)
		api.PUT("/dues", handler.UpdateDue)
	}

	return r
}
