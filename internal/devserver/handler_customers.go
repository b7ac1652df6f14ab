package devserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"parceldash/internal/domain"
)

// ListCustomers handles GET /api/customers.
func (s *Server) ListCustomers(c *gin.Context) {
	f := listFilterFrom(c)
	customers, total, totalPages := s.repo.ListCustomers(f)
	c.JSON(http.StatusOK, gin.H{
		"customers":  customers,
		"pagination": pagination(f, total, totalPages),
	})
}

// UpdateCustomerStatusRequest is the status update body.
type UpdateCustomerStatusRequest struct {
	Status domain.CustomerStatus `json:"status"`
}

// UpdateCustomerStatus handles PUT /api/customers/:id/status.
func (s *Server) UpdateCustomerStatus(c *gin.Context) {
	var req UpdateCustomerStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
		respondError(c, http.StatusBadRequest, "status is required")
		return
	}

	switch req.Status {
	case domain.CustomerStatusActive, domain.CustomerStatusInactive, domain.CustomerStatusSuspended:
	default:
		respondValidation(c, map[string]string{"status": "unknown customer status"})
		return
	}

	customer, ok := s.repo.GetCustomer(c.Param("id"))
	if !ok {
		respondError(c, http.StatusNotFound, "customer not found")
		return
	}

	customer.Status = req.Status
	s.repo.PutCustomer(customer)

	c.JSON(http.StatusOK, gin.H{
		"message":  "customer status updated",
		"customer": customer,
	})
}
