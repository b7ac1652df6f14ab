package devserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"parceldash/internal/domain"
)

// ListOrders handles GET /api/orders.
func (s *Server) ListOrders(c *gin.Context) {
	f := listFilterFrom(c)
	orders, total, totalPages := s.repo.ListOrders(f)
	c.JSON(http.StatusOK, gin.H{
		"orders":     orders,
		"pagination": pagination(f, total, totalPages),
	})
}

// UpdateOrderStatusRequest is the status update body.
type UpdateOrderStatusRequest struct {
	Status domain.OrderStatus `json:"status"`
}

// UpdateOrderStatus handles PUT /api/orders/:id/status.
func (s *Server) UpdateOrderStatus(c *gin.Context) {
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
		respondError(c, http.StatusBadRequest, "status is required")
		return
	}

	order, ok := s.repo.GetOrder(c.Param("id"))
	if !ok {
		respondError(c, http.StatusNotFound, "order not found")
		return
	}

	if !order.Status.CanTransitionTo(req.Status) {
		respondError(c, http.StatusConflict, "invalid status transition")
		return
	}

	order.Status = req.Status
	order.UpdatedAt = time.Now()
	if req.Status == domain.OrderStatusDelivered && order.PaymentStatus == domain.PaymentStatusPending {
		order.PaymentStatus = domain.PaymentStatusPaid
	}
	s.repo.PutOrder(order)

	c.JSON(http.StatusOK, gin.H{
		"message": "order status updated",
		"order":   order,
	})
}

// TrackParcel handles GET /api/tracking/:trackingNumber, the unauthenticated
// customer-facing tracking view.
func (s *Server) TrackParcel(c *gin.Context) {
	order, ok := s.repo.GetOrderByTracking(c.Param("trackingNumber"))
	if !ok {
		respondError(c, http.StatusNotFound, "tracking number not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}
