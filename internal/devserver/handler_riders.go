package devserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"parceldash/internal/domain"
)

// ListRiders handles GET /api/riders.
func (s *Server) ListRiders(c *gin.Context) {
	f := listFilterFrom(c)
	riders, total, totalPages := s.repo.ListRiders(f, false)
	c.JSON(http.StatusOK, gin.H{
		"riders":     riders,
		"pagination": pagination(f, total, totalPages),
	})
}

// GetRider handles GET /api/riders/:id.
func (s *Server) GetRider(c *gin.Context) {
	rider, ok := s.repo.GetRider(c.Param("id"))
	if !ok {
		respondError(c, http.StatusNotFound, "rider not found")
		return
	}
	s.attachLocation(c, rider)
	c.JSON(http.StatusOK, gin.H{"rider": rider})
}

// DeleteRider handles DELETE /api/riders/:id.
func (s *Server) DeleteRider(c *gin.Context) {
	id := c.Param("id")
	if !s.repo.DeleteRider(id) {
		respondError(c, http.StatusNotFound, "rider not found")
		return
	}
	_ = s.locations.RemoveLocation(c.Request.Context(), id)
	c.JSON(http.StatusOK, gin.H{"message": "rider deleted"})
}

// ListActiveRiders handles GET /api/riders/active: ONLINE riders with their
// current positions from the location store.
func (s *Server) ListActiveRiders(c *gin.Context) {
	f := listFilterFrom(c)
	riders, total, totalPages := s.repo.ListRiders(f, true)
	for i := range riders {
		s.attachLocation(c, &riders[i])
	}
	c.JSON(http.StatusOK, gin.H{
		"riders":     riders,
		"pagination": pagination(f, total, totalPages),
	})
}

func (s *Server) attachLocation(c *gin.Context, rider *domain.Rider) {
	pos, err := s.locations.GetLocation(c.Request.Context(), rider.ID)
	if err != nil || pos == nil {
		return
	}
	address := ""
	if rider.CurrentLocation != nil {
		address = rider.CurrentLocation.Address
	}
	rider.CurrentLocation = &domain.Location{
		Lat:       pos.Lat,
		Lng:       pos.Lng,
		Address:   address,
		UpdatedAt: time.Now(),
	}
}

// ListPendingRiders handles GET /api/riders/pending.
func (s *Server) ListPendingRiders(c *gin.Context) {
	f := listFilterFrom(c)
	riders, total, totalPages := s.repo.ListPending(f)
	c.JSON(http.StatusOK, gin.H{
		"riders":     riders,
		"pagination": pagination(f, total, totalPages),
	})
}

// ApproveRider handles POST /api/riders/:id/approve: the application becomes
// an ACTIVE rider and leaves the pending queue.
func (s *Server) ApproveRider(c *gin.Context) {
	id := c.Param("id")
	pending, ok := s.repo.GetPending(id)
	if !ok {
		respondError(c, http.StatusNotFound, "application not found")
		return
	}

	rider := &domain.Rider{
		ID:             uuid.New().String(),
		Name:           pending.Name,
		Email:          pending.Email,
		Status:         domain.RiderStatusActive,
		Availability:   false,
		VehicleDetails: pending.VehicleDetails,
		CreatedAt:      time.Now(),
	}
	s.repo.PutRider(rider)
	s.repo.DeletePending(id)

	c.JSON(http.StatusOK, gin.H{
		"message": "application approved",
		"rider":   rider,
	})
}

// RejectRiderRequest is the rejection body.
type RejectRiderRequest struct {
	Reason string `json:"reason"`
}

// RejectRider handles POST /api/riders/:id/reject.
func (s *Server) RejectRider(c *gin.Context) {
	id := c.Param("id")
	if _, ok := s.repo.GetPending(id); !ok {
		respondError(c, http.StatusNotFound, "application not found")
		return
	}

	var req RejectRiderRequest
	_ = c.ShouldBindJSON(&req)

	s.repo.DeletePending(id)
	c.JSON(http.StatusOK, gin.H{"message": "application rejected"})
}
