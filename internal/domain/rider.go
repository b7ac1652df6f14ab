package domain

import "time"

// RiderStatus represents the account state of a rider.
type RiderStatus string

const (
	RiderStatusPending   RiderStatus = "PENDING"
	RiderStatusActive    RiderStatus = "ACTIVE"
	RiderStatusRejected  RiderStatus = "REJECTED"
	RiderStatusSuspended RiderStatus = "SUSPENDED"
	RiderStatusOnline    RiderStatus = "ONLINE"
	RiderStatusOffline   RiderStatus = "OFFLINE"
)

// VehicleDetails describes a rider's vehicle.
type VehicleDetails struct {
	Type         string `json:"type"`
	Model        string `json:"model,omitempty"`
	LicensePlate string `json:"license_plate,omitempty"`
}

// Location is a rider's last reported position.
type Location struct {
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	Address   string    `json:"address,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PerformanceMetrics aggregates a rider's delivery record.
type PerformanceMetrics struct {
	TotalDeliveries int     `json:"total_deliveries"`
	CompletionRate  float64 `json:"completion_rate"`
	AverageRating   float64 `json:"average_rating"`
}

// Rider represents an onboarded delivery rider.
type Rider struct {
	ID              string              `json:"id"`
	Name            string              `json:"name"`
	Email           string              `json:"email"`
	Status          RiderStatus         `json:"status"`
	Availability    bool                `json:"availability"`
	VehicleDetails  VehicleDetails      `json:"vehicle_details"`
	CurrentLocation *Location           `json:"current_location,omitempty"`
	Performance     *PerformanceMetrics `json:"performance,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
}

// PendingRider is a rider application awaiting review.
// Approval creates a real Rider; until then only this record exists.
type PendingRider struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Email          string         `json:"email"`
	VehicleDetails VehicleDetails `json:"vehicle_details"`
	NationalID     string         `json:"national_id"`
	IsVerified     bool           `json:"is_verified"`
	Status         RiderStatus    `json:"status"`
	CreatedAt      time.Time      `json:"created_at"`
}
