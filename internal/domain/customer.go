package domain

import "time"

// CustomerStatus represents the account state of a customer.
type CustomerStatus string

const (
	CustomerStatusActive    CustomerStatus = "ACTIVE"
	CustomerStatusInactive  CustomerStatus = "INACTIVE"
	CustomerStatusSuspended CustomerStatus = "SUSPENDED"
)

// Customer represents a customer account.
type Customer struct {
	ID          string         `json:"id"`
	Name        *string        `json:"name,omitempty"`
	Email       string         `json:"email"`
	Status      CustomerStatus `json:"status"`
	IsVerified  bool           `json:"is_verified"`
	TotalOrders int            `json:"total_orders"`
	TotalSpent  float64        `json:"total_spent"`
	CreatedAt   time.Time      `json:"created_at"`
}
