package domain

import "time"

// OrderStatus represents the delivery lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "PENDING"
	OrderStatusAccepted       OrderStatus = "ACCEPTED"
	OrderStatusPickedUp       OrderStatus = "PICKED_UP"
	OrderStatusInTransit      OrderStatus = "IN_TRANSIT"
	OrderStatusOutForDelivery OrderStatus = "OUT_FOR_DELIVERY"
	OrderStatusDelivered      OrderStatus = "DELIVERED"
	OrderStatusCancelled      OrderStatus = "CANCELLED"
)

// PaymentStatus represents the payment state of an order.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusPaid     PaymentStatus = "PAID"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
)

// ParcelSize represents the size class of a parcel.
type ParcelSize string

const (
	ParcelSizeSmall  ParcelSize = "small"
	ParcelSizeMedium ParcelSize = "medium"
	ParcelSizeLarge  ParcelSize = "large"
)

// orderStatusRank orders the forward delivery progression.
// CANCELLED is intentionally absent: it is reachable from any
// non-terminal state but never part of the forward chain.
var orderStatusRank = map[OrderStatus]int{
	OrderStatusPending:        0,
	OrderStatusAccepted:       1,
	OrderStatusPickedUp:       2,
	OrderStatusInTransit:      3,
	OrderStatusOutForDelivery: 4,
	OrderStatusDelivered:      5,
}

// IsTerminal reports whether no further status transition is possible.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// CanTransitionTo reports whether the order status may advance to next.
// Transitions are monotonic forward through the delivery progression;
// CANCELLED is reachable from any non-terminal state.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s.IsTerminal() {
		return false
	}
	if next == OrderStatusCancelled {
		return true
	}
	from, ok := orderStatusRank[s]
	if !ok {
		return false
	}
	to, ok := orderStatusRank[next]
	if !ok {
		return false
	}
	return to > from
}

// OrderCustomer is the customer reference embedded in an order.
type OrderCustomer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// OrderRider is the rider reference embedded in an order.
// Nil until the order is ACCEPTED.
type OrderRider struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
}

// Order represents a parcel delivery order.
type Order struct {
	ID              string         `json:"id"`
	TrackingNumber  string         `json:"tracking_number"`
	Status          OrderStatus    `json:"status"`
	PaymentStatus   PaymentStatus  `json:"payment_status"`
	ParcelSize      ParcelSize     `json:"parcel_size"`
	PickupAddress   string         `json:"pickup_address"`
	DeliveryAddress string         `json:"delivery_address"`
	Customer        *OrderCustomer `json:"customer,omitempty"`
	Rider           *OrderRider    `json:"rider,omitempty"`
	DeliveryFee     float64        `json:"delivery_fee"`
	Rating          *int           `json:"rating,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}
