package api

import (
	"context"
	"net/http"

	"parceldash/internal/domain"
)

// OrderList is the response body for the orders list endpoint.
type OrderList struct {
	Orders     []domain.Order `json:"orders"`
	Pagination Pagination     `json:"pagination"`
}

// ListOrders fetches a page of orders matching the given filters.
func (c *Client) ListOrders(ctx context.Context, token string, params ListParams) (*OrderList, error) {
	var out OrderList
	if err := c.do(ctx, http.MethodGet, "/orders", token, params.Query(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// OrderMutation is the response body for order mutations.
type OrderMutation struct {
	Message string       `json:"message"`
	Order   domain.Order `json:"order"`
}

// UpdateOrderStatus advances an order to the given status.
func (c *Client) UpdateOrderStatus(ctx context.Context, token, orderID string, status domain.OrderStatus) (*domain.Order, error) {
	body := struct {
		Status domain.OrderStatus `json:"status"`
	}{Status: status}

	var out OrderMutation
	if err := c.do(ctx, http.MethodPut, "/orders/"+orderID+"/status", token, nil, body, &out); err != nil {
		return nil, err
	}
	return &out.Order, nil
}

// TrackParcel fetches the public tracking view of an order by tracking number.
func (c *Client) TrackParcel(ctx context.Context, trackingNumber string) (*domain.Order, error) {
	var out struct {
		Order domain.Order `json:"order"`
	}
	if err := c.do(ctx, http.MethodGet, "/tracking/"+trackingNumber, "", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out.Order, nil
}
