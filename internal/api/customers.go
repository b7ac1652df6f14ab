package api

import (
	"context"
	"net/http"

	"parceldash/internal/domain"
)

// CustomerList is the response body for the customers list endpoint.
type CustomerList struct {
	Customers  []domain.Customer `json:"customers"`
	Pagination Pagination        `json:"pagination"`
}

// ListCustomers fetches a page of customers.
func (c *Client) ListCustomers(ctx context.Context, token string, params ListParams) (*CustomerList, error) {
	var out CustomerList
	if err := c.do(ctx, http.MethodGet, "/customers", token, params.Query(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CustomerMutation is the response body for customer mutations.
type CustomerMutation struct {
	Message  string          `json:"message"`
	Customer domain.Customer `json:"customer"`
}

// UpdateCustomerStatus changes a customer's account status.
func (c *Client) UpdateCustomerStatus(ctx context.Context, token, customerID string, status domain.CustomerStatus) (*domain.Customer, error) {
	body := struct {
		Status domain.CustomerStatus `json:"status"`
	}{Status: status}

	var out CustomerMutation
	if err := c.do(ctx, http.MethodPut, "/customers/"+customerID+"/status", token, nil, body, &out); err != nil {
		return nil, err
	}
	return &out.Customer, nil
}
