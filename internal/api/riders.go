package api

import (
	"context"
	"net/http"

	"parceldash/internal/domain"
)

// RiderList is the response body for rider list endpoints.
type RiderList struct {
	Riders     []domain.Rider `json:"riders"`
	Pagination Pagination     `json:"pagination"`
}

// PendingRiderList is the response body for the pending applications endpoint.
type PendingRiderList struct {
	Riders     []domain.PendingRider `json:"riders"`
	Pagination Pagination            `json:"pagination"`
}

// ListRiders fetches a page of onboarded riders.
func (c *Client) ListRiders(ctx context.Context, token string, params ListParams) (*RiderList, error) {
	var out RiderList
	if err := c.do(ctx, http.MethodGet, "/riders", token, params.Query(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetRider fetches one rider by id.
func (c *Client) GetRider(ctx context.Context, token, riderID string) (*domain.Rider, error) {
	var out struct {
		Rider domain.Rider `json:"rider"`
	}
	if err := c.do(ctx, http.MethodGet, "/riders/"+riderID, token, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out.Rider, nil
}

// DeleteRider removes a rider account.
func (c *Client) DeleteRider(ctx context.Context, token, riderID string) error {
	return c.do(ctx, http.MethodDelete, "/riders/"+riderID, token, nil, nil, nil)
}

// ListActiveRiders fetches riders currently ONLINE, with last known locations.
func (c *Client) ListActiveRiders(ctx context.Context, token string, params ListParams) (*RiderList, error) {
	var out RiderList
	if err := c.do(ctx, http.MethodGet, "/riders/active", token, params.Query(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListPendingRiders fetches rider applications awaiting review.
func (c *Client) ListPendingRiders(ctx context.Context, token string, params ListParams) (*PendingRiderList, error) {
	var out PendingRiderList
	if err := c.do(ctx, http.MethodGet, "/riders/pending", token, params.Query(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ApproveRider approves a pending application, creating an active rider.
func (c *Client) ApproveRider(ctx context.Context, token, applicationID string) error {
	return c.do(ctx, http.MethodPost, "/riders/"+applicationID+"/approve", token, nil, nil, nil)
}

// RejectRider rejects a pending application.
func (c *Client) RejectRider(ctx context.Context, token, applicationID, reason string) error {
	body := struct {
		Reason string `json:"reason,omitempty"`
	}{Reason: reason}
	return c.do(ctx, http.MethodPost, "/riders/"+applicationID+"/reject", token, nil, body, nil)
}
