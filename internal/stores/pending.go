package stores

import (
	"context"

	"parceldash/internal/api"
	"parceldash/internal/collection"
	"parceldash/internal/domain"
	"parceldash/internal/onboarding"
)

// PendingRidersAPI is the slice of the API client the pending store depends on.
type PendingRidersAPI interface {
	ListPendingRiders(ctx context.Context, token string, params api.ListParams) (*api.PendingRiderList, error)
	ApproveRider(ctx context.Context, token, applicationID string) error
	RejectRider(ctx context.Context, token, applicationID, reason string) error
}

// PendingRiders owns the rider application queue. Approved or rejected
// applications are removed from local state rather than mutated: they leave
// the pending view entirely.
type PendingRiders struct {
	*collection.Collection[domain.PendingRider]

	api    PendingRidersAPI
	tokens TokenSource
}

// NewPendingRiders creates the pending applications store.
func NewPendingRiders(pendingAPI PendingRidersAPI, tokens TokenSource, opts ...collection.Option) *PendingRiders {
	s := &PendingRiders{api: pendingAPI, tokens: tokens}
	s.Collection = collection.New(s.load, func(r domain.PendingRider) string { return r.ID }, opts...)
	return s
}

func (s *PendingRiders) load(ctx context.Context, params api.ListParams) ([]domain.PendingRider, api.Pagination, error) {
	resp, err := s.api.ListPendingRiders(ctx, s.tokens.Token(), params)
	if err != nil {
		return nil, api.Pagination{}, err
	}
	return resp.Riders, resp.Pagination, nil
}

// Applications returns the onboarding view models for the current queue, with
// derived progress and step labels.
func (s *PendingRiders) Applications() []*onboarding.Application {
	items := s.Items()
	out := make([]*onboarding.Application, 0, len(items))
	for _, r := range items {
		out = append(out, onboarding.FromPendingRider(r))
	}
	return out
}

// Approve approves an application remotely and removes it from the queue.
// A failed remote call leaves local state untouched.
func (s *PendingRiders) Approve(ctx context.Context, applicationID string) error {
	if err := s.api.ApproveRider(ctx, s.tokens.Token(), applicationID); err != nil {
		return err
	}
	s.Remove(applicationID)
	return nil
}

// Reject rejects an application remotely and removes it from the queue.
// A failed remote call leaves local state untouched.
func (s *PendingRiders) Reject(ctx context.Context, applicationID, reason string) error {
	if err := s.api.RejectRider(ctx, s.tokens.Token(), applicationID, reason); err != nil {
		return err
	}
	s.Remove(applicationID)
	return nil
}
