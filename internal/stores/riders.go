package stores

import (
	"context"

	"parceldash/internal/api"
	"parceldash/internal/collection"
	"parceldash/internal/domain"
)

// RidersAPI is the slice of the API client the riders store depends on.
type RidersAPI interface {
	ListRiders(ctx context.Context, token string, params api.ListParams) (*api.RiderList, error)
	GetRider(ctx context.Context, token, riderID string) (*domain.Rider, error)
	DeleteRider(ctx context.Context, token, riderID string) error
}

// Riders owns the onboarded rider list state.
type Riders struct {
	*collection.Collection[domain.Rider]

	api    RidersAPI
	tokens TokenSource
}

// NewRiders creates the riders store.
func NewRiders(ridersAPI RidersAPI, tokens TokenSource, opts ...collection.Option) *Riders {
	s := &Riders{api: ridersAPI, tokens: tokens}
	s.Collection = collection.New(s.load, func(r domain.Rider) string { return r.ID }, opts...)
	return s
}

func (s *Riders) load(ctx context.Context, params api.ListParams) ([]domain.Rider, api.Pagination, error) {
	resp, err := s.api.ListRiders(ctx, s.tokens.Token(), params)
	if err != nil {
		return nil, api.Pagination{}, err
	}
	return resp.Riders, resp.Pagination, nil
}

// Get fetches one rider directly, bypassing list state.
func (s *Riders) Get(ctx context.Context, riderID string) (*domain.Rider, error) {
	return s.api.GetRider(ctx, s.tokens.Token(), riderID)
}

// Delete removes a rider remotely, then drops it from local state. A failed
// remote call leaves local state untouched.
func (s *Riders) Delete(ctx context.Context, riderID string) error {
	if err := s.api.DeleteRider(ctx, s.tokens.Token(), riderID); err != nil {
		return err
	}
	s.Remove(riderID)
	return nil
}

// Available returns riders currently accepting work.
func (s *Riders) Available() []domain.Rider {
	items := s.Items()
	out := make([]domain.Rider, 0, len(items))
	for _, r := range items {
		if r.Availability {
			out = append(out, r)
		}
	}
	return out
}
