package stores

import (
	"context"
	"sync"
	"time"

	"parceldash/internal/api"
	"parceldash/internal/collection"
	"parceldash/internal/domain"
)

// ActiveRidersAPI is the slice of the API client the active riders store depends on.
type ActiveRidersAPI interface {
	ListActiveRiders(ctx context.Context, token string, params api.ListParams) (*api.RiderList, error)
}

// ActiveRiders owns the near-live view of ONLINE riders for the map screen.
// It is the only store with an implicit background refresh: a fixed-interval
// poll started by StartPolling. A poll tick and a manual Refresh may overlap;
// the collection's sequence guard keeps the newest issued fetch authoritative.
type ActiveRiders struct {
	*collection.Collection[domain.Rider]

	api      ActiveRidersAPI
	tokens   TokenSource
	interval time.Duration
}

// NewActiveRiders creates the active riders store polling at the given interval.
func NewActiveRiders(activeAPI ActiveRidersAPI, tokens TokenSource, interval time.Duration, opts ...collection.Option) *ActiveRiders {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	s := &ActiveRiders{api: activeAPI, tokens: tokens, interval: interval}
	s.Collection = collection.New(s.load, func(r domain.Rider) string { return r.ID }, opts...)
	return s
}

func (s *ActiveRiders) load(ctx context.Context, params api.ListParams) ([]domain.Rider, api.Pagination, error) {
	resp, err := s.api.ListActiveRiders(ctx, s.tokens.Token(), params)
	if err != nil {
		return nil, api.Pagination{}, err
	}
	return resp.Riders, resp.Pagination, nil
}

// StartPolling fetches immediately, then refreshes on the fixed interval until
// the returned stop function is called or ctx is cancelled. Poll errors land
// in the collection's error state; polling continues regardless.
func (s *ActiveRiders) StartPolling(ctx context.Context) (stop func()) {
	done := make(chan struct{})

	go func() {
		_ = s.Fetch(ctx)

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				_ = s.Fetch(ctx)
			case <-ctx.Done():
				return
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() { close(done) })
	}
}

// WithLocation returns the polled riders that have a reported position.
func (s *ActiveRiders) WithLocation() []domain.Rider {
	items := s.Items()
	out := make([]domain.Rider, 0, len(items))
	for _, r := range items {
		if r.CurrentLocation != nil {
			out = append(out, r)
		}
	}
	return out
}
