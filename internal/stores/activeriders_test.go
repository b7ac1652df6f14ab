package stores

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"parceldash/internal/domain"
)

func TestStartPolling_FetchesImmediatelyThenOnInterval(t *testing.T) {
	t.Parallel()

	mock := &mockActiveRidersAPI{riders: []domain.Rider{
		{ID: "rider-1", Status: domain.RiderStatusOnline},
	}}
	store := NewActiveRiders(mock, staticTokens{token: "tok"}, 20*time.Millisecond)

	stop := store.StartPolling(context.Background())
	defer stop()

	deadline := time.After(2 * time.Second)
	for atomic.LoadInt32(&mock.ListCallCount) < 3 {
		select {
		case <-deadline:
			t.Fatalf("only %d polls within deadline", atomic.LoadInt32(&mock.ListCallCount))
		case <-time.After(5 * time.Millisecond):
		}
	}

	if got := store.Items(); len(got) != 1 || got[0].ID != "rider-1" {
		t.Errorf("items = %+v", got)
	}
}

func TestStartPolling_StopHaltsRefreshes(t *testing.T) {
	t.Parallel()

	mock := &mockActiveRidersAPI{}
	store := NewActiveRiders(mock, staticTokens{token: "tok"}, 10*time.Millisecond)

	stop := store.StartPolling(context.Background())

	// Let at least the immediate fetch land, then stop.
	deadline := time.After(2 * time.Second)
	for atomic.LoadInt32(&mock.ListCallCount) == 0 {
		select {
		case <-deadline:
			t.Fatal("immediate fetch never happened")
		case <-time.After(2 * time.Millisecond):
		}
	}
	stop()
	stop() // calling stop twice is safe

	settled := atomic.LoadInt32(&mock.ListCallCount)
	time.Sleep(60 * time.Millisecond)
	// One tick may already have been in flight when stop was called.
	if got := atomic.LoadInt32(&mock.ListCallCount); got > settled+1 {
		t.Errorf("polling continued after stop: %d -> %d calls", settled, got)
	}
}

func TestStartPolling_ContextCancelHaltsRefreshes(t *testing.T) {
	t.Parallel()

	mock := &mockActiveRidersAPI{}
	store := NewActiveRiders(mock, staticTokens{token: "tok"}, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	stop := store.StartPolling(ctx)
	defer stop()

	deadline := time.After(2 * time.Second)
	for atomic.LoadInt32(&mock.ListCallCount) == 0 {
		select {
		case <-deadline:
			t.Fatal("immediate fetch never happened")
		case <-time.After(2 * time.Millisecond):
		}
	}
	cancel()

	settled := atomic.LoadInt32(&mock.ListCallCount)
	time.Sleep(60 * time.Millisecond)
	if got := atomic.LoadInt32(&mock.ListCallCount); got > settled+1 {
		t.Errorf("polling continued after cancel: %d -> %d calls", settled, got)
	}
}

func TestWithLocation_FiltersUnpositionedRiders(t *testing.T) {
	t.Parallel()

	mock := &mockActiveRidersAPI{riders: []domain.Rider{
		{ID: "rider-1", Status: domain.RiderStatusOnline, CurrentLocation: &domain.Location{Lat: -1.28, Lng: 36.82}},
		{ID: "rider-2", Status: domain.RiderStatusOnline},
	}}
	store := NewActiveRiders(mock, staticTokens{token: "tok"}, time.Minute)

	if err := store.Fetch(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := store.WithLocation()
	if len(got) != 1 || got[0].ID != "rider-1" {
		t.Errorf("WithLocation() = %+v", got)
	}
}
