package stores

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"parceldash/internal/api"
	"parceldash/internal/domain"
	"parceldash/internal/onboarding"
)

func seedPending() []domain.PendingRider {
	now := time.Now()
	return []domain.PendingRider{
		{ID: "app-1", Name: "Henry", Email: "henry@example.com", IsVerified: true, Status: domain.RiderStatusPending, CreatedAt: now},
		{ID: "app-2", Name: "Irene", Email: "irene@example.com", Status: domain.RiderStatusPending, CreatedAt: now},
	}
}

func TestApprove_RemovesApplicationAndDecrementsTotal(t *testing.T) {
	t.Parallel()

	mock := &mockPendingAPI{pending: seedPending(), pager: api.Pagination{Total: 2}}
	store := NewPendingRiders(mock, staticTokens{token: "tok"})

	if err := store.Fetch(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := store.Approve(context.Background(), "app-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, app := range store.Items() {
		if app.ID == "app-1" {
			t.Error("approved application must leave the pending list")
		}
	}
	if got := store.Pagination().Total; got != 1 {
		t.Errorf("total = %d, want 1", got)
	}
	if atomic.LoadInt32(&mock.ApproveCallCount) != 1 {
		t.Error("expected exactly one remote approve call")
	}
}

func TestReject_RemovesApplicationAndForwardsReason(t *testing.T) {
	t.Parallel()

	mock := &mockPendingAPI{pending: seedPending(), pager: api.Pagination{Total: 2}}
	store := NewPendingRiders(mock, staticTokens{token: "tok"})

	if err := store.Fetch(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := store.Reject(context.Background(), "app-2", "expired national id"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, app := range store.Items() {
		if app.ID == "app-2" {
			t.Error("rejected application must leave the pending list")
		}
	}
	mock.mu.Lock()
	reason := mock.LastRejectReason
	mock.mu.Unlock()
	if reason != "expired national id" {
		t.Errorf("reason = %q", reason)
	}
}

func TestApprove_TotalFlooredAtZero(t *testing.T) {
	t.Parallel()

	// Backend reported a zero total even though the page has one row.
	mock := &mockPendingAPI{pending: seedPending()[:1], pager: api.Pagination{Total: 0}}
	store := NewPendingRiders(mock, staticTokens{token: "tok"})

	if err := store.Fetch(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.Approve(context.Background(), "app-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := store.Pagination().Total; got != 0 {
		t.Errorf("total = %d, must not go negative", got)
	}
}

func TestApprove_FailureKeepsApplication(t *testing.T) {
	t.Parallel()

	mock := &mockPendingAPI{
		pending:      seedPending(),
		pager:        api.Pagination{Total: 2},
		ApproveError: &api.APIError{Message: "application not found", Status: 404},
	}
	store := NewPendingRiders(mock, staticTokens{token: "tok"})

	if err := store.Fetch(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.Approve(context.Background(), "app-1"); err == nil {
		t.Fatal("expected the remote failure to propagate")
	}

	if got := len(store.Items()); got != 2 {
		t.Errorf("items = %d, failed approve must not remove locally", got)
	}
	if got := store.Pagination().Total; got != 2 {
		t.Errorf("total = %d, want 2", got)
	}
}

func TestApplications_DerivedViewModels(t *testing.T) {
	t.Parallel()

	mock := &mockPendingAPI{pending: seedPending(), pager: api.Pagination{Total: 2}}
	store := NewPendingRiders(mock, staticTokens{token: "tok"})

	if err := store.Fetch(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	apps := store.Applications()
	if len(apps) != 2 {
		t.Fatalf("applications = %d, want 2", len(apps))
	}

	byID := map[string]*onboarding.Application{}
	for _, app := range apps {
		byID[app.ID] = app
	}

	// The verified applicant starts in document review, the other at submitted.
	if byID["app-1"].Step != onboarding.StepDocumentReview {
		t.Errorf("app-1 step = %s, want document_review", byID["app-1"].Step)
	}
	if byID["app-2"].Step != onboarding.StepSubmitted {
		t.Errorf("app-2 step = %s, want submitted", byID["app-2"].Step)
	}
	if got := byID["app-2"].Progress(); got != 25 {
		t.Errorf("app-2 progress = %d, want 25", got)
	}
	if len(byID["app-1"].Documents) != 8 {
		t.Errorf("document slots = %d, want 8", len(byID["app-1"].Documents))
	}
}
