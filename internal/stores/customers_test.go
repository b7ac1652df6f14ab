package stores

import (
	"context"
	"testing"
	"time"

	"parceldash/internal/api"
	"parceldash/internal/domain"
)

func seedCustomers() []domain.Customer {
	now := time.Now()
	return []domain.Customer{
		{ID: "customer-1", Email: "a@example.com", Status: domain.CustomerStatusActive, CreatedAt: now},
		{ID: "customer-2", Email: "b@example.com", Status: domain.CustomerStatusInactive, CreatedAt: now},
		{ID: "customer-3", Email: "c@example.com", Status: domain.CustomerStatusSuspended, CreatedAt: now},
	}
}

func TestCustomersUpdateStatus_PatchesLocally(t *testing.T) {
	t.Parallel()

	mock := &mockCustomersAPI{customers: seedCustomers(), pager: api.Pagination{Total: 3}}
	store := NewCustomers(mock, staticTokens{token: "tok"})

	if err := store.Fetch(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.UpdateStatus(context.Background(), "customer-2", domain.CustomerStatusSuspended); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, c := range store.Items() {
		want := map[string]domain.CustomerStatus{
			"customer-1": domain.CustomerStatusActive,
			"customer-2": domain.CustomerStatusSuspended,
			"customer-3": domain.CustomerStatusSuspended,
		}[c.ID]
		if c.Status != want {
			t.Errorf("customer %s status = %s, want %s", c.ID, c.Status, want)
		}
	}
}

func TestCustomersUpdateStatus_FailureLeavesStateUntouched(t *testing.T) {
	t.Parallel()

	mock := &mockCustomersAPI{
		customers:   seedCustomers(),
		UpdateError: &api.APIError{Message: "customer not found", Status: 404},
	}
	store := NewCustomers(mock, staticTokens{token: "tok"})

	if err := store.Fetch(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := store.UpdateStatus(context.Background(), "customer-1", domain.CustomerStatusSuspended); err == nil {
		t.Fatal("expected the remote failure to propagate")
	}
	for _, c := range store.Items() {
		if c.ID == "customer-1" && c.Status != domain.CustomerStatusActive {
			t.Errorf("customer-1 status changed after failed mutation: %s", c.Status)
		}
	}
}

func TestCustomersDerivedViews(t *testing.T) {
	t.Parallel()

	mock := &mockCustomersAPI{customers: seedCustomers()}
	store := NewCustomers(mock, staticTokens{token: "tok"})
	if err := store.Fetch(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := store.ActiveCustomers(); len(got) != 1 || got[0].ID != "customer-1" {
		t.Errorf("ActiveCustomers() = %+v", got)
	}
	if got := store.SuspendedCustomers(); len(got) != 1 || got[0].ID != "customer-3" {
		t.Errorf("SuspendedCustomers() = %+v", got)
	}
}
