package stores

import (
	"context"
	"sync"
	"sync/atomic"

	"parceldash/internal/api"
	"parceldash/internal/collection"
	"parceldash/internal/domain"
)

// staticTokens is a TokenSource with a fixed token.
type staticTokens struct{ token string }

func (s staticTokens) Token() string { return s.token }

// filterPatch builds a status-only filter patch.
func filterPatch(status string) collection.FilterPatch {
	return collection.FilterPatch{Status: &status}
}

// ──────────────────────────────────────────────
// MOCK ORDERS API
// ──────────────────────────────────────────────

type mockOrdersAPI struct {
	mu     sync.Mutex
	orders []domain.Order
	pager  api.Pagination

	ListCallCount   int32
	UpdateCallCount int32
	LastListParams  api.ListParams
	LastToken       string

	ListError   error
	UpdateError error
	// UpdateResult, when set, is returned from UpdateOrderStatus.
	UpdateResult *domain.Order
}

func (m *mockOrdersAPI) ListOrders(ctx context.Context, token string, params api.ListParams) (*api.OrderList, error) {
	atomic.AddInt32(&m.ListCallCount, 1)
	m.mu.Lock()
	m.LastListParams = params
	m.LastToken = token
	orders, pager, err := m.orders, m.pager, m.ListError
	m.mu.Unlock()
	if err != nil {
		return nil, err
	}
	out := make([]domain.Order, len(orders))
	copy(out, orders)
	return &api.OrderList{Orders: out, Pagination: pager}, nil
}

func (m *mockOrdersAPI) UpdateOrderStatus(ctx context.Context, token, orderID string, status domain.OrderStatus) (*domain.Order, error) {
	atomic.AddInt32(&m.UpdateCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UpdateError != nil {
		return nil, m.UpdateError
	}
	if m.UpdateResult != nil {
		result := *m.UpdateResult
		return &result, nil
	}
	for _, o := range m.orders {
		if o.ID == orderID {
			o.Status = status
			return &o, nil
		}
	}
	return nil, &api.APIError{Message: "order not found", Status: 404}
}

// ──────────────────────────────────────────────
// MOCK RIDERS API
// ──────────────────────────────────────────────

type mockRidersAPI struct {
	mu     sync.Mutex
	riders []domain.Rider
	pager  api.Pagination

	DeleteCallCount int32
	DeleteError     error
}

func (m *mockRidersAPI) ListRiders(ctx context.Context, token string, params api.ListParams) (*api.RiderList, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Rider, len(m.riders))
	copy(out, m.riders)
	return &api.RiderList{Riders: out, Pagination: m.pager}, nil
}

func (m *mockRidersAPI) GetRider(ctx context.Context, token, riderID string) (*domain.Rider, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.riders {
		if r.ID == riderID {
			rider := r
			return &rider, nil
		}
	}
	return nil, &api.APIError{Message: "rider not found", Status: 404}
}

func (m *mockRidersAPI) DeleteRider(ctx context.Context, token, riderID string) error {
	atomic.AddInt32(&m.DeleteCallCount, 1)
	return m.DeleteError
}

// ──────────────────────────────────────────────
// MOCK PENDING RIDERS API
// ──────────────────────────────────────────────

type mockPendingAPI struct {
	mu      sync.Mutex
	pending []domain.PendingRider
	pager   api.Pagination

	ApproveCallCount int32
	RejectCallCount  int32
	LastRejectReason string

	ApproveError error
	RejectError  error
}

func (m *mockPendingAPI) ListPendingRiders(ctx context.Context, token string, params api.ListParams) (*api.PendingRiderList, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.PendingRider, len(m.pending))
	copy(out, m.pending)
	return &api.PendingRiderList{Riders: out, Pagination: m.pager}, nil
}

func (m *mockPendingAPI) ApproveRider(ctx context.Context, token, applicationID string) error {
	atomic.AddInt32(&m.ApproveCallCount, 1)
	return m.ApproveError
}

func (m *mockPendingAPI) RejectRider(ctx context.Context, token, applicationID, reason string) error {
	atomic.AddInt32(&m.RejectCallCount, 1)
	m.mu.Lock()
	m.LastRejectReason = reason
	m.mu.Unlock()
	return m.RejectError
}

// ──────────────────────────────────────────────
// MOCK CUSTOMERS API
// ──────────────────────────────────────────────

type mockCustomersAPI struct {
	mu        sync.Mutex
	customers []domain.Customer
	pager     api.Pagination

	UpdateCallCount int32
	UpdateError     error
}

func (m *mockCustomersAPI) ListCustomers(ctx context.Context, token string, params api.ListParams) (*api.CustomerList, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Customer, len(m.customers))
	copy(out, m.customers)
	return &api.CustomerList{Customers: out, Pagination: m.pager}, nil
}

func (m *mockCustomersAPI) UpdateCustomerStatus(ctx context.Context, token, customerID string, status domain.CustomerStatus) (*domain.Customer, error) {
	atomic.AddInt32(&m.UpdateCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UpdateError != nil {
		return nil, m.UpdateError
	}
	for _, c := range m.customers {
		if c.ID == customerID {
			c.Status = status
			return &c, nil
		}
	}
	return nil, &api.APIError{Message: "customer not found", Status: 404}
}

// ──────────────────────────────────────────────
// MOCK ACTIVE RIDERS API
// ──────────────────────────────────────────────

type mockActiveRidersAPI struct {
	mu     sync.Mutex
	riders []domain.Rider

	ListCallCount int32
}

func (m *mockActiveRidersAPI) ListActiveRiders(ctx context.Context, token string, params api.ListParams) (*api.RiderList, error) {
	atomic.AddInt32(&m.ListCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Rider, len(m.riders))
	copy(out, m.riders)
	return &api.RiderList{Riders: out, Pagination: api.Pagination{Total: len(out)}}, nil
}
