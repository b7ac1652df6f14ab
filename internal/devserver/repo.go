package devserver

import (
	"sort"
	"strings"
	"sync"

	"parceldash/internal/domain"
)

// Repo is the in-memory backing store for the fixture server. The real
// backend owns a database; the fixture server only needs stable state for the
// lifetime of a dev session.
type Repo struct {
	mu        sync.RWMutex
	orders    map[string]*domain.Order
	riders    map[string]*domain.Rider
	pending   map[string]*domain.PendingRider
	customers map[string]*domain.Customer
}

// NewRepo creates an empty repo.
func NewRepo() *Repo {
	return &Repo{
		orders:    make(map[string]*domain.Order),
		riders:    make(map[string]*domain.Rider),
		pending:   make(map[string]*domain.PendingRider),
		customers: make(map[string]*domain.Customer),
	}
}

// listFilter matches the query parameters the client serializes.
type listFilter struct {
	status string
	search string
	page   int
	limit  int
}

// pageOf sorts items newest first and slices out the requested page.
func pageOf[T any](items []T, f listFilter, newer func(a, b T) bool) ([]T, int, int) {
	sort.SliceStable(items, func(i, j int) bool {
		return newer(items[i], items[j])
	})

	total := len(items)
	limit := f.limit
	if limit <= 0 {
		limit = 20
	}
	page := f.page
	if page <= 0 {
		page = 1
	}

	totalPages := (total + limit - 1) / limit
	start := (page - 1) * limit
	if start >= total {
		return []T{}, total, totalPages
	}
	end := start + limit
	if end > total {
		end = total
	}
	return items[start:end], total, totalPages
}

func matches(search string, fields ...string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

// ── Orders ──

func (r *Repo) ListOrders(f listFilter) ([]domain.Order, int, int) {
	r.mu.RLock()
	items := make([]domain.Order, 0, len(r.orders))
	for _, o := range r.orders {
		if f.status != "" && string(o.Status) != f.status {
			continue
		}
		var customerName string
		if o.Customer != nil {
			customerName = o.Customer.Name
		}
		if !matches(f.search, o.TrackingNumber, o.DeliveryAddress, customerName) {
			continue
		}
		items = append(items, *o)
	}
	r.mu.RUnlock()
	return pageOf(items, f, func(a, b domain.Order) bool { return a.CreatedAt.After(b.CreatedAt) })
}

func (r *Repo) GetOrder(id string) (*domain.Order, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, false
	}
	copy := *o
	return &copy, true
}

func (r *Repo) GetOrderByTracking(trackingNumber string) (*domain.Order, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, o := range r.orders {
		if o.TrackingNumber == trackingNumber {
			copy := *o
			return &copy, true
		}
	}
	return nil, false
}

func (r *Repo) PutOrder(o *domain.Order) {
	r.mu.Lock()
	defer r.mu.Unlock()
	copy := *o
	r.orders[o.ID] = &copy
}

// ── Riders ──

func (r *Repo) ListRiders(f listFilter, onlineOnly bool) ([]domain.Rider, int, int) {
	r.mu.RLock()
	items := make([]domain.Rider, 0, len(r.riders))
	for _, rd := range r.riders {
		if onlineOnly && rd.Status != domain.RiderStatusOnline {
			continue
		}
		if f.status != "" && string(rd.Status) != f.status {
			continue
		}
		if !matches(f.search, rd.Name, rd.Email) {
			continue
		}
		items = append(items, *rd)
	}
	r.mu.RUnlock()
	return pageOf(items, f, func(a, b domain.Rider) bool { return a.CreatedAt.After(b.CreatedAt) })
}

func (r *Repo) GetRider(id string) (*domain.Rider, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rd, ok := r.riders[id]
	if !ok {
		return nil, false
	}
	copy := *rd
	return &copy, true
}

func (r *Repo) PutRider(rd *domain.Rider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	copy := *rd
	r.riders[rd.ID] = &copy
}

func (r *Repo) DeleteRider(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.riders[id]; !ok {
		return false
	}
	delete(r.riders, id)
	return true
}

// ── Pending applications ──

func (r *Repo) ListPending(f listFilter) ([]domain.PendingRider, int, int) {
	r.mu.RLock()
	items := make([]domain.PendingRider, 0, len(r.pending))
	for _, p := range r.pending {
		if p.Status != domain.RiderStatusPending {
			continue
		}
		if !matches(f.search, p.Name, p.Email, p.NationalID) {
			continue
		}
		items = append(items, *p)
	}
	r.mu.RUnlock()
	return pageOf(items, f, func(a, b domain.PendingRider) bool { return a.CreatedAt.After(b.CreatedAt) })
}

func (r *Repo) GetPending(id string) (*domain.PendingRider, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.pending[id]
	if !ok {
		return nil, false
	}
	copy := *p
	return &copy, true
}

func (r *Repo) PutPending(p *domain.PendingRider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	copy := *p
	r.pending[p.ID] = &copy
}

func (r *Repo) DeletePending(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.pending[id]; !ok {
		return false
	}
	delete(r.pending, id)
	return true
}

// ── Customers ──

func (r *Repo) ListCustomers(f listFilter) ([]domain.Customer, int, int) {
	r.mu.RLock()
	items := make([]domain.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		if f.status != "" && string(c.Status) != f.status {
			continue
		}
		var name string
		if c.Name != nil {
			name = *c.Name
		}
		if !matches(f.search, name, c.Email) {
			continue
		}
		items = append(items, *c)
	}
	r.mu.RUnlock()
	return pageOf(items, f, func(a, b domain.Customer) bool { return a.CreatedAt.After(b.CreatedAt) })
}

func (r *Repo) GetCustomer(id string) (*domain.Customer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.customers[id]
	if !ok {
		return nil, false
	}
	copy := *c
	return &copy, true
}

func (r *Repo) PutCustomer(c *domain.Customer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	copy := *c
	r.customers[c.ID] = &copy
}
