package stores

import (
	"context"

	"parceldash/internal/api"
	"parceldash/internal/collection"
	"parceldash/internal/domain"
)

// CustomersAPI is the slice of the API client the customers store depends on.
type CustomersAPI interface {
	ListCustomers(ctx context.Context, token string, params api.ListParams) (*api.CustomerList, error)
	UpdateCustomerStatus(ctx context.Context, token, customerID string, status domain.CustomerStatus) (*domain.Customer, error)
}

// Customers owns the customer list state.
type Customers struct {
	*collection.Collection[domain.Customer]

	api    CustomersAPI
	tokens TokenSource
}

// NewCustomers creates the customers store.
func NewCustomers(customersAPI CustomersAPI, tokens TokenSource, opts ...collection.Option) *Customers {
	s := &Customers{api: customersAPI, tokens: tokens}
	s.Collection = collection.New(s.load, func(c domain.Customer) string { return c.ID }, opts...)
	return s
}

func (s *Customers) load(ctx context.Context, params api.ListParams) ([]domain.Customer, api.Pagination, error) {
	resp, err := s.api.ListCustomers(ctx, s.tokens.Token(), params)
	if err != nil {
		return nil, api.Pagination{}, err
	}
	return resp.Customers, resp.Pagination, nil
}

// UpdateStatus changes one customer's status remotely and patches local state.
// A failed remote call leaves local state untouched.
func (s *Customers) UpdateStatus(ctx context.Context, customerID string, status domain.CustomerStatus) error {
	updated, err := s.api.UpdateCustomerStatus(ctx, s.tokens.Token(), customerID, status)
	if err != nil {
		return err
	}

	s.Patch(customerID, func(c *domain.Customer) {
		if updated != nil && updated.ID == customerID {
			*c = *updated
			return
		}
		c.Status = status
	})
	return nil
}

// ActiveCustomers returns customers with an ACTIVE account.
func (s *Customers) ActiveCustomers() []domain.Customer {
	return s.filter(func(c domain.Customer) bool { return c.Status == domain.CustomerStatusActive })
}

// SuspendedCustomers returns customers with a SUSPENDED account.
func (s *Customers) SuspendedCustomers() []domain.Customer {
	return s.filter(func(c domain.Customer) bool { return c.Status == domain.CustomerStatusSuspended })
}

func (s *Customers) filter(keep func(domain.Customer) bool) []domain.Customer {
	items := s.Items()
	out := make([]domain.Customer, 0, len(items))
	for _, c := range items {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}
