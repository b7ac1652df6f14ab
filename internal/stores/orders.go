package stores

import (
	"context"

	"parceldash/internal/api"
	"parceldash/internal/collection"
	"parceldash/internal/domain"
)

// OrdersAPI is the slice of the API client the orders store depends on.
type OrdersAPI interface {
	ListOrders(ctx context.Context, token string, params api.ListParams) (*api.OrderList, error)
	UpdateOrderStatus(ctx context.Context, token, orderID string, status domain.OrderStatus) (*domain.Order, error)
}

// Orders owns the order list state for the dashboard.
type Orders struct {
	*collection.Collection[domain.Order]

	api    OrdersAPI
	tokens TokenSource
}

// NewOrders creates the orders store.
func NewOrders(ordersAPI OrdersAPI, tokens TokenSource, opts ...collection.Option) *Orders {
	s := &Orders{api: ordersAPI, tokens: tokens}
	s.Collection = collection.New(s.load, func(o domain.Order) string { return o.ID }, opts...)
	return s
}

func (s *Orders) load(ctx context.Context, params api.ListParams) ([]domain.Order, api.Pagination, error) {
	resp, err := s.api.ListOrders(ctx, s.tokens.Token(), params)
	if err != nil {
		return nil, api.Pagination{}, err
	}
	return resp.Orders, resp.Pagination, nil
}

// UpdateStatus advances one order remotely and patches it in local state.
// An advance that violates the forward delivery progression is refused before
// any remote call; a failed remote call leaves local state untouched.
func (s *Orders) UpdateStatus(ctx context.Context, orderID string, next domain.OrderStatus) error {
	for _, o := range s.Items() {
		if o.ID == orderID {
			if o.Status.IsTerminal() {
				return domain.ErrOrderTerminal
			}
			if !o.Status.CanTransitionTo(next) {
				return domain.ErrInvalidTransition
			}
			break
		}
	}

	updated, err := s.api.UpdateOrderStatus(ctx, s.tokens.Token(), orderID, next)
	if err != nil {
		return err
	}

	s.Patch(orderID, func(o *domain.Order) {
		if updated != nil && updated.ID == orderID {
			*o = *updated
			return
		}
		o.Status = next
	})
	return nil
}

// Active returns orders still moving through the delivery pipeline.
func (s *Orders) Active() []domain.Order {
	return s.filter(func(o domain.Order) bool { return !o.Status.IsTerminal() })
}

// Completed returns delivered orders.
func (s *Orders) Completed() []domain.Order {
	return s.filter(func(o domain.Order) bool { return o.Status == domain.OrderStatusDelivered })
}

// Cancelled returns cancelled orders.
func (s *Orders) Cancelled() []domain.Order {
	return s.filter(func(o domain.Order) bool { return o.Status == domain.OrderStatusCancelled })
}

func (s *Orders) filter(keep func(domain.Order) bool) []domain.Order {
	items := s.Items()
	out := make([]domain.Order, 0, len(items))
	for _, o := range items {
		if keep(o) {
			out = append(out, o)
		}
	}
	return out
}
