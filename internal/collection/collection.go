// Package collection implements the shared remote-collection state machine
// behind every resource store: one canonical item list plus its filter,
// pagination, loading and error state, kept in sync with a backend list
// endpoint and patched locally after mutations.
package collection

import (
	"context"
	"sync"
	"time"

	"parceldash/internal/api"
)

// FetchFunc loads one page of items for the given params.
type FetchFunc[T any] func(ctx context.Context, params api.ListParams) ([]T, api.Pagination, error)

// FilterPatch is a partial filter update. Nil fields are left unchanged.
type FilterPatch struct {
	Status *string
	Search *string
	Limit  *int
	// Extra merges by key; an empty value removes the key.
	Extra map[string]string
}

// Collection owns the canonical state for one remote resource list.
//
// Fetches are sequence-guarded: every issued fetch takes a number under the
// lock, and a response whose number is older than the latest issued is
// discarded. The newest issued fetch always wins, however responses interleave.
type Collection[T any] struct {
	fetch    FetchFunc[T]
	idOf     func(T) string
	debounce time.Duration

	mu         sync.Mutex
	items      []T
	pagination api.Pagination
	params     api.ListParams
	loading    bool
	lastErr    error
	seq        uint64
	timer      *time.Timer

	subs    map[int]func()
	nextSub int
}

// Option configures a Collection.
type Option func(*options)

type options struct {
	debounce time.Duration
	limit    int
	status   string
}

// WithDebounce sets the search debounce window.
func WithDebounce(d time.Duration) Option {
	return func(o *options) { o.debounce = d }
}

// WithLimit sets the page size requested from the backend.
func WithLimit(n int) Option {
	return func(o *options) { o.limit = n }
}

// WithStatus sets the initial status filter.
func WithStatus(s string) Option {
	return func(o *options) { o.status = s }
}

// New creates a Collection over fetch, identifying items by idOf.
func New[T any](fetch FetchFunc[T], idOf func(T) string, opts ...Option) *Collection[T] {
	o := options{
		debounce: 400 * time.Millisecond,
		limit:    20,
		status:   api.FilterAll,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Collection[T]{
		fetch:    fetch,
		idOf:     idOf,
		debounce: o.debounce,
		params: api.ListParams{
			Status: o.status,
			Page:   1,
			Limit:  o.limit,
		},
		subs: make(map[int]func()),
	}
}

// Subscribe registers fn to run after every state change. The returned
// function unsubscribes.
func (c *Collection[T]) Subscribe(fn func()) func() {
	c.mu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
}

func (c *Collection[T]) notify() {
	c.mu.Lock()
	fns := make([]func(), 0, len(c.subs))
	for _, fn := range c.subs {
		fns = append(fns, fn)
	}
	c.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Fetch loads the collection with the current filters and page. A fetch that
// is superseded before its response lands leaves state untouched; its error,
// if any, is still returned to the caller that issued it.
func (c *Collection[T]) Fetch(ctx context.Context) error {
	c.mu.Lock()
	c.seq++
	seq := c.seq
	params := c.params
	c.loading = true
	c.mu.Unlock()
	c.notify()

	items, pagination, err := c.fetch(ctx, params)

	c.mu.Lock()
	if seq < c.seq {
		// A newer fetch has been issued; this response is stale.
		c.mu.Unlock()
		return err
	}
	c.loading = false
	if err != nil {
		c.lastErr = err
	} else {
		c.lastErr = nil
		c.items = items
		c.pagination = pagination
		if pagination.CurrentPage > 0 {
			c.params.Page = pagination.CurrentPage
		}
	}
	c.mu.Unlock()
	c.notify()
	return err
}

// Refresh re-fetches with the current filters and page.
func (c *Collection[T]) Refresh(ctx context.Context) error {
	return c.Fetch(ctx)
}

// UpdateFilters merges the patch into the current filters, resets the page to
// 1 and fetches immediately.
func (c *Collection[T]) UpdateFilters(ctx context.Context, patch FilterPatch) error {
	c.mu.Lock()
	c.applyPatch(patch)
	c.params.Page = 1
	c.mu.Unlock()
	return c.Fetch(ctx)
}

// SetSearch updates the search filter, resets the page to 1 and schedules a
// debounced fetch: rapid successive calls coalesce into one request once input
// pauses for the debounce window.
func (c *Collection[T]) SetSearch(ctx context.Context, query string) {
	c.mu.Lock()
	c.params.Search = query
	c.params.Page = 1
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.debounce, func() {
		_ = c.Fetch(ctx)
	})
	c.mu.Unlock()
}

// SetPage moves to the given page and fetches.
func (c *Collection[T]) SetPage(ctx context.Context, page int) error {
	if page < 1 {
		page = 1
	}
	c.mu.Lock()
	c.params.Page = page
	c.mu.Unlock()
	return c.Fetch(ctx)
}

// Stop cancels any pending debounced fetch. Call on teardown.
func (c *Collection[T]) Stop() {
	c.mu.Lock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.mu.Unlock()
}

// Items returns a copy of the canonical item list.
func (c *Collection[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Pagination returns the current page metadata.
func (c *Collection[T]) Pagination() api.Pagination {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pagination
}

// Params returns the current filter and pagination request state.
func (c *Collection[T]) Params() api.ListParams {
	c.mu.Lock()
	defer c.mu.Unlock()
	params := c.params
	if params.Extra != nil {
		extra := make(map[string]string, len(params.Extra))
		for k, v := range params.Extra {
			extra[k] = v
		}
		params.Extra = extra
	}
	return params
}

// Loading reports whether the newest issued fetch is still outstanding.
func (c *Collection[T]) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Err returns the error of the last applied fetch, or nil.
func (c *Collection[T]) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// Patch applies fn to the single item with the given id. It reports whether
// an item was found; no other item is touched.
func (c *Collection[T]) Patch(id string, fn func(*T)) bool {
	c.mu.Lock()
	found := false
	for i := range c.items {
		if c.idOf(c.items[i]) == id {
			fn(&c.items[i])
			found = true
			break
		}
	}
	c.mu.Unlock()
	if found {
		c.notify()
	}
	return found
}

// Remove drops the item with the given id and decrements the pagination
// total, floored at zero. It reports whether an item was removed.
func (c *Collection[T]) Remove(id string) bool {
	c.mu.Lock()
	found := false
	for i := range c.items {
		if c.idOf(c.items[i]) == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			found = true
			break
		}
	}
	if found && c.pagination.Total > 0 {
		c.pagination.Total--
	}
	c.mu.Unlock()
	if found {
		c.notify()
	}
	return found
}

func (c *Collection[T]) applyPatch(patch FilterPatch) {
	if patch.Status != nil {
		c.params.Status = *patch.Status
	}
	if patch.Search != nil {
		c.params.Search = *patch.Search
	}
	if patch.Limit != nil {
		c.params.Limit = *patch.Limit
	}
	if len(patch.Extra) > 0 {
		if c.params.Extra == nil {
			c.params.Extra = make(map[string]string)
		}
		for k, v := range patch.Extra {
			if v == "" {
				delete(c.params.Extra, k)
				continue
			}
			c.params.Extra[k] = v
		}
	}
}
