// Package stores provides one stateful store per backend resource. Each store
// exclusively owns the in-memory list, filter and pagination state for its
// resource, fetches through the API client with the session token, and patches
// local state after successful mutations instead of refetching.
package stores

// TokenSource supplies the current session token for authenticated calls.
// session.Store satisfies it.
type TokenSource interface {
	Token() string
}
